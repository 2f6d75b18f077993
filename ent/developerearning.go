// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/agentloom/loom/ent/developerearning"
)

// DeveloperEarning is the model entity for the DeveloperEarning schema.
type DeveloperEarning struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// DeveloperUserID holds the value of the "developer_user_id" field.
	DeveloperUserID string `json:"developer_user_id,omitempty"`
	// ConsumerUserID holds the value of the "consumer_user_id" field.
	ConsumerUserID string `json:"consumer_user_id,omitempty"`
	// MarketplaceID holds the value of the "marketplace_id" field.
	MarketplaceID string `json:"marketplace_id,omitempty"`
	// Reward credits granted to the developer
	Amount int64 `json:"amount,omitempty"`
	// Consumer deduction this reward derives from
	TotalConsumed int64 `json:"total_consumed,omitempty"`
	// ForkMode holds the value of the "fork_mode" field.
	ForkMode developerearning.ForkMode `json:"fork_mode,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*DeveloperEarning) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case developerearning.FieldAmount, developerearning.FieldTotalConsumed:
			values[i] = new(sql.NullInt64)
		case developerearning.FieldID, developerearning.FieldDeveloperUserID, developerearning.FieldConsumerUserID, developerearning.FieldMarketplaceID, developerearning.FieldForkMode:
			values[i] = new(sql.NullString)
		case developerearning.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the DeveloperEarning fields.
func (_m *DeveloperEarning) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case developerearning.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case developerearning.FieldDeveloperUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field developer_user_id", values[i])
			} else if value.Valid {
				_m.DeveloperUserID = value.String
			}
		case developerearning.FieldConsumerUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field consumer_user_id", values[i])
			} else if value.Valid {
				_m.ConsumerUserID = value.String
			}
		case developerearning.FieldMarketplaceID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field marketplace_id", values[i])
			} else if value.Valid {
				_m.MarketplaceID = value.String
			}
		case developerearning.FieldAmount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field amount", values[i])
			} else if value.Valid {
				_m.Amount = value.Int64
			}
		case developerearning.FieldTotalConsumed:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_consumed", values[i])
			} else if value.Valid {
				_m.TotalConsumed = value.Int64
			}
		case developerearning.FieldForkMode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field fork_mode", values[i])
			} else if value.Valid {
				_m.ForkMode = developerearning.ForkMode(value.String)
			}
		case developerearning.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the DeveloperEarning.
// This includes values selected through modifiers, order, etc.
func (_m *DeveloperEarning) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this DeveloperEarning.
// Note that you need to call DeveloperEarning.Unwrap() before calling this method if this DeveloperEarning
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *DeveloperEarning) Update() *DeveloperEarningUpdateOne {
	return NewDeveloperEarningClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the DeveloperEarning entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *DeveloperEarning) Unwrap() *DeveloperEarning {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: DeveloperEarning is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *DeveloperEarning) String() string {
	var builder strings.Builder
	builder.WriteString("DeveloperEarning(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("developer_user_id=")
	builder.WriteString(_m.DeveloperUserID)
	builder.WriteString(", ")
	builder.WriteString("consumer_user_id=")
	builder.WriteString(_m.ConsumerUserID)
	builder.WriteString(", ")
	builder.WriteString("marketplace_id=")
	builder.WriteString(_m.MarketplaceID)
	builder.WriteString(", ")
	builder.WriteString("amount=")
	builder.WriteString(fmt.Sprintf("%v", _m.Amount))
	builder.WriteString(", ")
	builder.WriteString("total_consumed=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalConsumed))
	builder.WriteString(", ")
	builder.WriteString("fork_mode=")
	builder.WriteString(fmt.Sprintf("%v", _m.ForkMode))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// DeveloperEarnings is a parsable slice of DeveloperEarning.
type DeveloperEarnings []*DeveloperEarning
