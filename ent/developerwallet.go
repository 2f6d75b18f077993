// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/agentloom/loom/ent/developerwallet"
)

// DeveloperWallet is the model entity for the DeveloperWallet schema.
type DeveloperWallet struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// AvailableBalance holds the value of the "available_balance" field.
	AvailableBalance int64 `json:"available_balance,omitempty"`
	// TotalEarned holds the value of the "total_earned" field.
	TotalEarned int64 `json:"total_earned,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*DeveloperWallet) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case developerwallet.FieldAvailableBalance, developerwallet.FieldTotalEarned:
			values[i] = new(sql.NullInt64)
		case developerwallet.FieldID, developerwallet.FieldUserID:
			values[i] = new(sql.NullString)
		case developerwallet.FieldCreatedAt, developerwallet.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the DeveloperWallet fields.
func (_m *DeveloperWallet) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case developerwallet.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case developerwallet.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case developerwallet.FieldAvailableBalance:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field available_balance", values[i])
			} else if value.Valid {
				_m.AvailableBalance = value.Int64
			}
		case developerwallet.FieldTotalEarned:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_earned", values[i])
			} else if value.Valid {
				_m.TotalEarned = value.Int64
			}
		case developerwallet.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case developerwallet.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the DeveloperWallet.
// This includes values selected through modifiers, order, etc.
func (_m *DeveloperWallet) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this DeveloperWallet.
// Note that you need to call DeveloperWallet.Unwrap() before calling this method if this DeveloperWallet
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *DeveloperWallet) Update() *DeveloperWalletUpdateOne {
	return NewDeveloperWalletClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the DeveloperWallet entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *DeveloperWallet) Unwrap() *DeveloperWallet {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: DeveloperWallet is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *DeveloperWallet) String() string {
	var builder strings.Builder
	builder.WriteString("DeveloperWallet(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("available_balance=")
	builder.WriteString(fmt.Sprintf("%v", _m.AvailableBalance))
	builder.WriteString(", ")
	builder.WriteString("total_earned=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalEarned))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// DeveloperWallets is a parsable slice of DeveloperWallet.
type DeveloperWallets []*DeveloperWallet
