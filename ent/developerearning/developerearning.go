// Code generated by ent, DO NOT EDIT.

package developerearning

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the developerearning type in the database.
	Label = "developer_earning"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "earning_id"
	// FieldDeveloperUserID holds the string denoting the developer_user_id field in the database.
	FieldDeveloperUserID = "developer_user_id"
	// FieldConsumerUserID holds the string denoting the consumer_user_id field in the database.
	FieldConsumerUserID = "consumer_user_id"
	// FieldMarketplaceID holds the string denoting the marketplace_id field in the database.
	FieldMarketplaceID = "marketplace_id"
	// FieldAmount holds the string denoting the amount field in the database.
	FieldAmount = "amount"
	// FieldTotalConsumed holds the string denoting the total_consumed field in the database.
	FieldTotalConsumed = "total_consumed"
	// FieldForkMode holds the string denoting the fork_mode field in the database.
	FieldForkMode = "fork_mode"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the developerearning in the database.
	Table = "developer_earnings"
)

// Columns holds all SQL columns for developerearning fields.
var Columns = []string{
	FieldID,
	FieldDeveloperUserID,
	FieldConsumerUserID,
	FieldMarketplaceID,
	FieldAmount,
	FieldTotalConsumed,
	FieldForkMode,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// ForkMode defines the type for the "fork_mode" enum field.
type ForkMode string

// ForkMode values.
const (
	ForkModeEditable ForkMode = "editable"
	ForkModeLocked   ForkMode = "locked"
)

func (fm ForkMode) String() string {
	return string(fm)
}

// ForkModeValidator is a validator for the "fork_mode" field enum values. It is called by the builders before save.
func ForkModeValidator(fm ForkMode) error {
	switch fm {
	case ForkModeEditable, ForkModeLocked:
		return nil
	default:
		return fmt.Errorf("developerearning: invalid enum value for fork_mode field: %q", fm)
	}
}

// OrderOption defines the ordering options for the DeveloperEarning queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByDeveloperUserID orders the results by the developer_user_id field.
func ByDeveloperUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeveloperUserID, opts...).ToFunc()
}

// ByConsumerUserID orders the results by the consumer_user_id field.
func ByConsumerUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConsumerUserID, opts...).ToFunc()
}

// ByMarketplaceID orders the results by the marketplace_id field.
func ByMarketplaceID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMarketplaceID, opts...).ToFunc()
}

// ByAmount orders the results by the amount field.
func ByAmount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAmount, opts...).ToFunc()
}

// ByTotalConsumed orders the results by the total_consumed field.
func ByTotalConsumed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalConsumed, opts...).ToFunc()
}

// ByForkMode orders the results by the fork_mode field.
func ByForkMode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldForkMode, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
