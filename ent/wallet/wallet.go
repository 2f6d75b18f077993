// Code generated by ent, DO NOT EDIT.

package wallet

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the wallet type in the database.
	Label = "wallet"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "wallet_id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldFree holds the string denoting the free field in the database.
	FieldFree = "free"
	// FieldPaid holds the string denoting the paid field in the database.
	FieldPaid = "paid"
	// FieldEarned holds the string denoting the earned field in the database.
	FieldEarned = "earned"
	// FieldVirtualTotal holds the string denoting the virtual_total field in the database.
	FieldVirtualTotal = "virtual_total"
	// FieldTotalCredited holds the string denoting the total_credited field in the database.
	FieldTotalCredited = "total_credited"
	// FieldTotalConsumed holds the string denoting the total_consumed field in the database.
	FieldTotalConsumed = "total_consumed"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the wallet in the database.
	Table = "wallets"
)

// Columns holds all SQL columns for wallet fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldFree,
	FieldPaid,
	FieldEarned,
	FieldVirtualTotal,
	FieldTotalCredited,
	FieldTotalConsumed,
	FieldCreatedAt,
	FieldUpdatedAt,
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
	// DefaultFree holds the default value on creation for the "free" field.
	DefaultFree int64
	// DefaultPaid holds the default value on creation for the "paid" field.
	DefaultPaid int64
	// DefaultEarned holds the default value on creation for the "earned" field.
	DefaultEarned int64
	// DefaultVirtualTotal holds the default value on creation for the "virtual_total" field.
	DefaultVirtualTotal int64
	// DefaultTotalCredited holds the default value on creation for the "total_credited" field.
	DefaultTotalCredited int64
	// DefaultTotalConsumed holds the default value on creation for the "total_consumed" field.
	DefaultTotalConsumed int64
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the Wallet queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByFree orders the results by the free field.
func ByFree(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFree, opts...).ToFunc()
}

// ByPaid orders the results by the paid field.
func ByPaid(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPaid, opts...).ToFunc()
}

// ByEarned orders the results by the earned field.
func ByEarned(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEarned, opts...).ToFunc()
}

// ByVirtualTotal orders the results by the virtual_total field.
func ByVirtualTotal(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVirtualTotal, opts...).ToFunc()
}

// ByTotalCredited orders the results by the total_credited field.
func ByTotalCredited(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalCredited, opts...).ToFunc()
}

// ByTotalConsumed orders the results by the total_consumed field.
func ByTotalConsumed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalConsumed, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
