// Code generated by ent, DO NOT EDIT.

package developerwallet

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the developerwallet type in the database.
	Label = "developer_wallet"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "developer_wallet_id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldAvailableBalance holds the string denoting the available_balance field in the database.
	FieldAvailableBalance = "available_balance"
	// FieldTotalEarned holds the string denoting the total_earned field in the database.
	FieldTotalEarned = "total_earned"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the developerwallet in the database.
	Table = "developer_wallets"
)

// Columns holds all SQL columns for developerwallet fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldAvailableBalance,
	FieldTotalEarned,
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
	// DefaultAvailableBalance holds the default value on creation for the "available_balance" field.
	DefaultAvailableBalance int64
	// DefaultTotalEarned holds the default value on creation for the "total_earned" field.
	DefaultTotalEarned int64
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the DeveloperWallet queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByAvailableBalance orders the results by the available_balance field.
func ByAvailableBalance(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAvailableBalance, opts...).ToFunc()
}

// ByTotalEarned orders the results by the total_earned field.
func ByTotalEarned(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalEarned, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
