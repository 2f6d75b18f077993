// Code generated by ent, DO NOT EDIT.

package ledgerentry

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the ledgerentry type in the database.
	Label = "ledger_entry"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "entry_id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldCreditType holds the string denoting the credit_type field in the database.
	FieldCreditType = "credit_type"
	// FieldDirection holds the string denoting the direction field in the database.
	FieldDirection = "direction"
	// FieldAmount holds the string denoting the amount field in the database.
	FieldAmount = "amount"
	// FieldBalanceAfter holds the string denoting the balance_after field in the database.
	FieldBalanceAfter = "balance_after"
	// FieldTotalBalanceAfter holds the string denoting the total_balance_after field in the database.
	FieldTotalBalanceAfter = "total_balance_after"
	// FieldSource holds the string denoting the source field in the database.
	FieldSource = "source"
	// FieldReferenceID holds the string denoting the reference_id field in the database.
	FieldReferenceID = "reference_id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the ledgerentry in the database.
	Table = "ledger_entries"
)

// Columns holds all SQL columns for ledgerentry fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldCreditType,
	FieldDirection,
	FieldAmount,
	FieldBalanceAfter,
	FieldTotalBalanceAfter,
	FieldSource,
	FieldReferenceID,
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

// CreditType defines the type for the "credit_type" enum field.
type CreditType string

// CreditType values.
const (
	CreditTypeFree   CreditType = "free"
	CreditTypePaid   CreditType = "paid"
	CreditTypeEarned CreditType = "earned"
)

func (ct CreditType) String() string {
	return string(ct)
}

// CreditTypeValidator is a validator for the "credit_type" field enum values. It is called by the builders before save.
func CreditTypeValidator(ct CreditType) error {
	switch ct {
	case CreditTypeFree, CreditTypePaid, CreditTypeEarned:
		return nil
	default:
		return fmt.Errorf("ledgerentry: invalid enum value for credit_type field: %q", ct)
	}
}

// Direction defines the type for the "direction" enum field.
type Direction string

// Direction values.
const (
	DirectionCredit Direction = "credit"
	DirectionDebit  Direction = "debit"
)

func (d Direction) String() string {
	return string(d)
}

// DirectionValidator is a validator for the "direction" field enum values. It is called by the builders before save.
func DirectionValidator(d Direction) error {
	switch d {
	case DirectionCredit, DirectionDebit:
		return nil
	default:
		return fmt.Errorf("ledgerentry: invalid enum value for direction field: %q", d)
	}
}

// OrderOption defines the ordering options for the LedgerEntry queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByCreditType orders the results by the credit_type field.
func ByCreditType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreditType, opts...).ToFunc()
}

// ByDirection orders the results by the direction field.
func ByDirection(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDirection, opts...).ToFunc()
}

// ByAmount orders the results by the amount field.
func ByAmount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAmount, opts...).ToFunc()
}

// ByBalanceAfter orders the results by the balance_after field.
func ByBalanceAfter(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBalanceAfter, opts...).ToFunc()
}

// ByTotalBalanceAfter orders the results by the total_balance_after field.
func ByTotalBalanceAfter(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalBalanceAfter, opts...).ToFunc()
}

// BySource orders the results by the source field.
func BySource(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSource, opts...).ToFunc()
}

// ByReferenceID orders the results by the reference_id field.
func ByReferenceID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReferenceID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
