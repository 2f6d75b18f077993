// Code generated by ent, DO NOT EDIT.

package wallet

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/agentloom/loom/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Wallet {
	return predicate.Wallet(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Wallet {
	return predicate.Wallet(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Wallet {
	return predicate.Wallet(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Wallet {
	return predicate.Wallet(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Wallet {
	return predicate.Wallet(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Wallet {
	return predicate.Wallet(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Wallet {
	return predicate.Wallet(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Wallet {
	return predicate.Wallet(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Wallet {
	return predicate.Wallet(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Wallet {
	return predicate.Wallet(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Wallet {
	return predicate.Wallet(sql.FieldContainsFold(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.Wallet {
	return predicate.Wallet(sql.FieldEQ(FieldUserID, v))
}

// Free applies equality check predicate on the "free" field. It's identical to FreeEQ.
func Free(v int64) predicate.Wallet {
	return predicate.Wallet(sql.FieldEQ(FieldFree, v))
}

// Paid applies equality check predicate on the "paid" field. It's identical to PaidEQ.
func Paid(v int64) predicate.Wallet {
	return predicate.Wallet(sql.FieldEQ(FieldPaid, v))
}

// Earned applies equality check predicate on the "earned" field. It's identical to EarnedEQ.
func Earned(v int64) predicate.Wallet {
	return predicate.Wallet(sql.FieldEQ(FieldEarned, v))
}

// VirtualTotal applies equality check predicate on the "virtual_total" field. It's identical to VirtualTotalEQ.
func VirtualTotal(v int64) predicate.Wallet {
	return predicate.Wallet(sql.FieldEQ(FieldVirtualTotal, v))
}

// TotalCredited applies equality check predicate on the "total_credited" field. It's identical to TotalCreditedEQ.
func TotalCredited(v int64) predicate.Wallet {
	return predicate.Wallet(sql.FieldEQ(FieldTotalCredited, v))
}

// TotalConsumed applies equality check predicate on the "total_consumed" field. It's identical to TotalConsumedEQ.
func TotalConsumed(v int64) predicate.Wallet {
	return predicate.Wallet(sql.FieldEQ(FieldTotalConsumed, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Wallet {
	return predicate.Wallet(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Wallet {
	return predicate.Wallet(sql.FieldEQ(FieldUpdatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.Wallet {
	return predicate.Wallet(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.Wallet {
	return predicate.Wallet(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.Wallet {
	return predicate.Wallet(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.Wallet {
	return predicate.Wallet(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.Wallet {
	return predicate.Wallet(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.Wallet {
	return predicate.Wallet(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.Wallet {
	return predicate.Wallet(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.Wallet {
	return predicate.Wallet(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.Wallet {
	return predicate.Wallet(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.Wallet {
	return predicate.Wallet(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.Wallet {
	return predicate.Wallet(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.Wallet {
	return predicate.Wallet(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.Wallet {
	return predicate.Wallet(sql.FieldContainsFold(FieldUserID, v))
}

// FreeEQ applies the EQ predicate on the "free" field.
func FreeEQ(v int64) predicate.Wallet {
	return predicate.Wallet(sql.FieldEQ(FieldFree, v))
}

// FreeNEQ applies the NEQ predicate on the "free" field.
func FreeNEQ(v int64) predicate.Wallet {
	return predicate.Wallet(sql.FieldNEQ(FieldFree, v))
}

// FreeIn applies the In predicate on the "free" field.
func FreeIn(vs ...int64) predicate.Wallet {
	return predicate.Wallet(sql.FieldIn(FieldFree, vs...))
}

// FreeNotIn applies the NotIn predicate on the "free" field.
func FreeNotIn(vs ...int64) predicate.Wallet {
	return predicate.Wallet(sql.FieldNotIn(FieldFree, vs...))
}

// FreeGT applies the GT predicate on the "free" field.
func FreeGT(v int64) predicate.Wallet {
	return predicate.Wallet(sql.FieldGT(FieldFree, v))
}

// FreeGTE applies the GTE predicate on the "free" field.
func FreeGTE(v int64) predicate.Wallet {
	return predicate.Wallet(sql.FieldGTE(FieldFree, v))
}

// FreeLT applies the LT predicate on the "free" field.
func FreeLT(v int64) predicate.Wallet {
	return predicate.Wallet(sql.FieldLT(FieldFree, v))
}

// FreeLTE applies the LTE predicate on the "free" field.
func FreeLTE(v int64) predicate.Wallet {
	return predicate.Wallet(sql.FieldLTE(FieldFree, v))
}

// PaidEQ applies the EQ predicate on the "paid" field.
func PaidEQ(v int64) predicate.Wallet {
	return predicate.Wallet(sql.FieldEQ(FieldPaid, v))
}

// PaidNEQ applies the NEQ predicate on the "paid" field.
func PaidNEQ(v int64) predicate.Wallet {
	return predicate.Wallet(sql.FieldNEQ(FieldPaid, v))
}

// PaidIn applies the In predicate on the "paid" field.
func PaidIn(vs ...int64) predicate.Wallet {
	return predicate.Wallet(sql.FieldIn(FieldPaid, vs...))
}

// PaidNotIn applies the NotIn predicate on the "paid" field.
func PaidNotIn(vs ...int64) predicate.Wallet {
	return predicate.Wallet(sql.FieldNotIn(FieldPaid, vs...))
}

// PaidGT applies the GT predicate on the "paid" field.
func PaidGT(v int64) predicate.Wallet {
	return predicate.Wallet(sql.FieldGT(FieldPaid, v))
}

// PaidGTE applies the GTE predicate on the "paid" field.
func PaidGTE(v int64) predicate.Wallet {
	return predicate.Wallet(sql.FieldGTE(FieldPaid, v))
}

// PaidLT applies the LT predicate on the "paid" field.
func PaidLT(v int64) predicate.Wallet {
	return predicate.Wallet(sql.FieldLT(FieldPaid, v))
}

// PaidLTE applies the LTE predicate on the "paid" field.
func PaidLTE(v int64) predicate.Wallet {
	return predicate.Wallet(sql.FieldLTE(FieldPaid, v))
}

// EarnedEQ applies the EQ predicate on the "earned" field.
func EarnedEQ(v int64) predicate.Wallet {
	return predicate.Wallet(sql.FieldEQ(FieldEarned, v))
}

// EarnedNEQ applies the NEQ predicate on the "earned" field.
func EarnedNEQ(v int64) predicate.Wallet {
	return predicate.Wallet(sql.FieldNEQ(FieldEarned, v))
}

// EarnedIn applies the In predicate on the "earned" field.
func EarnedIn(vs ...int64) predicate.Wallet {
	return predicate.Wallet(sql.FieldIn(FieldEarned, vs...))
}

// EarnedNotIn applies the NotIn predicate on the "earned" field.
func EarnedNotIn(vs ...int64) predicate.Wallet {
	return predicate.Wallet(sql.FieldNotIn(FieldEarned, vs...))
}

// EarnedGT applies the GT predicate on the "earned" field.
func EarnedGT(v int64) predicate.Wallet {
	return predicate.Wallet(sql.FieldGT(FieldEarned, v))
}

// EarnedGTE applies the GTE predicate on the "earned" field.
func EarnedGTE(v int64) predicate.Wallet {
	return predicate.Wallet(sql.FieldGTE(FieldEarned, v))
}

// EarnedLT applies the LT predicate on the "earned" field.
func EarnedLT(v int64) predicate.Wallet {
	return predicate.Wallet(sql.FieldLT(FieldEarned, v))
}

// EarnedLTE applies the LTE predicate on the "earned" field.
func EarnedLTE(v int64) predicate.Wallet {
	return predicate.Wallet(sql.FieldLTE(FieldEarned, v))
}

// VirtualTotalEQ applies the EQ predicate on the "virtual_total" field.
func VirtualTotalEQ(v int64) predicate.Wallet {
	return predicate.Wallet(sql.FieldEQ(FieldVirtualTotal, v))
}

// VirtualTotalNEQ applies the NEQ predicate on the "virtual_total" field.
func VirtualTotalNEQ(v int64) predicate.Wallet {
	return predicate.Wallet(sql.FieldNEQ(FieldVirtualTotal, v))
}

// VirtualTotalIn applies the In predicate on the "virtual_total" field.
func VirtualTotalIn(vs ...int64) predicate.Wallet {
	return predicate.Wallet(sql.FieldIn(FieldVirtualTotal, vs...))
}

// VirtualTotalNotIn applies the NotIn predicate on the "virtual_total" field.
func VirtualTotalNotIn(vs ...int64) predicate.Wallet {
	return predicate.Wallet(sql.FieldNotIn(FieldVirtualTotal, vs...))
}

// VirtualTotalGT applies the GT predicate on the "virtual_total" field.
func VirtualTotalGT(v int64) predicate.Wallet {
	return predicate.Wallet(sql.FieldGT(FieldVirtualTotal, v))
}

// VirtualTotalGTE applies the GTE predicate on the "virtual_total" field.
func VirtualTotalGTE(v int64) predicate.Wallet {
	return predicate.Wallet(sql.FieldGTE(FieldVirtualTotal, v))
}

// VirtualTotalLT applies the LT predicate on the "virtual_total" field.
func VirtualTotalLT(v int64) predicate.Wallet {
	return predicate.Wallet(sql.FieldLT(FieldVirtualTotal, v))
}

// VirtualTotalLTE applies the LTE predicate on the "virtual_total" field.
func VirtualTotalLTE(v int64) predicate.Wallet {
	return predicate.Wallet(sql.FieldLTE(FieldVirtualTotal, v))
}

// TotalCreditedEQ applies the EQ predicate on the "total_credited" field.
func TotalCreditedEQ(v int64) predicate.Wallet {
	return predicate.Wallet(sql.FieldEQ(FieldTotalCredited, v))
}

// TotalCreditedNEQ applies the NEQ predicate on the "total_credited" field.
func TotalCreditedNEQ(v int64) predicate.Wallet {
	return predicate.Wallet(sql.FieldNEQ(FieldTotalCredited, v))
}

// TotalCreditedIn applies the In predicate on the "total_credited" field.
func TotalCreditedIn(vs ...int64) predicate.Wallet {
	return predicate.Wallet(sql.FieldIn(FieldTotalCredited, vs...))
}

// TotalCreditedNotIn applies the NotIn predicate on the "total_credited" field.
func TotalCreditedNotIn(vs ...int64) predicate.Wallet {
	return predicate.Wallet(sql.FieldNotIn(FieldTotalCredited, vs...))
}

// TotalCreditedGT applies the GT predicate on the "total_credited" field.
func TotalCreditedGT(v int64) predicate.Wallet {
	return predicate.Wallet(sql.FieldGT(FieldTotalCredited, v))
}

// TotalCreditedGTE applies the GTE predicate on the "total_credited" field.
func TotalCreditedGTE(v int64) predicate.Wallet {
	return predicate.Wallet(sql.FieldGTE(FieldTotalCredited, v))
}

// TotalCreditedLT applies the LT predicate on the "total_credited" field.
func TotalCreditedLT(v int64) predicate.Wallet {
	return predicate.Wallet(sql.FieldLT(FieldTotalCredited, v))
}

// TotalCreditedLTE applies the LTE predicate on the "total_credited" field.
func TotalCreditedLTE(v int64) predicate.Wallet {
	return predicate.Wallet(sql.FieldLTE(FieldTotalCredited, v))
}

// TotalConsumedEQ applies the EQ predicate on the "total_consumed" field.
func TotalConsumedEQ(v int64) predicate.Wallet {
	return predicate.Wallet(sql.FieldEQ(FieldTotalConsumed, v))
}

// TotalConsumedNEQ applies the NEQ predicate on the "total_consumed" field.
func TotalConsumedNEQ(v int64) predicate.Wallet {
	return predicate.Wallet(sql.FieldNEQ(FieldTotalConsumed, v))
}

// TotalConsumedIn applies the In predicate on the "total_consumed" field.
func TotalConsumedIn(vs ...int64) predicate.Wallet {
	return predicate.Wallet(sql.FieldIn(FieldTotalConsumed, vs...))
}

// TotalConsumedNotIn applies the NotIn predicate on the "total_consumed" field.
func TotalConsumedNotIn(vs ...int64) predicate.Wallet {
	return predicate.Wallet(sql.FieldNotIn(FieldTotalConsumed, vs...))
}

// TotalConsumedGT applies the GT predicate on the "total_consumed" field.
func TotalConsumedGT(v int64) predicate.Wallet {
	return predicate.Wallet(sql.FieldGT(FieldTotalConsumed, v))
}

// TotalConsumedGTE applies the GTE predicate on the "total_consumed" field.
func TotalConsumedGTE(v int64) predicate.Wallet {
	return predicate.Wallet(sql.FieldGTE(FieldTotalConsumed, v))
}

// TotalConsumedLT applies the LT predicate on the "total_consumed" field.
func TotalConsumedLT(v int64) predicate.Wallet {
	return predicate.Wallet(sql.FieldLT(FieldTotalConsumed, v))
}

// TotalConsumedLTE applies the LTE predicate on the "total_consumed" field.
func TotalConsumedLTE(v int64) predicate.Wallet {
	return predicate.Wallet(sql.FieldLTE(FieldTotalConsumed, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Wallet {
	return predicate.Wallet(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Wallet {
	return predicate.Wallet(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Wallet {
	return predicate.Wallet(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Wallet {
	return predicate.Wallet(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Wallet {
	return predicate.Wallet(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Wallet {
	return predicate.Wallet(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Wallet {
	return predicate.Wallet(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Wallet {
	return predicate.Wallet(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Wallet {
	return predicate.Wallet(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Wallet {
	return predicate.Wallet(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Wallet {
	return predicate.Wallet(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Wallet {
	return predicate.Wallet(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Wallet {
	return predicate.Wallet(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Wallet {
	return predicate.Wallet(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Wallet {
	return predicate.Wallet(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Wallet {
	return predicate.Wallet(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Wallet) predicate.Wallet {
	return predicate.Wallet(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Wallet) predicate.Wallet {
	return predicate.Wallet(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Wallet) predicate.Wallet {
	return predicate.Wallet(sql.NotPredicates(p))
}
