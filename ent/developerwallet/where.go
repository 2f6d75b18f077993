// Code generated by ent, DO NOT EDIT.

package developerwallet

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/agentloom/loom/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.DeveloperWallet {
	return predicate.DeveloperWallet(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.DeveloperWallet {
	return predicate.DeveloperWallet(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.DeveloperWallet {
	return predicate.DeveloperWallet(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.DeveloperWallet {
	return predicate.DeveloperWallet(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.DeveloperWallet {
	return predicate.DeveloperWallet(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.DeveloperWallet {
	return predicate.DeveloperWallet(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.DeveloperWallet {
	return predicate.DeveloperWallet(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.DeveloperWallet {
	return predicate.DeveloperWallet(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.DeveloperWallet {
	return predicate.DeveloperWallet(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.DeveloperWallet {
	return predicate.DeveloperWallet(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.DeveloperWallet {
	return predicate.DeveloperWallet(sql.FieldContainsFold(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.DeveloperWallet {
	return predicate.DeveloperWallet(sql.FieldEQ(FieldUserID, v))
}

// AvailableBalance applies equality check predicate on the "available_balance" field. It's identical to AvailableBalanceEQ.
func AvailableBalance(v int64) predicate.DeveloperWallet {
	return predicate.DeveloperWallet(sql.FieldEQ(FieldAvailableBalance, v))
}

// TotalEarned applies equality check predicate on the "total_earned" field. It's identical to TotalEarnedEQ.
func TotalEarned(v int64) predicate.DeveloperWallet {
	return predicate.DeveloperWallet(sql.FieldEQ(FieldTotalEarned, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.DeveloperWallet {
	return predicate.DeveloperWallet(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.DeveloperWallet {
	return predicate.DeveloperWallet(sql.FieldEQ(FieldUpdatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.DeveloperWallet {
	return predicate.DeveloperWallet(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.DeveloperWallet {
	return predicate.DeveloperWallet(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.DeveloperWallet {
	return predicate.DeveloperWallet(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.DeveloperWallet {
	return predicate.DeveloperWallet(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.DeveloperWallet {
	return predicate.DeveloperWallet(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.DeveloperWallet {
	return predicate.DeveloperWallet(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.DeveloperWallet {
	return predicate.DeveloperWallet(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.DeveloperWallet {
	return predicate.DeveloperWallet(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.DeveloperWallet {
	return predicate.DeveloperWallet(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.DeveloperWallet {
	return predicate.DeveloperWallet(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.DeveloperWallet {
	return predicate.DeveloperWallet(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.DeveloperWallet {
	return predicate.DeveloperWallet(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.DeveloperWallet {
	return predicate.DeveloperWallet(sql.FieldContainsFold(FieldUserID, v))
}

// AvailableBalanceEQ applies the EQ predicate on the "available_balance" field.
func AvailableBalanceEQ(v int64) predicate.DeveloperWallet {
	return predicate.DeveloperWallet(sql.FieldEQ(FieldAvailableBalance, v))
}

// AvailableBalanceNEQ applies the NEQ predicate on the "available_balance" field.
func AvailableBalanceNEQ(v int64) predicate.DeveloperWallet {
	return predicate.DeveloperWallet(sql.FieldNEQ(FieldAvailableBalance, v))
}

// AvailableBalanceIn applies the In predicate on the "available_balance" field.
func AvailableBalanceIn(vs ...int64) predicate.DeveloperWallet {
	return predicate.DeveloperWallet(sql.FieldIn(FieldAvailableBalance, vs...))
}

// AvailableBalanceNotIn applies the NotIn predicate on the "available_balance" field.
func AvailableBalanceNotIn(vs ...int64) predicate.DeveloperWallet {
	return predicate.DeveloperWallet(sql.FieldNotIn(FieldAvailableBalance, vs...))
}

// AvailableBalanceGT applies the GT predicate on the "available_balance" field.
func AvailableBalanceGT(v int64) predicate.DeveloperWallet {
	return predicate.DeveloperWallet(sql.FieldGT(FieldAvailableBalance, v))
}

// AvailableBalanceGTE applies the GTE predicate on the "available_balance" field.
func AvailableBalanceGTE(v int64) predicate.DeveloperWallet {
	return predicate.DeveloperWallet(sql.FieldGTE(FieldAvailableBalance, v))
}

// AvailableBalanceLT applies the LT predicate on the "available_balance" field.
func AvailableBalanceLT(v int64) predicate.DeveloperWallet {
	return predicate.DeveloperWallet(sql.FieldLT(FieldAvailableBalance, v))
}

// AvailableBalanceLTE applies the LTE predicate on the "available_balance" field.
func AvailableBalanceLTE(v int64) predicate.DeveloperWallet {
	return predicate.DeveloperWallet(sql.FieldLTE(FieldAvailableBalance, v))
}

// TotalEarnedEQ applies the EQ predicate on the "total_earned" field.
func TotalEarnedEQ(v int64) predicate.DeveloperWallet {
	return predicate.DeveloperWallet(sql.FieldEQ(FieldTotalEarned, v))
}

// TotalEarnedNEQ applies the NEQ predicate on the "total_earned" field.
func TotalEarnedNEQ(v int64) predicate.DeveloperWallet {
	return predicate.DeveloperWallet(sql.FieldNEQ(FieldTotalEarned, v))
}

// TotalEarnedIn applies the In predicate on the "total_earned" field.
func TotalEarnedIn(vs ...int64) predicate.DeveloperWallet {
	return predicate.DeveloperWallet(sql.FieldIn(FieldTotalEarned, vs...))
}

// TotalEarnedNotIn applies the NotIn predicate on the "total_earned" field.
func TotalEarnedNotIn(vs ...int64) predicate.DeveloperWallet {
	return predicate.DeveloperWallet(sql.FieldNotIn(FieldTotalEarned, vs...))
}

// TotalEarnedGT applies the GT predicate on the "total_earned" field.
func TotalEarnedGT(v int64) predicate.DeveloperWallet {
	return predicate.DeveloperWallet(sql.FieldGT(FieldTotalEarned, v))
}

// TotalEarnedGTE applies the GTE predicate on the "total_earned" field.
func TotalEarnedGTE(v int64) predicate.DeveloperWallet {
	return predicate.DeveloperWallet(sql.FieldGTE(FieldTotalEarned, v))
}

// TotalEarnedLT applies the LT predicate on the "total_earned" field.
func TotalEarnedLT(v int64) predicate.DeveloperWallet {
	return predicate.DeveloperWallet(sql.FieldLT(FieldTotalEarned, v))
}

// TotalEarnedLTE applies the LTE predicate on the "total_earned" field.
func TotalEarnedLTE(v int64) predicate.DeveloperWallet {
	return predicate.DeveloperWallet(sql.FieldLTE(FieldTotalEarned, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.DeveloperWallet {
	return predicate.DeveloperWallet(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.DeveloperWallet {
	return predicate.DeveloperWallet(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.DeveloperWallet {
	return predicate.DeveloperWallet(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.DeveloperWallet {
	return predicate.DeveloperWallet(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.DeveloperWallet {
	return predicate.DeveloperWallet(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.DeveloperWallet {
	return predicate.DeveloperWallet(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.DeveloperWallet {
	return predicate.DeveloperWallet(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.DeveloperWallet {
	return predicate.DeveloperWallet(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.DeveloperWallet {
	return predicate.DeveloperWallet(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.DeveloperWallet {
	return predicate.DeveloperWallet(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.DeveloperWallet {
	return predicate.DeveloperWallet(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.DeveloperWallet {
	return predicate.DeveloperWallet(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.DeveloperWallet {
	return predicate.DeveloperWallet(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.DeveloperWallet {
	return predicate.DeveloperWallet(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.DeveloperWallet {
	return predicate.DeveloperWallet(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.DeveloperWallet {
	return predicate.DeveloperWallet(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.DeveloperWallet) predicate.DeveloperWallet {
	return predicate.DeveloperWallet(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.DeveloperWallet) predicate.DeveloperWallet {
	return predicate.DeveloperWallet(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.DeveloperWallet) predicate.DeveloperWallet {
	return predicate.DeveloperWallet(sql.NotPredicates(p))
}
