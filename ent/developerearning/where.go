// Code generated by ent, DO NOT EDIT.

package developerearning

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/agentloom/loom/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.DeveloperEarning {
	return predicate.DeveloperEarning(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.DeveloperEarning {
	return predicate.DeveloperEarning(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.DeveloperEarning {
	return predicate.DeveloperEarning(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.DeveloperEarning {
	return predicate.DeveloperEarning(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.DeveloperEarning {
	return predicate.DeveloperEarning(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.DeveloperEarning {
	return predicate.DeveloperEarning(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.DeveloperEarning {
	return predicate.DeveloperEarning(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.DeveloperEarning {
	return predicate.DeveloperEarning(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.DeveloperEarning {
	return predicate.DeveloperEarning(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.DeveloperEarning {
	return predicate.DeveloperEarning(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.DeveloperEarning {
	return predicate.DeveloperEarning(sql.FieldContainsFold(FieldID, id))
}

// DeveloperUserID applies equality check predicate on the "developer_user_id" field. It's identical to DeveloperUserIDEQ.
func DeveloperUserID(v string) predicate.DeveloperEarning {
	return predicate.DeveloperEarning(sql.FieldEQ(FieldDeveloperUserID, v))
}

// ConsumerUserID applies equality check predicate on the "consumer_user_id" field. It's identical to ConsumerUserIDEQ.
func ConsumerUserID(v string) predicate.DeveloperEarning {
	return predicate.DeveloperEarning(sql.FieldEQ(FieldConsumerUserID, v))
}

// MarketplaceID applies equality check predicate on the "marketplace_id" field. It's identical to MarketplaceIDEQ.
func MarketplaceID(v string) predicate.DeveloperEarning {
	return predicate.DeveloperEarning(sql.FieldEQ(FieldMarketplaceID, v))
}

// Amount applies equality check predicate on the "amount" field. It's identical to AmountEQ.
func Amount(v int64) predicate.DeveloperEarning {
	return predicate.DeveloperEarning(sql.FieldEQ(FieldAmount, v))
}

// TotalConsumed applies equality check predicate on the "total_consumed" field. It's identical to TotalConsumedEQ.
func TotalConsumed(v int64) predicate.DeveloperEarning {
	return predicate.DeveloperEarning(sql.FieldEQ(FieldTotalConsumed, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.DeveloperEarning {
	return predicate.DeveloperEarning(sql.FieldEQ(FieldCreatedAt, v))
}

// DeveloperUserIDEQ applies the EQ predicate on the "developer_user_id" field.
func DeveloperUserIDEQ(v string) predicate.DeveloperEarning {
	return predicate.DeveloperEarning(sql.FieldEQ(FieldDeveloperUserID, v))
}

// DeveloperUserIDNEQ applies the NEQ predicate on the "developer_user_id" field.
func DeveloperUserIDNEQ(v string) predicate.DeveloperEarning {
	return predicate.DeveloperEarning(sql.FieldNEQ(FieldDeveloperUserID, v))
}

// DeveloperUserIDIn applies the In predicate on the "developer_user_id" field.
func DeveloperUserIDIn(vs ...string) predicate.DeveloperEarning {
	return predicate.DeveloperEarning(sql.FieldIn(FieldDeveloperUserID, vs...))
}

// DeveloperUserIDNotIn applies the NotIn predicate on the "developer_user_id" field.
func DeveloperUserIDNotIn(vs ...string) predicate.DeveloperEarning {
	return predicate.DeveloperEarning(sql.FieldNotIn(FieldDeveloperUserID, vs...))
}

// DeveloperUserIDGT applies the GT predicate on the "developer_user_id" field.
func DeveloperUserIDGT(v string) predicate.DeveloperEarning {
	return predicate.DeveloperEarning(sql.FieldGT(FieldDeveloperUserID, v))
}

// DeveloperUserIDGTE applies the GTE predicate on the "developer_user_id" field.
func DeveloperUserIDGTE(v string) predicate.DeveloperEarning {
	return predicate.DeveloperEarning(sql.FieldGTE(FieldDeveloperUserID, v))
}

// DeveloperUserIDLT applies the LT predicate on the "developer_user_id" field.
func DeveloperUserIDLT(v string) predicate.DeveloperEarning {
	return predicate.DeveloperEarning(sql.FieldLT(FieldDeveloperUserID, v))
}

// DeveloperUserIDLTE applies the LTE predicate on the "developer_user_id" field.
func DeveloperUserIDLTE(v string) predicate.DeveloperEarning {
	return predicate.DeveloperEarning(sql.FieldLTE(FieldDeveloperUserID, v))
}

// DeveloperUserIDContains applies the Contains predicate on the "developer_user_id" field.
func DeveloperUserIDContains(v string) predicate.DeveloperEarning {
	return predicate.DeveloperEarning(sql.FieldContains(FieldDeveloperUserID, v))
}

// DeveloperUserIDHasPrefix applies the HasPrefix predicate on the "developer_user_id" field.
func DeveloperUserIDHasPrefix(v string) predicate.DeveloperEarning {
	return predicate.DeveloperEarning(sql.FieldHasPrefix(FieldDeveloperUserID, v))
}

// DeveloperUserIDHasSuffix applies the HasSuffix predicate on the "developer_user_id" field.
func DeveloperUserIDHasSuffix(v string) predicate.DeveloperEarning {
	return predicate.DeveloperEarning(sql.FieldHasSuffix(FieldDeveloperUserID, v))
}

// DeveloperUserIDEqualFold applies the EqualFold predicate on the "developer_user_id" field.
func DeveloperUserIDEqualFold(v string) predicate.DeveloperEarning {
	return predicate.DeveloperEarning(sql.FieldEqualFold(FieldDeveloperUserID, v))
}

// DeveloperUserIDContainsFold applies the ContainsFold predicate on the "developer_user_id" field.
func DeveloperUserIDContainsFold(v string) predicate.DeveloperEarning {
	return predicate.DeveloperEarning(sql.FieldContainsFold(FieldDeveloperUserID, v))
}

// ConsumerUserIDEQ applies the EQ predicate on the "consumer_user_id" field.
func ConsumerUserIDEQ(v string) predicate.DeveloperEarning {
	return predicate.DeveloperEarning(sql.FieldEQ(FieldConsumerUserID, v))
}

// ConsumerUserIDNEQ applies the NEQ predicate on the "consumer_user_id" field.
func ConsumerUserIDNEQ(v string) predicate.DeveloperEarning {
	return predicate.DeveloperEarning(sql.FieldNEQ(FieldConsumerUserID, v))
}

// ConsumerUserIDIn applies the In predicate on the "consumer_user_id" field.
func ConsumerUserIDIn(vs ...string) predicate.DeveloperEarning {
	return predicate.DeveloperEarning(sql.FieldIn(FieldConsumerUserID, vs...))
}

// ConsumerUserIDNotIn applies the NotIn predicate on the "consumer_user_id" field.
func ConsumerUserIDNotIn(vs ...string) predicate.DeveloperEarning {
	return predicate.DeveloperEarning(sql.FieldNotIn(FieldConsumerUserID, vs...))
}

// ConsumerUserIDGT applies the GT predicate on the "consumer_user_id" field.
func ConsumerUserIDGT(v string) predicate.DeveloperEarning {
	return predicate.DeveloperEarning(sql.FieldGT(FieldConsumerUserID, v))
}

// ConsumerUserIDGTE applies the GTE predicate on the "consumer_user_id" field.
func ConsumerUserIDGTE(v string) predicate.DeveloperEarning {
	return predicate.DeveloperEarning(sql.FieldGTE(FieldConsumerUserID, v))
}

// ConsumerUserIDLT applies the LT predicate on the "consumer_user_id" field.
func ConsumerUserIDLT(v string) predicate.DeveloperEarning {
	return predicate.DeveloperEarning(sql.FieldLT(FieldConsumerUserID, v))
}

// ConsumerUserIDLTE applies the LTE predicate on the "consumer_user_id" field.
func ConsumerUserIDLTE(v string) predicate.DeveloperEarning {
	return predicate.DeveloperEarning(sql.FieldLTE(FieldConsumerUserID, v))
}

// ConsumerUserIDContains applies the Contains predicate on the "consumer_user_id" field.
func ConsumerUserIDContains(v string) predicate.DeveloperEarning {
	return predicate.DeveloperEarning(sql.FieldContains(FieldConsumerUserID, v))
}

// ConsumerUserIDHasPrefix applies the HasPrefix predicate on the "consumer_user_id" field.
func ConsumerUserIDHasPrefix(v string) predicate.DeveloperEarning {
	return predicate.DeveloperEarning(sql.FieldHasPrefix(FieldConsumerUserID, v))
}

// ConsumerUserIDHasSuffix applies the HasSuffix predicate on the "consumer_user_id" field.
func ConsumerUserIDHasSuffix(v string) predicate.DeveloperEarning {
	return predicate.DeveloperEarning(sql.FieldHasSuffix(FieldConsumerUserID, v))
}

// ConsumerUserIDEqualFold applies the EqualFold predicate on the "consumer_user_id" field.
func ConsumerUserIDEqualFold(v string) predicate.DeveloperEarning {
	return predicate.DeveloperEarning(sql.FieldEqualFold(FieldConsumerUserID, v))
}

// ConsumerUserIDContainsFold applies the ContainsFold predicate on the "consumer_user_id" field.
func ConsumerUserIDContainsFold(v string) predicate.DeveloperEarning {
	return predicate.DeveloperEarning(sql.FieldContainsFold(FieldConsumerUserID, v))
}

// MarketplaceIDEQ applies the EQ predicate on the "marketplace_id" field.
func MarketplaceIDEQ(v string) predicate.DeveloperEarning {
	return predicate.DeveloperEarning(sql.FieldEQ(FieldMarketplaceID, v))
}

// MarketplaceIDNEQ applies the NEQ predicate on the "marketplace_id" field.
func MarketplaceIDNEQ(v string) predicate.DeveloperEarning {
	return predicate.DeveloperEarning(sql.FieldNEQ(FieldMarketplaceID, v))
}

// MarketplaceIDIn applies the In predicate on the "marketplace_id" field.
func MarketplaceIDIn(vs ...string) predicate.DeveloperEarning {
	return predicate.DeveloperEarning(sql.FieldIn(FieldMarketplaceID, vs...))
}

// MarketplaceIDNotIn applies the NotIn predicate on the "marketplace_id" field.
func MarketplaceIDNotIn(vs ...string) predicate.DeveloperEarning {
	return predicate.DeveloperEarning(sql.FieldNotIn(FieldMarketplaceID, vs...))
}

// MarketplaceIDGT applies the GT predicate on the "marketplace_id" field.
func MarketplaceIDGT(v string) predicate.DeveloperEarning {
	return predicate.DeveloperEarning(sql.FieldGT(FieldMarketplaceID, v))
}

// MarketplaceIDGTE applies the GTE predicate on the "marketplace_id" field.
func MarketplaceIDGTE(v string) predicate.DeveloperEarning {
	return predicate.DeveloperEarning(sql.FieldGTE(FieldMarketplaceID, v))
}

// MarketplaceIDLT applies the LT predicate on the "marketplace_id" field.
func MarketplaceIDLT(v string) predicate.DeveloperEarning {
	return predicate.DeveloperEarning(sql.FieldLT(FieldMarketplaceID, v))
}

// MarketplaceIDLTE applies the LTE predicate on the "marketplace_id" field.
func MarketplaceIDLTE(v string) predicate.DeveloperEarning {
	return predicate.DeveloperEarning(sql.FieldLTE(FieldMarketplaceID, v))
}

// MarketplaceIDContains applies the Contains predicate on the "marketplace_id" field.
func MarketplaceIDContains(v string) predicate.DeveloperEarning {
	return predicate.DeveloperEarning(sql.FieldContains(FieldMarketplaceID, v))
}

// MarketplaceIDHasPrefix applies the HasPrefix predicate on the "marketplace_id" field.
func MarketplaceIDHasPrefix(v string) predicate.DeveloperEarning {
	return predicate.DeveloperEarning(sql.FieldHasPrefix(FieldMarketplaceID, v))
}

// MarketplaceIDHasSuffix applies the HasSuffix predicate on the "marketplace_id" field.
func MarketplaceIDHasSuffix(v string) predicate.DeveloperEarning {
	return predicate.DeveloperEarning(sql.FieldHasSuffix(FieldMarketplaceID, v))
}

// MarketplaceIDEqualFold applies the EqualFold predicate on the "marketplace_id" field.
func MarketplaceIDEqualFold(v string) predicate.DeveloperEarning {
	return predicate.DeveloperEarning(sql.FieldEqualFold(FieldMarketplaceID, v))
}

// MarketplaceIDContainsFold applies the ContainsFold predicate on the "marketplace_id" field.
func MarketplaceIDContainsFold(v string) predicate.DeveloperEarning {
	return predicate.DeveloperEarning(sql.FieldContainsFold(FieldMarketplaceID, v))
}

// AmountEQ applies the EQ predicate on the "amount" field.
func AmountEQ(v int64) predicate.DeveloperEarning {
	return predicate.DeveloperEarning(sql.FieldEQ(FieldAmount, v))
}

// AmountNEQ applies the NEQ predicate on the "amount" field.
func AmountNEQ(v int64) predicate.DeveloperEarning {
	return predicate.DeveloperEarning(sql.FieldNEQ(FieldAmount, v))
}

// AmountIn applies the In predicate on the "amount" field.
func AmountIn(vs ...int64) predicate.DeveloperEarning {
	return predicate.DeveloperEarning(sql.FieldIn(FieldAmount, vs...))
}

// AmountNotIn applies the NotIn predicate on the "amount" field.
func AmountNotIn(vs ...int64) predicate.DeveloperEarning {
	return predicate.DeveloperEarning(sql.FieldNotIn(FieldAmount, vs...))
}

// AmountGT applies the GT predicate on the "amount" field.
func AmountGT(v int64) predicate.DeveloperEarning {
	return predicate.DeveloperEarning(sql.FieldGT(FieldAmount, v))
}

// AmountGTE applies the GTE predicate on the "amount" field.
func AmountGTE(v int64) predicate.DeveloperEarning {
	return predicate.DeveloperEarning(sql.FieldGTE(FieldAmount, v))
}

// AmountLT applies the LT predicate on the "amount" field.
func AmountLT(v int64) predicate.DeveloperEarning {
	return predicate.DeveloperEarning(sql.FieldLT(FieldAmount, v))
}

// AmountLTE applies the LTE predicate on the "amount" field.
func AmountLTE(v int64) predicate.DeveloperEarning {
	return predicate.DeveloperEarning(sql.FieldLTE(FieldAmount, v))
}

// TotalConsumedEQ applies the EQ predicate on the "total_consumed" field.
func TotalConsumedEQ(v int64) predicate.DeveloperEarning {
	return predicate.DeveloperEarning(sql.FieldEQ(FieldTotalConsumed, v))
}

// TotalConsumedNEQ applies the NEQ predicate on the "total_consumed" field.
func TotalConsumedNEQ(v int64) predicate.DeveloperEarning {
	return predicate.DeveloperEarning(sql.FieldNEQ(FieldTotalConsumed, v))
}

// TotalConsumedIn applies the In predicate on the "total_consumed" field.
func TotalConsumedIn(vs ...int64) predicate.DeveloperEarning {
	return predicate.DeveloperEarning(sql.FieldIn(FieldTotalConsumed, vs...))
}

// TotalConsumedNotIn applies the NotIn predicate on the "total_consumed" field.
func TotalConsumedNotIn(vs ...int64) predicate.DeveloperEarning {
	return predicate.DeveloperEarning(sql.FieldNotIn(FieldTotalConsumed, vs...))
}

// TotalConsumedGT applies the GT predicate on the "total_consumed" field.
func TotalConsumedGT(v int64) predicate.DeveloperEarning {
	return predicate.DeveloperEarning(sql.FieldGT(FieldTotalConsumed, v))
}

// TotalConsumedGTE applies the GTE predicate on the "total_consumed" field.
func TotalConsumedGTE(v int64) predicate.DeveloperEarning {
	return predicate.DeveloperEarning(sql.FieldGTE(FieldTotalConsumed, v))
}

// TotalConsumedLT applies the LT predicate on the "total_consumed" field.
func TotalConsumedLT(v int64) predicate.DeveloperEarning {
	return predicate.DeveloperEarning(sql.FieldLT(FieldTotalConsumed, v))
}

// TotalConsumedLTE applies the LTE predicate on the "total_consumed" field.
func TotalConsumedLTE(v int64) predicate.DeveloperEarning {
	return predicate.DeveloperEarning(sql.FieldLTE(FieldTotalConsumed, v))
}

// ForkModeEQ applies the EQ predicate on the "fork_mode" field.
func ForkModeEQ(v ForkMode) predicate.DeveloperEarning {
	return predicate.DeveloperEarning(sql.FieldEQ(FieldForkMode, v))
}

// ForkModeNEQ applies the NEQ predicate on the "fork_mode" field.
func ForkModeNEQ(v ForkMode) predicate.DeveloperEarning {
	return predicate.DeveloperEarning(sql.FieldNEQ(FieldForkMode, v))
}

// ForkModeIn applies the In predicate on the "fork_mode" field.
func ForkModeIn(vs ...ForkMode) predicate.DeveloperEarning {
	return predicate.DeveloperEarning(sql.FieldIn(FieldForkMode, vs...))
}

// ForkModeNotIn applies the NotIn predicate on the "fork_mode" field.
func ForkModeNotIn(vs ...ForkMode) predicate.DeveloperEarning {
	return predicate.DeveloperEarning(sql.FieldNotIn(FieldForkMode, vs...))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.DeveloperEarning {
	return predicate.DeveloperEarning(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.DeveloperEarning {
	return predicate.DeveloperEarning(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.DeveloperEarning {
	return predicate.DeveloperEarning(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.DeveloperEarning {
	return predicate.DeveloperEarning(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.DeveloperEarning {
	return predicate.DeveloperEarning(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.DeveloperEarning {
	return predicate.DeveloperEarning(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.DeveloperEarning {
	return predicate.DeveloperEarning(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.DeveloperEarning {
	return predicate.DeveloperEarning(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.DeveloperEarning) predicate.DeveloperEarning {
	return predicate.DeveloperEarning(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.DeveloperEarning) predicate.DeveloperEarning {
	return predicate.DeveloperEarning(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.DeveloperEarning) predicate.DeveloperEarning {
	return predicate.DeveloperEarning(sql.NotPredicates(p))
}
