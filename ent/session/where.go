// Code generated by ent, DO NOT EDIT.

package session

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/agentloom/loom/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Session {
	return predicate.Session(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Session {
	return predicate.Session(sql.FieldContainsFold(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldUserID, v))
}

// AgentID applies equality check predicate on the "agent_id" field. It's identical to AgentIDEQ.
func AgentID(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldAgentID, v))
}

// MarketplaceID applies equality check predicate on the "marketplace_id" field. It's identical to MarketplaceIDEQ.
func MarketplaceID(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldMarketplaceID, v))
}

// DeveloperUserID applies equality check predicate on the "developer_user_id" field. It's identical to DeveloperUserIDEQ.
func DeveloperUserID(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldDeveloperUserID, v))
}

// ConfigEditable applies equality check predicate on the "config_editable" field. It's identical to ConfigEditableEQ.
func ConfigEditable(v bool) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldConfigEditable, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldTitle, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldUpdatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.Session {
	return predicate.Session(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.Session {
	return predicate.Session(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.Session {
	return predicate.Session(sql.FieldContainsFold(FieldUserID, v))
}

// AgentIDEQ applies the EQ predicate on the "agent_id" field.
func AgentIDEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldAgentID, v))
}

// AgentIDNEQ applies the NEQ predicate on the "agent_id" field.
func AgentIDNEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldAgentID, v))
}

// AgentIDIn applies the In predicate on the "agent_id" field.
func AgentIDIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldAgentID, vs...))
}

// AgentIDNotIn applies the NotIn predicate on the "agent_id" field.
func AgentIDNotIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldAgentID, vs...))
}

// AgentIDGT applies the GT predicate on the "agent_id" field.
func AgentIDGT(v string) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldAgentID, v))
}

// AgentIDGTE applies the GTE predicate on the "agent_id" field.
func AgentIDGTE(v string) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldAgentID, v))
}

// AgentIDLT applies the LT predicate on the "agent_id" field.
func AgentIDLT(v string) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldAgentID, v))
}

// AgentIDLTE applies the LTE predicate on the "agent_id" field.
func AgentIDLTE(v string) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldAgentID, v))
}

// AgentIDContains applies the Contains predicate on the "agent_id" field.
func AgentIDContains(v string) predicate.Session {
	return predicate.Session(sql.FieldContains(FieldAgentID, v))
}

// AgentIDHasPrefix applies the HasPrefix predicate on the "agent_id" field.
func AgentIDHasPrefix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasPrefix(FieldAgentID, v))
}

// AgentIDHasSuffix applies the HasSuffix predicate on the "agent_id" field.
func AgentIDHasSuffix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasSuffix(FieldAgentID, v))
}

// AgentIDEqualFold applies the EqualFold predicate on the "agent_id" field.
func AgentIDEqualFold(v string) predicate.Session {
	return predicate.Session(sql.FieldEqualFold(FieldAgentID, v))
}

// AgentIDContainsFold applies the ContainsFold predicate on the "agent_id" field.
func AgentIDContainsFold(v string) predicate.Session {
	return predicate.Session(sql.FieldContainsFold(FieldAgentID, v))
}

// MarketplaceIDEQ applies the EQ predicate on the "marketplace_id" field.
func MarketplaceIDEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldMarketplaceID, v))
}

// MarketplaceIDNEQ applies the NEQ predicate on the "marketplace_id" field.
func MarketplaceIDNEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldMarketplaceID, v))
}

// MarketplaceIDIn applies the In predicate on the "marketplace_id" field.
func MarketplaceIDIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldMarketplaceID, vs...))
}

// MarketplaceIDNotIn applies the NotIn predicate on the "marketplace_id" field.
func MarketplaceIDNotIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldMarketplaceID, vs...))
}

// MarketplaceIDGT applies the GT predicate on the "marketplace_id" field.
func MarketplaceIDGT(v string) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldMarketplaceID, v))
}

// MarketplaceIDGTE applies the GTE predicate on the "marketplace_id" field.
func MarketplaceIDGTE(v string) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldMarketplaceID, v))
}

// MarketplaceIDLT applies the LT predicate on the "marketplace_id" field.
func MarketplaceIDLT(v string) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldMarketplaceID, v))
}

// MarketplaceIDLTE applies the LTE predicate on the "marketplace_id" field.
func MarketplaceIDLTE(v string) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldMarketplaceID, v))
}

// MarketplaceIDContains applies the Contains predicate on the "marketplace_id" field.
func MarketplaceIDContains(v string) predicate.Session {
	return predicate.Session(sql.FieldContains(FieldMarketplaceID, v))
}

// MarketplaceIDHasPrefix applies the HasPrefix predicate on the "marketplace_id" field.
func MarketplaceIDHasPrefix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasPrefix(FieldMarketplaceID, v))
}

// MarketplaceIDHasSuffix applies the HasSuffix predicate on the "marketplace_id" field.
func MarketplaceIDHasSuffix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasSuffix(FieldMarketplaceID, v))
}

// MarketplaceIDIsNil applies the IsNil predicate on the "marketplace_id" field.
func MarketplaceIDIsNil() predicate.Session {
	return predicate.Session(sql.FieldIsNull(FieldMarketplaceID))
}

// MarketplaceIDNotNil applies the NotNil predicate on the "marketplace_id" field.
func MarketplaceIDNotNil() predicate.Session {
	return predicate.Session(sql.FieldNotNull(FieldMarketplaceID))
}

// MarketplaceIDEqualFold applies the EqualFold predicate on the "marketplace_id" field.
func MarketplaceIDEqualFold(v string) predicate.Session {
	return predicate.Session(sql.FieldEqualFold(FieldMarketplaceID, v))
}

// MarketplaceIDContainsFold applies the ContainsFold predicate on the "marketplace_id" field.
func MarketplaceIDContainsFold(v string) predicate.Session {
	return predicate.Session(sql.FieldContainsFold(FieldMarketplaceID, v))
}

// DeveloperUserIDEQ applies the EQ predicate on the "developer_user_id" field.
func DeveloperUserIDEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldDeveloperUserID, v))
}

// DeveloperUserIDNEQ applies the NEQ predicate on the "developer_user_id" field.
func DeveloperUserIDNEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldDeveloperUserID, v))
}

// DeveloperUserIDIn applies the In predicate on the "developer_user_id" field.
func DeveloperUserIDIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldDeveloperUserID, vs...))
}

// DeveloperUserIDNotIn applies the NotIn predicate on the "developer_user_id" field.
func DeveloperUserIDNotIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldDeveloperUserID, vs...))
}

// DeveloperUserIDGT applies the GT predicate on the "developer_user_id" field.
func DeveloperUserIDGT(v string) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldDeveloperUserID, v))
}

// DeveloperUserIDGTE applies the GTE predicate on the "developer_user_id" field.
func DeveloperUserIDGTE(v string) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldDeveloperUserID, v))
}

// DeveloperUserIDLT applies the LT predicate on the "developer_user_id" field.
func DeveloperUserIDLT(v string) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldDeveloperUserID, v))
}

// DeveloperUserIDLTE applies the LTE predicate on the "developer_user_id" field.
func DeveloperUserIDLTE(v string) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldDeveloperUserID, v))
}

// DeveloperUserIDContains applies the Contains predicate on the "developer_user_id" field.
func DeveloperUserIDContains(v string) predicate.Session {
	return predicate.Session(sql.FieldContains(FieldDeveloperUserID, v))
}

// DeveloperUserIDHasPrefix applies the HasPrefix predicate on the "developer_user_id" field.
func DeveloperUserIDHasPrefix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasPrefix(FieldDeveloperUserID, v))
}

// DeveloperUserIDHasSuffix applies the HasSuffix predicate on the "developer_user_id" field.
func DeveloperUserIDHasSuffix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasSuffix(FieldDeveloperUserID, v))
}

// DeveloperUserIDIsNil applies the IsNil predicate on the "developer_user_id" field.
func DeveloperUserIDIsNil() predicate.Session {
	return predicate.Session(sql.FieldIsNull(FieldDeveloperUserID))
}

// DeveloperUserIDNotNil applies the NotNil predicate on the "developer_user_id" field.
func DeveloperUserIDNotNil() predicate.Session {
	return predicate.Session(sql.FieldNotNull(FieldDeveloperUserID))
}

// DeveloperUserIDEqualFold applies the EqualFold predicate on the "developer_user_id" field.
func DeveloperUserIDEqualFold(v string) predicate.Session {
	return predicate.Session(sql.FieldEqualFold(FieldDeveloperUserID, v))
}

// DeveloperUserIDContainsFold applies the ContainsFold predicate on the "developer_user_id" field.
func DeveloperUserIDContainsFold(v string) predicate.Session {
	return predicate.Session(sql.FieldContainsFold(FieldDeveloperUserID, v))
}

// ConfigEditableEQ applies the EQ predicate on the "config_editable" field.
func ConfigEditableEQ(v bool) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldConfigEditable, v))
}

// ConfigEditableNEQ applies the NEQ predicate on the "config_editable" field.
func ConfigEditableNEQ(v bool) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldConfigEditable, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.Session {
	return predicate.Session(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleIsNil applies the IsNil predicate on the "title" field.
func TitleIsNil() predicate.Session {
	return predicate.Session(sql.FieldIsNull(FieldTitle))
}

// TitleNotNil applies the NotNil predicate on the "title" field.
func TitleNotNil() predicate.Session {
	return predicate.Session(sql.FieldNotNull(FieldTitle))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.Session {
	return predicate.Session(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.Session {
	return predicate.Session(sql.FieldContainsFold(FieldTitle, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Session) predicate.Session {
	return predicate.Session(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Session) predicate.Session {
	return predicate.Session(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Session) predicate.Session {
	return predicate.Session(sql.NotPredicates(p))
}
