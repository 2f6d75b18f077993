// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/agentloom/loom/ent/chatmessage"
	"github.com/agentloom/loom/ent/consumerecord"
	"github.com/agentloom/loom/ent/developerearning"
	"github.com/agentloom/loom/ent/developerwallet"
	"github.com/agentloom/loom/ent/ledgerentry"
	"github.com/agentloom/loom/ent/scheduledtask"
	"github.com/agentloom/loom/ent/schema"
	"github.com/agentloom/loom/ent/session"
	"github.com/agentloom/loom/ent/topic"
	"github.com/agentloom/loom/ent/wallet"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	agentrunFields := schema.AgentRun{}.Fields()
	_ = agentrunFields
	chatmessageFields := schema.ChatMessage{}.Fields()
	_ = chatmessageFields
	// chatmessageDescContent is the schema descriptor for content field.
	chatmessageDescContent := chatmessageFields[5].Descriptor()
	// chatmessage.DefaultContent holds the default value on creation for the content field.
	chatmessage.DefaultContent = chatmessageDescContent.Default.(string)
	// chatmessageDescCreatedAt is the schema descriptor for created_at field.
	chatmessageDescCreatedAt := chatmessageFields[16].Descriptor()
	// chatmessage.DefaultCreatedAt holds the default value on creation for the created_at field.
	chatmessage.DefaultCreatedAt = chatmessageDescCreatedAt.Default.(func() time.Time)
	// chatmessageDescUpdatedAt is the schema descriptor for updated_at field.
	chatmessageDescUpdatedAt := chatmessageFields[17].Descriptor()
	// chatmessage.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	chatmessage.DefaultUpdatedAt = chatmessageDescUpdatedAt.Default.(func() time.Time)
	// chatmessage.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	chatmessage.UpdateDefaultUpdatedAt = chatmessageDescUpdatedAt.UpdateDefault.(func() time.Time)
	consumerecordFields := schema.ConsumeRecord{}.Fields()
	_ = consumerecordFields
	// consumerecordDescCostUsd is the schema descriptor for cost_usd field.
	consumerecordDescCostUsd := consumerecordFields[7].Descriptor()
	// consumerecord.DefaultCostUsd holds the default value on creation for the cost_usd field.
	consumerecord.DefaultCostUsd = consumerecordDescCostUsd.Default.(float64)
	// consumerecordDescInputTokens is the schema descriptor for input_tokens field.
	consumerecordDescInputTokens := consumerecordFields[9].Descriptor()
	// consumerecord.DefaultInputTokens holds the default value on creation for the input_tokens field.
	consumerecord.DefaultInputTokens = consumerecordDescInputTokens.Default.(int)
	// consumerecordDescOutputTokens is the schema descriptor for output_tokens field.
	consumerecordDescOutputTokens := consumerecordFields[10].Descriptor()
	// consumerecord.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	consumerecord.DefaultOutputTokens = consumerecordDescOutputTokens.Default.(int)
	// consumerecordDescTotalTokens is the schema descriptor for total_tokens field.
	consumerecordDescTotalTokens := consumerecordFields[11].Descriptor()
	// consumerecord.DefaultTotalTokens holds the default value on creation for the total_tokens field.
	consumerecord.DefaultTotalTokens = consumerecordDescTotalTokens.Default.(int)
	// consumerecordDescCreatedAt is the schema descriptor for created_at field.
	consumerecordDescCreatedAt := consumerecordFields[20].Descriptor()
	// consumerecord.DefaultCreatedAt holds the default value on creation for the created_at field.
	consumerecord.DefaultCreatedAt = consumerecordDescCreatedAt.Default.(func() time.Time)
	developerearningFields := schema.DeveloperEarning{}.Fields()
	_ = developerearningFields
	// developerearningDescCreatedAt is the schema descriptor for created_at field.
	developerearningDescCreatedAt := developerearningFields[7].Descriptor()
	// developerearning.DefaultCreatedAt holds the default value on creation for the created_at field.
	developerearning.DefaultCreatedAt = developerearningDescCreatedAt.Default.(func() time.Time)
	developerwalletFields := schema.DeveloperWallet{}.Fields()
	_ = developerwalletFields
	// developerwalletDescAvailableBalance is the schema descriptor for available_balance field.
	developerwalletDescAvailableBalance := developerwalletFields[2].Descriptor()
	// developerwallet.DefaultAvailableBalance holds the default value on creation for the available_balance field.
	developerwallet.DefaultAvailableBalance = developerwalletDescAvailableBalance.Default.(int64)
	// developerwalletDescTotalEarned is the schema descriptor for total_earned field.
	developerwalletDescTotalEarned := developerwalletFields[3].Descriptor()
	// developerwallet.DefaultTotalEarned holds the default value on creation for the total_earned field.
	developerwallet.DefaultTotalEarned = developerwalletDescTotalEarned.Default.(int64)
	// developerwalletDescCreatedAt is the schema descriptor for created_at field.
	developerwalletDescCreatedAt := developerwalletFields[4].Descriptor()
	// developerwallet.DefaultCreatedAt holds the default value on creation for the created_at field.
	developerwallet.DefaultCreatedAt = developerwalletDescCreatedAt.Default.(func() time.Time)
	// developerwalletDescUpdatedAt is the schema descriptor for updated_at field.
	developerwalletDescUpdatedAt := developerwalletFields[5].Descriptor()
	// developerwallet.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	developerwallet.DefaultUpdatedAt = developerwalletDescUpdatedAt.Default.(func() time.Time)
	// developerwallet.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	developerwallet.UpdateDefaultUpdatedAt = developerwalletDescUpdatedAt.UpdateDefault.(func() time.Time)
	ledgerentryFields := schema.LedgerEntry{}.Fields()
	_ = ledgerentryFields
	// ledgerentryDescCreatedAt is the schema descriptor for created_at field.
	ledgerentryDescCreatedAt := ledgerentryFields[9].Descriptor()
	// ledgerentry.DefaultCreatedAt holds the default value on creation for the created_at field.
	ledgerentry.DefaultCreatedAt = ledgerentryDescCreatedAt.Default.(func() time.Time)
	scheduledtaskFields := schema.ScheduledTask{}.Fields()
	_ = scheduledtaskFields
	// scheduledtaskDescIntervalSeconds is the schema descriptor for interval_seconds field.
	scheduledtaskDescIntervalSeconds := scheduledtaskFields[7].Descriptor()
	// scheduledtask.DefaultIntervalSeconds holds the default value on creation for the interval_seconds field.
	scheduledtask.DefaultIntervalSeconds = scheduledtaskDescIntervalSeconds.Default.(int64)
	// scheduledtaskDescRunCount is the schema descriptor for run_count field.
	scheduledtaskDescRunCount := scheduledtaskFields[9].Descriptor()
	// scheduledtask.DefaultRunCount holds the default value on creation for the run_count field.
	scheduledtask.DefaultRunCount = scheduledtaskDescRunCount.Default.(int)
	// scheduledtaskDescMaxRuns is the schema descriptor for max_runs field.
	scheduledtaskDescMaxRuns := scheduledtaskFields[10].Descriptor()
	// scheduledtask.DefaultMaxRuns holds the default value on creation for the max_runs field.
	scheduledtask.DefaultMaxRuns = scheduledtaskDescMaxRuns.Default.(int)
	// scheduledtaskDescCreatedAt is the schema descriptor for created_at field.
	scheduledtaskDescCreatedAt := scheduledtaskFields[15].Descriptor()
	// scheduledtask.DefaultCreatedAt holds the default value on creation for the created_at field.
	scheduledtask.DefaultCreatedAt = scheduledtaskDescCreatedAt.Default.(func() time.Time)
	sessionFields := schema.Session{}.Fields()
	_ = sessionFields
	// sessionDescConfigEditable is the schema descriptor for config_editable field.
	sessionDescConfigEditable := sessionFields[5].Descriptor()
	// session.DefaultConfigEditable holds the default value on creation for the config_editable field.
	session.DefaultConfigEditable = sessionDescConfigEditable.Default.(bool)
	// sessionDescCreatedAt is the schema descriptor for created_at field.
	sessionDescCreatedAt := sessionFields[7].Descriptor()
	// session.DefaultCreatedAt holds the default value on creation for the created_at field.
	session.DefaultCreatedAt = sessionDescCreatedAt.Default.(func() time.Time)
	// sessionDescUpdatedAt is the schema descriptor for updated_at field.
	sessionDescUpdatedAt := sessionFields[8].Descriptor()
	// session.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	session.DefaultUpdatedAt = sessionDescUpdatedAt.Default.(func() time.Time)
	// session.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	session.UpdateDefaultUpdatedAt = sessionDescUpdatedAt.UpdateDefault.(func() time.Time)
	topicFields := schema.Topic{}.Fields()
	_ = topicFields
	// topicDescTitle is the schema descriptor for title field.
	topicDescTitle := topicFields[3].Descriptor()
	// topic.DefaultTitle holds the default value on creation for the title field.
	topic.DefaultTitle = topicDescTitle.Default.(string)
	// topicDescCreatedAt is the schema descriptor for created_at field.
	topicDescCreatedAt := topicFields[5].Descriptor()
	// topic.DefaultCreatedAt holds the default value on creation for the created_at field.
	topic.DefaultCreatedAt = topicDescCreatedAt.Default.(func() time.Time)
	walletFields := schema.Wallet{}.Fields()
	_ = walletFields
	// walletDescFree is the schema descriptor for free field.
	walletDescFree := walletFields[2].Descriptor()
	// wallet.DefaultFree holds the default value on creation for the free field.
	wallet.DefaultFree = walletDescFree.Default.(int64)
	// walletDescPaid is the schema descriptor for paid field.
	walletDescPaid := walletFields[3].Descriptor()
	// wallet.DefaultPaid holds the default value on creation for the paid field.
	wallet.DefaultPaid = walletDescPaid.Default.(int64)
	// walletDescEarned is the schema descriptor for earned field.
	walletDescEarned := walletFields[4].Descriptor()
	// wallet.DefaultEarned holds the default value on creation for the earned field.
	wallet.DefaultEarned = walletDescEarned.Default.(int64)
	// walletDescVirtualTotal is the schema descriptor for virtual_total field.
	walletDescVirtualTotal := walletFields[5].Descriptor()
	// wallet.DefaultVirtualTotal holds the default value on creation for the virtual_total field.
	wallet.DefaultVirtualTotal = walletDescVirtualTotal.Default.(int64)
	// walletDescTotalCredited is the schema descriptor for total_credited field.
	walletDescTotalCredited := walletFields[6].Descriptor()
	// wallet.DefaultTotalCredited holds the default value on creation for the total_credited field.
	wallet.DefaultTotalCredited = walletDescTotalCredited.Default.(int64)
	// walletDescTotalConsumed is the schema descriptor for total_consumed field.
	walletDescTotalConsumed := walletFields[7].Descriptor()
	// wallet.DefaultTotalConsumed holds the default value on creation for the total_consumed field.
	wallet.DefaultTotalConsumed = walletDescTotalConsumed.Default.(int64)
	// walletDescCreatedAt is the schema descriptor for created_at field.
	walletDescCreatedAt := walletFields[8].Descriptor()
	// wallet.DefaultCreatedAt holds the default value on creation for the created_at field.
	wallet.DefaultCreatedAt = walletDescCreatedAt.Default.(func() time.Time)
	// walletDescUpdatedAt is the schema descriptor for updated_at field.
	walletDescUpdatedAt := walletFields[9].Descriptor()
	// wallet.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	wallet.DefaultUpdatedAt = walletDescUpdatedAt.Default.(func() time.Time)
	// wallet.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	wallet.UpdateDefaultUpdatedAt = walletDescUpdatedAt.UpdateDefault.(func() time.Time)
}
