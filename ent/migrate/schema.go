// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AgentRunsColumns holds the columns for the "agent_runs" table.
	AgentRunsColumns = []*schema.Column{
		{Name: "agent_run_id", Type: field.TypeString, Unique: true},
		{Name: "message_id", Type: field.TypeString},
		{Name: "session_id", Type: field.TypeString},
		{Name: "topic_id", Type: field.TypeString},
		{Name: "user_id", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"running", "completed", "cancelled", "failed"}, Default: "running"},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "ended_at", Type: field.TypeTime, Nullable: true},
		{Name: "duration_ms", Type: field.TypeInt64, Nullable: true},
		{Name: "node_data", Type: field.TypeJSON, Nullable: true},
	}
	// AgentRunsTable holds the schema information for the "agent_runs" table.
	AgentRunsTable = &schema.Table{
		Name:       "agent_runs",
		Columns:    AgentRunsColumns,
		PrimaryKey: []*schema.Column{AgentRunsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "agentrun_message_id",
				Unique:  false,
				Columns: []*schema.Column{AgentRunsColumns[1]},
			},
			{
				Name:    "agentrun_session_id_started_at",
				Unique:  false,
				Columns: []*schema.Column{AgentRunsColumns[2], AgentRunsColumns[6]},
			},
			{
				Name:    "agentrun_status",
				Unique:  false,
				Columns: []*schema.Column{AgentRunsColumns[5]},
			},
		},
	}
	// ChatMessagesColumns holds the columns for the "chat_messages" table.
	ChatMessagesColumns = []*schema.Column{
		{Name: "message_id", Type: field.TypeString, Unique: true},
		{Name: "topic_id", Type: field.TypeString},
		{Name: "session_id", Type: field.TypeString},
		{Name: "user_id", Type: field.TypeString},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"user", "assistant"}},
		{Name: "content", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "thinking_content", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "stream_id", Type: field.TypeString, Nullable: true},
		{Name: "client_id", Type: field.TypeString, Nullable: true},
		{Name: "agent_run_id", Type: field.TypeString, Nullable: true},
		{Name: "error_code", Type: field.TypeString, Nullable: true},
		{Name: "error_category", Type: field.TypeString, Nullable: true},
		{Name: "error_detail", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "user_question_data", Type: field.TypeJSON, Nullable: true},
		{Name: "file_ids", Type: field.TypeJSON, Nullable: true},
		{Name: "citations", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ChatMessagesTable holds the schema information for the "chat_messages" table.
	ChatMessagesTable = &schema.Table{
		Name:       "chat_messages",
		Columns:    ChatMessagesColumns,
		PrimaryKey: []*schema.Column{ChatMessagesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "chatmessage_topic_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{ChatMessagesColumns[1], ChatMessagesColumns[16]},
			},
			{
				Name:    "chatmessage_session_id",
				Unique:  false,
				Columns: []*schema.Column{ChatMessagesColumns[2]},
			},
			{
				Name:    "chatmessage_stream_id",
				Unique:  true,
				Columns: []*schema.Column{ChatMessagesColumns[7]},
			},
		},
	}
	// ConsumeRecordsColumns holds the columns for the "consume_records" table.
	ConsumeRecordsColumns = []*schema.Column{
		{Name: "record_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "session_id", Type: field.TypeString},
		{Name: "topic_id", Type: field.TypeString},
		{Name: "message_id", Type: field.TypeString, Nullable: true},
		{Name: "record_type", Type: field.TypeEnum, Enums: []string{"llm", "tool_call"}},
		{Name: "amount", Type: field.TypeInt64},
		{Name: "cost_usd", Type: field.TypeFloat64, Default: 0},
		{Name: "model", Type: field.TypeString, Nullable: true},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "total_tokens", Type: field.TypeInt, Default: 0},
		{Name: "tier", Type: field.TypeString, Nullable: true},
		{Name: "tool_name", Type: field.TypeString, Nullable: true},
		{Name: "tool_call_id", Type: field.TypeString, Nullable: true},
		{Name: "tool_status", Type: field.TypeString, Nullable: true},
		{Name: "consume_state", Type: field.TypeEnum, Enums: []string{"pending", "success", "failed"}, Default: "pending"},
		{Name: "agent_id", Type: field.TypeString, Nullable: true},
		{Name: "marketplace_id", Type: field.TypeString, Nullable: true},
		{Name: "developer_user_id", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "settled_at", Type: field.TypeTime, Nullable: true},
	}
	// ConsumeRecordsTable holds the schema information for the "consume_records" table.
	ConsumeRecordsTable = &schema.Table{
		Name:       "consume_records",
		Columns:    ConsumeRecordsColumns,
		PrimaryKey: []*schema.Column{ConsumeRecordsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "consumerecord_user_id_consume_state",
				Unique:  false,
				Columns: []*schema.Column{ConsumeRecordsColumns[1], ConsumeRecordsColumns[16]},
			},
			{
				Name:    "consumerecord_session_id_topic_id_consume_state",
				Unique:  false,
				Columns: []*schema.Column{ConsumeRecordsColumns[2], ConsumeRecordsColumns[3], ConsumeRecordsColumns[16]},
			},
			{
				Name:    "consumerecord_consume_state_created_at",
				Unique:  false,
				Columns: []*schema.Column{ConsumeRecordsColumns[16], ConsumeRecordsColumns[20]},
			},
		},
	}
	// DeveloperEarningsColumns holds the columns for the "developer_earnings" table.
	DeveloperEarningsColumns = []*schema.Column{
		{Name: "earning_id", Type: field.TypeString, Unique: true},
		{Name: "developer_user_id", Type: field.TypeString},
		{Name: "consumer_user_id", Type: field.TypeString},
		{Name: "marketplace_id", Type: field.TypeString},
		{Name: "amount", Type: field.TypeInt64},
		{Name: "total_consumed", Type: field.TypeInt64},
		{Name: "fork_mode", Type: field.TypeEnum, Enums: []string{"editable", "locked"}},
		{Name: "created_at", Type: field.TypeTime},
	}
	// DeveloperEarningsTable holds the schema information for the "developer_earnings" table.
	DeveloperEarningsTable = &schema.Table{
		Name:       "developer_earnings",
		Columns:    DeveloperEarningsColumns,
		PrimaryKey: []*schema.Column{DeveloperEarningsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "developerearning_developer_user_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{DeveloperEarningsColumns[1], DeveloperEarningsColumns[7]},
			},
			{
				Name:    "developerearning_marketplace_id",
				Unique:  false,
				Columns: []*schema.Column{DeveloperEarningsColumns[3]},
			},
		},
	}
	// DeveloperWalletsColumns holds the columns for the "developer_wallets" table.
	DeveloperWalletsColumns = []*schema.Column{
		{Name: "developer_wallet_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString, Unique: true},
		{Name: "available_balance", Type: field.TypeInt64, Default: 0},
		{Name: "total_earned", Type: field.TypeInt64, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// DeveloperWalletsTable holds the schema information for the "developer_wallets" table.
	DeveloperWalletsTable = &schema.Table{
		Name:       "developer_wallets",
		Columns:    DeveloperWalletsColumns,
		PrimaryKey: []*schema.Column{DeveloperWalletsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "developerwallet_user_id",
				Unique:  true,
				Columns: []*schema.Column{DeveloperWalletsColumns[1]},
			},
		},
	}
	// LedgerEntriesColumns holds the columns for the "ledger_entries" table.
	LedgerEntriesColumns = []*schema.Column{
		{Name: "entry_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "credit_type", Type: field.TypeEnum, Enums: []string{"free", "paid", "earned"}},
		{Name: "direction", Type: field.TypeEnum, Enums: []string{"credit", "debit"}},
		{Name: "amount", Type: field.TypeInt64},
		{Name: "balance_after", Type: field.TypeInt64},
		{Name: "total_balance_after", Type: field.TypeInt64},
		{Name: "source", Type: field.TypeString},
		{Name: "reference_id", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// LedgerEntriesTable holds the schema information for the "ledger_entries" table.
	LedgerEntriesTable = &schema.Table{
		Name:       "ledger_entries",
		Columns:    LedgerEntriesColumns,
		PrimaryKey: []*schema.Column{LedgerEntriesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "ledgerentry_user_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{LedgerEntriesColumns[1], LedgerEntriesColumns[9]},
			},
		},
	}
	// ScheduledTasksColumns holds the columns for the "scheduled_tasks" table.
	ScheduledTasksColumns = []*schema.Column{
		{Name: "task_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "agent_id", Type: field.TypeString},
		{Name: "session_id", Type: field.TypeString, Nullable: true},
		{Name: "topic_id", Type: field.TypeString, Nullable: true},
		{Name: "prompt", Type: field.TypeString, Size: 2147483647},
		{Name: "schedule_type", Type: field.TypeEnum, Enums: []string{"once", "interval"}},
		{Name: "interval_seconds", Type: field.TypeInt64, Default: 0},
		{Name: "next_fire_at", Type: field.TypeTime},
		{Name: "run_count", Type: field.TypeInt, Default: 0},
		{Name: "max_runs", Type: field.TypeInt, Default: 0},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"active", "paused", "completed", "failed"}, Default: "active"},
		{Name: "external_task_id", Type: field.TypeString, Nullable: true},
		{Name: "pod_id", Type: field.TypeString, Nullable: true},
		{Name: "last_run_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// ScheduledTasksTable holds the schema information for the "scheduled_tasks" table.
	ScheduledTasksTable = &schema.Table{
		Name:       "scheduled_tasks",
		Columns:    ScheduledTasksColumns,
		PrimaryKey: []*schema.Column{ScheduledTasksColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "scheduledtask_status_next_fire_at",
				Unique:  false,
				Columns: []*schema.Column{ScheduledTasksColumns[11], ScheduledTasksColumns[8]},
			},
			{
				Name:    "scheduledtask_user_id",
				Unique:  false,
				Columns: []*schema.Column{ScheduledTasksColumns[1]},
			},
		},
	}
	// SessionsColumns holds the columns for the "sessions" table.
	SessionsColumns = []*schema.Column{
		{Name: "session_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "agent_id", Type: field.TypeString},
		{Name: "marketplace_id", Type: field.TypeString, Nullable: true},
		{Name: "developer_user_id", Type: field.TypeString, Nullable: true},
		{Name: "config_editable", Type: field.TypeBool, Default: true},
		{Name: "title", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// SessionsTable holds the schema information for the "sessions" table.
	SessionsTable = &schema.Table{
		Name:       "sessions",
		Columns:    SessionsColumns,
		PrimaryKey: []*schema.Column{SessionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "session_user_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{SessionsColumns[1], SessionsColumns[7]},
			},
		},
	}
	// TopicsColumns holds the columns for the "topics" table.
	TopicsColumns = []*schema.Column{
		{Name: "topic_id", Type: field.TypeString, Unique: true},
		{Name: "session_id", Type: field.TypeString},
		{Name: "user_id", Type: field.TypeString},
		{Name: "title", Type: field.TypeString, Default: "New topic"},
		{Name: "last_message_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// TopicsTable holds the schema information for the "topics" table.
	TopicsTable = &schema.Table{
		Name:       "topics",
		Columns:    TopicsColumns,
		PrimaryKey: []*schema.Column{TopicsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "topic_session_id",
				Unique:  false,
				Columns: []*schema.Column{TopicsColumns[1]},
			},
			{
				Name:    "topic_user_id_last_message_at",
				Unique:  false,
				Columns: []*schema.Column{TopicsColumns[2], TopicsColumns[4]},
			},
		},
	}
	// WalletsColumns holds the columns for the "wallets" table.
	WalletsColumns = []*schema.Column{
		{Name: "wallet_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString, Unique: true},
		{Name: "free", Type: field.TypeInt64, Default: 0},
		{Name: "paid", Type: field.TypeInt64, Default: 0},
		{Name: "earned", Type: field.TypeInt64, Default: 0},
		{Name: "virtual_total", Type: field.TypeInt64, Default: 0},
		{Name: "total_credited", Type: field.TypeInt64, Default: 0},
		{Name: "total_consumed", Type: field.TypeInt64, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// WalletsTable holds the schema information for the "wallets" table.
	WalletsTable = &schema.Table{
		Name:       "wallets",
		Columns:    WalletsColumns,
		PrimaryKey: []*schema.Column{WalletsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "wallet_user_id",
				Unique:  true,
				Columns: []*schema.Column{WalletsColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AgentRunsTable,
		ChatMessagesTable,
		ConsumeRecordsTable,
		DeveloperEarningsTable,
		DeveloperWalletsTable,
		LedgerEntriesTable,
		ScheduledTasksTable,
		SessionsTable,
		TopicsTable,
		WalletsTable,
	}
)

func init() {
}
