// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AgentRun is the predicate function for agentrun builders.
type AgentRun func(*sql.Selector)

// ChatMessage is the predicate function for chatmessage builders.
type ChatMessage func(*sql.Selector)

// ConsumeRecord is the predicate function for consumerecord builders.
type ConsumeRecord func(*sql.Selector)

// DeveloperEarning is the predicate function for developerearning builders.
type DeveloperEarning func(*sql.Selector)

// DeveloperWallet is the predicate function for developerwallet builders.
type DeveloperWallet func(*sql.Selector)

// LedgerEntry is the predicate function for ledgerentry builders.
type LedgerEntry func(*sql.Selector)

// ScheduledTask is the predicate function for scheduledtask builders.
type ScheduledTask func(*sql.Selector)

// Session is the predicate function for session builders.
type Session func(*sql.Selector)

// Topic is the predicate function for topic builders.
type Topic func(*sql.Selector)

// Wallet is the predicate function for wallet builders.
type Wallet func(*sql.Selector)
