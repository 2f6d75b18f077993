package models

import "encoding/json"

// Client → server frame types on the chat WebSocket.
const (
	ClientTypePong                 = "pong"
	ClientTypeAbort                = "abort"
	ClientTypeUserQuestionResponse = "user_question_response"
	ClientTypeRegenerate           = "regenerate"
	ClientTypeMessage              = "message"
)

// ChatClientMessage is the JSON structure for client → server frames on the
// chat WebSocket. An empty or unknown Type is treated as a normal message.
type ChatClientMessage struct {
	Type     string                `json:"type,omitempty"`
	Message  string                `json:"message,omitempty"`
	FileIDs  []string              `json:"file_ids,omitempty"`
	Context  json.RawMessage       `json:"context,omitempty"`
	ClientID string                `json:"client_id,omitempty"`
	Data     *UserQuestionResponse `json:"data,omitempty"`
}

// UserQuestionResponse is the data of a user_question_response frame.
type UserQuestionResponse struct {
	QuestionID      string   `json:"question_id"`
	SelectedOptions []string `json:"selected_options,omitempty"`
	Text            string   `json:"text,omitempty"`
	TimedOut        bool     `json:"timed_out,omitempty"`
}

// Attribution routes a share of a consumer's settlement to an agent
// publisher. Resolved once at connect time from the session's agent and
// immutable for the life of the connection.
type Attribution struct {
	AgentID         string `json:"agent_id,omitempty"`
	MarketplaceID   string `json:"marketplace_id,omitempty"`
	DeveloperUserID string `json:"developer_user_id,omitempty"`
	ForkMode        string `json:"fork_mode,omitempty"` // editable or locked
}

// Attributed reports whether settlement should trigger a developer reward.
func (a Attribution) Attributed() bool {
	return a.MarketplaceID != "" && a.DeveloperUserID != ""
}

// ConnectionID builds the routing key "{session_id}:{topic_id}".
func ConnectionID(sessionID, topicID string) string {
	return sessionID + ":" + topicID
}
