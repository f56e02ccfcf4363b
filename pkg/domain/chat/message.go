package chat

type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// Conversation is the caller-supplied message sequence. The system turn is
// never part of it; the gateway client injects it as the first outbound
// message.
type Conversation []Message
