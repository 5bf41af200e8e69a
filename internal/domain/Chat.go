package domain

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

const (
	ChatModeGeneral   = "general"
	ChatModeAnalytics = "analytics"
)

type ChatMessage struct {
	Role    string `json:"role" validate:"required,oneof=system user assistant"`
	Content string `json:"content"`
}

type ChatRequest struct {
	Messages    []ChatMessage
	Mode        string
	Temperature float64
	Range       DateRange
}
