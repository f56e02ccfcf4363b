package request

import "github.com/BOKA26/lovotech-nexus/pkg/domain/chat"

type ChatCompletionRequest struct {
	Messages chat.Conversation `json:"messages"`
}
