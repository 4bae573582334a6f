package capabilities

import "context"

// AssistantChat habilita el chat con el asistente de IA.
const AssistantChat = "assistant:chat"

type Resolver interface {
	Has(ctx context.Context, userID, capability string) (bool, error)
}
