package assistant

import (
	"fmt"
	"strings"
)

const (
	DefaultImagePrompt = "Please analyze this image related to my pet's health or activity."
	FallbackReply      = "Sorry, I encountered an error connecting to the AI. Please try again later."
	EmptyReply         = "I couldn't generate a response. Please try again."

	systemPromptTemplate = "You are a friendly, helpful veterinary AI assistant for a pet tracker app. " +
		"The current pet is named %s. Provide concise, helpful advice about pet health, " +
		"behavior (pee, poop patterns), and nutrition. If analyzing images of waste, " +
		"be professional but descriptive. Use pet emojis occasionally."
	welcomeTemplate = "Hello! I'm your AI assistant for %s. You can ask me questions or upload photos " +
		"(like litter box checks 💩) for analysis!"
)

// SystemPrompt parametriza la instrucción de sistema con el nombre de la mascota activa.
func SystemPrompt(petName string) string {
	if strings.TrimSpace(petName) == "" {
		petName = "unknown"
	}
	return fmt.Sprintf(systemPromptTemplate, petName)
}

func WelcomeText(petName string) string {
	if strings.TrimSpace(petName) == "" {
		petName = "your pet"
	}
	return fmt.Sprintf(welcomeTemplate, petName)
}

// Part es texto o imagen, nunca ambos.
type Part struct {
	Text  string
	Image *Image
}

// Request es un turno sin historial: cada envío es independiente para el servicio.
type Request struct {
	SystemInstruction string
	Parts             []Part
}

// BuildRequest arma la parte de imagen (si hay), luego la de texto; un turno
// sólo-imagen lleva DefaultImagePrompt.
func BuildRequest(petName string, turn Turn) (Request, error) {
	turn.Text = strings.TrimSpace(turn.Text)
	if turn.Empty() {
		return Request{}, ErrEmptyTurn
	}

	parts := make([]Part, 0, 2)
	hasImage := turn.Image != nil && len(turn.Image.Data) > 0
	if hasImage {
		parts = append(parts, Part{Image: turn.Image})
	}
	switch {
	case turn.Text != "":
		parts = append(parts, Part{Text: turn.Text})
	case hasImage:
		parts = append(parts, Part{Text: DefaultImagePrompt})
	}

	return Request{
		SystemInstruction: SystemPrompt(petName),
		Parts:             parts,
	}, nil
}
