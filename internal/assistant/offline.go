package assistant

import (
	"context"
	"errors"
)

var ErrNotConfigured = errors.New("assistant: no generative AI backend configured")

// Offline se usa cuando no hay api key: cada turno termina en FallbackReply.
type Offline struct{}

func (Offline) Generate(context.Context, Request) (string, error) {
	return "", ErrNotConfigured
}
