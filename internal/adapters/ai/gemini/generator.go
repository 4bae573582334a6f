// Package gemini implementa assistant.Generator sobre Google GenAI.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"google.golang.org/genai"

	"purrlog/internal/assistant"
)

type Config struct {
	APIKey  string
	Model   string
	BaseURL string       // opcional (proxy / tests)
	HTTP    *http.Client // opcional
}

type Generator struct {
	client *genai.Client
	model  string
}

func New(ctx context.Context, cfg Config) (*Generator, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, errors.New("gemini: api key is required")
	}
	model := cfg.Model
	if model == "" {
		model = "gemini-3-pro-preview"
	}
	cc := &genai.ClientConfig{
		APIKey:     cfg.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: cfg.HTTP,
	}
	if cfg.BaseURL != "" {
		cc.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.BaseURL}
	}
	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("gemini: create client: %w", err)
	}
	return &Generator{client: client, model: model}, nil
}

// Generate envía un único turno (sin historial) con la instrucción de sistema.
func (g *Generator) Generate(ctx context.Context, req assistant.Request) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, Contents(req), &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(req.SystemInstruction, genai.RoleUser),
	})
	if err != nil {
		return "", fmt.Errorf("gemini: generate content: %w", err)
	}
	// sin candidatos (p.ej. prompt bloqueado) cuenta como respuesta vacía
	if resp == nil || len(resp.Candidates) == 0 {
		return "", nil
	}
	return resp.Text(), nil
}

// Contents traduce un assistant.Request a un único contenido de rol user.
func Contents(req assistant.Request) []*genai.Content {
	parts := make([]*genai.Part, 0, len(req.Parts))
	for _, p := range req.Parts {
		if p.Image != nil {
			parts = append(parts, genai.NewPartFromBytes(p.Image.Data, p.Image.MediaType))
			continue
		}
		parts = append(parts, genai.NewPartFromText(p.Text))
	}
	return []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}
}
