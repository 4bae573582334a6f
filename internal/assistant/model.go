package assistant

import (
	"errors"
	"time"
)

var (
	ErrEmptyTurn = errors.New("message needs text or an image")
	ErrBusy      = errors.New("assistant is still answering the previous message")
)

type Role string

const (
	RoleUser  Role = "user"
	RoleModel Role = "model"
)

type State string

const (
	StateIdle             State = "idle"
	StateAwaitingResponse State = "awaiting_response"
)

// Image es una imagen decodificada con su media type declarado.
type Image struct {
	MediaType string
	Data      []byte
}

// Turn es lo que envía el usuario: texto y/o una imagen.
type Turn struct {
	Text  string
	Image *Image
}

func (t Turn) Empty() bool {
	return t.Text == "" && (t.Image == nil || len(t.Image.Data) == 0)
}

// Message es una entrada del transcript.
type Message struct {
	ID     string
	Role   Role
	Text   string
	Image  *Image
	SentAt time.Time
}
