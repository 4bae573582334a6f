package logs

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"purrlog/internal/domain/activities"
)

var (
	ErrInvalidInput = errors.New("invalid input")
)

// Entry es una ocurrencia de una actividad para una mascota.
// Inmutable: sólo se crea o se elimina.
type Entry struct {
	ID        string
	PetID     string
	Type      activities.Type
	Timestamp time.Time
	Notes     string
}

// New construye una entrada con id nuevo ordenable en el tiempo (UUIDv7).
// El timestamp se trunca a milisegundos, la resolución persistida.
// Asume entrada ya validada (ver ValidateInput).
func New(petID string, t activities.Type, at time.Time, notes string) Entry {
	return Entry{
		ID:        uuid.Must(uuid.NewV7()).String(),
		PetID:     petID,
		Type:      t,
		Timestamp: at.Truncate(time.Millisecond),
		Notes:     strings.TrimSpace(notes),
	}
}

// ValidateInput rechaza los campos requeridos faltantes antes de construir.
func ValidateInput(petID string, t activities.Type, at time.Time) error {
	if strings.TrimSpace(petID) == "" {
		return ErrInvalidInput
	}
	if !t.Valid() {
		return ErrInvalidInput
	}
	if at.IsZero() {
		return ErrInvalidInput
	}
	return nil
}

// Validate comprueba la forma de una colección leída de almacenamiento.
func Validate(list []Entry) error {
	for i, e := range list {
		if strings.TrimSpace(e.ID) == "" {
			return fmt.Errorf("entry %d: missing id: %w", i, ErrInvalidInput)
		}
		if err := ValidateInput(e.PetID, e.Type, e.Timestamp); err != nil {
			return fmt.Errorf("entry %d (%s): %w", i, e.ID, err)
		}
	}
	return nil
}
