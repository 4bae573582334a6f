package pets

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
)

// DefaultTheme es el tema asignado a mascotas nuevas.
const DefaultTheme = "from-pink-400 to-rose-500"

const avatarURLPattern = "https://picsum.photos/seed/%s/200/200"

// Profile representa el perfil de una mascota. No se muta tras su creación.
type Profile struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Avatar     string `json:"avatar"`
	ColorTheme string `json:"colorTheme"`
	BirthDate  string `json:"birthDate,omitempty"` // tal como se guardó: "2006-01-02" o RFC3339
}

// New construye un perfil con id nuevo, avatar generado y tema por defecto.
// Asume que name ya fue validado por el llamador.
func New(name string) Profile {
	id := uuid.NewString()
	return Profile{
		ID:         id,
		Name:       strings.TrimSpace(name),
		Avatar:     AvatarFor(id),
		ColorTheme: DefaultTheme,
	}
}

// AvatarFor genera una referencia de avatar estable a partir de una semilla.
func AvatarFor(seed string) string {
	return fmt.Sprintf(avatarURLPattern, seed)
}

// ValidateName rechaza nombres vacíos antes de construir.
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrInvalidInput
	}
	return nil
}

// Defaults son los perfiles de primer arranque.
func Defaults() []Profile {
	return []Profile{
		{
			ID:         "cat_1",
			Name:       "Luna",
			Avatar:     "https://picsum.photos/id/40/200/200",
			ColorTheme: "from-purple-400 to-indigo-500",
		},
		{
			ID:         "cat_2",
			Name:       "Oliver",
			Avatar:     "https://picsum.photos/id/219/200/200",
			ColorTheme: "from-orange-400 to-amber-500",
		},
	}
}

// Validate comprueba la forma de una colección leída de almacenamiento.
func Validate(list []Profile) error {
	seen := make(map[string]struct{}, len(list))
	for i, p := range list {
		if strings.TrimSpace(p.ID) == "" || strings.TrimSpace(p.Name) == "" {
			return fmt.Errorf("pet %d: %w", i, ErrInvalidInput)
		}
		if _, dup := seen[p.ID]; dup {
			return fmt.Errorf("pet %d: duplicate id %q: %w", i, p.ID, ErrInvalidInput)
		}
		seen[p.ID] = struct{}{}
	}
	return nil
}

// Find devuelve el índice del perfil con id, o -1.
func Find(list []Profile, id string) int {
	for i, p := range list {
		if p.ID == id {
			return i
		}
	}
	return -1
}
