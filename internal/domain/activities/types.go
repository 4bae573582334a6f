package activities

import (
	"encoding/json"
	"errors"
	"strings"
)

var ErrUnknownType = errors.New("unknown activity type")

// Type es la enumeración cerrada de actividades registrables.
type Type string

const (
	Feeding    Type = "feeding"
	Watering   Type = "watering"
	Urination  Type = "urination"
	Defecation Type = "defecation"
	Play       Type = "play"
	Sleep      Type = "sleep"
	Medication Type = "medication"
	Grooming   Type = "grooming"
)

// canonical es el orden canónico. Desempata "más frecuente" en estadísticas.
var canonical = []Type{
	Feeding,
	Watering,
	Urination,
	Defecation,
	Play,
	Sleep,
	Medication,
	Grooming,
}

// ids legados, todavía presentes en datos guardados.
var legacyAliases = map[string]Type{
	"food":  Feeding,
	"water": Watering,
	"pee":   Urination,
	"poop":  Defecation,
	"meds":  Medication,
	"groom": Grooming,
}

// All devuelve una copia en orden canónico.
func All() []Type {
	out := make([]Type, len(canonical))
	copy(out, canonical)
	return out
}

// Index devuelve la posición canónica, o -1 si t no es válido.
func Index(t Type) int {
	for i, c := range canonical {
		if c == t {
			return i
		}
	}
	return -1
}

func (t Type) Valid() bool { return Index(t) >= 0 }

func (t Type) String() string { return string(t) }

// Parse acepta el nombre canónico o un alias legado, sin importar mayúsculas.
func Parse(s string) (Type, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if t := Type(s); t.Valid() {
		return t, nil
	}
	if t, ok := legacyAliases[s]; ok {
		return t, nil
	}
	return "", ErrUnknownType
}

func (t *Type) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
