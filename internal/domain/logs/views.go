package logs

import (
	"time"

	"purrlog/internal/domain/activities"
)

// DailyTimeline es la vista de un día para una mascota, ya ordenada.
func DailyTimeline(s *Store, petID string, day time.Time) []Entry {
	return s.QueryByPetAndDay(petID, day)
}

type TypeCount struct {
	Type  activities.Type
	Count int
}

// Summary agrupa el historial completo de una mascota por tipo de actividad.
// Counts sigue el orden canónico y excluye los tipos sin entradas.
type Summary struct {
	Counts []TypeCount
	Total  int
}

// Summarize cuenta entradas por tipo. Tipos fuera del catálogo se ignoran.
func Summarize(entries []Entry) Summary {
	byType := make(map[activities.Type]int)
	for _, e := range entries {
		if e.Type.Valid() {
			byType[e.Type]++
		}
	}
	sum := Summary{Counts: make([]TypeCount, 0, len(byType))}
	for _, t := range activities.All() {
		n := byType[t]
		if n == 0 {
			continue
		}
		sum.Counts = append(sum.Counts, TypeCount{Type: t, Count: n})
		sum.Total += n
	}
	return sum
}

// MostFrequent devuelve el tipo con más entradas. En empate gana el primero
// en orden canónico. ok es false si el resumen está vacío.
func (s Summary) MostFrequent() (activities.Type, bool) {
	var (
		best  activities.Type
		count int
	)
	for _, c := range s.Counts {
		if c.Count > count {
			best, count = c.Type, c.Count
		}
	}
	return best, count > 0
}

// Count devuelve el conteo de t (0 si no aparece).
func (s Summary) Count(t activities.Type) int {
	for _, c := range s.Counts {
		if c.Type == t {
			return c.Count
		}
	}
	return 0
}

// PetSummary es el resumen de frecuencia del historial completo de petID.
func PetSummary(s *Store, petID string) Summary {
	return Summarize(s.QueryByPet(petID))
}
