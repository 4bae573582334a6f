package logs

import (
	"sort"
	"time"
)

// Store es la colección en memoria de entradas de todas las mascotas.
// El orden interno es inserción-en-cabeza; el orden de visualización
// siempre es un sort derivado. No es seguro para uso concurrente: el
// dueño (app.Shell) serializa el acceso.
type Store struct {
	entries []Entry
}

// NewStore arranca desde un snapshot (p.ej. cargado de almacenamiento).
func NewStore(snapshot []Entry) *Store {
	entries := make([]Entry, len(snapshot))
	copy(entries, snapshot)
	return &Store{entries: entries}
}

// Append inserta e en la cabeza. Reemplaza la colección completa.
func (s *Store) Append(e Entry) {
	next := make([]Entry, 0, len(s.entries)+1)
	next = append(next, e)
	next = append(next, s.entries...)
	s.entries = next
}

// Delete quita la entrada con id. Si no existe no hace nada y devuelve false.
func (s *Store) Delete(id string) bool {
	idx := -1
	for i, e := range s.entries {
		if e.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false
	}
	next := make([]Entry, 0, len(s.entries)-1)
	next = append(next, s.entries[:idx]...)
	next = append(next, s.entries[idx+1:]...)
	s.entries = next
	return true
}

// Get busca una entrada por id.
func (s *Store) Get(id string) (Entry, bool) {
	for _, e := range s.entries {
		if e.ID == id {
			return e, true
		}
	}
	return Entry{}, false
}

// QueryByPetAndDay devuelve las entradas de petID dentro del día local de day,
// de más nueva a más vieja; en empate, la inserción más reciente primero.
func (s *Store) QueryByPetAndDay(petID string, day time.Time) []Entry {
	start, end := StartOfDay(day), EndOfDay(day)
	out := make([]Entry, 0)
	for _, e := range s.entries {
		if e.PetID != petID {
			continue
		}
		if e.Timestamp.Before(start) || e.Timestamp.After(end) {
			continue
		}
		out = append(out, e)
	}
	// estable sobre el orden de cabeza: resuelve empates por inserción
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.After(out[j].Timestamp)
	})
	return out
}

// QueryByPet devuelve todas las entradas de petID, sin orden garantizado.
func (s *Store) QueryByPet(petID string) []Entry {
	out := make([]Entry, 0)
	for _, e := range s.entries {
		if e.PetID == petID {
			out = append(out, e)
		}
	}
	return out
}

// Snapshot devuelve una copia de la colección completa en orden de almacenamiento.
func (s *Store) Snapshot() []Entry {
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

func (s *Store) Len() int { return len(s.entries) }
