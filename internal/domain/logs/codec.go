package logs

import (
	"encoding/json"
	"time"

	"purrlog/internal/domain/activities"
)

// wireEntry es la forma persistida: timestamp en milisegundos epoch.
type wireEntry struct {
	ID        string          `json:"id"`
	PetID     string          `json:"petId,omitempty"`
	CatID     string          `json:"catId,omitempty"` // legado
	Type      activities.Type `json:"type"`
	Timestamp int64           `json:"timestamp"`
	Notes     string          `json:"notes,omitempty"`
}

func (e Entry) MarshalJSON() ([]byte, error) {
	return json.Marshal(wireEntry{
		ID:        e.ID,
		PetID:     e.PetID,
		Type:      e.Type,
		Timestamp: e.Timestamp.UnixMilli(),
		Notes:     e.Notes,
	})
}

func (e *Entry) UnmarshalJSON(b []byte) error {
	var w wireEntry
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}
	petID := w.PetID
	if petID == "" {
		petID = w.CatID
	}
	var ts time.Time
	if w.Timestamp != 0 {
		ts = time.UnixMilli(w.Timestamp)
	}
	*e = Entry{
		ID:        w.ID,
		PetID:     petID,
		Type:      w.Type,
		Timestamp: ts,
		Notes:     w.Notes,
	}
	return nil
}
