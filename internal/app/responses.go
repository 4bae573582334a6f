package app

import (
	"time"

	"purrlog/internal/assistant"
	"purrlog/internal/domain/activities"
	"purrlog/internal/domain/logs"
	"purrlog/internal/domain/pets"
)

type petResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Avatar     string `json:"avatar"`
	ColorTheme string `json:"color_theme"`
	BirthDate  string `json:"birth_date,omitempty"`
}

func toPetResponse(p pets.Profile) petResponse {
	return petResponse{
		ID:         p.ID,
		Name:       p.Name,
		Avatar:     p.Avatar,
		ColorTheme: p.ColorTheme,
		BirthDate:  p.BirthDate,
	}
}

type stateResponse struct {
	ActivePetID    string       `json:"active_pet_id"`
	ActivePet      *petResponse `json:"active_pet,omitempty"`
	SelectedDay    string       `json:"selected_day"`
	IsToday        bool         `json:"is_today"`
	View           string       `json:"view"`
	AssistantState string       `json:"assistant_state"`
}

func toStateResponse(st State) stateResponse {
	out := stateResponse{
		ActivePetID:    st.ActivePet.ID,
		SelectedDay:    st.Day.Format(dayLayout),
		IsToday:        st.IsToday,
		View:           string(st.View),
		AssistantState: string(st.AssistantState),
	}
	if st.ActivePet.ID != "" {
		p := toPetResponse(st.ActivePet)
		out.ActivePet = &p
	}
	return out
}

type entryResponse struct {
	ID         string    `json:"id"`
	PetID      string    `json:"pet_id"`
	Type       string    `json:"type"`
	Label      string    `json:"label"`
	Icon       string    `json:"icon"`
	Color      string    `json:"color"`
	OccurredAt time.Time `json:"occurred_at"`
	Notes      string    `json:"notes,omitempty"`
}

func toEntryResponse(e logs.Entry, loc *time.Location) entryResponse {
	p := activities.Describe(e.Type)
	return entryResponse{
		ID:         e.ID,
		PetID:      e.PetID,
		Type:       string(e.Type),
		Label:      p.Label,
		Icon:       p.Icon,
		Color:      p.Color,
		OccurredAt: e.Timestamp.In(loc),
		Notes:      e.Notes,
	}
}

type timelineResponse struct {
	PetID   string          `json:"pet_id"`
	Day     string          `json:"day"`
	IsToday bool            `json:"is_today"`
	Entries []entryResponse `json:"entries"`
}

func toTimelineResponse(tl Timeline, loc *time.Location) timelineResponse {
	out := timelineResponse{
		PetID:   tl.PetID,
		Day:     tl.Day.Format(dayLayout),
		IsToday: tl.IsToday,
		Entries: make([]entryResponse, 0, len(tl.Entries)),
	}
	for _, e := range tl.Entries {
		out.Entries = append(out.Entries, toEntryResponse(e, loc))
	}
	return out
}

type countResponse struct {
	Type    string `json:"type"`
	Label   string `json:"label"`
	Color   string `json:"color"`
	BgColor string `json:"bg_color"`
	Count   int    `json:"count"`
}

type statsResponse struct {
	PetID        string          `json:"pet_id"`
	Total        int             `json:"total"`
	MostFrequent string          `json:"most_frequent,omitempty"`
	Counts       []countResponse `json:"counts"`
}

func toStatsResponse(st Statistics) statsResponse {
	out := statsResponse{
		PetID:  st.PetID,
		Total:  st.Summary.Total,
		Counts: make([]countResponse, 0, len(st.Summary.Counts)),
	}
	if top, ok := st.Summary.MostFrequent(); ok {
		out.MostFrequent = string(top)
	}
	for _, c := range st.Summary.Counts {
		p := activities.Describe(c.Type)
		out.Counts = append(out.Counts, countResponse{
			Type:    string(c.Type),
			Label:   p.Label,
			Color:   p.Color,
			BgColor: p.BgColor,
			Count:   c.Count,
		})
	}
	return out
}

type messageResponse struct {
	ID             string    `json:"id"`
	Role           string    `json:"role"`
	Text           string    `json:"text"`
	HasImage       bool      `json:"has_image"`
	ImageMediaType string    `json:"image_media_type,omitempty"`
	SentAt         time.Time `json:"sent_at"`
}

func toMessageResponse(m assistant.Message) messageResponse {
	out := messageResponse{
		ID:     m.ID,
		Role:   string(m.Role),
		Text:   m.Text,
		SentAt: m.SentAt,
	}
	if m.Image != nil {
		out.HasImage = true
		out.ImageMediaType = m.Image.MediaType
	}
	return out
}
