// Package app es el shell de la aplicación: un estado explícito por usuario
// (mascotas, entradas, mascota activa, día, vista y chat) con un único punto
// de mutación por campo.
package app

import (
	"context"
	"strings"
	"sync"
	"time"

	"purrlog/internal/assistant"
	"purrlog/internal/domain/activities"
	"purrlog/internal/domain/logs"
	"purrlog/internal/domain/pets"
	"purrlog/internal/persistence"
	"purrlog/internal/platform/logger"
	"purrlog/internal/platform/metrics"
	"purrlog/internal/ports/blobstore"
)

type View string

const (
	ViewTimeline   View = "timeline"
	ViewStatistics View = "statistics"
	ViewAssistant  View = "assistant"
)

func ParseView(s string) (View, error) {
	switch v := View(strings.ToLower(strings.TrimSpace(s))); v {
	case ViewTimeline, ViewStatistics, ViewAssistant:
		return v, nil
	}
	return "", ErrInvalidInput
}

type Deps struct {
	Store     blobstore.Store
	Keys      persistence.Keys
	Generator assistant.Generator
	Location  *time.Location
	Logger    logger.Logger

	AssistantTimeout time.Duration
	Now              func() time.Time
}

// Shell guarda el estado de un workspace. mu serializa cada acción del
// usuario; el chat tiene su propio estado y no toma mu mientras espera al modelo.
type Shell struct {
	mu sync.Mutex

	profiles  []pets.Profile
	store     *logs.Store
	activePet string
	day       time.Time
	view      View

	loc  *time.Location
	now  func() time.Time
	snap *persistence.Snapshotter
	log  logger.Logger
	chat *assistant.Session
}

// Open carga el workspace. Nunca falla: lo que no se pueda leer cae a defaults.
func Open(ctx context.Context, d Deps) *Shell {
	if d.Logger == nil {
		d.Logger = logger.Nop()
	}
	if d.Location == nil {
		d.Location = time.Local
	}
	if d.Now == nil {
		d.Now = time.Now
	}

	loaded := persistence.LoadWorkspace(ctx, d.Store, d.Keys, d.Logger)

	s := &Shell{
		profiles: loaded.Pets,
		store:    logs.NewStore(loaded.Entries),
		view:     ViewTimeline,
		loc:      d.Location,
		now:      d.Now,
		snap:     persistence.NewSnapshotter(d.Store, d.Keys, d.Logger),
		log:      d.Logger,
	}
	// la mascota activa guardada sólo vale si todavía existe
	s.activePet = loaded.ActivePet
	if pets.Find(s.profiles, s.activePet) < 0 {
		s.activePet = s.profiles[0].ID
	}
	s.day = s.today()
	s.chat = assistant.NewSession(d.Generator, s.activeName(), assistant.Options{
		Logger:  d.Logger,
		Timeout: d.AssistantTimeout,
		Now:     d.Now,
	})

	d.Logger.Debug("workspace loaded", map[string]any{
		"pets":    len(s.profiles),
		"entries": s.store.Len(),
	})
	return s
}

func (s *Shell) today() time.Time {
	return logs.StartOfDay(s.now().In(s.loc))
}

func (s *Shell) activeName() string {
	if i := pets.Find(s.profiles, s.activePet); i >= 0 {
		return s.profiles[i].Name
	}
	return ""
}

// --- mascotas ---

func (s *Shell) Pets() []pets.Profile {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]pets.Profile, len(s.profiles))
	copy(out, s.profiles)
	return out
}

// AddPet crea el perfil y lo deja activo.
func (s *Shell) AddPet(ctx context.Context, name string) (pets.Profile, error) {
	if err := pets.ValidateName(name); err != nil {
		return pets.Profile{}, ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p := pets.New(name)
	prevProfiles, prevActive := s.profiles, s.activePet

	next := make([]pets.Profile, 0, len(s.profiles)+1)
	next = append(next, s.profiles...)
	s.profiles = append(next, p)
	s.activePet = p.ID

	if err := s.persistPetsAndActive(ctx); err != nil {
		s.profiles, s.activePet = prevProfiles, prevActive
		return pets.Profile{}, err
	}
	s.chat.Greet(s.activeName())
	return p, nil
}

// RemovePet quita el perfil. Sus entradas quedan huérfanas y dejan de aparecer
// en las vistas por mascota.
func (s *Shell) RemovePet(ctx context.Context, id string, confirmed bool) error {
	if !confirmed {
		return ErrConfirmationRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := pets.Find(s.profiles, id)
	if idx < 0 {
		return ErrNotFound
	}
	if len(s.profiles) == 1 {
		return ErrLastPet
	}
	prevProfiles, prevActive := s.profiles, s.activePet

	next := make([]pets.Profile, 0, len(s.profiles)-1)
	next = append(next, s.profiles[:idx]...)
	s.profiles = append(next, s.profiles[idx+1:]...)
	if s.activePet == id {
		s.activePet = s.profiles[0].ID
	}

	if err := s.persistPetsAndActive(ctx); err != nil {
		s.profiles, s.activePet = prevProfiles, prevActive
		return err
	}
	if s.activePet != prevActive {
		s.chat.Greet(s.activeName())
	}
	return nil
}

func (s *Shell) SelectPet(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if pets.Find(s.profiles, id) < 0 {
		return ErrNotFound
	}
	prev := s.activePet
	s.activePet = id
	if err := s.snap.ActivePet(ctx, id); err != nil {
		s.activePet = prev
		return err
	}
	s.chat.Greet(s.activeName())
	return nil
}

func (s *Shell) persistPetsAndActive(ctx context.Context) error {
	if err := s.snap.Pets(ctx, s.profiles); err != nil {
		return err
	}
	return s.snap.ActivePet(ctx, s.activePet)
}

// --- entradas ---

type LogInput struct {
	Type activities.Type
	Note string
	At   *time.Time // nil = ahora
}

// LogActivity registra una actividad para la mascota activa.
func (s *Shell) LogActivity(ctx context.Context, in LogInput) (logs.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	at := s.now()
	if in.At != nil {
		at = *in.At
	}
	if err := logs.ValidateInput(s.activePet, in.Type, at); err != nil {
		return logs.Entry{}, ErrInvalidInput
	}

	e := logs.New(s.activePet, in.Type, at, in.Note)
	prev := s.store
	s.store = logs.NewStore(prev.Snapshot())
	s.store.Append(e)

	if err := s.snap.Entries(ctx, s.store.Snapshot()); err != nil {
		s.store = prev
		return logs.Entry{}, err
	}
	metrics.EntriesAppended.WithLabelValues(string(e.Type)).Inc()
	return e, nil
}

// DeleteEntry borra de forma irreversible. Sin confirmación no toca nada; una
// entrada inexistente cuenta como ya borrada (deleted=false, sin error).
func (s *Shell) DeleteEntry(ctx context.Context, id string, confirmed bool) (bool, error) {
	if !confirmed {
		return false, ErrConfirmationRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	prev := s.store
	s.store = logs.NewStore(prev.Snapshot())
	if !s.store.Delete(id) {
		s.store = prev
		return false, nil
	}
	if err := s.snap.Entries(ctx, s.store.Snapshot()); err != nil {
		s.store = prev
		return false, err
	}
	metrics.EntriesDeleted.Inc()
	return true, nil
}

// --- día y vista ---

// SelectDay fija el día mostrado (en la zona del workspace). No se permiten días futuros.
func (s *Shell) SelectDay(day time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	d := logs.StartOfDay(day.In(s.loc))
	if d.After(s.today()) {
		return ErrNoFutureDays
	}
	s.day = d
	return nil
}

func (s *Shell) PreviousDay() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.day = logs.StartOfDay(s.day.AddDate(0, 0, -1))
	return s.day
}

// NextDay falla con ErrNoFutureDays si ya se está viendo hoy.
func (s *Shell) NextDay() (time.Time, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.day.Before(s.today()) {
		return s.day, ErrNoFutureDays
	}
	s.day = logs.StartOfDay(s.day.AddDate(0, 0, 1))
	return s.day, nil
}

func (s *Shell) SetView(v View) error {
	parsed, err := ParseView(string(v))
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.view = parsed
	return nil
}

// --- vistas derivadas ---

type State struct {
	ActivePet      pets.Profile
	Day            time.Time
	IsToday        bool
	View           View
	AssistantState assistant.State
}

func (s *Shell) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := State{
		Day:            s.day,
		IsToday:        logs.SameDay(s.day, s.today()),
		View:           s.view,
		AssistantState: s.chat.State(),
	}
	if i := pets.Find(s.profiles, s.activePet); i >= 0 {
		st.ActivePet = s.profiles[i]
	}
	return st
}

type Timeline struct {
	PetID   string
	Day     time.Time
	IsToday bool
	Entries []logs.Entry
}

// Timeline es la vista del día seleccionado para la mascota activa.
func (s *Shell) Timeline() Timeline {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.timelineLocked(s.day)
}

// TimelineFor usa day sin cambiar el día seleccionado.
func (s *Shell) TimelineFor(day time.Time) Timeline {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.timelineLocked(logs.StartOfDay(day.In(s.loc)))
}

func (s *Shell) timelineLocked(day time.Time) Timeline {
	return Timeline{
		PetID:   s.activePet,
		Day:     day,
		IsToday: logs.SameDay(day, s.today()),
		Entries: logs.DailyTimeline(s.store, s.activePet, day),
	}
}

type Statistics struct {
	PetID   string
	Summary logs.Summary
}

// Statistics resume todo el historial de la mascota activa.
func (s *Shell) Statistics() Statistics {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Statistics{
		PetID:   s.activePet,
		Summary: logs.PetSummary(s.store, s.activePet),
	}
}

// --- asistente ---

// Chat envía un turno con el nombre de la mascota activa al momento del envío.
func (s *Shell) Chat(ctx context.Context, turn assistant.Turn) (assistant.Message, error) {
	s.mu.Lock()
	name := s.activeName()
	s.mu.Unlock()
	return s.chat.Send(ctx, name, turn)
}

func (s *Shell) Transcript() []assistant.Message {
	return s.chat.Transcript()
}
