package assistant

import (
	"context"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/semaphore"

	"purrlog/internal/platform/logger"
	"purrlog/internal/platform/metrics"
)

// Generator es la frontera con el servicio de IA generativa.
type Generator interface {
	Generate(ctx context.Context, req Request) (string, error)
}

// Session es una conversación en memoria: idle -> awaiting_response -> idle.
// Como mucho un request en vuelo; los envíos concurrentes se rechazan.
// El transcript no se persiste.
type Session struct {
	gen     Generator
	log     logger.Logger
	timeout time.Duration
	now     func() time.Time

	inflight *semaphore.Weighted
	awaiting atomic.Bool

	mu         sync.RWMutex
	transcript []Message
}

type Options struct {
	Logger  logger.Logger
	Timeout time.Duration
	Now     func() time.Time
}

// NewSession arranca el transcript con el mensaje de bienvenida para petName.
func NewSession(gen Generator, petName string, opts Options) *Session {
	if opts.Logger == nil {
		opts.Logger = logger.Nop()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if gen == nil {
		gen = Offline{}
	}
	s := &Session{
		gen:      gen,
		log:      opts.Logger,
		timeout:  opts.Timeout,
		now:      opts.Now,
		inflight: semaphore.NewWeighted(1),
	}
	s.transcript = []Message{s.message(RoleModel, WelcomeText(petName), nil)}
	return s
}

func (s *Session) State() State {
	if s.awaiting.Load() {
		return StateAwaitingResponse
	}
	return StateIdle
}

// Greet rehace el saludo para petName mientras el transcript sólo tiene el
// saludo. Con turnos ya enviados no toca nada.
func (s *Session) Greet(petName string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.transcript) != 1 || s.transcript[0].Role != RoleModel {
		return
	}
	s.transcript = []Message{s.message(RoleModel, WelcomeText(petName), nil)}
}

// Transcript devuelve una copia en orden cronológico.
func (s *Session) Transcript() []Message {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Message, len(s.transcript))
	copy(out, s.transcript)
	return out
}

// Send agrega el turno del usuario y la respuesta del modelo al transcript.
// Un fallo del servicio nunca se devuelve: se convierte en FallbackReply.
// Errores: ErrEmptyTurn (sin mutar nada) y ErrBusy.
func (s *Session) Send(ctx context.Context, petName string, turn Turn) (Message, error) {
	req, err := BuildRequest(petName, turn)
	if err != nil {
		return Message{}, err
	}
	if !s.inflight.TryAcquire(1) {
		metrics.AssistantRequests.WithLabelValues(metrics.AssistantRejected).Inc()
		return Message{}, ErrBusy
	}
	s.awaiting.Store(true)
	defer func() {
		s.awaiting.Store(false)
		s.inflight.Release(1)
	}()

	s.append(s.message(RoleUser, strings.TrimSpace(turn.Text), turn.Image))

	reply := s.generate(ctx, req)
	msg := s.message(RoleModel, reply, nil)
	s.append(msg)
	return msg, nil
}

// generate no se cancela con el request del cliente: corre hasta terminar
// o hasta el timeout configurado.
func (s *Session) generate(ctx context.Context, req Request) string {
	callCtx := context.WithoutCancel(ctx)
	if s.timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(callCtx, s.timeout)
		defer cancel()
	}

	start := time.Now()
	text, err := s.gen.Generate(callCtx, req)
	metrics.AssistantDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.AssistantRequests.WithLabelValues(metrics.AssistantFailure).Inc()
		s.log.Error("assistant request failed", map[string]any{"err": err})
		return FallbackReply
	}
	metrics.AssistantRequests.WithLabelValues(metrics.AssistantSuccess).Inc()
	if strings.TrimSpace(text) == "" {
		return EmptyReply
	}
	return text
}

func (s *Session) append(m Message) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := make([]Message, 0, len(s.transcript)+1)
	next = append(next, s.transcript...)
	s.transcript = append(next, m)
}

func (s *Session) message(role Role, text string, img *Image) Message {
	return Message{
		ID:     uuid.Must(uuid.NewV7()).String(),
		Role:   role,
		Text:   text,
		Image:  img,
		SentAt: s.now(),
	}
}
