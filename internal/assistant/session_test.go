package assistant

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"purrlog/internal/platform/logger"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// fakeGenerator registra requests y responde lo configurado.
type fakeGenerator struct {
	mu    sync.Mutex
	calls []Request

	reply   string
	err     error
	started chan struct{}
	release chan struct{}
}

func (f *fakeGenerator) Generate(ctx context.Context, req Request) (string, error) {
	f.mu.Lock()
	f.calls = append(f.calls, req)
	f.mu.Unlock()

	if f.started != nil {
		f.started <- struct{}{}
	}
	if f.release != nil {
		select {
		case <-f.release:
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	return f.reply, f.err
}

func (f *fakeGenerator) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func TestNewSession_Welcome(t *testing.T) {
	s := NewSession(&fakeGenerator{}, "Luna", Options{})
	tr := s.Transcript()
	require.Len(t, tr, 1)
	assert.Equal(t, RoleModel, tr[0].Role)
	assert.Contains(t, tr[0].Text, "Luna")
	assert.Equal(t, StateIdle, s.State())
}

func TestSend_Success(t *testing.T) {
	gen := &fakeGenerator{reply: "Luna looks healthy 🐱"}
	s := NewSession(gen, "Luna", Options{})

	msg, err := s.Send(context.Background(), "Luna", Turn{Text: "how is she?"})
	require.NoError(t, err)
	assert.Equal(t, RoleModel, msg.Role)
	assert.Equal(t, "Luna looks healthy 🐱", msg.Text)

	tr := s.Transcript()
	require.Len(t, tr, 3)
	assert.Equal(t, RoleUser, tr[1].Role)
	assert.Equal(t, "how is she?", tr[1].Text)
	assert.Equal(t, msg, tr[2])
	assert.Equal(t, StateIdle, s.State())
}

func TestSend_ImageOnlyRequestCarriesDefaultPrompt(t *testing.T) {
	gen := &fakeGenerator{reply: "ok"}
	s := NewSession(gen, "Oliver", Options{})
	img := &Image{MediaType: "image/jpeg", Data: []byte{1, 2, 3}}

	_, err := s.Send(context.Background(), "Oliver", Turn{Image: img})
	require.NoError(t, err)

	require.Equal(t, 1, gen.callCount())
	parts := gen.calls[0].Parts
	require.Len(t, parts, 2)
	assert.Equal(t, img, parts[0].Image)
	assert.Equal(t, DefaultImagePrompt, parts[1].Text)
}

func TestSend_FailureBecomesFallbackMessage(t *testing.T) {
	core, recorded := observer.New(zapcore.DebugLevel)
	gen := &fakeGenerator{err: errors.New("503 from upstream")}
	s := NewSession(gen, "Luna", Options{Logger: logger.FromZap(zap.New(core))})

	msg, err := s.Send(context.Background(), "Luna", Turn{Text: "hi"})
	require.NoError(t, err)
	assert.Equal(t, FallbackReply, msg.Text)
	assert.Equal(t, StateIdle, s.State())
	assert.Equal(t, 1, recorded.FilterMessage("assistant request failed").Len())

	// la sesión sigue usable
	gen.err = nil
	gen.reply = "back"
	msg, err = s.Send(context.Background(), "Luna", Turn{Text: "again"})
	require.NoError(t, err)
	assert.Equal(t, "back", msg.Text)
}

func TestSend_EmptyModelReply(t *testing.T) {
	s := NewSession(&fakeGenerator{reply: "  "}, "Luna", Options{})
	msg, err := s.Send(context.Background(), "Luna", Turn{Text: "hi"})
	require.NoError(t, err)
	assert.Equal(t, EmptyReply, msg.Text)
}

func TestSend_EmptyTurnDoesNotMutate(t *testing.T) {
	gen := &fakeGenerator{reply: "x"}
	s := NewSession(gen, "Luna", Options{})

	_, err := s.Send(context.Background(), "Luna", Turn{})
	assert.ErrorIs(t, err, ErrEmptyTurn)
	assert.Len(t, s.Transcript(), 1)
	assert.Equal(t, 0, gen.callCount())
}

func TestSend_RejectsWhileAwaiting(t *testing.T) {
	gen := &fakeGenerator{
		reply:   "done",
		started: make(chan struct{}, 1),
		release: make(chan struct{}),
	}
	s := NewSession(gen, "Luna", Options{Timeout: 5 * time.Second})

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, err := s.Send(context.Background(), "Luna", Turn{Text: "first"})
		assert.NoError(t, err)
	}()

	<-gen.started
	assert.Equal(t, StateAwaitingResponse, s.State())

	_, err := s.Send(context.Background(), "Luna", Turn{Text: "second"})
	assert.ErrorIs(t, err, ErrBusy)

	close(gen.release)
	wg.Wait()

	assert.Equal(t, 1, gen.callCount())
	assert.Equal(t, StateIdle, s.State())
	// bienvenida + first + respuesta
	assert.Len(t, s.Transcript(), 3)
}

func TestSend_CallerCancellationDoesNotAbort(t *testing.T) {
	gen := &fakeGenerator{
		reply:   "finished anyway",
		started: make(chan struct{}, 1),
		release: make(chan struct{}),
	}
	s := NewSession(gen, "Luna", Options{Timeout: 5 * time.Second})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan Message, 1)
	go func() {
		msg, _ := s.Send(ctx, "Luna", Turn{Text: "hi"})
		done <- msg
	}()

	<-gen.started
	cancel()
	close(gen.release)

	assert.Equal(t, "finished anyway", (<-done).Text)
}

func TestSend_TimeoutFallsBack(t *testing.T) {
	gen := &fakeGenerator{release: make(chan struct{})}
	s := NewSession(gen, "Luna", Options{Timeout: 20 * time.Millisecond})

	msg, err := s.Send(context.Background(), "Luna", Turn{Text: "hi"})
	require.NoError(t, err)
	assert.Equal(t, FallbackReply, msg.Text)
}

func TestSend_WithoutBackendFallsBack(t *testing.T) {
	s := NewSession(nil, "Luna", Options{})
	reply, err := s.Send(context.Background(), "Luna", Turn{Text: "hi"})
	require.NoError(t, err)
	assert.Equal(t, FallbackReply, reply.Text)
	assert.Equal(t, StateIdle, s.State())
}

func TestGreet_OnlyBeforeFirstTurn(t *testing.T) {
	s := NewSession(&fakeGenerator{}, "Luna", Options{})

	s.Greet("Oliver")
	tr := s.Transcript()
	require.Len(t, tr, 1)
	assert.Equal(t, WelcomeText("Oliver"), tr[0].Text)

	_, err := s.Send(context.Background(), "Oliver", Turn{Text: "hi"})
	require.NoError(t, err)

	s.Greet("Mochi")
	tr = s.Transcript()
	require.Len(t, tr, 3)
	assert.Equal(t, WelcomeText("Oliver"), tr[0].Text)
}
