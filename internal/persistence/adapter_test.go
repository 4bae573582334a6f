package persistence

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"purrlog/internal/adapters/storage/memory"
	"purrlog/internal/domain/activities"
	"purrlog/internal/domain/logs"
	"purrlog/internal/domain/pets"
	"purrlog/internal/platform/logger"
	"purrlog/internal/ports/blobstore"
)

// failingStore simula un backend caído.
type failingStore struct{ err error }

func (f failingStore) Get(context.Context, string) ([]byte, error) { return nil, f.err }
func (f failingStore) Put(context.Context, string, []byte) error   { return f.err }
func (f failingStore) Driver() blobstore.Driver                    { return "failing" }

func observed() (logger.Logger, *observer.ObservedLogs) {
	core, recorded := observer.New(zapcore.DebugLevel)
	return logger.FromZap(zap.New(core)), recorded
}

func TestRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := memory.NewBlobStore()
	log := logger.Nop()

	entries := []logs.Entry{
		logs.New("cat_1", activities.Feeding, time.Now(), "tuna"),
		logs.New("cat_2", activities.Sleep, time.Now().Add(-time.Hour), ""),
	}
	require.NoError(t, Save(ctx, store, "k/entries", entries))

	got := Load(ctx, store, log, "k/entries", []logs.Entry{}, logs.Validate)
	require.Len(t, got, 2)
	for i := range entries {
		assert.Equal(t, entries[i].ID, got[i].ID)
		assert.Equal(t, entries[i].Type, got[i].Type)
		assert.True(t, entries[i].Timestamp.Equal(got[i].Timestamp))
		assert.Equal(t, entries[i].Notes, got[i].Notes)
	}

	profiles := []pets.Profile{pets.New("Mochi")}
	require.NoError(t, Save(ctx, store, "k/pets", profiles))
	assert.Equal(t, profiles, Load(ctx, store, log, "k/pets", pets.Defaults(), pets.Validate))
}

func TestLoad_MissingReturnsDefault(t *testing.T) {
	log, seen := observed()
	got := Load(context.Background(), memory.NewBlobStore(), log, "never", "fallback", nil)
	assert.Equal(t, "fallback", got)
	assert.Equal(t, 0, seen.Len())
}

func TestLoad_CorruptReturnsDefault(t *testing.T) {
	ctx := context.Background()
	store := memory.NewBlobStore()
	require.NoError(t, store.Put(ctx, "k", []byte(`{not json`)))

	log, seen := observed()
	got := Load(ctx, store, log, "k", pets.Defaults(), pets.Validate)
	assert.Equal(t, pets.Defaults(), got)
	assert.Equal(t, 1, seen.FilterMessage("corrupt blob, using default").Len())
}

func TestLoad_ShapeMismatchReturnsDefault(t *testing.T) {
	ctx := context.Background()
	store := memory.NewBlobStore()
	require.NoError(t, store.Put(ctx, "k", []byte(`[{"id":"","name":""}]`)))

	log, seen := observed()
	got := Load(ctx, store, log, "k", pets.Defaults(), pets.Validate)
	assert.Equal(t, pets.Defaults(), got)
	assert.Equal(t, 1, seen.FilterMessage("blob failed validation, using default").Len())
}

func TestLoad_ReadErrorReturnsDefault(t *testing.T) {
	log, seen := observed()
	got := Load(context.Background(), failingStore{err: errors.New("boom")}, log, "k", 7, nil)
	assert.Equal(t, 7, got)
	assert.Equal(t, 1, seen.FilterLevelExact(zapcore.WarnLevel).Len())
}

func TestSave_PropagatesErrors(t *testing.T) {
	boom := errors.New("quota exceeded")
	err := Save(context.Background(), failingStore{err: boom}, "k", []string{"x"})
	assert.ErrorIs(t, err, boom)
}

func TestKeysFor(t *testing.T) {
	k := KeysFor("/purrlog/", "user 1/x")
	assert.Equal(t, "purrlog/user%201%2Fx/pets", k.Pets)
	assert.Equal(t, "purrlog/user%201%2Fx/entries", k.Entries)
	assert.Equal(t, "purrlog/user%201%2Fx/active_pet", k.ActivePet)

	assert.Equal(t, "purrlog/local/pets", KeysFor("", "local").Pets)
}
