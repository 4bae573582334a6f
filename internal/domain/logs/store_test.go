package logs

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"purrlog/internal/domain/activities"
)

var lima = time.FixedZone("PET", -5*60*60)

func entryAt(id, pet string, typ activities.Type, ts time.Time) Entry {
	return Entry{ID: id, PetID: pet, Type: typ, Timestamp: ts}
}

func ids(list []Entry) []string {
	out := make([]string, 0, len(list))
	for _, e := range list {
		out = append(out, e.ID)
	}
	return out
}

func TestStore_Empty(t *testing.T) {
	s := NewStore(nil)
	assert.Empty(t, s.QueryByPetAndDay("p1", time.Now()))
	assert.Empty(t, s.QueryByPet("p1"))
	assert.Equal(t, 0, s.Len())
}

func TestStore_SingleAppendIsQueryable(t *testing.T) {
	d := time.Date(2024, 5, 10, 9, 30, 0, 0, lima)
	s := NewStore(nil)
	e := New("p1", activities.Feeding, d, "")
	s.Append(e)

	got := s.QueryByPetAndDay("p1", d)
	require.Len(t, got, 1)
	assert.Equal(t, e, got[0])
}

func TestStore_EqualTimestampsNewestInsertFirst(t *testing.T) {
	d := time.Date(2024, 5, 10, 9, 30, 0, 0, lima)
	s := NewStore(nil)
	s.Append(entryAt("A", "p1", activities.Play, d))
	s.Append(entryAt("B", "p1", activities.Play, d))

	assert.Equal(t, []string{"B", "A"}, ids(s.QueryByPetAndDay("p1", d)))
}

func TestQueryByPetAndDay_Membership(t *testing.T) {
	day := time.Date(2024, 5, 10, 15, 0, 0, 0, lima)
	start := StartOfDay(day)
	end := EndOfDay(day)

	s := NewStore(nil)
	s.Append(entryAt("before", "p1", activities.Sleep, start.Add(-time.Millisecond)))
	s.Append(entryAt("start", "p1", activities.Sleep, start))
	s.Append(entryAt("mid", "p1", activities.Sleep, day))
	s.Append(entryAt("end", "p1", activities.Sleep, end))
	s.Append(entryAt("after", "p1", activities.Sleep, end.Add(time.Millisecond)))
	s.Append(entryAt("other-pet", "p2", activities.Sleep, day))
	s.Append(entryAt("orphan", "gone", activities.Sleep, day))

	assert.Equal(t, []string{"end", "mid", "start"}, ids(s.QueryByPetAndDay("p1", day)))
}

func TestQueryByPetAndDay_UsesLocalDay(t *testing.T) {
	// 02:00 UTC del 11 es todavía el 10 en UTC-5
	ts := time.Date(2024, 5, 11, 2, 0, 0, 0, time.UTC)
	s := NewStore(nil)
	s.Append(entryAt("x", "p1", activities.Feeding, ts))

	assert.Len(t, s.QueryByPetAndDay("p1", time.Date(2024, 5, 10, 12, 0, 0, 0, lima)), 1)
	assert.Empty(t, s.QueryByPetAndDay("p1", time.Date(2024, 5, 11, 12, 0, 0, 0, lima)))
	assert.Len(t, s.QueryByPetAndDay("p1", time.Date(2024, 5, 11, 12, 0, 0, 0, time.UTC)), 1)
}

func TestQueryByPetAndDay_SortedDescending(t *testing.T) {
	base := time.Date(2024, 5, 10, 8, 0, 0, 0, lima)
	s := NewStore(nil)
	s.Append(entryAt("08", "p1", activities.Feeding, base))
	s.Append(entryAt("12", "p1", activities.Feeding, base.Add(4*time.Hour)))
	s.Append(entryAt("06", "p1", activities.Feeding, base.Add(-2*time.Hour)))
	s.Append(entryAt("12b", "p1", activities.Watering, base.Add(4*time.Hour)))

	assert.Equal(t, []string{"12b", "12", "08", "06"}, ids(s.QueryByPetAndDay("p1", base)))
}

func TestDelete(t *testing.T) {
	d := time.Date(2024, 5, 10, 9, 0, 0, 0, lima)
	s := NewStore(nil)
	s.Append(entryAt("a", "p1", activities.Play, d))
	s.Append(entryAt("b", "p1", activities.Play, d))

	assert.False(t, s.Delete("missing"))
	assert.Equal(t, 2, s.Len())

	assert.True(t, s.Delete("a"))
	assert.Equal(t, []string{"b"}, ids(s.QueryByPetAndDay("p1", d)))
	assert.Equal(t, []string{"b"}, ids(s.QueryByPet("p1")))
	_, ok := s.Get("a")
	assert.False(t, ok)

	assert.False(t, s.Delete("a"))
	assert.Equal(t, 1, s.Len())
}

func TestSnapshot_IsCopy(t *testing.T) {
	s := NewStore(nil)
	s.Append(entryAt("a", "p1", activities.Play, time.Now()))
	snap := s.Snapshot()
	snap[0].ID = "mutated"

	_, ok := s.Get("a")
	assert.True(t, ok)
}

func TestNewStore_CopiesInput(t *testing.T) {
	in := []Entry{entryAt("a", "p1", activities.Play, time.Now())}
	s := NewStore(in)
	in[0].ID = "changed"

	_, ok := s.Get("a")
	assert.True(t, ok)
}

func TestDayBounds(t *testing.T) {
	ref := time.Date(2024, 2, 29, 13, 14, 15, 0, lima)
	assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, lima), StartOfDay(ref))
	assert.Equal(t, time.Date(2024, 2, 29, 23, 59, 59, 999000000, lima), EndOfDay(ref))
	assert.True(t, WithinDay(ref, ref))
	assert.True(t, SameDay(time.Date(2024, 3, 1, 3, 0, 0, 0, time.UTC), ref))
}
