package logs

import "time"

// StartOfDay devuelve las 00:00:00.000 del día de ref, en la zona de ref.
func StartOfDay(ref time.Time) time.Time {
	y, m, d := ref.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, ref.Location())
}

// EndOfDay devuelve las 23:59:59.999 del día de ref, en la zona de ref.
func EndOfDay(ref time.Time) time.Time {
	y, m, d := ref.Date()
	return time.Date(y, m, d, 23, 59, 59, int(999*time.Millisecond), ref.Location())
}

// WithinDay reporta si ts cae en [StartOfDay(day), EndOfDay(day)].
func WithinDay(ts, day time.Time) bool {
	return !ts.Before(StartOfDay(day)) && !ts.After(EndOfDay(day))
}

// SameDay compara fechas de calendario en la zona de b.
func SameDay(a, b time.Time) bool {
	a = a.In(b.Location())
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
