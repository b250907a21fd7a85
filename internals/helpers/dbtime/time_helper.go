// file: internals/helpers/dbtime/time_helper.go
package dbtime

import (
	"fmt"
	"time"
)

// Clock: sumber "sekarang" yang di-inject ke policy/service
// (test pakai FixedClock supaya batas jam bisa diuji deterministik).
type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

type FixedClock struct{ T time.Time }

func (f FixedClock) Now() time.Time { return f.T }

// ClockFunc: adaptor fungsi → Clock
type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time { return f() }

// FixedOffsetLocation: zona sekolah tetap (tanpa DST), mis. UTC+1
func FixedOffsetLocation(hours int) *time.Location {
	return time.FixedZone(fmt.Sprintf("UTC%+d", hours), hours*3600)
}

// CalendarDate: tanggal kalender t di zona loc, dinyatakan sebagai
// tengah malam UTC (bentuk yang disimpan di kolom date).
func CalendarDate(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// EndOfDay: 23:59:59 pada tanggal yang sama
func EndOfDay(day time.Time) time.Time {
	y, m, d := day.Date()
	return time.Date(y, m, d, 23, 59, 59, 0, day.Location())
}

// SameDate: bandingkan tanggal kalender saja (bukan timestamp)
func SameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// ToSchoolTimePtr mengonversi waktu (biasanya dari DB = UTC) ke zona sekolah.
func ToSchoolTimePtr(t *time.Time, loc *time.Location) *time.Time {
	if t == nil {
		return nil
	}
	if loc == nil {
		v := *t
		return &v
	}
	v := t.In(loc)
	return &v
}

// FormatDate: "YYYY-MM-DD"
func FormatDate(day time.Time) string {
	return day.Format("2006-01-02")
}

// ParseDate: "YYYY-MM-DD" → tengah malam UTC
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", s, time.UTC)
}
