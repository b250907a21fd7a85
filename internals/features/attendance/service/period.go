package service

import (
	"fmt"
	"time"

	"teacher_attendance_backend/internals/features/attendance/dto"
	"teacher_attendance_backend/internals/helpers/dbtime"
)

type Granularity string

const (
	GranularityYear  Granularity = "year"
	GranularityMonth Granularity = "month"
	GranularityDay   Granularity = "day"
)

// Period: rentang tanggal inklusif [Start, End]; End selalu 23:59:59.
type Period struct {
	Granularity Granularity
	Year        int
	Month       *int
	Day         *int
	Start       time.Time
	End         time.Time
}

// ResolvePeriod menerjemahkan selector ke batas tanggal.
// year wajib; day tanpa month ditolak (MissingParameter).
func ResolvePeriod(sel dto.PeriodSelector) (Period, error) {
	if sel.Year == nil {
		return Period{}, fmt.Errorf("%w: year", ErrMissingParameter)
	}
	year := *sel.Year
	if year < 1 || year > 9999 {
		return Period{}, fmt.Errorf("%w: year %d", ErrInvalidParameter, year)
	}
	if sel.Day != nil && sel.Month == nil {
		return Period{}, fmt.Errorf("%w: month (day butuh month)", ErrMissingParameter)
	}

	if sel.Month == nil {
		return Period{
			Granularity: GranularityYear,
			Year:        year,
			Start:       time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC),
			End:         time.Date(year, time.December, 31, 23, 59, 59, 0, time.UTC),
		}, nil
	}

	month := *sel.Month
	if month < 1 || month > 12 {
		return Period{}, fmt.Errorf("%w: month %d", ErrInvalidParameter, month)
	}

	if sel.Day == nil {
		return MonthPeriod(year, month), nil
	}

	day := *sel.Day
	if day < 1 || day > daysIn(year, time.Month(month)) {
		return Period{}, fmt.Errorf("%w: day %d", ErrInvalidParameter, day)
	}
	start := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	return Period{
		Granularity: GranularityDay,
		Year:        year,
		Month:       intPtr(month),
		Day:         intPtr(day),
		Start:       start,
		End:         dbtime.EndOfDay(start),
	}, nil
}

// MonthPeriod: tanggal 1 s/d hari terakhir bulan
func MonthPeriod(year, month int) Period {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	last := time.Date(year, time.Month(month), daysIn(year, time.Month(month)), 0, 0, 0, 0, time.UTC)
	return Period{
		Granularity: GranularityMonth,
		Year:        year,
		Month:       intPtr(month),
		Start:       start,
		End:         dbtime.EndOfDay(last),
	}
}

// Contains: cek tanggal kalender day ada di dalam periode
func (p Period) Contains(day time.Time) bool {
	d := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	return !d.Before(p.Start) && !d.After(p.End)
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func intPtr(v int) *int { return &v }
