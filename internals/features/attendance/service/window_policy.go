package service

import (
	"fmt"
	"time"

	"teacher_attendance_backend/internals/configs"
	"teacher_attendance_backend/internals/helpers/dbtime"
)

// IsWithinWindow: jam now (di zona loc) ada di [startHour, endHour).
// Tepat di endHour window sudah tutup.
func IsWithinWindow(startHour, endHour int, now time.Time, loc *time.Location) bool {
	if loc == nil {
		loc = time.UTC
	}
	h := now.In(loc).Hour()
	return h >= startHour && h < endHour
}

type Window struct {
	StartHour int
	EndHour   int
}

func (w Window) Label() string {
	return fmt.Sprintf("%02d:00-%02d:00", w.StartHour, w.EndHour)
}

type WindowPolicy struct {
	Location *time.Location
	CheckIn  Window
	CheckOut Window
}

// DefaultWindowPolicy: check-in [7,9), check-out [13,15), UTC+1
func DefaultWindowPolicy() WindowPolicy {
	return NewWindowPolicy(configs.DefaultAttendanceWindows())
}

func NewWindowPolicy(cfg configs.AttendanceWindows) WindowPolicy {
	return WindowPolicy{
		Location: dbtime.FixedOffsetLocation(cfg.UTCOffsetHours),
		CheckIn:  Window{StartHour: cfg.CheckInStart, EndHour: cfg.CheckInEnd},
		CheckOut: Window{StartHour: cfg.CheckOutStart, EndHour: cfg.CheckOutEnd},
	}
}

func (p WindowPolicy) CanCheckIn(now time.Time) bool {
	return IsWithinWindow(p.CheckIn.StartHour, p.CheckIn.EndHour, now, p.Location)
}

func (p WindowPolicy) CanCheckOut(now time.Time) bool {
	return IsWithinWindow(p.CheckOut.StartHour, p.CheckOut.EndHour, now, p.Location)
}

// Today: tanggal kalender now di zona sekolah
func (p WindowPolicy) Today(now time.Time) time.Time {
	return dbtime.CalendarDate(now, p.Location)
}
