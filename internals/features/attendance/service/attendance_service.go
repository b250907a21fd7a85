package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"teacher_attendance_backend/internals/features/attendance/dto"
	"teacher_attendance_backend/internals/features/attendance/model"
	teacherModel "teacher_attendance_backend/internals/features/users/teachers/model"
	"teacher_attendance_backend/internals/helpers/dbtime"
)

/* =========================================================
   State machine harian: NoRecord → CheckedIn → CheckedOut
========================================================= */

type AttendanceService struct {
	Teachers TeacherStore
	Records  RecordStore
	Clock    dbtime.Clock
	Policy   WindowPolicy
}

func NewAttendanceService(teachers TeacherStore, records RecordStore, clock dbtime.Clock, policy WindowPolicy) *AttendanceService {
	if clock == nil {
		clock = dbtime.SystemClock{}
	}
	return &AttendanceService{Teachers: teachers, Records: records, Clock: clock, Policy: policy}
}

type CheckResult struct {
	Record model.AttendanceRecordModel
	Status string
}

// CheckIn membaca jam sekali lalu mendelegasikan ke CheckInAt.
func (s *AttendanceService) CheckIn(ctx context.Context, teacherID uuid.UUID, fingerprint *string) (*CheckResult, error) {
	return s.CheckInAt(ctx, teacherID, s.Clock.Now(), fingerprint)
}

func (s *AttendanceService) CheckInAt(ctx context.Context, teacherID uuid.UUID, now time.Time, fingerprint *string) (*CheckResult, error) {
	if !s.Policy.CanCheckIn(now) {
		return nil, fmt.Errorf("%w: check-in hanya %s", ErrOutOfWindow, s.Policy.CheckIn.Label())
	}
	if _, err := s.findTeacher(ctx, teacherID); err != nil {
		return nil, err
	}

	day := s.Policy.Today(now)
	rec, applied, err := s.Records.ApplyCheckIn(ctx, teacherID, day, now.UTC(), fingerprint)
	if err != nil {
		return nil, fmt.Errorf("check-in: %w", err)
	}
	if !applied {
		return nil, fmt.Errorf("%w: %s", ErrAlreadyCheckedIn, dbtime.FormatDate(day))
	}
	log.Printf("[ATTENDANCE] check-in teacher=%s date=%s", teacherID, dbtime.FormatDate(day))
	return &CheckResult{Record: *rec, Status: RecordStatus(*rec)}, nil
}

func (s *AttendanceService) CheckOut(ctx context.Context, teacherID uuid.UUID, fingerprint *string) (*CheckResult, error) {
	return s.CheckOutAt(ctx, teacherID, s.Clock.Now(), fingerprint)
}

func (s *AttendanceService) CheckOutAt(ctx context.Context, teacherID uuid.UUID, now time.Time, fingerprint *string) (*CheckResult, error) {
	if !s.Policy.CanCheckOut(now) {
		return nil, fmt.Errorf("%w: check-out hanya %s", ErrOutOfWindow, s.Policy.CheckOut.Label())
	}
	if _, err := s.findTeacher(ctx, teacherID); err != nil {
		return nil, err
	}

	day := s.Policy.Today(now)
	rec, applied, err := s.Records.ApplyCheckOut(ctx, teacherID, day, now.UTC(), fingerprint)
	if err != nil {
		return nil, fmt.Errorf("check-out: %w", err)
	}
	if !applied {
		if rec == nil || rec.AttendanceRecordCheckIn == nil {
			return nil, fmt.Errorf("%w: %s", ErrNotCheckedIn, dbtime.FormatDate(day))
		}
		return nil, fmt.Errorf("%w: %s", ErrAlreadyCheckedOut, dbtime.FormatDate(day))
	}
	log.Printf("[ATTENDANCE] check-out teacher=%s date=%s", teacherID, dbtime.FormatDate(day))
	return &CheckResult{Record: *rec, Status: RecordStatus(*rec)}, nil
}

// Today: status hari ini + info window (untuk tombol di client)
func (s *AttendanceService) Today(ctx context.Context, teacherID uuid.UUID) (*dto.TodayStatusResponse, error) {
	now := s.Clock.Now()
	day := s.Policy.Today(now)

	rec, err := s.Records.FindByTeacherAndDate(ctx, teacherID, day)
	if err != nil {
		return nil, fmt.Errorf("today: %w", err)
	}

	out := &dto.TodayStatusResponse{
		Date:           dbtime.FormatDate(day),
		Status:         model.StatusAbsent,
		CheckInWindow:  dto.WindowInfo{Label: s.Policy.CheckIn.Label(), IsOpen: s.Policy.CanCheckIn(now)},
		CheckOutWindow: dto.WindowInfo{Label: s.Policy.CheckOut.Label(), IsOpen: s.Policy.CanCheckOut(now)},
	}
	if rec != nil {
		out.Status = RecordStatus(*rec)
		r := dto.FromRecordModel(*rec, out.Status, s.Policy.Location)
		out.Record = &r
	}
	return out, nil
}

func (s *AttendanceService) findTeacher(ctx context.Context, id uuid.UUID) (*teacherModel.TeacherModel, error) {
	return findTeacher(ctx, s.Teachers, id)
}

func findTeacher(ctx context.Context, store TeacherStore, id uuid.UUID) (*teacherModel.TeacherModel, error) {
	t, err := store.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: guru %s", ErrNotFound, id)
		}
		return nil, fmt.Errorf("cari guru: %w", err)
	}
	return t, nil
}
