package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"teacher_attendance_backend/internals/features/attendance/model"
	teacherModel "teacher_attendance_backend/internals/features/users/teachers/model"
)

// TeacherStore: sumber data guru. FindByID mengembalikan
// gorm.ErrRecordNotFound bila id tidak ada.
type TeacherStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*teacherModel.TeacherModel, error)
	ListByRole(ctx context.Context, role string, schoolName *string) ([]teacherModel.TeacherModel, error)
}

// RecordStore: penyimpanan record harian. Apply* harus atomik di level
// storage: applied=false berarti kondisi transisi tidak terpenuhi dan
// record yang dikembalikan adalah kondisi terkini (bisa nil).
type RecordStore interface {
	FindByTeacherAndDate(ctx context.Context, teacherID uuid.UUID, day time.Time) (*model.AttendanceRecordModel, error)
	ApplyCheckIn(ctx context.Context, teacherID uuid.UUID, day, at time.Time, fingerprint *string) (*model.AttendanceRecordModel, bool, error)
	ApplyCheckOut(ctx context.Context, teacherID uuid.UUID, day, at time.Time, fingerprint *string) (*model.AttendanceRecordModel, bool, error)
	ListByTeacherBetween(ctx context.Context, teacherID uuid.UUID, from, to time.Time) ([]model.AttendanceRecordModel, error)
	ListByTeachersBetween(ctx context.Context, teacherIDs []uuid.UUID, from, to time.Time) ([]model.AttendanceRecordModel, error)
}
