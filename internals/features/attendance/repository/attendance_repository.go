package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"teacher_attendance_backend/internals/features/attendance/model"
)

const (
	colTeacherID = "attendance_record_teacher_id"
	colDate      = "attendance_record_date"
)

// AttendanceRepository: transisi check-in/out dilakukan dengan
// conditional write supaya dua request paralel tidak saling timpa.
type AttendanceRepository struct {
	DB *gorm.DB
}

func NewAttendanceRepository(db *gorm.DB) *AttendanceRepository {
	return &AttendanceRepository{DB: db}
}

// FindByTeacherAndDate: (nil, nil) kalau belum ada record
func (r *AttendanceRepository) FindByTeacherAndDate(ctx context.Context, teacherID uuid.UUID, day time.Time) (*model.AttendanceRecordModel, error) {
	return findOne(r.DB.WithContext(ctx), teacherID, day)
}

// ApplyCheckIn:
//  1. INSERT ... ON CONFLICT (teacher_id, date) DO NOTHING
//  2. kalau konflik → UPDATE ... WHERE check_in IS NULL
//
// applied=false ⇒ check-in hari itu sudah ada.
func (r *AttendanceRepository) ApplyCheckIn(ctx context.Context, teacherID uuid.UUID, day, at time.Time, fingerprint *string) (*model.AttendanceRecordModel, bool, error) {
	var (
		rec     *model.AttendanceRecordModel
		applied bool
	)
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		checkIn := at
		row := model.AttendanceRecordModel{
			AttendanceRecordTeacherID:          teacherID,
			AttendanceRecordDate:               datatypes.Date(day),
			AttendanceRecordCheckIn:            &checkIn,
			AttendanceRecordCheckInFingerprint: fingerprint,
		}
		ins := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: colTeacherID}, {Name: colDate}},
			DoNothing: true,
		}).Create(&row)
		if ins.Error != nil {
			return ins.Error
		}

		if ins.RowsAffected == 1 {
			applied = true
		} else {
			upd := tx.Model(&model.AttendanceRecordModel{}).
				Where(colTeacherID+" = ? AND "+colDate+" = ? AND attendance_record_check_in IS NULL", teacherID, datatypes.Date(day)).
				Updates(map[string]any{
					"attendance_record_check_in":             at,
					"attendance_record_check_in_fingerprint": fingerprint,
					"attendance_record_updated_at":           time.Now().UTC(),
				})
			if upd.Error != nil {
				return upd.Error
			}
			applied = upd.RowsAffected == 1
		}

		var err error
		rec, err = findOne(tx, teacherID, day)
		return err
	})
	if err != nil {
		return nil, false, err
	}
	return rec, applied, nil
}

// ApplyCheckOut: UPDATE ... WHERE check_in IS NOT NULL AND check_out IS NULL.
// Kalau tidak ada baris yang berubah, record terkini dikembalikan
// supaya service bisa membedakan NotCheckedIn vs AlreadyCheckedOut.
func (r *AttendanceRepository) ApplyCheckOut(ctx context.Context, teacherID uuid.UUID, day, at time.Time, fingerprint *string) (*model.AttendanceRecordModel, bool, error) {
	var (
		rec     *model.AttendanceRecordModel
		applied bool
	)
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		upd := tx.Model(&model.AttendanceRecordModel{}).
			Where(colTeacherID+" = ? AND "+colDate+" = ?", teacherID, datatypes.Date(day)).
			Where("attendance_record_check_in IS NOT NULL AND attendance_record_check_out IS NULL").
			Updates(map[string]any{
				"attendance_record_check_out":             at,
				"attendance_record_check_out_fingerprint": fingerprint,
				"attendance_record_updated_at":            time.Now().UTC(),
			})
		if upd.Error != nil {
			return upd.Error
		}
		applied = upd.RowsAffected == 1

		var err error
		rec, err = findOne(tx, teacherID, day)
		return err
	})
	if err != nil {
		return nil, false, err
	}
	return rec, applied, nil
}

// ListByTeacherBetween: record guru dengan tanggal di [from, to], urut tanggal naik
func (r *AttendanceRepository) ListByTeacherBetween(ctx context.Context, teacherID uuid.UUID, from, to time.Time) ([]model.AttendanceRecordModel, error) {
	var rows []model.AttendanceRecordModel
	err := r.DB.WithContext(ctx).
		Where(colTeacherID+" = ?", teacherID).
		Where(colDate+" BETWEEN ? AND ?", from, to).
		Order(colDate + " ASC").
		Find(&rows).Error
	return rows, err
}

func (r *AttendanceRepository) ListByTeachersBetween(ctx context.Context, teacherIDs []uuid.UUID, from, to time.Time) ([]model.AttendanceRecordModel, error) {
	rows := make([]model.AttendanceRecordModel, 0)
	if len(teacherIDs) == 0 {
		return rows, nil
	}
	err := r.DB.WithContext(ctx).
		Where(colTeacherID+" IN ?", teacherIDs).
		Where(colDate+" BETWEEN ? AND ?", from, to).
		Order(colTeacherID + " ASC, " + colDate + " ASC").
		Find(&rows).Error
	return rows, err
}

func findOne(db *gorm.DB, teacherID uuid.UUID, day time.Time) (*model.AttendanceRecordModel, error) {
	var rec model.AttendanceRecordModel
	err := db.
		Where(colTeacherID+" = ? AND "+colDate+" = ?", teacherID, datatypes.Date(day)).
		First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}
