package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Status turunan (tidak disimpan)
const (
	StatusAbsent     = "Absent"
	StatusIncomplete = "Incomplete"
	StatusPresent    = "Present"
)

// AttendanceRecordModel: satu baris per (guru, tanggal kalender).
// Unique index uq_attendance_records_teacher_date menjaga invariant itu di level DB.
type AttendanceRecordModel struct {
	AttendanceRecordID        uuid.UUID      `gorm:"type:uuid;primaryKey;column:attendance_record_id" json:"attendance_record_id"`
	AttendanceRecordTeacherID uuid.UUID      `gorm:"type:uuid;not null;column:attendance_record_teacher_id;uniqueIndex:uq_attendance_records_teacher_date,priority:1" json:"attendance_record_teacher_id"`
	AttendanceRecordDate      datatypes.Date `gorm:"not null;column:attendance_record_date;uniqueIndex:uq_attendance_records_teacher_date,priority:2;index:idx_attendance_records_date" json:"attendance_record_date"`

	AttendanceRecordCheckIn  *time.Time `gorm:"column:attendance_record_check_in" json:"attendance_record_check_in,omitempty"`
	AttendanceRecordCheckOut *time.Time `gorm:"column:attendance_record_check_out" json:"attendance_record_check_out,omitempty"`

	// fingerprint simulasi yang dikirim client saat check-in/out
	AttendanceRecordCheckInFingerprint  *string `gorm:"column:attendance_record_check_in_fingerprint" json:"-"`
	AttendanceRecordCheckOutFingerprint *string `gorm:"column:attendance_record_check_out_fingerprint" json:"-"`

	AttendanceRecordCreatedAt time.Time `gorm:"column:attendance_record_created_at;autoCreateTime" json:"attendance_record_created_at"`
	AttendanceRecordUpdatedAt time.Time `gorm:"column:attendance_record_updated_at;autoUpdateTime" json:"attendance_record_updated_at"`
}

func (AttendanceRecordModel) TableName() string { return "attendance_records" }

func (r *AttendanceRecordModel) BeforeCreate(tx *gorm.DB) error {
	if r.AttendanceRecordID == uuid.Nil {
		r.AttendanceRecordID = uuid.New()
	}
	return nil
}

// Day: tanggal record sebagai time.Time (tengah malam, UTC)
func (r AttendanceRecordModel) Day() time.Time {
	t := time.Time(r.AttendanceRecordDate)
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
