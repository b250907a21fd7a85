package dto

import (
	"time"

	"teacher_attendance_backend/internals/features/attendance/model"
	"teacher_attendance_backend/internals/helpers/dbtime"

	"github.com/google/uuid"
)

const (
	CheckTypeIn  = "checkIn"
	CheckTypeOut = "checkOut"
)

// POST /attendance/check-in | /check-out
type CheckRequest struct {
	Fingerprint *string `json:"fingerprint" validate:"omitempty,max=512"`
}

// POST /attendance/check (bentuk route lama: satu endpoint + type)
type CheckTypedRequest struct {
	Type        string  `json:"type" validate:"required,oneof=checkIn checkOut"`
	Fingerprint *string `json:"fingerprint" validate:"omitempty,max=512"`
}

type AttendanceRecordResponse struct {
	AttendanceRecordID uuid.UUID  `json:"attendance_record_id"`
	TeacherID          uuid.UUID  `json:"teacher_id"`
	Date               string     `json:"date"`
	CheckIn            *time.Time `json:"check_in,omitempty"`
	CheckOut           *time.Time `json:"check_out,omitempty"`
	Status             string     `json:"status"`
}

type CheckResponse struct {
	Status string                   `json:"status"`
	Type   string                   `json:"type"`
	Record AttendanceRecordResponse `json:"record"`
}

type WindowInfo struct {
	Label  string `json:"label"`
	IsOpen bool   `json:"is_open"`
}

// GET /attendance/today
type TodayStatusResponse struct {
	Date           string                    `json:"date"`
	Status         string                    `json:"status"`
	Record         *AttendanceRecordResponse `json:"record,omitempty"`
	CheckInWindow  WindowInfo                `json:"check_in_window"`
	CheckOutWindow WindowInfo                `json:"check_out_window"`
}

// FromRecordModel: status diisi pemanggil (aturan status ada di service)
func FromRecordModel(m model.AttendanceRecordModel, status string, loc *time.Location) AttendanceRecordResponse {
	return AttendanceRecordResponse{
		AttendanceRecordID: m.AttendanceRecordID,
		TeacherID:          m.AttendanceRecordTeacherID,
		Date:               dbtime.FormatDate(m.Day()),
		CheckIn:            dbtime.ToSchoolTimePtr(m.AttendanceRecordCheckIn, loc),
		CheckOut:           dbtime.ToSchoolTimePtr(m.AttendanceRecordCheckOut, loc),
		Status:             status,
	}
}
