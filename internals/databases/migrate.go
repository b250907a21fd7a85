package database

import (
	"log"

	"gorm.io/gorm"

	attendanceModel "teacher_attendance_backend/internals/features/attendance/model"
	authModel "teacher_attendance_backend/internals/features/users/auth/model"
	teacherModel "teacher_attendance_backend/internals/features/users/teachers/model"
)

// AutoMigrate: buat/ubah tabel sesuai model. Unique index
// (teacher_id, date) di attendance_records ikut dibuat di sini.
func AutoMigrate(db *gorm.DB) error {
	log.Println("[INFO] AutoMigrate teachers, attendance_records, token_blacklist...")
	return db.AutoMigrate(
		&teacherModel.TeacherModel{},
		&attendanceModel.AttendanceRecordModel{},
		&authModel.TokenBlacklist{},
	)
}
