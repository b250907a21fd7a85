package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attendanceRoute "teacher_attendance_backend/internals/features/attendance/route"
	teacherRoute "teacher_attendance_backend/internals/features/users/teachers/route"
)

// AttendanceUserRoutes: /api/u (teacher & admin)
func AttendanceUserRoutes(user fiber.Router, db *gorm.DB) {
	teacherRoute.TeacherUserRoutes(user, db)
	attendanceRoute.AttendanceUserRoutes(user, db)
}

// AttendanceAdminRoutes: /api/a (admin saja)
func AttendanceAdminRoutes(admin fiber.Router, db *gorm.DB) {
	teacherRoute.TeacherAdminRoutes(admin, db)
	attendanceRoute.AttendanceAdminRoutes(admin, db)
}
