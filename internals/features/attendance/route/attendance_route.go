package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"teacher_attendance_backend/internals/features/attendance/controller"
)

// AttendanceUserRoutes: /api/u/attendance + /api/u/reports
func AttendanceUserRoutes(user fiber.Router, db *gorm.DB) {
	ctl := controller.New(db, validator.New())
	mountUser(user, ctl)
}

// AttendanceAdminRoutes: /api/a/reports
func AttendanceAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := controller.New(db, validator.New())
	mountAdmin(admin, ctl)
}

// Mount: dipakai test untuk memasang controller dengan clock tetap
func Mount(user, admin fiber.Router, ctl *controller.AttendanceController) {
	mountUser(user, ctl)
	mountAdmin(admin, ctl)
}

func mountUser(user fiber.Router, ctl *controller.AttendanceController) {
	att := user.Group("/attendance")
	att.Post("/check-in", ctl.CheckIn)
	att.Post("/check-out", ctl.CheckOut)
	att.Post("/check", ctl.Check)
	att.Get("/today", ctl.Today)

	rep := user.Group("/reports")
	rep.Get("/monthly", ctl.MyMonthlyReport)
	rep.Get("/teachers/:id", ctl.TeacherReport)
}

func mountAdmin(admin fiber.Router, ctl *controller.AttendanceController) {
	rep := admin.Group("/reports")
	rep.Get("/best-performance", ctl.BestPerformance)
	rep.Get("/schools", ctl.SchoolReport)
	rep.Get("/daily", ctl.DailyOverview)
}
