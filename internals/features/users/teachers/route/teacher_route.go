package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"teacher_attendance_backend/internals/features/users/teachers/controller"
)

// /api/u/teachers
func TeacherUserRoutes(user fiber.Router, db *gorm.DB) {
	ctl := controller.New(db, validator.New())

	grp := user.Group("/teachers")
	grp.Get("/me", ctl.GetMe)
	grp.Patch("/me", ctl.UpdateMe)
}

// /api/a/teachers (group admin sudah dijaga role middleware)
func TeacherAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := controller.New(db, validator.New())

	grp := admin.Group("/teachers")
	grp.Get("/", ctl.List)
	grp.Patch("/:id/role", ctl.SetRole)
}
