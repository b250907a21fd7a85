package routes

import (
	"fmt"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"teacher_attendance_backend/internals/configs"
)

func BaseRoutes(app *fiber.App, db *gorm.DB) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Teacher attendance API 🚀")
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		dbStatus := "Connected"
		serverStatus := "OK"
		httpStatus := fiber.StatusOK

		sqlDB, err := db.DB()
		if err != nil || sqlDB.PingContext(c.UserContext()) != nil {
			dbStatus = "Database connection error"
			serverStatus = "DOWN"
			httpStatus = fiber.StatusServiceUnavailable
		}

		return c.Status(httpStatus).JSON(fiber.Map{
			"status":         serverStatus,
			"database":       dbStatus,
			"server_time":    time.Now().Format(time.RFC3339),
			"uptime_seconds": int(time.Since(startTime).Seconds()),
			"environment":    os.Getenv("RAILWAY_ENVIRONMENT"),
			"attendance":     attendanceInfo(),
		})
	})
}

// attendanceInfo: window aktif (berguna untuk cek konfigurasi ENV di deploy)
func attendanceInfo() fiber.Map {
	w := configs.AttendanceConfig()
	return fiber.Map{
		"utc_offset_hours": w.UTCOffsetHours,
		"check_in":         fmt.Sprintf("%02d:00-%02d:00", w.CheckInStart, w.CheckInEnd),
		"check_out":        fmt.Sprintf("%02d:00-%02d:00", w.CheckOutStart, w.CheckOutEnd),
	}
}
