package logger

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"teacher_attendance_backend/internals/configs"
)

// LoggerMiddleware: satu baris per request, jam mengikuti zona sekolah
func LoggerMiddleware() fiber.Handler {
	return logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   schoolTimeZone(configs.AttendanceConfig().UTCOffsetHours),
		Format:     "[${time}] ${ip} - ${locals:reqid} ${method} ${path} - ${status} - ${latency}\n",
	})
}

// schoolTimeZone: nama IANA untuk offset tetap (tanda Etc/GMT terbalik)
func schoolTimeZone(offsetHours int) string {
	if offsetHours == 0 {
		return "UTC"
	}
	return fmt.Sprintf("Etc/GMT%+d", -offsetHours)
}
