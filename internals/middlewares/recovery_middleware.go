package middlewares

import (
	"log"
	"runtime/debug"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"teacher_attendance_backend/internals/configs"
)

// RecoveryMiddleware: panic di handler → 500 dengan envelope standar
// (lewat ErrorHandler). Stack trace dicetak kalau RECOVER_STACK_TRACE=true.
func RecoveryMiddleware() fiber.Handler {
	return recover.New(recover.Config{
		EnableStackTrace: configs.GetEnvBool("RECOVER_STACK_TRACE", true),
		StackTraceHandler: func(c *fiber.Ctx, e interface{}) {
			log.Printf("[PANIC] %s %s reqid=%v: %v\n%s", c.Method(), c.OriginalURL(), c.Locals("reqid"), e, debug.Stack())
		},
	})
}

