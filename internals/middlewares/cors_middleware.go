// middlewares/cors.go

package middlewares

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"teacher_attendance_backend/internals/configs"
)

var defaultOrigins = []string{
	"http://localhost:5173",
	"http://127.0.0.1:5500",
}

// CorsMiddleware: origin dari CORS_ALLOW_ORIGINS (dipisah koma), fallback dev origin
func CorsMiddleware() fiber.Handler {
	return cors.New(cors.Config{
		AllowOrigins:     strings.Join(allowedOrigins(), ", "),
		AllowMethods:     "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, X-Request-ID",
		AllowCredentials: true,
	})
}

func allowedOrigins() []string {
	raw := configs.GetEnv("CORS_ALLOW_ORIGINS")
	if strings.TrimSpace(raw) == "" {
		return defaultOrigins
	}
	out := make([]string, 0)
	for _, o := range strings.Split(raw, ",") {
		// "*" tidak boleh dipakai bersama AllowCredentials
		if o = strings.TrimSpace(o); o != "" && o != "*" {
			out = append(out, o)
		}
	}
	if len(out) == 0 {
		return defaultOrigins
	}
	return out
}
