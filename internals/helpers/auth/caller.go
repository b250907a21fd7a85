package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"teacher_attendance_backend/internals/constants"
	helper "teacher_attendance_backend/internals/helpers"
)

// Caller: identitas terverifikasi dari JWT. Core percaya nilai ini
// tanpa cek ulang kredensial.
type Caller struct {
	UserID uuid.UUID
	Role   string
	Name   string
}

func (c Caller) IsAdmin() bool {
	return c.Role == constants.RoleAdmin
}

// GetCaller membaca user_id + role dari Locals yang diisi AuthMiddleware.
func GetCaller(c *fiber.Ctx) (Caller, error) {
	id, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return Caller{}, err
	}
	role, _ := c.Locals(helper.LocUserRole).(string)
	role = strings.ToLower(strings.TrimSpace(role))
	if role == "" {
		return Caller{}, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Role not found")
	}
	name, _ := c.Locals(helper.LocUserName).(string)
	return Caller{UserID: id, Role: role, Name: name}, nil
}
