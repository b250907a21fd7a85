package helper

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"teacher_attendance_backend/internals/constants"
	helper "teacher_attendance_backend/internals/helpers"
)

func TestGetCaller(t *testing.T) {
	id := uuid.New()
	app := fiber.New()

	var (
		got    Caller
		gotErr error
	)
	app.Get("/", func(c *fiber.Ctx) error {
		if v := c.Get("X-User"); v != "" {
			c.Locals(helper.LocUserID, v)
		}
		if v := c.Get("X-Role"); v != "" {
			c.Locals(helper.LocUserRole, v)
		}
		got, gotErr = GetCaller(c)
		return nil
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-User", id.String())
	req.Header.Set("X-Role", " Admin ")
	_, err := app.Test(req, -1)
	require.NoError(t, err)
	require.NoError(t, gotErr)
	assert.Equal(t, id, got.UserID)
	assert.True(t, got.IsAdmin())

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-User", id.String())
	_, err = app.Test(req, -1)
	require.NoError(t, err)
	assert.Error(t, gotErr)

	assert.False(t, Caller{Role: constants.RoleTeacher}.IsAdmin())
}

func TestHashToken(t *testing.T) {
	a := HashToken("tok", "s1")
	assert.Len(t, a, 64)
	assert.Equal(t, a, HashToken(" tok ", "s1"))
	assert.NotEqual(t, a, HashToken("tok", "s2"))
}
