package route_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"teacher_attendance_backend/internals/configs"
	"teacher_attendance_backend/internals/databases/dbtest"
	"teacher_attendance_backend/internals/features/users/auth/route"
	teacherModel "teacher_attendance_backend/internals/features/users/teachers/model"
	helper "teacher_attendance_backend/internals/helpers"
)

const registerBody = `{
	"name": "Budi Santoso",
	"email": "  Budi@Sekolah.ID ",
	"password": "rahasia123",
	"age": 30,
	"school_name": "SD Negeri 1",
	"class_name": "4A",
	"position": "Wali Kelas",
	"gender": "male",
	"religion": "Islam",
	"subjects": ["Matematika", " "]
}`

func newApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	configs.JWTSecret = "test-secret"
	t.Cleanup(func() { configs.JWTSecret = "" })

	db := dbtest.Open(t)
	app := fiber.New(fiber.Config{
		JSONEncoder:  sonic.Marshal,
		JSONDecoder:  sonic.Unmarshal,
		ErrorHandler: helper.ErrorHandler,
	})
	route.AuthRoutes(app, db)
	return app, db
}

func call(t *testing.T, app *fiber.App, method, path, body, token string) (int, map[string]any) {
	t.Helper()
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rd)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	out := map[string]any{}
	require.NoError(t, sonic.Unmarshal(raw, &out), string(raw))
	return resp.StatusCode, out
}

func login(t *testing.T, app *fiber.App, email, password string) string {
	t.Helper()
	status, body := call(t, app, http.MethodPost, "/api/auth/login", `{"email":"`+email+`","password":"`+password+`"}`, "")
	require.Equal(t, http.StatusOK, status, body["message"])
	data, _ := body["data"].(map[string]any)
	token, _ := data["access_token"].(string)
	require.NotEmpty(t, token)
	return token
}

func TestRegisterLoginMeLogout(t *testing.T) {
	app, db := newApp(t)

	status, body := call(t, app, http.MethodPost, "/api/auth/register", registerBody, "")
	require.Equal(t, http.StatusCreated, status, body["message"])
	data, _ := body["data"].(map[string]any)
	assert.Equal(t, "budi@sekolah.id", data["email"])
	assert.Equal(t, "teacher", data["role"])

	var stored teacherModel.TeacherModel
	require.NoError(t, db.Where("teacher_email = ?", "budi@sekolah.id").First(&stored).Error)
	assert.NotEqual(t, "rahasia123", stored.TeacherPassword)
	assert.Equal(t, []string{"Matematika"}, []string(stored.TeacherSubjects))

	status, _ = call(t, app, http.MethodPost, "/api/auth/register", registerBody, "")
	assert.Equal(t, http.StatusConflict, status)

	status, _ = call(t, app, http.MethodPost, "/api/auth/login", `{"email":"budi@sekolah.id","password":"salah12345"}`, "")
	assert.Equal(t, http.StatusUnauthorized, status)

	token := login(t, app, "budi@sekolah.id", "rahasia123")

	status, body = call(t, app, http.MethodGet, "/api/auth/me", "", token)
	require.Equal(t, http.StatusOK, status, body["message"])
	data, _ = body["data"].(map[string]any)
	assert.Equal(t, "Budi Santoso", data["name"])

	status, _ = call(t, app, http.MethodPost, "/api/auth/logout", "", token)
	require.Equal(t, http.StatusOK, status)

	status, body = call(t, app, http.MethodGet, "/api/auth/me", "", token)
	assert.Equal(t, http.StatusUnauthorized, status, body["message"])
}

func TestMe_RequiresToken(t *testing.T) {
	app, _ := newApp(t)

	status, body := call(t, app, http.MethodGet, "/api/auth/me", "", "")
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, false, body["success"])

	status, _ = call(t, app, http.MethodGet, "/api/auth/me", "", "bukan.jwt.valid")
	assert.Equal(t, http.StatusUnauthorized, status)
}

func TestInactiveTeacher_Blocked(t *testing.T) {
	app, db := newApp(t)

	status, _ := call(t, app, http.MethodPost, "/api/auth/register", registerBody, "")
	require.Equal(t, http.StatusCreated, status)
	token := login(t, app, "budi@sekolah.id", "rahasia123")

	require.NoError(t, db.Model(&teacherModel.TeacherModel{}).
		Where("teacher_email = ?", "budi@sekolah.id").
		Update("teacher_is_active", false).Error)

	status, _ = call(t, app, http.MethodGet, "/api/auth/me", "", token)
	assert.Equal(t, http.StatusForbidden, status)

	status, _ = call(t, app, http.MethodPost, "/api/auth/login", `{"email":"budi@sekolah.id","password":"rahasia123"}`, "")
	assert.Equal(t, http.StatusForbidden, status)
}

func TestChangePassword(t *testing.T) {
	app, _ := newApp(t)

	status, _ := call(t, app, http.MethodPost, "/api/auth/register", registerBody, "")
	require.Equal(t, http.StatusCreated, status)
	token := login(t, app, "budi@sekolah.id", "rahasia123")

	status, _ = call(t, app, http.MethodPost, "/api/auth/change-password", `{"current_password":"salah","new_password":"barubaru99"}`, token)
	assert.Equal(t, http.StatusUnauthorized, status)

	status, body := call(t, app, http.MethodPost, "/api/auth/change-password", `{"current_password":"rahasia123","new_password":"barubaru99"}`, token)
	require.Equal(t, http.StatusOK, status, body["message"])

	login(t, app, "budi@sekolah.id", "barubaru99")
}
