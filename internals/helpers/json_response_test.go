package helper

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolvePaging(t *testing.T) {
	app := fiber.New()
	var got Paging
	app.Get("/", func(c *fiber.Ctx) error {
		got = ResolvePaging(c, 20, 100)
		return nil
	})

	tests := []struct {
		query string
		want  Paging
	}{
		{"", Paging{Page: 1, PerPage: 20, Offset: 0, Limit: 20}},
		{"?page=3&per_page=10", Paging{Page: 3, PerPage: 10, Offset: 20, Limit: 10}},
		{"?page=-1&limit=500", Paging{Page: 1, PerPage: 100, Offset: 0, Limit: 100}},
		{"?page=abc&per_page=0", Paging{Page: 1, PerPage: 20, Offset: 0, Limit: 20}},
	}
	for _, tt := range tests {
		_, err := app.Test(httptest.NewRequest(http.MethodGet, "/"+tt.query, nil), -1)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, tt.query)
	}
}

func TestBuildPaginationFromPage(t *testing.T) {
	p := BuildPaginationFromPage(45, 2, 20, 20)
	assert.Equal(t, 3, p.TotalPages)
	assert.True(t, p.HasNext)
	assert.True(t, p.HasPrev)

	p = BuildPaginationFromPage(0, 1, 20, 0)
	assert.Equal(t, 1, p.TotalPages)
	assert.False(t, p.HasNext)
}

func TestJsonErrorCode_Envelope(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
	app.Get("/domain", func(c *fiber.Ctx) error {
		return JsonErrorCode(c, fiber.StatusConflict, "ALREADY_CHECKED_IN", "sudah check-in")
	})
	app.Get("/fiber", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusUnauthorized, "User belum login")
	})
	app.Get("/internal", func(c *fiber.Ctx) error {
		return io.ErrUnexpectedEOF
	})

	read := func(path string) (int, ErrorResponse) {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil), -1)
		require.NoError(t, err)
		defer resp.Body.Close()
		raw, _ := io.ReadAll(resp.Body)
		var out ErrorResponse
		require.NoError(t, sonic.Unmarshal(raw, &out))
		return resp.StatusCode, out
	}

	status, out := read("/domain")
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "ALREADY_CHECKED_IN", out.ErrorCode)
	assert.False(t, out.Success)

	status, out = read("/fiber")
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "UNAUTHORIZED", out.ErrorCode)

	// error non-fiber tidak membocorkan pesan asli
	status, out = read("/internal")
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "INTERNAL_ERROR", out.ErrorCode)
	assert.Equal(t, "Internal Server Error", out.Message)
}
