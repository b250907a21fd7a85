package helper

import (
	"errors"
	"net/http"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// --- PG error mapping (pgx/libpq) ---
func MapPGError(err error) (int, string) {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return http.StatusConflict, "Data duplikat (unique violation)."
	}
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return http.StatusBadRequest, "Referensi tidak ditemukan (FK violation)."
	}
	// pgx
	var pgxErr *pgconn.PgError
	if errors.As(err, &pgxErr) {
		return mapPGCode(pgxErr.Code, pgxErr.Message)
	}
	// lib/pq
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return mapPGCode(string(pqErr.Code), pqErr.Message)
	}
	return http.StatusInternalServerError, "Internal Server Error"
}

func mapPGCode(code, msg string) (int, string) {
	switch code {
	case "23503":
		return http.StatusBadRequest, "Referensi tidak ditemukan (FK violation)."
	case "23505":
		return http.StatusConflict, "Data duplikat (unique violation)."
	case "57014":
		return http.StatusServiceUnavailable, "Query terlalu lama (statement timeout)."
	default:
		return http.StatusInternalServerError, msg
	}
}

// IsUniqueViolation: true kalau error berasal dari unique constraint
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	status, _ := MapPGError(err)
	return status == http.StatusConflict
}
