package service

import "errors"

// Error domain absensi/laporan. Dibungkus dengan fmt.Errorf("%w: ...")
// supaya pesan detail tetap bisa dicek pakai errors.Is.
var (
	ErrOutOfWindow       = errors.New("di luar jam absensi")
	ErrAlreadyCheckedIn  = errors.New("sudah check-in hari ini")
	ErrNotCheckedIn      = errors.New("belum check-in hari ini")
	ErrAlreadyCheckedOut = errors.New("sudah check-out hari ini")

	ErrMissingParameter = errors.New("parameter wajib tidak ada")
	ErrInvalidParameter = errors.New("parameter tidak valid")
	ErrNotFound         = errors.New("data tidak ditemukan")
	ErrForbidden        = errors.New("akses ditolak")
)

const (
	CodeOutOfWindow       = "OUT_OF_WINDOW"
	CodeAlreadyCheckedIn  = "ALREADY_CHECKED_IN"
	CodeNotCheckedIn      = "NOT_CHECKED_IN"
	CodeAlreadyCheckedOut = "ALREADY_CHECKED_OUT"
	CodeMissingParameter  = "MISSING_PARAMETER"
	CodeInvalidParameter  = "INVALID_PARAMETER"
	CodeNotFound          = "NOT_FOUND"
	CodeForbidden         = "FORBIDDEN"
	CodeInternal          = "INTERNAL_ERROR"
)

var errorCodes = []struct {
	err  error
	code string
}{
	{ErrOutOfWindow, CodeOutOfWindow},
	{ErrAlreadyCheckedIn, CodeAlreadyCheckedIn},
	{ErrNotCheckedIn, CodeNotCheckedIn},
	{ErrAlreadyCheckedOut, CodeAlreadyCheckedOut},
	{ErrMissingParameter, CodeMissingParameter},
	{ErrInvalidParameter, CodeInvalidParameter},
	{ErrNotFound, CodeNotFound},
	{ErrForbidden, CodeForbidden},
}

// ErrorCode: kode domain untuk err; selain error domain → INTERNAL_ERROR
func ErrorCode(err error) string {
	for _, ec := range errorCodes {
		if errors.Is(err, ec.err) {
			return ec.code
		}
	}
	return CodeInternal
}
