package service

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"

	"teacher_attendance_backend/internals/configs"
	"teacher_attendance_backend/internals/constants"
	authDTO "teacher_attendance_backend/internals/features/users/auth/dto"
	authHelper "teacher_attendance_backend/internals/features/users/auth/helper"
	authRepo "teacher_attendance_backend/internals/features/users/auth/repository"
	teacherModel "teacher_attendance_backend/internals/features/users/teachers/model"
	helpers "teacher_attendance_backend/internals/helpers"
	helpersAuth "teacher_attendance_backend/internals/helpers/auth"
)

/* ==========================
   Const & helpers
========================== */

const accessTTLDefault = 24 * time.Hour

var validate = validator.New()

func nowUTC() time.Time { return time.Now().UTC() }

func getJWTSecret() (string, error) {
	secret := strings.TrimSpace(configs.JWTSecret)
	if secret == "" {
		return "", fiber.NewError(fiber.StatusInternalServerError, "JWT_SECRET belum diset")
	}
	return secret, nil
}

func accessTTL() time.Duration {
	if configs.AccessTokenTTL > 0 {
		return configs.AccessTokenTTL
	}
	return accessTTLDefault
}

// BuildAccessClaims: klaim yang dibaca AuthMiddleware (id, role, user_name)
func BuildAccessClaims(t teacherModel.TeacherModel, now time.Time, ttl time.Duration) jwt.MapClaims {
	return jwt.MapClaims{
		"typ":         "access",
		"sub":         t.TeacherID.String(),
		"id":          t.TeacherID.String(),
		"role":        t.TeacherRole,
		"user_name":   t.TeacherName,
		"school_name": t.TeacherSchoolName,
		"iat":         now.Unix(),
		"exp":         now.Add(ttl).Unix(),
	}
}

// SignAccessToken: HS256 dengan secret dari configs
func SignAccessToken(t teacherModel.TeacherModel, now time.Time) (string, time.Time, error) {
	secret, err := getJWTSecret()
	if err != nil {
		return "", time.Time{}, err
	}
	ttl := accessTTL()
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, BuildAccessClaims(t, now, ttl)).SignedString([]byte(secret))
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, now.Add(ttl), nil
}

func toAuthUser(t teacherModel.TeacherModel) authDTO.AuthUser {
	return authDTO.AuthUser{
		ID:         t.TeacherID,
		Name:       t.TeacherName,
		Email:      t.TeacherEmail,
		Role:       t.TeacherRole,
		SchoolName: t.TeacherSchoolName,
	}
}

/* ==========================
   REGISTER
========================== */

func Register(db *gorm.DB, c *fiber.Ctx) error {
	var input authDTO.RegisterRequest
	if err := c.BodyParser(&input); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	input.Email = teacherModel.NormalizeEmail(input.Email)
	if err := validate.Struct(input); err != nil {
		return helpers.JsonValidationError(c, err)
	}
	if err := authHelper.ValidatePasswordStrength(input.Password); err != nil {
		return helpers.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	tx := db.WithContext(c.UserContext())
	if taken, err := authRepo.IsEmailTaken(tx, input.Email); err != nil {
		log.Printf("[register] cek email gagal: %v", err)
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to create user")
	} else if taken {
		return helpers.JsonError(c, fiber.StatusConflict, "Email already registered")
	}

	hash, err := authHelper.HashPassword(input.Password)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Password hashing failed")
	}

	teacher := teacherModel.TeacherModel{
		TeacherName:        strings.TrimSpace(input.Name),
		TeacherEmail:       input.Email,
		TeacherPassword:    hash,
		TeacherRole:        constants.RoleTeacher,
		TeacherAge:         input.Age,
		TeacherSchoolName:  input.SchoolName,
		TeacherClassName:   strings.TrimSpace(input.ClassName),
		TeacherPosition:    strings.TrimSpace(input.Position),
		TeacherGender:      teacherModel.Gender(input.Gender),
		TeacherReligion:    strings.TrimSpace(input.Religion),
		TeacherSubjects:    teacherModel.Subjects(input.Subjects),
		TeacherFingerprint: input.Fingerprint,
		TeacherIsActive:    true,
	}
	if err := authRepo.CreateTeacher(tx, &teacher); err != nil {
		// race dengan register paralel → unique violation
		status, msg := helpers.MapPGError(err)
		if status == fiber.StatusConflict {
			msg = "Email already registered"
		}
		log.Printf("[register] create gagal: %v", err)
		return helpers.JsonError(c, status, msg)
	}

	log.Printf("[register] ✅ guru baru %s (%s)", teacher.TeacherEmail, teacher.TeacherID)
	return helpers.JsonCreated(c, "Registration successful", toAuthUser(teacher))
}

/* ==========================
   LOGIN (email + password)
========================== */

func Login(db *gorm.DB, c *fiber.Ctx) error {
	var input authDTO.LoginRequest
	if err := c.BodyParser(&input); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid input format")
	}
	input.Email = teacherModel.NormalizeEmail(input.Email)
	if err := validate.Struct(input); err != nil {
		return helpers.JsonValidationError(c, err)
	}

	teacher, err := authRepo.FindTeacherByEmail(db.WithContext(c.UserContext()), input.Email)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("[login] find gagal: %v", err)
		}
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Email atau Password salah")
	}
	if !teacher.TeacherIsActive {
		return helpers.JsonError(c, fiber.StatusForbidden, "Akun Anda telah dinonaktifkan. Hubungi admin.")
	}
	if err := authHelper.CheckPasswordHash(teacher.TeacherPassword, input.Password); err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Email atau Password salah")
	}

	token, exp, err := SignAccessToken(*teacher, nowUTC())
	if err != nil {
		log.Printf("[login] sign gagal: %v", err)
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat token")
	}

	return helpers.JsonOK(c, "Login successful", authDTO.LoginResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresAt:   exp,
		User:        toAuthUser(*teacher),
	})
}

/* ==========================
   ME
========================== */

func Me(db *gorm.DB, c *fiber.Ctx) error {
	userID, err := helpers.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	teacher, err := authRepo.FindTeacherByID(db.WithContext(c.UserContext()), userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helpers.JsonError(c, fiber.StatusNotFound, "User not found")
		}
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data user")
	}
	return helpers.JsonOK(c, "ok", toAuthUser(*teacher))
}

/* ==========================
   LOGOUT
========================== */

// Logout: masukkan access token ke blacklist sampai exp-nya lewat
func Logout(db *gorm.DB, c *fiber.Ctx) error {
	token := helpers.GetRawAccessToken(c)
	if token == "" {
		log.Println("[INFO] Logout tanpa access token; idempotent")
		return helpers.JsonOK(c, "Logout successful", nil)
	}
	secret, err := getJWTSecret()
	if err != nil {
		return err
	}
	hash := helpersAuth.HashToken(token, secret)
	if err := authRepo.BlacklistToken(db.WithContext(c.UserContext()), hash, resolveBlacklistTTL(token)); err != nil {
		log.Printf("[WARN] Failed to blacklist token: %v", err)
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal logout")
	}
	return helpers.JsonOK(c, "Logout successful", nil)
}

// resolveBlacklistTTL: sisa umur token (min 1 menit), fallback TTL akses
func resolveBlacklistTTL(token string) time.Duration {
	const minTTL = time.Minute
	claims := jwt.MapClaims{}
	parser := jwt.Parser{SkipClaimsValidation: true}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return accessTTL()
	}
	exp, ok := claims["exp"].(float64)
	if !ok {
		return accessTTL()
	}
	left := time.Until(time.Unix(int64(exp), 0))
	if left < minTTL {
		return minTTL
	}
	return left
}
