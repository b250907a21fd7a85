// internals/features/users/auth/repository/auth_repository.go
package repository

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	authModel "teacher_attendance_backend/internals/features/users/auth/model"
	teacherModel "teacher_attendance_backend/internals/features/users/teachers/model"
)

/* ====================== TEACHER (akun) ====================== */

func FindTeacherByEmail(db *gorm.DB, email string) (*teacherModel.TeacherModel, error) {
	var t teacherModel.TeacherModel
	if err := db.Where("teacher_email = ?", teacherModel.NormalizeEmail(email)).First(&t).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func FindTeacherByID(db *gorm.DB, id uuid.UUID) (*teacherModel.TeacherModel, error) {
	var t teacherModel.TeacherModel
	if err := db.Where("teacher_id = ?", id).First(&t).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func CreateTeacher(db *gorm.DB, t *teacherModel.TeacherModel) error {
	return db.Create(t).Error
}

func UpdateTeacherPassword(db *gorm.DB, id uuid.UUID, hashed string) error {
	return db.Model(&teacherModel.TeacherModel{}).
		Where("teacher_id = ?", id).
		Update("teacher_password", hashed).Error
}

// IsEmailTaken: cek sebelum insert supaya pesan 409 lebih jelas
func IsEmailTaken(db *gorm.DB, email string) (bool, error) {
	var n int64
	err := db.Model(&teacherModel.TeacherModel{}).
		Where("teacher_email = ?", teacherModel.NormalizeEmail(email)).
		Count(&n).Error
	return n > 0, err
}

/* ====================== BLACKLIST TOKEN ====================== */

// BlacklistToken idempotent: logout dua kali tidak error.
// tokenHash = helpersAuth.HashToken(raw, secret)
func BlacklistToken(db *gorm.DB, tokenHash string, ttl time.Duration) error {
	return db.Clauses(clause.OnConflict{DoNothing: true}).Create(&authModel.TokenBlacklist{
		Token:     tokenHash,
		ExpiredAt: time.Now().UTC().Add(ttl),
	}).Error
}

func IsTokenBlacklisted(db *gorm.DB, tokenHash string) (bool, error) {
	var row authModel.TokenBlacklist
	err := db.Select("id").Where("token = ?", tokenHash).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// CleanupExpiredBlacklist: hapus permanen token yang exp-nya sudah lewat
func CleanupExpiredBlacklist(db *gorm.DB, now time.Time) (int64, error) {
	res := db.Unscoped().Where("expired_at <= ?", now.UTC()).Delete(&authModel.TokenBlacklist{})
	return res.RowsAffected, res.Error
}
