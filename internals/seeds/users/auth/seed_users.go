package user

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/bytedance/sonic"
	"gorm.io/gorm"

	"teacher_attendance_backend/internals/constants"
	authHelper "teacher_attendance_backend/internals/features/users/auth/helper"
	authRepo "teacher_attendance_backend/internals/features/users/auth/repository"
	teacherModel "teacher_attendance_backend/internals/features/users/teachers/model"
)

type TeacherSeed struct {
	Name       string   `json:"name"`
	Email      string   `json:"email"`
	Password   string   `json:"password"`
	Role       string   `json:"role"`
	Age        int      `json:"age"`
	SchoolName string   `json:"school_name"`
	ClassName  string   `json:"class_name"`
	Position   string   `json:"position"`
	Gender     string   `json:"gender"`
	Religion   string   `json:"religion"`
	Subjects   []string `json:"subjects"`
}

// SeedTeachersFromJSON: insert akun dari file JSON; email yang sudah ada dilewati.
// Return jumlah baris yang benar-benar di-insert.
func SeedTeachersFromJSON(db *gorm.DB, filePath string) (int, error) {
	log.Println("📥 Membaca file user:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		return 0, fmt.Errorf("baca file seed: %w", err)
	}

	var inputs []TeacherSeed
	if err := sonic.Unmarshal(file, &inputs); err != nil {
		return 0, fmt.Errorf("decode seed: %w", err)
	}

	inserted := 0
	for _, data := range inputs {
		if _, err := authRepo.FindTeacherByEmail(db, data.Email); err == nil {
			log.Printf("ℹ️ User dengan email '%s' sudah ada, dilewati.", data.Email)
			continue
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return inserted, err
		}

		role := data.Role
		if !constants.IsValidRole(role) {
			role = constants.RoleTeacher
		}

		hashedPassword, err := authHelper.HashPassword(data.Password)
		if err != nil {
			log.Printf("❌ Gagal hash password untuk '%s': %v", data.Email, err)
			continue
		}

		t := teacherModel.TeacherModel{
			TeacherName:       data.Name,
			TeacherEmail:      data.Email,
			TeacherPassword:   hashedPassword,
			TeacherRole:       role,
			TeacherAge:        data.Age,
			TeacherSchoolName: data.SchoolName,
			TeacherClassName:  data.ClassName,
			TeacherPosition:   data.Position,
			TeacherGender:     teacherModel.Gender(data.Gender),
			TeacherReligion:   data.Religion,
			TeacherSubjects:   teacherModel.Subjects(data.Subjects),
			TeacherIsActive:   true,
		}
		if err := authRepo.CreateTeacher(db, &t); err != nil {
			log.Printf("❌ Gagal insert user '%s': %v", data.Email, err)
			continue
		}
		inserted++
		log.Printf("✅ Berhasil insert user '%s'", data.Email)
	}
	return inserted, nil
}
