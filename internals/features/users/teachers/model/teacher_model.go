package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/unicode/norm"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"teacher_attendance_backend/internals/constants"
)

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

// TeacherModel: akun guru/admin beserta afiliasi sekolah.
// Record absensi ada di tabel attendance_records (FK teacher_id).
type TeacherModel struct {
	TeacherID       uuid.UUID `gorm:"type:uuid;primaryKey;column:teacher_id" json:"teacher_id"`
	TeacherName     string    `gorm:"size:100;not null;column:teacher_name" json:"teacher_name"`
	TeacherEmail    string    `gorm:"size:255;not null;uniqueIndex:uq_teachers_email;column:teacher_email" json:"teacher_email"`
	TeacherPassword string    `gorm:"not null;column:teacher_password" json:"-"`
	TeacherRole     string    `gorm:"type:varchar(20);not null;default:'teacher';index:idx_teachers_role;column:teacher_role" json:"teacher_role"`

	TeacherAge        int                         `gorm:"not null;column:teacher_age" json:"teacher_age"`
	TeacherSchoolName string                      `gorm:"size:150;not null;index:idx_teachers_school_name;column:teacher_school_name" json:"teacher_school_name"`
	TeacherClassName  string                      `gorm:"size:100;not null;column:teacher_class_name" json:"teacher_class_name"`
	TeacherPosition   string                      `gorm:"size:100;not null;column:teacher_position" json:"teacher_position"`
	TeacherGender     Gender                      `gorm:"type:varchar(10);not null;column:teacher_gender" json:"teacher_gender"`
	TeacherReligion   string                      `gorm:"size:50;not null;column:teacher_religion" json:"teacher_religion"`
	TeacherSubjects   datatypes.JSONSlice[string] `gorm:"column:teacher_subjects" json:"teacher_subjects"`

	TeacherProfilePicture *string `gorm:"column:teacher_profile_picture" json:"teacher_profile_picture,omitempty"`
	// sidik jari simulasi (string), tidak pernah dikirim ke client
	TeacherFingerprint *string `gorm:"column:teacher_fingerprint" json:"-"`
	TeacherIsActive    bool    `gorm:"not null;default:true;column:teacher_is_active" json:"teacher_is_active"`

	TeacherCreatedAt time.Time `gorm:"column:teacher_created_at;autoCreateTime" json:"teacher_created_at"`
	TeacherUpdatedAt time.Time `gorm:"column:teacher_updated_at;autoUpdateTime" json:"teacher_updated_at"`
}

func (TeacherModel) TableName() string { return "teachers" }

func (t *TeacherModel) BeforeCreate(tx *gorm.DB) error {
	if t.TeacherID == uuid.Nil {
		t.TeacherID = uuid.New()
	}
	t.TeacherEmail = NormalizeEmail(t.TeacherEmail)
	t.TeacherSchoolName = NormalizeSchoolName(t.TeacherSchoolName)
	if t.TeacherRole == "" {
		t.TeacherRole = constants.RoleTeacher
	}
	return nil
}

// NormalizeSchoolName: trim + NFC supaya pencocokan nama sekolah
// (exact match) tidak gagal karena beda bentuk unicode.
func NormalizeSchoolName(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}

// Subjects: trim + buang string kosong
func Subjects(in []string) datatypes.JSONSlice[string] {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return datatypes.JSONSlice[string](out)
}

func NormalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
