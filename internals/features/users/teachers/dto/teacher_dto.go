package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"teacher_attendance_backend/internals/features/users/teachers/model"
)

/* =========================
   Response
========================= */

type TeacherResponse struct {
	TeacherID      uuid.UUID    `json:"teacher_id"`
	Name           string       `json:"name"`
	Email          string       `json:"email"`
	Role           string       `json:"role"`
	Age            int          `json:"age"`
	SchoolName     string       `json:"school_name"`
	ClassName      string       `json:"class_name"`
	Position       string       `json:"position"`
	Gender         model.Gender `json:"gender"`
	Religion       string       `json:"religion"`
	Subjects       []string     `json:"subjects"`
	ProfilePicture *string      `json:"profile_picture,omitempty"`
	HasFingerprint bool         `json:"has_fingerprint"`
	IsActive       bool         `json:"is_active"`
	CreatedAt      time.Time    `json:"created_at"`
	UpdatedAt      time.Time    `json:"updated_at"`
}

func FromModel(m model.TeacherModel) TeacherResponse {
	subjects := []string(m.TeacherSubjects)
	if subjects == nil {
		subjects = []string{}
	}
	return TeacherResponse{
		TeacherID:      m.TeacherID,
		Name:           m.TeacherName,
		Email:          m.TeacherEmail,
		Role:           m.TeacherRole,
		Age:            m.TeacherAge,
		SchoolName:     m.TeacherSchoolName,
		ClassName:      m.TeacherClassName,
		Position:       m.TeacherPosition,
		Gender:         m.TeacherGender,
		Religion:       m.TeacherReligion,
		Subjects:       subjects,
		ProfilePicture: m.TeacherProfilePicture,
		HasFingerprint: m.TeacherFingerprint != nil && *m.TeacherFingerprint != "",
		IsActive:       m.TeacherIsActive,
		CreatedAt:      m.TeacherCreatedAt,
		UpdatedAt:      m.TeacherUpdatedAt,
	}
}

func FromModels(rows []model.TeacherModel) []TeacherResponse {
	out := make([]TeacherResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, FromModel(r))
	}
	return out
}

/* =========================
   Request
========================= */

// PATCH /u/teachers/me : semua field opsional (nil = tidak diubah)
type UpdateTeacherProfileRequest struct {
	Name           *string   `json:"name" validate:"omitempty,min=3,max=100"`
	Age            *int      `json:"age" validate:"omitempty,min=18,max=100"`
	SchoolName     *string   `json:"school_name" validate:"omitempty,min=2,max=150"`
	ClassName      *string   `json:"class_name" validate:"omitempty,max=100"`
	Position       *string   `json:"position" validate:"omitempty,max=100"`
	Gender         *string   `json:"gender" validate:"omitempty,oneof=male female other"`
	Religion       *string   `json:"religion" validate:"omitempty,max=50"`
	Subjects       *[]string `json:"subjects" validate:"omitempty,max=20,dive,min=1,max=100"`
	ProfilePicture *string   `json:"profile_picture" validate:"omitempty,url,max=500"`
	Fingerprint    *string   `json:"fingerprint" validate:"omitempty,max=512"`
}

// ToChanges: map kolom → nilai untuk Updates()
func (r UpdateTeacherProfileRequest) ToChanges() map[string]any {
	changes := map[string]any{}
	if r.Name != nil {
		changes["teacher_name"] = strings.TrimSpace(*r.Name)
	}
	if r.Age != nil {
		changes["teacher_age"] = *r.Age
	}
	if r.SchoolName != nil {
		changes["teacher_school_name"] = model.NormalizeSchoolName(*r.SchoolName)
	}
	if r.ClassName != nil {
		changes["teacher_class_name"] = strings.TrimSpace(*r.ClassName)
	}
	if r.Position != nil {
		changes["teacher_position"] = strings.TrimSpace(*r.Position)
	}
	if r.Gender != nil {
		changes["teacher_gender"] = *r.Gender
	}
	if r.Religion != nil {
		changes["teacher_religion"] = strings.TrimSpace(*r.Religion)
	}
	if r.Subjects != nil {
		changes["teacher_subjects"] = model.Subjects(*r.Subjects)
	}
	if r.ProfilePicture != nil {
		changes["teacher_profile_picture"] = strings.TrimSpace(*r.ProfilePicture)
	}
	if r.Fingerprint != nil {
		changes["teacher_fingerprint"] = *r.Fingerprint
	}
	return changes
}

type SetRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=teacher admin"`
}

type ListTeachersQuery struct {
	SchoolName string `query:"school_name" validate:"omitempty,max=150"`
	Role       string `query:"role" validate:"omitempty,oneof=teacher admin"`
	Q          string `query:"q" validate:"omitempty,max=100"`
}
