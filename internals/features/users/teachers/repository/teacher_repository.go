package repository

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"teacher_attendance_backend/internals/features/users/teachers/model"
)

type TeacherRepository struct {
	DB *gorm.DB
}

func NewTeacherRepository(db *gorm.DB) *TeacherRepository {
	return &TeacherRepository{DB: db}
}

// FindByID: gorm.ErrRecordNotFound kalau tidak ada
func (r *TeacherRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.TeacherModel, error) {
	var t model.TeacherModel
	if err := r.DB.WithContext(ctx).Where("teacher_id = ?", id).First(&t).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TeacherRepository) FindByEmail(ctx context.Context, email string) (*model.TeacherModel, error) {
	var t model.TeacherModel
	if err := r.DB.WithContext(ctx).
		Where("teacher_email = ?", model.NormalizeEmail(email)).
		First(&t).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

// ListByRole: urut nama; schoolName nil → semua sekolah
func (r *TeacherRepository) ListByRole(ctx context.Context, role string, schoolName *string) ([]model.TeacherModel, error) {
	q := r.DB.WithContext(ctx).Where("teacher_role = ?", role)
	if schoolName != nil {
		q = q.Where("teacher_school_name = ?", model.NormalizeSchoolName(*schoolName))
	}
	var rows []model.TeacherModel
	err := q.Order("teacher_name ASC, teacher_email ASC").Find(&rows).Error
	return rows, err
}

type ListFilter struct {
	SchoolName string
	Role       string
	Search     string
	Offset     int
	Limit      int
}

// List: untuk halaman admin (paging + filter opsional)
func (r *TeacherRepository) List(ctx context.Context, f ListFilter) ([]model.TeacherModel, int64, error) {
	q := r.DB.WithContext(ctx).Model(&model.TeacherModel{})
	if s := model.NormalizeSchoolName(f.SchoolName); s != "" {
		q = q.Where("teacher_school_name = ?", s)
	}
	if role := strings.TrimSpace(f.Role); role != "" {
		q = q.Where("teacher_role = ?", role)
	}
	if s := strings.ToLower(strings.TrimSpace(f.Search)); s != "" {
		like := "%" + s + "%"
		q = q.Where("LOWER(teacher_name) LIKE ? OR LOWER(teacher_email) LIKE ?", like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []model.TeacherModel
	if err := q.Order("teacher_name ASC, teacher_email ASC").
		Offset(f.Offset).Limit(f.Limit).
		Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

func (r *TeacherRepository) Create(ctx context.Context, t *model.TeacherModel) error {
	return r.DB.WithContext(ctx).Create(t).Error
}

// Update: hanya kolom di map yang disentuh
func (r *TeacherRepository) Update(ctx context.Context, id uuid.UUID, changes map[string]any) (int64, error) {
	res := r.DB.WithContext(ctx).Model(&model.TeacherModel{}).
		Where("teacher_id = ?", id).
		Updates(changes)
	return res.RowsAffected, res.Error
}

func (r *TeacherRepository) UpdatePassword(ctx context.Context, id uuid.UUID, hashed string) error {
	return r.DB.WithContext(ctx).Model(&model.TeacherModel{}).
		Where("teacher_id = ?", id).
		Update("teacher_password", hashed).Error
}

// IsActive: false juga kalau user tidak ditemukan
func (r *TeacherRepository) IsActive(ctx context.Context, id uuid.UUID) (bool, error) {
	var active bool
	err := r.DB.WithContext(ctx).Model(&model.TeacherModel{}).
		Select("teacher_is_active").
		Where("teacher_id = ?", id).
		Limit(1).
		Scan(&active).Error
	return active, err
}
