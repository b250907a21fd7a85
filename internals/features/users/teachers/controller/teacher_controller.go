package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"teacher_attendance_backend/internals/constants"
	"teacher_attendance_backend/internals/features/users/teachers/dto"
	"teacher_attendance_backend/internals/features/users/teachers/repository"
	helper "teacher_attendance_backend/internals/helpers"
	helpersAuth "teacher_attendance_backend/internals/helpers/auth"
)

type TeacherController struct {
	Repo     *repository.TeacherRepository
	Validate *validator.Validate
}

func New(db *gorm.DB, v *validator.Validate) *TeacherController {
	return &TeacherController{Repo: repository.NewTeacherRepository(db), Validate: v}
}

/* =========================
   USER: profil sendiri
========================= */

// GET /api/u/teachers/me
func (ctl *TeacherController) GetMe(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	t, err := ctl.Repo.FindByID(c.UserContext(), userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Guru tidak ditemukan")
		}
		log.Printf("[Teacher.GetMe] find error: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil profil")
	}
	return helper.JsonOK(c, "Profil guru", dto.FromModel(*t))
}

// PATCH /api/u/teachers/me
func (ctl *TeacherController) UpdateMe(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.UpdateTeacherProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	changes := req.ToChanges()
	if len(changes) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tidak ada field yang diubah")
	}

	affected, err := ctl.Repo.Update(c.UserContext(), userID, changes)
	if err != nil {
		status, msg := helper.MapPGError(err)
		log.Printf("[Teacher.UpdateMe] update error: %v", err)
		return helper.JsonError(c, status, msg)
	}
	if affected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Guru tidak ditemukan")
	}

	t, err := ctl.Repo.FindByID(c.UserContext(), userID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil profil")
	}
	return helper.JsonUpdated(c, "Profil diperbarui", dto.FromModel(*t))
}

/* =========================
   ADMIN
========================= */

// GET /api/a/teachers?school_name=&role=&q=&page=&per_page=
func (ctl *TeacherController) List(c *fiber.Ctx) error {
	var q dto.ListTeachersQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Query tidak valid")
	}
	if err := ctl.Validate.Struct(q); err != nil {
		return helper.JsonValidationError(c, err)
	}

	pg := helper.ResolvePaging(c, 20, 100)
	rows, total, err := ctl.Repo.List(c.UserContext(), repository.ListFilter{
		SchoolName: q.SchoolName,
		Role:       q.Role,
		Search:     q.Q,
		Offset:     pg.Offset,
		Limit:      pg.Limit,
	})
	if err != nil {
		log.Printf("[Teacher.List] error: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data guru")
	}
	return helper.JsonList(c, "Daftar guru", dto.FromModels(rows),
		helper.BuildPaginationFromPage(total, pg.Page, pg.PerPage, len(rows)))
}

// PATCH /api/a/teachers/:id/role
func (ctl *TeacherController) SetRole(c *fiber.Ctx) error {
	caller, err := helpersAuth.GetCaller(c)
	if err != nil {
		return err
	}
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var req dto.SetRoleRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	req.Role = strings.ToLower(strings.TrimSpace(req.Role))
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}
	if id == caller.UserID && req.Role != constants.RoleAdmin {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tidak bisa menurunkan role diri sendiri")
	}

	affected, err := ctl.Repo.Update(c.UserContext(), id, map[string]any{"teacher_role": req.Role})
	if err != nil {
		log.Printf("[Teacher.SetRole] error: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengubah role")
	}
	if affected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Guru tidak ditemukan")
	}

	t, err := ctl.Repo.FindByID(c.UserContext(), id)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data guru")
	}
	log.Printf("[Teacher.SetRole] %s → %s oleh %s", id, req.Role, caller.UserID)
	return helper.JsonUpdated(c, "Role diperbarui", dto.FromModel(*t))
}
