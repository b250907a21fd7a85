package controller

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"teacher_attendance_backend/internals/configs"
	"teacher_attendance_backend/internals/features/attendance/dto"
	attendanceRepo "teacher_attendance_backend/internals/features/attendance/repository"
	"teacher_attendance_backend/internals/features/attendance/service"
	teacherRepo "teacher_attendance_backend/internals/features/users/teachers/repository"
	helper "teacher_attendance_backend/internals/helpers"
	helpersAuth "teacher_attendance_backend/internals/helpers/auth"
	"teacher_attendance_backend/internals/helpers/dbtime"
)

/* =========================
   Controller & Constructor
========================= */

type AttendanceController struct {
	Attendance *service.AttendanceService
	Reports    *service.ReportService
	Validate   *validator.Validate
}

// New: jam sistem + window dari env
func New(db *gorm.DB, v *validator.Validate) *AttendanceController {
	return NewWithClock(db, v, dbtime.SystemClock{}, service.NewWindowPolicy(configs.AttendanceConfig()))
}

func NewWithClock(db *gorm.DB, v *validator.Validate, clock dbtime.Clock, policy service.WindowPolicy) *AttendanceController {
	teachers := teacherRepo.NewTeacherRepository(db)
	records := attendanceRepo.NewAttendanceRepository(db)
	return &AttendanceController{
		Attendance: service.NewAttendanceService(teachers, records, clock, policy),
		Reports:    service.NewReportService(teachers, records, clock, policy.Location),
		Validate:   v,
	}
}

/* =========================
   Error mapping
========================= */

func statusOf(err error) int {
	switch {
	case errors.Is(err, service.ErrOutOfWindow):
		return fiber.StatusUnprocessableEntity
	case errors.Is(err, service.ErrAlreadyCheckedIn),
		errors.Is(err, service.ErrNotCheckedIn),
		errors.Is(err, service.ErrAlreadyCheckedOut):
		return fiber.StatusConflict
	case errors.Is(err, service.ErrMissingParameter),
		errors.Is(err, service.ErrInvalidParameter):
		return fiber.StatusBadRequest
	case errors.Is(err, service.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, service.ErrForbidden):
		return fiber.StatusForbidden
	default:
		return fiber.StatusInternalServerError
	}
}

// respondError: error domain keluar apa adanya, sisanya jadi 500 generik
func respondError(c *fiber.Ctx, where string, err error) error {
	status := statusOf(err)
	if status >= fiber.StatusInternalServerError {
		log.Printf("[%s] internal error: %v", where, err)
		return helper.JsonErrorCode(c, status, service.CodeInternal, "Terjadi kesalahan pada server")
	}
	return helper.JsonErrorCode(c, status, service.ErrorCode(err), err.Error())
}

/* =========================
   Check-in / Check-out
========================= */

// POST /api/u/attendance/check-in
func (ctl *AttendanceController) CheckIn(c *fiber.Ctx) error {
	return ctl.handleCheck(c, dto.CheckTypeIn)
}

// POST /api/u/attendance/check-out
func (ctl *AttendanceController) CheckOut(c *fiber.Ctx) error {
	return ctl.handleCheck(c, dto.CheckTypeOut)
}

// POST /api/u/attendance/check  body: {"type":"checkIn"|"checkOut"}
func (ctl *AttendanceController) Check(c *fiber.Ctx) error {
	var req dto.CheckTypedRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonErrorCode(c, fiber.StatusBadRequest, service.CodeInvalidParameter, "Body tidak valid")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonErrorCode(c, fiber.StatusBadRequest, service.CodeInvalidParameter, "type harus checkIn atau checkOut")
	}
	return ctl.applyCheck(c, req.Type, req.Fingerprint)
}

func (ctl *AttendanceController) handleCheck(c *fiber.Ctx, typ string) error {
	var req dto.CheckRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return helper.JsonErrorCode(c, fiber.StatusBadRequest, service.CodeInvalidParameter, "Body tidak valid")
		}
		if err := ctl.Validate.Struct(req); err != nil {
			return helper.JsonValidationError(c, err)
		}
	}
	return ctl.applyCheck(c, typ, req.Fingerprint)
}

func (ctl *AttendanceController) applyCheck(c *fiber.Ctx, typ string, fingerprint *string) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var res *service.CheckResult
	switch typ {
	case dto.CheckTypeIn:
		res, err = ctl.Attendance.CheckIn(c.UserContext(), userID, fingerprint)
	default:
		res, err = ctl.Attendance.CheckOut(c.UserContext(), userID, fingerprint)
	}
	if err != nil {
		return respondError(c, "Attendance."+typ, err)
	}

	msg := "Check-in berhasil"
	if typ == dto.CheckTypeOut {
		msg = "Check-out berhasil"
	}
	return helper.JsonOK(c, msg, dto.CheckResponse{
		Status: "ok",
		Type:   typ,
		Record: dto.FromRecordModel(res.Record, res.Status, ctl.Attendance.Policy.Location),
	})
}

// GET /api/u/attendance/today
func (ctl *AttendanceController) Today(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	out, err := ctl.Attendance.Today(c.UserContext(), userID)
	if err != nil {
		return respondError(c, "Attendance.Today", err)
	}
	return helper.JsonOK(c, "Status absensi hari ini", out)
}

/* =========================
   Reports
========================= */

func (ctl *AttendanceController) parseReportQuery(c *fiber.Ctx) (dto.ReportQuery, dto.PeriodSelector, error) {
	var q dto.ReportQuery
	if err := c.QueryParser(&q); err != nil {
		return q, dto.PeriodSelector{}, fmt.Errorf("%w: %v", service.ErrInvalidParameter, err)
	}
	sel, err := q.Selector()
	if err != nil {
		return q, sel, fmt.Errorf("%w: %v", service.ErrInvalidParameter, err)
	}
	return q, sel, nil
}

// GET /api/u/reports/monthly?year=&month=
func (ctl *AttendanceController) MyMonthlyReport(c *fiber.Ctx) error {
	caller, err := helpersAuth.GetCaller(c)
	if err != nil {
		return err
	}
	_, sel, err := ctl.parseReportQuery(c)
	if err != nil {
		return respondError(c, "Report.Monthly", err)
	}
	out, err := ctl.Reports.MyMonthlyReport(c.UserContext(), caller, sel.Year, sel.Month)
	if err != nil {
		return respondError(c, "Report.Monthly", err)
	}
	return helper.JsonOK(c, "Laporan bulanan", out)
}

// GET /api/u/reports/teachers/:id?year=&month=&day=
func (ctl *AttendanceController) TeacherReport(c *fiber.Ctx) error {
	caller, err := helpersAuth.GetCaller(c)
	if err != nil {
		return err
	}
	teacherID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	_, sel, err := ctl.parseReportQuery(c)
	if err != nil {
		return respondError(c, "Report.Teacher", err)
	}
	out, err := ctl.Reports.TeacherReport(c.UserContext(), caller, teacherID, sel)
	if err != nil {
		return respondError(c, "Report.Teacher", err)
	}
	return helper.JsonOK(c, "Laporan guru", out)
}

// GET /api/a/reports/best-performance?year=&month=&day=
func (ctl *AttendanceController) BestPerformance(c *fiber.Ctx) error {
	caller, err := helpersAuth.GetCaller(c)
	if err != nil {
		return err
	}
	if err := service.RequireAdmin(caller); err != nil {
		return respondError(c, "Report.BestPerformance", err)
	}
	_, sel, err := ctl.parseReportQuery(c)
	if err != nil {
		return respondError(c, "Report.BestPerformance", err)
	}
	out, err := ctl.Reports.BestPerformance(c.UserContext(), caller, sel)
	if err != nil {
		return respondError(c, "Report.BestPerformance", err)
	}
	return helper.JsonOK(c, "Peringkat kehadiran", out)
}

// GET /api/a/reports/schools?school_name=&year=&month=&day=
func (ctl *AttendanceController) SchoolReport(c *fiber.Ctx) error {
	caller, err := helpersAuth.GetCaller(c)
	if err != nil {
		return err
	}
	if err := service.RequireAdmin(caller); err != nil {
		return respondError(c, "Report.School", err)
	}
	q, sel, err := ctl.parseReportQuery(c)
	if err != nil {
		return respondError(c, "Report.School", err)
	}
	out, err := ctl.Reports.SchoolReport(c.UserContext(), caller, q.School(), sel)
	if err != nil {
		return respondError(c, "Report.School", err)
	}
	return helper.JsonOK(c, "Laporan sekolah", out)
}

// GET /api/a/reports/daily?date=YYYY-MM-DD
func (ctl *AttendanceController) DailyOverview(c *fiber.Ctx) error {
	caller, err := helpersAuth.GetCaller(c)
	if err != nil {
		return err
	}
	var q dto.DailyOverviewQuery
	if err := c.QueryParser(&q); err != nil {
		return respondError(c, "Report.Daily", fmt.Errorf("%w: %v", service.ErrInvalidParameter, err))
	}
	q.Date = strings.TrimSpace(q.Date)
	out, err := ctl.Reports.DailyOverview(c.UserContext(), caller, q.Date)
	if err != nil {
		return respondError(c, "Report.Daily", err)
	}
	return helper.JsonOK(c, "Rekap harian", out)
}
