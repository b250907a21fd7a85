package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"teacher_attendance_backend/internals/constants"
	"teacher_attendance_backend/internals/features/attendance/dto"
	"teacher_attendance_backend/internals/features/attendance/model"
	teacherModel "teacher_attendance_backend/internals/features/users/teachers/model"
	helpersAuth "teacher_attendance_backend/internals/helpers/auth"
	"teacher_attendance_backend/internals/helpers/dbtime"
)

// ReportService: read-only, semua agregasi dihitung di atas snapshot.
type ReportService struct {
	Teachers TeacherStore
	Records  RecordStore
	Clock    dbtime.Clock
	Location *time.Location
}

func NewReportService(teachers TeacherStore, records RecordStore, clock dbtime.Clock, loc *time.Location) *ReportService {
	if clock == nil {
		clock = dbtime.SystemClock{}
	}
	if loc == nil {
		loc = time.UTC
	}
	return &ReportService{Teachers: teachers, Records: records, Clock: clock, Location: loc}
}

// RequireAdmin: satu-satunya titik cek role untuk laporan admin
func RequireAdmin(caller helpersAuth.Caller) error {
	if !caller.IsAdmin() {
		return fmt.Errorf("%w: khusus admin", ErrForbidden)
	}
	return nil
}

// TeacherReport: admin atau guru yang bersangkutan.
func (s *ReportService) TeacherReport(ctx context.Context, caller helpersAuth.Caller, teacherID uuid.UUID, sel dto.PeriodSelector) (*dto.TeacherReportResponse, error) {
	if !caller.IsAdmin() && caller.UserID != teacherID {
		return nil, fmt.Errorf("%w: hanya admin atau pemilik data", ErrForbidden)
	}
	p, err := ResolvePeriod(sel)
	if err != nil {
		return nil, err
	}
	t, err := findTeacher(ctx, s.Teachers, teacherID)
	if err != nil {
		return nil, err
	}
	records, err := s.Records.ListByTeacherBetween(ctx, teacherID, p.Start, p.End)
	if err != nil {
		return nil, fmt.Errorf("ambil record: %w", err)
	}
	return &dto.TeacherReportResponse{
		Teacher: briefOf(*t),
		Year:    p.Year,
		Month:   p.Month,
		Day:     p.Day,
		Report:  BuildReportItems(records, p, s.Location),
	}, nil
}

func (s *ReportService) BestPerformance(ctx context.Context, caller helpersAuth.Caller, sel dto.PeriodSelector) (*dto.BestPerformanceResponse, error) {
	if err := RequireAdmin(caller); err != nil {
		return nil, err
	}
	p, err := ResolvePeriod(sel)
	if err != nil {
		return nil, err
	}
	teachers, byTeacher, err := s.snapshot(ctx, nil, p)
	if err != nil {
		return nil, err
	}
	return &dto.BestPerformanceResponse{
		Year:        p.Year,
		Month:       p.Month,
		Day:         p.Day,
		Performance: RankByPresentDays(teachers, byTeacher, p),
	}, nil
}

// SchoolReport: nama sekolah dicocokkan persis (setelah normalisasi NFC + trim)
func (s *ReportService) SchoolReport(ctx context.Context, caller helpersAuth.Caller, schoolName string, sel dto.PeriodSelector) (*dto.SchoolReportResponse, error) {
	if err := RequireAdmin(caller); err != nil {
		return nil, err
	}
	school := teacherModel.NormalizeSchoolName(schoolName)
	if school == "" {
		return nil, fmt.Errorf("%w: schoolName", ErrMissingParameter)
	}
	p, err := ResolvePeriod(sel)
	if err != nil {
		return nil, err
	}
	teachers, byTeacher, err := s.snapshot(ctx, &school, p)
	if err != nil {
		return nil, err
	}
	return &dto.SchoolReportResponse{
		SchoolName: school,
		Year:       p.Year,
		Month:      p.Month,
		Day:        p.Day,
		Report:     SchoolRollup(teachers, byTeacher, p),
	}, nil
}

// MyMonthlyReport: selalu granularitas bulan. Keduanya kosong → bulan berjalan;
// hanya salah satu → MissingParameter.
func (s *ReportService) MyMonthlyReport(ctx context.Context, caller helpersAuth.Caller, year, month *int) (*dto.MonthlyReportResponse, error) {
	switch {
	case year == nil && month == nil:
		now := s.Clock.Now().In(s.Location)
		y, m := now.Year(), int(now.Month())
		year, month = &y, &m
	case year == nil:
		return nil, fmt.Errorf("%w: year", ErrMissingParameter)
	case month == nil:
		return nil, fmt.Errorf("%w: month", ErrMissingParameter)
	}
	p, err := ResolvePeriod(dto.PeriodSelector{Year: year, Month: month})
	if err != nil {
		return nil, err
	}
	t, err := findTeacher(ctx, s.Teachers, caller.UserID)
	if err != nil {
		return nil, err
	}
	records, err := s.Records.ListByTeacherBetween(ctx, t.TeacherID, p.Start, p.End)
	if err != nil {
		return nil, fmt.Errorf("ambil record: %w", err)
	}
	return &dto.MonthlyReportResponse{
		TeacherName: t.TeacherName,
		Year:        p.Year,
		Month:       *p.Month,
		Report:      BuildReportItems(records, p, s.Location),
	}, nil
}

// DailyOverview: semua guru pada satu tanggal (default hari ini di zona sekolah)
func (s *ReportService) DailyOverview(ctx context.Context, caller helpersAuth.Caller, date string) (*dto.DailyOverviewResponse, error) {
	if err := RequireAdmin(caller); err != nil {
		return nil, err
	}
	day := dbtime.CalendarDate(s.Clock.Now(), s.Location)
	if d := strings.TrimSpace(date); d != "" {
		parsed, err := dbtime.ParseDate(d)
		if err != nil {
			return nil, fmt.Errorf("%w: date harus YYYY-MM-DD", ErrInvalidParameter)
		}
		day = parsed
	}
	y, m, dd := day.Year(), int(day.Month()), day.Day()
	p, err := ResolvePeriod(dto.PeriodSelector{Year: &y, Month: &m, Day: &dd})
	if err != nil {
		return nil, err
	}

	teachers, byTeacher, err := s.snapshot(ctx, nil, p)
	if err != nil {
		return nil, err
	}

	out := &dto.DailyOverviewResponse{
		Date:     dbtime.FormatDate(day),
		Teachers: make([]dto.DailyOverviewItem, 0, len(teachers)),
	}
	for _, t := range teachers {
		item := dto.DailyOverviewItem{
			TeacherID:  t.TeacherID,
			Name:       t.TeacherName,
			Email:      t.TeacherEmail,
			SchoolName: t.TeacherSchoolName,
			Status:     model.StatusAbsent,
		}
		if recs := RecordsInPeriod(byTeacher[t.TeacherID], p); len(recs) > 0 {
			r := recs[0]
			item.Status = RecordStatus(r)
			item.CheckIn = dbtime.ToSchoolTimePtr(r.AttendanceRecordCheckIn, s.Location)
			item.CheckOut = dbtime.ToSchoolTimePtr(r.AttendanceRecordCheckOut, s.Location)
		}
		switch item.Status {
		case model.StatusPresent:
			out.Summary.Present++
		case model.StatusIncomplete:
			out.Summary.Incomplete++
		default:
			out.Summary.Absent++
		}
		out.Teachers = append(out.Teachers, item)
	}
	return out, nil
}

// snapshot: guru role teacher (opsional per sekolah) + record mereka di periode
func (s *ReportService) snapshot(ctx context.Context, school *string, p Period) ([]teacherModel.TeacherModel, map[uuid.UUID][]model.AttendanceRecordModel, error) {
	teachers, err := s.Teachers.ListByRole(ctx, constants.RoleTeacher, school)
	if err != nil {
		return nil, nil, fmt.Errorf("ambil guru: %w", err)
	}
	if len(teachers) == 0 {
		return teachers, map[uuid.UUID][]model.AttendanceRecordModel{}, nil
	}
	ids := make([]uuid.UUID, 0, len(teachers))
	for _, t := range teachers {
		ids = append(ids, t.TeacherID)
	}
	records, err := s.Records.ListByTeachersBetween(ctx, ids, p.Start, p.End)
	if err != nil {
		return nil, nil, fmt.Errorf("ambil record: %w", err)
	}
	return teachers, GroupByTeacher(records), nil
}

func briefOf(t teacherModel.TeacherModel) dto.TeacherBrief {
	return dto.TeacherBrief{
		TeacherID:  t.TeacherID,
		Name:       t.TeacherName,
		Email:      t.TeacherEmail,
		SchoolName: t.TeacherSchoolName,
	}
}
