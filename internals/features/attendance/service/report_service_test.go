package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"teacher_attendance_backend/internals/constants"
	"teacher_attendance_backend/internals/features/attendance/dto"
	"teacher_attendance_backend/internals/features/attendance/model"
	helpersAuth "teacher_attendance_backend/internals/helpers/auth"
	"teacher_attendance_backend/internals/helpers/dbtime"
)

type reportFixture struct {
	svc      *ReportService
	teachers *memTeachers
	records  *memRecords
	admin    helpersAuth.Caller
}

func newReportFixture() *reportFixture {
	teachers := newTeacherStore()
	records := newMemRecords()
	adm := teachers.add("Admin", "admin@sekolah.id", "SD 1", constants.RoleAdmin)
	loc := DefaultWindowPolicy().Location
	return &reportFixture{
		svc:      NewReportService(teachers, records, dbtime.FixedClock{T: at(2024, 3, 15, 10, 0)}, loc),
		teachers: teachers,
		records:  records,
		admin:    helpersAuth.Caller{UserID: adm.TeacherID, Role: constants.RoleAdmin},
	}
}

func (f *reportFixture) present(id uuid.UUID, y, m, d int) {
	f.records.put(id, day(y, timeMonth(m), d), ptrTime(at(y, timeMonth(m), d, 8, 0)), ptrTime(at(y, timeMonth(m), d, 14, 0)))
}

func (f *reportFixture) incomplete(id uuid.UUID, y, m, d int) {
	f.records.put(id, day(y, timeMonth(m), d), ptrTime(at(y, timeMonth(m), d, 8, 0)), nil)
}

func teacherCaller(id uuid.UUID) helpersAuth.Caller {
	return helpersAuth.Caller{UserID: id, Role: constants.RoleTeacher}
}

func TestTeacherReport_SelfAndAdmin(t *testing.T) {
	f := newReportFixture()
	ctx := context.Background()
	guru := f.teachers.add("Budi", "budi@sekolah.id", "SD 1", roleTeacher)
	f.present(guru.TeacherID, 2024, 3, 1)
	f.incomplete(guru.TeacherID, 2024, 3, 4)
	f.present(guru.TeacherID, 2024, 4, 1)

	sel := dto.PeriodSelector{Year: ptrInt(2024), Month: ptrInt(3)}

	res, err := f.svc.TeacherReport(ctx, teacherCaller(guru.TeacherID), guru.TeacherID, sel)
	require.NoError(t, err)
	assert.Equal(t, "Budi", res.Teacher.Name)
	require.Len(t, res.Report, 2)
	assert.Equal(t, model.StatusPresent, res.Report[0].Status)
	assert.Equal(t, model.StatusIncomplete, res.Report[1].Status)

	res, err = f.svc.TeacherReport(ctx, f.admin, guru.TeacherID, sel)
	require.NoError(t, err)
	assert.Len(t, res.Report, 2)
}

func TestTeacherReport_ErrorOrdering(t *testing.T) {
	f := newReportFixture()
	ctx := context.Background()
	guru := f.teachers.add("Budi", "budi@sekolah.id", "SD 1", roleTeacher)
	lain := f.teachers.add("Cici", "cici@sekolah.id", "SD 1", roleTeacher)

	// guru lain + parameter kosong → Forbidden dulu
	_, err := f.svc.TeacherReport(ctx, teacherCaller(lain.TeacherID), guru.TeacherID, dto.PeriodSelector{})
	require.ErrorIs(t, err, ErrForbidden)

	// admin + parameter kosong + id tak dikenal → MissingParameter sebelum NotFound
	_, err = f.svc.TeacherReport(ctx, f.admin, uuid.New(), dto.PeriodSelector{})
	require.ErrorIs(t, err, ErrMissingParameter)

	_, err = f.svc.TeacherReport(ctx, f.admin, uuid.New(), dto.PeriodSelector{Year: ptrInt(2024)})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestBestPerformance_RanksTeachersOnly(t *testing.T) {
	f := newReportFixture()
	ctx := context.Background()
	a := f.teachers.add("Ani", "ani@sekolah.id", "SD 1", roleTeacher)
	b := f.teachers.add("Budi", "budi@sekolah.id", "SD 2", roleTeacher)
	c := f.teachers.add("Cici", "cici@sekolah.id", "SD 1", roleTeacher)
	for d := 1; d <= 3; d++ {
		f.present(a.TeacherID, 2024, 3, d)
	}
	f.present(b.TeacherID, 2024, 3, 1)
	for d := 1; d <= 5; d++ {
		f.present(c.TeacherID, 2024, 3, d)
	}
	// admin punya record tapi tidak ikut ranking
	f.present(f.admin.UserID, 2024, 3, 1)

	res, err := f.svc.BestPerformance(ctx, f.admin, dto.PeriodSelector{Year: ptrInt(2024), Month: ptrInt(3)})
	require.NoError(t, err)
	require.Len(t, res.Performance, 3)
	assert.Equal(t, "Cici", res.Performance[0].Name)
	assert.Equal(t, 5, res.Performance[0].PresentDays)
	assert.Equal(t, "Ani", res.Performance[1].Name)
	assert.Equal(t, "Budi", res.Performance[2].Name)

	// granularitas hari
	res, err = f.svc.BestPerformance(ctx, f.admin, dto.PeriodSelector{Year: ptrInt(2024), Month: ptrInt(3), Day: ptrInt(4)})
	require.NoError(t, err)
	assert.Equal(t, "Cici", res.Performance[0].Name)
	assert.Equal(t, 1, res.Performance[0].PresentDays)
	assert.Zero(t, res.Performance[1].PresentDays)
}

func TestBestPerformance_Guards(t *testing.T) {
	f := newReportFixture()
	guru := f.teachers.add("Budi", "budi@sekolah.id", "SD 1", roleTeacher)

	_, err := f.svc.BestPerformance(context.Background(), teacherCaller(guru.TeacherID), dto.PeriodSelector{})
	require.ErrorIs(t, err, ErrForbidden)

	_, err = f.svc.BestPerformance(context.Background(), f.admin, dto.PeriodSelector{Year: ptrInt(2024), Day: ptrInt(3)})
	require.ErrorIs(t, err, ErrMissingParameter)
}

func TestSchoolReport(t *testing.T) {
	f := newReportFixture()
	ctx := context.Background()
	a := f.teachers.add("Budi", "budi@sekolah.id", "SD 1", roleTeacher)
	b := f.teachers.add("Ani", "ani@sekolah.id", "SD 1", roleTeacher)
	other := f.teachers.add("Cici", "cici@sekolah.id", "SD 2", roleTeacher)
	f.present(a.TeacherID, 2024, 3, 1)
	f.incomplete(a.TeacherID, 2024, 3, 2)
	f.present(other.TeacherID, 2024, 3, 1)

	res, err := f.svc.SchoolReport(ctx, f.admin, "  SD 1 ", dto.PeriodSelector{Year: ptrInt(2024)})
	require.NoError(t, err)
	assert.Equal(t, "SD 1", res.SchoolName)
	require.Len(t, res.Report, 2)
	assert.Equal(t, b.TeacherName, res.Report[0].Name)
	assert.Zero(t, res.Report[0].TotalRecords)
	assert.Equal(t, a.TeacherName, res.Report[1].Name)
	assert.Equal(t, 1, res.Report[1].PresentDays)
	assert.Equal(t, 2, res.Report[1].TotalRecords)

	res, err = f.svc.SchoolReport(ctx, f.admin, "Sekolah Tidak Ada", dto.PeriodSelector{Year: ptrInt(2024)})
	require.NoError(t, err)
	assert.Empty(t, res.Report)

	_, err = f.svc.SchoolReport(ctx, f.admin, "   ", dto.PeriodSelector{Year: ptrInt(2024)})
	require.ErrorIs(t, err, ErrMissingParameter)

	_, err = f.svc.SchoolReport(ctx, teacherCaller(a.TeacherID), "SD 1", dto.PeriodSelector{Year: ptrInt(2024)})
	require.ErrorIs(t, err, ErrForbidden)
}

func TestMyMonthlyReport(t *testing.T) {
	f := newReportFixture()
	ctx := context.Background()
	guru := f.teachers.add("Budi", "budi@sekolah.id", "SD 1", roleTeacher)
	f.present(guru.TeacherID, 2024, 3, 1)
	f.present(guru.TeacherID, 2024, 2, 28)

	// default bulan berjalan (jam fixture: 15 Maret 2024)
	res, err := f.svc.MyMonthlyReport(ctx, teacherCaller(guru.TeacherID), nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "Budi", res.TeacherName)
	assert.Equal(t, 2024, res.Year)
	assert.Equal(t, 3, res.Month)
	require.Len(t, res.Report, 1)
	assert.Equal(t, "2024-03-01", res.Report[0].Date)

	res, err = f.svc.MyMonthlyReport(ctx, teacherCaller(guru.TeacherID), ptrInt(2024), ptrInt(2))
	require.NoError(t, err)
	require.Len(t, res.Report, 1)
	assert.Equal(t, "2024-02-28", res.Report[0].Date)

	_, err = f.svc.MyMonthlyReport(ctx, teacherCaller(guru.TeacherID), ptrInt(2024), nil)
	require.ErrorIs(t, err, ErrMissingParameter)

	_, err = f.svc.MyMonthlyReport(ctx, teacherCaller(guru.TeacherID), nil, ptrInt(3))
	require.ErrorIs(t, err, ErrMissingParameter)

	_, err = f.svc.MyMonthlyReport(ctx, teacherCaller(guru.TeacherID), ptrInt(2024), ptrInt(13))
	require.ErrorIs(t, err, ErrInvalidParameter)
}

func TestDailyOverview(t *testing.T) {
	f := newReportFixture()
	ctx := context.Background()
	a := f.teachers.add("Ani", "ani@sekolah.id", "SD 1", roleTeacher)
	b := f.teachers.add("Budi", "budi@sekolah.id", "SD 1", roleTeacher)
	f.teachers.add("Cici", "cici@sekolah.id", "SD 2", roleTeacher)
	f.present(a.TeacherID, 2024, 3, 15)
	f.incomplete(b.TeacherID, 2024, 3, 15)
	f.present(b.TeacherID, 2024, 3, 14)

	res, err := f.svc.DailyOverview(ctx, f.admin, "")
	require.NoError(t, err)
	assert.Equal(t, "2024-03-15", res.Date)
	assert.Equal(t, dto.DailyOverviewSummary{Present: 1, Incomplete: 1, Absent: 1}, res.Summary)
	require.Len(t, res.Teachers, 3)

	res, err = f.svc.DailyOverview(ctx, f.admin, "2024-03-14")
	require.NoError(t, err)
	assert.Equal(t, dto.DailyOverviewSummary{Present: 1, Absent: 2}, res.Summary)

	_, err = f.svc.DailyOverview(ctx, f.admin, "14-03-2024")
	require.ErrorIs(t, err, ErrInvalidParameter)

	_, err = f.svc.DailyOverview(ctx, teacherCaller(a.TeacherID), "")
	require.ErrorIs(t, err, ErrForbidden)
}
