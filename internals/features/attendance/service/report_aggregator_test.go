package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"teacher_attendance_backend/internals/features/attendance/dto"
	"teacher_attendance_backend/internals/features/attendance/model"
	teacherModel "teacher_attendance_backend/internals/features/users/teachers/model"
)

func rec(teacherID uuid.UUID, d time.Time, in, out bool) model.AttendanceRecordModel {
	r := model.AttendanceRecordModel{
		AttendanceRecordID:        uuid.New(),
		AttendanceRecordTeacherID: teacherID,
		AttendanceRecordDate:      datatypes.Date(d),
	}
	if in {
		r.AttendanceRecordCheckIn = ptrTime(d.Add(7 * time.Hour))
	}
	if out {
		r.AttendanceRecordCheckOut = ptrTime(d.Add(13 * time.Hour))
	}
	return r
}

func march2024(t *testing.T) Period {
	t.Helper()
	p, err := ResolvePeriod(dto.PeriodSelector{Year: ptrInt(2024), Month: ptrInt(3)})
	require.NoError(t, err)
	return p
}

func TestDeriveStatus(t *testing.T) {
	now := time.Now()
	assert.Equal(t, model.StatusAbsent, DeriveStatus(nil, nil))
	assert.Equal(t, model.StatusIncomplete, DeriveStatus(&now, nil))
	assert.Equal(t, model.StatusPresent, DeriveStatus(&now, &now))
	// check-out tanpa check-in tetap dianggap absen
	assert.Equal(t, model.StatusAbsent, DeriveStatus(nil, &now))
}

func TestBuildReportItems_FiltersAndSorts(t *testing.T) {
	id := uuid.New()
	records := []model.AttendanceRecordModel{
		rec(id, day(2024, 3, 20), true, false),
		rec(id, day(2024, 2, 28), true, true), // di luar periode
		rec(id, day(2024, 3, 5), true, true),
		rec(id, day(2024, 4, 1), true, true), // di luar periode
	}

	items := BuildReportItems(records, march2024(t), time.UTC)
	require.Len(t, items, 2)
	assert.Equal(t, "2024-03-05", items[0].Date)
	assert.Equal(t, model.StatusPresent, items[0].Status)
	assert.Equal(t, "2024-03-20", items[1].Date)
	assert.Equal(t, model.StatusIncomplete, items[1].Status)
	assert.Nil(t, items[1].CheckOut)
}

func TestBuildReportItems_ConvertsToSchoolTime(t *testing.T) {
	id := uuid.New()
	loc := DefaultWindowPolicy().Location
	items := BuildReportItems([]model.AttendanceRecordModel{rec(id, day(2024, 3, 5), true, false)}, march2024(t), loc)

	require.Len(t, items, 1)
	assert.Equal(t, 8, items[0].CheckIn.Hour()) // 07:00 UTC → 08:00 UTC+1
}

func TestRankByPresentDays_SortedDescending(t *testing.T) {
	p := march2024(t)
	a := teacherModel.TeacherModel{TeacherID: uuid.New(), TeacherName: "Ani", TeacherEmail: "ani@x.id"}
	b := teacherModel.TeacherModel{TeacherID: uuid.New(), TeacherName: "Budi", TeacherEmail: "budi@x.id"}
	c := teacherModel.TeacherModel{TeacherID: uuid.New(), TeacherName: "Cici", TeacherEmail: "cici@x.id"}

	var records []model.AttendanceRecordModel
	for i := 1; i <= 3; i++ {
		records = append(records, rec(a.TeacherID, day(2024, 3, i), true, true))
	}
	records = append(records, rec(b.TeacherID, day(2024, 3, 1), true, true))
	records = append(records, rec(b.TeacherID, day(2024, 3, 2), true, false)) // incomplete: tidak dihitung
	for i := 1; i <= 5; i++ {
		records = append(records, rec(c.TeacherID, day(2024, 3, i), true, true))
	}

	out := RankByPresentDays([]teacherModel.TeacherModel{a, b, c}, GroupByTeacher(records), p)
	require.Len(t, out, 3)
	assert.Equal(t, []int{5, 3, 1}, []int{out[0].PresentDays, out[1].PresentDays, out[2].PresentDays})
	assert.Equal(t, "Cici", out[0].Name)
	assert.Equal(t, "Ani", out[1].Name)
	assert.Equal(t, "Budi", out[2].Name)
}

func TestRankByPresentDays_TieBreakByNameThenEmail(t *testing.T) {
	p := march2024(t)
	z := teacherModel.TeacherModel{TeacherID: uuid.New(), TeacherName: "zaki", TeacherEmail: "z@x.id"}
	a2 := teacherModel.TeacherModel{TeacherID: uuid.New(), TeacherName: "Ani", TeacherEmail: "b@x.id"}
	a1 := teacherModel.TeacherModel{TeacherID: uuid.New(), TeacherName: "ani", TeacherEmail: "a@x.id"}

	out := RankByPresentDays([]teacherModel.TeacherModel{z, a2, a1}, GroupByTeacher(nil), p)
	require.Len(t, out, 3)
	assert.Equal(t, "a@x.id", out[0].Email)
	assert.Equal(t, "b@x.id", out[1].Email)
	assert.Equal(t, "z@x.id", out[2].Email)
	for _, it := range out {
		assert.Zero(t, it.PresentDays)
	}
}

func TestSchoolRollup_TotalRecordsNeverBelowPresentDays(t *testing.T) {
	p := march2024(t)
	teachers := []teacherModel.TeacherModel{
		{TeacherID: uuid.New(), TeacherName: "Budi", TeacherEmail: "budi@x.id"},
		{TeacherID: uuid.New(), TeacherName: "Ani", TeacherEmail: "ani@x.id"},
	}
	records := []model.AttendanceRecordModel{
		rec(teachers[0].TeacherID, day(2024, 3, 1), true, true),
		rec(teachers[0].TeacherID, day(2024, 3, 2), true, false),
		rec(teachers[0].TeacherID, day(2024, 3, 3), false, false),
		rec(teachers[1].TeacherID, day(2024, 3, 1), true, true),
		rec(teachers[1].TeacherID, day(2024, 5, 1), true, true), // di luar periode
	}

	out := SchoolRollup(teachers, GroupByTeacher(records), p)
	require.Len(t, out, 2)
	assert.Equal(t, "Ani", out[0].Name)
	assert.Equal(t, 1, out[0].PresentDays)
	assert.Equal(t, 1, out[0].TotalRecords)
	assert.Equal(t, "Budi", out[1].Name)
	assert.Equal(t, 1, out[1].PresentDays)
	assert.Equal(t, 3, out[1].TotalRecords)

	for _, it := range out {
		assert.GreaterOrEqual(t, it.TotalRecords, it.PresentDays)
	}
}
