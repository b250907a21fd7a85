package service

import (
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"teacher_attendance_backend/internals/features/attendance/dto"
	"teacher_attendance_backend/internals/features/attendance/model"
	teacherModel "teacher_attendance_backend/internals/features/users/teachers/model"
	"teacher_attendance_backend/internals/helpers/dbtime"
)

/* =========================================================
   Aggregasi murni di atas snapshot record (tanpa I/O)
========================================================= */

// DeriveStatus: (∅,∅)→Absent, (set,∅)→Incomplete, (set,set)→Present
func DeriveStatus(checkIn, checkOut *time.Time) string {
	switch {
	case checkIn == nil:
		return model.StatusAbsent
	case checkOut == nil:
		return model.StatusIncomplete
	default:
		return model.StatusPresent
	}
}

func RecordStatus(r model.AttendanceRecordModel) string {
	return DeriveStatus(r.AttendanceRecordCheckIn, r.AttendanceRecordCheckOut)
}

// RecordsInPeriod: filter berdasarkan tanggal kalender, urut naik per tanggal
func RecordsInPeriod(records []model.AttendanceRecordModel, p Period) []model.AttendanceRecordModel {
	out := make([]model.AttendanceRecordModel, 0, len(records))
	for _, r := range records {
		if p.Contains(r.Day()) {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Day().Before(out[j].Day())
	})
	return out
}

func BuildReportItems(records []model.AttendanceRecordModel, p Period, loc *time.Location) []dto.AttendanceReportItem {
	filtered := RecordsInPeriod(records, p)
	items := make([]dto.AttendanceReportItem, 0, len(filtered))
	for _, r := range filtered {
		items = append(items, dto.AttendanceReportItem{
			Date:     dbtime.FormatDate(r.Day()),
			CheckIn:  dbtime.ToSchoolTimePtr(r.AttendanceRecordCheckIn, loc),
			CheckOut: dbtime.ToSchoolTimePtr(r.AttendanceRecordCheckOut, loc),
			Status:   RecordStatus(r),
		})
	}
	return items
}

// Presence: presentDays = record lengkap; totalRecords = semua record di periode
type Presence struct {
	PresentDays  int
	TotalRecords int
}

func CountPresence(records []model.AttendanceRecordModel, p Period) Presence {
	var out Presence
	for _, r := range records {
		if !p.Contains(r.Day()) {
			continue
		}
		out.TotalRecords++
		if RecordStatus(r) == model.StatusPresent {
			out.PresentDays++
		}
	}
	return out
}

// GroupByTeacher: map teacher_id → record miliknya
func GroupByTeacher(records []model.AttendanceRecordModel) map[uuid.UUID][]model.AttendanceRecordModel {
	out := make(map[uuid.UUID][]model.AttendanceRecordModel)
	for _, r := range records {
		out[r.AttendanceRecordTeacherID] = append(out[r.AttendanceRecordTeacherID], r)
	}
	return out
}

// RankByPresentDays: presentDays turun; seri → nama (case-insensitive) lalu email naik
func RankByPresentDays(teachers []teacherModel.TeacherModel, byTeacher map[uuid.UUID][]model.AttendanceRecordModel, p Period) []dto.PerformanceItem {
	items := make([]dto.PerformanceItem, 0, len(teachers))
	for _, t := range teachers {
		pr := CountPresence(byTeacher[t.TeacherID], p)
		items = append(items, dto.PerformanceItem{
			Name:        t.TeacherName,
			Email:       t.TeacherEmail,
			PresentDays: pr.PresentDays,
		})
	}
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].PresentDays != items[j].PresentDays {
			return items[i].PresentDays > items[j].PresentDays
		}
		return lessByNameEmail(items[i].Name, items[i].Email, items[j].Name, items[j].Email)
	})
	return items
}

// SchoolRollup: urut nama naik (email sebagai pemecah seri)
func SchoolRollup(teachers []teacherModel.TeacherModel, byTeacher map[uuid.UUID][]model.AttendanceRecordModel, p Period) []dto.SchoolReportItem {
	items := make([]dto.SchoolReportItem, 0, len(teachers))
	for _, t := range teachers {
		pr := CountPresence(byTeacher[t.TeacherID], p)
		items = append(items, dto.SchoolReportItem{
			Name:         t.TeacherName,
			Email:        t.TeacherEmail,
			PresentDays:  pr.PresentDays,
			TotalRecords: pr.TotalRecords,
		})
	}
	sort.SliceStable(items, func(i, j int) bool {
		return lessByNameEmail(items[i].Name, items[i].Email, items[j].Name, items[j].Email)
	})
	return items
}

func lessByNameEmail(nameA, emailA, nameB, emailB string) bool {
	na, nb := strings.ToLower(nameA), strings.ToLower(nameB)
	if na != nb {
		return na < nb
	}
	return emailA < emailB
}
