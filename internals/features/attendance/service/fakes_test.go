package service

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"teacher_attendance_backend/internals/constants"
	"teacher_attendance_backend/internals/features/attendance/model"
	teacherModel "teacher_attendance_backend/internals/features/users/teachers/model"
)

/* ===== in-memory stores (semantik sama dengan repository gorm) ===== */

type memTeachers struct {
	rows []teacherModel.TeacherModel
}

func (m *memTeachers) add(name, email, school, role string) teacherModel.TeacherModel {
	t := teacherModel.TeacherModel{
		TeacherID:         uuid.New(),
		TeacherName:       name,
		TeacherEmail:      email,
		TeacherSchoolName: school,
		TeacherRole:       role,
		TeacherIsActive:   true,
	}
	m.rows = append(m.rows, t)
	return t
}

func (m *memTeachers) FindByID(_ context.Context, id uuid.UUID) (*teacherModel.TeacherModel, error) {
	for i := range m.rows {
		if m.rows[i].TeacherID == id {
			t := m.rows[i]
			return &t, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *memTeachers) ListByRole(_ context.Context, role string, school *string) ([]teacherModel.TeacherModel, error) {
	out := make([]teacherModel.TeacherModel, 0)
	for _, t := range m.rows {
		if t.TeacherRole != role {
			continue
		}
		if school != nil && t.TeacherSchoolName != *school {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

type recKey struct {
	teacher uuid.UUID
	day     string
}

type memRecords struct {
	mu   sync.Mutex
	rows map[recKey]*model.AttendanceRecordModel
}

func newMemRecords() *memRecords {
	return &memRecords{rows: map[recKey]*model.AttendanceRecordModel{}}
}

func keyOf(teacherID uuid.UUID, day time.Time) recKey {
	return recKey{teacher: teacherID, day: day.Format("2006-01-02")}
}

func (m *memRecords) put(teacherID uuid.UUID, day time.Time, in, out *time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rows[keyOf(teacherID, day)] = &model.AttendanceRecordModel{
		AttendanceRecordID:        uuid.New(),
		AttendanceRecordTeacherID: teacherID,
		AttendanceRecordDate:      datatypes.Date(day),
		AttendanceRecordCheckIn:   in,
		AttendanceRecordCheckOut:  out,
	}
}

func (m *memRecords) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.rows)
}

func (m *memRecords) get(k recKey) *model.AttendanceRecordModel {
	if r, ok := m.rows[k]; ok {
		c := *r
		return &c
	}
	return nil
}

func (m *memRecords) FindByTeacherAndDate(_ context.Context, teacherID uuid.UUID, day time.Time) (*model.AttendanceRecordModel, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.get(keyOf(teacherID, day)), nil
}

func (m *memRecords) ApplyCheckIn(_ context.Context, teacherID uuid.UUID, day, at time.Time, fp *string) (*model.AttendanceRecordModel, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	k := keyOf(teacherID, day)
	r, ok := m.rows[k]
	if !ok {
		r = &model.AttendanceRecordModel{
			AttendanceRecordID:        uuid.New(),
			AttendanceRecordTeacherID: teacherID,
			AttendanceRecordDate:      datatypes.Date(day),
		}
		m.rows[k] = r
	}
	if r.AttendanceRecordCheckIn != nil {
		return m.get(k), false, nil
	}
	v := at
	r.AttendanceRecordCheckIn = &v
	r.AttendanceRecordCheckInFingerprint = fp
	return m.get(k), true, nil
}

func (m *memRecords) ApplyCheckOut(_ context.Context, teacherID uuid.UUID, day, at time.Time, fp *string) (*model.AttendanceRecordModel, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	k := keyOf(teacherID, day)
	r, ok := m.rows[k]
	if !ok || r.AttendanceRecordCheckIn == nil || r.AttendanceRecordCheckOut != nil {
		return m.get(k), false, nil
	}
	v := at
	r.AttendanceRecordCheckOut = &v
	r.AttendanceRecordCheckOutFingerprint = fp
	return m.get(k), true, nil
}

func (m *memRecords) ListByTeacherBetween(ctx context.Context, teacherID uuid.UUID, from, to time.Time) ([]model.AttendanceRecordModel, error) {
	return m.ListByTeachersBetween(ctx, []uuid.UUID{teacherID}, from, to)
}

func (m *memRecords) ListByTeachersBetween(_ context.Context, ids []uuid.UUID, from, to time.Time) ([]model.AttendanceRecordModel, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	want := map[uuid.UUID]bool{}
	for _, id := range ids {
		want[id] = true
	}
	out := make([]model.AttendanceRecordModel, 0)
	for _, r := range m.rows {
		d := r.Day()
		if want[r.AttendanceRecordTeacherID] && !d.Before(from) && !d.After(to) {
			out = append(out, *r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Day().Before(out[j].Day()) })
	return out, nil
}

/* ===== helpers ===== */

// at: jam lokal sekolah (UTC+1) pada tanggal tertentu
func at(y int, m time.Month, d, hour, min int) time.Time {
	return time.Date(y, m, d, hour, min, 0, 0, DefaultWindowPolicy().Location)
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func ptrTime(t time.Time) *time.Time { return &t }

func ptrInt(v int) *int { return &v }

func newTeacherStore() *memTeachers { return &memTeachers{} }

var roleTeacher = constants.RoleTeacher

func timeMonth(m int) time.Month { return time.Month(m) }
