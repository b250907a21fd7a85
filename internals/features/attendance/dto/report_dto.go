package dto

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

/* =========================
   Query
========================= */

// PeriodSelector: year wajib; month opsional; day hanya valid bila month ada.
type PeriodSelector struct {
	Year  *int
	Month *int
	Day   *int
}

type ReportQuery struct {
	Year  string `query:"year" validate:"omitempty,number"`
	Month string `query:"month" validate:"omitempty,number"`
	Day   string `query:"day" validate:"omitempty,number"`

	SchoolName    string `query:"school_name" validate:"omitempty,max=150"`
	SchoolNameAlt string `query:"schoolName" validate:"omitempty,max=150"`
}

func (q ReportQuery) Selector() (PeriodSelector, error) {
	var (
		sel PeriodSelector
		err error
	)
	if sel.Year, err = optInt("year", q.Year); err != nil {
		return sel, err
	}
	if sel.Month, err = optInt("month", q.Month); err != nil {
		return sel, err
	}
	if sel.Day, err = optInt("day", q.Day); err != nil {
		return sel, err
	}
	return sel, nil
}

// School: dukung ?school_name= dan ?schoolName=
func (q ReportQuery) School() string {
	if s := strings.TrimSpace(q.SchoolName); s != "" {
		return s
	}
	return strings.TrimSpace(q.SchoolNameAlt)
}

type DailyOverviewQuery struct {
	Date string `query:"date" validate:"omitempty,datetime=2006-01-02"`
}

func optInt(name, raw string) (*int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fmt.Errorf("%s harus berupa angka", name)
	}
	return &n, nil
}

/* =========================
   Responses
========================= */

type AttendanceReportItem struct {
	Date     string     `json:"date"`
	CheckIn  *time.Time `json:"check_in"`
	CheckOut *time.Time `json:"check_out"`
	Status   string     `json:"status"`
}

type TeacherBrief struct {
	TeacherID  uuid.UUID `json:"teacher_id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	SchoolName string    `json:"school_name"`
}

type TeacherReportResponse struct {
	Teacher TeacherBrief           `json:"teacher"`
	Year    int                    `json:"year"`
	Month   *int                   `json:"month"`
	Day     *int                   `json:"day"`
	Report  []AttendanceReportItem `json:"report"`
}

type PerformanceItem struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	PresentDays int    `json:"present_days"`
}

type BestPerformanceResponse struct {
	Year        int               `json:"year"`
	Month       *int              `json:"month"`
	Day         *int              `json:"day"`
	Performance []PerformanceItem `json:"performance"`
}

type SchoolReportItem struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	PresentDays  int    `json:"present_days"`
	TotalRecords int    `json:"total_records"`
}

type SchoolReportResponse struct {
	SchoolName string             `json:"school_name"`
	Year       int                `json:"year"`
	Month      *int               `json:"month"`
	Day        *int               `json:"day"`
	Report     []SchoolReportItem `json:"report"`
}

type MonthlyReportResponse struct {
	TeacherName string                 `json:"teacher_name"`
	Year        int                    `json:"year"`
	Month       int                    `json:"month"`
	Report      []AttendanceReportItem `json:"report"`
}

type DailyOverviewItem struct {
	TeacherID  uuid.UUID  `json:"teacher_id"`
	Name       string     `json:"name"`
	Email      string     `json:"email"`
	SchoolName string     `json:"school_name"`
	Status     string     `json:"status"`
	CheckIn    *time.Time `json:"check_in"`
	CheckOut   *time.Time `json:"check_out"`
}

type DailyOverviewSummary struct {
	Present    int `json:"present"`
	Incomplete int `json:"incomplete"`
	Absent     int `json:"absent"`
}

type DailyOverviewResponse struct {
	Date     string               `json:"date"`
	Summary  DailyOverviewSummary `json:"summary"`
	Teachers []DailyOverviewItem  `json:"teachers"`
}
