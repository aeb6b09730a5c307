package timesheet

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"go-hrm/internal/attendance"
	attendanceerrors "go-hrm/internal/attendance/errors"

	"go.uber.org/zap"
)

const workDateLayout = "2006-01-02"

// workedHoursPerFullDay is the flat conversion applied to any day with
// both a check-in and a check-out.
// TODO: replace with the shift-based hour calculation once shift plans
// carry start/end times.
const workedHoursPerFullDay = 9

// Hardcoded card values until leave balances and the hours quota are
// sourced from payroll.
const (
	cardStandardHours  = "27,25"
	cardHoursBalance   = "--"
	cardLeaveAvailable = "0"
	cardLeaveUsed      = "0"
)

// AttendanceStore is the slice of the attendance repository the
// summarizer reads from.
type AttendanceStore interface {
	FindByEmployeeAndRange(ctx context.Context, employeeCode string, from, to time.Time) ([]attendance.Attendance, error)
}

type Service interface {
	Summarize(ctx context.Context, employeeCode, from, to string) (SummaryResponse, error)
}

type service struct {
	store  AttendanceStore
	logger *zap.Logger
}

func NewService(store AttendanceStore, logger ...*zap.Logger) Service {
	l := zap.L().Named("timesheet.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("timesheet.service")
	}
	return &service{store: store, logger: l}
}

// Summarize builds the period view: one row per calendar day between
// from and to inclusive, whether or not a record exists for it, with a
// synthetic total row prepended. An inverted range yields no day rows
// rather than an error.
func (s *service) Summarize(ctx context.Context, employeeCode, from, to string) (SummaryResponse, error) {
	if employeeCode == "" || from == "" || to == "" {
		return SummaryResponse{}, attendanceerrors.ErrMissingQueryParams
	}

	fromDate, err := time.Parse(workDateLayout, from)
	if err != nil {
		return SummaryResponse{}, attendanceerrors.ErrInvalidDateRange
	}
	toDate, err := time.Parse(workDateLayout, to)
	if err != nil {
		return SummaryResponse{}, attendanceerrors.ErrInvalidDateRange
	}

	records, err := s.store.FindByEmployeeAndRange(ctx, employeeCode, fromDate, toDate)
	if err != nil {
		s.logger.Error("fetch attendance range failed",
			zap.String("employee_code", employeeCode),
			zap.Error(err),
		)
		return SummaryResponse{}, err
	}

	byDate := make(map[string]attendance.Attendance, len(records))
	for _, r := range records {
		byDate[r.WorkDate.Format(workDateLayout)] = r
	}

	var (
		dayRows    []SummaryRow
		totalHours float64
	)
	for d := fromDate; !d.After(toDate); d = d.AddDate(0, 0, 1) {
		rec, exists := byDate[d.Format(workDateLayout)]

		hours := Hours{}
		if exists && hasValue(rec.CheckIn) && hasValue(rec.CheckOut) {
			hours = SetHours(workedHoursPerFullDay)
			totalHours += hours.Value
		}

		note := ""
		if exists && rec.Note != nil {
			note = *rec.Note
		}

		dayRows = append(dayRows, SummaryRow{
			Label:           dayLabel(d),
			Overtime:        "-",
			Standby:         "-",
			NightShift:      "-",
			SocialInsurance: "-",
			PaidLeave:       "-",
			UnpaidLeave:     "-",
			Leave:           "-",
			WorkedHours:     hours,
			Note:            note,
		})
	}

	totalRow := SummaryRow{
		Label:           "Total",
		Overtime:        "-",
		Standby:         "-",
		NightShift:      "-",
		SocialInsurance: "-",
		PaidLeave:       "-",
		UnpaidLeave:     "-",
		Leave:           "-",
	}
	if totalHours > 0 {
		totalRow.WorkedHours = SetHours(totalHours)
	}

	rows := make([]SummaryRow, 0, len(dayRows)+1)
	rows = append(rows, totalRow)
	rows = append(rows, dayRows...)

	return SummaryResponse{
		Cards: SummaryCards{
			TotalHours:     formatDecimalComma(totalHours),
			StandardHours:  cardStandardHours,
			HoursBalance:   cardHoursBalance,
			LeaveAvailable: cardLeaveAvailable,
			LeaveUsed:      cardLeaveUsed,
		},
		Rows: rows,
	}, nil
}

// dayLabel renders the weekday header cell: Sunday as "CN - <day>",
// Monday through Saturday as "T2".."T7" with the day of month.
func dayLabel(d time.Time) string {
	day := d.Day()
	if d.Weekday() == time.Sunday {
		return fmt.Sprintf("CN - %d", day)
	}
	return fmt.Sprintf("T%d - %d", int(d.Weekday())+1, day)
}

// formatDecimalComma renders a total with a decimal comma, the display
// convention of the timesheet UI.
func formatDecimalComma(v float64) string {
	return strings.Replace(strconv.FormatFloat(v, 'f', -1, 64), ".", ",", 1)
}

func hasValue(s *string) bool {
	return s != nil && *s != ""
}
