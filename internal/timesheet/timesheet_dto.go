package timesheet

import "encoding/json"

// Hours is a worked-hours cell: either a number or, when a day has no
// usable record, the unset marker "-" on the wire.
type Hours struct {
	Valid bool
	Value float64
}

func SetHours(v float64) Hours {
	return Hours{Valid: true, Value: v}
}

func (h Hours) MarshalJSON() ([]byte, error) {
	if !h.Valid {
		return []byte(`"-"`), nil
	}
	return json.Marshal(h.Value)
}

// SummaryRow is one line of the timesheet table. Every category except
// worked hours is a dash placeholder until the real categorisation is
// sourced from the shift plan.
type SummaryRow struct {
	Label           string `json:"label"`
	Overtime        string `json:"overtime"`
	Standby         string `json:"standby"`
	NightShift      string `json:"nightShift"`
	SocialInsurance string `json:"socialInsurance"`
	PaidLeave       string `json:"paidLeave"`
	UnpaidLeave     string `json:"unpaidLeave"`
	Leave           string `json:"leave"`
	WorkedHours     Hours  `json:"workedHours"`
	Note            string `json:"note"`
}

type SummaryCards struct {
	TotalHours     string `json:"totalHours"`
	StandardHours  string `json:"standardHours"`
	HoursBalance   string `json:"hoursBalance"`
	LeaveAvailable string `json:"leaveAvailable"`
	LeaveUsed      string `json:"leaveUsed"`
}

type SummaryResponse struct {
	Cards SummaryCards `json:"cards"`
	Rows  []SummaryRow `json:"rows"`
}
