package attendance

type UpsertAttendanceRequest struct {
	EmployeeCode  string  `json:"employeeCode" binding:"required"`
	WorkDate      string  `json:"workDate" binding:"required"`
	ShiftCode     *string `json:"shiftCode"`
	ShiftTime     *string `json:"shiftTime"`
	CheckIn       *string `json:"checkIn"`
	CheckOut      *string `json:"checkOut"`
	ExplainStatus string  `json:"explainStatus"`
	Note          *string `json:"note"`
}

type AttendanceResponse struct {
	ID            string  `json:"id"`
	EmployeeCode  string  `json:"employeeCode"`
	WorkDate      string  `json:"workDate"`
	ShiftCode     *string `json:"shiftCode,omitempty"`
	ShiftTime     *string `json:"shiftTime,omitempty"`
	CheckIn       *string `json:"checkIn,omitempty"`
	CheckOut      *string `json:"checkOut,omitempty"`
	ExplainStatus string  `json:"explainStatus"`
	Note          *string `json:"note,omitempty"`
	CreatedAt     string  `json:"createdAt"`
}
