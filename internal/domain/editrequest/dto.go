package editrequest

type EditRequestResponse struct {
	ID                string  `json:"id"`
	EmployeeID        string  `json:"employee_id"`
	EmployeeName      string  `json:"employee_name,omitempty"`
	AttendanceID      string  `json:"attendance_id"`
	Date              string  `json:"date"`
	OriginalClockIn   *string `json:"original_clock_in"`
	OriginalClockOut  *string `json:"original_clock_out"`
	RequestedClockIn  *string `json:"requested_clock_in"`
	RequestedClockOut *string `json:"requested_clock_out"`
	Reason            string  `json:"reason"`
	Status            string  `json:"status"`
	ReviewedBy        *string `json:"reviewed_by,omitempty"`
	ReviewedAt        *string `json:"reviewed_at,omitempty"`
	Comment           *string `json:"comment,omitempty"`
}

type ListEditRequestResponse struct {
	TotalCount int64                 `json:"total_count"`
	Page       int                   `json:"page"`
	Limit      int                   `json:"limit"`
	Requests   []EditRequestResponse `json:"edit_requests"`
}
