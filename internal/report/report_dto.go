package report

// FragmentResponse is one premium interval inside a day, tagged with the
// clock the parent shift started at and the part of the day it fell in.
type FragmentResponse struct {
	ShiftStart string `json:"shift_start"`
	Duration   string `json:"duration"`
	DayPart    string `json:"day_part"`
}

type DayResponse struct {
	Date      string             `json:"date"`
	Fragments []FragmentResponse `json:"fragments"`
}

type BucketResponse struct {
	Total string        `json:"total"`
	Days  []DayResponse `json:"days"`
}

type OvertimeResponse struct {
	EmployeeID string         `json:"employee_id"`
	From       string         `json:"from"`
	To         string         `json:"to"`
	Premium50  BucketResponse `json:"premium_50"`
	Premium100 BucketResponse `json:"premium_100"`
}

// EmployeeOvertimeResponse is one roster line in the all-employee summary.
// Watchman roles never appear in it.
type EmployeeOvertimeResponse struct {
	EmployeeID string `json:"employee_id"`
	Name       string `json:"name"`
	Premium50  string `json:"premium_50"`
	Premium100 string `json:"premium_100"`
}

type OvertimeAllResponse struct {
	From      string                     `json:"from"`
	To        string                     `json:"to"`
	Employees []EmployeeOvertimeResponse `json:"employees"`
}

type OvertimeSummaryResponse struct {
	EmployeeID string `json:"employee_id"`
	From       string `json:"from"`
	To         string `json:"to"`
	Premium50  string `json:"premium_50"`
	Premium100 string `json:"premium_100"`
}

type WorkedDayResponse struct {
	Date   string `json:"date"`
	Worked string `json:"worked"`
}

type WorkedHoursResponse struct {
	EmployeeID string              `json:"employee_id"`
	From       string              `json:"from"`
	To         string              `json:"to"`
	Days       []WorkedDayResponse `json:"days"`
}

// AbsencesResponse maps each business day to the employees with no
// clock-in on it. Days with full attendance are omitted.
type AbsencesResponse struct {
	From     string              `json:"from"`
	To       string              `json:"to"`
	Absences map[string][]string `json:"absences"`
}
