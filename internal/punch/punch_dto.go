package punch

type RecordPunchRequest struct {
	EmployeeID string `json:"employee_id" binding:"required,uuid"`
	Action     string `json:"action" binding:"required"`
	Date       string `json:"date" binding:"required"`
	Time       string `json:"time" binding:"required"`
}

// StandardDayRequest records a full administrative day in one call:
// start at the given clock, lunch from 12:00 to 13:00, and end at 17:00
// (16:00 on Fridays).
type StandardDayRequest struct {
	EmployeeID string `json:"employee_id" binding:"required,uuid"`
	Date       string `json:"date" binding:"required"`
	StartTime  string `json:"start_time" binding:"required"`
}

type WatchShiftRequest struct {
	EmployeeID string `json:"employee_id" binding:"required,uuid"`
	Date       string `json:"date" binding:"required"`
}

type UpdatePunchRequest struct {
	Action string `json:"action" binding:"required"`
	Date   string `json:"date" binding:"required"`
	Time   string `json:"time" binding:"required"`
}

type PunchResponse struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employee_id"`
	Action     string `json:"action"`
	Date       string `json:"date"`
	Time       string `json:"time"`
}
