package events

const PunchDeviceTopic = "ponto.punch.device.v1"

// DevicePunchEvent is the raw feed from badge readers. Devices only know
// the employee by display name.
type DevicePunchEvent struct {
	DeviceID     string `json:"device_id"`
	EmployeeName string `json:"employee_name"`
	Action       string `json:"action"`
	PunchDate    string `json:"punch_date"`
	PunchTime    string `json:"punch_time"`
}
