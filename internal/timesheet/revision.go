package timesheet

// Revision counters invalidate cached report results. Every punch or
// holiday mutation bumps the matching counter, so cache keys built from
// the current revisions never serve stale computations.
const (
	HolidayRevisionKey = "timesheet:rev:holidays"
	GlobalRevisionKey  = "timesheet:rev:all"
)

func EmployeeRevisionKey(employeeID string) string {
	return "timesheet:rev:" + employeeID
}
