package punchimport

import (
	"sort"
	"strings"
	"time"

	"github.com/workpulse-hr/paytime-backend-go/internal/domain/attendance"
	"github.com/workpulse-hr/paytime-backend-go/internal/pkg/timeutil"
)

// PunchAction classifies one punch event.
type PunchAction string

const (
	ActionSignOn  PunchAction = "SignOn"
	ActionSignOff PunchAction = "SignOff"
	ActionUnknown PunchAction = "Unknown"
)

// ParseAction normalizes the action column of a device export.
func ParseAction(raw string) PunchAction {
	normalized := strings.ToUpper(strings.Join(strings.Fields(raw), " "))
	switch normalized {
	case "SIGN ON", "SIGNON", "IN":
		return ActionSignOn
	case "SIGN OFF", "SIGNOFF", "OUT":
		return ActionSignOff
	default:
		return ActionUnknown
	}
}

// PunchEvent is a single sign-on or sign-off record from a device export.
// Transient: it exists only during the import pipeline.
type PunchEvent struct {
	EmployeeID string
	Date       time.Time
	Time       timeutil.TimeOfDay
	Action     PunchAction
}

// GroupPunches folds punch events into one WorkInterval per (employee, date):
// check-in is the earliest SignOn and check-out the latest SignOff, modelling
// first-badge-in / last-badge-out. Duplicate and out-of-order punches are
// tolerated; a group missing one side produces an interval with that side
// absent. Unknown actions are ignored.
func GroupPunches(events []PunchEvent) []attendance.WorkInterval {
	type key struct {
		employeeID string
		date       string
	}

	groups := make(map[key]*attendance.WorkInterval)
	var order []key

	for _, ev := range events {
		k := key{employeeID: ev.EmployeeID, date: timeutil.FormatDate(ev.Date)}
		g, ok := groups[k]
		if !ok {
			g = &attendance.WorkInterval{
				EmployeeID: ev.EmployeeID,
				Date:       timeutil.DateOnly(ev.Date),
			}
			groups[k] = g
			order = append(order, k)
		}

		if !ev.Time.Valid {
			continue
		}
		switch ev.Action {
		case ActionSignOn:
			if !g.CheckIn.Valid || ev.Time.Seconds() < g.CheckIn.Seconds() {
				g.CheckIn = ev.Time
			}
		case ActionSignOff:
			if !g.CheckOut.Valid || ev.Time.Seconds() > g.CheckOut.Seconds() {
				g.CheckOut = ev.Time
			}
		}
	}

	sort.Slice(order, func(i, j int) bool {
		if order[i].employeeID != order[j].employeeID {
			return order[i].employeeID < order[j].employeeID
		}
		return order[i].date < order[j].date
	})

	intervals := make([]attendance.WorkInterval, 0, len(order))
	for _, k := range order {
		intervals = append(intervals, *groups[k])
	}
	return intervals
}
