package attendance

import (
	"sort"
	"strconv"
	"time"

	"github.com/attendly/attendance-backend-go/internal/pkg/timeutil"
)

type Status string

const (
	StatusPresent    Status = "Present"
	StatusLate       Status = "Late"
	StatusAbsent     Status = "Absent"
	StatusEarlyLeave Status = "Early Leave"
	StatusPartialDay Status = "Partial Day"
)

// AllStatuses lists every status in presentation order.
var AllStatuses = []Status{
	StatusPresent,
	StatusLate,
	StatusAbsent,
	StatusEarlyLeave,
	StatusPartialDay,
}

// Punch is a single day's observed login/logout for one employee, as ingested
// from the punch clock (or the synthetic seeder). Late is determined at
// ingestion time against the shift's arrival window; it cannot be re-derived
// from the final record alone.
type Punch struct {
	ID         string
	EmployeeID string
	Date       time.Time
	LoginTime  *timeutil.Clock
	LogoutTime *timeutil.Clock
	Late       bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Record is the classified outcome for one employee on one date. Records are
// computed fresh from punches on every query and never stored.
type Record struct {
	Date         time.Time
	EmployeeID   string
	EmployeeName string
	Department   string
	Shift        string
	Login        *timeutil.Clock
	Logout       *timeutil.Clock
	TotalHours   float64
	Late         bool
	Status       Status
}

// SortRecords orders records by date descending, then employee id ascending.
// Numeric ids compare numerically, so "2" sorts before "10".
func SortRecords(records []Record) {
	sort.SliceStable(records, func(i, j int) bool {
		if !records[i].Date.Equal(records[j].Date) {
			return records[i].Date.After(records[j].Date)
		}
		return employeeIDLess(records[i].EmployeeID, records[j].EmployeeID)
	})
}

func employeeIDLess(a, b string) bool {
	ai, aerr := strconv.Atoi(a)
	bi, berr := strconv.Atoi(b)
	if aerr == nil && berr == nil {
		return ai < bi
	}
	return a < b
}

type StatusCount struct {
	Status  Status  `json:"status"`
	Count   int     `json:"count"`
	Percent float64 `json:"percent"`
}

type Summary struct {
	Total    int           `json:"total"`
	Statuses []StatusCount `json:"statuses"`
}

// Summarize tallies statuses over a record set. Percentages are exact counts
// over the total, as count/total*100 rounded to two decimals.
func Summarize(records []Record) Summary {
	counts := make(map[Status]int, len(AllStatuses))
	for _, r := range records {
		counts[r.Status]++
	}

	summary := Summary{Total: len(records)}
	for _, status := range AllStatuses {
		sc := StatusCount{Status: status, Count: counts[status]}
		if summary.Total > 0 {
			sc.Percent = timeutil.Round2(float64(sc.Count) / float64(summary.Total) * 100)
		}
		summary.Statuses = append(summary.Statuses, sc)
	}
	return summary
}
