// Package mockdata produces plausible attendance punches for a roster over a
// trailing date window. It is the development fixture behind cmd/seed and the
// reference scenario space for the classifier tests.
package mockdata

import (
	"math/rand"
	"time"

	"github.com/attendly/attendance-backend-go/internal/domain/attendance"
	"github.com/attendly/attendance-backend-go/internal/domain/employee"
	"github.com/attendly/attendance-backend-go/internal/pkg/timeutil"
)

type Config struct {
	// Days is the trailing window length, ending today.
	Days int
	// WeekendDays are always absences, regardless of the random draws.
	WeekendDays []time.Weekday
	// AbsenceRate is the chance a non-weekend day is an absence.
	AbsenceRate float64
	// LateRate is the chance a present day's login is late.
	LateRate float64
	// ShiftLengthMinutes is the nominal shift length before perturbation.
	ShiftLengthMinutes int
}

func DefaultConfig() Config {
	return Config{
		Days:               30,
		WeekendDays:        []time.Weekday{time.Friday, time.Saturday},
		AbsenceRate:        0.05,
		LateRate:           0.10,
		ShiftLengthMinutes: 8 * 60,
	}
}

// Generator draws attendance scenarios from an injected random source, so runs
// are reproducible under a fixed seed and parallel callers can hold their own
// stream.
type Generator struct {
	cfg Config
	rng *rand.Rand
}

func NewGenerator(cfg Config, rng *rand.Rand) *Generator {
	if cfg.Days <= 0 {
		cfg.Days = DefaultConfig().Days
	}
	if cfg.ShiftLengthMinutes <= 0 {
		cfg.ShiftLengthMinutes = DefaultConfig().ShiftLengthMinutes
	}
	if len(cfg.WeekendDays) == 0 {
		cfg.WeekendDays = DefaultConfig().WeekendDays
	}
	return &Generator{cfg: cfg, rng: rng}
}

// Generate produces one record per employee per day across the window ending
// at now's date, sorted by date descending then employee id ascending.
//
// Scenario per employee per day, in order:
//
//  1. weekend day           -> Absent, no randomness consulted
//  2. draw < AbsenceRate    -> Absent
//  3. draw < LateRate       -> flag the login late
//  4. login  = shift window start + U[0,30]min, late adds a further U[5,45]min
//  5. logout = login + nominal shift + U[-15,+30]min, overnight-safe
//  6. status = Late when flagged, else Present
//
// The generator never emits Early Leave or Partial Day; those arise only from
// classifying real, less tidy punch data.
func (g *Generator) Generate(roster []employee.Employee, now time.Time) []attendance.Record {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	records := make([]attendance.Record, 0, len(roster)*g.cfg.Days)
	for _, emp := range roster {
		for i := 0; i < g.cfg.Days; i++ {
			records = append(records, g.generateDay(emp, today.AddDate(0, 0, -i)))
		}
	}

	attendance.SortRecords(records)
	return records
}

func (g *Generator) generateDay(emp employee.Employee, date time.Time) attendance.Record {
	record := attendance.Record{
		Date:         date,
		EmployeeID:   emp.ID,
		EmployeeName: emp.FullName(),
		Department:   emp.Department,
		Shift:        string(emp.Shift),
		Status:       attendance.StatusAbsent,
	}

	if g.isWeekend(date.Weekday()) {
		return record
	}
	if g.rng.Float64() < g.cfg.AbsenceRate {
		return record
	}

	late := g.rng.Float64() < g.cfg.LateRate

	login := timeutil.AddMinutes(emp.Shift.WindowStart(), g.intn(employee.ArrivalSpreadMinutes+1))
	if late {
		login = timeutil.AddMinutes(login, 5+g.intn(41))
	}

	logout := timeutil.AddMinutes(login, g.cfg.ShiftLengthMinutes-15+g.intn(46))

	record.Login = &login
	record.Logout = &logout
	record.TotalHours = timeutil.HoursBetween(login, logout)
	record.Late = late
	record.Status = attendance.StatusPresent
	if late {
		record.Status = attendance.StatusLate
	}

	return record
}

func (g *Generator) isWeekend(day time.Weekday) bool {
	for _, weekend := range g.cfg.WeekendDays {
		if day == weekend {
			return true
		}
	}
	return false
}

func (g *Generator) intn(n int) int {
	return g.rng.Intn(n)
}

// ToPunches converts generated records into storable punch rows.
func ToPunches(records []attendance.Record) []attendance.Punch {
	punches := make([]attendance.Punch, 0, len(records))
	for _, r := range records {
		punches = append(punches, attendance.Punch{
			EmployeeID: r.EmployeeID,
			Date:       r.Date,
			LoginTime:  r.Login,
			LogoutTime: r.Logout,
			Late:       r.Late,
		})
	}
	return punches
}
