// Seed fills the database with synthetic attendance punches for every roster
// employee, optionally importing the roster from the JSON registry first.
// Development fixture only.
package main

import (
	"context"
	"flag"
	"log"
	"math/rand"
	"time"

	"github.com/attendly/attendance-backend-go/internal/config"
	"github.com/attendly/attendance-backend-go/internal/domain/attendance"
	"github.com/attendly/attendance-backend-go/internal/pkg/database"
	"github.com/attendly/attendance-backend-go/internal/pkg/roster"
	"github.com/attendly/attendance-backend-go/internal/repository/postgresql"
	employeeService "github.com/attendly/attendance-backend-go/internal/service/employee"
	"github.com/attendly/attendance-backend-go/internal/service/mockdata"
)

func main() {
	days := flag.Int("days", 30, "trailing window length in days")
	absenceRate := flag.Float64("absence-rate", 0.05, "chance a workday is an absence")
	lateRate := flag.Float64("late-rate", 0.10, "chance a present day is late")
	seed := flag.Int64("seed", time.Now().UnixNano(), "random seed")
	importRegistry := flag.Bool("import-registry", false, "import the JSON employee registry before seeding")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		log.Fatal("Error connecting to database: ", err)
	}
	defer db.Close()

	ctx := context.Background()
	employeeRepo := postgresql.NewEmployeeRepository(db)
	punchRepo := postgresql.NewPunchRepository(db)

	if *importRegistry {
		entries, err := roster.Load(cfg.Registry.Path)
		if err != nil {
			log.Fatal("Error loading employee registry: ", err)
		}
		result, err := employeeService.NewEmployeeService(db, employeeRepo).Import(ctx, entries)
		if err != nil {
			log.Fatal("Error importing employee registry: ", err)
		}
		log.Printf("Registry imported: %d entries, %d skipped", result.Imported, result.Skipped)
	}

	employees, err := employeeRepo.ListAll(ctx)
	if err != nil {
		log.Fatal("Error loading roster: ", err)
	}
	if len(employees) == 0 {
		log.Fatal("Roster is empty; run with -import-registry or create employees first")
	}

	gen := mockdata.NewGenerator(mockdata.Config{
		Days:        *days,
		WeekendDays: cfg.Attendance.WeekendDays,
		AbsenceRate: *absenceRate,
		LateRate:    *lateRate,
	}, rand.New(rand.NewSource(*seed)))

	records := gen.Generate(employees, time.Now())
	inserted, err := punchRepo.CreateBatch(ctx, mockdata.ToPunches(records))
	if err != nil {
		log.Fatal("Error inserting punches: ", err)
	}

	log.Printf("Seeded %d punches for %d employees over %d days (seed %d)",
		inserted, len(employees), *days, *seed)

	summary := attendance.Summarize(records)
	for _, sc := range summary.Statuses {
		log.Printf("  %-12s %5d  %6.2f%%", sc.Status, sc.Count, sc.Percent)
	}
}
