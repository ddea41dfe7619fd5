package main

import (
	"fmt"
	"net/http"

	"github.com/attendly/attendance-backend-go/internal/config"
	appHTTP "github.com/attendly/attendance-backend-go/internal/handler/http"
	"github.com/attendly/attendance-backend-go/internal/pkg/cron"
	"github.com/attendly/attendance-backend-go/internal/pkg/database"
	"github.com/attendly/attendance-backend-go/internal/repository/postgresql"
	attendanceService "github.com/attendly/attendance-backend-go/internal/service/attendance"
	employeeService "github.com/attendly/attendance-backend-go/internal/service/employee"
	reportService "github.com/attendly/attendance-backend-go/internal/service/report"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	employeeRepo := postgresql.NewEmployeeRepository(db)
	punchRepo := postgresql.NewPunchRepository(db)

	policy := attendanceService.Policy{
		PresentHours: cfg.Attendance.PresentHours,
		PartialHours: cfg.Attendance.PartialHours,
	}

	attendanceSvc := attendanceService.NewAttendanceService(punchRepo, policy)
	employeeSvc := employeeService.NewEmployeeService(db, employeeRepo)
	reportSvc := reportService.NewReportService(attendanceSvc)

	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc, reportSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)

	scheduler := cron.NewScheduler()
	cron.NewAttendanceJobs(punchRepo, employeeRepo).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(cfg.App.FrontendURL, attendanceHandler, employeeHandler)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
