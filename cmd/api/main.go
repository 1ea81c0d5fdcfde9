package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/workpulse-hr/paytime-backend-go/internal/config"
	appHTTP "github.com/workpulse-hr/paytime-backend-go/internal/handler/http"
	"github.com/workpulse-hr/paytime-backend-go/internal/pkg/cron"
	"github.com/workpulse-hr/paytime-backend-go/internal/pkg/database"
	"github.com/workpulse-hr/paytime-backend-go/internal/pkg/token"
	"github.com/workpulse-hr/paytime-backend-go/internal/repository/postgresql"
	attendanceService "github.com/workpulse-hr/paytime-backend-go/internal/service/attendance"
	employeeService "github.com/workpulse-hr/paytime-backend-go/internal/service/employee"
	overtimeService "github.com/workpulse-hr/paytime-backend-go/internal/service/overtime"
	payrollService "github.com/workpulse-hr/paytime-backend-go/internal/service/payroll"
	"github.com/workpulse-hr/paytime-backend-go/internal/service/punchimport"
	settingsService "github.com/workpulse-hr/paytime-backend-go/internal/service/settings"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	if err := database.RunMigrations(cfg.Database.MigrationsPath, dsn); err != nil {
		log.Fatal("Failed to run migrations: ", err)
	}

	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	settingsRepo := postgresql.NewSettingsRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	overtimeRepo := postgresql.NewOvertimeRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)

	tokenService := token.NewService(cfg.JWT.Secret)
	calculator := payrollService.NewCalculator()

	settingsSvc := settingsService.NewSettingsService(db, settingsRepo)
	employeeSvc := employeeService.NewEmployeeService(db, employeeRepo)
	attendanceSvc := attendanceService.NewAttendanceService(db, attendanceRepo, overtimeRepo, employeeRepo, settingsRepo, calculator)
	overtimeSvc := overtimeService.NewOvertimeService(db, overtimeRepo)
	payrollSvc := payrollService.NewPayrollService(db, payrollRepo, attendanceRepo, employeeRepo, settingsRepo, calculator)
	importSvc := punchimport.NewImportService(employeeRepo, settingsRepo, attendanceSvc)

	settingsHandler := appHTTP.NewSettingsHandler(settingsSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	importHandler := appHTTP.NewImportHandler(importSvc)
	overtimeHandler := appHTTP.NewOvertimeHandler(overtimeSvc)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)

	router := appHTTP.NewRouter(
		cfg,
		tokenService,
		settingsHandler,
		employeeHandler,
		attendanceHandler,
		importHandler,
		overtimeHandler,
		payrollHandler,
	)

	scheduler := cron.NewScheduler()
	attendanceJobs := cron.NewAttendanceJobs(attendanceRepo, employeeRepo, settingsRepo, calculator, db)
	attendanceJobs.RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	fmt.Println("Starting server on", addr)
	if err := server.ListenAndServe(); err != nil {
		log.Fatal("Server stopped: ", err)
	}
}
