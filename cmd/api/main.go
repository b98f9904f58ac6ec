package main

import (
	"fmt"
	"net/http"

	"github.com/garagedesk/garage-backend-go/internal/config"
	appHTTP "github.com/garagedesk/garage-backend-go/internal/handler/http"
	"github.com/garagedesk/garage-backend-go/internal/pkg/cron"
	"github.com/garagedesk/garage-backend-go/internal/pkg/database"
	"github.com/garagedesk/garage-backend-go/internal/repository/postgresql"
	attendanceService "github.com/garagedesk/garage-backend-go/internal/service/attendance"
	bookingService "github.com/garagedesk/garage-backend-go/internal/service/booking"
	calendarService "github.com/garagedesk/garage-backend-go/internal/service/calendar"
	employeeService "github.com/garagedesk/garage-backend-go/internal/service/employee"
	payrollService "github.com/garagedesk/garage-backend-go/internal/service/payroll"
	quotationService "github.com/garagedesk/garage-backend-go/internal/service/quotation"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn, database.PoolConfig{
		MaxConns: cfg.Database.MaxConns,
		MinConns: cfg.Database.MinConns,
	})
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	calendarRepo := postgresql.NewCalendarRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	salaryRepo := postgresql.NewSalaryRepository(db)
	bookingRepo := postgresql.NewBookingRepository(db)
	quotationRepo := postgresql.NewQuotationRepository(db)

	calculator := payrollService.NewCalculator()

	calendarSvc := calendarService.NewSettingsService(db, calendarRepo)
	employeeSvc := employeeService.NewEmployeeService(db, employeeRepo)
	attendanceSvc := attendanceService.NewAttendanceService(db, attendanceRepo, employeeRepo, calendarRepo, calculator)
	payrollSvc := payrollService.NewPayrollService(db, salaryRepo, employeeRepo, attendanceRepo, calendarRepo, calculator)
	bookingSvc := bookingService.NewBookingService(db, bookingRepo, employeeRepo)
	quotationSvc := quotationService.NewQuotationService(db, quotationRepo)

	calendarHandler := appHTTP.NewCalendarHandler(calendarSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)
	bookingHandler := appHTTP.NewBookingHandler(bookingSvc)
	quotationHandler := appHTTP.NewQuotationHandler(quotationSvc)

	scheduler := cron.NewScheduler()
	bookingJobs := cron.NewBookingJobs(bookingRepo, cfg.Cron)
	bookingJobs.RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(
		cfg,
		calendarHandler,
		employeeHandler,
		attendanceHandler,
		payrollHandler,
		bookingHandler,
		quotationHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
