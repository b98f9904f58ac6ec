package http

import (
	"log/slog"
	"os"

	"github.com/garagedesk/garage-backend-go/internal/config"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
)

func NewRouter(
	cfg *config.Config,
	calendarHandler CalendarHandler,
	employeeHandler EmployeeHandler,
	attendanceHandler AttendanceHandler,
	payrollHandler PayrollHandler,
	bookingHandler BookingHandler,
	quotationHandler QuotationHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "garage-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/calendar", func(r chi.Router) {
			r.Get("/", calendarHandler.GetSettings)
			r.Put("/weekdays", calendarHandler.UpdateWeekdays)
			r.Post("/holidays", calendarHandler.AddHoliday)
			r.Delete("/holidays/{date}", calendarHandler.RemoveHoliday)
			r.Post("/holidays/import", calendarHandler.ImportHolidays)
		})

		r.Route("/employees", func(r chi.Router) {
			r.Post("/", employeeHandler.Create)
			r.Get("/", employeeHandler.List)
			r.Get("/{id}", employeeHandler.GetByID)
			r.Put("/{id}", employeeHandler.Update)
			r.Delete("/{id}", employeeHandler.Deactivate)
		})

		r.Route("/attendance", func(r chi.Router) {
			r.Post("/", attendanceHandler.Mark)
			r.Get("/", attendanceHandler.ListMonth)
			r.Get("/day", attendanceHandler.ListDay)
			r.Get("/summary", attendanceHandler.MonthlySummary)
			r.Get("/{id}", attendanceHandler.GetByID)
			r.Delete("/{id}", attendanceHandler.Delete)
		})

		r.Route("/payroll", func(r chi.Router) {
			r.Post("/preview", payrollHandler.Preview)
			r.Post("/", payrollHandler.Generate)
			r.Get("/", payrollHandler.List)
			r.Get("/{id}", payrollHandler.GetByID)
			r.Post("/{id}/recalculate", payrollHandler.Recalculate)
			r.Post("/{id}/approve", payrollHandler.Approve)
			r.Post("/{id}/pay", payrollHandler.MarkPaid)
			r.Delete("/{id}", payrollHandler.Delete)
		})

		r.Route("/bookings", func(r chi.Router) {
			r.Post("/", bookingHandler.Create)
			r.Get("/", bookingHandler.List)
			r.Get("/{id}", bookingHandler.GetByID)
			r.Put("/{id}", bookingHandler.Update)
			r.Post("/{id}/status", bookingHandler.Transition)
		})

		r.Route("/quotations", func(r chi.Router) {
			r.Post("/", quotationHandler.Create)
			r.Get("/", quotationHandler.List)
			r.Get("/{id}", quotationHandler.GetByID)
			r.Put("/{id}", quotationHandler.Update)
			r.Post("/{id}/send", quotationHandler.MarkSent)
			r.Post("/{id}/accept", quotationHandler.MarkAccepted)
			r.Post("/{id}/invoice", quotationHandler.ConvertToInvoice)
			r.Delete("/{id}", quotationHandler.Delete)
		})
	})
	return r
}
