package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/workpulse-hr/paytime-backend-go/internal/config"
	"github.com/workpulse-hr/paytime-backend-go/internal/handler/http/middleware"
	"github.com/workpulse-hr/paytime-backend-go/internal/pkg/token"
)

func NewRouter(
	cfg *config.Config,
	tokenService token.Service,
	settingsHandler SettingsHandler,
	employeeHandler EmployeeHandler,
	attendanceHandler AttendanceHandler,
	importHandler ImportHandler,
	overtimeHandler OvertimeHandler,
	payrollHandler PayrollHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "paytime-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.App.CORSAllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(tokenService.JWTAuth()))
			r.Use(middleware.AuthRequired(tokenService.JWTAuth()))

			r.Route("/settings", func(r chi.Router) {
				r.Get("/", settingsHandler.GetSettings)
				r.Put("/", settingsHandler.UpdateSettings)
			})

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", employeeHandler.ListEmployees)
				r.Post("/", employeeHandler.CreateEmployee)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", employeeHandler.GetEmployee)
					r.Put("/", employeeHandler.UpdateEmployee)
					r.Delete("/", employeeHandler.DeleteEmployee)
				})
			})

			r.Route("/attendances", func(r chi.Router) {
				r.Get("/", attendanceHandler.ListAttendances)
				r.Post("/", attendanceHandler.CreateAttendance)
				r.Post("/import", importHandler.ImportAttendances)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", attendanceHandler.GetAttendance)
					r.Put("/", attendanceHandler.UpdateAttendance)
					r.Delete("/", attendanceHandler.DeleteAttendance)
				})
			})

			r.Route("/overtime", func(r chi.Router) {
				r.Get("/", overtimeHandler.ListOvertimes)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", overtimeHandler.GetOvertime)
					r.Post("/approve", overtimeHandler.ApproveOvertime)
					r.Post("/reject", overtimeHandler.RejectOvertime)
				})
			})

			r.Route("/payslips", func(r chi.Router) {
				r.Get("/", payrollHandler.ListPayslips)
				r.Post("/generate", payrollHandler.GeneratePayslips)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", payrollHandler.GetPayslip)
					r.Delete("/", payrollHandler.DeletePayslip)
					r.Get("/pdf", payrollHandler.DownloadPayslipPDF)
				})
			})
		})
	})
	return r
}
