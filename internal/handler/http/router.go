package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/joabe-nascimento/talents-flow/internal/config"
	"github.com/joabe-nascimento/talents-flow/internal/handler/http/middleware"
	"github.com/joabe-nascimento/talents-flow/internal/pkg/jwt"
)

type Handlers struct {
	Auth         AuthHandler
	Employee     EmployeeHandler
	Payroll      PayrollHandler
	TimeRecord   TimeRecordHandler
	Onboarding   OnboardingHandler
	Offboarding  OffboardingHandler
	Vacation     VacationHandler
	Review       ReviewHandler
	Notification NotificationHandler
	TwoFactor    TwoFactorHandler
}

func NewRouter(cfg *config.Config, jwtService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "talents-flow"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
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

		// Public
		r.Group(func(r chi.Router) {
			r.Post("/auth/login", h.Auth.Login)
			r.Post("/auth/refresh", h.Auth.Refresh)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService))

			r.Post("/auth/register", h.Auth.Register)
			r.Post("/auth/logout", h.Auth.Logout)

			r.Route("/employees", func(r chi.Router) {
				r.Post("/", h.Employee.CreateEmployee)
				r.Get("/", h.Employee.ListEmployees)
				r.Get("/{id}", h.Employee.GetEmployee)
				r.Put("/{id}", h.Employee.UpdateEmployee)
				r.Patch("/{id}/status", h.Employee.UpdateEmployeeStatus)
			})

			r.Route("/payrolls", func(r chi.Router) {
				r.Post("/", h.Payroll.CreateDraft)
				r.Post("/generate", h.Payroll.Generate)
				r.Get("/period", h.Payroll.ListByPeriod)
				r.Get("/period/total-paid", h.Payroll.TotalPaid)
				r.Get("/{id}", h.Payroll.GetPayroll)
				r.Put("/{id}/line-items", h.Payroll.UpdateLineItems)
				r.Post("/{id}/calculate", h.Payroll.Calculate)
				r.Post("/{id}/approve", h.Payroll.Approve)
				r.Post("/{id}/pay", h.Payroll.MarkPaid)
				r.Post("/{id}/cancel", h.Payroll.Cancel)
				r.Get("/employee/{employeeID}", h.Payroll.ListByEmployee)
			})

			r.Route("/time-records", func(r chi.Router) {
				r.Post("/clock-in", h.TimeRecord.ClockIn)
				r.Post("/{employeeID}/lunch-out", h.TimeRecord.LunchOut)
				r.Post("/{employeeID}/lunch-in", h.TimeRecord.LunchIn)
				r.Post("/{employeeID}/clock-out", h.TimeRecord.ClockOut)
				r.Post("/{id}/approve", h.TimeRecord.Approve)
				r.Post("/{id}/reject", h.TimeRecord.Reject)
				r.Get("/{employeeID}/today", h.TimeRecord.GetToday)
				r.Get("/{employeeID}/month", h.TimeRecord.ListByMonth)
				r.Get("/{employeeID}/totals", h.TimeRecord.Totals)
			})

			r.Route("/onboardings", func(r chi.Router) {
				r.Post("/", h.Onboarding.Start)
				r.Get("/active", h.Onboarding.ListActive)
				r.Get("/stats", h.Onboarding.Stats)
				r.Get("/{id}", h.Onboarding.GetOnboarding)
				r.Patch("/{id}/mentor", h.Onboarding.AssignMentor)
				r.Post("/tasks/{taskID}/complete", h.Onboarding.CompleteTask)
				r.Post("/tasks/{taskID}/skip", h.Onboarding.SkipTask)
				r.Get("/employee/{employeeID}", h.Onboarding.GetByEmployee)
			})

			r.Route("/offboardings", func(r chi.Router) {
				r.Post("/", h.Offboarding.Start)
				r.Get("/active", h.Offboarding.ListActive)
				r.Get("/stats", h.Offboarding.TerminationStats)
				r.Get("/{id}", h.Offboarding.GetOffboarding)
				r.Patch("/{id}/checklist", h.Offboarding.UpdateChecklist)
				r.Post("/{id}/exit-interview/schedule", h.Offboarding.ScheduleExitInterview)
				r.Post("/{id}/exit-interview/complete", h.Offboarding.CompleteExitInterview)
				r.Post("/{id}/complete", h.Offboarding.Complete)
				r.Get("/employee/{employeeID}", h.Offboarding.GetByEmployee)
			})

			r.Route("/vacations", func(r chi.Router) {
				r.Post("/", h.Vacation.CreateVacation)
				r.Get("/pending", h.Vacation.ListPending)
				r.Get("/{id}", h.Vacation.GetVacation)
				r.Post("/{id}/approve", h.Vacation.Approve)
				r.Post("/{id}/reject", h.Vacation.Reject)
				r.Post("/{id}/cancel", h.Vacation.Cancel)
				r.Get("/employee/{employeeID}", h.Vacation.ListByEmployee)
			})

			r.Route("/reviews", func(r chi.Router) {
				r.Post("/", h.Review.CreateReview)
				r.Get("/{id}", h.Review.GetReview)
				r.Put("/{id}", h.Review.UpdateReview)
				r.Post("/{id}/submit", h.Review.Submit)
				r.Post("/{id}/acknowledge", h.Review.Acknowledge)
				r.Get("/employee/{employeeID}", h.Review.ListByEmployee)
				r.Get("/employee/{employeeID}/average-rating", h.Review.AverageRating)
			})

			r.Route("/notifications", func(r chi.Router) {
				r.Post("/{id}/read", h.Notification.MarkRead)
				r.Get("/employee/{employeeID}", h.Notification.ListNotifications)
				r.Post("/employee/{employeeID}/read-all", h.Notification.MarkAllRead)
				r.Get("/employee/{employeeID}/unread-count", h.Notification.CountUnread)
			})

			r.Route("/two-factor", func(r chi.Router) {
				r.Post("/enable", h.TwoFactor.Enable)
				r.Post("/verify-setup", h.TwoFactor.VerifySetup)
				r.Post("/send-code", h.TwoFactor.SendCode)
				r.Post("/validate", h.TwoFactor.ValidateLogin)
				r.Delete("/", h.TwoFactor.Disable)
				r.Get("/status", h.TwoFactor.Status)
			})
		})
	})
	return r
}
