package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/joabe-nascimento/talents-flow/internal/config"
	appHTTP "github.com/joabe-nascimento/talents-flow/internal/handler/http"
	"github.com/joabe-nascimento/talents-flow/internal/pkg/clock"
	"github.com/joabe-nascimento/talents-flow/internal/pkg/database"
	"github.com/joabe-nascimento/talents-flow/internal/pkg/email"
	"github.com/joabe-nascimento/talents-flow/internal/pkg/jwt"
	"github.com/joabe-nascimento/talents-flow/internal/repository/postgresql"
	redisRepo "github.com/joabe-nascimento/talents-flow/internal/repository/redis"
	authService "github.com/joabe-nascimento/talents-flow/internal/service/auth"
	employeeService "github.com/joabe-nascimento/talents-flow/internal/service/employee"
	notificationService "github.com/joabe-nascimento/talents-flow/internal/service/notification"
	offboardingService "github.com/joabe-nascimento/talents-flow/internal/service/offboarding"
	onboardingService "github.com/joabe-nascimento/talents-flow/internal/service/onboarding"
	payrollService "github.com/joabe-nascimento/talents-flow/internal/service/payroll"
	reviewService "github.com/joabe-nascimento/talents-flow/internal/service/review"
	timeRecordService "github.com/joabe-nascimento/talents-flow/internal/service/timerecord"
	twoFactorService "github.com/joabe-nascimento/talents-flow/internal/service/twofactor"
	vacationService "github.com/joabe-nascimento/talents-flow/internal/service/vacation"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	redisClient, err := redisRepo.NewClient(cfg.Redis)
	if err != nil {
		log.Fatal("Failed to connect to redis: ", err)
	}

	employeeRepo := postgresql.NewEmployeeRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)
	timeRecordRepo := postgresql.NewTimeRecordRepository(db)
	onboardingRepo := postgresql.NewOnboardingRepository(db)
	onboardingTaskRepo := postgresql.NewOnboardingTaskRepository(db)
	onboardingTemplateRepo := postgresql.NewOnboardingTemplateRepository(db)
	offboardingRepo := postgresql.NewOffboardingRepository(db)
	vacationRepo := postgresql.NewVacationRepository(db)
	reviewRepo := postgresql.NewReviewRepository(db)
	notificationRepo := postgresql.NewNotificationRepository(db)
	twoFactorRepo := postgresql.NewTwoFactorRepository(db)
	userRepo := postgresql.NewUserRepository(db)
	codeStore := redisRepo.NewCodeStore(redisClient)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	var emailService email.EmailService
	if cfg.SMTP.Host != "" {
		emailService = email.NewEmailService(cfg.SMTP)
	} else {
		emailService = email.Noop{}
	}

	clk := clock.New()
	taxCalculator := payrollService.NewTaxCalculator()

	notificationSvc := notificationService.NewNotificationService(notificationRepo, clk)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo, clk)
	payrollSvc := payrollService.NewPayrollService(payrollRepo, employeeRepo, taxCalculator, notificationSvc, clk)
	timeRecordSvc := timeRecordService.NewTimeRecordService(timeRecordRepo, cfg.WorkDay, clk)
	onboardingSvc := onboardingService.NewOnboardingService(
		onboardingRepo,
		onboardingTaskRepo,
		onboardingTemplateRepo,
		employeeRepo,
		notificationSvc,
		clk,
	)
	offboardingSvc := offboardingService.NewOffboardingService(offboardingRepo, employeeRepo, notificationSvc, clk)
	vacationSvc := vacationService.NewVacationService(vacationRepo, employeeRepo, notificationSvc, clk)
	reviewSvc := reviewService.NewReviewService(reviewRepo, employeeRepo, notificationSvc, clk)
	twoFactorSvc := twoFactorService.NewTwoFactorService(twoFactorRepo, codeStore, employeeRepo, emailService, clk)
	authSvc := authService.NewAuthService(userRepo, twoFactorSvc, jwtService, clk)

	handlers := appHTTP.Handlers{
		Auth:         appHTTP.NewAuthHandler(authSvc),
		Employee:     appHTTP.NewEmployeeHandler(employeeSvc),
		Payroll:      appHTTP.NewPayrollHandler(payrollSvc),
		TimeRecord:   appHTTP.NewTimeRecordHandler(timeRecordSvc),
		Onboarding:   appHTTP.NewOnboardingHandler(onboardingSvc),
		Offboarding:  appHTTP.NewOffboardingHandler(offboardingSvc),
		Vacation:     appHTTP.NewVacationHandler(vacationSvc),
		Review:       appHTTP.NewReviewHandler(reviewSvc),
		Notification: appHTTP.NewNotificationHandler(notificationSvc),
		TwoFactor:    appHTTP.NewTwoFactorHandler(twoFactorSvc),
	}

	router := appHTTP.NewRouter(cfg, jwtService, handlers)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
