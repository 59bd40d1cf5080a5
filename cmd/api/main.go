package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"

	"github.com/pizzapie/pizzapie-go/internal/config"
	"github.com/pizzapie/pizzapie-go/internal/email"
	"github.com/pizzapie/pizzapie-go/internal/handler"
	"github.com/pizzapie/pizzapie-go/internal/middleware"
	"github.com/pizzapie/pizzapie-go/internal/repository"
	"github.com/pizzapie/pizzapie-go/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg := config.Load()

	db, err := repository.NewDB(cfg.DatabaseDSN)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}

	userRepo := repository.NewUserRepository(db)
	foodRepo := repository.NewFoodRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	reviewRepo := repository.NewReviewRepository(db)

	mail := email.NewSMTPSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword, cfg.MailFrom)

	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.TokenTTL)
	otpService := service.NewOTPService(userRepo, mail, cfg.OTPTTL)
	foodService := service.NewFoodService(foodRepo, reviewRepo)
	orderService := service.NewOrderService(orderRepo, foodRepo)
	reviewService := service.NewReviewService(reviewRepo, foodRepo)

	authHandler := handler.NewAuthHandler(authService, otpService)
	userHandler := handler.NewUserHandler(authService)
	foodHandler := handler.NewFoodHandler(foodService)
	orderHandler := handler.NewOrderHandler(orderService)
	reviewHandler := handler.NewReviewHandler(reviewService)

	authenticate := middleware.Authenticate(cfg.JWTSecret)
	adminOnly := middleware.AdminOnly(userRepo)

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Route("/api/users", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(middleware.RateLimit(5, 10))
			r.Post("/signup", authHandler.HandleSignup)
			r.Post("/login", authHandler.HandleLogin)
			r.Post("/send-verification-otp", authHandler.HandleSendVerificationOTP)
			r.Post("/verify-email", authHandler.HandleVerifyEmail)
			r.Post("/send-forgot-password-otp", authHandler.HandleSendForgotPasswordOTP)
			r.Post("/reset-password", authHandler.HandleResetPassword)
		})

		r.Group(func(r chi.Router) {
			r.Use(authenticate)
			r.Get("/me", userHandler.HandleMe)
			r.Put("/me", userHandler.HandleUpdateName)
			r.Put("/me/profile-picture", userHandler.HandleUpdateProfilePicture)

			r.With(adminOnly).Get("/", userHandler.HandleList)
		})
	})

	r.Route("/api/foods", func(r chi.Router) {
		r.Use(authenticate)
		r.Get("/categories", foodHandler.HandleCategories)
		r.Get("/", foodHandler.HandleList)
		r.Get("/{id}", foodHandler.HandleGet)

		r.Group(func(r chi.Router) {
			r.Use(adminOnly)
			r.Post("/", foodHandler.HandleCreate)
			r.Put("/{id}", foodHandler.HandleUpdate)
			r.Delete("/{id}", foodHandler.HandleDelete)
		})
	})

	r.Route("/api/orders", func(r chi.Router) {
		r.Use(authenticate)
		r.Get("/my-orders", orderHandler.HandleListMine)
		r.Post("/", orderHandler.HandlePlace)
		r.Get("/{id}", orderHandler.HandleGet)

		r.Group(func(r chi.Router) {
			r.Use(adminOnly)
			r.Get("/", orderHandler.HandleListAll)
			r.Put("/{id}/status", orderHandler.HandleUpdateStatus)
		})
	})

	r.Route("/api/review", func(r chi.Router) {
		r.Get("/{foodId}", reviewHandler.HandleListForFood)

		r.Group(func(r chi.Router) {
			r.Use(authenticate)
			r.Post("/", reviewHandler.HandleAdd)
			r.Delete("/{id}", reviewHandler.HandleDelete)
		})
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}
