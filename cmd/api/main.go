package main

import (
	"log"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/shopspring/decimal"

	httpadp "loandesk-backend/internal/adapter/http"
	"loandesk-backend/internal/adapter/middleware"
	"loandesk-backend/internal/adapter/repository/mysql"
	"loandesk-backend/internal/config"
	"loandesk-backend/internal/domain/user"
	"loandesk-backend/internal/infrastructure/cache"
	"loandesk-backend/internal/infrastructure/db"
	authuc "loandesk-backend/internal/usecase/auth"
	loanuc "loandesk-backend/internal/usecase/loan"
	"loandesk-backend/internal/usecase/processing"
	requestuc "loandesk-backend/internal/usecase/request"
	useruc "loandesk-backend/internal/usecase/user"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.Fatalf("mysql: %v", err)
	}
	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Fatalf("redis: %v", err)
	}

	users := mysql.NewUserRepository(gdb)
	requests := mysql.NewRequestRepository(gdb)
	loans := mysql.NewLoanRepository(gdb)
	txm := mysql.NewGormUoW(gdb)

	seedWallet, err := decimal.NewFromString(cfg.BankerSeedWallet)
	if err != nil {
		log.Fatalf("BANKER_SEED_WALLET: %v", err)
	}
	jwtTTL := time.Duration(cfg.JWTTTLHours) * time.Hour

	authUC := authuc.NewUsecase(users, cfg.JWTSecret, jwtTTL, seedWallet)
	userUC := useruc.NewUsecase(users)
	requestUC := requestuc.NewUsecase(requests, users)
	processingUC := processing.NewUsecase(txm)
	loanUC := loanuc.NewUsecase(loans, users)

	h := httpadp.NewHandler()
	authH := httpadp.NewAuthHandler(authUC)
	userH := httpadp.NewUserHandler(userUC)
	requestH := httpadp.NewRequestHandler(requestUC, processingUC)
	loanH := httpadp.NewLoanHandler(loanUC)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(echomw.Logger(), echomw.Recover(), echomw.CORS())

	auth := middleware.Auth(cfg.JWTSecret)
	idemp := middleware.Idempotency(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second)

	// routes
	e.GET("/health", h.Health)

	api := e.Group("/api")
	api.POST("/auth/register", authH.Register)
	api.POST("/auth/login", authH.Login)

	usersG := api.Group("/users", auth)
	usersG.GET("", userH.List)
	usersG.PUT("/:id", userH.Update, middleware.Roles(user.RoleAdmin))
	usersG.DELETE("/:id", userH.Delete, middleware.Roles(user.RoleAdmin))

	reqG := api.Group("/loan-requests", auth)
	reqG.POST("", requestH.Submit, middleware.Roles(user.RoleCustomer), idemp)
	reqG.GET("", requestH.ListPending, middleware.Roles(user.RoleBanker, user.RoleAdmin))
	reqG.GET("/customer-pending", requestH.ListCustomerPending, middleware.Roles(user.RoleCustomer))
	reqG.GET("/all", requestH.ListAll, middleware.Roles(user.RoleAdmin))
	reqG.PUT("/:id/process", requestH.Process, middleware.Roles(user.RoleBanker), idemp)

	loanG := api.Group("/loans", auth)
	loanG.GET("", loanH.List, middleware.Roles(user.RoleBanker, user.RoleAdmin))
	loanG.GET("/customer/:customerId", loanH.ListByCustomer)
	loanG.GET("/:id/schedule", loanH.Schedule)
	loanG.PUT("/:id/status", loanH.UpdateStatus, middleware.Roles(user.RoleBanker), idemp)

	addr := ":" + cfg.AppPort
	log.Printf("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
