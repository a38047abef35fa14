package main

import (
	"os"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"

	httpadp "tradecredit-backend/internal/adapter/http"
	appmw "tradecredit-backend/internal/adapter/middleware"
	"tradecredit-backend/internal/adapter/repository/mysql"
	"tradecredit-backend/internal/config"
	"tradecredit-backend/internal/infrastructure/cache"
	"tradecredit-backend/internal/infrastructure/db"
	"tradecredit-backend/internal/jobs"
	"tradecredit-backend/internal/usecase/assessment"
	"tradecredit-backend/internal/usecase/dashboard"
	"tradecredit-backend/internal/usecase/directory"
	"tradecredit-backend/internal/usecase/identity"
	"tradecredit-backend/internal/usecase/ledger"
	paymentuc "tradecredit-backend/internal/usecase/payment"
	"tradecredit-backend/internal/usecase/trade"
)

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})
	if lvl, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL")); err == nil {
		log.SetLevel(lvl)
	}

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN(), log)
	if err != nil {
		log.Fatalf("mysql: %v", err)
	}
	if err := db.Migrate(gdb); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Fatalf("redis: %v", err)
	}

	// repositories + unit of work
	profiles := mysql.NewProfileRepository(gdb)
	dues := mysql.NewDueRepository(gdb)
	transactions := mysql.NewTransactionRepository(gdb)
	credits := mysql.NewCreditRepository(gdb)
	tx := mysql.NewGormUoW(gdb)

	// usecases
	identityUC := identity.NewUsecase(profiles, tx, cfg.JWTSecret, log)
	ledgerUC := ledger.NewUsecase(dues, profiles, tx)
	paymentUC := paymentuc.NewUsecase(tx, log)
	dashboardUC := dashboard.NewUsecase(tx)
	directoryUC := directory.NewUsecase(profiles, dues)
	tradeUC := trade.NewUsecase(transactions, profiles)
	assessmentUC := assessment.NewUsecase(profiles, credits, tx)

	// handlers
	h := httpadp.NewHandler()
	authH := httpadp.NewAuthHandler(identityUC)
	dueH := httpadp.NewDueHandler(ledgerUC, paymentUC)
	dashH := httpadp.NewDashboardHandler(dashboardUC)
	retailerH := httpadp.NewRetailerHandler(directoryUC)
	txH := httpadp.NewTransactionHandler(tradeUC)
	assessH := httpadp.NewAssessmentHandler(assessmentUC)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(echomw.Logger(), echomw.Recover())

	e.GET("/health", h.Health)

	// public auth routes
	e.POST("/auth/register", authH.Register)
	e.POST("/auth/register/fintech", authH.RegisterFintech)
	e.POST("/auth/login", authH.Login)

	// authenticated routes; mutations also go through the idempotency layer
	auth := appmw.Auth(identityUC, profiles)
	idemp := appmw.Idempotency(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second, log)

	api := e.Group("", auth)
	api.GET("/dashboard/stats", dashH.Stats)
	api.GET("/dashboard/analytics", dashH.Analytics)

	api.GET("/retailers", retailerH.List)
	api.GET("/retailers/search", retailerH.Search)
	api.GET("/retailers/recent", retailerH.Recent)
	api.GET("/retailers/:retailer_id", retailerH.Details)

	api.GET("/dues", dueH.ListDues)
	api.POST("/dues", dueH.CreateDue, idemp)
	api.GET("/dues/:due_id", dueH.GetDue)
	api.PUT("/dues/:due_id", dueH.UpdateDue, idemp)
	api.DELETE("/dues/:due_id", dueH.DeleteDue, idemp)
	api.POST("/dues/:due_id/pay", dueH.Pay, idemp)

	api.GET("/transactions", txH.List)
	api.POST("/transactions", txH.Record, idemp)
	api.GET("/transactions/history", txH.History)

	api.POST("/credit-assessment/request", assessH.Submit, idemp)
	api.GET("/credit-assessment/status", assessH.Status)

	// overdue promotion sweep
	sweeper := jobs.NewOverdueSweeper(ledgerUC, log)
	if err := sweeper.Start(cfg.OverdueSweepSpec); err != nil {
		log.Fatalf("sweeper: %v", err)
	}
	defer sweeper.Stop()

	addr := ":" + cfg.AppPort
	log.Infof("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
