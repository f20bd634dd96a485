package internal

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/LukeSky25/Material-Share-App/config"
	"github.com/LukeSky25/Material-Share-App/internal/application/ports"
	"github.com/LukeSky25/Material-Share-App/internal/application/services"
	"github.com/LukeSky25/Material-Share-App/internal/infrastructure/cep"
	"github.com/LukeSky25/Material-Share-App/internal/infrastructure/db/postgres"
	accountRepo "github.com/LukeSky25/Material-Share-App/internal/infrastructure/db/postgres/account"
	categoryRepo "github.com/LukeSky25/Material-Share-App/internal/infrastructure/db/postgres/category"
	donationRepo "github.com/LukeSky25/Material-Share-App/internal/infrastructure/db/postgres/donation"
	personRepo "github.com/LukeSky25/Material-Share-App/internal/infrastructure/db/postgres/person"
	"github.com/LukeSky25/Material-Share-App/internal/infrastructure/jwt"
	"github.com/LukeSky25/Material-Share-App/internal/infrastructure/metrics"
	"github.com/LukeSky25/Material-Share-App/internal/infrastructure/mq"
	"github.com/LukeSky25/Material-Share-App/internal/infrastructure/session"
	"github.com/LukeSky25/Material-Share-App/internal/interface/api/rest"
	"github.com/LukeSky25/Material-Share-App/internal/interface/api/rest/middleware"
	"github.com/LukeSky25/Material-Share-App/pkg/rmqconsumer"
)

type App struct {
	logger     *zap.Logger
	cfg        config.Config
	db         *pgxpool.Pool
	sessions   *session.Store
	cepClient  *cep.Client
	httpSrv    *http.Server
	router     *gin.Engine
	mCounter   *prometheus.CounterVec
	mq         ports.RabbitMQ
	mqConsumer ports.RMQConsumer
	amqpDSN    string
}

func NewApp(ctx context.Context) (*App, error) {
	// logger
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("cannot initialize zap logger: %v", err)
	}
	defer logger.Sync()

	// config
	if err = godotenv.Load(".env"); err != nil {
		logger.Fatal("error loading .env file", zap.Error(err))
	}
	cfg := config.Load()

	// metrics
	mCounter := metrics.NewCounter()

	// router
	switch cfg.App.Env {
	case gin.ReleaseMode, "prod", "production":
		gin.SetMode(gin.ReleaseMode)
	case gin.TestMode:
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.DebugMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogGin(logger, mCounter))

	// httpServer
	httpSrv := &http.Server{
		Addr:    ":" + cfg.App.Port,
		Handler: r,
	}

	// db
	dbDsn, err := cfg.DBDSN()
	if err != nil {
		logger.Fatal("DB config error", zap.Error(err))
	}
	dbPool, err := postgres.New(ctx, logger, dbDsn)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}

	// redis session store
	sessions, err := session.New(ctx, logger, cfg.Redis)
	if err != nil {
		logger.Fatal("failed to connect to redis", zap.Error(err))
	}

	// viacep
	cepClient := cep.New(logger, cfg.CEP)

	// rabbitMQ
	rabbitDsn, err := cfg.AMQPDSN()
	if err != nil {
		logger.Fatal("RabbitMQ config error", zap.Error(err))
	}
	rbMQ := mq.New(cfg.MQ, logger)
	if err = rbMQ.Connect(ctx, rabbitDsn); err != nil {
		logger.Fatal("failed to connect to rabbitMQ", zap.Error(err))
	}
	if err = rbMQ.Init(); err != nil {
		logger.Fatal("failed init rabbitMQ", zap.Error(err))
	}

	return &App{
		logger:    logger,
		cfg:       cfg,
		db:        dbPool,
		sessions:  sessions,
		cepClient: cepClient,
		httpSrv:   httpSrv,
		router:    r,
		mCounter:  mCounter,
		mq:        rbMQ,
		amqpDSN:   rabbitDsn,
	}, nil
}

func (a *App) Close() {
	if a.db != nil {
		a.db.Close()
	}
	if a.sessions != nil {
		_ = a.sessions.Close()
	}
	if a.mq.GetConn() != nil {
		a.mq.GetConn().Close()
	}
	if a.logger != nil {
		_ = a.logger.Sync()
	}
}

// Run launches the http server, the event publisher and the interest
// consumer under one errgroup so a single context drives shutdown.
func (a *App) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGUSR1)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		a.logger.Info("starting "+a.cfg.App.Name, zap.String("addr", a.cfg.App.Host+":"+a.cfg.App.Port))
		if err := a.httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server "+a.cfg.App.Name+" error: %w", err)
		}

		return nil
	})

	g.Go(func() error {
		a.mq.PublisherWorker(ctx)
		return nil
	})

	g.Go(func() error {
		a.mqConsumer.DeliveryWorker(ctx)
		return nil
	})

	<-ctx.Done()

	a.logger.Info("shutting down " + a.cfg.App.Name + " gracefully...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if a.httpSrv != nil {
		if err := a.httpSrv.Shutdown(shutdownCtx); err != nil {
			a.logger.Error("http server shutdown "+a.cfg.App.Name+" error", zap.Error(err))
			return err
		}
	}

	if err := g.Wait(); err != nil {
		a.logger.Error(a.cfg.App.Name+" returning an error", zap.Error(err))
		return err
	}

	a.logger.Info(a.cfg.App.Name + " gracefully stopped")

	return nil
}

func (a *App) InitControllers() error {
	// repos
	accounts := accountRepo.NewRepository(a.db)
	persons := personRepo.NewRepository(a.db)
	categories := categoryRepo.NewRepository(a.db)
	donations := donationRepo.NewRepository(a.db)

	// services
	jwtService := jwt.New(a.cfg.App.JWTSecret)
	authService := services.NewAuthService(jwtService)
	accountService := services.NewAccountService(accounts, a.sessions, a.logger, a.mCounter)
	personService := services.NewPersonService(persons, a.sessions, a.logger)
	categoryService := services.NewCategoryService(categories)
	donationService := services.NewDonationService(donations, categories, a.mq, a.logger, a.mCounter)
	signupValidator := services.NewSignupValidator(a.cepClient)
	signupService := services.NewSignupService(accounts, persons, signupValidator, a.logger, a.mCounter)

	// interest consumer feeds the donation lifecycle
	consumer := rmqconsumer.New(a.cfg.MQ, a.logger, a.mq.GetConn(),
		func(ctx context.Context, donationID, beneficiaryID uuid.UUID) error {
			_, err := donationService.RequestDonation(ctx, donationID, beneficiaryID)
			return err
		})
	if err := consumer.Connect(a.amqpDSN); err != nil {
		return fmt.Errorf("rabbitMQ consumer connect: %w", err)
	}
	if err := consumer.Init(); err != nil {
		return fmt.Errorf("rabbitMQ consumer init: %w", err)
	}
	a.mqConsumer = consumer

	// controllers
	rest.NewAuthController(a.router, a.logger, accountService, personService, authService, a.sessions, jwtService)
	rest.NewSignupController(a.router, a.logger, signupService)
	rest.NewAccountController(a.router, accountService, a.logger, jwtService)
	rest.NewPersonController(a.router, personService, donationService, a.logger, jwtService)
	rest.NewCategoryController(a.router, categoryService, a.logger)
	rest.NewDonationController(a.router, donationService, a.logger, jwtService)

	// ops
	a.router.GET(rest.RouteHealth, func(c *gin.Context) { c.Status(http.StatusOK) })
	a.router.GET(rest.RouteMetrics, gin.WrapH(promhttp.Handler()))

	return nil
}

func (a *App) Logger() *zap.Logger { return a.logger }
