package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/uptrace/bun/migrate"

	"github.com/vaultbanking/vaulthub.go/bank"
	"github.com/vaultbanking/vaulthub.go/db"
	"github.com/vaultbanking/vaulthub.go/db/migrations"
	"github.com/vaultbanking/vaulthub.go/lib/logging"
	"github.com/vaultbanking/vaulthub.go/lib/service"
	"github.com/vaultbanking/vaulthub.go/lib/tokens"
	"github.com/vaultbanking/vaulthub.go/lib/transport"
	"github.com/vaultbanking/vaulthub.go/projection"
	"github.com/vaultbanking/vaulthub.go/rabbitmq"
)

// @title        Vaulthub.go
// @version      1.2.0
// @description  Lending vault management hub fronting a core banking API.

// @BasePath  /

// @securitydefinitions.oauth2.password  OAuth2Password
// @tokenUrl                             /auth
// @schemes                              https http
func main() {

	c := &service.Config{}

	// Load configuration from environment variables
	err := godotenv.Load(".env")
	if err != nil {
		fmt.Println("Failed to load .env file")
	}
	err = envconfig.Process("", c)
	if err != nil {
		log.Fatalf("Error loading environment variables: %v", err)
	}

	// Setup logging to STDOUT or a configured log file
	logger := logging.Logger(c.LogFilePath)

	// Open a DB connection based on the configured DATABASE_URI
	dbConn, err := db.Open(c)
	if err != nil {
		logger.Fatalf("Error initializing db connection: %v", err)
	}

	// Migrate the DB
	startupCtx := context.Background()
	migrator := migrate.NewMigrator(dbConn, migrations.Migrations)
	err = migrator.Init(startupCtx)
	if err != nil {
		logger.Fatalf("Error initializing db migrator: %v", err)
	}
	_, err = migrator.Migrate(startupCtx)
	if err != nil {
		logger.Fatalf("Error migrating database: %v", err)
	}

	// Setup exception tracking with Sentry if configured
	// sentry init needs to happen before the echo middlewares are added
	if c.SentryDSN != "" {
		if err = sentry.Init(sentry.ClientOptions{
			Dsn:              c.SentryDSN,
			IgnoreErrors:     []string{"401"},
			EnableTracing:    c.SentryTracesSampleRate > 0,
			TracesSampleRate: c.SentryTracesSampleRate,
		}); err != nil {
			logger.Errorf("sentry init error: %v", err)
		}
	}

	// Init the core banking API client
	bankCfg, err := bank.LoadConfig()
	if err != nil {
		logger.Fatalf("Error loading bank API config: %v", err)
	}
	bankClient := bank.NewRESTClient(bankCfg)

	// Init the projection client if an address is configured. Projection
	// is best-effort, running without one is supported.
	var projectionClient projection.Client
	projCfg, err := projection.LoadConfig()
	if err != nil {
		logger.Fatalf("Error loading projection config: %v", err)
	}
	if projCfg.ProjectionAPIAddress != "" {
		projectionClient = projection.NewRESTClient(projCfg)
	}

	// If no RABBITMQ_URI was provided we will not attempt to create a client
	// No rabbitmq features will be available in this case.
	var rabbitmqClient rabbitmq.Client
	if c.RabbitMQUri != "" {
		amqpClient, err := rabbitmq.DialAMQP(c.RabbitMQUri)
		if err != nil {
			logger.Fatal(err)
		}
		defer amqpClient.Close()

		rabbitmqClient, err = rabbitmq.NewClient(amqpClient,
			rabbitmq.WithLogger(logger),
			rabbitmq.WithVaultExchange(c.RabbitMQVaultExchange),
		)
		if err != nil {
			logger.Fatal(err)
		}

		// close the connection gently at the end of the runtime
		defer rabbitmqClient.Close()
	}

	var notifier service.ProgressNotifier = service.NoopNotifier{}
	if c.ProgressWebhookUrl != "" {
		notifier = &service.WebhookNotifier{Url: c.ProgressWebhookUrl, Logger: logger}
	}

	svc := &service.VaulthubService{
		Config:           c,
		DB:               dbConn,
		BankClient:       bankClient,
		ProjectionClient: projectionClient,
		Notifier:         notifier,
		RabbitMQClient:   rabbitmqClient,
		Logger:           logger,
	}

	// init echo server
	e := transport.InitEcho(c, logger)

	logMw := transport.CreateLoggingMiddleware(logger)
	// strict rate limit for requests that start saves
	strictRateLimitMiddleware := transport.CreateRateLimitMiddleware(c.StrictRateLimit, c.BurstRateLimit)

	secured := e.Group("", tokens.Middleware(c.JWTSecret), logMw)
	securedWithStrictRateLimit := e.Group("", tokens.Middleware(c.JWTSecret), strictRateLimitMiddleware, logMw)

	transport.RegisterEndpoints(svc, e, secured, securedWithStrictRateLimit, tokens.AdminTokenMiddleware(c.AdminToken), logMw)

	// Start Prometheus server if necessary
	if svc.Config.EnablePrometheus {
		go transport.StartPrometheusEcho(logger, svc, e)
	}

	// Start server
	go func() {
		if err := e.Start(fmt.Sprintf(":%v", c.Port)); err != nil && err != http.ErrServerClosed {
			e.Logger.Fatal("shutting down the server")
		}
	}()

	backGroundCtx, _ := signal.NotifyContext(context.Background(), os.Interrupt)
	<-backGroundCtx.Done()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		e.Logger.Fatal(err)
	}
	svc.Logger.Info("Vaulthub exiting gracefully. Goodbye.")
}
