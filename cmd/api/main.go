package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"checkmaster/internal/adapter/http/handlers"
	"checkmaster/internal/adapter/http/routes"
	"checkmaster/internal/adapter/persistence/memory"
	"checkmaster/internal/adapter/persistence/repository"
	"checkmaster/internal/adapter/persistence/sqlite"
	"checkmaster/internal/domain/evaluation"
	"checkmaster/internal/infrastructure/auth"
	"checkmaster/internal/infrastructure/config"
	"checkmaster/internal/infrastructure/database"
	"checkmaster/internal/infrastructure/imageproc"
	"checkmaster/internal/infrastructure/logger"
	"checkmaster/internal/infrastructure/metrics"
	"checkmaster/internal/infrastructure/payments"
	"checkmaster/internal/infrastructure/storage"
	"checkmaster/internal/infrastructure/vision"
	"checkmaster/internal/usecase"
	"checkmaster/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"
)

// @title           CheckMaster API
// @version         1.0
// @description     Checklist templates, inspection runs and service orders for vehicle tracker installers.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	cfg, err := config.Load(os.Getenv("CONFIG_FILE"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	if err := run(cfg, log); err != nil {
		log.Fatal("Failed to startup the application", zap.Error(err))
	}
}

type stores struct {
	templates interfaces.ITemplateStore
	payments  interfaces.IOrderPaymentRepository
	closer    io.Closer
}

func openStores(ctx context.Context, cfg *config.Config) (stores, error) {
	switch cfg.Store.Driver {
	case config.StoreDriverMemory:
		s := memory.NewStore()
		return stores{templates: s, payments: s}, nil
	case config.StoreDriverDynamoDB:
		ddb, err := database.ConnectDynamoDB(ctx, cfg.AWS)
		if err != nil {
			return stores{}, fmt.Errorf("failed to connect dynamodb: %w", err)
		}
		return stores{
			templates: repository.NewTemplateDynamoStore(ddb, cfg.Store.TemplatesTable, cfg.Store.OrdersTable),
			payments:  repository.NewOrderPaymentDynamoRepository(ddb, cfg.Store.PaymentsTable),
		}, nil
	default:
		s, err := sqlite.Open(cfg.Store.SQLitePath)
		if err != nil {
			return stores{}, err
		}
		return stores{templates: s, payments: s, closer: s}, nil
	}
}

func run(cfg *config.Config, log *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gin.SetMode(cfg.Server.Mode)
	m := metrics.New(log)
	policy := evaluation.Policy{RejectNegativePrices: cfg.Evaluation.RejectNegativePrices}

	st, err := openStores(ctx, cfg)
	if err != nil {
		return err
	}
	if st.closer != nil {
		defer st.closer.Close()
	}
	log.Info("template store ready", zap.String("driver", cfg.Store.Driver))

	var extractor interfaces.IVehicleExtractor
	if cfg.Vision.APIKey != "" {
		gemini, err := vision.NewGeminiExtractor(ctx, cfg.Vision.APIKey, cfg.Vision.Model, log)
		if err != nil {
			return err
		}
		extractor = gemini
	} else {
		log.Warn("vehicle extraction disabled: GEMINI_API_KEY not set")
	}

	var photos interfaces.IPhotoStorage
	if cfg.Photos.Bucket != "" {
		s3, err := storage.NewS3PhotoStorage(ctx, cfg.AWS, cfg.Photos.Bucket)
		if err != nil {
			return err
		}
		photos = s3
	} else {
		log.Warn("photo storage disabled: PHOTOS_BUCKET not set")
	}

	var gateway interfaces.IPaymentGateway
	if !cfg.Payments.Mock {
		mp, err := payments.NewMercadoPagoGateway(cfg.Payments.AccessToken, log)
		if err != nil {
			log.Warn("Mercado Pago gateway not configured", zap.Error(err))
		} else {
			gateway = mp
		}
	}

	var issuer interfaces.ITokenIssuer
	if cfg.AuthEnabled() {
		jwtIssuer, err := auth.NewJWTIssuer(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
		if err != nil {
			return err
		}
		issuer = jwtIssuer
	} else {
		log.Warn("authentication disabled: JWT_SECRET not set, every request runs as the dev session")
	}

	templateUseCase := usecase.NewTemplateUseCase(st.templates, policy, log, m)
	inspectionUseCase := usecase.NewInspectionUseCase(st.templates, templateUseCase, policy, log, m)
	scanUseCase := usecase.NewVehicleScanUseCase(extractor, photos, imageproc.NewNormalizer(), cfg.Vision.Timeout, cfg.Photos.Prefix, log, m)
	reportUseCase := usecase.NewReportUseCase(st.templates, log, m)
	paymentUseCase := usecase.NewOrderPaymentUseCase(st.payments, inspectionUseCase, gateway, usecase.PaymentOptions{
		Mock:            cfg.Payments.Mock,
		AccessToken:     cfg.Payments.AccessToken,
		TestPayerEmail:  cfg.Payments.TestPayerEmail,
		TestPayerUserID: cfg.Payments.TestPayerUserID,
	}, log, m)
	authUseCase := usecase.NewAuthUseCase(issuer, log)

	router := routes.New(routes.Options{
		Handlers: routes.Handlers{
			Templates:    handlers.NewTemplateHandler(templateUseCase, log),
			Inspections:  handlers.NewInspectionHandler(inspectionUseCase, log),
			Scan:         handlers.NewScanHandler(scanUseCase, log),
			Reports:      handlers.NewReportHandler(reportUseCase, log),
			OrderPayment: handlers.NewOrderPaymentHandler(paymentUseCase, cfg.Payments.Mock, log),
			Auth:         handlers.NewAuthHandler(authUseCase, log),
		},
		Sessions:       authUseCase,
		Metrics:        m,
		Logger:         log,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}
	return nil
}
