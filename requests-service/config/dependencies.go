package config

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jmoiron/sqlx"
	"github.com/servicehub/booking-system/requests-service/application"
	"github.com/servicehub/booking-system/requests-service/handlers"
	"github.com/servicehub/booking-system/requests-service/infrastructure"
	sharedinfra "github.com/servicehub/booking-system/shared/infrastructure"
	"github.com/servicehub/booking-system/shared/saga"
	"github.com/servicehub/booking-system/shared/telemetry"
)

type Dependencies struct {
	// Database
	DB *sqlx.DB

	// Repositories
	RequestRepository *infrastructure.PostgresRequestRepository

	// Use Cases
	CreateRequest        *application.CreateRequest
	GetRequest           *application.GetRequest
	ListRequests         *application.ListRequests
	AssignRequest        *application.AssignRequest
	StartRequest         *application.StartRequest
	CompleteRequest      *application.CompleteRequest
	CancelRequest        *application.CancelRequest
	RateRequest          *application.RateRequest
	ProjectPaymentStatus *application.ProjectPaymentStatus

	// HTTP Handlers
	RequestHandlers *handlers.RequestHandlers

	// Event Handlers
	EventRouter *saga.EventRouter

	// Infrastructure
	Channel *sharedinfra.Channel

	// Telemetry
	Logger            *slog.Logger
	Telemetry         *telemetry.Telemetry
	TelemetryShutdown func()
}

func BuildDependencies(ctx context.Context, config *Config, logger *slog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: logger}

	// Initialize telemetry first
	if config.Telemetry.Enabled {
		telConfig := telemetry.RequestsServiceConfig.
			WithOTLPEndpoint(config.Telemetry.OTLPEndpoint).
			WithVersion(config.Telemetry.Version)
		tel, telemetryShutdown, err := telemetry.InitTelemetry(ctx, telConfig)
		if err != nil {
			// Continue without telemetry rather than failing
			logger.Warn("failed to initialize telemetry", slog.Any("error", err))
		} else {
			deps.Telemetry = tel
			deps.TelemetryShutdown = telemetryShutdown
		}
	}

	// Initialize database
	db, err := sharedinfra.ConnectPostgres(ctx, config.PostgresConfig())
	if err != nil {
		deps.Close()
		return nil, err
	}
	deps.DB = db

	if err := sharedinfra.Migrate(ctx, db, infrastructure.Migrations, "migrations"); err != nil {
		deps.Close()
		return nil, err
	}

	// Initialize repositories
	deps.RequestRepository = infrastructure.NewPostgresRequestRepository(db)

	// Initialize message channel
	channel, err := sharedinfra.NewChannel(ctx, config.ChannelConfig(), logger)
	if err != nil {
		deps.Close()
		return nil, fmt.Errorf("failed to create message channel: %w", err)
	}
	deps.Channel = channel
	publisher := channel.Publisher

	// Initialize use cases
	deps.CreateRequest = application.NewCreateRequest(deps.RequestRepository, publisher, logger)
	deps.GetRequest = application.NewGetRequest(deps.RequestRepository)
	deps.ListRequests = application.NewListRequests(deps.RequestRepository)
	deps.AssignRequest = application.NewAssignRequest(deps.RequestRepository, publisher, logger)
	deps.StartRequest = application.NewStartRequest(deps.RequestRepository, publisher, logger)
	deps.CompleteRequest = application.NewCompleteRequest(deps.RequestRepository, publisher, logger)
	deps.CancelRequest = application.NewCancelRequest(deps.RequestRepository, publisher, logger)
	deps.RateRequest = application.NewRateRequest(deps.RequestRepository, publisher, logger)
	deps.ProjectPaymentStatus = application.NewProjectPaymentStatus(deps.RequestRepository, publisher, logger)

	// Initialize handlers
	deps.RequestHandlers = handlers.NewRequestHandlers(
		deps.CreateRequest,
		deps.GetRequest,
		deps.ListRequests,
		deps.AssignRequest,
		deps.StartRequest,
		deps.CompleteRequest,
		deps.CancelRequest,
		deps.RateRequest,
		logger,
	)
	// Event routing; the queue is bound to the registered types on Subscribe
	deps.EventRouter = saga.NewEventRouter(config.ServiceName, deps.Telemetry, logger)
	handlers.NewRequestEventHandlers(deps.ProjectPaymentStatus).Register(deps.EventRouter)

	return deps, nil
}

// Close closes all dependencies
func (d *Dependencies) Close() error {
	var errs []error

	if d.Channel != nil {
		if err := d.Channel.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close message channel: %w", err))
		}
	}

	if d.DB != nil {
		if err := d.DB.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close database: %w", err))
		}
	}

	if d.TelemetryShutdown != nil {
		d.TelemetryShutdown()
	}

	if len(errs) > 0 {
		return fmt.Errorf("errors closing dependencies: %v", errs)
	}

	return nil
}
