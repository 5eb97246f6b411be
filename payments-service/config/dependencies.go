package config

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jmoiron/sqlx"
	"github.com/servicehub/booking-system/payments-service/application"
	"github.com/servicehub/booking-system/payments-service/handlers"
	"github.com/servicehub/booking-system/payments-service/infrastructure"
	sharedinfra "github.com/servicehub/booking-system/shared/infrastructure"
	"github.com/servicehub/booking-system/shared/saga"
	"github.com/servicehub/booking-system/shared/telemetry"
)

type Dependencies struct {
	// Database
	DB *sqlx.DB

	// Repositories
	PaymentRepository       *infrastructure.PostgresPaymentRepository
	PaymentMethodRepository *infrastructure.PostgresPaymentMethodRepository

	// Gateway
	Gateway *infrastructure.StripeGateway

	// Use Cases
	RegisterPayment         *application.RegisterPayment
	ProcessAutomaticPayment *application.ProcessAutomaticPayment
	CancelPayment           *application.CancelPayment
	CreatePaymentIntent     *application.CreatePaymentIntent
	ConfirmPayment          *application.ConfirmPayment
	GetPaymentHistory       *application.GetPaymentHistory
	AddPaymentMethod        *application.AddPaymentMethod
	ListPaymentMethods      *application.ListPaymentMethods
	DeletePaymentMethod     *application.DeletePaymentMethod
	SetDefaultPaymentMethod *application.SetDefaultPaymentMethod
	SetAutoPay              *application.SetAutoPay
	HandleGatewayWebhook    *application.HandleGatewayWebhook
	ReconcileGatewayUpdate  *application.ReconcileGatewayUpdate

	// HTTP Handlers
	PaymentHandlers *handlers.PaymentHandlers

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
		telConfig := telemetry.PaymentsServiceConfig.
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

	// Initialize repositories and gateway
	deps.PaymentRepository = infrastructure.NewPostgresPaymentRepository(db)
	deps.PaymentMethodRepository = infrastructure.NewPostgresPaymentMethodRepository(db)
	deps.Gateway = infrastructure.NewStripeGateway(config.StripeConfig(), logger)

	// Initialize message channel
	channel, err := sharedinfra.NewChannel(ctx, config.ChannelConfig(), logger)
	if err != nil {
		deps.Close()
		return nil, fmt.Errorf("failed to create message channel: %w", err)
	}
	deps.Channel = channel
	publisher := channel.Publisher

	// Initialize use cases
	payments, methods, gateway := deps.PaymentRepository, deps.PaymentMethodRepository, deps.Gateway
	deps.RegisterPayment = application.NewRegisterPayment(payments, logger)
	deps.ProcessAutomaticPayment = application.NewProcessAutomaticPayment(payments, methods, gateway, publisher, logger)
	deps.CancelPayment = application.NewCancelPayment(payments, publisher, logger)
	deps.CreatePaymentIntent = application.NewCreatePaymentIntent(payments, methods, gateway, logger)
	deps.ConfirmPayment = application.NewConfirmPayment(payments, gateway, publisher, logger)
	deps.GetPaymentHistory = application.NewGetPaymentHistory(payments)
	deps.AddPaymentMethod = application.NewAddPaymentMethod(methods, gateway, logger)
	deps.ListPaymentMethods = application.NewListPaymentMethods(methods)
	deps.DeletePaymentMethod = application.NewDeletePaymentMethod(methods, gateway, logger)
	deps.SetDefaultPaymentMethod = application.NewSetDefaultPaymentMethod(methods, gateway, logger)
	deps.SetAutoPay = application.NewSetAutoPay(methods, logger)
	deps.HandleGatewayWebhook = application.NewHandleGatewayWebhook(gateway, publisher, logger)
	deps.ReconcileGatewayUpdate = application.NewReconcileGatewayUpdate(payments, publisher, logger)

	// Initialize handlers
	deps.PaymentHandlers = handlers.NewPaymentHandlers(
		deps.CreatePaymentIntent,
		deps.ConfirmPayment,
		deps.GetPaymentHistory,
		deps.AddPaymentMethod,
		deps.ListPaymentMethods,
		deps.DeletePaymentMethod,
		deps.SetDefaultPaymentMethod,
		deps.SetAutoPay,
		deps.HandleGatewayWebhook,
		logger,
	)

	// Event routing; GATEWAY_INTENT_UPDATED comes back to this service's own queue
	deps.EventRouter = saga.NewEventRouter(config.ServiceName, deps.Telemetry, logger)
	handlers.NewPaymentEventHandlers(
		deps.RegisterPayment,
		deps.ProcessAutomaticPayment,
		deps.CancelPayment,
		deps.ReconcileGatewayUpdate,
	).Register(deps.EventRouter)

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
