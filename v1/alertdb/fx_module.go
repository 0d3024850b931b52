package alertdb

import (
	"context"
	"log"

	"go.uber.org/fx"
)

// FXModule is an fx.Module that provides and configures the alert archive client.
// This module registers the client with the Fx dependency injection framework,
// making it available to other components in the application.
//
// The module:
// 1. Provides the archive client factory function
// 2. Invokes the lifecycle registration to manage the client's lifecycle
//
// Usage:
//
//	app := fx.New(
//	    alertdb.FXModule,
//	    fx.Provide(
//	        func() alertdb.Config {
//	            return alertdb.Config{
//	                URL:     "https://alert-archive.example.org",
//	                Timeout: 30 * time.Second,
//	            }
//	        },
//	    ),
//	)
var FXModule = fx.Module("alertdb",
	fx.Provide(
		NewClientWithDI,
	),
	fx.Invoke(RegisterArchiveClientLifecycle),
)

// ArchiveClientParams groups the dependencies needed to create an archive client
type ArchiveClientParams struct {
	fx.In

	Config Config
}

// NewClientWithDI creates a new alert archive client using dependency injection.
// This function is designed to be used with Uber's fx dependency injection framework
// where dependencies are automatically provided via the ArchiveClientParams struct.
//
// Parameters:
//   - params: An ArchiveClientParams struct that contains the Config instance
//     required to initialize the archive client.
//     This struct embeds fx.In to enable automatic injection of these dependencies.
//
// Returns:
//   - Client: A fully initialized alert archive client ready for use.
func NewClientWithDI(params ArchiveClientParams) (Client, error) {
	return NewClient(params.Config)
}

// ArchiveClientLifecycleParams groups the dependencies needed for archive client lifecycle management
type ArchiveClientLifecycleParams struct {
	fx.In

	Lifecycle fx.Lifecycle
	Client    Client
}

// RegisterArchiveClientLifecycle registers the archive client with the fx lifecycle system.
//
// The function:
//  1. On application start: Logs that the archive client is ready
//  2. On application stop: Currently no cleanup needed (HTTP client is stateless)
//
// This ensures that the archive client remains available throughout the application's
// lifetime and any future cleanup logic can be added here.
func RegisterArchiveClientLifecycle(params ArchiveClientLifecycleParams) {
	params.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Println("INFO: alert archive client initialized")
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("INFO: alert archive client shutdown")
			// HTTP client cleanup is handled automatically by Go runtime
			return nil
		},
	})
}
