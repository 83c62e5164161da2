package health

import "context"

// DBPinger checks catalog store availability.
type DBPinger interface {
	Ping(ctx context.Context) error
}

// CatalogChecker checks that the loaded catalog is usable.
type CatalogChecker interface {
	HealthCheck(ctx context.Context) error
}
