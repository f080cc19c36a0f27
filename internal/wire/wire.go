// Package wire provides dependency injection for the recon application.
// It creates singleton services with lazy initialization.
package wire

import (
	"io"
	"log"
	"os"
	"sync"

	cliadapter "github.com/example/recon/internal/adapters/cli"
	"github.com/example/recon/internal/adapters/sqlite"
	"github.com/example/recon/internal/app"
	"github.com/example/recon/internal/db"
	"github.com/example/recon/internal/ports/primary"
)

var (
	ingestService primary.IngestService
	watchService  primary.WatchService
	reportService primary.ReportService
	once          sync.Once
)

// IngestService returns the singleton IngestService instance.
func IngestService() primary.IngestService {
	once.Do(initServices)
	return ingestService
}

// WatchService returns the singleton WatchService instance.
func WatchService() primary.WatchService {
	once.Do(initServices)
	return watchService
}

// ReportService returns the singleton ReportService instance.
func ReportService() primary.ReportService {
	once.Do(initServices)
	return reportService
}

// initServices initializes all services and their dependencies.
// This is called once via sync.Once.
func initServices() {
	// Get database connection
	database, err := db.GetDB()
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	// Create repository adapters (secondary ports) - sqlite adapters with injected DB
	reportRepo := sqlite.NewReportRepository(database)
	watchRepo := sqlite.NewWatchRepository(database)

	// Capture notifications go to stdout; a chat transport would slot in here
	notifier := cliadapter.NewNotifier(os.Stdout)

	// Create services (primary ports implementation)
	ingestService = app.NewIngestService(reportRepo, watchRepo, notifier)
	watchService = app.NewWatchService(watchRepo)
	reportService = app.NewReportService(reportRepo)
}

// ReportAdapter returns a new ReportAdapter writing to stdout.
// Each call creates a new adapter (adapters are stateless translators).
func ReportAdapter() *cliadapter.ReportAdapter {
	return ReportAdapterWithOutput(os.Stdout)
}

// ReportAdapterWithOutput returns a new ReportAdapter writing to the given output.
// This variant allows testing or alternate output destinations.
func ReportAdapterWithOutput(out io.Writer) *cliadapter.ReportAdapter {
	once.Do(initServices)
	return cliadapter.NewReportAdapter(reportService, out)
}

// ExportAdapter returns a new ExportAdapter writing to the given output.
func ExportAdapter(out io.Writer) *cliadapter.ExportAdapter {
	once.Do(initServices)
	return cliadapter.NewExportAdapter(reportService, out)
}
