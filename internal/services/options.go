// Package services wires the store, the catalog, the roster and the HTTP API
// into one unit the server binary can start and stop.
package services

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/light-bringer/wardrobe-catalog/internal/app/catalog"
	"github.com/light-bringer/wardrobe-catalog/internal/app/catalog/domain"
	"github.com/light-bringer/wardrobe-catalog/internal/app/catalog/usecases/sweep_stale_items"
	"github.com/light-bringer/wardrobe-catalog/internal/app/roster"
	"github.com/light-bringer/wardrobe-catalog/internal/config"
	"github.com/light-bringer/wardrobe-catalog/internal/pkg/clock"
	"github.com/light-bringer/wardrobe-catalog/internal/pkg/memdb"
	httptransport "github.com/light-bringer/wardrobe-catalog/internal/transport/http"
)

var cronParser = cron.NewParser(
	cron.SecondOptional | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor,
)

// sweepTimeout bounds a single scheduled sweep.
const sweepTimeout = 30 * time.Second

// ServiceOptions holds all dependencies for the application.
type ServiceOptions struct {
	DB      *memdb.DB
	Catalog *catalog.Catalog
	Roster  *roster.Roster
	Handler http.Handler

	logger *zap.Logger
	sched  *cron.Cron
}

// NewServiceOptions creates and wires up all application dependencies.
func NewServiceOptions(cfg *config.Config, logger *zap.Logger, clk clock.Clock) (*ServiceOptions, error) {
	policy, err := domain.NewRetentionPolicy(cfg.Retention.Units)
	if err != nil {
		return nil, fmt.Errorf("invalid retention policy: %w", err)
	}

	db := memdb.New()
	cat := catalog.New(db, clk, catalog.WithRetentionPolicy(policy))
	ros := roster.New(db, clk)

	handler := httptransport.NewRouter(
		httptransport.NewCatalogHandler(cat, logger),
		httptransport.NewRosterHandler(ros, logger),
		httptransport.NewEventsHandler(cat, logger),
		logger,
	)

	s := &ServiceOptions{
		DB:      db,
		Catalog: cat,
		Roster:  ros,
		Handler: handler,
		logger:  logger,
	}

	if cfg.Sweep.Schedule != "" {
		s.sched = cron.New(cron.WithParser(cronParser))
		if _, err := s.sched.AddFunc(cfg.Sweep.Schedule, s.runSweep); err != nil {
			return nil, fmt.Errorf("invalid sweep.schedule %q: %w", cfg.Sweep.Schedule, err)
		}
	}

	return s, nil
}

// Start starts the sweep scheduler, if one is configured.
func (s *ServiceOptions) Start() {
	if s.sched == nil {
		return
	}
	s.logger.Info("sweep scheduler started", zap.Int("jobs", len(s.sched.Entries())))
	s.sched.Start()
}

func (s *ServiceOptions) runSweep() {
	ctx, cancel := context.WithTimeout(context.Background(), sweepTimeout)
	defer cancel()

	resp, err := s.Catalog.Sweep(ctx, &sweep_stale_items.Request{})
	if err != nil {
		s.logger.Error("scheduled sweep failed", zap.Error(err))
		return
	}
	s.logger.Info("scheduled sweep completed",
		zap.Int("removed", resp.Removed),
		zap.Int64s("item_ids", resp.ItemIDs),
	)
}

// Close stops the scheduler and waits for a running sweep to finish.
func (s *ServiceOptions) Close() {
	if s.sched != nil {
		<-s.sched.Stop().Done()
	}
}
