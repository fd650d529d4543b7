package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/light-bringer/wardrobe-catalog/internal/config"
	"github.com/light-bringer/wardrobe-catalog/internal/testutil"
)

func testConfig() *config.Config {
	return &config.Config{
		HTTP:      config.HTTPConfig{Host: "127.0.0.1", Port: 8080},
		Logger:    config.LoggerConfig{Mode: "development"},
		Retention: config.RetentionConfig{Units: 3},
	}
}

func TestNewServiceOptions(t *testing.T) {
	s, err := NewServiceOptions(testConfig(), zap.NewNop(), testutil.NewMockClock())
	require.NoError(t, err)
	defer s.Close()

	rec := httptest.NewRecorder()
	s.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, s.sched, "no schedule, no scheduler")
}

func TestNewServiceOptions_Errors(t *testing.T) {
	t.Run("bad schedule", func(t *testing.T) {
		cfg := testConfig()
		cfg.Sweep.Schedule = "every tuesday"
		_, err := NewServiceOptions(cfg, zap.NewNop(), testutil.NewMockClock())
		assert.ErrorContains(t, err, "sweep.schedule")
	})

	t.Run("negative retention", func(t *testing.T) {
		cfg := testConfig()
		cfg.Retention.Units = -1
		_, err := NewServiceOptions(cfg, zap.NewNop(), testutil.NewMockClock())
		assert.Error(t, err)
	})
}

func TestServiceOptions_RunSweep(t *testing.T) {
	cfg := testConfig()
	cfg.Sweep.Schedule = "@daily"
	cfg.Retention.Units = 1

	clk := testutil.NewMockClock()
	s, err := NewServiceOptions(cfg, zap.NewNop(), clk)
	require.NoError(t, err)
	require.NotNil(t, s.sched)
	assert.Len(t, s.sched.Entries(), 1)

	ctx := context.Background()
	_, err = s.Catalog.AddItem(ctx, testutil.NewItemBuilder().WithStock(0).Build())
	require.NoError(t, err)
	kept, err := s.Catalog.AddItem(ctx, testutil.NewItemBuilder().WithStock(4).Build())
	require.NoError(t, err)

	clk.Advance(testutil.Days(30))
	s.runSweep()

	_, err = s.Catalog.FindByID(ctx, 1)
	assert.Error(t, err)
	_, err = s.Catalog.FindByID(ctx, kept.ID)
	assert.NoError(t, err)

	s.Start()
	s.Close()
}
