package bootstrap

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"campaignhub/internal/platform/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(backend string) config.Config {
	return config.Config{
		ServiceName:     "campaignhub-test",
		HTTPPort:        "0",
		StorageBackend:  backend,
		SeedFile:        "builtin",
		ShutdownTimeout: time.Second,
	}
}

func countCampaigns(t *testing.T, app *APIApp) int {
	t.Helper()
	rr := httptest.NewRecorder()
	app.server.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/v1/campaigns", nil))
	require.Equal(t, http.StatusOK, rr.Code)

	var payload struct {
		Items []json.RawMessage `json:"items"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &payload))
	return len(payload.Items)
}

func TestBuildMemoryAppSeedsDemoCampaigns(t *testing.T) {
	app, err := BuildAPIWithConfig(context.Background(), testConfig(config.StorageMemory), nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Close() })

	assert.Equal(t, 2, countCampaigns(t, app))
}

func TestSQLiteAppDoesNotReseedOnRestart(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig(config.StorageSQLite)
	cfg.SQLitePath = filepath.Join(t.TempDir(), "hub.db")

	first, err := BuildAPIWithConfig(ctx, cfg, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, countCampaigns(t, first))
	require.NoError(t, first.Close())

	second, err := BuildAPIWithConfig(ctx, cfg, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = second.Close() })
	assert.Equal(t, 2, countCampaigns(t, second))
}

func TestRunStopsWhenContextIsCancelled(t *testing.T) {
	app, err := BuildAPIWithConfig(context.Background(), testConfig(config.StorageMemory), nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Close() })

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- app.Run(ctx) }()
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("api app did not stop after cancellation")
	}
}

func TestUnsupportedBackendFails(t *testing.T) {
	_, err := BuildAPIWithConfig(context.Background(), testConfig("cassandra"), nil)
	assert.Error(t, err)
}

func TestNormalizeAddr(t *testing.T) {
	assert.Equal(t, ":8080", normalizeAddr(""))
	assert.Equal(t, ":9000", normalizeAddr("9000"))
	assert.Equal(t, ":9000", normalizeAddr(":9000"))
}
