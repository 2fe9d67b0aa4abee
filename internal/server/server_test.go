package server

import (
	"context"
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/preston-bernstein/worldcup-dashboard/internal/config"
	"github.com/preston-bernstein/worldcup-dashboard/internal/testutil"
)

func testConfig() config.Config {
	return config.Config{
		Port:          "0",
		SessionCookie: "wc_session",
		Dataset:       config.DatasetConfig{Source: "fixture", PreviewRows: 5},
		Metrics:       config.MetricsConfig{Enabled: false},
	}
}

func TestServerServesDashboardFromFixture(t *testing.T) {
	srv := New(testConfig(), nil)
	if !srv.Ready() {
		t.Fatalf("expected fixture dataset to load")
	}

	rr := testutil.Serve(srv.Handler(), http.MethodGet, "/", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
	testutil.AssertContains(t, rr, "Data loaded successfully")

	rr = testutil.Serve(srv.Handler(), http.MethodGet, "/api/queries/Q1", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
	testutil.AssertContains(t, rr, "Uruguay")

	if got := srv.metrics.Snapshot().Loads; got != 1 {
		t.Fatalf("expected one dataset load recorded, got %d", got)
	}
}

func TestServerHaltsWhenDatasetMissing(t *testing.T) {
	cfg := testConfig()
	cfg.Dataset = config.DatasetConfig{Source: "auto", File: filepath.Join(t.TempDir(), "missing.xlsx")}
	logger, buf := testutil.NewBufferLogger()

	srv := New(cfg, logger)
	if srv.Ready() {
		t.Fatalf("expected halted server")
	}

	rr := testutil.Serve(srv.Handler(), http.MethodGet, "/", nil)
	testutil.AssertStatus(t, rr, http.StatusServiceUnavailable)
	testutil.AssertContains(t, rr, "Data not found")

	rr = testutil.Serve(srv.Handler(), http.MethodGet, "/health", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	if !strings.Contains(buf.String(), "dataset load failed") {
		t.Fatalf("expected load failure logged, got %s", buf.String())
	}
}

func TestServerHaltsOnUnknownSource(t *testing.T) {
	cfg := testConfig()
	cfg.Dataset.Source = "parquet"

	srv := New(cfg, nil)
	if srv.Ready() {
		t.Fatalf("expected unknown source to halt the dashboard")
	}
}

func TestServerUsesInjectedSource(t *testing.T) {
	src := &testutil.StubSource{Rows: testutil.SampleMatches()[:3]}
	srv := newServerWithSource(testConfig(), nil, src)

	if src.Calls != 1 {
		t.Fatalf("expected source loaded once, got %d", src.Calls)
	}
	rr := testutil.Serve(srv.Handler(), http.MethodGet, "/ready", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
	testutil.AssertContains(t, rr, `"rows":3`)
}

func TestServerSourceErrorHalts(t *testing.T) {
	src := &testutil.StubSource{Err: errors.New("corrupt workbook")}
	srv := newServerWithSource(testConfig(), nil, src)

	rr := testutil.Serve(srv.Handler(), http.MethodGet, "/ready", nil)
	testutil.AssertStatus(t, rr, http.StatusServiceUnavailable)
	testutil.AssertContains(t, rr, "corrupt workbook")
}

func TestLoadCorpusFallsBackToDefault(t *testing.T) {
	logger, buf := testutil.NewBufferLogger()

	c := loadCorpus(filepath.Join(t.TempDir(), "missing.yaml"), logger)
	if len(c.Entries) != 11 {
		t.Fatalf("expected built-in corpus, got %d entries", len(c.Entries))
	}
	if !strings.Contains(buf.String(), "using built-in corpus") {
		t.Fatalf("expected fallback warning, got %s", buf.String())
	}

	if got := loadCorpus("", nil); len(got.Entries) != 11 {
		t.Fatalf("expected built-in corpus for empty path")
	}
}

func TestLoadCorpusFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corpus.yaml")
	if err := os.WriteFile(path, []byte("default: nope\nentries:\n  - question: hello\n    answer: hi\n"), 0o600); err != nil {
		t.Fatalf("write corpus: %v", err)
	}

	c := loadCorpus(path, nil)
	if len(c.Entries) != 1 || c.Default != "nope" {
		t.Fatalf("unexpected corpus %+v", c)
	}
}

func TestGracefulShutdownCallsShutdown(t *testing.T) {
	httpSrv := &testutil.FakeServer{}
	metricsSrv := &testutil.FakeServer{}
	stopCalls := 0

	srv := newServerWithDeps(config.Config{}, nil, httpSrv)
	srv.metricsServer = metricsSrv
	srv.metricsStop = func(context.Context) error {
		stopCalls++
		return errors.New("flush failed")
	}
	srv.gracefulShutdown()

	if httpSrv.ShutdownCalls() != 1 || metricsSrv.ShutdownCalls() != 1 {
		t.Fatalf("expected both servers shut down, got http=%d metrics=%d", httpSrv.ShutdownCalls(), metricsSrv.ShutdownCalls())
	}
	if stopCalls != 1 {
		t.Fatalf("expected metrics stop called once, got %d", stopCalls)
	}
}

func TestGracefulShutdownTimesOutLongRunningShutdown(t *testing.T) {
	blocking := &testutil.FakeServer{Hold: make(chan struct{})}
	defer close(blocking.Hold)

	original := shutdownTimeout
	shutdownTimeout = 5 * time.Millisecond
	defer func() { shutdownTimeout = original }()

	srv := newServerWithDeps(config.Config{}, nil, blocking)

	start := time.Now()
	srv.gracefulShutdown()
	elapsed := time.Since(start)

	if blocking.ShutdownCalls() != 1 {
		t.Fatalf("expected server Shutdown to be called once, got %d", blocking.ShutdownCalls())
	}
	if elapsed > 200*time.Millisecond {
		t.Fatalf("shutdown took too long: %s", elapsed)
	}
}

func TestServerStartHandlesListenErrorAndStops(t *testing.T) {
	srv := newServerWithDeps(config.Config{}, nil, &testutil.FakeServer{ListenErr: errors.New("address in use")})

	var wg sync.WaitGroup
	wg.Add(1)
	stopCalled := make(chan struct{})
	stop := func() {
		close(stopCalled)
		wg.Done()
	}

	srv.startServer(stop)

	select {
	case <-stopCalled:
	case <-time.After(200 * time.Millisecond):
		t.Fatal("expected stop to be called on listen failure")
	}

	wg.Wait()
}

func TestRunCancelsAndStopsComponents(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	httpSrv := testutil.ClosedServer()
	srv := newServerWithDeps(config.Config{}, nil, httpSrv)

	done := make(chan struct{})
	go func() {
		srv.Run(ctx, cancel)
		close(done)
	}()

	time.Sleep(10 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(500 * time.Millisecond):
		t.Fatal("run did not return after cancel")
	}

	if httpSrv.ShutdownCalls() != 1 {
		t.Fatalf("expected server Shutdown called once, got %d", httpSrv.ShutdownCalls())
	}
}
