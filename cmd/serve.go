// Copyright 2025 ZapFS Authors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/driftfs/objectgw/pkg/debug"
	"github.com/driftfs/objectgw/pkg/env"
	"github.com/driftfs/objectgw/pkg/logger"
	"github.com/driftfs/objectgw/pkg/objectapi"
	"github.com/driftfs/objectgw/pkg/objectget"
	"github.com/driftfs/objectgw/pkg/storage/backend"
	"github.com/driftfs/objectgw/pkg/types"
	"github.com/driftfs/objectgw/pkg/utils"
)

var serveCmd = &cobra.Command{
	Use:   "object-gateway",
	Short: "Run the object gateway's GET-object server",
	Run:   runServe,
}

func init() {
	serveCmd.Flags().String("listen_addr", ":8080", "Address the GET-object server listens on")
	serveCmd.Flags().String("debug_listen_addr", ":8081", "Address the metrics/pprof/readiness server listens on")
	serveCmd.Flags().Uint32("outstanding_bytes_ceiling", 256<<20, "Total bytes allowed in flight across active reads before new reservations block (0 disables)")
	serveCmd.Flags().Duration("shutdown_grace_period", 30*time.Second, "How long to wait for in-flight requests to finish after SIGTERM")

	serveCmd.Flags().Int("motr_units_per_request", 4, "Max stripe units read from the backend in a single request")
	serveCmd.Flags().Int("motr_first_read_size", 64<<10, "Preferred first-read size in bytes, to get bytes to the client before a full multi-unit read lands")
	serveCmd.Flags().Int("motr_read_payload_size", 1<<20, "Per-layout payload size, stored in the read policy (not applied as a buffering threshold; see outstanding_bytes_ceiling)")
	serveCmd.Flags().Int("write_buffer_multiple", 4, "Multiplier for motr_read_payload_size, stored in the read policy (not applied as a buffering threshold; see outstanding_bytes_ceiling)")
	serveCmd.Flags().Duration("s3_req_throttle_time", 0, "Minimum delay between admitted requests (0 disables throttling)")
	serveCmd.Flags().Int("s3_retry_after_sec", 1, "Retry-After seconds advertised on 503s issued once shutdown begins")

	rootCmd.AddCommand(serveCmd)
}

// objectStore backs both BucketStore and ObjectStore for this process. A
// real deployment replaces it with a lookup against whatever catalogs
// buckets and objects; nothing else in the server depends on it being
// in-memory.
var objectStore = objectget.NewMemoryStore()

func runServe(cmd *cobra.Command, args []string) {
	utils.LoadConfiguration("objectgw", false)
	if env.IsLocal() {
		logger.UseConsoleWriter()
	}

	flags := NewFlagLoader(cmd)
	listenAddr := flags.String("listen_addr")
	debugListenAddr := flags.String("debug_listen_addr")
	ceiling := flags.Uint32("outstanding_bytes_ceiling")
	gracePeriod := flags.Duration("shutdown_grace_period")

	readPolicy := objectget.ReadPolicy{
		MaxBlocksPerRead:    uint64(flags.Int("motr_units_per_request")),
		FirstReadSize:       uint64(flags.Int("motr_first_read_size")),
		ReadPayloadSize:     uint64(flags.Int("motr_read_payload_size")),
		WriteBufferMultiple: uint64(flags.Int("write_buffer_multiple")),
	}

	throttleTime := flags.Duration("s3_req_throttle_time")
	retryAfterSec := flags.Int("s3_retry_after_sec")

	backends := backend.NewManager()
	for id, raw := range viper.GetStringMap("backends") {
		cfg, ok := raw.(map[string]interface{})
		if !ok {
			logger.Fatal().Msgf("backend %q: malformed configuration", id)
		}
		bcfg := types.BackendConfig{
			Type:     types.StorageType(stringField(cfg, "type")),
			Endpoint: stringField(cfg, "endpoint"),
			Bucket:   stringField(cfg, "bucket"),
			Path:     stringField(cfg, "path"),
			Region:   stringField(cfg, "region"),
		}
		if err := backends.Add(id, bcfg); err != nil {
			logger.Fatal().Err(err).Msgf("failed to initialize backend %q", id)
		}
	}
	if len(viper.GetStringMap("backends")) == 0 {
		logger.Warn().Msg("no backends configured; defaulting to a single in-memory backend")
		_ = backends.AddMemory("default")
	}

	shutdown := objectget.NewShutdownCoordinator(retryAfterSec)
	backpressure := objectget.NewBackpressure(uint64(ceiling))
	metrics := objectget.NewMetrics(backpressure)

	deps := objectget.Deps{
		Buckets:      objectStore,
		Objects:      objectStore,
		Backends:     backends,
		Layouts:      types.DefaultLayoutTable(),
		Backpressure: backpressure,
		Shutdown:     shutdown,
		ReadPolicy:   readPolicy,
		Metrics:      metrics,
		Limiter:      objectget.NewRequestLimiter(throttleTime),
	}

	handler := objectapi.NewHandler(deps)
	server := &http.Server{Addr: listenAddr, Handler: handler}
	debugServer := &http.Server{Addr: debugListenAddr, Handler: debug.GetMux()}

	go func() {
		logger.Info().Str("addr", listenAddr).Msg("get object server listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("get object server stopped unexpectedly")
		}
	}()
	go func() {
		logger.Info().Str("addr", debugListenAddr).Msg("debug server listening")
		if err := debugServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error().Err(err).Msg("debug server stopped unexpectedly")
		}
	}()

	debug.SetReady()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	logger.Info().Msg("shutdown requested, draining in-flight requests")
	debug.SetNotReady()
	shutdown.BeginDrain()

	ctx, cancel := context.WithTimeout(context.Background(), gracePeriod)
	defer cancel()
	_ = server.Shutdown(ctx)
	_ = debugServer.Shutdown(ctx)
	_ = backends.Close()
}

func stringField(m map[string]interface{}, key string) string {
	v, _ := m[key].(string)
	return v
}
