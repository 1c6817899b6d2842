package cli

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	httpadapter "github.com/fsmlab/automata/pkg/adapters/http"
	"github.com/fsmlab/automata/pkg/adapters/memory"
	redisstore "github.com/fsmlab/automata/pkg/adapters/redis"
	"github.com/fsmlab/automata/pkg/observability"
	"github.com/fsmlab/automata/pkg/ports"
)

// ServeOptions configures the HTTP frontend.
type ServeOptions struct {
	Addr      string
	RedisAddr string
	Verbose   bool
}

// Serve runs the HTTP adapter until the context is cancelled.
func Serve(ctx context.Context, opts ServeOptions) error {
	logger := newLogger(opts.Verbose)

	var store ports.RunStore = memory.NewStore()
	if opts.RedisAddr != "" {
		store = redisstore.New(opts.RedisAddr, "", 0)
		logger.Info("using redis run store", "addr", opts.RedisAddr)
	}

	metrics := observability.NewMetrics(prometheus.DefaultRegisterer)

	handler := httpadapter.NewHandler(
		httpadapter.WithStore(store),
		httpadapter.WithLogger(logger),
		httpadapter.WithMetrics(metrics),
	)

	srv := &http.Server{
		Addr:              opts.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("automata http server listening", "addr", opts.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
