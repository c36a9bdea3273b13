package server

import (
	"context"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"ExprLex/internal/config"
	"ExprLex/internal/lexer"
)

// shutdownTimeout bounds how long Run waits for in-flight requests.
const shutdownTimeout = 10 * time.Second

// New builds the HTTP server for cfg. Results are memoized in an LRU of
// cfg.CacheSize inputs.
func New(cfg config.Config, version string, logger *zap.Logger) (*http.Server, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	analyzer, err := lexer.NewCachingAnalyzer(
		lexer.New(lexer.WithLogger(logger.Named("lexer"))),
		cfg.CacheSize,
	)
	if err != nil {
		return nil, err
	}

	handler := NewHandler(analyzer, cfg.MaxInputBytes, version, logger.Named("http"))
	return &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler.Router(),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}, nil
}

// Run serves srv until ctx is cancelled, then shuts it down gracefully.
func Run(ctx context.Context, srv *http.Server, logger *zap.Logger) error {
	errc := make(chan error, 1)
	go func() {
		logger.Info("listening", zap.String("addr", srv.Addr))
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if err != nil && err != http.ErrServerClosed {
			return errors.Wrap(err, "serve")
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return errors.Wrap(err, "shutdown")
	}
	return nil
}
