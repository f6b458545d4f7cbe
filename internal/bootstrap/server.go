package bootstrap

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

// Serve runs the HTTP server until SIGINT/SIGTERM, then drains in-flight
// requests before returning.
func Serve(addr string, handler http.Handler, logger *zap.Logger, audit AuditLogger) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", zap.String("addr", addr))
		audit.Log(AuditLog{Event: "server.start", Detail: addr})

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		audit.Log(AuditLog{Event: "server.failed", Detail: err.Error()})
		return err
	case <-ctx.Done():
	}

	audit.Log(AuditLog{Event: "server.shutdown", Detail: "signal received"})
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		audit.Log(AuditLog{Event: "server.shutdown.forced", Detail: err.Error()})
		return err
	}

	audit.Log(AuditLog{Event: "server.stopped"})
	return nil
}
