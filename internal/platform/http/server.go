package http

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"fxconvert/internal/config"

	"github.com/sirupsen/logrus"
)

const (
	readHeaderTimeout = 10 * time.Second
	shutdownTimeout   = 10 * time.Second
)

// Start serves handler on the configured port until ctx is canceled, then shuts down gracefully.
// It returns early with an error if the port cannot be bound.
func Start(ctx context.Context, cfg config.HTTPServer, handler http.Handler, log logrus.FieldLogger) error {
	listener, listenErr := net.Listen("tcp", ":"+cfg.Port)
	if listenErr != nil {
		return listenErr
	}
	return serve(ctx, listener, handler, log)
}

func serve(ctx context.Context, listener net.Listener, handler http.Handler, log logrus.FieldLogger) error {
	log.Infof("✅ Currency converter listening on http://localhost:%d", listener.Addr().(*net.TCPAddr).Port)

	server := &http.Server{Handler: handler, ReadHeaderTimeout: readHeaderTimeout}
	errCh := make(chan error, 1)
	go func() {
		if err := server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case <-ctx.Done():
		log.Info("Shutting down http server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	case serveErr := <-errCh:
		return serveErr
	}
}
