package http

import (
	"context"
	"io"
	"net"
	"net/http"
	"strconv"
	"testing"
	"time"

	"fxconvert/internal/config"

	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
)

func TestServe_HandlesRequestsAndStopsOnCancel(t *testing.T) {
	logger, _ := logtest.NewNullLogger()
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- serve(ctx, listener, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte("ok"))
		}), logger)
	}()

	resp, err := http.Get("http://" + listener.Addr().String() + "/")
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	require.NoError(t, err)
	require.Equal(t, "ok", string(body))

	cancel()
	select {
	case err = <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestStart_PortAlreadyBound(t *testing.T) {
	logger, _ := logtest.NewNullLogger()
	busy, err := net.Listen("tcp", ":0")
	require.NoError(t, err)
	t.Cleanup(func() { _ = busy.Close() })

	port := strconv.Itoa(busy.Addr().(*net.TCPAddr).Port)
	err = Start(context.Background(), config.HTTPServer{Port: port}, http.NotFoundHandler(), logger)
	require.Error(t, err)
}
