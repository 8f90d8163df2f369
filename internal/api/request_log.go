package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"
)

// requestLogFormatter plugs logrus into chi's RequestLogger middleware.
type requestLogFormatter struct {
	log logrus.FieldLogger
}

func (f *requestLogFormatter) NewLogEntry(r *http.Request) middleware.LogEntry {
	return &requestLogEntry{log: f.log.WithFields(logrus.Fields{
		"request_id": middleware.GetReqID(r.Context()),
		"method":     r.Method,
		"path":       r.URL.Path,
		"remote":     r.RemoteAddr,
	})}
}

type requestLogEntry struct {
	log logrus.FieldLogger
}

func (e *requestLogEntry) Write(status, bytes int, _ http.Header, elapsed time.Duration, _ any) {
	e.log.WithFields(logrus.Fields{
		"status":     status,
		"bytes":      bytes,
		"elapsed_ms": elapsed.Milliseconds(),
	}).Debug("request handled")
}

func (e *requestLogEntry) Panic(v any, stack []byte) {
	e.log.WithFields(logrus.Fields{
		"panic": v,
		"stack": string(stack),
	}).Error("request panicked")
}
