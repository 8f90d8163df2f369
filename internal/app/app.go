package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"fxconvert/internal/adapters/httpclient"
	"fxconvert/internal/api"
	"fxconvert/internal/config"
	"fxconvert/internal/conversion"
	"fxconvert/internal/conversion/handler"
	httpserver "fxconvert/internal/platform/http"
	"fxconvert/internal/platform/metrics"
	"fxconvert/internal/web"

	"github.com/sirupsen/logrus"
)

// Run wires the application components and serves HTTP until SIGINT or SIGTERM.
func Run() error {
	appCfg, err := config.Init()
	if err != nil {
		return err
	}

	logger := newLogger(appCfg.Logging)
	logger.Info("✅ Config initialization successful")
	if appCfg.ExchangeRateAPI.APIKey == "" {
		logger.Warn("EXCHANGE_RATE_API_KEY is not set, conversions between different currencies will fail")
	}

	// Root context bound to OS signals for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	router, err := newRouter(appCfg, logger)
	if err != nil {
		logger.WithError(err).Error("Failed to build router")
		return err
	}

	logger.Info("Starting http server")
	if serverErr := httpserver.Start(ctx, appCfg.HTTPServer, router, logger); serverErr != nil {
		logger.Errorf("HTTP server error: %v", serverErr)
		return serverErr
	}
	return nil
}

func newRouter(appCfg *config.AppConfig, logger logrus.FieldLogger) (http.Handler, error) {
	appMetrics := metrics.New()

	// Zero timeout leaves the outbound call unbounded
	baseHTTPClient := &http.Client{Timeout: time.Duration(appCfg.HTTPClient.TimeoutSeconds) * time.Second}
	rateClient := httpclient.NewExchangeRateClient(
		baseHTTPClient,
		appCfg.ExchangeRateAPI.BaseURL,
		appCfg.ExchangeRateAPI.APIKey,
		appMetrics,
	)
	conversionService := conversion.NewService(rateClient, appMetrics)

	view, err := web.Templates()
	if err != nil {
		return nil, err
	}
	currencies := conversion.NewCurrencies(appCfg.Form.Currencies, appCfg.Form.DefaultFrom, appCfg.Form.DefaultTo)
	conversionHandler := handler.NewConversionHandler(
		conversionService,
		view,
		currencies,
		appCfg.Form.DefaultFrom,
		appCfg.Form.DefaultTo,
		logger,
	)

	return api.NewRouter(conversionHandler, appMetrics.Handler(), web.Static(), logger), nil
}

func newLogger(cfg config.Logging) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stdout)
	if parsedLvl, parseErr := logrus.ParseLevel(cfg.Level); parseErr != nil {
		logger.SetLevel(logrus.InfoLevel)
	} else {
		logger.SetLevel(parsedLvl)
	}
	if strings.EqualFold(cfg.Format, "json") {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return logger
}
