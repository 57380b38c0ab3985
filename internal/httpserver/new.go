package httpserver

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"

	analyticsHTTP "customer-support-agent/internal/analytics/delivery/http"
	"customer-support-agent/internal/chat"
	tgDelivery "customer-support-agent/internal/chat/delivery/telegram"
	"customer-support-agent/internal/order"
	profileHTTP "customer-support-agent/internal/profile/delivery/http"
	"customer-support-agent/pkg/log"
)

const shutdownTimeout = 10 * time.Second

// ReadyFunc reports whether a dependency can serve traffic.
type ReadyFunc func(ctx context.Context) error

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin            *gin.Engine
	l              log.Logger
	port           int
	mode           string
	environment    string
	allowedOrigins []string

	// Domains
	chatUC          chat.UseCase
	orderUC         order.UseCase
	analytics       analyticsHTTP.Reader
	profiles        profileHTTP.Reader
	telegramHandler tgDelivery.Handler

	// Observability
	gatherer prometheus.Gatherer
	ready    ReadyFunc
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger         log.Logger
	Port           int
	Mode           string
	Environment    string
	AllowedOrigins []string

	ChatUseCase     chat.UseCase
	OrderUseCase    order.UseCase
	TelegramHandler tgDelivery.Handler

	// Analytics and Profiles back the read-only insight routes. Nil skips them.
	Analytics analyticsHTTP.Reader
	Profiles  profileHTTP.Reader

	// Gatherer backs /metrics. Nil means the default Prometheus registry.
	Gatherer prometheus.Gatherer
	// Ready backs /ready. Nil means always ready.
	Ready ReadyFunc
}

// New creates a new HTTPServer instance and registers every route.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		allowedOrigins:  cfg.AllowedOrigins,
		chatUC:          cfg.ChatUseCase,
		orderUC:         cfg.OrderUseCase,
		analytics:       cfg.Analytics,
		profiles:        cfg.Profiles,
		telegramHandler: cfg.TelegramHandler,
		gatherer:        cfg.Gatherer,
		ready:           cfg.Ready,
	}
	if srv.gatherer == nil {
		srv.gatherer = prometheus.DefaultGatherer
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}
	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.chatUC == nil {
		return errors.New("chat use case is required")
	}
	if srv.orderUC == nil {
		return errors.New("order use case is required")
	}
	return nil
}

// Handler exposes the router, mainly for tests.
func (srv *HTTPServer) Handler() http.Handler {
	return srv.gin
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (srv *HTTPServer) Run(ctx context.Context) error {
	httpSrv := &http.Server{
		Addr:              fmt.Sprintf(":%d", srv.port),
		Handler:           srv.gin,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		srv.l.Infof(ctx, "HTTP server listening on %s", httpSrv.Addr)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	srv.l.Info(ctx, "Shutting down HTTP server...")
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return <-errCh
}
