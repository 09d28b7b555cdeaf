package paletted

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/status"

	"github.com/wsuwp/colorpalette/internal/config"
)

// DefaultPort is the default daemon listen port.
const DefaultPort = config.DefaultDaemonPort

// Options configure the daemon runtime.
type Options struct {
	Hostname string
	Port     int
	Version  string
}

// Daemon owns the gRPC listener.
type Daemon struct {
	cfg    *config.Config
	logger zerolog.Logger
	opts   Options

	server     *Server
	limiter    *RateLimiter
	grpcServer *grpc.Server
}

// New constructs a daemon. Empty options fall back to cfg.Daemon.
func New(cfg *config.Config, backend Backend, logger zerolog.Logger, opts Options) (*Daemon, error) {
	if cfg == nil {
		return nil, errors.New("config is required")
	}
	if opts.Hostname == "" {
		opts.Hostname = cfg.Daemon.Host
	}
	if opts.Hostname == "" {
		opts.Hostname = "127.0.0.1"
	}
	if opts.Port == 0 {
		opts.Port = cfg.Daemon.Port
	}
	if opts.Port == 0 {
		opts.Port = DefaultPort
	}

	limiter := newLimiter(cfg.Daemon.RateLimit)
	server := NewServer(backend, logger, WithVersion(opts.Version), WithRateLimiter(limiter))

	grpcServer := grpc.NewServer(grpc.ChainUnaryInterceptor(
		limiter.UnaryServerInterceptor(),
		loggingInterceptor(logger),
	))
	RegisterPaletteServiceServer(grpcServer, server)

	return &Daemon{
		cfg:        cfg,
		logger:     logger,
		opts:       opts,
		server:     server,
		limiter:    limiter,
		grpcServer: grpcServer,
	}, nil
}

func newLimiter(cfg config.RateLimitConfig) *RateLimiter {
	opts := []RateLimiterOption{WithEnabled(cfg.Enabled)}
	if cfg.RequestsPerSecond > 0 && cfg.Burst > 0 {
		opts = append(opts, WithGlobalLimit(RateLimitConfig{
			RequestsPerSecond: cfg.RequestsPerSecond,
			BurstSize:         cfg.Burst,
		}))
	}
	return NewRateLimiter(opts...)
}

// Run listens on the configured address and blocks until ctx is canceled.
func (d *Daemon) Run(ctx context.Context) error {
	if ctx == nil {
		return errors.New("context is required")
	}

	bindAddr := d.bindAddr()
	listener, err := net.Listen("tcp", bindAddr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", bindAddr, err)
	}
	return d.Serve(ctx, listener)
}

// Serve serves on listener until ctx is canceled.
func (d *Daemon) Serve(ctx context.Context, listener net.Listener) error {
	d.logger.Info().
		Str("bind", listener.Addr().String()).
		Str("version", d.opts.Version).
		Msg("palette daemon starting")

	errCh := make(chan error, 1)
	go func() {
		if err := d.grpcServer.Serve(listener); err != nil {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		d.logger.Info().Msg("palette daemon shutting down")
		d.grpcServer.GracefulStop()
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("gRPC server error: %w", err)
		}
	}

	d.logger.Info().Msg("palette daemon stopped")
	return nil
}

func (d *Daemon) bindAddr() string {
	return net.JoinHostPort(d.opts.Hostname, strconv.Itoa(d.opts.Port))
}

// Server returns the service implementation.
func (d *Daemon) Server() *Server {
	return d.server
}

// RateLimiter returns the daemon's limiter.
func (d *Daemon) RateLimiter() *RateLimiter {
	return d.limiter
}

func loggingInterceptor(logger zerolog.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()
		resp, err := handler(ctx, req)
		logger.Debug().
			Str("method", info.FullMethod).
			Str("code", status.Code(err).String()).
			Dur("duration", time.Since(start)).
			Msg("rpc")
		return resp, err
	}
}
