// Package grpc exposes the services over the KeeperService gRPC contract.
package grpc

import (
	"context"
	"net"
	"time"

	"github.com/dmitrijs2005/mvikeeper/internal/api"
	"github.com/dmitrijs2005/mvikeeper/internal/logging"
	"github.com/dmitrijs2005/mvikeeper/internal/server/models"
	"github.com/dmitrijs2005/mvikeeper/internal/server/services"
	"google.golang.org/grpc"
)

type Sessions interface {
	Login(ctx context.Context, account string) (*services.Session, error)
	Authenticate(ctx context.Context, token string) (*services.Principal, error)
	Logout(ctx context.Context, tokenID string) error
}

type PasswordVerifier interface {
	Verify(ctx context.Context, password string) bool
}

type AnnouncementLister interface {
	List(ctx context.Context) ([]models.Announcement, error)
}

type GRPCServer struct {
	address       string
	sessions      Sessions
	verifier      PasswordVerifier
	announcements AnnouncementLister
	logger        logging.Logger
	latency       time.Duration
}

var _ api.KeeperServer = (*GRPCServer)(nil)

// Option configures a GRPCServer.
type Option func(*GRPCServer)

// WithLatency delays every call by d before it is handled.
func WithLatency(d time.Duration) Option {
	return func(s *GRPCServer) { s.latency = d }
}

func NewGRPCServer(address string, l logging.Logger, sessions Sessions, verifier PasswordVerifier, announcements AnnouncementLister, opts ...Option) *GRPCServer {
	s := &GRPCServer{
		address:       address,
		logger:        l.With("module", "grpc_server"),
		sessions:      sessions,
		verifier:      verifier,
		announcements: announcements,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewServer builds a grpc.Server with the interceptors and the service
// registered.
func (s *GRPCServer) NewServer() *grpc.Server {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(
		s.loggingInterceptor,
		s.latencyInterceptor,
		s.accessTokenInterceptor,
	))
	api.RegisterKeeperServer(srv, s)
	return srv
}

// Run listens on the configured address until ctx is cancelled.
func (s *GRPCServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.Serve(ctx, listen)
}

// Serve accepts connections on lis and stops gracefully when ctx is done.
func (s *GRPCServer) Serve(ctx context.Context, lis net.Listener) error {
	srv := s.NewServer()

	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", lis.Addr().String())

	if err := srv.Serve(lis); err != nil {
		return err
	}
	<-stopped
	return nil
}
