package client

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/mvikeeper/internal/api"
	"github.com/dmitrijs2005/mvikeeper/internal/client/models"
	"github.com/dmitrijs2005/mvikeeper/internal/common"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

type GRPCClient struct {
	endpointURL string
	timeout     time.Duration
	conn        *grpc.ClientConn
	client      api.KeeperClient

	mu          sync.RWMutex
	accessToken string
}

var _ Client = (*GRPCClient)(nil)

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Set(common.AccessTokenHeaderName, token)

	return metadata.NewOutgoingContext(ctx, md)
}

func (s *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply any,
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	if token := s.AccessToken(); token != "" && method != api.LoginMethod {
		ctx = withAccessToken(ctx, token)
	}
	return invoker(ctx, method, req, reply, cc, opts...)
}

// NewKeeperClient connects lazily to endpointURL. A zero timeout leaves
// call deadlines to the caller.
func NewKeeperClient(endpointURL string, timeout time.Duration, opts ...grpc.DialOption) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL, timeout: timeout}

	dialOpts := append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(c.accessTokenInterceptor),
	}, opts...)

	conn, err := grpc.NewClient(endpointURL, dialOpts...)
	if err != nil {
		return nil, fmt.Errorf("create grpc client: %w", err)
	}
	c.conn = conn
	c.client = api.NewKeeperClient(conn)
	return c, nil
}

func (s *GRPCClient) AccessToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.accessToken
}

func (s *GRPCClient) SetAccessToken(token string) {
	s.mu.Lock()
	s.accessToken = token
	s.mu.Unlock()
}

func (s *GRPCClient) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, s.timeout)
}

func (s *GRPCClient) Login(ctx context.Context, account string) (models.User, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	resp, err := s.client.Login(ctx, wrapperspb.String(account))
	if err != nil {
		return models.User{}, s.mapError(err)
	}

	sess, err := api.SessionFromStruct(resp)
	if err != nil {
		return models.User{}, fmt.Errorf("decode login response: %w", err)
	}

	s.SetAccessToken(sess.Token)
	return models.User{Account: sess.Account, Token: sess.Token}, nil
}

// Logout forgets the token only when the server accepted the call.
func (s *GRPCClient) Logout(ctx context.Context) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	if _, err := s.client.Logout(ctx, &emptypb.Empty{}); err != nil {
		return s.mapError(err)
	}

	s.SetAccessToken("")
	return nil
}

func (s *GRPCClient) VerifyPassword(ctx context.Context, password string) (bool, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	resp, err := s.client.VerifyPassword(ctx, wrapperspb.String(password))
	if err != nil {
		return false, s.mapError(err)
	}
	return resp.GetValue(), nil
}

func (s *GRPCClient) FetchAnnouncements(ctx context.Context) ([]models.Announcement, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	resp, err := s.client.FetchAnnouncements(ctx, &emptypb.Empty{})
	if err != nil {
		return nil, s.mapError(err)
	}

	items, err := api.AnnouncementsFromList(resp)
	if err != nil {
		return nil, fmt.Errorf("decode announcements: %w", err)
	}

	out := make([]models.Announcement, 0, len(items))
	for _, a := range items {
		out = append(out, models.Announcement{UserID: a.UserID, ID: a.ID, Title: a.Title, Body: a.Body})
	}
	return out, nil
}

func (s *GRPCClient) Close() error {
	if s.conn == nil {
		return nil
	}
	return s.conn.Close()
}

func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return ErrUnavailable
	}
	st, ok := status.FromError(err)
	if !ok {
		return err
	}
	switch st.Code() {
	case codes.Unauthenticated, codes.PermissionDenied:
		return ErrUnauthorized
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	default:
		return errors.New(st.Message())
	}
}
