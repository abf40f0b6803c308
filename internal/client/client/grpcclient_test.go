package client

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/mvikeeper/internal/api"
	"github.com/dmitrijs2005/mvikeeper/internal/client/models"
	"github.com/dmitrijs2005/mvikeeper/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

type fakePB struct {
	lastLoginReq  *wrapperspb.StringValue
	lastVerifyReq *wrapperspb.StringValue
	lastDeadline  bool

	loginResp *structpb.Struct
	loginErr  error

	logoutErr error

	verifyResp *wrapperspb.BoolValue
	verifyErr  error

	fetchResp *structpb.ListValue
	fetchErr  error
}

func (f *fakePB) Login(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*structpb.Struct, error) {
	f.lastLoginReq = in
	_, f.lastDeadline = ctx.Deadline()
	return f.loginResp, f.loginErr
}

func (f *fakePB) Logout(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	return &emptypb.Empty{}, f.logoutErr
}

func (f *fakePB) VerifyPassword(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*wrapperspb.BoolValue, error) {
	f.lastVerifyReq = in
	return f.verifyResp, f.verifyErr
}

func (f *fakePB) FetchAnnouncements(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.ListValue, error) {
	return f.fetchResp, f.fetchErr
}

func TestInterceptor_AttachesToken(t *testing.T) {
	c := &GRPCClient{accessToken: "A1"}

	invoker := func(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, opts ...grpc.CallOption) error {
		md, _ := metadata.FromOutgoingContext(ctx)
		assert.Equal(t, []string{"A1"}, md.Get(common.AccessTokenHeaderName))
		return nil
	}

	require.NoError(t, c.accessTokenInterceptor(context.Background(), api.FetchAnnouncementsMethod, nil, nil, nil, invoker))
}

func TestInterceptor_ReplacesExistingHeader(t *testing.T) {
	c := &GRPCClient{accessToken: "new"}
	ctx := metadata.AppendToOutgoingContext(context.Background(), common.AccessTokenHeaderName, "old")

	invoker := func(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, opts ...grpc.CallOption) error {
		md, _ := metadata.FromOutgoingContext(ctx)
		assert.Equal(t, []string{"new"}, md.Get(common.AccessTokenHeaderName))
		return nil
	}

	require.NoError(t, c.accessTokenInterceptor(ctx, api.LogoutMethod, nil, nil, nil, invoker))
}

func TestInterceptor_SkipsLoginAndEmptyToken(t *testing.T) {
	invoker := func(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, opts ...grpc.CallOption) error {
		md, _ := metadata.FromOutgoingContext(ctx)
		assert.Empty(t, md.Get(common.AccessTokenHeaderName), method)
		return nil
	}

	withToken := &GRPCClient{accessToken: "A1"}
	require.NoError(t, withToken.accessTokenInterceptor(context.Background(), api.LoginMethod, nil, nil, nil, invoker))

	noToken := &GRPCClient{}
	require.NoError(t, noToken.accessTokenInterceptor(context.Background(), api.LogoutMethod, nil, nil, nil, invoker))
}

func TestMapError(t *testing.T) {
	c := &GRPCClient{}

	assert.NoError(t, c.mapError(nil))
	assert.ErrorIs(t, c.mapError(status.Error(codes.Unauthenticated, "x")), ErrUnauthorized)
	assert.ErrorIs(t, c.mapError(status.Error(codes.PermissionDenied, "x")), ErrUnauthorized)
	assert.ErrorIs(t, c.mapError(status.Error(codes.Unauthenticated, "x")), common.ErrUnauthorized)
	assert.EqualError(t, ErrUnauthorized, "登入已失效，請重新登入")
	assert.ErrorIs(t, c.mapError(status.Error(codes.Unavailable, "x")), ErrUnavailable)
	assert.ErrorIs(t, c.mapError(status.Error(codes.DeadlineExceeded, "x")), ErrUnavailable)
	assert.ErrorIs(t, c.mapError(context.DeadlineExceeded), ErrUnavailable)
	assert.EqualError(t, c.mapError(status.Error(codes.InvalidArgument, "account must not be empty")), "account must not be empty")

	plain := errors.New("plain")
	assert.Same(t, plain, c.mapError(plain))
}

func TestLogin_SetsTokenAndAppliesTimeout(t *testing.T) {
	f := &fakePB{loginResp: api.SessionToStruct(api.Session{Account: "alice", Token: "jwt"})}
	c := &GRPCClient{client: f, timeout: time.Second}

	u, err := c.Login(context.Background(), "alice")
	require.NoError(t, err)

	assert.Equal(t, models.User{Account: "alice", Token: "jwt"}, u)
	assert.Equal(t, "alice", f.lastLoginReq.GetValue())
	assert.Equal(t, "jwt", c.AccessToken())
	assert.True(t, f.lastDeadline)
}

func TestLogin_MapsErrorAndMalformedResponse(t *testing.T) {
	c := &GRPCClient{client: &fakePB{loginErr: status.Error(codes.Unavailable, "down")}}
	_, err := c.Login(context.Background(), "alice")
	require.ErrorIs(t, err, ErrUnavailable)

	c = &GRPCClient{client: &fakePB{loginResp: &structpb.Struct{}}}
	_, err = c.Login(context.Background(), "alice")
	require.ErrorIs(t, err, api.ErrMalformedMessage)
	assert.Empty(t, c.AccessToken())
}

func TestLogout_ClearsTokenOnlyOnSuccess(t *testing.T) {
	c := &GRPCClient{client: &fakePB{logoutErr: status.Error(codes.Unavailable, "down")}, accessToken: "jwt"}
	require.ErrorIs(t, c.Logout(context.Background()), ErrUnavailable)
	assert.Equal(t, "jwt", c.AccessToken())

	c = &GRPCClient{client: &fakePB{}, accessToken: "jwt"}
	require.NoError(t, c.Logout(context.Background()))
	assert.Empty(t, c.AccessToken())
}

func TestVerifyPassword(t *testing.T) {
	f := &fakePB{verifyResp: wrapperspb.Bool(true)}
	c := &GRPCClient{client: f}

	ok, err := c.VerifyPassword(context.Background(), "123456")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "123456", f.lastVerifyReq.GetValue())

	c = &GRPCClient{client: &fakePB{verifyErr: status.Error(codes.Unauthenticated, "revoked")}}
	_, err = c.VerifyPassword(context.Background(), "x")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestFetchAnnouncements(t *testing.T) {
	list := api.AnnouncementsToList([]api.Announcement{{UserID: 1, ID: 2, Title: "t", Body: "b"}})
	c := &GRPCClient{client: &fakePB{fetchResp: list}}

	got, err := c.FetchAnnouncements(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []models.Announcement{{UserID: 1, ID: 2, Title: "t", Body: "b"}}, got)

	c = &GRPCClient{client: &fakePB{fetchErr: status.Error(codes.Internal, "db down")}}
	_, err = c.FetchAnnouncements(context.Background())
	assert.EqualError(t, err, "db down")
}

func TestNewKeeperClient(t *testing.T) {
	c, err := NewKeeperClient("127.0.0.1:0", time.Second)
	require.NoError(t, err)
	c.SetAccessToken("restored")
	assert.Equal(t, "restored", c.AccessToken())
	require.NoError(t, c.Close())
}
