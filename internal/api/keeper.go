// Package api describes the KeeperService wire contract shared by the gRPC
// server and client. Messages are protobuf well-known types, so no generated
// code is needed:
//
//	Login(StringValue account) returns (Struct{account, token})
//	Logout(Empty) returns (Empty)
//	VerifyPassword(StringValue password) returns (BoolValue)
//	FetchAnnouncements(Empty) returns (ListValue of Struct{userId, id, title, body})
//
// Every method except Login requires the access token in the
// common.AccessTokenHeaderName metadata header.
package api

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

const ServiceName = "mvikeeper.v1.KeeperService"

const (
	LoginMethod              = "/" + ServiceName + "/Login"
	LogoutMethod             = "/" + ServiceName + "/Logout"
	VerifyPasswordMethod     = "/" + ServiceName + "/VerifyPassword"
	FetchAnnouncementsMethod = "/" + ServiceName + "/FetchAnnouncements"
)

// KeeperServer is implemented by the server.
type KeeperServer interface {
	Login(context.Context, *wrapperspb.StringValue) (*structpb.Struct, error)
	Logout(context.Context, *emptypb.Empty) (*emptypb.Empty, error)
	VerifyPassword(context.Context, *wrapperspb.StringValue) (*wrapperspb.BoolValue, error)
	FetchAnnouncements(context.Context, *emptypb.Empty) (*structpb.ListValue, error)
}

// KeeperClient is the client stub.
type KeeperClient interface {
	Login(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*structpb.Struct, error)
	Logout(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*emptypb.Empty, error)
	VerifyPassword(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*wrapperspb.BoolValue, error)
	FetchAnnouncements(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.ListValue, error)
}

type keeperClient struct {
	cc grpc.ClientConnInterface
}

func NewKeeperClient(cc grpc.ClientConnInterface) KeeperClient {
	return &keeperClient{cc: cc}
}

func (c *keeperClient) Login(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, LoginMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *keeperClient) Logout(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	out := new(emptypb.Empty)
	if err := c.cc.Invoke(ctx, LogoutMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *keeperClient) VerifyPassword(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*wrapperspb.BoolValue, error) {
	out := new(wrapperspb.BoolValue)
	if err := c.cc.Invoke(ctx, VerifyPasswordMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *keeperClient) FetchAnnouncements(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.ListValue, error) {
	out := new(structpb.ListValue)
	if err := c.cc.Invoke(ctx, FetchAnnouncementsMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// RegisterKeeperServer registers srv on s.
func RegisterKeeperServer(s grpc.ServiceRegistrar, srv KeeperServer) {
	s.RegisterService(&ServiceDesc, srv)
}

var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*KeeperServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Login", Handler: loginHandler},
		{MethodName: "Logout", Handler: logoutHandler},
		{MethodName: "VerifyPassword", Handler: verifyPasswordHandler},
		{MethodName: "FetchAnnouncements", Handler: fetchAnnouncementsHandler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "mvikeeper/v1/keeper.proto",
}

func loginHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(wrapperspb.StringValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(KeeperServer).Login(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: LoginMethod}
	return interceptor(ctx, in, info, func(ctx context.Context, req any) (any, error) {
		return srv.(KeeperServer).Login(ctx, req.(*wrapperspb.StringValue))
	})
}

func logoutHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(emptypb.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(KeeperServer).Logout(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: LogoutMethod}
	return interceptor(ctx, in, info, func(ctx context.Context, req any) (any, error) {
		return srv.(KeeperServer).Logout(ctx, req.(*emptypb.Empty))
	})
}

func verifyPasswordHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(wrapperspb.StringValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(KeeperServer).VerifyPassword(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: VerifyPasswordMethod}
	return interceptor(ctx, in, info, func(ctx context.Context, req any) (any, error) {
		return srv.(KeeperServer).VerifyPassword(ctx, req.(*wrapperspb.StringValue))
	})
}

func fetchAnnouncementsHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(emptypb.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(KeeperServer).FetchAnnouncements(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: FetchAnnouncementsMethod}
	return interceptor(ctx, in, info, func(ctx context.Context, req any) (any, error) {
		return srv.(KeeperServer).FetchAnnouncements(ctx, req.(*emptypb.Empty))
	})
}
