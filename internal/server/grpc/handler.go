package grpc

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/mvikeeper/internal/api"
	"github.com/dmitrijs2005/mvikeeper/internal/common"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// emptyAccountMessage is shown to the user as is.
const emptyAccountMessage = "帳號不能為空"

func (s *GRPCServer) Login(ctx context.Context, req *wrapperspb.StringValue) (*structpb.Struct, error) {
	session, err := s.sessions.Login(ctx, req.GetValue())
	if err != nil {
		if errors.Is(err, common.ErrEmptyAccount) {
			return nil, status.Error(codes.InvalidArgument, emptyAccountMessage)
		}
		s.logger.Error(ctx, "login failed", "error", err)
		return nil, status.Error(codes.Internal, "internal error")
	}

	s.logger.Info(ctx, "Logged in", "account", session.Account, "user_id", session.UserID)
	return api.SessionToStruct(api.Session{Account: session.Account, Token: session.Token}), nil
}

func (s *GRPCServer) Logout(ctx context.Context, _ *emptypb.Empty) (*emptypb.Empty, error) {
	principal, ok := PrincipalFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "missing token")
	}

	if err := s.sessions.Logout(ctx, principal.TokenID); err != nil {
		if errors.Is(err, common.ErrInvalidToken) {
			return nil, status.Error(codes.Unauthenticated, err.Error())
		}
		s.logger.Error(ctx, "logout failed", "error", err)
		return nil, status.Error(codes.Internal, "internal error")
	}

	s.logger.Info(ctx, "Logged out", "account", principal.Account)
	return &emptypb.Empty{}, nil
}

func (s *GRPCServer) VerifyPassword(ctx context.Context, req *wrapperspb.StringValue) (*wrapperspb.BoolValue, error) {
	ok := s.verifier.Verify(ctx, req.GetValue())
	if principal, found := PrincipalFromContext(ctx); found {
		s.logger.Info(ctx, "Password verification", "account", principal.Account, "ok", ok)
	}
	return wrapperspb.Bool(ok), nil
}

func (s *GRPCServer) FetchAnnouncements(ctx context.Context, _ *emptypb.Empty) (*structpb.ListValue, error) {
	items, err := s.announcements.List(ctx)
	if err != nil {
		s.logger.Error(ctx, "fetch announcements failed", "error", err)
		return nil, status.Error(codes.Internal, "internal error")
	}

	out := make([]api.Announcement, 0, len(items))
	for _, a := range items {
		out = append(out, api.Announcement{UserID: a.UserID, ID: a.ID, Title: a.Title, Body: a.Body})
	}
	return api.AnnouncementsToList(out), nil
}
