// Package client talks to the KeeperService backend.
//
// # Overview
//
// Client is the transport-agnostic contract the use cases depend on:
// Login/Logout, VerifyPassword and FetchAnnouncements. GRPCClient implements
// it over a single gRPC connection, injects the session token through a unary
// interceptor and applies a per-call timeout.
//
// # Error Handling
//
// gRPC status codes are mapped to sentinel errors that callers can match with
// errors.Is: ErrUnavailable and ErrUnauthorized. Their text is what the
// user sees, since use cases pass backend messages through unchanged.
// ErrUnauthorized also matches common.ErrUnauthorized.
//
// Concurrency & Contexts
//
// GRPCClient is safe for concurrent use. All operations honor context
// cancellation.
package client
