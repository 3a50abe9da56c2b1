// Package grpc implements the gRPC transport of the configuration server.
//
// Handler serves the ConfigurationServer service from package configrpc on
// top of the service layer responders. Unary and streaming interceptors
// attach the caller's trace id to the request context, write an access log
// line, observe call durations and turn handler panics into
// codes.Internal.
package grpc
