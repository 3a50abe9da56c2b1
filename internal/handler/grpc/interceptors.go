package grpc

import (
	"context"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/MKhiriev/go-config-keeper/internal/logger"
	"github.com/MKhiriev/go-config-keeper/internal/utils"
)

// ServerOptions returns the interceptor chain of the configuration server.
// The recovery interceptor is the innermost one so that logging and metrics
// observe codes.Internal for a panicking handler.
func (h *Handler) ServerOptions() []grpc.ServerOption {
	return []grpc.ServerOption{
		grpc.ChainUnaryInterceptor(
			h.traceIDUnaryInterceptor,
			h.loggingUnaryInterceptor,
			h.metricsUnaryInterceptor,
			h.recoveryUnaryInterceptor,
		),
		grpc.ChainStreamInterceptor(
			h.traceIDStreamInterceptor,
			h.loggingStreamInterceptor,
			h.metricsStreamInterceptor,
			h.recoveryStreamInterceptor,
		),
	}
}

// contextStream overrides the context of a server stream.
type contextStream struct {
	grpc.ServerStream
	ctx context.Context
}

func (s *contextStream) Context() context.Context {
	return s.ctx
}

// withTraceID reads the trace id sent by the gateway, generating one when
// absent, and stores it together with a child logger in ctx.
func (h *Handler) withTraceID(ctx context.Context) context.Context {
	var traceID string
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if values := md.Get(utils.TraceIDMetadataKey); len(values) > 0 {
			traceID = values[0]
		}
	}
	if traceID == "" {
		traceID = utils.NewTraceID()
	}

	l := h.logger.WithTraceID(traceID)
	return utils.WithTraceID(l.WithContext(ctx), traceID)
}

func (h *Handler) traceIDUnaryInterceptor(ctx context.Context, req any, _ *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	return handler(h.withTraceID(ctx), req)
}

func (h *Handler) traceIDStreamInterceptor(srv any, ss grpc.ServerStream, _ *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
	return handler(srv, &contextStream{ServerStream: ss, ctx: h.withTraceID(ss.Context())})
}

func logCall(ctx context.Context, method string, started time.Time, err error) {
	logger.FromContext(ctx).Info().
		Str("method", method).
		Str("code", status.Code(err).String()).
		Dur("duration", time.Since(started)).
		Send()
}

func (h *Handler) loggingUnaryInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	started := time.Now()
	resp, err := handler(ctx, req)
	logCall(ctx, info.FullMethod, started, err)
	return resp, err
}

func (h *Handler) loggingStreamInterceptor(srv any, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
	started := time.Now()
	err := handler(srv, ss)
	logCall(ss.Context(), info.FullMethod, started, err)
	return err
}

func (h *Handler) metricsUnaryInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	if h.metrics == nil {
		return handler(ctx, req)
	}

	started := time.Now()
	resp, err := handler(ctx, req)
	h.metrics.ObserveRPC(info.FullMethod, status.Code(err).String(), started)
	return resp, err
}

func (h *Handler) metricsStreamInterceptor(srv any, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
	if h.metrics == nil {
		return handler(srv, ss)
	}

	started := time.Now()
	err := handler(srv, ss)
	h.metrics.ObserveRPC(info.FullMethod, status.Code(err).String(), started)
	return err
}

func (h *Handler) recoveryUnaryInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (resp any, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = panicStatus(ctx, info.FullMethod, rec)
		}
	}()
	return handler(ctx, req)
}

func (h *Handler) recoveryStreamInterceptor(srv any, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = panicStatus(ss.Context(), info.FullMethod, rec)
		}
	}()
	return handler(srv, ss)
}

func panicStatus(ctx context.Context, method string, rec any) error {
	logger.FromContext(ctx).Error().
		Str("method", method).
		Interface("panic", rec).
		Msg("recovered from handler panic")
	return status.Error(codes.Internal, "internal error")
}
