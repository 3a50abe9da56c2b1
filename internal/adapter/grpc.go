package adapter

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"io"
	"iter"
	"net"
	"net/url"

	"github.com/MKhiriev/go-config-keeper/internal/config"
	"github.com/MKhiriev/go-config-keeper/internal/configrpc"
	"github.com/MKhiriev/go-config-keeper/internal/logger"
	"github.com/MKhiriev/go-config-keeper/internal/utils"
	"github.com/MKhiriev/go-config-keeper/models"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
)

type grpcConfigurationServerAdapter struct {
	conn   *grpc.ClientConn
	client configrpc.ConfigurationServerClient

	logger *logger.Logger
}

// NewGRPCConfigurationServerAdapter creates the channel to the configuration
// server described by cfg.ConfigurationServerURL. The https scheme selects
// TLS transport credentials, any other scheme a plaintext connection. The
// channel connects lazily on the first call; extra opts are appended to the
// defaults.
func NewGRPCConfigurationServerAdapter(cfg config.Adapter, logger *logger.Logger, opts ...grpc.DialOption) (ConfigurationServerAdapter, error) {
	target, creds, err := dialTarget(cfg.ConfigurationServerURL)
	if err != nil {
		return nil, err
	}

	dialOpts := append([]grpc.DialOption{
		grpc.WithTransportCredentials(creds),
		grpc.WithUnaryInterceptor(traceIDUnaryClientInterceptor),
		grpc.WithStreamInterceptor(traceIDStreamClientInterceptor),
	}, opts...)

	conn, err := grpc.NewClient(target, dialOpts...)
	if err != nil {
		return nil, fmt.Errorf("error creating grpc client for %s: %w", target, err)
	}

	return &grpcConfigurationServerAdapter{
		conn:   conn,
		client: configrpc.NewConfigurationServerClient(conn),
		logger: logger,
	}, nil
}

func (a *grpcConfigurationServerAdapter) LoadConfiguration(ctx context.Context, identity models.ClientIdentity) (*configrpc.LoadConfigurationResponse, error) {
	resp, err := a.client.LoadConfiguration(ctx, &configrpc.LoadConfigurationRequest{
		ClientMachineIP:   identity.IP,
		ClientMachineName: identity.Name,
	})
	if err != nil {
		return nil, mapGRPCError(err)
	}

	return resp, nil
}

func (a *grpcConfigurationServerAdapter) LoadNodesConfiguration(ctx context.Context, request models.NodeRequest) iter.Seq2[*configrpc.LoadNodesConfigurationResponse, error] {
	return func(yield func(*configrpc.LoadNodesConfigurationResponse, error) bool) {
		ctx, cancel := context.WithCancel(ctx)
		defer cancel()

		stream, err := a.client.LoadNodesConfiguration(ctx, &configrpc.LoadNodesConfigurationRequest{
			NodeNames: request.RequestedNames,
		})
		if err != nil {
			yield(nil, mapGRPCError(err))
			return
		}

		for {
			resp, err := stream.Recv()
			if errors.Is(err, io.EOF) {
				return
			}
			if err != nil {
				yield(nil, mapGRPCError(err))
				return
			}
			if !yield(resp, nil) {
				return
			}
		}
	}
}

func (a *grpcConfigurationServerAdapter) Close() error {
	return a.conn.Close()
}

// dialTarget turns an absolute URI into a gRPC target and the transport
// credentials its scheme asks for. A missing port defaults to 443 for https
// and 80 otherwise. The passthrough resolver hands the address to the dialer
// unchanged.
func dialTarget(rawURL string) (string, credentials.TransportCredentials, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrInvalidConfigurationServerURL, err)
	}
	if !u.IsAbs() || u.Hostname() == "" {
		return "", nil, fmt.Errorf("%w: %q is not an absolute uri", ErrInvalidConfigurationServerURL, rawURL)
	}

	port := u.Port()
	var creds credentials.TransportCredentials
	if u.Scheme == "https" {
		creds = credentials.NewTLS(&tls.Config{MinVersion: tls.VersionTLS12})
		if port == "" {
			port = "443"
		}
	} else {
		creds = insecure.NewCredentials()
		if port == "" {
			port = "80"
		}
	}

	return "passthrough:///" + net.JoinHostPort(u.Hostname(), port), creds, nil
}

func withOutgoingTraceID(ctx context.Context) context.Context {
	if traceID, ok := utils.GetTraceIDFromContext(ctx); ok {
		return metadata.AppendToOutgoingContext(ctx, utils.TraceIDMetadataKey, traceID)
	}
	return ctx
}

func traceIDUnaryClientInterceptor(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, invoker grpc.UnaryInvoker, opts ...grpc.CallOption) error {
	return invoker(withOutgoingTraceID(ctx), method, req, reply, cc, opts...)
}

func traceIDStreamClientInterceptor(ctx context.Context, desc *grpc.StreamDesc, cc *grpc.ClientConn, method string, streamer grpc.Streamer, opts ...grpc.CallOption) (grpc.ClientStream, error) {
	return streamer(withOutgoingTraceID(ctx), desc, cc, method, opts...)
}
