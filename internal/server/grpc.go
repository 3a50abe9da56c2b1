package server

import (
	"context"
	"fmt"
	"net"

	"google.golang.org/grpc"

	"github.com/MKhiriev/go-config-keeper/internal/configrpc"
	myGRPC "github.com/MKhiriev/go-config-keeper/internal/handler/grpc"
	"github.com/MKhiriev/go-config-keeper/internal/logger"
)

type grpcServer struct {
	server   *grpc.Server
	listener net.Listener

	logger *logger.Logger
}

func newGRPCServer(handler *myGRPC.Handler, address string, logger *logger.Logger) (*grpcServer, error) {
	listener, err := net.Listen("tcp", address)
	if err != nil {
		return nil, fmt.Errorf("error listening grpc on %s: %w", address, err)
	}

	server := grpc.NewServer(handler.ServerOptions()...)
	configrpc.RegisterConfigurationServerServer(server, handler)

	return &grpcServer{
		server:   server,
		listener: listener,
		logger:   logger,
	}, nil
}

func (g *grpcServer) Addr() net.Addr {
	return g.listener.Addr()
}

func (g *grpcServer) RunServer() error {
	g.logger.Info().Str("address", g.Addr().String()).Msg("gRPC server listening")
	if err := g.server.Serve(g.listener); err != nil {
		return fmt.Errorf("gRPC server Serve: %w", err)
	}
	return nil
}

// Shutdown waits for running calls to finish. Calls still running when ctx
// is done are cancelled.
func (g *grpcServer) Shutdown(ctx context.Context) {
	g.logger.Info().Msg("gRPC server Shutdown")

	stopped := make(chan struct{})
	go func() {
		g.server.GracefulStop()
		close(stopped)
	}()

	select {
	case <-stopped:
	case <-ctx.Done():
		g.logger.Warn().Msg("gRPC graceful stop timed out, stopping")
		g.server.Stop()
		<-stopped
	}
}
