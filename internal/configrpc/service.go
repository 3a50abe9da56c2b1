package configrpc

import (
	"context"

	"google.golang.org/grpc"
)

const (
	// ServiceName is the fully-qualified gRPC service name.
	ServiceName = "configuration.ConfigurationServer"

	LoadConfigurationFullMethodName      = "/configuration.ConfigurationServer/LoadConfiguration"
	LoadNodesConfigurationFullMethodName = "/configuration.ConfigurationServer/LoadNodesConfiguration"
)

// ConfigurationServerClient is the client API for the ConfigurationServer service.
type ConfigurationServerClient interface {
	// LoadConfiguration returns the configuration of the calling client machine.
	LoadConfiguration(ctx context.Context, in *LoadConfigurationRequest, opts ...grpc.CallOption) (*LoadConfigurationResponse, error)

	// LoadNodesConfiguration streams one response per requested node.
	LoadNodesConfiguration(ctx context.Context, in *LoadNodesConfigurationRequest, opts ...grpc.CallOption) (grpc.ServerStreamingClient[LoadNodesConfigurationResponse], error)
}

type configurationServerClient struct {
	cc grpc.ClientConnInterface
}

// NewConfigurationServerClient builds a typed client on top of cc. Every call
// is sent with the CBOR content-subtype.
func NewConfigurationServerClient(cc grpc.ClientConnInterface) ConfigurationServerClient {
	return &configurationServerClient{cc: cc}
}

func (c *configurationServerClient) LoadConfiguration(ctx context.Context, in *LoadConfigurationRequest, opts ...grpc.CallOption) (*LoadConfigurationResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.CallContentSubtype(Name)}, opts...)
	out := new(LoadConfigurationResponse)
	if err := c.cc.Invoke(ctx, LoadConfigurationFullMethodName, in, out, cOpts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *configurationServerClient) LoadNodesConfiguration(ctx context.Context, in *LoadNodesConfigurationRequest, opts ...grpc.CallOption) (grpc.ServerStreamingClient[LoadNodesConfigurationResponse], error) {
	cOpts := append([]grpc.CallOption{grpc.CallContentSubtype(Name)}, opts...)
	stream, err := c.cc.NewStream(ctx, &ConfigurationServerServiceDesc.Streams[0], LoadNodesConfigurationFullMethodName, cOpts...)
	if err != nil {
		return nil, err
	}

	x := &grpc.GenericClientStream[LoadNodesConfigurationRequest, LoadNodesConfigurationResponse]{ClientStream: stream}
	if err = x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err = x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}

// ConfigurationServerServer is the server API for the ConfigurationServer service.
type ConfigurationServerServer interface {
	LoadConfiguration(context.Context, *LoadConfigurationRequest) (*LoadConfigurationResponse, error)
	LoadNodesConfiguration(*LoadNodesConfigurationRequest, grpc.ServerStreamingServer[LoadNodesConfigurationResponse]) error
}

// RegisterConfigurationServerServer registers srv on the gRPC service registrar.
func RegisterConfigurationServerServer(s grpc.ServiceRegistrar, srv ConfigurationServerServer) {
	s.RegisterService(&ConfigurationServerServiceDesc, srv)
}

func loadConfigurationHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(LoadConfigurationRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ConfigurationServerServer).LoadConfiguration(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: LoadConfigurationFullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ConfigurationServerServer).LoadConfiguration(ctx, req.(*LoadConfigurationRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func loadNodesConfigurationHandler(srv any, stream grpc.ServerStream) error {
	m := new(LoadNodesConfigurationRequest)
	if err := stream.RecvMsg(m); err != nil {
		return err
	}
	return srv.(ConfigurationServerServer).LoadNodesConfiguration(m, &grpc.GenericServerStream[LoadNodesConfigurationRequest, LoadNodesConfigurationResponse]{ServerStream: stream})
}

// ConfigurationServerServiceDesc is the grpc.ServiceDesc for the
// ConfigurationServer service.
var ConfigurationServerServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*ConfigurationServerServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "LoadConfiguration",
			Handler:    loadConfigurationHandler,
		},
	},
	Streams: []grpc.StreamDesc{
		{
			StreamName:    "LoadNodesConfiguration",
			Handler:       loadNodesConfigurationHandler,
			ServerStreams: true,
		},
	},
	Metadata: "configuration.cbor",
}
