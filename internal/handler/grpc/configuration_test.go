package grpc

import (
	"context"
	"io"
	"iter"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	"github.com/MKhiriev/go-config-keeper/internal/configrpc"
	"github.com/MKhiriev/go-config-keeper/internal/logger"
	"github.com/MKhiriev/go-config-keeper/internal/metric"
	"github.com/MKhiriev/go-config-keeper/internal/mock"
	"github.com/MKhiriev/go-config-keeper/internal/service"
	"github.com/MKhiriev/go-config-keeper/internal/utils"
	"github.com/MKhiriev/go-config-keeper/models"
)

var node1 = models.NodeConfig{
	NodeName: "Node1",
	App:      models.ApplicationConfig{MaxThreadPoolSize: 16, Mode: models.Stage},
	DB:       models.DatabaseConfig{ConnectionString: "Server=node1;", TimeoutMs: 2500},
}

func newBufconnClient(t *testing.T, svc service.ConfigurationService, metrics *metric.Metrics) configrpc.ConfigurationServerClient {
	t.Helper()

	h := NewHandler(&service.Services{ConfigurationService: svc}, metrics, logger.Nop())

	lis := bufconn.Listen(1 << 20)
	s := grpc.NewServer(h.ServerOptions()...)
	configrpc.RegisterConfigurationServerServer(s, h)
	go func() { _ = s.Serve(lis) }()
	t.Cleanup(s.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return configrpc.NewConfigurationServerClient(conn)
}

func seqOf(results ...models.ConfigResult) iter.Seq[models.ConfigResult] {
	return func(yield func(models.ConfigResult) bool) {
		for _, r := range results {
			if !yield(r) {
				return
			}
		}
	}
}

func TestLoadConfiguration_Body(t *testing.T) {
	svc := mock.NewMockConfigurationService(gomock.NewController(t))
	svc.EXPECT().
		LoadConfig(gomock.Any(), models.ClientIdentity{IP: "10.0.0.1", Name: "Node1"}).
		Return(models.Succeed(node1))

	client := newBufconnClient(t, svc, nil)

	resp, err := client.LoadConfiguration(context.Background(), &configrpc.LoadConfigurationRequest{
		ClientMachineIP:   "10.0.0.1",
		ClientMachineName: "Node1",
	})
	require.NoError(t, err)

	require.Equal(t, configrpc.BodyOrErrorBody, resp.BodyOrErrorCase())
	body := resp.BodyOrError.(*configrpc.LoadConfigurationResponseBody)
	assert.Equal(t, configrpc.ApplicationConfiguration{MaxThreadPoolSize: 16, Mode: configrpc.RunningModeStage}, body.App)
	assert.Equal(t, configrpc.DatabaseConfiguration{ConnectionString: "Server=node1;", Timeout: 2500}, body.Database)
}

func TestLoadConfiguration_ErrorContainer(t *testing.T) {
	svc := mock.NewMockConfigurationService(gomock.NewController(t))
	svc.EXPECT().
		LoadConfig(gomock.Any(), models.ClientIdentity{}).
		Return(models.Fail[models.NodeConfig](
			models.Error{Code: models.CodeMissingIP, Message: "IP address is required."},
			models.Error{Code: models.CodeMissingName, Message: "Name is required."},
		))

	client := newBufconnClient(t, svc, nil)

	resp, err := client.LoadConfiguration(context.Background(), &configrpc.LoadConfigurationRequest{})
	require.NoError(t, err)

	require.Equal(t, configrpc.BodyOrErrorErrorContainer, resp.BodyOrErrorCase())
	assert.Equal(t, []configrpc.Error{
		{Code: "1", Message: "IP address is required."},
		{Code: "2", Message: "Name is required."},
	}, resp.BodyOrError.(*configrpc.ErrorContainer).Errors)
}

func TestLoadConfiguration_InvalidModeIsInternal(t *testing.T) {
	broken := node1
	broken.App.Mode = models.RunningMode(9)

	svc := mock.NewMockConfigurationService(gomock.NewController(t))
	svc.EXPECT().LoadConfig(gomock.Any(), gomock.Any()).Return(models.Succeed(broken))

	registry := metric.NewMetricsRegistry()
	client := newBufconnClient(t, svc, registry.CoreMetrics())

	_, err := client.LoadConfiguration(context.Background(), &configrpc.LoadConfigurationRequest{
		ClientMachineIP:   "10.0.0.1",
		ClientMachineName: "Node1",
	})

	assert.Equal(t, codes.Internal, status.Code(err))
	assert.Equal(t, uint64(1), rpcCount(t, registry, configrpc.LoadConfigurationFullMethodName, codes.Internal.String()))
}

func TestLoadConfiguration_TraceID(t *testing.T) {
	svc := mock.NewMockConfigurationService(gomock.NewController(t))
	svc.EXPECT().
		LoadConfig(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ models.ClientIdentity) models.ConfigResult {
			traceID, _ := utils.GetTraceIDFromContext(ctx)
			assert.Equal(t, "trace-7", traceID)
			return models.Succeed(node1)
		})

	client := newBufconnClient(t, svc, nil)

	ctx := metadata.AppendToOutgoingContext(context.Background(), utils.TraceIDMetadataKey, "trace-7")
	_, err := client.LoadConfiguration(ctx, &configrpc.LoadConfigurationRequest{ClientMachineIP: "10.0.0.1", ClientMachineName: "Node1"})
	require.NoError(t, err)
}

func TestLoadConfiguration_Metrics(t *testing.T) {
	svc := mock.NewMockConfigurationService(gomock.NewController(t))
	svc.EXPECT().LoadConfig(gomock.Any(), gomock.Any()).Return(models.Succeed(node1)).Times(2)

	registry := metric.NewMetricsRegistry()
	client := newBufconnClient(t, svc, registry.CoreMetrics())

	for range 2 {
		_, err := client.LoadConfiguration(context.Background(), &configrpc.LoadConfigurationRequest{ClientMachineIP: "10.0.0.1", ClientMachineName: "Node1"})
		require.NoError(t, err)
	}

	assert.Equal(t, uint64(2), rpcCount(t, registry, configrpc.LoadConfigurationFullMethodName, codes.OK.String()))
}

func TestLoadNodesConfiguration_StreamsInOrder(t *testing.T) {
	svc := mock.NewMockConfigurationService(gomock.NewController(t))
	svc.EXPECT().
		LoadNodesConfig(gomock.Any(), models.NodeRequest{RequestedNames: []string{"Node1", "Ghost"}}).
		Return(seqOf(
			models.Succeed(node1),
			models.Fail[models.NodeConfig](models.Error{Code: models.CodeNodeNotFound, Message: "Node Ghost is not found."}),
		))

	client := newBufconnClient(t, svc, nil)

	stream, err := client.LoadNodesConfiguration(context.Background(), &configrpc.LoadNodesConfigurationRequest{
		NodeNames: []string{"Node1", "Ghost"},
	})
	require.NoError(t, err)

	first, err := stream.Recv()
	require.NoError(t, err)
	body := first.BodyOrError.(*configrpc.LoadNodesConfigurationResponseBody)
	assert.Equal(t, "Node1", body.NodeName)
	assert.Equal(t, configrpc.RunningModeStage, body.App.Mode)

	second, err := stream.Recv()
	require.NoError(t, err)
	require.Equal(t, configrpc.BodyOrErrorErrorContainer, second.BodyOrErrorCase())
	assert.Equal(t, "4", second.BodyOrError.(*configrpc.ErrorContainer).Errors[0].Code)

	_, err = stream.Recv()
	assert.ErrorIs(t, err, io.EOF)
}

func TestLoadNodesConfiguration_Empty(t *testing.T) {
	svc := mock.NewMockConfigurationService(gomock.NewController(t))
	svc.EXPECT().LoadNodesConfig(gomock.Any(), models.NodeRequest{}).Return(seqOf())

	client := newBufconnClient(t, svc, nil)

	stream, err := client.LoadNodesConfiguration(context.Background(), &configrpc.LoadNodesConfigurationRequest{})
	require.NoError(t, err)

	_, err = stream.Recv()
	assert.ErrorIs(t, err, io.EOF)
}

func TestLoadNodesConfiguration_CallerCancels(t *testing.T) {
	stopped := make(chan struct{})

	svc := mock.NewMockConfigurationService(gomock.NewController(t))
	svc.EXPECT().
		LoadNodesConfig(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ models.NodeRequest) iter.Seq[models.ConfigResult] {
			return func(yield func(models.ConfigResult) bool) {
				defer close(stopped)
				if !yield(models.Succeed(node1)) {
					return
				}
				<-ctx.Done()
			}
		})

	client := newBufconnClient(t, svc, nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	stream, err := client.LoadNodesConfiguration(ctx, &configrpc.LoadNodesConfigurationRequest{})
	require.NoError(t, err)

	_, err = stream.Recv()
	require.NoError(t, err)

	cancel()

	_, err = stream.Recv()
	assert.Equal(t, codes.Canceled, status.Code(err))

	select {
	case <-stopped:
	case <-time.After(5 * time.Second):
		t.Fatal("stream producer did not observe cancellation")
	}
}

func rpcCount(t *testing.T, registry *metric.MetricsRegistry, method, code string) uint64 {
	t.Helper()

	families, err := registry.PrometheusRegistry().Gather()
	require.NoError(t, err)

	for _, mf := range families {
		if mf.GetName() != "config_keeper_rpc_duration_seconds" {
			continue
		}
		for _, m := range mf.GetMetric() {
			labels := map[string]string{}
			for _, lp := range m.GetLabel() {
				labels[lp.GetName()] = lp.GetValue()
			}
			if labels["method"] == method && labels["code"] == code {
				return m.GetHistogram().GetSampleCount()
			}
		}
	}
	return 0
}
