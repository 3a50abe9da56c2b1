package config

import (
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNetAddress_String(t *testing.T) {
	tests := []struct {
		name     string
		addr     NetAddress
		expected string
	}{
		{name: "empty address", addr: NetAddress{}, expected: ""},
		{name: "localhost with port", addr: NetAddress{Host: "localhost", Port: 8080}, expected: "localhost:8080"},
		{name: "IP address with port", addr: NetAddress{Host: "127.0.0.1", Port: 9090}, expected: "127.0.0.1:9090"},
		{name: "only port no host", addr: NetAddress{Port: 8080}, expected: ":8080"},
		{name: "ipv6", addr: NetAddress{Host: "::1", Port: 8080}, expected: "[::1]:8080"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.addr.String())
		})
	}
}

func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		expectError  bool
		expectedAddr NetAddress
	}{
		{name: "valid localhost", input: "localhost:8080", expectedAddr: NetAddress{Host: "localhost", Port: 8080}},
		{name: "valid IPv4", input: "127.0.0.1:9090", expectedAddr: NetAddress{Host: "127.0.0.1", Port: 9090}},
		{name: "all interfaces", input: ":9090", expectedAddr: NetAddress{Port: 9090}},
		{name: "missing colon", input: "localhost8080", expectError: true},
		{name: "port not a number", input: "localhost:http", expectError: true},
		{name: "port zero", input: "localhost:0", expectError: true},
		{name: "port too large", input: "localhost:70000", expectError: true},
		{name: "hostname is not an ip", input: "example.com:80", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var addr NetAddress
			err := addr.Set(tt.input)
			if tt.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedAddr, addr)
		})
	}
}

func TestNetAddress_ImplementsPflagValue(t *testing.T) {
	var v pflag.Value = &NetAddress{}
	assert.Equal(t, "host:port", v.Type())
}

func TestParseFlags_Server(t *testing.T) {
	cfg, rest, err := parseFlags(serverFlagSet, []string{
		"-a", "localhost:8081",
		"--grpc-address", "127.0.0.1:9091",
		"--allowed-ips", "1.1.1.1,2.2.2.2",
		"--nodes-file", "nodes.yaml",
		"--max-latency", "20ms",
		"--no-latency",
		"--shutdown-timeout", "2s",
		"-c", "cfg.json",
	})

	require.NoError(t, err)
	assert.Empty(t, rest)
	assert.Equal(t, "localhost:8081", cfg.Server.HTTPAddress)
	assert.Equal(t, "127.0.0.1:9091", cfg.Server.GRPCAddress)
	assert.Equal(t, []string{"1.1.1.1", "2.2.2.2"}, cfg.Identity.AllowedClientIPs)
	assert.Equal(t, "nodes.yaml", cfg.Source.NodesFile)
	assert.Equal(t, 20*time.Millisecond, cfg.Source.MaxLatency)
	assert.True(t, cfg.Source.NoLatency)
	assert.Equal(t, 2*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "cfg.json", cfg.JSONFilePath)
}

func TestParseFlags_Gateway(t *testing.T) {
	cfg, _, err := parseFlags(gatewayFlagSet, []string{
		"--address", ":8080",
		"-s", "http://localhost:9090",
	})

	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Server.HTTPAddress)
	assert.Equal(t, "http://localhost:9090", cfg.Adapter.ConfigurationServerURL)
}

func TestParseFlags_NoArgsLeavesZeroConfig(t *testing.T) {
	cfg, rest, err := parseFlags(gatewayFlagSet, nil)

	require.NoError(t, err)
	assert.Empty(t, rest)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseFlags_ClientStopsAtCommand(t *testing.T) {
	cfg, rest, err := parseFlags(clientFlagSet, []string{
		"-g", "http://gw:8080", "--timeout", "5s", "config", "--ip", "10.20.30.1",
	})

	require.NoError(t, err)
	assert.Equal(t, "http://gw:8080", cfg.Adapter.GatewayURL)
	assert.Equal(t, 5*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, []string{"config", "--ip", "10.20.30.1"}, rest)
}

func TestParseFlags_InvalidAddress(t *testing.T) {
	_, _, err := parseFlags(serverFlagSet, []string{"--grpc-address", "nowhere"})

	assert.Error(t, err)
}
