package config

import (
	"errors"
	"fmt"
	"net"
	"strconv"

	"github.com/spf13/pflag"
)

// NetAddress holds structured network address data for host and port.
// It implements the pflag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// flagSet couples a pflag.FlagSet with the step copying parsed values that
// need conversion into the target config.
type flagSet struct {
	*pflag.FlagSet
	finish func()
}

// serverFlagSet binds the configuration server flags:
//
//	-a, --address          HTTP address host:port for version and metrics
//	    --grpc-address     gRPC address host:port
//	    --allowed-ips      comma separated client IP allowlist
//	    --nodes-file       YAML node definitions file
//	    --max-latency      upper bound of per-element latency (e.g. 500ms)
//	    --no-latency       disable per-element latency
//	    --shutdown-timeout graceful shutdown bound
//	-c, --config           JSON config file path
func serverFlagSet(cfg *StructuredConfig) *flagSet {
	fs := pflag.NewFlagSet("config-server", pflag.ContinueOnError)

	var httpAddress, grpcAddress NetAddress
	fs.VarP(&httpAddress, "address", "a", "HTTP address host:port serving version and metrics")
	fs.Var(&grpcAddress, "grpc-address", "gRPC address host:port")
	fs.StringSliceVar(&cfg.Identity.AllowedClientIPs, "allowed-ips", nil, "Comma separated client IP allowlist")
	fs.StringVar(&cfg.Source.NodesFile, "nodes-file", "", "YAML node definitions file")
	fs.DurationVar(&cfg.Source.MaxLatency, "max-latency", 0, "Upper bound of per-element latency (e.g. 500ms)")
	fs.BoolVar(&cfg.Source.NoLatency, "no-latency", false, "Disable per-element latency")
	fs.DurationVar(&cfg.Server.ShutdownTimeout, "shutdown-timeout", 0, "Graceful shutdown timeout")
	fs.StringVarP(&cfg.JSONFilePath, "config", "c", "", "JSON config file path")

	return &flagSet{
		FlagSet: fs,
		finish: func() {
			cfg.Server.HTTPAddress = httpAddress.String()
			cfg.Server.GRPCAddress = grpcAddress.String()
		},
	}
}

// gatewayFlagSet binds the gateway flags:
//
//	-a, --address                  HTTP address host:port
//	-s, --configuration-server-url configuration server URI
//	    --shutdown-timeout         graceful shutdown bound
//	-c, --config                   JSON config file path
func gatewayFlagSet(cfg *StructuredConfig) *flagSet {
	fs := pflag.NewFlagSet("config-gateway", pflag.ContinueOnError)

	var httpAddress NetAddress
	fs.VarP(&httpAddress, "address", "a", "HTTP address host:port")
	fs.StringVarP(&cfg.Adapter.ConfigurationServerURL, "configuration-server-url", "s", "", "Configuration server URI (e.g. http://localhost:9090)")
	fs.DurationVar(&cfg.Server.ShutdownTimeout, "shutdown-timeout", 0, "Graceful shutdown timeout")
	fs.StringVarP(&cfg.JSONFilePath, "config", "c", "", "JSON config file path")

	return &flagSet{
		FlagSet: fs,
		finish: func() {
			cfg.Server.HTTPAddress = httpAddress.String()
		},
	}
}

// clientFlagSet binds the client global flags. Parsing stops at the first
// non-flag argument so command flags are left for the command.
//
//	-g, --gateway-url gateway base URL
//	    --timeout     request timeout
//	-c, --config      JSON config file path
func clientFlagSet(cfg *StructuredConfig) *flagSet {
	fs := pflag.NewFlagSet("config-client", pflag.ContinueOnError)
	fs.SetInterspersed(false)

	fs.StringVarP(&cfg.Adapter.GatewayURL, "gateway-url", "g", "", "Gateway base URL (e.g. http://localhost:8080)")
	fs.DurationVar(&cfg.Adapter.RequestTimeout, "timeout", 0, "Request timeout (e.g. 10s)")
	fs.StringVarP(&cfg.JSONFilePath, "config", "c", "", "JSON config file path")

	return &flagSet{FlagSet: fs, finish: func() {}}
}

// parseFlags parses args with the flag set built by newFlagSet and returns
// the populated config plus the remaining positional arguments.
func parseFlags(newFlagSet func(*StructuredConfig) *flagSet, args []string) (*StructuredConfig, []string, error) {
	cfg := &StructuredConfig{}
	fs := newFlagSet(cfg)

	if err := fs.Parse(args); err != nil {
		return nil, nil, fmt.Errorf("error parsing flags: %w", err)
	}
	fs.finish()

	return cfg, fs.Args(), nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set parses the input string of form host:port and populates the NetAddress.
// The host may be empty (all interfaces), "localhost" or an IP address.
func (a *NetAddress) Set(s string) error {
	host, rawPort, err := net.SplitHostPort(s)
	if err != nil {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(rawPort)
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "" && host != "localhost" && net.ParseIP(host) == nil {
		return errors.New("incorrect IP-address provided")
	}

	a.Host = host
	a.Port = port
	return nil
}

// Type implements pflag.Value.
func (a *NetAddress) Type() string {
	return "host:port"
}
