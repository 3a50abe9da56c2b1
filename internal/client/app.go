package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/MKhiriev/go-config-keeper/internal/logger"
	"github.com/MKhiriev/go-config-keeper/internal/service"
	"github.com/MKhiriev/go-config-keeper/models"
	"github.com/spf13/pflag"
)

const usage = `usage: config-client [global flags] <command> [command flags]

commands:
  config  --ip <ip> --name <name>   load the configuration of a client machine
  nodes   [--node <name>]...        load the configuration of nodes, all when none given
  version                           print the gateway version
  build-info                        print the client build metadata
`

type App struct {
	services *service.ClientServices
	out      io.Writer

	logger *logger.Logger
}

func NewApp(services *service.ClientServices, out io.Writer, logger *logger.Logger) (*App, error) {
	if services == nil || services.ConfigurationService == nil {
		return nil, ErrServicesNotInitialized
	}

	return &App{services: services, out: out, logger: logger}, nil
}

// Run executes one command. A rejected configuration request still prints
// the error list before its error is returned.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		_, _ = io.WriteString(a.out, usage)
		return ErrNoCommand
	}

	switch args[0] {
	case "config":
		return a.runConfig(ctx, args[1:])
	case "nodes":
		return a.runNodes(ctx, args[1:])
	case "version":
		return a.runVersion(ctx)
	default:
		_, _ = io.WriteString(a.out, usage)
		return fmt.Errorf("%w: %s", ErrUnknownCommand, args[0])
	}
}

func (a *App) runConfig(ctx context.Context, args []string) error {
	var identity models.ClientIdentity

	fs := pflag.NewFlagSet("config", pflag.ContinueOnError)
	fs.SetOutput(a.out)
	fs.StringVar(&identity.IP, "ip", "", "client machine ip")
	fs.StringVar(&identity.Name, "name", "", "client machine name")
	if err := fs.Parse(args); err != nil {
		return err
	}

	resp, err := a.services.ConfigurationService.FetchConfiguration(ctx, identity)
	if err != nil && len(resp.Errors) == 0 {
		return err
	}

	if printErr := a.print(resp); printErr != nil {
		return printErr
	}
	return err
}

func (a *App) runNodes(ctx context.Context, args []string) error {
	var names []string

	fs := pflag.NewFlagSet("nodes", pflag.ContinueOnError)
	fs.SetOutput(a.out)
	fs.StringArrayVarP(&names, "node", "n", nil, "node name, repeatable")
	if err := fs.Parse(args); err != nil {
		return err
	}
	names = append(names, fs.Args()...)

	resp, err := a.services.ConfigurationService.FetchNodesConfiguration(ctx, names)
	if err != nil {
		return err
	}

	return a.print(resp)
}

func (a *App) runVersion(ctx context.Context) error {
	version, err := a.services.ConfigurationService.FetchGatewayVersion(ctx)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(a.out, version)
	return err
}

func (a *App) print(v any) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("error printing response: %w", err)
	}
	return nil
}
