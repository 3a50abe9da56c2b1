package grpc

import (
	"github.com/MKhiriev/go-config-keeper/internal/configrpc"
	"github.com/MKhiriev/go-config-keeper/internal/service"
	"github.com/MKhiriev/go-config-keeper/models"
)

// toWireRunningMode maps a domain running mode to its wire ordinal.
// It panics with *service.ContractViolationError for undeclared modes.
func toWireRunningMode(mode models.RunningMode) configrpc.RunningMode {
	switch mode {
	case models.Dev:
		return configrpc.RunningModeDev
	case models.Stage:
		return configrpc.RunningModeStage
	case models.Prod:
		return configrpc.RunningModeProd
	default:
		panic(&service.ContractViolationError{Kind: "running mode", Value: uint32(mode)})
	}
}

func toWireApp(app models.ApplicationConfig) configrpc.ApplicationConfiguration {
	return configrpc.ApplicationConfiguration{
		MaxThreadPoolSize: app.MaxThreadPoolSize,
		Mode:              toWireRunningMode(app.Mode),
	}
}

func toWireDatabase(db models.DatabaseConfig) configrpc.DatabaseConfiguration {
	return configrpc.DatabaseConfiguration{
		ConnectionString: db.ConnectionString,
		Timeout:          db.TimeoutMs,
	}
}

func toWireErrors(errs []models.Error) *configrpc.ErrorContainer {
	container := &configrpc.ErrorContainer{Errors: make([]configrpc.Error, 0, len(errs))}
	for _, e := range errs {
		container.Errors = append(container.Errors, configrpc.Error{Code: e.Code, Message: e.Message})
	}
	return container
}

func toWireConfigurationResponse(result models.ConfigResult) *configrpc.LoadConfigurationResponse {
	switch r := result.(type) {
	case models.Ok[models.NodeConfig]:
		return &configrpc.LoadConfigurationResponse{BodyOrError: &configrpc.LoadConfigurationResponseBody{
			App:      toWireApp(r.Value.App),
			Database: toWireDatabase(r.Value.DB),
		}}
	case models.Err[models.NodeConfig]:
		return &configrpc.LoadConfigurationResponse{BodyOrError: toWireErrors(r.Errors)}
	default:
		panic(&service.ContractViolationError{Kind: "result", Value: result})
	}
}

func toWireNodesResponse(result models.ConfigResult) *configrpc.LoadNodesConfigurationResponse {
	switch r := result.(type) {
	case models.Ok[models.NodeConfig]:
		return &configrpc.LoadNodesConfigurationResponse{BodyOrError: &configrpc.LoadNodesConfigurationResponseBody{
			NodeName: r.Value.NodeName,
			App:      toWireApp(r.Value.App),
			Database: toWireDatabase(r.Value.DB),
		}}
	case models.Err[models.NodeConfig]:
		return &configrpc.LoadNodesConfigurationResponse{BodyOrError: toWireErrors(r.Errors)}
	default:
		panic(&service.ContractViolationError{Kind: "result", Value: result})
	}
}
