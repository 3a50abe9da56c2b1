package service

import (
	"github.com/MKhiriev/go-config-keeper/internal/configrpc"
	"github.com/MKhiriev/go-config-keeper/models"
)

// toExternalRunningMode maps a wire running mode to its external name.
// It panics with *ContractViolationError for any ordinal outside the three
// declared modes.
func toExternalRunningMode(mode configrpc.RunningMode) string {
	switch mode {
	case configrpc.RunningModeDev:
		return models.Dev.String()
	case configrpc.RunningModeStage:
		return models.Stage.String()
	case configrpc.RunningModeProd:
		return models.Prod.String()
	default:
		panic(&ContractViolationError{Kind: "running mode", Value: uint32(mode)})
	}
}

func toExternalError(e configrpc.Error) models.ErrorResponse {
	return models.ErrorResponse{Code: e.Code, Message: e.Message}
}

func toExternalErrors(errs []configrpc.Error) []models.ErrorResponse {
	out := make([]models.ErrorResponse, 0, len(errs))
	for _, e := range errs {
		out = append(out, toExternalError(e))
	}
	return out
}

func toExternalAppConfig(app configrpc.ApplicationConfiguration) *models.ApplicationConfigResponse {
	return &models.ApplicationConfigResponse{
		MaxThreadPoolSize: app.MaxThreadPoolSize,
		RunningMode:       toExternalRunningMode(app.Mode),
	}
}

func toExternalDBConfig(db configrpc.DatabaseConfiguration) *models.DatabaseConfigResponse {
	return &models.DatabaseConfigResponse{
		ConnectionString: db.ConnectionString,
		TimeoutInMs:      db.Timeout,
	}
}
