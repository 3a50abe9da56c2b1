package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-config-keeper/internal/adapter"
	"github.com/MKhiriev/go-config-keeper/internal/service"
)

// errorStatuses is matched in order; the first sentinel found in the chain wins.
var errorStatuses = []struct {
	err    error
	status int
}{
	{service.ErrProtocolSkew, http.StatusInternalServerError},
	{adapter.ErrConfigurationServerUnavailable, http.StatusBadGateway},
	{adapter.ErrConfigurationServerFailed, http.StatusBadGateway},
	{context.DeadlineExceeded, http.StatusGatewayTimeout},
}

func statusFromError(err error) int {
	for _, e := range errorStatuses {
		if errors.Is(err, e.err) {
			return e.status
		}
	}
	return http.StatusInternalServerError
}
