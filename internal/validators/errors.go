package validators

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-config-keeper/models"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")
)

// ValidationError aggregates all rule violations found in one input.
// Errors keep the fixed rule order, not the order fields were requested in.
type ValidationError struct {
	Errors []models.Error
}

func (e *ValidationError) Error() string {
	codes := make([]string, 0, len(e.Errors))
	for _, err := range e.Errors {
		codes = append(codes, err.Code)
	}
	return "validation failed: codes " + strings.Join(codes, ",")
}
