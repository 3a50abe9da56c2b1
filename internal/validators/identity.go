package validators

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-config-keeper/models"
)

// Field name constants used to specify which identity rules should be checked.
const (
	// FieldClientIP requires a non-empty client IP.
	FieldClientIP = "client_ip"

	// FieldClientName requires a non-empty client machine name.
	FieldClientName = "client_name"

	// FieldClientIPAllowed requires a non-empty client IP to be in the allowlist.
	// An empty IP is already reported by FieldClientIP and is not reported again.
	FieldClientIPAllowed = "client_ip_allowed"
)

// identityFields is the fixed evaluation and reporting order of identity rules.
var identityFields = []string{
	FieldClientIP,
	FieldClientName,
	FieldClientIPAllowed,
}

const (
	requestIPField   = "ClientMachineIp"
	requestNameField = "ClientMachineName"
)

// IdentityValidator implements the Validator interface for models.ClientIdentity.
// All rules are evaluated independently so a single call reports every
// violation, always in the order: missing ip, missing name, ip not allowed.
type IdentityValidator struct {
	allowlist *Allowlist
}

// NewIdentityValidator constructs an IdentityValidator backed by allowlist.
func NewIdentityValidator(allowlist *Allowlist) *IdentityValidator {
	return &IdentityValidator{allowlist: allowlist}
}

// Validate checks a models.ClientIdentity (value or pointer). Optional fields
// restrict the rules that run; when omitted, every rule runs.
//
// Returns *ValidationError listing the violations, ErrUnsupportedType for any
// other input, or ErrUnknownField for an unrecognized field name.
func (v *IdentityValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.ClientIdentity:
		return v.validateIdentity(ctx, value, fields...)
	case *models.ClientIdentity:
		if value == nil {
			return fmt.Errorf("%w: nil *models.ClientIdentity", ErrUnsupportedType)
		}
		return v.validateIdentity(ctx, *value, fields...)
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}
}

// ValidateIdentity runs every identity rule and folds the outcome into a
// result: Ok carrying the identity, or Err carrying the ordered violations.
func (v *IdentityValidator) ValidateIdentity(ctx context.Context, identity models.ClientIdentity) models.Result[models.ClientIdentity] {
	err := v.validateIdentity(ctx, identity)

	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return models.Fail[models.ClientIdentity](validationErr.Errors...)
	}

	return models.Succeed(identity)
}

func (v *IdentityValidator) validateIdentity(_ context.Context, identity models.ClientIdentity, fields ...string) error {
	selected, err := selectFields(fields)
	if err != nil {
		return err
	}

	ipPassed := identity.IP != ""
	errs := make([]models.Error, 0, len(identityFields))

	for _, field := range identityFields {
		if _, ok := selected[field]; !ok {
			continue
		}

		switch field {
		case FieldClientIP:
			if !ipPassed {
				errs = append(errs, models.Error{
					Code:    models.CodeMissingIP,
					Message: requestIPField + " is not passed to the request.",
				})
			}
		case FieldClientName:
			if identity.Name == "" {
				errs = append(errs, models.Error{
					Code:    models.CodeMissingName,
					Message: requestNameField + " is not passed to the request.",
				})
			}
		case FieldClientIPAllowed:
			if ipPassed && !v.allowlist.Contains(identity.IP) {
				errs = append(errs, models.Error{
					Code:    models.CodeIPNotAllowed,
					Message: fmt.Sprintf("Passed %s %s is not allowed.", requestIPField, identity.IP),
				})
			}
		}
	}

	if len(errs) > 0 {
		return &ValidationError{Errors: errs}
	}

	return nil
}

func selectFields(fields []string) (map[string]struct{}, error) {
	if len(fields) == 0 {
		fields = identityFields
	}

	selected := make(map[string]struct{}, len(fields))
	for _, field := range fields {
		switch field {
		case FieldClientIP, FieldClientName, FieldClientIPAllowed:
			selected[field] = struct{}{}
		default:
			return nil, fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	return selected, nil
}
