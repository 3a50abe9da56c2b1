package service

import (
	"errors"
	"fmt"
)

var (
	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	// ErrProtocolSkew is returned when the configuration server answered
	// with a oneof discriminant the gateway does not know.
	ErrProtocolSkew = errors.New("unrecognized response discriminant")

	// ErrConfigurationRejected is returned to the client when the gateway
	// refused to hand out a configuration for the passed identity.
	ErrConfigurationRejected = errors.New("configuration request was rejected")
)

// ContractViolationError is the panic value raised when a value crossing the
// RPC boundary is outside the set both sides agreed on.
type ContractViolationError struct {
	Kind  string
	Value any
}

func (e *ContractViolationError) Error() string {
	return fmt.Sprintf("contract violation: unknown %s %v", e.Kind, e.Value)
}
