package adapter

import "errors"

// HTTP status errors returned by [GatewayAdapter].
var (
	ErrBadRequest          = errors.New("bad request")
	ErrNotFound            = errors.New("not found")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
)

// gRPC errors returned by [ConfigurationServerAdapter].
var (
	// ErrConfigurationServerUnavailable is returned when the configuration
	// server cannot be reached or the connection dropped.
	ErrConfigurationServerUnavailable = errors.New("configuration server is unavailable")

	// ErrConfigurationServerFailed is returned for any other failed call.
	ErrConfigurationServerFailed = errors.New("configuration server call failed")

	// ErrInvalidConfigurationServerURL is returned when the configured URI
	// cannot be turned into a gRPC target.
	ErrInvalidConfigurationServerURL = errors.New("invalid configuration server url")
)

// ErrInvalidGatewayURL is returned when the client has no gateway to talk to.
var ErrInvalidGatewayURL = errors.New("invalid gateway url")
