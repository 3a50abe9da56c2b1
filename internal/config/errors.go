package config

import "errors"

// Validation errors returned by the per-process validate methods when
// required configuration groups are incomplete or invalid.
var (
	// ErrInvalidServerConfigs indicates missing or malformed listen settings.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidIdentityConfigs indicates an allowlist entry that is not an IP address.
	ErrInvalidIdentityConfigs = errors.New("invalid identity configuration")
	// ErrInvalidSourceConfigs indicates invalid configuration source settings
	// (for example, a negative max latency).
	ErrInvalidSourceConfigs = errors.New("invalid source configuration")
	// ErrInvalidAdapterConfigs indicates invalid outbound settings
	// (for example, a relative configuration server URI).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
)
