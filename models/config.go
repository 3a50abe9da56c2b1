// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

// RunningMode is the deployment stage an application instance runs in.
// Ordinals are part of the wire contract: Dev=0, Stage=1, Prod=2.
type RunningMode uint32

const (
	// Dev marks a development instance.
	Dev RunningMode = iota
	// Stage marks a pre-production instance.
	Stage
	// Prod marks a production instance.
	Prod
)

// String returns the external name of the mode ("Dev", "Stage", "Prod").
// Unknown values are rendered with their ordinal and are never valid at a
// boundary; see [RunningMode.Valid].
func (m RunningMode) String() string {
	switch m {
	case Dev:
		return "Dev"
	case Stage:
		return "Stage"
	case Prod:
		return "Prod"
	default:
		return fmt.Sprintf("RunningMode(%d)", uint32(m))
	}
}

// Valid reports whether m is one of the three declared modes.
func (m RunningMode) Valid() bool {
	return m <= Prod
}

// ParseRunningMode is the inverse of [RunningMode.String] for the declared modes.
func ParseRunningMode(s string) (RunningMode, error) {
	switch s {
	case "Dev":
		return Dev, nil
	case "Stage":
		return Stage, nil
	case "Prod":
		return Prod, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownRunningMode, s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (m RunningMode) MarshalText() ([]byte, error) {
	if !m.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownRunningMode, uint32(m))
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler so modes can be written
// by name in node definition files.
func (m *RunningMode) UnmarshalText(text []byte) error {
	mode, err := ParseRunningMode(string(text))
	if err != nil {
		return err
	}
	*m = mode
	return nil
}

// ApplicationConfig holds application-level settings handed out to a node.
type ApplicationConfig struct {
	// MaxThreadPoolSize is the upper bound of the worker pool on the node.
	MaxThreadPoolSize uint32 `yaml:"max_thread_pool_size" json:"max_thread_pool_size"`

	// Mode is the deployment stage of the node.
	Mode RunningMode `yaml:"mode" json:"mode"`
}

// DatabaseConfig holds database connection settings handed out to a node.
type DatabaseConfig struct {
	// ConnectionString is the opaque DSN the node uses to reach its database.
	ConnectionString string `yaml:"connection_string" json:"connection_string"`

	// TimeoutMs is the database operation timeout in milliseconds.
	TimeoutMs uint32 `yaml:"timeout_ms" json:"timeout_ms"`
}

// NodeConfig is the full configuration of a single node.
type NodeConfig struct {
	NodeName string            `yaml:"name" json:"name"`
	App      ApplicationConfig `yaml:"app" json:"app"`
	DB       DatabaseConfig    `yaml:"database" json:"database"`
}

// ClientIdentity identifies the machine asking for its configuration.
// It is built per request and never stored.
type ClientIdentity struct {
	IP   string
	Name string
}

// NodeRequest lists the nodes whose configuration is requested.
// An empty list means "every node known to the backend".
type NodeRequest struct {
	RequestedNames []string
}

// All reports whether the request asks for every known node.
func (r NodeRequest) All() bool {
	return len(r.RequestedNames) == 0
}
