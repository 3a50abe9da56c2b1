package configrpc

// RunningMode is the wire ordinal of an application running mode.
// Receivers must treat values outside the declared constants as protocol skew.
type RunningMode uint32

const (
	RunningModeDev   RunningMode = 0
	RunningModeStage RunningMode = 1
	RunningModeProd  RunningMode = 2
)

// LoadConfigurationRequest identifies the calling client machine.
type LoadConfigurationRequest struct {
	ClientMachineIP   string `cbor:"1,keyasint,omitempty"`
	ClientMachineName string `cbor:"2,keyasint,omitempty"`
}

// ApplicationConfiguration is the application part of a configuration.
type ApplicationConfiguration struct {
	MaxThreadPoolSize uint32      `cbor:"1,keyasint,omitempty"`
	Mode              RunningMode `cbor:"2,keyasint,omitempty"`
}

// DatabaseConfiguration is the database part of a configuration.
// Timeout is expressed in milliseconds.
type DatabaseConfiguration struct {
	ConnectionString string `cbor:"1,keyasint,omitempty"`
	Timeout          uint32 `cbor:"2,keyasint,omitempty"`
}

// Error is a single structured failure reported by the server.
type Error struct {
	Code    string `cbor:"1,keyasint,omitempty"`
	Message string `cbor:"2,keyasint,omitempty"`
}

// ErrorContainer is the error_container variant shared by both responses.
type ErrorContainer struct {
	Errors []Error `cbor:"1,keyasint,omitempty"`
}

// LoadConfigurationResponseBody is the body variant of [LoadConfigurationResponse].
type LoadConfigurationResponseBody struct {
	App      ApplicationConfiguration `cbor:"1,keyasint"`
	Database DatabaseConfiguration    `cbor:"2,keyasint"`
}

// LoadConfigurationResponse answers LoadConfiguration.
//
// BodyOrError holds one of:
//   - *LoadConfigurationResponseBody
//   - *ErrorContainer
//   - *UnknownBodyOrError (decoded from a newer peer only)
type LoadConfigurationResponse struct {
	BodyOrError isLoadConfigurationResponseBodyOrError
}

// LoadNodesConfigurationRequest lists requested nodes; empty means all nodes.
type LoadNodesConfigurationRequest struct {
	NodeNames []string `cbor:"1,keyasint,omitempty"`
}

// LoadNodesConfigurationResponseBody is the body variant of
// [LoadNodesConfigurationResponse].
type LoadNodesConfigurationResponseBody struct {
	NodeName string                   `cbor:"1,keyasint,omitempty"`
	App      ApplicationConfiguration `cbor:"2,keyasint"`
	Database DatabaseConfiguration    `cbor:"3,keyasint"`
}

// LoadNodesConfigurationResponse is one element of the LoadNodesConfiguration
// stream.
//
// BodyOrError holds one of:
//   - *LoadNodesConfigurationResponseBody
//   - *ErrorContainer
//   - *UnknownBodyOrError (decoded from a newer peer only)
type LoadNodesConfigurationResponse struct {
	BodyOrError isLoadNodesConfigurationResponseBodyOrError
}
