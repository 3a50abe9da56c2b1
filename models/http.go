package models

// ApplicationConfigResponse is the external form of [ApplicationConfig].
type ApplicationConfigResponse struct {
	MaxThreadPoolSize uint32 `json:"maxThreadPoolSize"`

	// RunningMode is the external mode name: "Dev", "Stage" or "Prod".
	RunningMode string `json:"runningMode"`
}

// DatabaseConfigResponse is the external form of [DatabaseConfig].
type DatabaseConfigResponse struct {
	ConnectionString string `json:"connectionString"`
	TimeoutInMs      uint32 `json:"timeoutInMs"`
}

// ErrorResponse is the external form of [Error]. Fields are copied 1:1.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
