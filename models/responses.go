package models

// LoadConfigurationResponse is the gateway answer to a single configuration
// request. Exactly one side is populated: configuration on success (Errors is
// null), or Errors on rejection (both configuration objects are null).
type LoadConfigurationResponse struct {
	AppConfig *ApplicationConfigResponse `json:"appConfig"`
	DBConfig  *DatabaseConfigResponse    `json:"dbConfig"`
	Errors    []ErrorResponse            `json:"errors"`
}

// NodeConfigurationResponse is one entry of the aggregated nodes answer.
type NodeConfigurationResponse struct {
	NodeName  string                     `json:"nodeName"`
	AppConfig *ApplicationConfigResponse `json:"appConfig"`
	DBConfig  *DatabaseConfigResponse    `json:"dbConfig"`
	Errors    []ErrorResponse            `json:"errors"`
}

// LoadNodesConfigurationResponse is the aggregated answer of the nodes
// endpoint. Entries keep the order in which the server produced them.
type LoadNodesConfigurationResponse struct {
	NodesConfiguration []NodeConfigurationResponse `json:"nodesConfiguration"`
}
