// Package config provides configuration loading, merging, and validation
// facilities for the configuration server, the gateway and the client.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags
//  4. JSON config file
//
// The main entry points are [GetServerConfig], [GetGatewayConfig] and
// [GetClientConfig]; each validates the fields its process depends on.
package config
