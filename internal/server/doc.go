// Package server runs the listeners of a go-config-keeper process: the gRPC
// configuration service, the HTTP gateway or metrics routes, or both. All
// listeners stop together on a termination signal or when one of them fails.
package server
