// Package http implements the HTTP transport layer of go-config-keeper.
//
// On the gateway it exposes the configuration routes that aggregate the
// configuration server answers into JSON responses. Both processes serve the
// version and metrics routes. Request tracing, access logging, response
// compression and response metrics are handled here before requests reach
// the service layer.
package http
