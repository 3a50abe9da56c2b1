// Package configrpc defines the wire contract between the configuration
// server and its clients.
//
// Messages are encoded with CBOR (integer map keys) by a codec registered with
// gRPC under the "cbor" content-subtype. The package provides the service
// descriptor, a registration helper for servers and a typed client, laid out
// the same way protoc-gen-go-grpc output is.
//
// Oneof fields (body vs error_container) are modelled as sealed interfaces
// whose implementations are the variant payloads. A discriminant this version
// does not know decodes into [UnknownBodyOrError] so callers can detect
// protocol skew instead of misreading the message.
package configrpc
