// Package rpc declares the gRPC contract of the refute share service.
//
// There is no protobuf schema: the service descriptor is written by hand and
// messages are the structs from the models package, carried by a JSON codec
// registered under the "json" content-subtype. Both the gRPC handler and the
// gRPC server adapter import this package, so it must not depend on either.
package rpc
