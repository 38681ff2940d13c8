// Package languagepb holds the generated protobuf and gRPC bindings for the
// language detection service defined in proto/language.proto.
package languagepb

//go:generate protoc --proto_path=../../proto --go_out=. --go_opt=paths=source_relative --go-grpc_out=. --go-grpc_opt=paths=source_relative language.proto
