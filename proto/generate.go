// Package proto contains the gRPC contract for the embedding sidecar.
package proto

//go:generate protoc --go_out=. --go_opt=paths=source_relative --go-grpc_out=. --go-grpc_opt=paths=source_relative embedding.proto
