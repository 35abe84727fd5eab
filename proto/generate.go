// Package proto holds the gRPC contract between the coordinator and its
// out-of-process backends: the LLM sidecar and microVM host agents.
//
// Generated stubs are not committed; run `go generate ./proto` after
// editing swarm.proto (requires protoc with protoc-gen-go and
// protoc-gen-go-grpc on PATH).
package proto

//go:generate protoc --go_out=. --go_opt=paths=source_relative --go-grpc_out=. --go-grpc_opt=paths=source_relative swarm.proto
