// Package grpc provides the RouteGuide gRPC server implementation.
//
// The server exposes the geographic feature catalog and the location-keyed
// note log over four RPCs: GetFeature (unary), ListFeatures (server
// streaming), RecordRoute (client streaming), and RouteChat (bidirectional
// streaming). See proto/routeguide/v1/routeguide.proto for the contract.
//
// # Server Lifecycle
//
// The server is created via [NewServer], which wires interceptors, the
// health service, and the RouteGuide service:
//
//	srv := grpc.NewServer(features, logger, idleTimeout)
//	srv.GRPCServer.Serve(listener)
//
// # Shared state
//
// The feature store is immutable after construction and read without
// locking. The note log is the only mutable shared state; every access
// goes through its per-location snapshot-then-append operation.
//
// # Server Discovery
//
// On startup the server writes a server.json file with its address, port,
// pid, and instance id to the user's cache directory so clients can find a
// running server without configuration. [IsServerRunning] reads the file
// and verifies the pid against the process table before trusting it.
//
// # Interceptors
//
// Unary calls run through recovery, logging, metrics, and a 30-second
// timeout. Streaming calls run through recovery, logging, and metrics
// only: route recording and chat streams stay open for as long as the
// client keeps sending.
package grpc
