package server

import (
	"net/http"

	grpchealth "github.com/bufbuild/connect-grpchealth-go"
	grpcreflect "github.com/bufbuild/connect-grpcreflect-go"
)

// RegisterHealth mounts the gRPC health service and server reflection for it.
// The recommendation RPC has no protobuf descriptor, so only the health
// service is advertised by reflection.
func RegisterHealth(mux *http.ServeMux) {
	reflector := grpcreflect.NewStaticReflector(grpchealth.HealthV1ServiceName)
	checker := grpchealth.NewStaticChecker(RecommendationServiceName)

	mux.Handle(grpchealth.NewHandler(checker))
	mux.Handle(grpcreflect.NewHandlerV1(reflector))
	mux.Handle(grpcreflect.NewHandlerV1Alpha(reflector))
}
