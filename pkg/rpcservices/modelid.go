// Package rpcservices implements C5: the three native RPC facades
// (generation, NLP, info), each routing by model id to the client
// registry built by pkg/clients (spec.md §4.5).
package rpcservices

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

const modelIDMetadataKey = "mm-model-id"

// extractModelIDFromMetadata reads the mm-model-id header used by the NLP
// facade. Generation's methods and the info facade's GetModelsInfo carry
// the model id(s) in the request body instead and do not use this helper.
func extractModelIDFromMetadata(ctx context.Context) (string, error) {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return "", status.Error(codes.InvalidArgument, "Missing required model ID")
	}
	vals := md.Get(modelIDMetadataKey)
	if len(vals) == 0 || vals[0] == "" {
		return "", status.Error(codes.InvalidArgument, "Missing required model ID")
	}
	return vals[0], nil
}

// notFound builds the standard unrecognized-model error for any facade.
func notFound(modelID string) error {
	return status.Errorf(codes.NotFound, "Unrecognized model_id: %s", modelID)
}

func invalidArgument(msg string) error {
	return status.Error(codes.InvalidArgument, msg)
}
