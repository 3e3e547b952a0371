package rpcservices

import (
	"context"

	"github.com/fmaas-project/router/pkg/pb/caikit/info"
)

// InfoServicer implements info.InfoService. GetModelsInfo fans out one
// sub-request per model id and concatenates the upstream models arrays
// preserving request order (spec.md §4.5 "Info service fan-out").
type InfoServicer struct {
	info.UnimplementedInfoServiceServer

	Clients map[string]info.InfoServiceClient
}

func (s *InfoServicer) GetModelsInfo(ctx context.Context, req *info.GetModelsInfoRequest) (*info.GetModelsInfoResponse, error) {
	if len(req.ModelIds) == 0 {
		return &info.GetModelsInfoResponse{}, nil
	}

	var models []*info.ModelInfo
	for _, modelID := range req.ModelIds {
		client, ok := s.Clients[modelID]
		if !ok {
			return nil, notFound(modelID)
		}
		resp, err := client.GetModelsInfo(ctx, &info.GetModelsInfoRequest{ModelIds: []string{modelID}})
		if err != nil {
			return nil, err
		}
		models = append(models, resp.Models...)
	}
	return &info.GetModelsInfoResponse{Models: models}, nil
}

// GetRuntimeInfo is UNIMPLEMENTED per spec.md §4.5;
// UnimplementedInfoServiceServer already answers it.
