package rpcservices

import (
	"context"
	"io"

	"github.com/fmaas-project/router/pkg/pb/fmaas"
)

// GenerationServicer implements fmaas.GenerationServiceServer, forwarding
// every call to the upstream client named by the request's model_id
// (spec.md §4.5).
type GenerationServicer struct {
	fmaas.UnimplementedGenerationServiceServer

	Clients map[string]fmaas.GenerationServiceClient
}

func (s *GenerationServicer) client(modelID string) (fmaas.GenerationServiceClient, error) {
	client, ok := s.Clients[modelID]
	if !ok {
		return nil, notFound(modelID)
	}
	return client, nil
}

// Generate forwards a batch of prompts verbatim. An empty batch never
// reaches the upstream (spec.md §4.5 empty-batch short-circuits).
func (s *GenerationServicer) Generate(ctx context.Context, req *fmaas.BatchedGenerationRequest) (*fmaas.BatchedGenerationResponse, error) {
	if len(req.Requests) == 0 {
		return &fmaas.BatchedGenerationResponse{}, nil
	}
	client, err := s.client(req.ModelId)
	if err != nil {
		return nil, err
	}
	return client.Generate(ctx, req)
}

// GenerateStream relays the upstream server stream chunk for chunk,
// preserving arrival order exactly (spec.md §5 ordering guarantees).
func (s *GenerationServicer) GenerateStream(req *fmaas.SingleGenerationRequest, stream fmaas.GenerationService_GenerateStreamServer) error {
	if req.Request == nil {
		return invalidArgument("missing request")
	}
	client, err := s.client(req.ModelId)
	if err != nil {
		return err
	}
	upstream, err := client.GenerateStream(stream.Context(), req)
	if err != nil {
		return err
	}
	for {
		resp, err := upstream.Recv()
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}
		if err := stream.Send(resp); err != nil {
			return err
		}
	}
}

// Tokenize forwards a batch of texts to tokenize; an empty batch never
// reaches the upstream.
func (s *GenerationServicer) Tokenize(ctx context.Context, req *fmaas.BatchedTokenizeRequest) (*fmaas.BatchedTokenizeResponse, error) {
	if len(req.Requests) == 0 {
		return &fmaas.BatchedTokenizeResponse{}, nil
	}
	client, err := s.client(req.ModelId)
	if err != nil {
		return nil, err
	}
	return client.Tokenize(ctx, req)
}

// ModelInfo forwards verbatim; there is no empty-batch case for a single
// model id lookup.
func (s *GenerationServicer) ModelInfo(ctx context.Context, req *fmaas.ModelInfoRequest) (*fmaas.ModelInfoResponse, error) {
	client, err := s.client(req.ModelId)
	if err != nil {
		return nil, err
	}
	return client.ModelInfo(ctx, req)
}
