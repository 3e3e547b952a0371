package openaiapi

import (
	"context"
	"io"

	"google.golang.org/grpc"

	"github.com/fmaas-project/router/pkg/pb/fmaas"
)

type fakeGenerationClient struct {
	fmaas.GenerationServiceClient

	generateResp *fmaas.BatchedGenerationResponse
	generateErr  error

	streamResponses []*fmaas.GenerationResponse
	streamErr       error
}

func (f *fakeGenerationClient) Generate(ctx context.Context, in *fmaas.BatchedGenerationRequest, opts ...grpc.CallOption) (*fmaas.BatchedGenerationResponse, error) {
	if f.generateErr != nil {
		return nil, f.generateErr
	}
	return f.generateResp, nil
}

func (f *fakeGenerationClient) GenerateStream(ctx context.Context, in *fmaas.SingleGenerationRequest, opts ...grpc.CallOption) (fmaas.GenerationService_GenerateStreamClient, error) {
	if f.streamErr != nil {
		return nil, f.streamErr
	}
	return &fakeStreamClient{responses: f.streamResponses}, nil
}

type fakeStreamClient struct {
	grpc.ClientStream
	responses []*fmaas.GenerationResponse
	pos       int
}

func (f *fakeStreamClient) Recv() (*fmaas.GenerationResponse, error) {
	if f.pos >= len(f.responses) {
		return nil, io.EOF
	}
	resp := f.responses[f.pos]
	f.pos++
	return resp, nil
}
