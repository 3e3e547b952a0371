package rpcservices

import (
	"context"
	"io"

	"google.golang.org/grpc"

	"github.com/fmaas-project/router/pkg/pb/caikit/info"
	"github.com/fmaas-project/router/pkg/pb/caikit/nlp"
	"github.com/fmaas-project/router/pkg/pb/fmaas"
)

// fakeGenerationClient records the last request it received and returns
// canned responses, standing in for a real upstream connection.
type fakeGenerationClient struct {
	fmaas.GenerationServiceClient // nil; only overridden methods below are called

	lastGenerateReq *fmaas.BatchedGenerationRequest
	generateResp    *fmaas.BatchedGenerationResponse
	generateErr     error

	lastTokenizeReq *fmaas.BatchedTokenizeRequest
	tokenizeResp    *fmaas.BatchedTokenizeResponse

	lastModelInfoReq *fmaas.ModelInfoRequest
	modelInfoResp    *fmaas.ModelInfoResponse

	streamResponses []*fmaas.GenerationResponse
	streamErr       error
}

func (f *fakeGenerationClient) Generate(ctx context.Context, in *fmaas.BatchedGenerationRequest, opts ...grpc.CallOption) (*fmaas.BatchedGenerationResponse, error) {
	f.lastGenerateReq = in
	if f.generateErr != nil {
		return nil, f.generateErr
	}
	return f.generateResp, nil
}

func (f *fakeGenerationClient) Tokenize(ctx context.Context, in *fmaas.BatchedTokenizeRequest, opts ...grpc.CallOption) (*fmaas.BatchedTokenizeResponse, error) {
	f.lastTokenizeReq = in
	return f.tokenizeResp, nil
}

func (f *fakeGenerationClient) ModelInfo(ctx context.Context, in *fmaas.ModelInfoRequest, opts ...grpc.CallOption) (*fmaas.ModelInfoResponse, error) {
	f.lastModelInfoReq = in
	return f.modelInfoResp, nil
}

func (f *fakeGenerationClient) GenerateStream(ctx context.Context, in *fmaas.SingleGenerationRequest, opts ...grpc.CallOption) (fmaas.GenerationService_GenerateStreamClient, error) {
	if f.streamErr != nil {
		return nil, f.streamErr
	}
	return &fakeGenerateStreamClient{responses: f.streamResponses}, nil
}

type fakeGenerateStreamClient struct {
	grpc.ClientStream
	responses []*fmaas.GenerationResponse
	pos       int
}

func (f *fakeGenerateStreamClient) Recv() (*fmaas.GenerationResponse, error) {
	if f.pos >= len(f.responses) {
		return nil, io.EOF
	}
	resp := f.responses[f.pos]
	f.pos++
	return resp, nil
}

// fakeServerStream implements fmaas.GenerationService_GenerateStreamServer,
// recording every message the servicer sends.
type fakeServerStream struct {
	grpc.ServerStream
	ctx  context.Context
	sent []*fmaas.GenerationResponse
}

func (f *fakeServerStream) Context() context.Context { return f.ctx }

func (f *fakeServerStream) Send(resp *fmaas.GenerationResponse) error {
	f.sent = append(f.sent, resp)
	return nil
}

// fakeNlpClient records the last request passed to whichever method the
// servicer invoked.
type fakeNlpClient struct {
	nlp.NlpServiceClient

	lastEmbeddingTaskReq *nlp.EmbeddingTaskRequest
	embeddingTaskResp    *nlp.EmbeddingResult

	lastRerankTaskReq *nlp.RerankTaskRequest
	rerankTaskResp    *nlp.RerankResult
}

func (f *fakeNlpClient) EmbeddingTaskPredict(ctx context.Context, in *nlp.EmbeddingTaskRequest, opts ...grpc.CallOption) (*nlp.EmbeddingResult, error) {
	f.lastEmbeddingTaskReq = in
	return f.embeddingTaskResp, nil
}

func (f *fakeNlpClient) RerankTaskPredict(ctx context.Context, in *nlp.RerankTaskRequest, opts ...grpc.CallOption) (*nlp.RerankResult, error) {
	f.lastRerankTaskReq = in
	return f.rerankTaskResp, nil
}

// fakeInfoClient answers GetModelsInfo per model id, so fan-out order and
// per-id routing can both be asserted.
type fakeInfoClient struct {
	info.InfoServiceClient

	responses map[string]*info.GetModelsInfoResponse
	err       error
}

func (f *fakeInfoClient) GetModelsInfo(ctx context.Context, in *info.GetModelsInfoRequest, opts ...grpc.CallOption) (*info.GetModelsInfoResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.responses[in.ModelIds[0]], nil
}

