package rpcservices

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/fmaas-project/router/pkg/pb/fmaas"
)

func TestGenerate_EmptyBatchShortCircuits(t *testing.T) {
	fake := &fakeGenerationClient{}
	s := &GenerationServicer{Clients: map[string]fmaas.GenerationServiceClient{"m": fake}}

	resp, err := s.Generate(context.Background(), &fmaas.BatchedGenerationRequest{ModelId: "m"})
	require.NoError(t, err)
	assert.Equal(t, &fmaas.BatchedGenerationResponse{}, resp)
	assert.Nil(t, fake.lastGenerateReq, "empty batch must never reach the upstream")
}

func TestGenerate_UnrecognizedModel(t *testing.T) {
	s := &GenerationServicer{Clients: map[string]fmaas.GenerationServiceClient{}}

	_, err := s.Generate(context.Background(), &fmaas.BatchedGenerationRequest{
		ModelId:  "no-such",
		Requests: []*fmaas.GenerationRequest{{Text: "hi"}},
	})
	require.Error(t, err)
	st, ok := status.FromError(err)
	require.True(t, ok)
	assert.Equal(t, codes.NotFound, st.Code())
}

func TestGenerate_ForwardsNonEmptyBatch(t *testing.T) {
	fake := &fakeGenerationClient{generateResp: &fmaas.BatchedGenerationResponse{
		Responses: []*fmaas.GenerationResponse{{Text: "out"}},
	}}
	s := &GenerationServicer{Clients: map[string]fmaas.GenerationServiceClient{"m": fake}}

	req := &fmaas.BatchedGenerationRequest{ModelId: "m", Requests: []*fmaas.GenerationRequest{{Text: "hi"}}}
	resp, err := s.Generate(context.Background(), req)
	require.NoError(t, err)
	assert.Same(t, req, fake.lastGenerateReq)
	assert.Equal(t, "out", resp.Responses[0].Text)
}

func TestTokenize_EmptyBatchShortCircuits(t *testing.T) {
	fake := &fakeGenerationClient{}
	s := &GenerationServicer{Clients: map[string]fmaas.GenerationServiceClient{"m": fake}}

	resp, err := s.Tokenize(context.Background(), &fmaas.BatchedTokenizeRequest{ModelId: "m"})
	require.NoError(t, err)
	assert.Equal(t, &fmaas.BatchedTokenizeResponse{}, resp)
	assert.Nil(t, fake.lastTokenizeReq)
}

func TestModelInfo_NoShortCircuit(t *testing.T) {
	fake := &fakeGenerationClient{modelInfoResp: &fmaas.ModelInfoResponse{}}
	s := &GenerationServicer{Clients: map[string]fmaas.GenerationServiceClient{"m": fake}}

	req := &fmaas.ModelInfoRequest{ModelId: "m"}
	_, err := s.ModelInfo(context.Background(), req)
	require.NoError(t, err)
	assert.Same(t, req, fake.lastModelInfoReq)
}

func TestGenerateStream_MissingRequest(t *testing.T) {
	s := &GenerationServicer{Clients: map[string]fmaas.GenerationServiceClient{}}
	stream := &fakeServerStream{ctx: context.Background()}

	err := s.GenerateStream(&fmaas.SingleGenerationRequest{ModelId: "m"}, stream)
	require.Error(t, err)
	st, ok := status.FromError(err)
	require.True(t, ok)
	assert.Equal(t, codes.InvalidArgument, st.Code())
}

func TestGenerateStream_RelaysInArrivalOrder(t *testing.T) {
	fake := &fakeGenerationClient{streamResponses: []*fmaas.GenerationResponse{
		{Text: "a"},
		{Text: "b"},
		{Text: "c"},
	}}
	s := &GenerationServicer{Clients: map[string]fmaas.GenerationServiceClient{"m": fake}}
	stream := &fakeServerStream{ctx: context.Background()}

	err := s.GenerateStream(&fmaas.SingleGenerationRequest{ModelId: "m", Request: &fmaas.GenerationRequest{Text: "hi"}}, stream)
	require.NoError(t, err)
	require.Len(t, stream.sent, 3)
	assert.Equal(t, "a", stream.sent[0].Text)
	assert.Equal(t, "b", stream.sent[1].Text)
	assert.Equal(t, "c", stream.sent[2].Text)
}
