package rpcservices

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/fmaas-project/router/pkg/pb/caikit/nlp"
)

func ctxWithModelID(modelID string) context.Context {
	return metadata.NewIncomingContext(context.Background(), metadata.Pairs("mm-model-id", modelID))
}

func TestEmbeddingTaskPredict_MissingMetadata(t *testing.T) {
	s := &NlpServicer{Clients: map[string]nlp.NlpServiceClient{}}

	_, err := s.EmbeddingTaskPredict(context.Background(), &nlp.EmbeddingTaskRequest{Text: "hi"})
	require.Error(t, err)
	st, ok := status.FromError(err)
	require.True(t, ok)
	assert.Equal(t, codes.InvalidArgument, st.Code())
}

// An empty batch never masks a missing mm-model-id header: model-id
// extraction must run before the empty-batch short-circuit (spec.md §8,
// "For any NLP or info RPC missing mm-model-id metadata, the status is
// INVALID_ARGUMENT").
func TestEmbeddingTaskPredict_EmptyTextWithMissingMetadataIsInvalidArgument(t *testing.T) {
	s := &NlpServicer{Clients: map[string]nlp.NlpServiceClient{}}

	_, err := s.EmbeddingTaskPredict(context.Background(), &nlp.EmbeddingTaskRequest{Text: ""})
	require.Error(t, err)
	st, ok := status.FromError(err)
	require.True(t, ok)
	assert.Equal(t, codes.InvalidArgument, st.Code())
}

func TestEmbeddingTaskPredict_UnrecognizedModel(t *testing.T) {
	s := &NlpServicer{Clients: map[string]nlp.NlpServiceClient{}}

	_, err := s.EmbeddingTaskPredict(ctxWithModelID("no-such"), &nlp.EmbeddingTaskRequest{Text: "hi"})
	require.Error(t, err)
	st, ok := status.FromError(err)
	require.True(t, ok)
	assert.Equal(t, codes.NotFound, st.Code())
}

func TestEmbeddingTaskPredict_EmptyTextShortCircuits(t *testing.T) {
	fake := &fakeNlpClient{}
	s := &NlpServicer{Clients: map[string]nlp.NlpServiceClient{"m": fake}}

	resp, err := s.EmbeddingTaskPredict(ctxWithModelID("m"), &nlp.EmbeddingTaskRequest{Text: ""})
	require.NoError(t, err)
	assert.Equal(t, &nlp.EmbeddingResult{}, resp)
	assert.Nil(t, fake.lastEmbeddingTaskReq)
}

func TestEmbeddingTaskPredict_Forwards(t *testing.T) {
	fake := &fakeNlpClient{embeddingTaskResp: &nlp.EmbeddingResult{}}
	s := &NlpServicer{Clients: map[string]nlp.NlpServiceClient{"m": fake}}

	req := &nlp.EmbeddingTaskRequest{Text: "hi"}
	_, err := s.EmbeddingTaskPredict(ctxWithModelID("m"), req)
	require.NoError(t, err)
	assert.Same(t, req, fake.lastEmbeddingTaskReq)
}

func TestEmbeddingTasksPredict_EmptyTextsShortCircuits(t *testing.T) {
	fake := &fakeNlpClient{}
	s := &NlpServicer{Clients: map[string]nlp.NlpServiceClient{"m": fake}}

	resp, err := s.EmbeddingTasksPredict(ctxWithModelID("m"), &nlp.EmbeddingTasksRequest{})
	require.NoError(t, err)
	assert.Equal(t, &nlp.EmbeddingResults{}, resp)
}

func TestEmbeddingTasksPredict_EmptyTextsWithMissingMetadataIsInvalidArgument(t *testing.T) {
	s := &NlpServicer{Clients: map[string]nlp.NlpServiceClient{}}

	_, err := s.EmbeddingTasksPredict(context.Background(), &nlp.EmbeddingTasksRequest{})
	require.Error(t, err)
	st, ok := status.FromError(err)
	require.True(t, ok)
	assert.Equal(t, codes.InvalidArgument, st.Code())
}

func TestRerankTaskPredict_EmptyQueryOrDocumentsShortCircuits(t *testing.T) {
	fake := &fakeNlpClient{}
	s := &NlpServicer{Clients: map[string]nlp.NlpServiceClient{"m": fake}}

	resp, err := s.RerankTaskPredict(ctxWithModelID("m"), &nlp.RerankTaskRequest{Query: "", Documents: nil})
	require.NoError(t, err)
	assert.Equal(t, &nlp.RerankResult{}, resp)
	assert.Nil(t, fake.lastRerankTaskReq)
}

func TestRerankTaskPredict_Forwards(t *testing.T) {
	fake := &fakeNlpClient{rerankTaskResp: &nlp.RerankResult{}}
	s := &NlpServicer{Clients: map[string]nlp.NlpServiceClient{"m": fake}}

	req := &nlp.RerankTaskRequest{Query: "q", Documents: []*nlp.Document{{Text: "d"}}}
	_, err := s.RerankTaskPredict(ctxWithModelID("m"), req)
	require.NoError(t, err)
	assert.Same(t, req, fake.lastRerankTaskReq)
}

func TestRerankTaskPredict_EmptyWithMissingMetadataIsInvalidArgument(t *testing.T) {
	s := &NlpServicer{Clients: map[string]nlp.NlpServiceClient{}}

	_, err := s.RerankTaskPredict(context.Background(), &nlp.RerankTaskRequest{})
	require.Error(t, err)
	st, ok := status.FromError(err)
	require.True(t, ok)
	assert.Equal(t, codes.InvalidArgument, st.Code())
}

func TestRerankTasksPredict_EmptyWithMissingMetadataIsInvalidArgument(t *testing.T) {
	s := &NlpServicer{Clients: map[string]nlp.NlpServiceClient{}}

	_, err := s.RerankTasksPredict(context.Background(), &nlp.RerankTasksRequest{})
	require.Error(t, err)
	st, ok := status.FromError(err)
	require.True(t, ok)
	assert.Equal(t, codes.InvalidArgument, st.Code())
}

func TestSentenceSimilarityTaskPredict_EmptyWithMissingMetadataIsInvalidArgument(t *testing.T) {
	s := &NlpServicer{Clients: map[string]nlp.NlpServiceClient{}}

	_, err := s.SentenceSimilarityTaskPredict(context.Background(), &nlp.SentenceSimilarityTaskRequest{})
	require.Error(t, err)
	st, ok := status.FromError(err)
	require.True(t, ok)
	assert.Equal(t, codes.InvalidArgument, st.Code())
}

func TestSentenceSimilarityTasksPredict_EmptyWithMissingMetadataIsInvalidArgument(t *testing.T) {
	s := &NlpServicer{Clients: map[string]nlp.NlpServiceClient{}}

	_, err := s.SentenceSimilarityTasksPredict(context.Background(), &nlp.SentenceSimilarityTasksRequest{})
	require.Error(t, err)
	st, ok := status.FromError(err)
	require.True(t, ok)
	assert.Equal(t, codes.InvalidArgument, st.Code())
}
