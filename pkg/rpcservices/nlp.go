package rpcservices

import (
	"context"

	"github.com/fmaas-project/router/pkg/pb/caikit/nlp"
)

// NlpServicer implements nlp.NlpService, forwarding every unary method to
// the upstream named by the mm-model-id metadata header, and rejecting
// the methods spec.md §4.5 lists as unimplemented.
type NlpServicer struct {
	nlp.UnimplementedNlpServiceServer

	Clients map[string]nlp.NlpServiceClient
}

func (s *NlpServicer) client(ctx context.Context) (nlp.NlpServiceClient, error) {
	modelID, err := extractModelIDFromMetadata(ctx)
	if err != nil {
		return nil, err
	}
	client, ok := s.Clients[modelID]
	if !ok {
		return nil, notFound(modelID)
	}
	return client, nil
}

func (s *NlpServicer) EmbeddingTaskPredict(ctx context.Context, req *nlp.EmbeddingTaskRequest) (*nlp.EmbeddingResult, error) {
	client, err := s.client(ctx)
	if err != nil {
		return nil, err
	}
	if req.Text == "" {
		return &nlp.EmbeddingResult{}, nil
	}
	return client.EmbeddingTaskPredict(ctx, req)
}

func (s *NlpServicer) EmbeddingTasksPredict(ctx context.Context, req *nlp.EmbeddingTasksRequest) (*nlp.EmbeddingResults, error) {
	client, err := s.client(ctx)
	if err != nil {
		return nil, err
	}
	if len(req.Texts) == 0 {
		return &nlp.EmbeddingResults{}, nil
	}
	return client.EmbeddingTasksPredict(ctx, req)
}

func (s *NlpServicer) RerankTaskPredict(ctx context.Context, req *nlp.RerankTaskRequest) (*nlp.RerankResult, error) {
	client, err := s.client(ctx)
	if err != nil {
		return nil, err
	}
	if req.Query == "" || len(req.Documents) == 0 {
		return &nlp.RerankResult{}, nil
	}
	return client.RerankTaskPredict(ctx, req)
}

func (s *NlpServicer) RerankTasksPredict(ctx context.Context, req *nlp.RerankTasksRequest) (*nlp.RerankResults, error) {
	client, err := s.client(ctx)
	if err != nil {
		return nil, err
	}
	if len(req.Queries) == 0 || len(req.Documents) == 0 {
		return &nlp.RerankResults{}, nil
	}
	return client.RerankTasksPredict(ctx, req)
}

func (s *NlpServicer) SentenceSimilarityTaskPredict(ctx context.Context, req *nlp.SentenceSimilarityTaskRequest) (*nlp.SentenceSimilarityResult, error) {
	client, err := s.client(ctx)
	if err != nil {
		return nil, err
	}
	if req.SourceSentence == "" || len(req.Sentences) == 0 {
		return &nlp.SentenceSimilarityResult{}, nil
	}
	return client.SentenceSimilarityTaskPredict(ctx, req)
}

func (s *NlpServicer) SentenceSimilarityTasksPredict(ctx context.Context, req *nlp.SentenceSimilarityTasksRequest) (*nlp.SentenceSimilarityResults, error) {
	client, err := s.client(ctx)
	if err != nil {
		return nil, err
	}
	if len(req.SourceSentences) == 0 || len(req.Sentences) == 0 {
		return &nlp.SentenceSimilarityResults{}, nil
	}
	return client.SentenceSimilarityTasksPredict(ctx, req)
}

// TextClassificationTaskPredict, TextGenerationTaskPredict,
// TokenClassificationTaskPredict, ServerStreamingTextGenerationTaskPredict,
// and BidiStreamingTokenClassificationTaskPredict are all UNIMPLEMENTED
// per spec.md §4.5; UnimplementedNlpServiceServer already answers them.
