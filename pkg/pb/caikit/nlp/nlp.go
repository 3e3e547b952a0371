// Package nlp holds the message types generated from
// caikit_runtime_Nlp.proto. See pkg/pb/fmaas for the rationale: these are
// the out-of-scope generated stubs spec.md §1 excludes from re-specification.
package nlp

// Vector is a dense embedding.
type Vector struct {
	Data []float32
}

// EmbeddingTaskRequest embeds a single text.
type EmbeddingTaskRequest struct {
	Text string
}

// EmbeddingTasksRequest embeds a batch of texts.
type EmbeddingTasksRequest struct {
	Texts []string
}

// EmbeddingResult is the embedding of a single text.
type EmbeddingResult struct {
	Result *Vector
}

// EmbeddingResults is the embeddings of a batch of texts, same order.
type EmbeddingResults struct {
	Results []*Vector
}

// Document is a single passage to rerank or score.
type Document struct {
	Text string
}

// RerankScore is a document's score against one query.
type RerankScore struct {
	DocumentIndex uint32
	Score         float64
	Text          *string
}

// RerankTaskRequest reranks documents against a single query.
type RerankTaskRequest struct {
	Query           string
	Documents       []*Document
	TopN            *uint32
	ReturnDocuments bool
	ReturnQuery     bool
	Truncate        bool
}

// RerankTasksRequest reranks documents against a batch of queries.
type RerankTasksRequest struct {
	Queries         []string
	Documents       []*Document
	TopN            *uint32
	ReturnDocuments bool
	ReturnQuery     bool
	Truncate        bool
}

// RerankResult is the rerank outcome for a single query.
type RerankResult struct {
	Query  *string
	Scores []*RerankScore
}

// RerankResults is the rerank outcome for a batch of queries, same order.
type RerankResults struct {
	Results []*RerankResult
}

// SentenceSimilarityTaskRequest scores one sentence against others.
type SentenceSimilarityTaskRequest struct {
	SourceSentence string
	Sentences      []string
}

// SentenceSimilarityTasksRequest scores a batch of sentences against others.
type SentenceSimilarityTasksRequest struct {
	SourceSentences []string
	Sentences       []string
}

// SentenceSimilarityResult is the similarity outcome for one source sentence.
type SentenceSimilarityResult struct {
	Scores []float64
}

// SentenceSimilarityResults is the similarity outcome for a batch, same order.
type SentenceSimilarityResults struct {
	Results []*SentenceSimilarityResult
}

// TextClassificationTaskRequest classifies a single text.
type TextClassificationTaskRequest struct {
	Text string
}

// ClassificationResult is a single label/score pair.
type ClassificationResult struct {
	Label string
	Score float64
}

// ClassificationResults is the classification outcome for one text.
type ClassificationResults struct {
	Results []*ClassificationResult
}

// TextGenerationTaskRequest asks for a single unary generation (unimplemented
// upstream of this gateway; kept for interface completeness).
type TextGenerationTaskRequest struct {
	Text string
}

// GeneratedTextResult is the unary text-generation result.
type GeneratedTextResult struct {
	GeneratedText string
}

// GenerationDetails accompanies a streamed text-generation chunk.
type GenerationDetails struct {
	FinishReason        string
	GeneratedTokenCount  uint32
	Seed                 int64
}

// GeneratedTextStreamResult is one chunk of a streamed text generation.
type GeneratedTextStreamResult struct {
	GeneratedText string
	Details       *GenerationDetails
}

// ServerStreamingTextGenerationTaskRequest asks for a streamed generation
// (unimplemented upstream of this gateway; kept for interface completeness).
type ServerStreamingTextGenerationTaskRequest struct {
	Text string
}

// Token is a single token-classification span.
type Token struct {
	Start  uint32
	End    uint32
	Word   string
	Entity string
	Score  float64
}

// TokenClassificationTaskRequest classifies tokens in a single text.
type TokenClassificationTaskRequest struct {
	Text string
}

// TokenClassificationResults is the token-classification outcome.
type TokenClassificationResults struct {
	Results []*Token
}

// TokenClassificationStreamResult is one chunk of a streamed token
// classification.
type TokenClassificationStreamResult struct {
	Results        []*Token
	ProcessedIndex uint32
}

// BidiStreamingTokenClassificationTaskRequest is one chunk of streamed input
// text for bidirectional token classification (unimplemented upstream of
// this gateway; kept for interface completeness).
type BidiStreamingTokenClassificationTaskRequest struct {
	TextStream string
}
