// Package openaiapi implements C6 (the OpenAI-compatible HTTP facade) and
// C7 (the bidirectional OpenAI<->native protocol adapter), grounded on
// openai/chat.rs and openai/completions.rs of the original implementation
// (spec.md §4.6, §4.7).
package openaiapi

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// SAMPLING_EPS is the implementation-defined threshold above which a
// requested temperature selects sampled (rather than greedy) decoding
// (spec.md §4.7.1).
const SAMPLING_EPS = 1e-5

// Message is a single OpenAI chat turn.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// StopTokens is OpenAI's `stop` field: either a single string or a list
// of strings.
type StopTokens struct {
	Array  []string
	String string
	IsSet  bool
}

func (s *StopTokens) UnmarshalJSON(data []byte) error {
	var asString string
	if err := json.Unmarshal(data, &asString); err == nil {
		s.String = asString
		s.IsSet = true
		return nil
	}
	var asArray []string
	if err := json.Unmarshal(data, &asArray); err == nil {
		s.Array = asArray
		s.IsSet = true
		return nil
	}
	return fmt.Errorf("stop must be a string or an array of strings")
}

// Sequences returns the OpenAI stop field flattened to native
// stop_sequences semantics: absent -> empty, string -> single-element,
// array -> passthrough (spec.md §4.7.1).
func (s *StopTokens) Sequences() []string {
	if s == nil || !s.IsSet {
		return nil
	}
	if s.Array != nil {
		return s.Array
	}
	return []string{s.String}
}

// ChatCompletionRequest is the body of POST /v1/chat/completions.
type ChatCompletionRequest struct {
	Model            string    `json:"model"`
	Messages         []Message `json:"messages"`
	Stream           *bool     `json:"stream,omitempty"`
	BestOf           *int      `json:"best_of,omitempty"`
	UseBeamSearch    *bool     `json:"use_beam_search,omitempty"`
	Temperature      *float32  `json:"temperature,omitempty"`
	TopK             *uint32   `json:"top_k,omitempty"`
	TopP             *float32  `json:"top_p,omitempty"`
	Seed             *int64    `json:"seed,omitempty"`
	MaxTokens        *uint32   `json:"max_tokens,omitempty"`
	MinTokens        *uint32   `json:"min_tokens,omitempty"`
	RepetitionPenalty *float32 `json:"repetition_penalty,omitempty"`
	Stop             *StopTokens `json:"stop,omitempty"`
	Logprobs         *bool     `json:"logprobs,omitempty"`
	TopLogprobs      *uint32   `json:"top_logprobs,omitempty"`
}

// CompletionRequest is the body of POST /v1/completions.
type CompletionRequest struct {
	Model             string      `json:"model"`
	Prompt            string      `json:"prompt"`
	Stream            *bool       `json:"stream,omitempty"`
	Echo              *bool       `json:"echo,omitempty"`
	BestOf            *int        `json:"best_of,omitempty"`
	UseBeamSearch     *bool       `json:"use_beam_search,omitempty"`
	Temperature       *float32    `json:"temperature,omitempty"`
	TopK              *uint32     `json:"top_k,omitempty"`
	TopP              *float32    `json:"top_p,omitempty"`
	Seed              *int64      `json:"seed,omitempty"`
	MaxTokens         *uint32     `json:"max_tokens,omitempty"`
	MinTokens         *uint32     `json:"min_tokens,omitempty"`
	RepetitionPenalty *float32    `json:"repetition_penalty,omitempty"`
	Stop              *StopTokens `json:"stop,omitempty"`
	Logprobs          *uint32     `json:"logprobs,omitempty"`
}

// Usage reports token accounting, populated only once a response or
// stream is terminal (spec.md §4.7.4, §4.7.5).
type Usage struct {
	CompletionTokens uint32 `json:"completion_tokens"`
	PromptTokens     uint32 `json:"prompt_tokens"`
	TotalTokens      uint32 `json:"total_tokens"`
}

// ChatCompletionMessage is a role/content pair; either may be absent (the
// streaming role-only opener carries no content, and non-opener chunks
// carry no role).
type ChatCompletionMessage struct {
	Role    *string `json:"role,omitempty"`
	Content *string `json:"content,omitempty"`
}

// ChatCompletionTopLogprob is one alternative token considered at a step.
type ChatCompletionTopLogprob struct {
	Token   string  `json:"token"`
	Logprob float32 `json:"logprob"`
}

// ChatCompletionLogprob is per-token detail for one generated token.
type ChatCompletionLogprob struct {
	Token       string                      `json:"token"`
	Logprob     float32                     `json:"logprob"`
	TopLogprobs []ChatCompletionTopLogprob `json:"top_logprobs"`
}

// ChatCompletionLogprobs wraps the chat logprobs object; nil when the
// adapter saw zero tokens (spec.md §4.7.6).
type ChatCompletionLogprobs struct {
	Content []ChatCompletionLogprob `json:"content"`
}

// ChatCompletionChoice is the sole choice of a unary chat response.
type ChatCompletionChoice struct {
	Index        int                     `json:"index"`
	Message      ChatCompletionMessage   `json:"message"`
	Logprobs     *ChatCompletionLogprobs `json:"logprobs"`
	FinishReason string                  `json:"finish_reason"`
}

// ChatCompletionResponse is the unary body of /v1/chat/completions.
type ChatCompletionResponse struct {
	ID                string                 `json:"id"`
	Object            string                 `json:"object"`
	Created           int64                  `json:"created"`
	Model             string                 `json:"model"`
	SystemFingerprint *string                `json:"system_fingerprint"`
	Choices           []ChatCompletionChoice `json:"choices"`
	Usage             Usage                  `json:"usage"`
}

// ChatCompletionChunkChoice is one choice of one SSE chunk.
type ChatCompletionChunkChoice struct {
	Index        int                     `json:"index"`
	Delta        ChatCompletionMessage   `json:"delta"`
	Logprobs     *ChatCompletionLogprobs `json:"logprobs"`
	FinishReason *string                 `json:"finish_reason"`
}

// ChatCompletionChunk is one SSE event's JSON payload for streaming chat.
type ChatCompletionChunk struct {
	ID      string                      `json:"id"`
	Object  string                      `json:"object"`
	Created int64                       `json:"created"`
	Model   string                      `json:"model"`
	Choices []ChatCompletionChunkChoice `json:"choices"`
	Usage   *Usage                      `json:"usage"`
}

// orderedLogprobEntry is one (token, logprob) pair in insertion order.
type orderedLogprobEntry struct {
	Token   string
	Logprob float32
}

// OrderedLogprobMap preserves insertion order on marshal, matching the
// original's IndexMap<String, f32> (spec.md §4.7.6 completions case).
type OrderedLogprobMap struct {
	entries []orderedLogprobEntry
}

// NewOrderedLogprobMap builds a map from already-sorted (token, logprob)
// pairs, deduplicating by token with the later entry in pairs winning
// (spec.md §4.7.6: "duplicates are deduplicated by later insertion
// winning").
func NewOrderedLogprobMap(pairs []orderedLogprobEntry) *OrderedLogprobMap {
	seen := make(map[string]int, len(pairs))
	m := &OrderedLogprobMap{}
	for _, p := range pairs {
		if idx, ok := seen[p.Token]; ok {
			m.entries[idx].Logprob = p.Logprob
			continue
		}
		seen[p.Token] = len(m.entries)
		m.entries = append(m.entries, p)
	}
	return m
}

func (m *OrderedLogprobMap) MarshalJSON() ([]byte, error) {
	if m == nil {
		return []byte("null"), nil
	}
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range m.entries {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(e.Token)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(e.Logprob)
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// CompletionLogprobs is the parallel-arrays logprobs structure for
// /v1/completions (spec.md §4.7.6).
type CompletionLogprobs struct {
	Tokens       []string             `json:"tokens"`
	TokenLogprobs []float32           `json:"token_logprobs"`
	TextOffset   []uint32             `json:"text_offset"`
	TopLogprobs  []*OrderedLogprobMap `json:"top_logprobs"`
}

// CompletionChoice is the sole choice of a /v1/completions response,
// unary or streamed (streaming emits a full CompletionResponse per
// chunk, not a distinct chunk type — spec.md §4.7.5).
type CompletionChoice struct {
	Index        int                 `json:"index"`
	Text         string              `json:"text"`
	Logprobs     *CompletionLogprobs `json:"logprobs"`
	FinishReason *string             `json:"finish_reason"`
}

// CompletionResponse is the body of /v1/completions, unary or one chunk
// of its stream.
type CompletionResponse struct {
	ID                string             `json:"id"`
	Object            string             `json:"object"`
	Created           int64              `json:"created"`
	Model             string             `json:"model"`
	SystemFingerprint *string            `json:"system_fingerprint"`
	Choices           []CompletionChoice `json:"choices"`
	Usage             *Usage             `json:"usage"`
}
