package openaiapi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fmaas-project/router/pkg/pb/fmaas"
)

func f32(v float32) *float32 { return &v }
func i64(v int64) *int64     { return &v }

// Scenario 6: Greedy/Sample decisions per (temperature, seed) combination
// (spec.md §4.7.1, §8).
func TestChatParameters_DecodingMethod(t *testing.T) {
	cases := []struct {
		name        string
		temperature *float32
		seed        *int64
		want        fmaas.DecodingMethod
	}{
		{"default temperature, no seed", nil, nil, fmaas.DecodingMethod_SAMPLE},
		{"zero temperature, no seed", f32(0), nil, fmaas.DecodingMethod_GREEDY},
		{"zero temperature with seed", f32(0), i64(7), fmaas.DecodingMethod_SAMPLE},
		{"above epsilon temperature", f32(0.7), nil, fmaas.DecodingMethod_SAMPLE},
		{"below epsilon temperature", f32(1e-7), nil, fmaas.DecodingMethod_GREEDY},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			req := &ChatCompletionRequest{Model: "m", Messages: nil, Temperature: c.temperature, Seed: c.seed}
			got := ChatParameters(req)
			assert.Equal(t, c.want, got.Method)
		})
	}
}

func TestChatParameters_ResponseOptions(t *testing.T) {
	logprobsTrue := true
	var topLogprobs uint32 = 3
	req := &ChatCompletionRequest{Model: "m", Logprobs: &logprobsTrue, TopLogprobs: &topLogprobs}
	got := ChatParameters(req)

	assert.False(t, got.Response.InputText)
	assert.True(t, got.Response.GeneratedTokens)
	assert.False(t, got.Response.InputTokens)
	assert.True(t, got.Response.TokenLogprobs)
	assert.Equal(t, uint32(3), got.Response.TopNTokens)
}

func TestChatParameters_LogprobsDefaultsTopNToOne(t *testing.T) {
	logprobsTrue := true
	req := &ChatCompletionRequest{Model: "m", Logprobs: &logprobsTrue}
	got := ChatParameters(req)
	assert.Equal(t, uint32(1), got.Response.TopNTokens)
}

func TestCompletionParameters_EchoResponseOptions(t *testing.T) {
	echo := true
	var logprobs uint32 = 2
	req := &CompletionRequest{Model: "m", Prompt: "p", Echo: &echo, Logprobs: &logprobs}
	got := CompletionParameters(req)

	assert.True(t, got.Response.InputText)
	assert.True(t, got.Response.GeneratedTokens)
	assert.True(t, got.Response.InputTokens, "echo && generatedTokens")
	assert.True(t, got.Response.TokenLogprobs)
	assert.Equal(t, uint32(2), got.Response.TopNTokens)
}

func TestCompletionParameters_NoEchoNoInputTokens(t *testing.T) {
	var logprobs uint32 = 1
	req := &CompletionRequest{Model: "m", Prompt: "p", Logprobs: &logprobs}
	got := CompletionParameters(req)
	assert.False(t, got.Response.InputText)
	assert.False(t, got.Response.InputTokens)
}

func TestFinishReason_Mapping(t *testing.T) {
	cases := []struct {
		reason fmaas.StopReason
		want   string
	}{
		{fmaas.StopReason_MAX_TOKENS, "length"},
		{fmaas.StopReason_TOKEN_LIMIT, "length"},
		{fmaas.StopReason_STOP_SEQUENCE, "stop"},
		{fmaas.StopReason_EOS_TOKEN, "stop"},
		{fmaas.StopReason_CANCELLED, "abort"},
		{fmaas.StopReason_TIME_LIMIT, "abort"},
		{fmaas.StopReason_ERROR, "abort"},
	}
	for _, c := range cases {
		got, ok := UnaryFinishReason(c.reason)
		require.True(t, ok)
		assert.Equal(t, c.want, got)
	}
}

func TestUnaryFinishReason_NotFinishedIsIllegal(t *testing.T) {
	_, ok := UnaryFinishReason(fmaas.StopReason_NOT_FINISHED)
	assert.False(t, ok, "NotFinished has no legal unary meaning")
}

func TestStreamFinishReason_NilWhileNotFinished(t *testing.T) {
	assert.Nil(t, StreamFinishReason(fmaas.StopReason_NOT_FINISHED))
	assert.NotNil(t, StreamFinishReason(fmaas.StopReason_EOS_TOKEN))
}

// Logprobs top-k (chat): sorted ascending, length <= 1+len(top_tokens), no
// duplicate token strings (spec.md §8).
func TestChatLogprobs_DedupsAndSortsAscending(t *testing.T) {
	tokens := []*fmaas.TokenInfo{
		{
			Text:    "hello",
			Logprob: -0.5,
			TopTokens: []*fmaas.TopToken{
				{Text: "hi", Logprob: -0.2},
				{Text: "hello", Logprob: -0.9}, // duplicate of chosen token, later value wins
				{Text: "hey", Logprob: -1.5},
			},
		},
	}
	got := ChatLogprobs(tokens, 3)
	require.Len(t, got.Content, 1)
	top := got.Content[0].TopLogprobs
	assert.LessOrEqual(t, len(top), 1+3)

	seen := map[string]bool{}
	for i, tl := range top {
		assert.False(t, seen[tl.Token], "duplicate token %q", tl.Token)
		seen[tl.Token] = true
		if i > 0 {
			assert.LessOrEqual(t, top[i-1].Logprob, tl.Logprob, "must be sorted ascending")
		}
	}
	for _, tl := range top {
		if tl.Token == "hello" {
			assert.Equal(t, float32(-0.5), tl.Logprob, "dedup keeps the chosen token's own logprob (last write wins)")
		}
	}
}

func TestChatLogprobs_EmptyTokensReturnsNil(t *testing.T) {
	assert.Nil(t, ChatLogprobs(nil, 5))
}

func TestCompletionLogprobsOf_OrderedMapPreservesInsertionOrderAfterSort(t *testing.T) {
	tokens := []*fmaas.TokenInfo{
		{
			Text:    "z",
			Logprob: -1,
			TopTokens: []*fmaas.TopToken{
				{Text: "a", Logprob: -3},
				{Text: "b", Logprob: -2},
			},
		},
	}
	got := CompletionLogprobsOf(tokens, 2)
	require.Len(t, got.TopLogprobs, 1)

	body, err := got.TopLogprobs[0].MarshalJSON()
	require.NoError(t, err)
	// "a" (-3) sorts before "b" (-2) sorts before "z" (-1).
	assert.Equal(t, `{"a":-3,"b":-2,"z":-1}`, string(body))
}
