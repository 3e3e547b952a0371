package openaiapi

import (
	"sort"

	"github.com/fmaas-project/router/pkg/pb/fmaas"
)

// commonRequest is the subset of ChatCompletionRequest/CompletionRequest
// needed by toParameters, letting one function serve both endpoints
// (spec.md §4.7.1).
type commonRequest struct {
	Temperature       *float32
	Seed              *int64
	TopK              *uint32
	TopP              *float32
	MaxTokens         *uint32
	MinTokens         *uint32
	RepetitionPenalty *float32
	Stop              *StopTokens
}

// responseOptions is computed per-endpoint per the §4.7.1 table and
// merged into the shared Parameters by toParameters.
type responseOptions struct {
	InputText       bool
	GeneratedTokens bool
	InputTokens     bool
	TokenLogprobs   bool
	TokenRanks      bool
	TopNTokens      uint32
}

func toParameters(req commonRequest, resp responseOptions) *fmaas.Parameters {
	temperature := float32(1.0)
	if req.Temperature != nil {
		temperature = *req.Temperature
	}
	method := fmaas.DecodingMethod_GREEDY
	if temperature >= SAMPLING_EPS || req.Seed != nil {
		method = fmaas.DecodingMethod_SAMPLE
	}

	topP := float32(1.0)
	if req.TopP != nil {
		topP = *req.TopP
	}
	var topK uint32
	if req.TopK != nil {
		topK = *req.TopK
	}

	var maxNewTokens uint32 = 16
	if req.MaxTokens != nil {
		maxNewTokens = *req.MaxTokens
	}
	var minNewTokens uint32
	if req.MinTokens != nil {
		minNewTokens = *req.MinTokens
	}

	var repetitionPenalty float32
	if req.RepetitionPenalty != nil {
		repetitionPenalty = *req.RepetitionPenalty
	}

	return &fmaas.Parameters{
		Method: method,
		Sampling: &fmaas.SamplingParameters{
			Temperature: temperature,
			TopK:        topK,
			TopP:        topP,
			TypicalP:    0,
			Seed:        req.Seed,
		},
		Stopping: &fmaas.StoppingCriteria{
			MaxNewTokens:    maxNewTokens,
			MinNewTokens:    minNewTokens,
			TimeLimitMillis: 0,
			StopSequences:   req.Stop.Sequences(),
		},
		Response: &fmaas.ResponseOptions{
			InputText:       resp.InputText,
			GeneratedTokens: resp.GeneratedTokens,
			InputTokens:     resp.InputTokens,
			TokenLogprobs:   resp.TokenLogprobs,
			TokenRanks:      resp.TokenRanks,
			TopNTokens:      resp.TopNTokens,
		},
		Decoding: &fmaas.DecodingParameters{
			RepetitionPenalty: repetitionPenalty,
		},
		TruncateInputTokens: 0,
	}
}

// ChatParameters builds native Parameters for a chat completion request.
func ChatParameters(req *ChatCompletionRequest) *fmaas.Parameters {
	generatedTokens := req.Logprobs != nil && *req.Logprobs
	topN := uint32(0)
	if generatedTokens {
		topN = 1
		if req.TopLogprobs != nil {
			topN = *req.TopLogprobs
		}
	}
	return toParameters(commonRequest{
		Temperature:       req.Temperature,
		Seed:              req.Seed,
		TopK:              req.TopK,
		TopP:              req.TopP,
		MaxTokens:         req.MaxTokens,
		MinTokens:         req.MinTokens,
		RepetitionPenalty: req.RepetitionPenalty,
		Stop:              req.Stop,
	}, responseOptions{
		InputText:       false,
		GeneratedTokens: generatedTokens,
		InputTokens:     false,
		TokenLogprobs:   generatedTokens,
		TokenRanks:      false,
		TopNTokens:      topN,
	})
}

// CompletionParameters builds native Parameters for a legacy completion
// request.
func CompletionParameters(req *CompletionRequest) *fmaas.Parameters {
	echo := req.Echo != nil && *req.Echo
	generatedTokens := req.Logprobs != nil
	topN := uint32(0)
	if req.Logprobs != nil {
		topN = *req.Logprobs
	}
	return toParameters(commonRequest{
		Temperature:       req.Temperature,
		Seed:              req.Seed,
		TopK:              req.TopK,
		TopP:              req.TopP,
		MaxTokens:         req.MaxTokens,
		MinTokens:         req.MinTokens,
		RepetitionPenalty: req.RepetitionPenalty,
		Stop:              req.Stop,
	}, responseOptions{
		InputText:       echo,
		GeneratedTokens: generatedTokens,
		InputTokens:     echo && generatedTokens,
		TokenLogprobs:   generatedTokens,
		TokenRanks:      false,
		TopNTokens:      topN,
	})
}

// finishReason maps a native stop reason to an OpenAI finish_reason
// string, or empty with ok=false for NotFinished (spec.md §4.7.3).
func finishReason(reason fmaas.StopReason) (value string, ok bool) {
	switch reason {
	case fmaas.StopReason_MAX_TOKENS, fmaas.StopReason_TOKEN_LIMIT:
		return "length", true
	case fmaas.StopReason_STOP_SEQUENCE, fmaas.StopReason_EOS_TOKEN:
		return "stop", true
	case fmaas.StopReason_CANCELLED, fmaas.StopReason_TIME_LIMIT, fmaas.StopReason_ERROR:
		return "abort", true
	default:
		return "", false
	}
}

// UnaryFinishReason maps a terminal (non-streaming) stop reason. Native
// NotFinished has no legal unary meaning; the caller treats the false
// return as an internal error rather than panicking (spec.md §9 open
// question: "a robust implementation should instead surface an internal
// error without terminating the process").
func UnaryFinishReason(reason fmaas.StopReason) (string, bool) {
	return finishReason(reason)
}

// StreamFinishReason maps a possibly-nonterminal stop reason to a
// pointer, nil while NotFinished (spec.md §4.7.5 point 3).
func StreamFinishReason(reason fmaas.StopReason) *string {
	value, ok := finishReason(reason)
	if !ok {
		return nil
	}
	return &value
}

// ChatLogprobs implements §4.7.6's chat mapping: per-token entries with a
// token-deduped (by text, last write wins), ascending-sorted top_logprobs
// set. Returns nil if tokens is empty.
func ChatLogprobs(tokens []*fmaas.TokenInfo, topLogprobsRequested uint32) *ChatCompletionLogprobs {
	if len(tokens) == 0 {
		return nil
	}
	content := make([]ChatCompletionLogprob, 0, len(tokens))
	for _, t := range tokens {
		var top []ChatCompletionTopLogprob
		if topLogprobsRequested > 0 {
			dedup := make(map[string]float32, len(t.TopTokens)+1)
			order := make([]string, 0, len(t.TopTokens)+1)
			put := func(text string, logprob float32) {
				if _, ok := dedup[text]; !ok {
					order = append(order, text)
				}
				dedup[text] = logprob
			}
			for _, tt := range t.TopTokens {
				put(tt.Text, tt.Logprob)
			}
			put(t.Text, t.Logprob)
			top = make([]ChatCompletionTopLogprob, 0, len(order))
			for _, text := range order {
				top = append(top, ChatCompletionTopLogprob{Token: text, Logprob: dedup[text]})
			}
			sort.Slice(top, func(i, j int) bool { return top[i].Logprob < top[j].Logprob })
		}
		content = append(content, ChatCompletionLogprob{
			Token:       t.Text,
			Logprob:     t.Logprob,
			TopLogprobs: top,
		})
	}
	return &ChatCompletionLogprobs{Content: content}
}

// CompletionLogprobsOf implements §4.7.6's completions mapping: parallel
// arrays plus, when requested, one insertion-ordered top_logprobs map per
// token (ascending by logprob, later duplicate wins). Returns nil if
// tokens is empty.
func CompletionLogprobsOf(tokens []*fmaas.TokenInfo, topLogprobsRequested uint32) *CompletionLogprobs {
	if len(tokens) == 0 {
		return nil
	}
	out := &CompletionLogprobs{
		Tokens:        make([]string, 0, len(tokens)),
		TokenLogprobs: make([]float32, 0, len(tokens)),
		TextOffset:    []uint32{},
	}
	if topLogprobsRequested > 0 {
		out.TopLogprobs = make([]*OrderedLogprobMap, 0, len(tokens))
	}
	for _, t := range tokens {
		out.Tokens = append(out.Tokens, t.Text)
		out.TokenLogprobs = append(out.TokenLogprobs, t.Logprob)
		if topLogprobsRequested == 0 {
			continue
		}
		pairs := make([]orderedLogprobEntry, 0, len(t.TopTokens)+1)
		for _, tt := range t.TopTokens {
			pairs = append(pairs, orderedLogprobEntry{Token: tt.Text, Logprob: tt.Logprob})
		}
		pairs = append(pairs, orderedLogprobEntry{Token: t.Text, Logprob: t.Logprob})
		sort.SliceStable(pairs, func(i, j int) bool { return pairs[i].Logprob < pairs[j].Logprob })
		out.TopLogprobs = append(out.TopLogprobs, NewOrderedLogprobMap(pairs))
	}
	return out
}
