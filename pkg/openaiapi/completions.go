package openaiapi

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/fmaas-project/router/pkg/pb/fmaas"
	"github.com/fmaas-project/router/pkg/telemetry"
)

// Completions handles POST /v1/completions (spec.md §4.6, §4.7).
func (h *Handler) Completions(w http.ResponseWriter, r *http.Request) {
	var req CompletionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	if checkUnsupportedOptions(w, req.BestOf, req.UseBeamSearch) {
		return
	}

	requestID := newRequestID("cmpl-")
	created := currentUnixTime()
	stream := req.Stream != nil && *req.Stream
	echo := req.Echo != nil && *req.Echo

	client, ok := h.Clients[req.Model]
	if !ok {
		writeJSONError(w, http.StatusUnprocessableEntity, fmt.Sprintf("Unrecognized model id `%s`", req.Model))
		return
	}

	var topLogprobs uint32
	if req.Logprobs != nil {
		topLogprobs = *req.Logprobs
	}
	params := CompletionParameters(&req)

	if stream {
		h.streamCompletion(w, r, client, req.Model, requestID, created, req.Prompt, params, topLogprobs, echo)
		return
	}
	h.unaryCompletion(w, r, client, req.Model, requestID, created, req.Prompt, params, topLogprobs)
}

func (h *Handler) unaryCompletion(w http.ResponseWriter, r *http.Request, client fmaas.GenerationServiceClient, modelID, requestID string, created int64, prompt string, params *fmaas.Parameters, topLogprobs uint32) {
	ctx := telemetry.InjectContext(r.Context())
	resp, err := client.Generate(ctx, &fmaas.BatchedGenerationRequest{
		ModelId:  modelID,
		Requests: []*fmaas.GenerationRequest{{Text: prompt}},
		Params:   params,
	})
	if err != nil {
		status, msg := grpcErrorToHTTP(err)
		writeJSONError(w, status, msg)
		return
	}
	if len(resp.Responses) == 0 {
		writeJSONError(w, http.StatusInternalServerError, "upstream returned no responses")
		return
	}
	result := resp.Responses[0]

	finishReason, ok := UnaryFinishReason(result.StopReason)
	if !ok {
		writeJSONError(w, http.StatusInternalServerError, "upstream generation did not finish")
		return
	}

	tokens := append(append([]*fmaas.TokenInfo{}, result.InputTokens...), result.Tokens...)
	writeJSON(w, CompletionResponse{
		ID:      requestID,
		Object:  "text_completion",
		Created: created,
		Model:   modelID,
		Choices: []CompletionChoice{{
			Index:        0,
			Text:         result.Text,
			Logprobs:     CompletionLogprobsOf(tokens, topLogprobs),
			FinishReason: &finishReason,
		}},
		Usage: &Usage{
			CompletionTokens: result.GeneratedTokenCount,
			PromptTokens:     result.InputTokenCount,
			TotalTokens:      result.InputTokenCount + result.GeneratedTokenCount,
		},
	})
}

func (h *Handler) streamCompletion(w http.ResponseWriter, r *http.Request, client fmaas.GenerationServiceClient, modelID, requestID string, created int64, prompt string, params *fmaas.Parameters, topLogprobs uint32, echo bool) {
	ctx := telemetry.InjectContext(r.Context())
	upstream, err := client.GenerateStream(ctx, &fmaas.SingleGenerationRequest{
		ModelId: modelID,
		Request: &fmaas.GenerationRequest{Text: prompt},
		Params:  params,
	})
	if err != nil {
		status, msg := grpcErrorToHTTP(err)
		writeJSONError(w, status, msg)
		return
	}

	sse := newSSEWriter(w)
	defer sse.Close()

	// First upstream message always carries input_token_count; its text is
	// buffered as the echo prefix when echo=true (spec.md §4.7.5 point 1).
	first, err := upstream.Recv()
	if err != nil {
		return
	}
	var promptTokens uint32
	if first.InputTokenCount > 0 {
		promptTokens = first.InputTokenCount
	}
	var bufferedText *string
	if echo {
		text := first.Text
		bufferedText = &text
	}

	// When echo=true, the second upstream message's input_tokens are
	// buffered to prepend to the first emitted chunk's logprobs.
	var bufferedTokens []*fmaas.TokenInfo
	haveBufferedTokens := false
	if echo {
		second, err := upstream.Recv()
		if err != nil {
			return
		}
		bufferedTokens = second.InputTokens
		haveBufferedTokens = true
	}

	for {
		resp, err := upstream.Recv()
		if err == io.EOF {
			break
		}
		if err != nil {
			return
		}

		finishReason := StreamFinishReason(resp.StopReason)
		var usage *Usage
		if finishReason != nil {
			completionTokens := resp.GeneratedTokenCount
			usage = &Usage{
				CompletionTokens: completionTokens,
				PromptTokens:     promptTokens,
				TotalTokens:      promptTokens + completionTokens,
			}
		}

		text := resp.Text
		if bufferedText != nil {
			text = *bufferedText + resp.Text
			bufferedText = nil
		}

		tokens := resp.Tokens
		if haveBufferedTokens {
			tokens = append(append([]*fmaas.TokenInfo{}, bufferedTokens...), resp.Tokens...)
			haveBufferedTokens = false
		}

		chunk := CompletionResponse{
			ID:      requestID,
			Object:  "text_completion",
			Created: created,
			Model:   modelID,
			Choices: []CompletionChoice{{
				Index:        0,
				Text:         text,
				Logprobs:     CompletionLogprobsOf(tokens, topLogprobs),
				FinishReason: finishReason,
			}},
			Usage: usage,
		}
		if err := sse.WriteJSON(chunk); err != nil {
			return
		}
		h.Metrics.RecordStreamChunk("GenerationService", "GenerateStream")
	}

	sse.WriteDone()
}
