package openaiapi

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/fmaas-project/router/pkg/chattemplate"
	"github.com/fmaas-project/router/pkg/pb/fmaas"
	"github.com/fmaas-project/router/pkg/telemetry"
)

// ChatCompletions handles POST /v1/chat/completions (spec.md §4.6, §4.7).
func (h *Handler) ChatCompletions(w http.ResponseWriter, r *http.Request) {
	var req ChatCompletionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	if checkUnsupportedOptions(w, req.BestOf, req.UseBeamSearch) {
		return
	}

	requestID := newRequestID("chatcmpl-")
	created := currentUnixTime()
	stream := req.Stream != nil && *req.Stream

	client, ok := h.Clients[req.Model]
	if !ok {
		writeJSONError(w, http.StatusUnprocessableEntity, fmt.Sprintf("Unrecognized model id `%s`", req.Model))
		return
	}
	tmpl, ok := h.ChatTemplates[req.Model]
	if !ok {
		writeJSONError(w, http.StatusUnprocessableEntity, fmt.Sprintf("Chat template not found for model id `%s`", req.Model))
		return
	}

	messages := make([]chattemplate.Message, len(req.Messages))
	for i, m := range req.Messages {
		messages[i] = chattemplate.Message{Role: m.Role, Content: m.Content}
	}
	prompt, err := tmpl.Render(messages)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	topLogprobs := uint32(0)
	if req.Logprobs != nil && *req.Logprobs {
		topLogprobs = 1
		if req.TopLogprobs != nil {
			topLogprobs = *req.TopLogprobs
		}
	}
	params := ChatParameters(&req)

	if stream {
		h.streamChatCompletion(w, r, client, req.Model, requestID, created, prompt, params, topLogprobs)
		return
	}
	h.unaryChatCompletion(w, r, client, req.Model, requestID, created, prompt, params, topLogprobs)
}

func (h *Handler) unaryChatCompletion(w http.ResponseWriter, r *http.Request, client fmaas.GenerationServiceClient, modelID, requestID string, created int64, prompt string, params *fmaas.Parameters, topLogprobs uint32) {
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

	role := "assistant"
	content := result.Text
	writeJSON(w, ChatCompletionResponse{
		ID:      requestID,
		Object:  "chat.completion",
		Created: created,
		Model:   modelID,
		Choices: []ChatCompletionChoice{{
			Index:        0,
			Message:      ChatCompletionMessage{Role: &role, Content: &content},
			Logprobs:     ChatLogprobs(result.Tokens, topLogprobs),
			FinishReason: finishReason,
		}},
		Usage: Usage{
			CompletionTokens: result.GeneratedTokenCount,
			PromptTokens:     result.InputTokenCount,
			TotalTokens:      result.InputTokenCount + result.GeneratedTokenCount,
		},
	})
}

func (h *Handler) streamChatCompletion(w http.ResponseWriter, r *http.Request, client fmaas.GenerationServiceClient, modelID, requestID string, created int64, prompt string, params *fmaas.Parameters, topLogprobs uint32) {
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

	role := "assistant"
	opener := ChatCompletionChunk{
		ID:      requestID,
		Object:  "chat.completion.chunk",
		Created: created,
		Model:   modelID,
		Choices: []ChatCompletionChunkChoice{{
			Index: 0,
			Delta: ChatCompletionMessage{Role: &role},
		}},
	}
	if err := sse.WriteJSON(opener); err != nil {
		return
	}
	h.Metrics.RecordStreamChunk("GenerationService", "GenerateStream")

	// First upstream message carries only input_token_count (spec.md §4.7.5
	// point 2); it is consumed silently and never emitted as a chunk.
	first, err := upstream.Recv()
	if err != nil {
		return
	}
	var promptTokens uint32
	if first.InputTokenCount > 0 {
		promptTokens = first.InputTokenCount
	}

	for {
		resp, err := upstream.Recv()
		if err == io.EOF {
			break
		}
		if err != nil {
			// Streaming error after first byte: abort without [DONE]
			// (spec.md §7).
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

		content := resp.Text
		chunk := ChatCompletionChunk{
			ID:      requestID,
			Object:  "chat.completion.chunk",
			Created: created,
			Model:   modelID,
			Choices: []ChatCompletionChunkChoice{{
				Index:        0,
				Delta:        ChatCompletionMessage{Content: &content},
				Logprobs:     ChatLogprobs(resp.Tokens, topLogprobs),
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
