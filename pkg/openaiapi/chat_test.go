package openaiapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fmaas-project/router/pkg/chattemplate"
	"github.com/fmaas-project/router/pkg/pb/fmaas"
)

func newHandler(clients map[string]fmaas.GenerationServiceClient, templates map[string]*chattemplate.ChatTemplate) *Handler {
	return &Handler{Clients: clients, ChatTemplates: templates, Metrics: nil}
}

func postJSON(t *testing.T, h http.HandlerFunc, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	buf, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/v1/chat/completions", bytes.NewReader(buf))
	rec := httptest.NewRecorder()
	h(rec, req)
	return rec
}

// Scenario 3: unknown model -> 422 with the exact message (spec.md §8).
func TestChatCompletions_UnknownModel(t *testing.T) {
	h := newHandler(map[string]fmaas.GenerationServiceClient{}, nil)
	rec := postJSON(t, h.ChatCompletions, map[string]interface{}{
		"model":    "no-such",
		"messages": []map[string]string{{"role": "user", "content": "hi"}},
	})

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	var body string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body, "Unrecognized model id `no-such`")
}

// Scenario 2: role-alternation guard — rendering raises, handler returns
// 400 with the raised message verbatim (spec.md §8).
func TestChatCompletions_RoleAlternationGuardSurfacesRaisedMessage(t *testing.T) {
	tmpl, err := chattemplate.Compile("<s>", "</s>", `
{%- for message in messages -%}
  {%- if loop.index0 % 2 == 0 and message.role != "user" -%}
    {{ raise_exception("Conversation roles must alternate user/assistant/user/assistant/...") }}
  {%- endif -%}
  {{ message.content }}
{%- endfor -%}
`)
	require.NoError(t, err)

	fake := &fakeGenerationClient{}
	h := newHandler(
		map[string]fmaas.GenerationServiceClient{"m": fake},
		map[string]*chattemplate.ChatTemplate{"m": tmpl},
	)
	rec := postJSON(t, h.ChatCompletions, map[string]interface{}{
		"model": "m",
		"messages": []map[string]string{
			{"role": "assistant", "content": "a"},
			{"role": "user", "content": "b"},
		},
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	var body string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body, "Conversation roles must alternate")
}

// Property: best_of or use_beam_search=true -> 501 (spec.md §8).
func TestChatCompletions_BestOfAndBeamSearchAreUnimplemented(t *testing.T) {
	h := newHandler(nil, nil)

	bestOf := 3
	rec := postJSON(t, h.ChatCompletions, map[string]interface{}{
		"model": "m", "messages": []map[string]string{{"role": "user", "content": "hi"}}, "best_of": bestOf,
	})
	assert.Equal(t, http.StatusNotImplemented, rec.Code)

	rec = postJSON(t, h.ChatCompletions, map[string]interface{}{
		"model": "m", "messages": []map[string]string{{"role": "user", "content": "hi"}}, "use_beam_search": true,
	})
	assert.Equal(t, http.StatusNotImplemented, rec.Code)
}

func TestChatCompletions_UnaryHappyPath(t *testing.T) {
	tmpl, err := chattemplate.Compile("<s>", "</s>", "{%- for m in messages -%}{{ m.content }}{%- endfor -%}")
	require.NoError(t, err)
	fake := &fakeGenerationClient{generateResp: &fmaas.BatchedGenerationResponse{
		Responses: []*fmaas.GenerationResponse{{
			Text:                "hello there",
			GeneratedTokenCount: 2,
			InputTokenCount:     5,
			StopReason:          fmaas.StopReason_EOS_TOKEN,
		}},
	}}
	h := newHandler(
		map[string]fmaas.GenerationServiceClient{"m": fake},
		map[string]*chattemplate.ChatTemplate{"m": tmpl},
	)

	rec := postJSON(t, h.ChatCompletions, map[string]interface{}{
		"model":    "m",
		"messages": []map[string]string{{"role": "user", "content": "hi"}},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp ChatCompletionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, strings.HasPrefix(resp.ID, "chatcmpl-"))
	assert.Equal(t, "hello there", *resp.Choices[0].Message.Content)
	assert.Equal(t, "stop", resp.Choices[0].FinishReason)
	assert.EqualValues(t, 5, resp.Usage.PromptTokens)
	assert.EqualValues(t, 2, resp.Usage.CompletionTokens)
}
