package openaiapi

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSSEWriter_WriteJSONThenDone(t *testing.T) {
	rec := httptest.NewRecorder()
	s := newSSEWriter(rec)

	require.NoError(t, s.WriteJSON(map[string]int{"a": 1}))
	require.NoError(t, s.WriteDone())
	s.Close()

	assert.Equal(t, "text/event-stream", rec.Header().Get("Content-Type"))
	body := rec.Body.String()
	assert.True(t, strings.HasPrefix(body, "data: {\"a\":1}\n\n"))
	assert.True(t, strings.HasSuffix(body, "data: [DONE]\n\n"))
}
