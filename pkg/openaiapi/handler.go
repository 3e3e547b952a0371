package openaiapi

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/fmaas-project/router/pkg/chattemplate"
	"github.com/fmaas-project/router/pkg/pb/fmaas"
	"github.com/fmaas-project/router/pkg/telemetry"
)

// Handler serves the OpenAI-compatible HTTP facade (C6), sharing the same
// generation clients the native RPC facade uses (spec.md §9, "Shared
// upstream client for HTTP and gRPC generation").
type Handler struct {
	Clients       map[string]fmaas.GenerationServiceClient
	ChatTemplates map[string]*chattemplate.ChatTemplate
	Metrics       *telemetry.Metrics
}

func newRequestID(prefix string) string {
	return prefix + strings.ReplaceAll(uuid.New().String(), "-", "")
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	body, _ := json.Marshal(msg)
	w.Write(body)
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	body, err := json.Marshal(v)
	if err != nil {
		writeJSONError(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.Write(body)
}

// checkUnsupportedOptions implements the shared best_of/use_beam_search
// pre-checks both endpoints share (spec.md §4.6 steps 1-2). Returns true
// if it already wrote a response.
func checkUnsupportedOptions(w http.ResponseWriter, bestOf *int, useBeamSearch *bool) bool {
	if bestOf != nil {
		writeJSONError(w, http.StatusNotImplemented, "`best_of` is not yet implemented")
		return true
	}
	if useBeamSearch != nil && *useBeamSearch {
		writeJSONError(w, http.StatusNotImplemented, "`use_beam_search` is not yet implemented")
		return true
	}
	return false
}

func currentUnixTime() int64 {
	return time.Now().UTC().Unix()
}

// grpcErrorToHTTP maps an upstream gRPC error verbatim onto an HTTP
// status/message pair (spec.md §7, "Upstream errors ... returned
// verbatim"); there is no 1:1 HTTP status for every gRPC code, so this
// picks the closest conventional mapping.
func grpcErrorToHTTP(err error) (int, string) {
	st, ok := status.FromError(err)
	if !ok {
		return http.StatusBadGateway, err.Error()
	}
	switch st.Code() {
	case codes.InvalidArgument:
		return http.StatusBadRequest, st.Message()
	case codes.NotFound:
		return http.StatusUnprocessableEntity, st.Message()
	case codes.Unimplemented:
		return http.StatusNotImplemented, st.Message()
	case codes.DeadlineExceeded:
		return http.StatusGatewayTimeout, st.Message()
	default:
		return http.StatusBadGateway, st.Message()
	}
}
