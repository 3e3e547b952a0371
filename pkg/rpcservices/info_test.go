package rpcservices

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/fmaas-project/router/pkg/pb/caikit/info"
)

func TestGetModelsInfo_EmptyModelIdsShortCircuits(t *testing.T) {
	fake := &fakeInfoClient{}
	s := &InfoServicer{Clients: map[string]info.InfoServiceClient{"m": fake}}

	resp, err := s.GetModelsInfo(context.Background(), &info.GetModelsInfoRequest{})
	require.NoError(t, err)
	assert.Equal(t, &info.GetModelsInfoResponse{}, resp)
}

func TestGetModelsInfo_UnrecognizedModel(t *testing.T) {
	s := &InfoServicer{Clients: map[string]info.InfoServiceClient{}}

	_, err := s.GetModelsInfo(context.Background(), &info.GetModelsInfoRequest{ModelIds: []string{"no-such"}})
	require.Error(t, err)
	st, ok := status.FromError(err)
	require.True(t, ok)
	assert.Equal(t, codes.NotFound, st.Code())
}

// TestGetModelsInfo_FanOutPreservesOrderAndLength checks the two
// properties spec.md §8 names: aggregated length equals the sum of
// per-model response lengths, and order matches request.model_ids.
func TestGetModelsInfo_FanOutPreservesOrderAndLength(t *testing.T) {
	fake := &fakeInfoClient{responses: map[string]*info.GetModelsInfoResponse{
		"a": {Models: []*info.ModelInfo{{Name: "a-1"}}},
		"b": {Models: []*info.ModelInfo{{Name: "b-1"}, {Name: "b-2"}}},
		"c": {Models: []*info.ModelInfo{}},
	}}
	s := &InfoServicer{Clients: map[string]info.InfoServiceClient{"a": fake, "b": fake, "c": fake}}

	resp, err := s.GetModelsInfo(context.Background(), &info.GetModelsInfoRequest{ModelIds: []string{"a", "b", "c"}})
	require.NoError(t, err)
	require.Len(t, resp.Models, 3)
	assert.Equal(t, []string{"a-1", "b-1", "b-2"}, []string{resp.Models[0].Name, resp.Models[1].Name, resp.Models[2].Name})
}

func TestGetModelsInfo_AbortsOnFirstUpstreamError(t *testing.T) {
	wantErr := status.Error(codes.Unavailable, "down")
	fake := &fakeInfoClient{err: wantErr}
	s := &InfoServicer{Clients: map[string]info.InfoServiceClient{"a": fake}}

	_, err := s.GetModelsInfo(context.Background(), &info.GetModelsInfoRequest{ModelIds: []string{"a"}})
	require.Error(t, err)
	assert.Equal(t, wantErr, err)
}
