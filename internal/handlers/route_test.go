package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smartwaste-backend/internal/models"
)

func TestOptimizeRoute_NothingToCollect(t *testing.T) {
	s, h := newTestServer(t)
	s.CreateBins([]string{"Main St"})

	rr := doRequest(t, h, http.MethodGet, "/optimize-route", "")
	assert.Equal(t, http.StatusOK, rr.Code)

	env := decodeEnvelope(t, rr)
	assert.True(t, env.Success)
	assert.Equal(t, "No bins need collection right now", env.Message)
	assert.JSONEq(t, "[]", string(env.Data))
}

func TestOptimizeRoute_SortedByFillLevelDescending(t *testing.T) {
	s, h := newTestServer(t)
	s.CreateBins([]string{"A", "B", "C"})

	flag := true
	for id, level := range map[int]int{1: 60, 2: 95, 3: 80} {
		l := level
		_, found := s.Update(id, models.UpdateBinRequest{FillLevel: &l, NeedsCollection: &flag})
		require.True(t, found)
	}

	rr := doRequest(t, h, http.MethodGet, "/optimize-route", "")
	assert.Equal(t, http.StatusOK, rr.Code)

	env := decodeEnvelope(t, rr)
	assert.Equal(t, "Found 3 bins needing collection", env.Message)

	var resp models.RouteResponse
	require.NoError(t, json.Unmarshal(env.Data, &resp))
	assert.Equal(t, 3, resp.BinsToCollect)
	require.Len(t, resp.Route, 3)
	assert.Equal(t, []int{2, 3, 1}, []int{resp.Route[0].ID, resp.Route[1].ID, resp.Route[2].ID})
}
