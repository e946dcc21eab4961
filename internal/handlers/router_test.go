package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"smartwaste-backend/internal/store"
	"smartwaste-backend/internal/websocket"
)

// stubSensor replays a fixed sequence of readings.
type stubSensor struct {
	readings []int
	idx      int
}

func (s *stubSensor) ReadFillLevel() int {
	r := s.readings[s.idx%len(s.readings)]
	s.idx++
	return r
}

// newTestServer builds a store on a temp data file and the full router on
// top of it. The hub is never run; broadcasts queue and are discarded.
func newTestServer(t *testing.T, readings ...int) (*store.Store, http.Handler) {
	t.Helper()
	if len(readings) == 0 {
		readings = []int{50}
	}
	file := filepath.Join(t.TempDir(), "bin_data.json")
	s := store.New(file, &stubSensor{readings: readings})
	return s, NewRouter(s, websocket.NewHub())
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func doRequest(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func decodeEnvelope(t *testing.T, rr *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &env))
	return env
}
