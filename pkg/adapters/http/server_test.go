package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpadapter "github.com/fsmlab/automata/pkg/adapters/http"
	"github.com/fsmlab/automata/pkg/adapters/memory"
	"github.com/fsmlab/automata/pkg/definitions"
	"github.com/fsmlab/automata/pkg/domain"
)

func doRequest(t *testing.T, handler http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("{}")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestGetHealth(t *testing.T) {
	handler := httpadapter.NewHandler()
	rec := doRequest(t, handler, http.MethodGet, "/health", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestListMachines(t *testing.T) {
	handler := httpadapter.NewHandler()
	rec := doRequest(t, handler, http.MethodGet, "/machines", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var out []httpadapter.MachineInfo
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))

	kinds := make([]string, 0, len(out))
	for _, m := range out {
		kinds = append(kinds, m.Kind)
	}
	assert.Contains(t, kinds, definitions.KindEmail)
	assert.Contains(t, kinds, definitions.KindDivisibleBy3)
}

func TestGetMachine(t *testing.T) {
	handler := httpadapter.NewHandler()
	rec := doRequest(t, handler, http.MethodGet, "/machines/email", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var out httpadapter.MachineDetail
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, "email", out.Kind)
	assert.NotEmpty(t, out.Grammar)
	assert.NotEmpty(t, out.States)
	assert.NotEmpty(t, out.Transitions)
}

func TestGetMachine_UnknownKind(t *testing.T) {
	handler := httpadapter.NewHandler()
	rec := doRequest(t, handler, http.MethodGet, "/machines/nope", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetGraph(t *testing.T) {
	handler := httpadapter.NewHandler()
	rec := doRequest(t, handler, http.MethodGet, "/machines/email/graph", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/plain")
	assert.Contains(t, rec.Body.String(), "graph LR")
	assert.Contains(t, rec.Body.String(), "q0")
}

func TestRunMachine_Accepted(t *testing.T) {
	handler := httpadapter.NewHandler()
	rec := doRequest(t, handler, http.MethodPost, "/machines/email/run", `{"input":"a@b.com"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var record domain.RunRecord
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &record))
	assert.Equal(t, domain.OutcomeAccepted, record.Outcome)
	assert.Equal(t, "q5", record.FinalState)
	assert.Len(t, record.Steps, 7)
}

func TestRunMachine_Rejected(t *testing.T) {
	handler := httpadapter.NewHandler()
	rec := doRequest(t, handler, http.MethodPost, "/machines/div3/run", `{"input":"12a"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var record domain.RunRecord
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &record))
	assert.Equal(t, domain.OutcomeRejected, record.Outcome)
	assert.Contains(t, record.Conclusion, "not a decimal digit")
}

func TestRunMachine_InvalidBody(t *testing.T) {
	handler := httpadapter.NewHandler()
	rec := doRequest(t, handler, http.MethodPost, "/machines/email/run", `{broken`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRunMachine_SaveAndFetch(t *testing.T) {
	store := memory.NewStore()
	handler := httpadapter.NewHandler(httpadapter.WithStore(store))

	rec := doRequest(t, handler, http.MethodPost, "/machines/email/run", `{"input":"a@b.com","save":true}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var record domain.RunRecord
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &record))
	require.NotEmpty(t, record.ID)

	rec = doRequest(t, handler, http.MethodGet, "/runs/"+record.ID, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var loaded domain.RunRecord
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &loaded))
	assert.Equal(t, record.ID, loaded.ID)
	assert.Equal(t, domain.OutcomeAccepted, loaded.Outcome)

	rec = doRequest(t, handler, http.MethodGet, "/runs", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var ids []string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &ids))
	assert.Contains(t, ids, record.ID)
}

func TestGetRun_NotFound(t *testing.T) {
	handler := httpadapter.NewHandler(httpadapter.WithStore(memory.NewStore()))
	rec := doRequest(t, handler, http.MethodGet, "/runs/missing", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListRuns_WithoutStore(t *testing.T) {
	handler := httpadapter.NewHandler()
	rec := doRequest(t, handler, http.MethodGet, "/runs", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	handler := httpadapter.NewHandler()

	// Generate at least one run so the counters exist.
	rec := doRequest(t, handler, http.MethodPost, "/machines/email/run", `{"input":"a@b.com"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, handler, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}

func TestCORSPreflight(t *testing.T) {
	handler := httpadapter.NewHandler()
	req := httptest.NewRequest(http.MethodOptions, "/machines", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}
