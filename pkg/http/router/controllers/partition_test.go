package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/lintang-b-s/tripartition/pkg/datastructure"
	helper "github.com/lintang-b-s/tripartition/pkg/http/router/routerhelper"
	"github.com/lintang-b-s/tripartition/pkg/partitioner"
	"github.com/lintang-b-s/tripartition/pkg/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakePartitionService struct {
	result    *partitioner.Result
	warnings  []datastructure.DecodeWarning
	err       error
	lastN     int
	lastEdges []datastructure.Edge
	lastCSR   *datastructure.CSRRecord
	overrides partitioner.ConfigOverrides
}

func (f *fakePartitionService) PartitionEdges(ctx context.Context, numVertices int, edges []datastructure.Edge,
	overrides partitioner.ConfigOverrides) (*partitioner.Result, error) {
	f.lastN = numVertices
	f.lastEdges = edges
	f.overrides = overrides
	return f.result, f.err
}

func (f *fakePartitionService) PartitionCSR(ctx context.Context, record *datastructure.CSRRecord,
	overrides partitioner.ConfigOverrides) (*partitioner.Result, []datastructure.DecodeWarning, error) {
	f.lastCSR = record
	f.overrides = overrides
	return f.result, f.warnings, f.err
}

func newTestRouter(service PartitionService) *httprouter.Router {
	router := httprouter.New()
	New(service, zap.NewNop()).Routes(helper.NewRouteGroup(router, "/api"))
	return router
}

func postPartition(t *testing.T, router http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/partition", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func sampleResult() *partitioner.Result {
	return &partitioner.Result{
		Assignment:    []partitioner.GroupID{0, 1, 2},
		CrossingCount: 1,
		GroupSizes:    [partitioner.NUM_GROUPS]int{1, 1, 1},
		Attempts:      []partitioner.AttemptStats{{Attempt: 0, InitialCost: 1, BestCost: 1, Sweeps: 4}},
	}
}

func TestPartitionEdges(t *testing.T) {
	service := &fakePartitionService{result: sampleResult()}
	rec := postPartition(t, newTestRouter(service), `{"num_vertices":3,"edges":[[1,0]],"attempts":5,"seed":9}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var body struct {
		Data partitionResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, []int{0, 1, 2}, body.Data.Assignment)
	assert.Equal(t, [][]int{{0}, {1}, {2}}, body.Data.Groups)
	assert.Equal(t, []int{1, 1, 1}, body.Data.GroupSizes)
	assert.Equal(t, 1, body.Data.CrossingCount)
	require.Len(t, body.Data.Attempts, 1)
	assert.Equal(t, 4, body.Data.Attempts[0].Sweeps)

	assert.Equal(t, 3, service.lastN)
	assert.Equal(t, []datastructure.Edge{{U: 0, V: 1}}, service.lastEdges)
	require.NotNil(t, service.overrides.Attempts)
	assert.Equal(t, 5, *service.overrides.Attempts)
	require.NotNil(t, service.overrides.Seed)
	assert.Equal(t, uint64(9), *service.overrides.Seed)
}

func TestPartitionCSR(t *testing.T) {
	service := &fakePartitionService{
		result:   sampleResult(),
		warnings: []datastructure.DecodeWarning{{Row: 0, Column: 7, Reason: "column index out of range (n=3)"}},
	}
	rec := postPartition(t, newTestRouter(service), `{"csr":{"col_indices":[1,7,0],"row_ptr":[0,2,3,3]}}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	require.NotNil(t, service.lastCSR)
	assert.Equal(t, 3, service.lastCSR.NumberOfVertices())
	assert.Equal(t, []int{1, 7, 0}, service.lastCSR.ColIndices)
	assert.Contains(t, rec.Body.String(), "row 0 column 7")
}

func TestPartitionErrors(t *testing.T) {
	testCases := []struct {
		name       string
		body       string
		serviceErr error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "malformed json",
			body:       `{"num_vertices":`,
			wantStatus: http.StatusBadRequest,
			wantCode:   "bad_request",
		},
		{
			name:       "negative vertex in edge",
			body:       `{"num_vertices":3,"edges":[[0,-1]]}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   "bad_request",
		},
		{
			name:       "cooling rate out of range",
			body:       `{"num_vertices":3,"cooling_rate":1.5}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   "bad_request",
		},
		{
			name:       "endpoint not below num_vertices",
			body:       `{"num_vertices":3,"edges":[[0,3]]}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   "bad_request",
		},
		{
			name:       "endpoint wider than a vertex index",
			body:       `{"num_vertices":3,"edges":[[0,4294967297]]}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   "bad_request",
		},
		{
			name:       "edges without vertex count",
			body:       `{"edges":[[0,1]]}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   "bad_request",
		},
		{
			name:       "fewer than three vertices",
			body:       `{"num_vertices":2,"edges":[[0,1]]}`,
			serviceErr: util.WrapErrorf(partitioner.ErrInsufficientVertices, util.ErrUnprocessable, "partition not applicable"),
			wantStatus: http.StatusUnprocessableEntity,
			wantCode:   "not_applicable",
		},
		{
			name:       "unexpected failure",
			body:       `{"num_vertices":3}`,
			serviceErr: util.WrapErrorf(partitioner.ErrInvalidAssignment, util.ErrInternalServerError, "partitioning failed"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "internal_server_error",
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			service := &fakePartitionService{err: tt.serviceErr}
			rec := postPartition(t, newTestRouter(service), tt.body)
			assert.Equal(t, tt.wantStatus, rec.Code)

			var body struct {
				Error struct {
					Code    string `json:"code"`
					Message string `json:"message"`
				} `json:"error"`
			}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantCode, body.Error.Code)
			assert.NotEmpty(t, body.Error.Message)
		})
	}
}

func TestPartitionEdgeOutOfRangeNeverReachesService(t *testing.T) {
	service := &fakePartitionService{result: sampleResult()}
	rec := postPartition(t, newTestRouter(service), `{"num_vertices":3,"edges":[[0,4294967297]]}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "index out of range")
	assert.Nil(t, service.lastEdges)
}

func TestPartitionRequestEdges(t *testing.T) {
	request := partitionRequest{NumVertices: 4, Edges: [][2]int{{3, 1}, {0, 2}}}
	edges, err := request.edges()
	require.NoError(t, err)
	assert.Equal(t, []datastructure.Edge{{U: 1, V: 3}, {U: 0, V: 2}}, edges)

	request.Edges = append(request.Edges, [2]int{1, 1 << 32})
	_, err = request.edges()
	assert.ErrorIs(t, err, datastructure.ErrIndexOutOfRange)
}

func TestPartitionBodyTooLarge(t *testing.T) {
	service := &fakePartitionService{result: sampleResult()}
	api := New(service, zap.NewNop())
	api.maxBodyBytes = 64
	router := httprouter.New()
	api.Routes(helper.NewRouteGroup(router, "/api"))

	body := `{"num_vertices":3,"edges":[` + strings.Repeat("[0,1],", 20) + `[1,2]]}`
	rec := postPartition(t, router, body)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.Contains(t, rec.Body.String(), "request_too_large")
	assert.Nil(t, service.lastEdges)
}
