package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"build-promotion-service/internal/adapters/primary/http/dto"
	"build-promotion-service/internal/core/domain"
)

func TestListBuilds(t *testing.T) {
	m, r := setupRouter()

	m.store.On("List", mock.Anything).Return([]*domain.Build{
		{Version: "2024-02-01", SizeBytes: 2048, CreatedAt: time.Unix(1706745600, 0)},
		{Version: "2024-01-01", SizeBytes: 1024, CreatedAt: time.Unix(1704067200, 0)},
	}, nil)
	m.pointer.On("Get", mock.Anything).Return("2024-02-01", nil)

	req, _ := http.NewRequest("GET", "/admin/api/builds", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.BuildListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "2024-02-01", resp.ActiveVersion)
	require.Len(t, resp.Builds, 2)
	assert.True(t, resp.Builds[0].Active)
	assert.False(t, resp.Builds[1].Active)
	assert.EqualValues(t, 2048, resp.Builds[0].Size)
}

func TestDeleteBuild_ActiveConflict(t *testing.T) {
	m, r := setupRouter()

	m.pointer.On("Get", mock.Anything).Return("2024-02-01", nil)

	req, _ := http.NewRequest("DELETE", "/admin/api/builds/2024-02-01", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
	m.store.AssertNotCalled(t, "Remove", mock.Anything, mock.Anything)
}

func TestDeleteBuild_NotFound(t *testing.T) {
	m, r := setupRouter()

	m.pointer.On("Get", mock.Anything).Return("2024-02-01", nil)
	m.store.On("Exists", mock.Anything, "2023-01-01").Return(false, nil)

	req, _ := http.NewRequest("DELETE", "/admin/api/builds/2023-01-01", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteBuild_OK(t *testing.T) {
	m, r := setupRouter()

	m.pointer.On("Get", mock.Anything).Return("2024-02-01", nil)
	m.store.On("Exists", mock.Anything, "2024-01-01").Return(true, nil)
	m.store.On("Remove", mock.Anything, "2024-01-01").Return(nil)

	req, _ := http.NewRequest("DELETE", "/admin/api/builds/2024-01-01", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.DeleteBuildResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.OK)
	assert.Equal(t, "2024-01-01", resp.Deleted)
}

func TestPruneBuilds(t *testing.T) {
	m, r := setupRouter()

	m.store.On("List", mock.Anything).Return([]*domain.Build{
		{Version: "2024-03-01"},
		{Version: "2024-02-01"},
		{Version: "2024-01-01"},
	}, nil)
	m.pointer.On("Get", mock.Anything).Return("2024-03-01", nil)
	m.store.On("Remove", mock.Anything, "2024-01-01").Return(nil)

	req, _ := http.NewRequest("POST", "/admin/api/builds/prune", jsonBody(t, map[string]any{"keep": 2}))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.PruneBuildsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.OK)
	assert.Equal(t, []string{"2024-01-01"}, resp.Pruned)
}
