package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"build-promotion-service/internal/adapters/primary/http/dto"
	"build-promotion-service/internal/adapters/secondary/fsstore"
	"build-promotion-service/internal/core/domain"
	output "build-promotion-service/internal/core/ports/output"
	"build-promotion-service/internal/core/services"
	"build-promotion-service/internal/testutil"
)

// setupE2ERouter wires real filesystem adapters over a temp dir; only the
// supervisor and the health prober are mocked.
func setupE2ERouter(t *testing.T) (string, *testutil.MockProcessSupervisor, *testutil.MockHealthClient, *gin.Engine) {
	gin.SetMode(gin.TestMode)
	dir := t.TempDir()

	store := fsstore.NewBuildStore(dir)
	pointer := fsstore.NewActivePointer(filepath.Join(dir, "active"))
	installer := fsstore.NewBinaryInstaller(dir, filepath.Join(t.TempDir(), "app"))
	sup := new(testutil.MockProcessSupervisor)
	health := new(testutil.MockHealthClient)

	buildSvc := services.NewBuildService(store, pointer, 20)
	promotionSvc := services.NewPromotionService(store, installer, pointer, sup, health, services.PromotionConfig{
		ServiceName:  "app",
		PollAttempts: 5,
		PollInterval: time.Millisecond,
		SettleDelay:  time.Millisecond,
	})
	statusSvc := services.NewStatusService(store, pointer, health, sup)
	waitlistSvc := services.NewWaitlistService(fsstore.NewWaitlistFile(filepath.Join(dir, "waitlist.txt")))

	h := New(buildSvc, promotionSvc, statusSvc, waitlistSvc)
	r := gin.New()
	api := r.Group("/admin/api")
	h.RegisterRoutes(api)

	return dir, sup, health, r
}

// Promote a build, verify the pointer committed, then confirm the deletion
// guard refuses to remove it.
func TestContract_PromoteThenDeleteActive(t *testing.T) {
	dir, sup, health, r := setupE2ERouter(t)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "2024-01-01.bin"), []byte("v1"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "2024-02-01.bin"), []byte("v2"), 0o644))

	sup.On("Restart", mock.Anything, "app").Return(output.RestartSucceeded)
	health.On("Probe", mock.Anything).Return(domain.HealthSnapshot{}).Twice()
	health.On("Probe", mock.Anything).Return(domain.HealthSnapshot{Reachable: true, UptimeSecs: 1})

	// Promote, reachable on the third poll attempt.
	req, _ := http.NewRequest("POST", "/admin/api/promote", jsonBody(t, dto.PromoteRequest{Version: "2024-02-01"}))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var promoteResp dto.PromoteResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &promoteResp))
	assert.True(t, promoteResp.OK)
	assert.Equal(t, "OK", promoteResp.Message)

	active, err := os.ReadFile(filepath.Join(dir, "active"))
	require.NoError(t, err)
	assert.Equal(t, "2024-02-01", strings.TrimSpace(string(active)))

	// Deleting the freshly promoted build must conflict.
	req, _ = http.NewRequest("DELETE", "/admin/api/builds/2024-02-01", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.FileExists(t, filepath.Join(dir, "2024-02-01.bin"))

	// The older build is still removable.
	req, _ = http.NewRequest("DELETE", "/admin/api/builds/2024-01-01", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NoFileExists(t, filepath.Join(dir, "2024-01-01.bin"))
}

// Status over an untouched store: two builds, no promotion yet.
func TestContract_StatusWithoutPromotion(t *testing.T) {
	dir, sup, health, r := setupE2ERouter(t)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "2024-01-01.bin"), []byte("v1"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "2024-02-01.bin"), []byte("v2"), 0o644))

	health.On("Probe", mock.Anything).Return(domain.HealthSnapshot{})
	sup.On("Status", mock.Anything).Return([]domain.ServiceProcess{}, nil)

	req, _ := http.NewRequest("GET", "/admin/api/status", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp dto.StatusResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "", resp.ActiveVersion)
	assert.False(t, resp.Healthy)
	assert.Equal(t, 2, resp.BuildCount)
}

// Promoting a build that does not exist never touches the pointer.
func TestContract_PromoteUnknownVersion(t *testing.T) {
	dir, _, _, r := setupE2ERouter(t)

	req, _ := http.NewRequest("POST", "/admin/api/promote", jsonBody(t, dto.PromoteRequest{Version: "2099-12-31"}))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.NoFileExists(t, filepath.Join(dir, "active"))
}
