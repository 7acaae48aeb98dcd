package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"build-promotion-service/internal/core/services"
	"build-promotion-service/internal/testutil"
)

func jsonBody(t *testing.T, v any) io.Reader {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewReader(data)
}

type mocks struct {
	store     *testutil.MockBuildStore
	pointer   *testutil.MockActivePointer
	installer *testutil.MockBinaryInstaller
	sup       *testutil.MockProcessSupervisor
	health    *testutil.MockHealthClient
	waitlist  *testutil.MockWaitlistRepo
}

func setupRouter() (*mocks, *gin.Engine) {
	gin.SetMode(gin.TestMode)
	m := &mocks{
		store:     new(testutil.MockBuildStore),
		pointer:   new(testutil.MockActivePointer),
		installer: new(testutil.MockBinaryInstaller),
		sup:       new(testutil.MockProcessSupervisor),
		health:    new(testutil.MockHealthClient),
		waitlist:  new(testutil.MockWaitlistRepo),
	}

	buildSvc := services.NewBuildService(m.store, m.pointer, 20)
	promotionSvc := services.NewPromotionService(m.store, m.installer, m.pointer, m.sup, m.health, services.PromotionConfig{
		ServiceName:  "app",
		PollAttempts: 3,
		PollInterval: time.Millisecond,
		SettleDelay:  time.Millisecond,
	})
	statusSvc := services.NewStatusService(m.store, m.pointer, m.health, m.sup)
	waitlistSvc := services.NewWaitlistService(m.waitlist)

	h := New(buildSvc, promotionSvc, statusSvc, waitlistSvc)
	r := gin.New()
	api := r.Group("/admin/api")
	h.RegisterRoutes(api)

	return m, r
}
