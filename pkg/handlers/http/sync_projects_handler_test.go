package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/BOKA26/lovotech-nexus/pkg/domain/iam/role"
	"github.com/BOKA26/lovotech-nexus/pkg/domain/project"
	infraJWT "github.com/BOKA26/lovotech-nexus/pkg/infra/jwt"
	"github.com/BOKA26/lovotech-nexus/pkg/middleware"
)

type syncerMock struct {
	mock.Mock
}

func (m *syncerMock) Sync(ctx context.Context) ([]project.Project, error) {
	args := m.Called(ctx)
	if projects, ok := args.Get(0).([]project.Project); ok {
		return projects, args.Error(1)
	}
	return nil, args.Error(1)
}

type roleRepositoryMock struct {
	mock.Mock
}

func (m *roleRepositoryMock) HasRole(ctx context.Context, userID uuid.UUID, r role.Role) (bool, error) {
	args := m.Called(ctx, userID, r)
	return args.Bool(0), args.Error(1)
}

const testJWTSecret = "sync-test-secret"

func newSyncApp(roleRepo role.Repository, syncer *syncerMock) *fiber.App {
	logger := logrus.New()
	jwtManager := infraJWT.NewJwtManager(testJWTSecret)

	app := fiber.New()
	app.Post("/api/v1/projects/sync",
		middleware.NewAdminAuthMiddleware(logger, jwtManager, roleRepo).Middleware(),
		NewSyncProjectsHandler(logger, syncer).Handle,
	)
	return app
}

func adminToken(t *testing.T, userID uuid.UUID) string {
	t.Helper()
	token, err := infraJWT.NewJwtManager(testJWTSecret).CreateToken(userID.String(), time.Hour)
	require.NoError(t, err)
	return token
}

func postSync(t *testing.T, app *fiber.App, authorization string) (int, map[string]interface{}) {
	t.Helper()
	req := httptest.NewRequest("POST", "/api/v1/projects/sync", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &body))
	return resp.StatusCode, body
}

func TestSyncProjectsHandler_MissingAuthorization(t *testing.T) {
	roleRepo := new(roleRepositoryMock)
	syncer := new(syncerMock)
	app := newSyncApp(roleRepo, syncer)

	status, body := postSync(t, app, "")

	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.Equal(t, "authentication required", body["error"])
	syncer.AssertNotCalled(t, "Sync", mock.Anything)
}

func TestSyncProjectsHandler_InvalidToken(t *testing.T) {
	roleRepo := new(roleRepositoryMock)
	syncer := new(syncerMock)
	app := newSyncApp(roleRepo, syncer)

	status, body := postSync(t, app, "Bearer not-a-real-token")

	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.Equal(t, "invalid token", body["error"])
	syncer.AssertNotCalled(t, "Sync", mock.Anything)
}

func TestSyncProjectsHandler_ExpiredToken(t *testing.T) {
	roleRepo := new(roleRepositoryMock)
	syncer := new(syncerMock)
	app := newSyncApp(roleRepo, syncer)

	expired, err := infraJWT.NewJwtManager(testJWTSecret).CreateToken(uuid.New().String(), -time.Minute)
	require.NoError(t, err)

	status, body := postSync(t, app, "Bearer "+expired)

	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.Equal(t, "invalid token", body["error"])
	syncer.AssertNotCalled(t, "Sync", mock.Anything)
}

func TestSyncProjectsHandler_NonAdmin(t *testing.T) {
	userID := uuid.New()
	roleRepo := new(roleRepositoryMock)
	roleRepo.On("HasRole", mock.Anything, userID, role.RoleAdmin).Return(false, nil)
	syncer := new(syncerMock)
	app := newSyncApp(roleRepo, syncer)

	status, body := postSync(t, app, "Bearer "+adminToken(t, userID))

	assert.Equal(t, fiber.StatusForbidden, status)
	assert.Equal(t, "admin role required", body["error"])
	syncer.AssertNotCalled(t, "Sync", mock.Anything)
}

func TestSyncProjectsHandler_RoleLookupError(t *testing.T) {
	userID := uuid.New()
	roleRepo := new(roleRepositoryMock)
	roleRepo.On("HasRole", mock.Anything, userID, role.RoleAdmin).Return(false, errors.New("db down"))
	syncer := new(syncerMock)
	app := newSyncApp(roleRepo, syncer)

	status, body := postSync(t, app, "Bearer "+adminToken(t, userID))

	assert.Equal(t, fiber.StatusForbidden, status)
	assert.Equal(t, "admin role required", body["error"])
	syncer.AssertNotCalled(t, "Sync", mock.Anything)
}

func TestSyncProjectsHandler_AdminSuccess(t *testing.T) {
	userID := uuid.New()
	roleRepo := new(roleRepositoryMock)
	roleRepo.On("HasRole", mock.Anything, userID, role.RoleAdmin).Return(true, nil)

	synced := []project.Project{
		{ID: uuid.New(), Title: "Dadi Dignity Compass", Link: "https://ong-dadi.offotechword.com"},
		{ID: uuid.New(), Title: "Mevos", Link: "https://offotechword.lovable.app"},
	}
	syncer := new(syncerMock)
	syncer.On("Sync", mock.Anything).Return(synced, nil)

	app := newSyncApp(roleRepo, syncer)

	status, body := postSync(t, app, "Bearer "+adminToken(t, userID))

	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, float64(2), body["count"])
	syncer.AssertNumberOfCalls(t, "Sync", 1)
}

func TestSyncProjectsHandler_SyncFailure(t *testing.T) {
	userID := uuid.New()
	roleRepo := new(roleRepositoryMock)
	roleRepo.On("HasRole", mock.Anything, userID, role.RoleAdmin).Return(true, nil)

	syncer := new(syncerMock)
	syncer.On("Sync", mock.Anything).Return(nil, errors.New("failed to fetch repositories: github unavailable"))

	app := newSyncApp(roleRepo, syncer)

	status, body := postSync(t, app, "Bearer "+adminToken(t, userID))

	assert.Equal(t, fiber.StatusInternalServerError, status)
	assert.Equal(t, false, body["success"])
	assert.Contains(t, body["error"], "github unavailable")
}
