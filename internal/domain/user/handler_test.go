package user

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"dancedir/internal/middleware"
	jwtsvc "dancedir/internal/pkg/jwt"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := NewRepository(setupDB(t))
	j := jwtsvc.New("test-secret", time.Hour)
	handler := NewHandler(NewService(repo, j))

	router := gin.New()
	root := router.Group("")
	handler.RegisterAuthRoutes(root)

	protected := root.Group("")
	protected.Use(middleware.Auth(j, repo))
	handler.RegisterProtectedRoutes(protected)

	return router
}

func performRequest(router *gin.Engine, method, path string, body any, token string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func register(t *testing.T, router *gin.Engine, username string) AuthResponse {
	t.Helper()

	resp := performRequest(router, http.MethodPost, "/auth/register", gin.H{
		"username": username,
		"password": "password123",
	}, "")
	require.Equal(t, http.StatusOK, resp.Code)

	var payload AuthResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	return payload
}

func TestRegisterValidation(t *testing.T) {
	router := setupRouter(t)

	// Username too short.
	resp := performRequest(router, http.MethodPost, "/auth/register", gin.H{
		"username": "ab",
		"password": "password123",
	}, "")
	require.Equal(t, http.StatusBadRequest, resp.Code)

	// Password too short.
	resp = performRequest(router, http.MethodPost, "/auth/register", gin.H{
		"username": "liakim",
		"password": "short",
	}, "")
	require.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestMeRoundTrip(t *testing.T) {
	router := setupRouter(t)
	reg := register(t, router, "liakim")

	resp := performRequest(router, http.MethodGet, "/auth/me", nil, reg.Token)
	require.Equal(t, http.StatusOK, resp.Code)

	var me Response
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&me))
	require.Equal(t, reg.User.UserID, me.UserID)
	require.Equal(t, "liakim", me.Username)
}

func TestMeRequiresToken(t *testing.T) {
	router := setupRouter(t)

	resp := performRequest(router, http.MethodGet, "/auth/me", nil, "")
	require.Equal(t, http.StatusUnauthorized, resp.Code)

	resp = performRequest(router, http.MethodGet, "/auth/me", nil, "garbage")
	require.Equal(t, http.StatusUnauthorized, resp.Code)
}

func TestLogoutInvalidatesToken(t *testing.T) {
	router := setupRouter(t)
	reg := register(t, router, "liakim")

	resp := performRequest(router, http.MethodPost, "/auth/logout", nil, reg.Token)
	require.Equal(t, http.StatusNoContent, resp.Code)

	resp = performRequest(router, http.MethodGet, "/auth/me", nil, reg.Token)
	require.Equal(t, http.StatusUnauthorized, resp.Code)
}

func TestUserCRUDEndpoints(t *testing.T) {
	router := setupRouter(t)
	reg := register(t, router, "liakim")

	resp := performRequest(router, http.MethodGet, "/user/"+reg.User.UserID, nil, reg.Token)
	require.Equal(t, http.StatusOK, resp.Code)

	newName := "liakim2"
	resp = performRequest(router, http.MethodPatch, "/user/"+reg.User.UserID, gin.H{
		"username": newName,
	}, reg.Token)
	require.Equal(t, http.StatusOK, resp.Code)
	var edited Response
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&edited))
	require.Equal(t, newName, edited.Username)

	resp = performRequest(router, http.MethodDelete, "/user/"+reg.User.UserID, nil, reg.Token)
	require.Equal(t, http.StatusNoContent, resp.Code)

	resp = performRequest(router, http.MethodGet, "/user/"+reg.User.UserID, nil, reg.Token)
	require.Equal(t, http.StatusNotFound, resp.Code)
}

func TestDuplicateUsernameReturns400(t *testing.T) {
	router := setupRouter(t)
	register(t, router, "liakim")

	resp := performRequest(router, http.MethodPost, "/auth/register", gin.H{
		"username": "liakim",
		"password": "password123",
	}, "")
	require.Equal(t, http.StatusBadRequest, resp.Code)

	var payload map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	require.Equal(t, "username already taken", payload["message"])
}
