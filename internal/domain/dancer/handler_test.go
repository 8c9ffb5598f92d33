package dancer

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	handler := NewHandler(NewService(NewRepository(setupDB(t))))
	router := gin.New()
	handler.RegisterRoutes(router.Group(""))
	return router
}

func performJSON(router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func TestInstagramRouteCoexistsWithIDRoute(t *testing.T) {
	router := setupRouter(t)

	created := performJSON(router, http.MethodPost, "/dancer/create", gin.H{
		"name":      "리아킴",
		"instagram": "liakimhappy",
		"genre":     "CHOREOGRAPHY",
	})
	require.Equal(t, http.StatusOK, created.Code)

	var payload Response
	require.NoError(t, json.NewDecoder(created.Body).Decode(&payload))
	require.Equal(t, "DANCER", payload.Role)

	byHandle := performJSON(router, http.MethodGet, "/dancer/instagram/liakimhappy", nil)
	require.Equal(t, http.StatusOK, byHandle.Code)

	byID := performJSON(router, http.MethodGet, "/dancer/"+payload.DancerID, nil)
	require.Equal(t, http.StatusOK, byID.Code)

	var a, b Response
	require.NoError(t, json.NewDecoder(byHandle.Body).Decode(&a))
	require.NoError(t, json.NewDecoder(byID.Body).Decode(&b))
	require.Equal(t, a.DancerID, b.DancerID)
}

func TestGetByInstagramNotFoundStatus(t *testing.T) {
	router := setupRouter(t)

	resp := performJSON(router, http.MethodGet, "/dancer/instagram/nobody", nil)
	require.Equal(t, http.StatusNotFound, resp.Code)

	var payload map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	require.Equal(t, "dancer not found", payload["message"])
}

func TestCreateInvalidGenreReturns400(t *testing.T) {
	router := setupRouter(t)

	resp := performJSON(router, http.MethodPost, "/dancer/create", gin.H{
		"name":  "Somebody",
		"genre": "TAP",
	})
	require.Equal(t, http.StatusBadRequest, resp.Code)

	var payload map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	require.Contains(t, payload["message"], "dancer creation failed")
}

func TestAddNameEndpoint(t *testing.T) {
	router := setupRouter(t)

	created := performJSON(router, http.MethodPost, "/dancer/create", gin.H{"name": "김민준"})
	require.Equal(t, http.StatusOK, created.Code)
	var payload Response
	require.NoError(t, json.NewDecoder(created.Body).Decode(&payload))

	resp := performJSON(router, http.MethodPost, "/dancer/"+payload.DancerID+"/names", gin.H{
		"name": "민준",
	})
	require.Equal(t, http.StatusOK, resp.Code)

	var updated Response
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&updated))
	require.Equal(t, []string{"김민준", "민준"}, updated.Names)
	require.Equal(t, "김민준", updated.MainName)
}

func TestBulkUploadEndpoint(t *testing.T) {
	router := setupRouter(t)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", "dancers.csv")
	require.NoError(t, err)
	_, err = part.Write([]byte("name,instagram,genre\n김민준,minjun_dance,HIPHOP\n민준,minjun_dance\n"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/dancer/bulk-upload", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	require.Equal(t, http.StatusOK, resp.Code)

	var payload BulkUploadResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	require.Equal(t, 2, payload.SuccessCount)
	require.Zero(t, payload.ErrorCount)

	byHandle := performJSON(router, http.MethodGet, "/dancer/instagram/minjun_dance", nil)
	require.Equal(t, http.StatusOK, byHandle.Code)
	var d Response
	require.NoError(t, json.NewDecoder(byHandle.Body).Decode(&d))
	require.Equal(t, []string{"김민준", "민준"}, d.Names)
}

func TestBulkUploadMissingFile(t *testing.T) {
	router := setupRouter(t)

	resp := performJSON(router, http.MethodPost, "/dancer/bulk-upload", nil)
	require.Equal(t, http.StatusBadRequest, resp.Code)
}
