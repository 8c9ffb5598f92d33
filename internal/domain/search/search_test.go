package search

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"dancedir/internal/database"
	"dancedir/internal/domain/dancer"
	"dancedir/internal/domain/studio"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.Connect("file:" + uuid.NewString() + "?mode=memory&cache=shared")
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&dancer.Dancer{}, &studio.Studio{}))
	return db
}

func seed(t *testing.T, db *gorm.DB) {
	t.Helper()
	ctx := context.Background()

	handle := "1milliondance"
	require.NoError(t, studio.NewRepository(db).Create(ctx, &studio.Studio{
		Name:      "1MILLION",
		Instagram: &handle,
	}))
	require.NoError(t, studio.NewRepository(db).Create(ctx, &studio.Studio{
		Name: "JUSTJERK",
	}))

	dancerRepo := dancer.NewRepository(db)
	lia := "liakimhappy"
	_, err := dancerRepo.Create(ctx, dancer.CreateParams{Name: "1MILLION Lia", Instagram: &lia})
	require.NoError(t, err)
	_, err = dancerRepo.Create(ctx, dancer.CreateParams{Name: "김민준"})
	require.NoError(t, err)
}

func TestSearchPrefixOnly(t *testing.T) {
	db := setupDB(t)
	seed(t, db)
	repo := NewRepository(db)
	ctx := context.Background()

	results, err := repo.Search(ctx, "1M")
	require.NoError(t, err)
	require.Len(t, results, 2)

	// Studios come before dancers.
	require.Equal(t, "STUDIO", results[0].Type)
	require.Equal(t, "1MILLION", results[0].Name)
	require.NotNil(t, results[0].Instagram)
	require.Equal(t, "DANCER", results[1].Type)
	require.Equal(t, "1MILLION Lia", results[1].Name)

	// Prefix, not substring.
	results, err = repo.Search(ctx, "MILLION")
	require.NoError(t, err)
	require.Empty(t, results)

	results, err = repo.Search(ctx, "김")
	require.NoError(t, err)
	require.Len(t, results, 1)
	require.Equal(t, "김민준", results[0].Name)
}

func TestSearchNoMatches(t *testing.T) {
	db := setupDB(t)
	seed(t, db)

	results, err := NewRepository(db).Search(context.Background(), "zzz")
	require.NoError(t, err)
	require.Empty(t, results)
}

func TestSearchHandlerRequiresKeyword(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := setupDB(t)
	seed(t, db)

	router := gin.New()
	NewHandler(NewRepository(db)).RegisterRoutes(router.Group(""))

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/search", nil))
	require.Equal(t, http.StatusBadRequest, resp.Code)

	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/search?keyword=1M", nil))
	require.Equal(t, http.StatusOK, resp.Code)

	var payload struct {
		Results []Result `json:"results"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	require.Len(t, payload.Results, 2)
}
