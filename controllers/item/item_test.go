package itemControllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rewear-app/rewear-api/dataaccess"
	"github.com/rewear-app/rewear-api/models"
	"github.com/rewear-app/rewear-api/storage"
)

func newTestRouter(t *testing.T) (*gin.Engine, *dataaccess.Client) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	data := dataaccess.NewClient(storage.NewMemory())

	r := gin.New()
	r.POST("/user/items", func(c *gin.Context) { c.Set("user_id", "test-user") }, CreateItem(data))
	r.GET("/categories", GetCategories())
	return r, data
}

func TestCreateItemDefaultsPointValueFromCondition(t *testing.T) {
	r, data := newTestRouter(t)

	body := `{
		"title": "Corduroy Jacket",
		"description": "Warm brown corduroy jacket, barely worn.",
		"category": "outerwear",
		"size": "M",
		"condition": "Good",
		"images": ["https://example.com/jacket.jpeg"]
	}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/user/items", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var item models.Item
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &item))
	assert.Equal(t, models.SuggestedPointValue(models.ConditionGood), item.PointValue)
	assert.Equal(t, "test-user", item.UserID)

	stored, err := data.Items().Eq("id", item.ID).Single()
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, 60, stored.PointValue)
}

func TestCreateItemKeepsExplicitPointValue(t *testing.T) {
	r, _ := newTestRouter(t)

	body := `{
		"title": "Corduroy Jacket",
		"description": "Warm brown corduroy jacket, barely worn.",
		"category": "outerwear",
		"size": "M",
		"condition": "Good",
		"point_value": 120,
		"images": ["https://example.com/jacket.jpeg"]
	}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/user/items", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var item models.Item
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &item))
	assert.Equal(t, 120, item.PointValue)
}

func TestGetCategoriesIncludesSuggestedPoints(t *testing.T) {
	r, _ := newTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/categories", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Categories      []models.Category `json:"categories"`
		Sizes           []string          `json:"sizes"`
		SuggestedPoints map[string]int    `json:"suggested_points"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Categories, 6)
	assert.Equal(t, 100, resp.SuggestedPoints["New"])
	assert.Equal(t, 80, resp.SuggestedPoints["Like New"])
	assert.Equal(t, 60, resp.SuggestedPoints["Good"])
	assert.Equal(t, 40, resp.SuggestedPoints["Fair"])
}
