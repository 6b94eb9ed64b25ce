package Controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/shibbster321321/vegan-restaurant-1/controllers"
	"github.com/shibbster321321/vegan-restaurant-1/models"
	"github.com/shibbster321321/vegan-restaurant-1/utils"
)

func setupTestDBForRestaurants() *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}
	if err := db.AutoMigrate(&models.Restaurant{}); err != nil {
		panic(err)
	}
	return db
}

func setupRestaurantRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.Default()
	restaurantCtrl := controllers.NewRestaurantController(db)
	router.GET("/api/restaurants", restaurantCtrl.GetAllRestaurants)
	router.POST("/api/restaurants", restaurantCtrl.CreateRestaurant)
	router.PUT("/api/restaurants/:id", restaurantCtrl.UpdateRestaurant)
	router.DELETE("/api/restaurants/:id", restaurantCtrl.DeleteRestaurant)
	return router
}

func sampleRestaurant(id string, timestamp int64) map[string]interface{} {
	return map[string]interface{}{
		"id":            id,
		"name":          "Cafe Luna",
		"cuisine":       "Italian",
		"description":   "Cozy trattoria with great pasta",
		"priceRange":    "€€",
		"rating":        5,
		"recommendedBy": "Alice",
		"timestamp":     timestamp,
		"location": map[string]interface{}{
			"lat":     48.8566,
			"lng":     2.3522,
			"address": "12 Rue de Rivoli, Paris",
		},
	}
}

func postRestaurant(t *testing.T, router *gin.Engine, payload map[string]interface{}) *httptest.ResponseRecorder {
	body, err := json.Marshal(payload)
	assert.NoError(t, err)

	req, err := http.NewRequest("POST", "/api/restaurants", bytes.NewBuffer(body))
	assert.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCreateAndListRoundTrip(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForRestaurants()
	router := setupRestaurantRouter(db)

	w := postRestaurant(t, router, sampleRestaurant("r-1", 1700000000000))
	assert.Equal(t, http.StatusCreated, w.Code)

	req, _ := http.NewRequest("GET", "/api/restaurants", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var list []map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Len(t, list, 1)

	got := list[0]
	assert.Equal(t, "r-1", got["id"])
	assert.Equal(t, "Cafe Luna", got["name"])
	assert.Equal(t, "Italian", got["cuisine"])
	assert.Equal(t, "€€", got["priceRange"])
	assert.Equal(t, float64(5), got["rating"])
	assert.Equal(t, "Alice", got["recommendedBy"])
	assert.Equal(t, float64(1700000000000), got["timestamp"])

	// Stored flat, returned nested.
	loc, ok := got["location"].(map[string]interface{})
	assert.True(t, ok, "location must be a nested object")
	assert.Equal(t, 48.8566, loc["lat"])
	assert.Equal(t, 2.3522, loc["lng"])
	assert.Equal(t, "12 Rue de Rivoli, Paris", loc["address"])
}

func TestListOrdersByTimestampDescending(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForRestaurants()
	router := setupRestaurantRouter(db)

	older := sampleRestaurant("r-old", 1000)
	newer := sampleRestaurant("r-new", 2000)
	assert.Equal(t, http.StatusCreated, postRestaurant(t, router, older).Code)
	assert.Equal(t, http.StatusCreated, postRestaurant(t, router, newer).Code)

	req, _ := http.NewRequest("GET", "/api/restaurants", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var list []map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Len(t, list, 2)
	assert.Equal(t, "r-new", list[0]["id"])
	assert.Equal(t, "r-old", list[1]["id"])
}

func TestCreateDuplicateIDFails(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForRestaurants()
	router := setupRestaurantRouter(db)

	assert.Equal(t, http.StatusCreated, postRestaurant(t, router, sampleRestaurant("dup", 1000)).Code)

	w := postRestaurant(t, router, sampleRestaurant("dup", 2000))
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, false, resp["status"])
	assert.Equal(t, "failed to add restaurant", resp["message"])

	var count int64
	db.Model(&models.Restaurant{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestUpdateReplacesAllMutableFields(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForRestaurants()
	router := setupRestaurantRouter(db)

	assert.Equal(t, http.StatusCreated, postRestaurant(t, router, sampleRestaurant("r-1", 1000)).Code)

	replacement := map[string]interface{}{
		"name":          "Green Garden",
		"cuisine":       "Thai",
		"description":   "Fresh curries",
		"priceRange":    "€€€",
		"rating":        3,
		"recommendedBy": "Bob",
		"timestamp":     5000,
		"location": map[string]interface{}{
			"lat":     13.7563,
			"lng":     100.5018,
			"address": "99 Sukhumvit Rd, Bangkok",
		},
	}
	body, _ := json.Marshal(replacement)
	req, _ := http.NewRequest("PUT", "/api/restaurants/r-1", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var stored models.Restaurant
	assert.NoError(t, db.First(&stored, "id = ?", "r-1").Error)
	assert.Equal(t, "Green Garden", stored.Name)
	assert.Equal(t, "Thai", stored.Cuisine)
	assert.Equal(t, "Fresh curries", stored.Description)
	assert.Equal(t, "€€€", stored.PriceRange)
	assert.Equal(t, 3, stored.Rating)
	assert.Equal(t, "Bob", stored.RecommendedBy)
	assert.Equal(t, int64(5000), stored.Timestamp)
	assert.Equal(t, 13.7563, stored.Lat)
	assert.Equal(t, 100.5018, stored.Lng)
	assert.Equal(t, "99 Sukhumvit Rd, Bangkok", stored.Address)
}

func TestUpdateMissingIDSilentlySucceeds(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForRestaurants()
	router := setupRestaurantRouter(db)

	body, _ := json.Marshal(sampleRestaurant("ghost", 1000))
	req, _ := http.NewRequest("PUT", "/api/restaurants/ghost", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var count int64
	db.Model(&models.Restaurant{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestDeleteIsIdempotent(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForRestaurants()
	router := setupRestaurantRouter(db)

	assert.Equal(t, http.StatusCreated, postRestaurant(t, router, sampleRestaurant("r-1", 1000)).Code)

	req, _ := http.NewRequest("DELETE", "/api/restaurants/r-1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	// Deleting again, and deleting an id that never existed, still succeed.
	for _, id := range []string{"r-1", "never-existed"} {
		req, _ = http.NewRequest("DELETE", "/api/restaurants/"+id, nil)
		w = httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	}

	var count int64
	db.Model(&models.Restaurant{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestCreateRejectsOutOfRangeCoordinates(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForRestaurants()
	router := setupRestaurantRouter(db)

	bad := sampleRestaurant("r-bad", 1000)
	bad["location"] = map[string]interface{}{
		"lat":     123.0,
		"lng":     2.3522,
		"address": "nowhere",
	}
	w := postRestaurant(t, router, bad)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
