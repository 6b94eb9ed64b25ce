package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shibbster321321/vegan-restaurant-1/models"
	"github.com/shibbster321321/vegan-restaurant-1/utils"
	"gorm.io/gorm"
)

type RestaurantController struct {
	DB *gorm.DB
}

func NewRestaurantController(db *gorm.DB) *RestaurantController {
	return &RestaurantController{DB: db}
}

// GetAllRestaurants returns every record, newest first. The response body
// is the bare array the frontend consumes, not the usual envelope.
func (rc *RestaurantController) GetAllRestaurants(c *gin.Context) {
	var restaurants []models.Restaurant

	if err := rc.DB.Order("timestamp DESC").Find(&restaurants).Error; err != nil {
		utils.ErrorLogger.Printf("Error fetching restaurants: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, errors.New("failed to fetch restaurants"))
		return
	}

	if restaurants == nil {
		restaurants = []models.Restaurant{}
	}
	c.JSON(http.StatusOK, restaurants)
}

// CreateRestaurant inserts a fully-formed record. The client chooses the
// id and timestamp; a duplicate id surfaces as a generic failure.
func (rc *RestaurantController) CreateRestaurant(c *gin.Context) {
	var restaurant models.Restaurant
	if err := c.ShouldBindJSON(&restaurant); err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid request body"))
		return
	}

	loc, err := models.NewLocation(restaurant.Lat, restaurant.Lng, restaurant.Address)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	restaurant.SetLocation(loc)

	if err := rc.DB.Create(&restaurant).Error; err != nil {
		utils.ErrorLogger.Printf("Error adding restaurant: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, errors.New("failed to add restaurant"))
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Restaurant added successfully", nil)
}

// UpdateRestaurant replaces every mutable column of the row matching the
// path id. There is no row-count check: updating a missing id succeeds.
func (rc *RestaurantController) UpdateRestaurant(c *gin.Context) {
	id := c.Param("id")

	var restaurant models.Restaurant
	if err := c.ShouldBindJSON(&restaurant); err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid request body"))
		return
	}

	loc, err := models.NewLocation(restaurant.Lat, restaurant.Lng, restaurant.Address)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	restaurant.SetLocation(loc)

	updates := map[string]interface{}{
		"name":          restaurant.Name,
		"cuisine":       restaurant.Cuisine,
		"description":   restaurant.Description,
		"priceRange":    restaurant.PriceRange,
		"rating":        restaurant.Rating,
		"recommendedBy": restaurant.RecommendedBy,
		"timestamp":     restaurant.Timestamp,
		"lat":           restaurant.Lat,
		"lng":           restaurant.Lng,
		"address":       restaurant.Address,
	}

	if err := rc.DB.Model(&models.Restaurant{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		utils.ErrorLogger.Printf("Error updating restaurant %s: %v", id, err)
		utils.RespondError(c, http.StatusInternalServerError, errors.New("failed to update restaurant"))
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Restaurant updated successfully", nil)
}

// DeleteRestaurant removes the row matching the path id. Deleting a
// missing id is a successful no-op.
func (rc *RestaurantController) DeleteRestaurant(c *gin.Context) {
	id := c.Param("id")

	if err := rc.DB.Where("id = ?", id).Delete(&models.Restaurant{}).Error; err != nil {
		utils.ErrorLogger.Printf("Error deleting restaurant %s: %v", id, err)
		utils.RespondError(c, http.StatusInternalServerError, errors.New("failed to delete restaurant"))
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Restaurant deleted successfully", nil)
}
