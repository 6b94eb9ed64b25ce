package router

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shibbster321321/vegan-restaurant-1/controllers"
	"github.com/shibbster321321/vegan-restaurant-1/middlewares"
	"github.com/shibbster321321/vegan-restaurant-1/utils"
	"golang.org/x/time/rate"
	"gorm.io/gorm"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.Default()

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())

	restaurantCtrl := controllers.NewRestaurantController(db)
	authCtrl := controllers.NewAuthController(db)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// ----------------------------------------------------------------
	//                      PUBLIC ROUTES
	// ----------------------------------------------------------------
	api := r.Group("/api")
	api.GET("/restaurants", restaurantCtrl.GetAllRestaurants)

	// Rate limiter for login: 5 attempts per minute per IP
	loginLimiter := middlewares.NewLoginRateLimiter(rate.Every(12*time.Second), 5)
	api.POST("/login", loginLimiter.RateLimit(), authCtrl.Login)

	// ----------------------------------------------------------------
	//                      AUTHENTICATED ROUTES
	// ----------------------------------------------------------------
	auth := api.Group("/")
	auth.Use(middlewares.AuthMiddleware())

	auth.POST("/restaurants", restaurantCtrl.CreateRestaurant)
	auth.PUT("/restaurants/:id", restaurantCtrl.UpdateRestaurant)
	auth.DELETE("/restaurants/:id", restaurantCtrl.DeleteRestaurant)

	setupStatic(r)

	return r
}

// setupStatic serves the built frontend bundle. Any path that is not an
// API route falls back to the bundle's entry page so client-side routing
// keeps working after a reload.
func setupStatic(r *gin.Engine) {
	staticDir := os.Getenv("STATIC_DIR")
	if staticDir == "" {
		staticDir = "dist"
	}

	indexPath := filepath.Join(staticDir, "index.html")
	if _, err := os.Stat(staticDir); os.IsNotExist(err) {
		if utils.InfoLogger != nil {
			utils.InfoLogger.Printf("Static bundle not found at %s, serving API only", staticDir)
		}
		return
	}

	if assets := filepath.Join(staticDir, "assets"); dirExists(assets) {
		r.Static("/assets", assets)
	}
	r.StaticFile("/", indexPath)

	r.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api/") {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		c.File(indexPath)
	})
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
