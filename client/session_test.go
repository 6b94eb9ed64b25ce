package client

import (
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/shibbster321321/vegan-restaurant-1/models"
	"github.com/shibbster321321/vegan-restaurant-1/router"
	"github.com/shibbster321321/vegan-restaurant-1/utils"
)

// startTestServer runs the real router over an in-memory store with the
// demo admin account seeded. The store gets a uniquely named shared-cache
// DSN so every pooled connection sees the same database.
func startTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	utils.InitLogger()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	assert.NoError(t, err)
	assert.NoError(t, db.AutoMigrate(&models.Restaurant{}, &models.Admin{}))

	hashed, _ := bcrypt.GenerateFromPassword([]byte("demo123"), bcrypt.DefaultCost)
	db.Create(&models.Admin{Username: "demo", Password: string(hashed)})

	srv := httptest.NewServer(router.SetupRouter(db))
	t.Cleanup(srv.Close)
	return srv
}

func TestLoginTransitionsToAuthenticated(t *testing.T) {
	srv := startTestServer(t)
	session := NewSession(New(srv.URL))

	assert.Equal(t, StateAnonymous, session.State())

	assert.NoError(t, session.Login("demo", "demo123"))
	assert.Equal(t, StateAuthenticated, session.State())
	assert.True(t, session.IsAuthenticated())
	assert.Equal(t, "demo", session.Username())
}

func TestLoginWithWrongCredentialsStaysAnonymous(t *testing.T) {
	srv := startTestServer(t)
	session := NewSession(New(srv.URL))

	cases := []struct{ username, password string }{
		{"demo", "wrong"},
		{"admin", "demo123"},
		{"DEMO", "demo123"},
	}
	for _, tc := range cases {
		err := session.Login(tc.username, tc.password)
		assert.EqualError(t, err, InvalidCredentialsMessage)
		assert.Equal(t, StateAnonymous, session.State())
	}
}

func TestLogoutClearsSession(t *testing.T) {
	srv := startTestServer(t)
	api := New(srv.URL)
	session := NewSession(api)

	assert.NoError(t, session.Login("demo", "demo123"))
	session.Logout()

	assert.Equal(t, StateAnonymous, session.State())
	assert.Empty(t, session.Username())

	// The dropped token must no longer authorize mutations.
	err := api.Create(NewRestaurant(RestaurantInput{Name: "After logout"}))
	assert.Error(t, err)
}
