package integration

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"tally/internal/handlers"
	"tally/internal/logger"
	"tally/internal/middleware"
	"tally/internal/models"
	"tally/internal/services"
	"tally/internal/storage"
	"tally/internal/validator"
)

// testApp holds the full application stack for integration tests.
type testApp struct {
	DB     *gorm.DB
	Store  storage.Storer
	Router *gin.Engine
}

// dbCounter ensures each test gets a unique in-memory database.
var dbCounter atomic.Int64

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
	validator.Register()
}

// setupIsolatedDB creates an isolated in-memory SQLite database for a single test.
func setupIsolatedDB(t *testing.T) *gorm.DB {
	t.Helper()

	n := dbCounter.Add(1)
	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", n)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(&models.Document{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

// setupApp creates a full application stack backed by an isolated in-memory SQLite.
func setupApp(t *testing.T) *testApp {
	t.Helper()

	db := setupIsolatedDB(t)
	store := storage.NewStore(db)

	// Services
	agendaService := services.NewAgendaService(store, 26)
	itemService := services.NewItemService(store)
	categoryService := services.NewCategoryService(store)
	authService := services.NewAuthService(store)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	agendaHandler := handlers.NewAgendaHandler(agendaService)
	itemHandler := handlers.NewItemHandler(itemService)
	categoryHandler := handlers.NewCategoryHandler(categoryService)

	// Router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.ErrorHandler())

	v1 := router.Group("/api/v1")

	// Public auth routes
	auth := v1.Group("/auth")
	auth.POST("/pin", authHandler.SetupPin)
	auth.POST("/login", authHandler.Login)
	auth.POST("/refresh", authHandler.Refresh)

	// Protected routes
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware())

	agenda := protected.Group("/agenda")
	agenda.GET("", agendaHandler.GetAgenda)
	agenda.GET("/week", agendaHandler.GetWeek)
	agenda.GET("/balances", agendaHandler.GetBalances)
	agenda.GET("/summary/:month", agendaHandler.GetMonthlySummary)

	items := protected.Group("/items")
	items.GET("/search", agendaHandler.SearchItems)
	items.POST("", itemHandler.CreateItem)
	items.PUT("/:id", itemHandler.UpdateItem)
	items.DELETE("/:id", itemHandler.DeleteItem)

	protected.GET("/notifications", agendaHandler.GetNotifications)

	categories := protected.Group("/categories")
	categories.POST("", categoryHandler.CreateCategory)
	categories.GET("", categoryHandler.GetCategories)
	categories.GET("/relationships", categoryHandler.GetRelationships)
	categories.PUT("/:id", categoryHandler.UpdateCategory)
	categories.DELETE("/:id", categoryHandler.DeleteCategory)
	categories.POST("/:id/items/:itemID", categoryHandler.TagItem)
	categories.DELETE("/:id/items/:itemID", categoryHandler.UntagItem)

	return &testApp{DB: db, Store: store, Router: router}
}

// request makes an HTTP request to the test router and returns the recorder.
func (app *testApp) request(method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

// parseJSON parses the response body into a map.
func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

// setupPinAndLogin configures a PIN and returns the access and refresh tokens.
func (app *testApp) setupPinAndLogin(t *testing.T, pin string) (accessToken, refreshToken string) {
	t.Helper()

	rec := app.request("POST", "/api/v1/auth/pin", fmt.Sprintf(`{"new_pin":%q}`, pin), "")
	if rec.Code != http.StatusOK {
		t.Fatalf("pin setup failed: %d %s", rec.Code, rec.Body.String())
	}

	rec = app.request("POST", "/api/v1/auth/login", fmt.Sprintf(`{"pin":%q}`, pin), "")
	if rec.Code != http.StatusOK {
		t.Fatalf("login failed: %d %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	return result["access_token"].(string), result["refresh_token"].(string)
}

// createItem posts an item and returns its assigned id.
func (app *testApp) createItem(t *testing.T, token, body string) float64 {
	t.Helper()

	rec := app.request("POST", "/api/v1/items", body, token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create item failed: %d %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	item := result["item"].(map[string]interface{})
	return item["id"].(float64)
}
