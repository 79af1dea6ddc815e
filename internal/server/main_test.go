package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"retrospace/internal/config"
	"retrospace/internal/database"
	"retrospace/internal/media"
	"retrospace/internal/middleware"
	"retrospace/internal/repository"
	"retrospace/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestServer builds a Server over an in-memory sqlite database and a
// fiber app with the full route table, skipping prometheus registration
// so tests can build servers independently.
func newTestServer(t *testing.T) (*Server, *fiber.App) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(database.PersistentModels()...))

	cfg := &config.Config{
		JWTSecret:            "test-secret-key-for-handler-tests",
		Port:                 "0",
		Env:                  "test",
		MediaDir:             t.TempDir(),
		MediaMaxUploadSizeMB: 5,
	}
	middleware.InitMiddleware(cfg)

	userRepo := repository.NewUserRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	friendRepo := repository.NewFriendRepository(db)
	testimonialRepo := repository.NewTestimonialRepository(db)
	visitRepo := repository.NewVisitRepository(db)
	topFiveRepo := repository.NewTopFiveRepository(db)
	galleryRepo := repository.NewGalleryRepository(db)

	s := &Server{
		config:          cfg,
		db:              db,
		mediaStore:      media.NewStore(cfg.MediaDir, cfg.MediaMaxUploadSizeMB),
		userRepo:        userRepo,
		profileRepo:     profileRepo,
		friendRepo:      friendRepo,
		testimonialRepo: testimonialRepo,
		visitRepo:       visitRepo,
		topFiveRepo:     topFiveRepo,
		galleryRepo:     galleryRepo,
	}
	s.profileService = service.NewProfileService(
		profileRepo, userRepo, friendRepo, visitRepo, testimonialRepo, topFiveRepo, galleryRepo)
	s.friendService = service.NewFriendService(friendRepo, userRepo)
	s.testimonialService = service.NewTestimonialService(testimonialRepo, profileRepo)
	s.topFiveService = service.NewTopFiveService(topFiveRepo, profileRepo)
	s.galleryService = service.NewGalleryService(galleryRepo, profileRepo)
	s.searchService = service.NewSearchService(userRepo)

	app := fiber.New()
	app.Use(middleware.ContextMiddleware())
	s.SetupRoutes(app)
	return s, app
}

// registerUser creates an account through the API and returns its token.
func registerUser(t *testing.T, app *fiber.App, username string) string {
	t.Helper()
	body := map[string]string{
		"username": username,
		"email":    username + "@example.com",
		"password": "Password123!",
	}
	resp := doJSON(t, app, http.MethodPost, "/api/auth/register", "", body)
	defer func() { _ = resp.Body.Close() }()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var out struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.NotEmpty(t, out.Token)
	return out.Token
}

// doJSON issues a JSON request against the test app. An empty token
// leaves the request unauthenticated.
func doJSON(t *testing.T, app *fiber.App, method, path, token string, body interface{}) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	defer func() { _ = resp.Body.Close() }()
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}
