package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/silverkaki/silverkaki/internal/db"
	"github.com/silverkaki/silverkaki/internal/models"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	databasePath := filepath.Join(t.TempDir(), "silverkaki-test.db")
	database, err := db.OpenSQLite(databasePath)
	require.NoError(t, err)

	sqlDB, err := database.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	handler := NewHandler(database, "test-secret-key", time.UTC, false)
	app := fiber.New()
	RegisterRoutes(app, handler)
	return app, database
}

func createTestUser(t *testing.T, database *gorm.DB, user models.User) models.User {
	t.Helper()
	if user.JoinedAt.IsZero() {
		user.JoinedAt = time.Now()
	}
	require.NoError(t, database.Create(&user).Error)
	return user
}

func createTestActivity(t *testing.T, database *gorm.DB, activity models.Activity) models.Activity {
	t.Helper()
	require.NoError(t, database.Create(&activity).Error)
	return activity
}

// sessionCookieFor selects the profile through the API and returns the
// session cookie header value.
func sessionCookieFor(t *testing.T, app *fiber.App, userID string) string {
	t.Helper()

	response := doJSON(t, app, http.MethodPost, "/api/profiles/select", map[string]any{"user_id": userID}, "")
	defer response.Body.Close()
	require.Equal(t, http.StatusOK, response.StatusCode)

	for _, cookie := range response.Cookies() {
		if cookie.Name == sessionCookieName {
			return sessionCookieName + "=" + cookie.Value
		}
	}
	t.Fatal("session cookie not set")
	return ""
}

func doJSON(t *testing.T, app *fiber.App, method string, path string, payload any, cookie string) *http.Response {
	t.Helper()

	var body *bytes.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(encoded)
	} else {
		body = bytes.NewReader(nil)
	}

	request := httptest.NewRequest(method, path, body)
	request.Header.Set("Content-Type", "application/json")
	if cookie != "" {
		request.Header.Set("Cookie", cookie)
	}

	response, err := app.Test(request, -1)
	require.NoError(t, err)
	return response
}

func decodeBody(t *testing.T, response *http.Response) map[string]any {
	t.Helper()
	decoded := map[string]any{}
	require.NoError(t, json.NewDecoder(response.Body).Decode(&decoded))
	return decoded
}
