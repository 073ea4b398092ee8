package api

import (
	"net/http"
	"testing"
	"time"

	"github.com/silverkaki/silverkaki/internal/models"
	"github.com/stretchr/testify/require"
)

func TestActivityLifecycleOverHTTP(t *testing.T) {
	app, database := newTestApp(t)

	user := createTestUser(t, database, models.User{
		ID:            "user_001",
		Name:          "Uncle Tan",
		ActivityLevel: models.ActivityLevelModerate,
	})
	activity := createTestActivity(t, database, models.Activity{
		ID:           "tai-chi-1",
		Name:         "Morning Tai Chi",
		Category:     "tai-chi",
		ExertionType: models.ExertionStand,
		Intensity:    models.IntensityModerate,
		StartsAt:     time.Now().Add(2 * time.Hour),
		EndsAt:       time.Now().Add(4 * time.Hour),
	})

	cookie := sessionCookieFor(t, app, user.ID)

	// Register.
	response := doJSON(t, app, http.MethodPost, "/api/activities/"+activity.ID+"/register", nil, cookie)
	require.Equal(t, http.StatusCreated, response.StatusCode)
	registered := decodeBody(t, response)
	response.Body.Close()
	require.Equal(t, "registered", registered["state"])

	// Duplicate registration is rejected.
	response = doJSON(t, app, http.MethodPost, "/api/activities/"+activity.ID+"/register", nil, cookie)
	require.Equal(t, http.StatusConflict, response.StatusCode)
	response.Body.Close()

	// Confirm attendance, earns the bonus.
	response = doJSON(t, app, http.MethodPost, "/api/activities/"+activity.ID+"/attendance", nil, cookie)
	require.Equal(t, http.StatusOK, response.StatusCode)
	confirmed := decodeBody(t, response)
	response.Body.Close()
	require.EqualValues(t, 10, confirmed["points_awarded"])

	// Feedback completes the lifecycle and earns the survey bonus.
	response = doJSON(t, app, http.MethodPost, "/api/activities/"+activity.ID+"/feedback", map[string]any{
		"enjoyment":        5,
		"would_join_again": true,
		"comments":         "Very fun!",
	}, cookie)
	require.Equal(t, http.StatusCreated, response.StatusCode)
	submitted := decodeBody(t, response)
	response.Body.Close()
	require.EqualValues(t, 20, submitted["points_awarded"])

	// Balance reflects both bonuses.
	var updated models.User
	require.NoError(t, database.First(&updated, "id = ?", user.ID).Error)
	require.Equal(t, 30, updated.Points)

	// Feedback replay is rejected and does not change the balance.
	response = doJSON(t, app, http.MethodPost, "/api/activities/"+activity.ID+"/feedback", map[string]any{
		"enjoyment": 4,
	}, cookie)
	require.Equal(t, http.StatusConflict, response.StatusCode)
	response.Body.Close()

	require.NoError(t, database.First(&updated, "id = ?", user.ID).Error)
	require.Equal(t, 30, updated.Points)
}

func TestRegisterIntensityConfirmationFlow(t *testing.T) {
	app, database := newTestApp(t)

	user := createTestUser(t, database, models.User{
		ID:            "user_003",
		Name:          "Uncle Lim",
		ActivityLevel: models.ActivityLevelLow,
	})
	activity := createTestActivity(t, database, models.Activity{
		ID:           "dance-1",
		Name:         "Line Dancing",
		Category:     "dance",
		ExertionType: models.ExertionWalk,
		Intensity:    models.IntensityHigh,
		StartsAt:     time.Now().Add(2 * time.Hour),
		EndsAt:       time.Now().Add(4 * time.Hour),
	})

	cookie := sessionCookieFor(t, app, user.ID)

	response := doJSON(t, app, http.MethodPost, "/api/activities/"+activity.ID+"/register", nil, cookie)
	require.Equal(t, http.StatusConflict, response.StatusCode)
	rejected := decodeBody(t, response)
	response.Body.Close()
	require.Equal(t, true, rejected["confirmation_required"])

	response = doJSON(t, app, http.MethodPost, "/api/activities/"+activity.ID+"/register", map[string]any{
		"confirm_intensity": true,
	}, cookie)
	require.Equal(t, http.StatusCreated, response.StatusCode)
	response.Body.Close()
}

func TestUnregisterRoundTripOverHTTP(t *testing.T) {
	app, database := newTestApp(t)

	user := createTestUser(t, database, models.User{
		ID:            "user_002",
		Name:          "Auntie Mary",
		ActivityLevel: models.ActivityLevelHigh,
	})
	activity := createTestActivity(t, database, models.Activity{
		ID:           "yoga-1",
		Name:         "Chair Yoga",
		Category:     "yoga",
		ExertionType: models.ExertionSit,
		Intensity:    models.IntensityLow,
		StartsAt:     time.Now().Add(2 * time.Hour),
		EndsAt:       time.Now().Add(4 * time.Hour),
	})

	cookie := sessionCookieFor(t, app, user.ID)

	response := doJSON(t, app, http.MethodPost, "/api/activities/"+activity.ID+"/register", nil, cookie)
	require.Equal(t, http.StatusCreated, response.StatusCode)
	response.Body.Close()

	response = doJSON(t, app, http.MethodDelete, "/api/activities/"+activity.ID+"/register", nil, cookie)
	require.Equal(t, http.StatusOK, response.StatusCode)
	response.Body.Close()

	var count int64
	require.NoError(t, database.Model(&models.Registration{}).Where("user_id = ?", user.ID).Count(&count).Error)
	require.EqualValues(t, 0, count)
}

func TestRoutesRequireSession(t *testing.T) {
	app, _ := newTestApp(t)

	response := doJSON(t, app, http.MethodGet, "/api/registrations", nil, "")
	require.Equal(t, http.StatusUnauthorized, response.StatusCode)
	response.Body.Close()
}
