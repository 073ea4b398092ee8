package db

import (
	"fmt"
	"log"
	"time"

	"github.com/silverkaki/silverkaki/internal/models"
	"gorm.io/gorm"
)

// Catalog seeding covers one week back (so the feedback flow has something
// to act on) and six weeks ahead.
const (
	seedCatalogDaysBack  = 7
	seedCatalogDaysAhead = 42
)

type catalogSlot struct {
	IDPrefix     string
	Name         string
	Category     string
	ExertionType string
	Intensity    string
	StartHour    int
	StartMinute  int
	EndHour      int
	EndMinute    int
	Location     string
	Description  string
	Instructor   string
	MaxSeats     int
	// Weekdays is nil for daily slots.
	Weekdays []time.Weekday
}

func weeklyCatalog() []catalogSlot {
	return []catalogSlot{
		{
			IDPrefix: "tai-chi", Name: "Morning Tai Chi", Category: "tai-chi",
			ExertionType: models.ExertionStand, Intensity: models.IntensityModerate,
			StartHour: 9, EndHour: 11, Location: "NTUC Health Active Ageing Centre",
			Description: "Gentle Tai Chi movements to improve balance and flexibility",
			Instructor:  "Master Lee", MaxSeats: 20,
			Weekdays: []time.Weekday{time.Monday, time.Wednesday, time.Friday, time.Saturday},
		},
		{
			IDPrefix: "art", Name: "Art & Craft Session", Category: "art",
			ExertionType: models.ExertionSit, Intensity: models.IntensityLow,
			StartHour: 10, StartMinute: 30, EndHour: 12, EndMinute: 30, Location: "Care Corner AAC",
			Description: "Express your creativity with painting and crafts",
			Instructor:  "Ms. Tan", MaxSeats: 15,
			Weekdays: []time.Weekday{time.Tuesday, time.Thursday},
		},
		{
			IDPrefix: "chair-yoga", Name: "Chair Yoga", Category: "yoga",
			ExertionType: models.ExertionSit, Intensity: models.IntensityLow,
			StartHour: 11, EndHour: 13, Location: "NTUC Health Senior Day Care",
			Description: "Gentle yoga stretches done while seated",
			Instructor:  "Coach Mei", MaxSeats: 20,
			Weekdays: []time.Weekday{time.Monday, time.Wednesday, time.Friday},
		},
		{
			IDPrefix: "karaoke", Name: "Karaoke Session", Category: "singing",
			ExertionType: models.ExertionSit, Intensity: models.IntensityLow,
			StartHour: 14, EndHour: 16, Location: "Sunlove Marsiling Senior Activity Centre",
			Description: "Sing your favorite oldies with friends!",
			MaxSeats:    25,
			Weekdays:    []time.Weekday{time.Tuesday, time.Saturday},
		},
		{
			IDPrefix: "games", Name: "Board Games & Mahjong", Category: "games",
			ExertionType: models.ExertionSit, Intensity: models.IntensityLow,
			StartHour: 15, EndHour: 17, Location: "Care Corner AAC",
			Description: "Play mahjong, chess, and other games with friends",
			MaxSeats:    30,
		},
		{
			IDPrefix: "tea", Name: "Morning Tea Social", Category: "social",
			ExertionType: models.ExertionSit, Intensity: models.IntensityLow,
			StartHour: 9, StartMinute: 30, EndHour: 10, EndMinute: 30, Location: "Care Corner AAC",
			Description: "Enjoy tea, coffee and snacks with friends!",
			MaxSeats:    40,
		},
		{
			IDPrefix: "simple-exercise", Name: "Simple Stretching", Category: "exercise",
			ExertionType: models.ExertionSit, Intensity: models.IntensityLow,
			StartHour: 11, EndHour: 11, EndMinute: 45, Location: "NTUC Health Active Ageing Centre",
			Description: "Gentle seated stretches for flexibility",
			Instructor:  "Coach Mei", MaxSeats: 25,
		},
		{
			IDPrefix: "health-talk", Name: "Health Talk", Category: "education",
			ExertionType: models.ExertionSit, Intensity: models.IntensityLow,
			StartHour: 14, StartMinute: 30, EndHour: 16, EndMinute: 30, Location: "NTUC Health Active Ageing Centre",
			Description: "Learn about managing common health conditions",
			Instructor:  "Dr. Wong", MaxSeats: 40,
			Weekdays: []time.Weekday{time.Thursday},
		},
		{
			IDPrefix: "strength", Name: "Gentle Strength Training", Category: "exercise",
			ExertionType: models.ExertionStand, Intensity: models.IntensityModerate,
			StartHour: 10, EndHour: 12, Location: "NTUC Health Senior Day Care",
			Description: "Build strength with resistance bands and light weights",
			Instructor:  "Coach Raju", MaxSeats: 15,
			Weekdays: []time.Weekday{time.Tuesday, time.Thursday, time.Saturday},
		},
		{
			IDPrefix: "cooking", Name: "Healthy Cooking Class", Category: "cooking",
			ExertionType: models.ExertionStand, Intensity: models.IntensityModerate,
			StartHour: 11, EndHour: 13, Location: "Sunlove Marsiling Senior Activity Centre",
			Description: "Learn to cook nutritious meals for seniors",
			Instructor:  "Chef Mary", MaxSeats: 12,
			Weekdays: []time.Weekday{time.Friday},
		},
		{
			IDPrefix: "walk", Name: "Garden Walk", Category: "walking",
			ExertionType: models.ExertionWalk, Intensity: models.IntensityHigh,
			StartHour: 8, EndHour: 10, Location: "Care Corner AAC",
			Description: "Morning walk around the garden with exercise stops",
			Instructor:  "Mr. Ahmad", MaxSeats: 15,
			Weekdays: []time.Weekday{time.Wednesday, time.Sunday},
		},
		{
			IDPrefix: "dance", Name: "Line Dancing", Category: "dance",
			ExertionType: models.ExertionWalk, Intensity: models.IntensityHigh,
			StartHour: 16, EndHour: 18, Location: "Sunlove Marsiling Senior Activity Centre",
			Description: "Fun dance moves in a group - no partner needed!",
			Instructor:  "Ms. Lim", MaxSeats: 25,
			Weekdays: []time.Weekday{time.Monday, time.Friday},
		},
	}
}

// SeedDemoData populates an empty database with demo profiles, a recurring
// activity catalog, one pre-completed registration awaiting feedback, and a
// handful of forum threads. Collections that already hold data are left
// untouched.
func SeedDemoData(database *gorm.DB, now time.Time, location *time.Location) error {
	repositories := NewRepositories(database)

	if err := seedActivities(repositories.Activities, now, location); err != nil {
		return fmt.Errorf("seed activities: %w", err)
	}
	if err := seedUsers(repositories.Users, now); err != nil {
		return fmt.Errorf("seed users: %w", err)
	}
	if err := seedRegistrations(database, now, location); err != nil {
		return fmt.Errorf("seed registrations: %w", err)
	}
	if err := seedForumPosts(repositories.ForumPosts, now); err != nil {
		return fmt.Errorf("seed forum posts: %w", err)
	}

	log.Println("demo data seeded")
	return nil
}

// GenerateCatalog expands the weekly programme template into dated
// occurrences. IDs are <slot>-<date>, one per slot per scheduled day, so a
// given occurrence is stable across reseeds.
func GenerateCatalog(from time.Time, days int, location *time.Location) []models.Activity {
	slots := weeklyCatalog()
	activities := make([]models.Activity, 0, days*len(slots))

	start := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, location)
	for offset := 0; offset < days; offset++ {
		day := start.AddDate(0, 0, offset)
		for _, slot := range slots {
			if !slotRunsOn(slot, day.Weekday()) {
				continue
			}
			startsAt := time.Date(day.Year(), day.Month(), day.Day(), slot.StartHour, slot.StartMinute, 0, 0, location)
			endsAt := time.Date(day.Year(), day.Month(), day.Day(), slot.EndHour, slot.EndMinute, 0, 0, location)
			activities = append(activities, models.Activity{
				ID:              fmt.Sprintf("%s-%s", slot.IDPrefix, day.Format("2006-01-02")),
				Name:            slot.Name,
				Category:        slot.Category,
				ExertionType:    slot.ExertionType,
				Intensity:       slot.Intensity,
				StartsAt:        startsAt,
				EndsAt:          endsAt,
				Location:        slot.Location,
				Description:     slot.Description,
				Instructor:      slot.Instructor,
				MaxParticipants: slot.MaxSeats,
			})
		}
	}
	return activities
}

func slotRunsOn(slot catalogSlot, weekday time.Weekday) bool {
	if len(slot.Weekdays) == 0 {
		return true
	}
	for _, scheduled := range slot.Weekdays {
		if scheduled == weekday {
			return true
		}
	}
	return false
}

func seedActivities(repo *ActivityRepository, now time.Time, location *time.Location) error {
	count, err := repo.CountActivities()
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	from := now.AddDate(0, 0, -seedCatalogDaysBack)
	catalog := GenerateCatalog(from, seedCatalogDaysBack+seedCatalogDaysAhead, location)
	return repo.CreateBatch(catalog)
}

func seedUsers(repo *UserRepository, now time.Time) error {
	count, err := repo.CountUsers()
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	yesterday := now.AddDate(0, 0, -1)
	twoDaysAgo := now.AddDate(0, 0, -2)

	demoUsers := []models.User{
		{
			ID:               "user_001",
			Name:             "Uncle Tan",
			Phone:            "9123 4567",
			HomeAddress:      "Blk 123 Marsiling Drive #08-123",
			Gender:           models.GenderMale,
			ActivityLevel:    models.ActivityLevelModerate,
			HasMobilityIssue: true,
			HospitalVisits:   1,
			Points:           150,
			Interests:        []string{"tai-chi", "art", "singing"},
			Badges:           []string{models.BadgeFirstTimer, "active_star", "social_bee"},
			BloodPressure: []models.BloodPressureReading{
				{Date: now, Systolic: 120, Diastolic: 80, Pulse: 72},
				{Date: yesterday, Systolic: 125, Diastolic: 82, Pulse: 75},
				{Date: twoDaysAgo, Systolic: 118, Diastolic: 78, Pulse: 70},
			},
			BloodSugar: []models.BloodSugarReading{
				{Date: now, Level: 5.8, Type: models.SugarReadingFasting},
				{Date: yesterday, Level: 7.2, Type: models.SugarReadingAfterMeal},
			},
			Weight: []models.WeightReading{
				{Date: now, Kg: 68},
				{Date: twoDaysAgo, Kg: 68.5},
			},
			JoinedAt: now.AddDate(0, -3, 0),
		},
		{
			ID:            "user_002",
			Name:          "Auntie Mary",
			Phone:         "9234 5678",
			HomeAddress:   "Blk 456 Marsiling Road #05-88",
			Gender:        models.GenderFemale,
			ActivityLevel: models.ActivityLevelHigh,
			Points:        280,
			Interests:     []string{"dance", "exercise", "cooking"},
			Badges:        []string{models.BadgeFirstTimer, "active_star", "social_bee", "super_active"},
			BloodPressure: []models.BloodPressureReading{
				{Date: now, Systolic: 115, Diastolic: 75, Pulse: 68},
			},
			BloodSugar: []models.BloodSugarReading{},
			Weight:     []models.WeightReading{{Date: now, Kg: 55}},
			JoinedAt:   now.AddDate(0, -5, 0),
		},
		{
			ID:               "user_003",
			Name:             "Uncle Lim",
			Phone:            "9345 6789",
			HomeAddress:      "Blk 789 Marsiling Lane #12-345",
			Gender:           models.GenderMale,
			ActivityLevel:    models.ActivityLevelLow,
			HasMobilityIssue: true,
			HospitalVisits:   2,
			Points:           80,
			Interests:        []string{"games", "singing", "education"},
			Badges:           []string{models.BadgeFirstTimer},
			BloodPressure: []models.BloodPressureReading{
				{Date: now, Systolic: 140, Diastolic: 90, Pulse: 78},
			},
			BloodSugar: []models.BloodSugarReading{
				{Date: now, Level: 8.5, Type: models.SugarReadingFasting},
			},
			Weight:   []models.WeightReading{{Date: now, Kg: 75}},
			JoinedAt: now.AddDate(0, -1, 0),
		},
	}

	for index := range demoUsers {
		if err := repo.Create(&demoUsers[index]); err != nil {
			return err
		}
	}
	return nil
}

// seedRegistrations leaves Uncle Tan with yesterday's games session already
// attended and awaiting feedback, so the survey flow is demonstrable on
// first run.
func seedRegistrations(database *gorm.DB, now time.Time, location *time.Location) error {
	var count int64
	if err := database.Model(&models.Registration{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	yesterday := now.In(location).AddDate(0, 0, -1)
	attendanceTime := yesterday
	registration := models.Registration{
		ID:                  "reg_demo_1",
		UserID:              "user_001",
		ActivityID:          fmt.Sprintf("games-%s", yesterday.Format("2006-01-02")),
		RegisteredAt:        now.AddDate(0, 0, -2),
		Attended:            true,
		AttendanceConfirmed: true,
		AttendanceTime:      &attendanceTime,
		PointsAwarded:       true,
		FeedbackUnlocked:    true,
	}
	return database.Create(&registration).Error
}

func seedForumPosts(repo *ForumRepository, now time.Time) error {
	count, err := repo.CountPosts()
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	posts := []models.ForumPost{
		{
			ID:       "post_001",
			UserID:   "user_002",
			Category: "diabetes",
			Title:    "Tips for managing sugar levels after meals",
			Content:  "I found that taking a 15-minute walk after meals really helps keep my blood sugar stable. Anyone else tried this?",
			Likes:    12,
			LikedBy:  []string{"user_001", "user_003"},
			Replies: []models.ForumReply{
				{
					ID:        "reply_001",
					UserID:    "user_001",
					Content:   "Yes! My doctor recommended the same thing. Even 10 minutes helps!",
					CreatedAt: now.Add(-30 * time.Minute),
					Likes:     5,
				},
			},
			CreatedAt: now.Add(-1 * time.Hour),
		},
		{
			ID:       "post_002",
			UserID:   "user_003",
			Category: "heart",
			Title:    "High blood pressure - what works for you?",
			Content:  "My BP has been a bit high lately (140/90). Besides medication, what lifestyle changes helped you?",
			Likes:    8,
			LikedBy:  []string{"user_002"},
			Replies: []models.ForumReply{
				{
					ID:        "reply_002",
					UserID:    "user_002",
					Content:   "Reducing salt made a big difference for me. Also doing Tai Chi at the centre helps with stress!",
					CreatedAt: now.Add(-12 * time.Hour),
					Likes:     6,
				},
			},
			CreatedAt: now.AddDate(0, 0, -1),
		},
		{
			ID:        "post_003",
			UserID:    "user_001",
			Category:  "exercise",
			Title:     "Chair exercises for those with knee problems",
			Content:   "For those of us with bad knees, Chair Yoga is excellent! You can exercise without straining your joints.",
			Likes:     15,
			LikedBy:   []string{"user_002", "user_003"},
			Replies:   []models.ForumReply{},
			CreatedAt: now.AddDate(0, 0, -2),
		},
		{
			ID:       "post_005",
			UserID:   "user_003",
			Category: "mental",
			Title:    "Feeling lonely sometimes - anyone else?",
			Content:  "Coming to the centre and playing mahjong with friends really helps. Don't be shy to come!",
			Likes:    25,
			LikedBy:  []string{"user_001", "user_002"},
			Replies: []models.ForumReply{
				{
					ID:        "reply_005",
					UserID:    "user_002",
					Content:   "Thank you for sharing Uncle Lim. We're all here for each other!",
					CreatedAt: now.AddDate(0, 0, -3),
					Likes:     10,
				},
			},
			CreatedAt: now.AddDate(0, 0, -4),
		},
	}

	for index := range posts {
		if err := repo.Create(&posts[index]); err != nil {
			return err
		}
	}
	return nil
}
