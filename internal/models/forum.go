package models

import "time"

type ForumCategory struct {
	ID   string
	Name string
	Icon string
}

func DefaultForumCategories() []ForumCategory {
	return []ForumCategory{
		{ID: "social", Name: "Social & Chat", Icon: "☕"},
		{ID: "diabetes", Name: "Diabetes Management", Icon: "🩺"},
		{ID: "heart", Name: "Heart Health", Icon: "❤️"},
		{ID: "exercise", Name: "Exercise Tips", Icon: "💪"},
		{ID: "nutrition", Name: "Healthy Eating", Icon: "🥗"},
		{ID: "mental", Name: "Mental Wellness", Icon: "🧠"},
		{ID: "general", Name: "General Health", Icon: "🏥"},
	}
}

type ForumReply struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	Likes     int       `json:"likes"`
}

type ForumPost struct {
	ID        string `gorm:"primaryKey"`
	UserID    string `gorm:"not null;index"`
	Category  string `gorm:"not null;index"`
	Title     string `gorm:"not null"`
	Content   string
	Likes     int          `gorm:"not null;default:0"`
	LikedBy   []string     `gorm:"serializer:json"`
	Replies   []ForumReply `gorm:"serializer:json"`
	CreatedAt time.Time    `gorm:"not null"`
	UpdatedAt time.Time
}
