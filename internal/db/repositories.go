package db

import "gorm.io/gorm"

type Repositories struct {
	Users         *UserRepository
	Activities    *ActivityRepository
	Registrations *RegistrationRepository
	Feedback      *FeedbackRepository
	Notifications *NotificationRepository
	ForumPosts    *ForumRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Users:         NewUserRepository(database),
		Activities:    NewActivityRepository(database),
		Registrations: NewRegistrationRepository(database),
		Feedback:      NewFeedbackRepository(database),
		Notifications: NewNotificationRepository(database),
		ForumPosts:    NewForumRepository(database),
	}
}
