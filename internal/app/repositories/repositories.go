package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository    *UserRepository
	AlumnusRepository *AlumnusRepository
	CourseRepository  *CourseRepository
	EventRepository   *EventRepository
	ForumRepository   *ForumRepository
	CareerRepository  *CareerRepository
	GalleryRepository *GalleryRepository
	SettingRepository *SettingRepository
	StatsRepository   *StatsRepository
	OutboxRepository  *OutboxRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:    NewUserRepository(db),
		AlumnusRepository: NewAlumnusRepository(db),
		CourseRepository:  NewCourseRepository(db),
		EventRepository:   NewEventRepository(db),
		ForumRepository:   NewForumRepository(db),
		CareerRepository:  NewCareerRepository(db),
		GalleryRepository: NewGalleryRepository(db),
		SettingRepository: NewSettingRepository(db),
		StatsRepository:   NewStatsRepository(db),
		OutboxRepository:  NewOutboxRepository(db),
	}
}
