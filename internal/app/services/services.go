// Package services implements the application logic between the HTTP
// controllers and the repositories. Each service declares the narrow store
// interface it consumes, satisfied by the repositories package in production
// and by handwritten mocks in tests.
package services

import (
	"github.com/rs/zerolog"
	"github.com/emre/alumnihub/internal/app/repositories"
	"github.com/emre/alumnihub/internal/pkg/auth"
	"github.com/emre/alumnihub/internal/pkg/filestorage"
)

// Services holds all the service instances
type Services struct {
	AuthService    *AuthService
	UserService    *UserService
	AlumnusService *AlumnusService
	CourseService  *CourseService
	EventService   *EventService
	ForumService   *ForumService
	CareerService  *CareerService
	SiteService    *SiteService
}

// NewServices initializes all services
func NewServices(
	repos *repositories.Repositories,
	jwtService *auth.JWTService,
	storage *filestorage.LocalStorage,
	logger zerolog.Logger,
) *Services {
	return &Services{
		AuthService:    NewAuthService(repos.UserRepository, jwtService, logger),
		UserService:    NewUserService(repos.UserRepository, logger),
		AlumnusService: NewAlumnusService(repos.AlumnusRepository, storage, logger),
		CourseService:  NewCourseService(repos.CourseRepository, logger),
		EventService:   NewEventService(repos.EventRepository, logger),
		ForumService:   NewForumService(repos.ForumRepository, logger),
		CareerService:  NewCareerService(repos.CareerRepository, repos.AlumnusRepository, logger),
		SiteService:    NewSiteService(repos.StatsRepository, repos.GalleryRepository, repos.SettingRepository, logger),
	}
}
