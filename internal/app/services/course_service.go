package services

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/emre/alumnihub/internal/app/models"
	"github.com/emre/alumnihub/internal/app/models/dto"
	"github.com/emre/alumnihub/internal/pkg/apperrors"
)

type courseStore interface {
	GetAll(ctx context.Context) ([]models.Course, error)
	Create(ctx context.Context, name, description string) (int64, error)
	Update(ctx context.Context, id int64, name string) error
	Delete(ctx context.Context, id int64) error
}

// CourseService handles the course catalogue
type CourseService struct {
	courseStore courseStore
	logger      zerolog.Logger
}

// NewCourseService creates a new CourseService
func NewCourseService(courseStore courseStore, logger zerolog.Logger) *CourseService {
	return &CourseService{courseStore: courseStore, logger: logger}
}

// List returns every course
func (s *CourseService) List(ctx context.Context) ([]models.Course, error) {
	return s.courseStore.GetAll(ctx)
}

// Create adds a course
func (s *CourseService) Create(ctx context.Context, req *dto.CreateCourseRequest) (int64, error) {
	id, err := s.courseStore.Create(ctx, req.Course, req.Description)
	if err != nil {
		return 0, err
	}
	s.logger.Info().Int64("course_id", id).Str("name", req.Course).Msg("Course created")
	return id, nil
}

// Update renames a course
func (s *CourseService) Update(ctx context.Context, req *dto.UpdateCourseRequest) error {
	if req.ID == 0 {
		return apperrors.NewBadRequestError("Invalid Request: No ID provided for update")
	}
	return s.courseStore.Update(ctx, req.ID, req.Course)
}

// Delete removes a course. Profiles referencing it keep listing with an
// unresolved course.
func (s *CourseService) Delete(ctx context.Context, id int64) error {
	if err := s.courseStore.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Int64("course_id", id).Msg("Course deleted")
	return nil
}
