package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/emre/alumnihub/internal/app/models"
	"github.com/emre/alumnihub/internal/app/models/dto"
	"github.com/emre/alumnihub/internal/pkg/email"
)

type careerStore interface {
	List(ctx context.Context) ([]dto.JobItem, error)
	ListWithPoster(ctx context.Context) ([]dto.JobListItem, error)
	CreateWithNotifications(ctx context.Context, career *models.Career, emails []models.OutboxEmail) (int64, error)
	Update(ctx context.Context, req *dto.UpdateJobRequest) error
	Delete(ctx context.Context, id int64) error
}

type alumniEmailStore interface {
	ListEmails(ctx context.Context) ([]string, error)
}

// CareerService handles job postings and their alumni notifications
type CareerService struct {
	careerStore careerStore
	alumniStore alumniEmailStore
	logger      zerolog.Logger
}

// NewCareerService creates a new CareerService
func NewCareerService(careerStore careerStore, alumniStore alumniEmailStore, logger zerolog.Logger) *CareerService {
	return &CareerService{
		careerStore: careerStore,
		alumniStore: alumniStore,
		logger:      logger,
	}
}

// List returns every posting, newest first
func (s *CareerService) List(ctx context.Context) ([]dto.JobItem, error) {
	return s.careerStore.List(ctx)
}

// ListBoard returns postings shaped for the public job board
func (s *CareerService) ListBoard(ctx context.Context) ([]dto.JobListItem, error) {
	return s.careerStore.ListWithPoster(ctx)
}

// Create stores a posting and enqueues one notification email per alumnus
// in the same transaction. Delivery happens asynchronously; a broken mail
// server never fails the posting, and a crash after commit loses no
// notification.
func (s *CareerService) Create(ctx context.Context, req *dto.CreateJobRequest) (int64, error) {
	recipients, err := s.alumniStore.ListEmails(ctx)
	if err != nil {
		return 0, fmt.Errorf("error listing alumni emails: %w", err)
	}

	subject := fmt.Sprintf("New Job Opportunity: %s at %s", req.JobTitle, req.Company)
	body := email.JobPostedBody(req.Company, req.JobTitle, req.Location, req.Description)

	emails := make([]models.OutboxEmail, 0, len(recipients))
	for _, recipient := range recipients {
		emails = append(emails, models.OutboxEmail{
			Recipient: recipient,
			Subject:   subject,
			Body:      body,
		})
	}

	career := &models.Career{
		Company:     req.Company,
		JobTitle:    req.JobTitle,
		Location:    req.Location,
		Description: req.Description,
		UserID:      req.UserID,
	}

	id, err := s.careerStore.CreateWithNotifications(ctx, career, emails)
	if err != nil {
		return 0, err
	}

	s.logger.Info().
		Int64("job_id", id).
		Int("recipients", len(emails)).
		Msg("Job posted, notifications queued")

	return id, nil
}

// Update edits a posting
func (s *CareerService) Update(ctx context.Context, req *dto.UpdateJobRequest) error {
	return s.careerStore.Update(ctx, req)
}

// Delete removes a posting
func (s *CareerService) Delete(ctx context.Context, id int64) error {
	if err := s.careerStore.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Int64("job_id", id).Msg("Job posting deleted")
	return nil
}
