package services

import (
	"context"
	"mime/multipart"
	"sort"
	"time"

	"github.com/emre/alumnihub/internal/app/models"
	"github.com/emre/alumnihub/internal/app/models/dto"
	"github.com/emre/alumnihub/internal/pkg/apperrors"
)

// mockUserStore is an in-memory stand-in for the user repository. Bios
// mirror the alumnus_bios rows so the delete cascade can be observed.
type mockUserStore struct {
	users  map[string]*models.User
	bios   map[int64]bool
	nextID int64

	createdUsers int
	createdBios  int
	updated      []int64
	deleted      []int64
}

func newMockUserStore() *mockUserStore {
	return &mockUserStore{users: map[string]*models.User{}, bios: map[int64]bool{}, nextID: 1}
}

func (m *mockUserStore) GetByEmail(_ context.Context, email string) (*models.User, error) {
	user, ok := m.users[email]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	return user, nil
}

func (m *mockUserStore) GetByID(_ context.Context, id int64) (*models.User, error) {
	for _, user := range m.users {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (m *mockUserStore) GetAll(_ context.Context) ([]models.User, error) {
	all := []models.User{}
	for _, user := range m.users {
		all = append(all, *user)
	}
	return all, nil
}

func (m *mockUserStore) EmailExists(_ context.Context, email string) (bool, error) {
	_, ok := m.users[email]
	return ok, nil
}

func (m *mockUserStore) Create(_ context.Context, user *models.User) (int64, error) {
	if _, ok := m.users[user.Email]; ok {
		return 0, apperrors.ErrEmailAlreadyExists
	}
	user.ID = m.nextID
	m.nextID++
	m.users[user.Email] = user
	m.createdUsers++
	return user.ID, nil
}

func (m *mockUserStore) CreateAlumnusAccount(_ context.Context, user *models.User, bio *models.AlumnusBio) (int64, int64, error) {
	if _, ok := m.users[user.Email]; ok {
		return 0, 0, apperrors.ErrEmailAlreadyExists
	}
	bio.ID = m.nextID
	m.nextID++
	user.ID = m.nextID
	m.nextID++
	user.AlumnusID = &bio.ID
	m.users[user.Email] = user
	m.bios[bio.ID] = true
	m.createdUsers++
	m.createdBios++
	return user.ID, bio.ID, nil
}

func (m *mockUserStore) Update(_ context.Context, id int64, name, email string, role models.UserRole, passwordHash string) error {
	for _, user := range m.users {
		if user.ID == id {
			user.Name = name
			user.Email = email
			user.Role = role
			if passwordHash != "" {
				user.Password = passwordHash
			}
			m.updated = append(m.updated, id)
			return nil
		}
	}
	return apperrors.ErrUserNotFound
}

func (m *mockUserStore) Delete(_ context.Context, id int64) error {
	for email, user := range m.users {
		if user.ID == id {
			if user.AlumnusID != nil {
				delete(m.bios, *user.AlumnusID)
			}
			delete(m.users, email)
			m.deleted = append(m.deleted, id)
			return nil
		}
	}
	return apperrors.ErrUserNotFound
}

// mockEventStore keeps events and participation pairs in memory.
type mockEventStore struct {
	events  map[int64]*models.Event
	commits map[[2]int64]bool
	nextID  int64
}

func newMockEventStore() *mockEventStore {
	return &mockEventStore{events: map[int64]*models.Event{}, commits: map[[2]int64]bool{}, nextID: 1}
}

func (m *mockEventStore) ListWithCommitCount(_ context.Context) ([]dto.EventListItem, error) {
	items := []dto.EventListItem{}
	for _, event := range m.events {
		count := int64(0)
		for pair := range m.commits {
			if pair[0] == event.ID {
				count++
			}
		}
		items = append(items, dto.EventListItem{ID: event.ID, Title: event.Title, CommitsCount: count})
	}
	return items, nil
}

func (m *mockEventStore) ListUpcoming(_ context.Context, now time.Time) ([]models.Event, error) {
	upcoming := []models.Event{}
	for _, event := range m.events {
		if !event.Schedule.Before(now) {
			upcoming = append(upcoming, *event)
		}
	}
	return upcoming, nil
}

func (m *mockEventStore) GetByID(_ context.Context, id int64) (*models.Event, error) {
	event, ok := m.events[id]
	if !ok {
		return nil, apperrors.ErrEventNotFound
	}
	return event, nil
}

func (m *mockEventStore) Create(_ context.Context, event *models.Event) (int64, error) {
	event.ID = m.nextID
	m.nextID++
	m.events[event.ID] = event
	return event.ID, nil
}

func (m *mockEventStore) Update(_ context.Context, req *dto.UpdateEventRequest) (*models.Event, error) {
	event, ok := m.events[req.ID]
	if !ok {
		return nil, apperrors.ErrEventNotFound
	}
	if req.Title != "" {
		event.Title = req.Title
	}
	if req.Schedule != nil {
		event.Schedule = *req.Schedule
	}
	return event, nil
}

func (m *mockEventStore) Delete(_ context.Context, id int64) error {
	if _, ok := m.events[id]; !ok {
		return apperrors.ErrEventNotFound
	}
	delete(m.events, id)
	for pair := range m.commits {
		if pair[0] == id {
			delete(m.commits, pair)
		}
	}
	return nil
}

func (m *mockEventStore) Participate(_ context.Context, eventID, userID int64) error {
	m.commits[[2]int64{eventID, userID}] = true
	return nil
}

func (m *mockEventStore) HasCommit(_ context.Context, eventID, userID int64) (bool, error) {
	return m.commits[[2]int64{eventID, userID}], nil
}

// mockCareerStore records postings and the notification batches enqueued
// with them.
type mockCareerStore struct {
	careers  map[int64]*models.Career
	enqueued []models.OutboxEmail
	nextID   int64

	createErr error
}

func newMockCareerStore() *mockCareerStore {
	return &mockCareerStore{careers: map[int64]*models.Career{}, nextID: 1}
}

func (m *mockCareerStore) List(_ context.Context) ([]dto.JobItem, error) {
	items := []dto.JobItem{}
	for _, career := range m.careers {
		items = append(items, dto.JobItem{ID: career.ID, Company: career.Company, JobTitle: career.JobTitle})
	}
	return items, nil
}

func (m *mockCareerStore) ListWithPoster(_ context.Context) ([]dto.JobListItem, error) {
	return []dto.JobListItem{}, nil
}

func (m *mockCareerStore) CreateWithNotifications(_ context.Context, career *models.Career, emails []models.OutboxEmail) (int64, error) {
	if m.createErr != nil {
		return 0, m.createErr
	}
	career.ID = m.nextID
	m.nextID++
	m.careers[career.ID] = career
	m.enqueued = append(m.enqueued, emails...)
	return career.ID, nil
}

func (m *mockCareerStore) Update(_ context.Context, req *dto.UpdateJobRequest) error {
	career, ok := m.careers[req.ID]
	if !ok {
		return apperrors.ErrJobNotFound
	}
	career.Company = req.Company
	career.JobTitle = req.JobTitle
	return nil
}

func (m *mockCareerStore) Delete(_ context.Context, id int64) error {
	if _, ok := m.careers[id]; !ok {
		return apperrors.ErrJobNotFound
	}
	delete(m.careers, id)
	return nil
}

type mockAlumniEmails struct {
	emails []string
	err    error
}

func (m *mockAlumniEmails) ListEmails(_ context.Context) ([]string, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.emails, nil
}

// mockAlumnusStore backs the directory service tests. Courses mirror the
// courses table so the directory join can be observed.
type mockAlumnusStore struct {
	bios    map[int64]*models.AlumnusBio
	courses map[int64]string
	nextID  int64

	accountUpdates []dto.UpdateAccountRequest
	lastAvatar     string
	lastHash       string
}

func newMockAlumnusStore() *mockAlumnusStore {
	return &mockAlumnusStore{bios: map[int64]*models.AlumnusBio{}, courses: map[int64]string{}, nextID: 1}
}

func (m *mockAlumnusStore) ListWithCourse(_ context.Context) ([]dto.AlumnusListItem, error) {
	items := []dto.AlumnusListItem{}
	for _, bio := range m.bios {
		item := dto.AlumnusListItem{ID: bio.ID, Name: bio.Name, Email: bio.Email, Status: bio.Status}
		if bio.CourseID != nil {
			if name, ok := m.courses[*bio.CourseID]; ok {
				item.Course = &name
			}
		}
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Name < items[j].Name })
	return items, nil
}

func (m *mockAlumnusStore) GetByID(_ context.Context, id int64) (*models.AlumnusBio, error) {
	bio, ok := m.bios[id]
	if !ok {
		return nil, apperrors.ErrAlumnusNotFound
	}
	return bio, nil
}

func (m *mockAlumnusStore) Create(_ context.Context, bio *models.AlumnusBio) (*models.AlumnusBio, error) {
	bio.ID = m.nextID
	m.nextID++
	m.bios[bio.ID] = bio
	return bio, nil
}

func (m *mockAlumnusStore) Update(_ context.Context, id int64, req *dto.UpdateAlumnusRequest) (*models.AlumnusBio, error) {
	bio, ok := m.bios[id]
	if !ok {
		return nil, apperrors.ErrAlumnusNotFound
	}
	bio.Name = req.Name
	bio.Email = req.Email
	if req.Status != nil {
		bio.Status = *req.Status
	}
	return bio, nil
}

func (m *mockAlumnusStore) SetStatus(_ context.Context, id int64, status int) error {
	bio, ok := m.bios[id]
	if !ok {
		return apperrors.ErrAlumnusNotFound
	}
	bio.Status = status
	return nil
}

func (m *mockAlumnusStore) Delete(_ context.Context, id int64) error {
	if _, ok := m.bios[id]; !ok {
		return apperrors.ErrAlumnusNotFound
	}
	delete(m.bios, id)
	return nil
}

func (m *mockAlumnusStore) UpdateAccount(_ context.Context, req *dto.UpdateAccountRequest, avatarPath, passwordHash string) error {
	if _, ok := m.bios[req.AlumnusID]; !ok {
		return apperrors.ErrAlumnusNotFound
	}
	m.accountUpdates = append(m.accountUpdates, *req)
	m.lastAvatar = avatarPath
	m.lastHash = passwordHash
	return nil
}

type mockAvatarStorage struct {
	saved []string
}

func (m *mockAvatarStorage) Save(fileHeader *multipart.FileHeader, subPath string) (string, error) {
	if fileHeader == nil {
		return "", nil
	}
	path := "/public/" + subPath + "/" + fileHeader.Filename
	m.saved = append(m.saved, path)
	return path, nil
}
