package mocks

import (
	"context"
	"fmt"
	"sync"

	"github.com/elearn-admin-gateway/internal/models"
	"github.com/elearn-admin-gateway/internal/service"
)

// MockUserDirectory is a mock implementation of service.UserDirectory
type MockUserDirectory struct {
	mu sync.Mutex

	LoginFunc  func(ctx context.Context, req models.LoginRequest) (*models.Session, error)
	ListFunc   func(ctx context.Context, token string) ([]models.UserRecord, error)
	GetFunc    func(ctx context.Context, token, id string) (*models.UserRecord, error)
	CreateFunc func(ctx context.Context, token string, in models.UserInput) (*models.UserRecord, error)
	UpdateFunc func(ctx context.Context, token, id string, in models.UserInput) (*models.UserRecord, error)
	DeleteFunc func(ctx context.Context, token, id string) error

	Users []models.UserRecord

	ListCalls   int
	DeleteCalls []string
}

// Verify interface compliance
var _ service.UserDirectory = (*MockUserDirectory)(nil)

func NewMockUserDirectory() *MockUserDirectory {
	return &MockUserDirectory{}
}

func (m *MockUserDirectory) Login(ctx context.Context, req models.LoginRequest) (*models.Session, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, req)
	}
	return &models.Session{ID: "test-admin", Email: req.Email, Role: "admin", Token: "test-token"}, nil
}

func (m *MockUserDirectory) ListUsers(ctx context.Context, token string) ([]models.UserRecord, error) {
	m.mu.Lock()
	m.ListCalls++
	m.mu.Unlock()
	if m.ListFunc != nil {
		return m.ListFunc(ctx, token)
	}
	out := make([]models.UserRecord, len(m.Users))
	copy(out, m.Users)
	return out, nil
}

func (m *MockUserDirectory) GetUser(ctx context.Context, token, id string) (*models.UserRecord, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, token, id)
	}
	for _, u := range m.Users {
		if u.ID == id {
			user := u
			return &user, nil
		}
	}
	return nil, fmt.Errorf("user %s not found", id)
}

func (m *MockUserDirectory) CreateUser(ctx context.Context, token string, in models.UserInput) (*models.UserRecord, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, token, in)
	}
	user := models.UserRecord{
		ID:         fmt.Sprintf("user-%d", len(m.Users)+1),
		FirstName:  in.FirstName,
		SecondName: in.SecondName,
		Email:      in.Email,
		Course:     in.Course,
		CourseID:   in.CourseID,
	}
	m.mu.Lock()
	m.Users = append(m.Users, user)
	m.mu.Unlock()
	return &user, nil
}

func (m *MockUserDirectory) UpdateUser(ctx context.Context, token, id string, in models.UserInput) (*models.UserRecord, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, token, id, in)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, u := range m.Users {
		if u.ID == id {
			m.Users[i].FirstName = in.FirstName
			m.Users[i].SecondName = in.SecondName
			m.Users[i].Email = in.Email
			m.Users[i].Course = in.Course
			m.Users[i].CourseID = in.CourseID
			user := m.Users[i]
			return &user, nil
		}
	}
	return nil, fmt.Errorf("user %s not found", id)
}

func (m *MockUserDirectory) DeleteUser(ctx context.Context, token, id string) error {
	m.mu.Lock()
	m.DeleteCalls = append(m.DeleteCalls, id)
	m.mu.Unlock()
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, token, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, u := range m.Users {
		if u.ID == id {
			m.Users = append(m.Users[:i], m.Users[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("user %s not found", id)
}

// MockTimeTracker is a mock implementation of service.TimeTracker
type MockTimeTracker struct {
	mu sync.Mutex

	ListFunc       func(ctx context.Context, token string) ([]models.TimeSpentRecord, error)
	UserTotalFunc  func(ctx context.Context, token, userID string) (int, error)
	DeleteTimeFunc func(ctx context.Context, token, userID string) error

	Records []models.TimeSpentRecord
	Totals  map[string]int

	UserTotalCalls int
	DeleteCalls    []string
}

// Verify interface compliance
var _ service.TimeTracker = (*MockTimeTracker)(nil)

func NewMockTimeTracker() *MockTimeTracker {
	return &MockTimeTracker{Totals: make(map[string]int)}
}

func (m *MockTimeTracker) ListTimeSpent(ctx context.Context, token string) ([]models.TimeSpentRecord, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, token)
	}
	out := make([]models.TimeSpentRecord, len(m.Records))
	copy(out, m.Records)
	return out, nil
}

func (m *MockTimeTracker) UserTotal(ctx context.Context, token, userID string) (int, error) {
	m.mu.Lock()
	m.UserTotalCalls++
	m.mu.Unlock()
	if m.UserTotalFunc != nil {
		return m.UserTotalFunc(ctx, token, userID)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	total, ok := m.Totals[userID]
	if !ok {
		return 0, fmt.Errorf("no time-spent record for %s", userID)
	}
	return total, nil
}

func (m *MockTimeTracker) DeleteUserTime(ctx context.Context, token, userID string) error {
	m.mu.Lock()
	m.DeleteCalls = append(m.DeleteCalls, userID)
	m.mu.Unlock()
	if m.DeleteTimeFunc != nil {
		return m.DeleteTimeFunc(ctx, token, userID)
	}
	m.mu.Lock()
	delete(m.Totals, userID)
	m.mu.Unlock()
	return nil
}

// MockLibrary is a mock implementation of service.Library
type MockLibrary struct {
	mu sync.Mutex

	ListFunc   func(ctx context.Context, token string) ([]models.BookRecord, error)
	UploadFunc func(ctx context.Context, token string, in models.BookUpload) (*models.BookRecord, error)
	DeleteFunc func(ctx context.Context, token, id string) error

	Books []models.BookRecord

	ListCalls int
}

// Verify interface compliance
var _ service.Library = (*MockLibrary)(nil)

func NewMockLibrary() *MockLibrary {
	return &MockLibrary{}
}

func (m *MockLibrary) ListBooks(ctx context.Context, token string) ([]models.BookRecord, error) {
	m.mu.Lock()
	m.ListCalls++
	m.mu.Unlock()
	if m.ListFunc != nil {
		return m.ListFunc(ctx, token)
	}
	out := make([]models.BookRecord, len(m.Books))
	copy(out, m.Books)
	return out, nil
}

func (m *MockLibrary) Upload(ctx context.Context, token string, in models.BookUpload) (*models.BookRecord, error) {
	if m.UploadFunc != nil {
		return m.UploadFunc(ctx, token, in)
	}
	book := models.BookRecord{
		ID:          fmt.Sprintf("book-%d", len(m.Books)+1),
		Title:       in.Title,
		Author:      in.Author,
		Description: in.Description,
	}
	m.mu.Lock()
	m.Books = append(m.Books, book)
	m.mu.Unlock()
	return &book, nil
}

func (m *MockLibrary) DeleteBook(ctx context.Context, token, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, token, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, b := range m.Books {
		if b.ID == id {
			m.Books = append(m.Books[:i], m.Books[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("book %s not found", id)
}
