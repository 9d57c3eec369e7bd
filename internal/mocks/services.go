package mocks

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/elearn-admin-gateway/internal/auth"
	"github.com/elearn-admin-gateway/internal/models"
	"github.com/elearn-admin-gateway/internal/service"
)

// MockAuthService is a mock implementation of service.AuthService
type MockAuthService struct {
	LoginFunc  func(ctx context.Context, req models.LoginRequest) (*models.Session, error)
	LoginCalls int
}

// Verify interface compliance
var _ service.AuthService = (*MockAuthService)(nil)

func NewMockAuthService() *MockAuthService { return &MockAuthService{} }

func (m *MockAuthService) Login(ctx context.Context, req models.LoginRequest) (*models.Session, error) {
	m.LoginCalls++
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, req)
	}
	return &models.Session{ID: "test-admin", Email: req.Email, Role: "admin", Token: "test-token"}, nil
}

// MockUserService is a mock implementation of service.UserService
type MockUserService struct {
	mu sync.Mutex

	ListFunc   func(ctx context.Context, p auth.Principal) (*models.UserList, error)
	GetFunc    func(ctx context.Context, p auth.Principal, id string) (*models.UserRecord, error)
	CreateFunc func(ctx context.Context, p auth.Principal, in models.UserInput) (*models.UserList, error)
	UpdateFunc func(ctx context.Context, p auth.Principal, id string, in models.UserInput) (*models.UserList, error)
	DeleteFunc func(ctx context.Context, p auth.Principal, id string) (*models.UserList, error)

	Users []models.UserRecord

	ListCalls   int
	DeleteCalls []string
}

// Verify interface compliance
var _ service.UserService = (*MockUserService)(nil)

func NewMockUserService() *MockUserService { return &MockUserService{} }

func (m *MockUserService) List(ctx context.Context, p auth.Principal) (*models.UserList, error) {
	m.mu.Lock()
	m.ListCalls++
	m.mu.Unlock()
	if m.ListFunc != nil {
		return m.ListFunc(ctx, p)
	}
	return &models.UserList{Users: m.Users, Total: len(m.Users)}, nil
}

func (m *MockUserService) Get(ctx context.Context, p auth.Principal, id string) (*models.UserRecord, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, p, id)
	}
	for _, u := range m.Users {
		if u.ID == id {
			user := u
			return &user, nil
		}
	}
	return nil, fmt.Errorf("user %s not found", id)
}

func (m *MockUserService) Create(ctx context.Context, p auth.Principal, in models.UserInput) (*models.UserList, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, p, in)
	}
	m.Users = append(m.Users, models.UserRecord{
		ID:         fmt.Sprintf("user-%d", len(m.Users)+1),
		FirstName:  in.FirstName,
		SecondName: in.SecondName,
		Email:      in.Email,
		Course:     in.Course,
	})
	return &models.UserList{Users: m.Users, Total: len(m.Users)}, nil
}

func (m *MockUserService) Update(ctx context.Context, p auth.Principal, id string, in models.UserInput) (*models.UserList, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, p, id, in)
	}
	return &models.UserList{Users: m.Users, Total: len(m.Users)}, nil
}

func (m *MockUserService) Delete(ctx context.Context, p auth.Principal, id string) (*models.UserList, error) {
	m.mu.Lock()
	m.DeleteCalls = append(m.DeleteCalls, id)
	m.mu.Unlock()
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, p, id)
	}
	for i, u := range m.Users {
		if u.ID == id {
			m.Users = append(m.Users[:i], m.Users[i+1:]...)
			break
		}
	}
	return &models.UserList{Users: m.Users, Total: len(m.Users)}, nil
}

// MockStatsService is a mock implementation of service.StatsService
type MockStatsService struct {
	DashboardFunc    func(ctx context.Context, p auth.Principal) (*models.DashboardStats, error)
	DistributionFunc func(ctx context.Context, p auth.Principal) ([]models.CourseCount, error)

	DashboardCalls int
}

// Verify interface compliance
var _ service.StatsService = (*MockStatsService)(nil)

func NewMockStatsService() *MockStatsService { return &MockStatsService{} }

func (m *MockStatsService) Dashboard(ctx context.Context, p auth.Principal) (*models.DashboardStats, error) {
	m.DashboardCalls++
	if m.DashboardFunc != nil {
		return m.DashboardFunc(ctx, p)
	}
	return &models.DashboardStats{TotalTime: "0h 0m"}, nil
}

func (m *MockStatsService) CourseDistribution(ctx context.Context, p auth.Principal) ([]models.CourseCount, error) {
	if m.DistributionFunc != nil {
		return m.DistributionFunc(ctx, p)
	}
	return nil, nil
}

// MockLibraryService is a mock implementation of service.LibraryService
type MockLibraryService struct {
	ListFunc   func(ctx context.Context, p auth.Principal) (*models.BookList, error)
	UploadFunc func(ctx context.Context, p auth.Principal, in models.BookUpload) (*models.BookRecord, error)
	DeleteFunc func(ctx context.Context, p auth.Principal, id string) (*models.BookList, error)

	Books []models.BookRecord
}

// Verify interface compliance
var _ service.LibraryService = (*MockLibraryService)(nil)

func NewMockLibraryService() *MockLibraryService { return &MockLibraryService{} }

func (m *MockLibraryService) List(ctx context.Context, p auth.Principal) (*models.BookList, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, p)
	}
	return &models.BookList{Books: m.Books, Total: len(m.Books)}, nil
}

func (m *MockLibraryService) Upload(ctx context.Context, p auth.Principal, in models.BookUpload) (*models.BookRecord, error) {
	if m.UploadFunc != nil {
		return m.UploadFunc(ctx, p, in)
	}
	book := models.BookRecord{ID: fmt.Sprintf("book-%d", len(m.Books)+1), Title: in.Title, Author: in.Author}
	m.Books = append(m.Books, book)
	return &book, nil
}

func (m *MockLibraryService) Delete(ctx context.Context, p auth.Principal, id string) (*models.BookList, error) {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, p, id)
	}
	for i, b := range m.Books {
		if b.ID == id {
			m.Books = append(m.Books[:i], m.Books[i+1:]...)
			break
		}
	}
	return &models.BookList{Books: m.Books, Total: len(m.Books)}, nil
}

// MockExportService is a mock implementation of service.ExportService
type MockExportService struct {
	StreamUsersFunc func(ctx context.Context, p auth.Principal, w io.Writer, format string) error
	StreamBooksFunc func(ctx context.Context, p auth.Principal, w io.Writer, format string) error
}

// Verify interface compliance
var _ service.ExportService = (*MockExportService)(nil)

func NewMockExportService() *MockExportService { return &MockExportService{} }

func (m *MockExportService) StreamUsers(ctx context.Context, p auth.Principal, w io.Writer, format string) error {
	if m.StreamUsersFunc != nil {
		return m.StreamUsersFunc(ctx, p, w, format)
	}
	return nil
}

func (m *MockExportService) StreamBooks(ctx context.Context, p auth.Principal, w io.Writer, format string) error {
	if m.StreamBooksFunc != nil {
		return m.StreamBooksFunc(ctx, p, w, format)
	}
	return nil
}
