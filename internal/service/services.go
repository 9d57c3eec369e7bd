package service

import (
	"context"
	"fmt"
	"io"

	"github.com/elearn-admin-gateway/internal/auth"
	"github.com/elearn-admin-gateway/internal/config"
	"github.com/elearn-admin-gateway/internal/models"
	"github.com/rs/zerolog"
)

// UserDirectory is the slice of the user-management service the gateway
// depends on.
type UserDirectory interface {
	Login(ctx context.Context, req models.LoginRequest) (*models.Session, error)
	ListUsers(ctx context.Context, token string) ([]models.UserRecord, error)
	GetUser(ctx context.Context, token, id string) (*models.UserRecord, error)
	CreateUser(ctx context.Context, token string, in models.UserInput) (*models.UserRecord, error)
	UpdateUser(ctx context.Context, token, id string, in models.UserInput) (*models.UserRecord, error)
	DeleteUser(ctx context.Context, token, id string) error
}

// TimeTracker is the slice of the time-tracking service the gateway
// depends on.
type TimeTracker interface {
	ListTimeSpent(ctx context.Context, token string) ([]models.TimeSpentRecord, error)
	UserTotal(ctx context.Context, token, userID string) (int, error)
	DeleteUserTime(ctx context.Context, token, userID string) error
}

// Library is the slice of the library/file service the gateway depends on.
type Library interface {
	ListBooks(ctx context.Context, token string) ([]models.BookRecord, error)
	Upload(ctx context.Context, token string, in models.BookUpload) (*models.BookRecord, error)
	DeleteBook(ctx context.Context, token, id string) error
}

// AuthService forwards login to the user service.
type AuthService interface {
	Login(ctx context.Context, req models.LoginRequest) (*models.Session, error)
}

// UserService manages the enriched user collection. Every mutation returns
// the re-fetched authoritative collection with its derived count.
type UserService interface {
	List(ctx context.Context, p auth.Principal) (*models.UserList, error)
	Get(ctx context.Context, p auth.Principal, id string) (*models.UserRecord, error)
	Create(ctx context.Context, p auth.Principal, in models.UserInput) (*models.UserList, error)
	Update(ctx context.Context, p auth.Principal, id string, in models.UserInput) (*models.UserList, error)
	Delete(ctx context.Context, p auth.Principal, id string) (*models.UserList, error)
}

// StatsService computes the dashboard aggregates.
type StatsService interface {
	Dashboard(ctx context.Context, p auth.Principal) (*models.DashboardStats, error)
	CourseDistribution(ctx context.Context, p auth.Principal) ([]models.CourseCount, error)
}

// LibraryService manages the uploaded book collection.
type LibraryService interface {
	List(ctx context.Context, p auth.Principal) (*models.BookList, error)
	Upload(ctx context.Context, p auth.Principal, in models.BookUpload) (*models.BookRecord, error)
	Delete(ctx context.Context, p auth.Principal, id string) (*models.BookList, error)
}

// ExportService streams a collection snapshot in a download format.
type ExportService interface {
	StreamUsers(ctx context.Context, p auth.Principal, w io.Writer, format string) error
	StreamBooks(ctx context.Context, p auth.Principal, w io.Writer, format string) error
}

// Services holds all service interfaces.
type Services struct {
	Auth    AuthService
	User    UserService
	Stats   StatsService
	Library LibraryService
	Export  ExportService
}

// NewServices wires all services onto the three backend clients.
func NewServices(users UserDirectory, times TimeTracker, library Library, cfg *config.Config, log zerolog.Logger) *Services {
	userSvc := newUserService(users, times, cfg.Services.EnrichConcurrency, log)
	return &Services{
		Auth:    newAuthService(users, log),
		User:    userSvc,
		Stats:   newStatsService(users, times, library, log),
		Library: newLibraryService(library, log),
		Export:  newExportService(userSvc, library, log),
	}
}

// MutationError marks a failed create/update/delete. The collection held
// by the caller is left exactly as it was; the handler surfaces this as a
// transient notification rather than a page-level failure.
type MutationError struct {
	Op  string
	Err error
}

func (e *MutationError) Error() string { return fmt.Sprintf("%s: %v", e.Op, e.Err) }

func (e *MutationError) Unwrap() error { return e.Err }
