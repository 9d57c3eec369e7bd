package service

import (
	"context"
	"sync"

	"github.com/elearn-admin-gateway/internal/aggregate"
	"github.com/elearn-admin-gateway/internal/auth"
	"github.com/elearn-admin-gateway/internal/models"
	"github.com/rs/zerolog"
)

// statsService computes the dashboard aggregates fresh on every request.
// Nothing is cached between loads; every total is derived from the
// collections fetched in the same call.
type statsService struct {
	users   UserDirectory
	times   TimeTracker
	library Library
	log     zerolog.Logger
}

func newStatsService(users UserDirectory, times TimeTracker, library Library, log zerolog.Logger) *statsService {
	return &statsService{
		users:   users,
		times:   times,
		library: library,
		log:     log.With().Str("service", "stats").Logger(),
	}
}

// Dashboard fetches the three source collections concurrently and reduces
// them into the landing-page stats. Any primary fetch failure fails the
// whole section.
func (s *statsService) Dashboard(ctx context.Context, p auth.Principal) (*models.DashboardStats, error) {
	var (
		wg      sync.WaitGroup
		records []models.TimeSpentRecord
		users   []models.UserRecord
		books   []models.BookRecord

		recordsErr, usersErr, booksErr error
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		records, recordsErr = s.times.ListTimeSpent(ctx, p.Token)
	}()
	go func() {
		defer wg.Done()
		users, usersErr = s.users.ListUsers(ctx, p.Token)
	}()
	go func() {
		defer wg.Done()
		books, booksErr = s.library.ListBooks(ctx, p.Token)
	}()
	wg.Wait()

	for _, err := range []error{recordsErr, usersErr, booksErr} {
		if err != nil {
			s.log.Error().Err(err).Msg("Dashboard fetch failed")
			return nil, err
		}
	}

	courseTime := aggregate.ByCourse(records)
	total := aggregate.TotalMinutes(courseTime)

	return &models.DashboardStats{
		CourseTime:   courseTime,
		TotalMinutes: total,
		TotalTime:    aggregate.FormatMinutes(total),
		TotalUsers:   len(users),
		TotalBooks:   len(books),
	}, nil
}

// CourseDistribution buckets the current user collection by course for the
// distribution chart.
func (s *statsService) CourseDistribution(ctx context.Context, p auth.Principal) ([]models.CourseCount, error) {
	users, err := s.users.ListUsers(ctx, p.Token)
	if err != nil {
		return nil, err
	}
	return aggregate.UserDistribution(users), nil
}
