package service

import (
	"context"

	"github.com/elearn-admin-gateway/internal/aggregate"
	"github.com/elearn-admin-gateway/internal/auth"
	"github.com/elearn-admin-gateway/internal/fanout"
	"github.com/elearn-admin-gateway/internal/models"
	"github.com/rs/zerolog"
)

// userService joins the user collection with per-user time-spent totals
// and keeps derived counts consistent across mutations. Counts are never
// adjusted arithmetically: after every mutation the collection is
// re-fetched and the count re-derived from its length.
type userService struct {
	users       UserDirectory
	times       TimeTracker
	enrichLimit int
	log         zerolog.Logger
}

func newUserService(users UserDirectory, times TimeTracker, enrichLimit int, log zerolog.Logger) *userService {
	return &userService{
		users:       users,
		times:       times,
		enrichLimit: enrichLimit,
		log:         log.With().Str("service", "user").Logger(),
	}
}

// List fetches the user collection and enriches every record with its
// time-spent total. A primary fetch failure is returned as-is; a failed
// per-user lookup degrades that one record to the "N/A" sentinel.
func (s *userService) List(ctx context.Context, p auth.Principal) (*models.UserList, error) {
	users, err := s.users.ListUsers(ctx, p.Token)
	if err != nil {
		return nil, err
	}

	enriched := s.enrich(ctx, p.Token, users)
	return &models.UserList{Users: enriched, Total: len(enriched)}, nil
}

// enrich issues one time-spent lookup per user concurrently and merges the
// results back in input order. Lookup failures are contained to their own
// record.
func (s *userService) enrich(ctx context.Context, token string, users []models.UserRecord) []models.UserRecord {
	results := fanout.Map(ctx, users, s.enrichLimit, func(ctx context.Context, u models.UserRecord) (int, error) {
		return s.times.UserTotal(ctx, token, u.ID)
	})

	out := make([]models.UserRecord, len(users))
	for i, u := range users {
		if results[i].Err != nil {
			s.log.Warn().Err(results[i].Err).Str("user_id", u.ID).Msg("Time-spent lookup failed")
			u.TotalTimeSpent = models.MinutesUnavailable()
		} else {
			u.TotalTimeSpent = models.MinutesOf(results[i].Value)
		}
		out[i] = u
	}
	return out
}

func (s *userService) Get(ctx context.Context, p auth.Principal, id string) (*models.UserRecord, error) {
	return s.users.GetUser(ctx, p.Token, id)
}

func (s *userService) Create(ctx context.Context, p auth.Principal, in models.UserInput) (*models.UserList, error) {
	if in.CourseID == "" {
		in.CourseID = aggregate.CourseIDForName(in.Course)
	}
	if _, err := s.users.CreateUser(ctx, p.Token, in); err != nil {
		return nil, &MutationError{Op: "create user", Err: err}
	}
	s.log.Info().Str("email", in.Email).Msg("User created")
	return s.List(ctx, p)
}

func (s *userService) Update(ctx context.Context, p auth.Principal, id string, in models.UserInput) (*models.UserList, error) {
	if in.CourseID == "" {
		in.CourseID = aggregate.CourseIDForName(in.Course)
	}
	if _, err := s.users.UpdateUser(ctx, p.Token, id, in); err != nil {
		return nil, &MutationError{Op: "update user", Err: err}
	}
	s.log.Info().Str("user_id", id).Msg("User updated")
	return s.List(ctx, p)
}

// Delete removes a user and its dependent time-spent record as one logical
// operation. The dependent record goes first: if that delete fails the
// user record is left untouched, so no orphaned time-spent data can exist.
func (s *userService) Delete(ctx context.Context, p auth.Principal, id string) (*models.UserList, error) {
	user, err := s.users.GetUser(ctx, p.Token, id)
	if err != nil {
		return nil, &MutationError{Op: "delete user", Err: err}
	}

	if err := s.times.DeleteUserTime(ctx, p.Token, user.ID); err != nil {
		s.log.Error().Err(err).Str("user_id", id).Msg("Cascade delete of time-spent failed; keeping user")
		return nil, &MutationError{Op: "delete user time", Err: err}
	}

	if err := s.users.DeleteUser(ctx, p.Token, id); err != nil {
		return nil, &MutationError{Op: "delete user", Err: err}
	}

	s.log.Info().Str("user_id", id).Msg("User and time-spent record deleted")
	return s.List(ctx, p)
}
