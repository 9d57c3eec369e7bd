package service

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/elearn-admin-gateway/internal/auth"
	"github.com/rs/zerolog"
)

// exportService streams a snapshot of a collection in a download format.
// Users are exported enriched, so the export shows the same numbers as the
// table on screen.
type exportService struct {
	users   *userService
	library Library
	log     zerolog.Logger
}

func newExportService(users *userService, library Library, log zerolog.Logger) *exportService {
	return &exportService{
		users:   users,
		library: library,
		log:     log.With().Str("service", "export").Logger(),
	}
}

// StreamUsers writes the enriched user collection in the given format.
func (s *exportService) StreamUsers(ctx context.Context, p auth.Principal, w io.Writer, format string) error {
	s.log.Info().Str("format", format).Msg("Starting users export")

	list, err := s.users.List(ctx, p)
	if err != nil {
		return err
	}

	switch format {
	case "csv":
		cw := csv.NewWriter(w)
		if err := cw.Write([]string{"firstName", "secondName", "email", "course", "totalTimeSpent"}); err != nil {
			return err
		}
		for _, u := range list.Users {
			minutes := "N/A"
			if !u.TotalTimeSpent.Unavailable {
				minutes = strconv.Itoa(u.TotalTimeSpent.Value)
			}
			if err := cw.Write([]string{u.FirstName, u.SecondName, u.Email, u.Course, minutes}); err != nil {
				return err
			}
		}
		cw.Flush()
		return cw.Error()
	case "ndjson":
		enc := json.NewEncoder(w)
		for _, u := range list.Users {
			if err := enc.Encode(u); err != nil {
				return err
			}
		}
		return nil
	case "json":
		return json.NewEncoder(w).Encode(list.Users)
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}

// StreamBooks writes the book collection in the given format.
func (s *exportService) StreamBooks(ctx context.Context, p auth.Principal, w io.Writer, format string) error {
	s.log.Info().Str("format", format).Msg("Starting books export")

	books, err := s.library.ListBooks(ctx, p.Token)
	if err != nil {
		return err
	}

	switch format {
	case "csv":
		cw := csv.NewWriter(w)
		if err := cw.Write([]string{"title", "author", "description"}); err != nil {
			return err
		}
		for _, b := range books {
			if err := cw.Write([]string{b.Title, b.Author, b.Description}); err != nil {
				return err
			}
		}
		cw.Flush()
		return cw.Error()
	case "ndjson":
		enc := json.NewEncoder(w)
		for _, b := range books {
			if err := enc.Encode(b); err != nil {
				return err
			}
		}
		return nil
	case "json":
		return json.NewEncoder(w).Encode(books)
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}
