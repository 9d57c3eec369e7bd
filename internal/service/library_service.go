package service

import (
	"context"

	"github.com/elearn-admin-gateway/internal/auth"
	"github.com/elearn-admin-gateway/internal/models"
	"github.com/rs/zerolog"
)

// libraryService manages the uploaded book collection. The displayed book
// count is always the length of the most recently fetched collection,
// never a separately maintained counter.
type libraryService struct {
	library Library
	log     zerolog.Logger
}

func newLibraryService(library Library, log zerolog.Logger) *libraryService {
	return &libraryService{
		library: library,
		log:     log.With().Str("service", "library").Logger(),
	}
}

func (s *libraryService) List(ctx context.Context, p auth.Principal) (*models.BookList, error) {
	books, err := s.library.ListBooks(ctx, p.Token)
	if err != nil {
		return nil, err
	}
	return &models.BookList{Books: books, Total: len(books)}, nil
}

func (s *libraryService) Upload(ctx context.Context, p auth.Principal, in models.BookUpload) (*models.BookRecord, error) {
	book, err := s.library.Upload(ctx, p.Token, in)
	if err != nil {
		return nil, &MutationError{Op: "upload book", Err: err}
	}
	s.log.Info().Str("book_id", book.ID).Str("title", book.Title).Msg("Book uploaded")
	return book, nil
}

// Delete removes one book and returns the re-fetched collection so the
// caller's count is derived from post-mutation state.
func (s *libraryService) Delete(ctx context.Context, p auth.Principal, id string) (*models.BookList, error) {
	if err := s.library.DeleteBook(ctx, p.Token, id); err != nil {
		return nil, &MutationError{Op: "delete book", Err: err}
	}
	s.log.Info().Str("book_id", id).Msg("Book deleted")
	return s.List(ctx, p)
}
