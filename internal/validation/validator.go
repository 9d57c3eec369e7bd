package validation

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/elearn-admin-gateway/internal/aggregate"
	"github.com/elearn-admin-gateway/internal/models"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// ValidationError represents a single validation error
type ValidationError struct {
	Field   string      `json:"field"`
	Message string      `json:"message"`
	Value   interface{} `json:"value,omitempty"`
}

// ValidateUserInput validates a create/update user payload before it is
// forwarded upstream. An empty course is allowed; such users land in the
// Unidentified bucket on the charts.
func ValidateUserInput(in *models.UserInput) []ValidationError {
	var errors []ValidationError

	if in.FirstName == "" {
		errors = append(errors, ValidationError{Field: "firstName", Message: "firstName is required"})
	}
	if in.SecondName == "" {
		errors = append(errors, ValidationError{Field: "secondName", Message: "secondName is required"})
	}

	if in.Email == "" {
		errors = append(errors, ValidationError{Field: "email", Message: "email is required"})
	} else if !emailRegex.MatchString(in.Email) {
		errors = append(errors, ValidationError{Field: "email", Message: "invalid email format", Value: in.Email})
	}

	if in.Course != "" && !isKnownCourse(in.Course) {
		errors = append(errors, ValidationError{
			Field:   "course",
			Message: fmt.Sprintf("invalid course, must be one of: %s", strings.Join(aggregate.CourseNames(), ", ")),
			Value:   in.Course,
		})
	}

	return errors
}

// ValidateBookUpload validates the metadata and file names of a book
// upload before the binaries are streamed upstream.
func ValidateBookUpload(in *models.BookUpload) []ValidationError {
	var errors []ValidationError

	if in.Title == "" {
		errors = append(errors, ValidationError{Field: "title", Message: "title is required"})
	}
	if in.Author == "" {
		errors = append(errors, ValidationError{Field: "author", Message: "author is required"})
	}

	if in.Epub.Name == "" {
		errors = append(errors, ValidationError{Field: "epub", Message: "epub file is required"})
	} else if ext := strings.ToLower(filepath.Ext(in.Epub.Name)); ext != ".epub" {
		errors = append(errors, ValidationError{Field: "epub", Message: "epub file must have .epub extension", Value: in.Epub.Name})
	}

	if in.Cover.Name == "" {
		errors = append(errors, ValidationError{Field: "coverImage", Message: "cover image is required"})
	} else if !strings.HasPrefix(in.Cover.ContentType, "image/") {
		errors = append(errors, ValidationError{Field: "coverImage", Message: "cover image must be an image file", Value: in.Cover.ContentType})
	}

	return errors
}

func isKnownCourse(name string) bool {
	for _, n := range aggregate.CourseNames() {
		if n == name {
			return true
		}
	}
	return false
}
