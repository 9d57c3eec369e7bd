package models

import "io"

// FileRef points at a stored binary on the library service.
type FileRef struct {
	URL string `json:"url"`
}

// BookRecord is an uploaded e-book owned by the library service.
type BookRecord struct {
	ID          string   `json:"_id"`
	Title       string   `json:"title"`
	Author      string   `json:"author"`
	Description string   `json:"description"`
	CoverImage  *FileRef `json:"coverImage,omitempty"`
	EpubFile    *FileRef `json:"epubFile,omitempty"`
}

// BookList is a book collection with its derived total.
type BookList struct {
	Books []BookRecord `json:"books"`
	Total int          `json:"total"`
}

// UploadFile is one binary part of a multipart book upload, streamed
// through to the library service without buffering to disk.
type UploadFile struct {
	Name        string
	ContentType string
	Reader      io.Reader
}

// BookUpload carries the metadata and binaries of a book upload.
type BookUpload struct {
	Title       string
	Author      string
	Description string
	Epub        UploadFile
	Cover       UploadFile
}
