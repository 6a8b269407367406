package utils

import (
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"
)

const (
	// MaxLogoSize is 2MB in bytes
	MaxLogoSize = 2 * 1024 * 1024
)

// AllowedLogoFormats are the file extensions accepted for tenant logos
var AllowedLogoFormats = []string{".png", ".jpg", ".jpeg", ".svg"}

// FileUploadError represents a file upload validation error
type FileUploadError struct {
	Code    string
	Message string
}

func (e *FileUploadError) Error() string {
	return e.Message
}

// ValidateLogoFile validates an uploaded logo's format and size
func ValidateLogoFile(fileHeader *multipart.FileHeader) error {
	// Check file size
	if fileHeader.Size > MaxLogoSize {
		return &FileUploadError{
			Code:    "FILE_TOO_LARGE",
			Message: fmt.Sprintf("File size exceeds maximum allowed size of %d MB", MaxLogoSize/(1024*1024)),
		}
	}

	// Check file extension
	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	for _, allowed := range AllowedLogoFormats {
		if ext == allowed {
			return nil
		}
	}
	return &FileUploadError{
		Code:    "INVALID_FILE_FORMAT",
		Message: fmt.Sprintf("Only %s files are allowed", strings.Join(AllowedLogoFormats, ", ")),
	}
}
