package services

import (
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// StorageService holds the uploaded resume on disk for the lifetime of a
// request. The pipeline consumes the file by path; the handler removes it
// once screening finishes.
type StorageService interface {
	SaveResume(file *multipart.FileHeader) (string, error)
	Remove(filePath string)
	EnsureUploadDir() error
}

type storageService struct {
	uploadPath string
}

func NewStorageService(uploadPath string) StorageService {
	return &storageService{
		uploadPath: uploadPath,
	}
}

func (s *storageService) EnsureUploadDir() error {
	if err := os.MkdirAll(s.uploadPath, 0755); err != nil {
		return fmt.Errorf("failed to create upload directory: %w", err)
	}

	return nil
}

// SaveResume writes the upload under a unique filename and returns its path.
func (s *storageService) SaveResume(file *multipart.FileHeader) (string, error) {
	filename := fmt.Sprintf("resume_%s.pdf", uuid.New().String())
	filePath := filepath.Join(s.uploadPath, filename)

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("failed to save file: %w", err)
	}

	return filePath, nil
}

// Remove deletes a stored upload. Failures are logged, never propagated;
// the screening result has already been produced by the time cleanup runs.
func (s *storageService) Remove(filePath string) {
	if err := os.Remove(filePath); err != nil {
		log.Printf("⚠️  Failed to remove upload %s: %v\n", filePath, err)
	}
}
