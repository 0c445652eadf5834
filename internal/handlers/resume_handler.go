package handlers

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"rahultripathi/resume-screener/internal/services"
)

type ResumeHandler struct {
	storage     services.StorageService
	pipeline    services.Pipeline
	maxFileSize int64
}

func NewResumeHandler(
	storage services.StorageService,
	pipeline services.Pipeline,
	maxFileSize int64,
) *ResumeHandler {
	return &ResumeHandler{
		storage:     storage,
		pipeline:    pipeline,
		maxFileSize: maxFileSize,
	}
}

// HandleUploadResume handles POST /upload_resume.
func (h *ResumeHandler) HandleUploadResume(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"detail": "No resume file uploaded. Send the PDF in the 'file' field.",
		})
	}

	if file.Header.Get("Content-Type") != "application/pdf" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"detail": "Invalid file type. Only PDF is supported.",
		})
	}

	if file.Size > h.maxFileSize {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"detail": fmt.Sprintf("File too large. Max size: %d bytes", h.maxFileSize),
		})
	}

	pdfPath, err := h.storage.SaveResume(file)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"detail": fmt.Sprintf("Failed to store uploaded resume: %v", err),
		})
	}
	// The upload is transient; discard it once screening finishes.
	defer h.storage.Remove(pdfPath)

	result, err := h.pipeline.ScreenResume(c.UserContext(), pdfPath)
	if err != nil {
		return c.Status(statusForError(err)).JSON(fiber.Map{
			"detail": err.Error(),
		})
	}

	return c.JSON(result)
}

// statusForError maps the pipeline error taxonomy to HTTP status codes.
func statusForError(err error) int {
	if errors.Is(err, services.ErrInvalidInput) || errors.Is(err, services.ErrExtraction) {
		return fiber.StatusBadRequest
	}
	return fiber.StatusInternalServerError
}
