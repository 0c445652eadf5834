package services

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"rahultripathi/resume-screener/internal/config"
	"rahultripathi/resume-screener/internal/models"
)

// ResultLogger appends a qualifying evaluation to the screening spreadsheet.
// It always degrades to false; a logging failure must never fail a request.
type ResultLogger interface {
	Append(ctx context.Context, eval *models.Evaluation) bool
}

var sheetHeader = []interface{}{
	"Timestamp", "Name", "Email", "Final Score",
	"Skill Score", "Experience Score", "Education Score",
	"Experience", "Education", "Candidate Skills", "Feedback",
}

type sheetsLogger struct {
	svc           *sheets.Service
	spreadsheetID string
	worksheet     string
}

func NewSheetsLogger(ctx context.Context, cfg config.SheetsConfig) (ResultLogger, error) {
	svc, err := sheets.NewService(ctx,
		option.WithCredentialsFile(cfg.CredentialsFile),
		option.WithScopes(sheets.SpreadsheetsScope),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets client: %w", err)
	}

	return &sheetsLogger{
		svc:           svc,
		spreadsheetID: cfg.SpreadsheetID,
		worksheet:     cfg.Worksheet,
	}, nil
}

// Append implements ResultLogger. The header row is written on first use.
func (s *sheetsLogger) Append(ctx context.Context, eval *models.Evaluation) bool {
	headerRange := fmt.Sprintf("%s!A1:K1", s.worksheet)

	header, err := s.svc.Spreadsheets.Values.Get(s.spreadsheetID, headerRange).Context(ctx).Do()
	if err != nil {
		log.Printf("❌ Failed to read spreadsheet %s: %v\n", s.spreadsheetID, err)
		return false
	}

	if len(header.Values) == 0 {
		headerRow := &sheets.ValueRange{Values: [][]interface{}{sheetHeader}}
		_, err := s.svc.Spreadsheets.Values.
			Update(s.spreadsheetID, headerRange, headerRow).
			ValueInputOption("RAW").
			Context(ctx).
			Do()
		if err != nil {
			log.Printf("❌ Failed to write spreadsheet header: %v\n", err)
			return false
		}
	}

	row := &sheets.ValueRange{Values: [][]interface{}{{
		time.Now().Format("2006-01-02 15:04:05"),
		eval.Name,
		eval.Email,
		eval.FinalScore,
		eval.SkillScore,
		eval.ExperienceScore,
		eval.EducationScore,
		eval.Experience,
		eval.Education,
		strings.Join(eval.CandidateSkills, ", "),
		eval.Feedback,
	}}}

	_, err = s.svc.Spreadsheets.Values.
		Append(s.spreadsheetID, fmt.Sprintf("%s!A:K", s.worksheet), row).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		log.Printf("❌ Failed to append to spreadsheet: %v\n", err)
		return false
	}

	log.Printf("✅ Candidate saved to spreadsheet: %s\n", eval.Name)
	return true
}
