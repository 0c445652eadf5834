package services

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractTextRejectsNonPDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "not-a-pdf.pdf")
	require.NoError(t, os.WriteFile(path, []byte("this is plain text, not a PDF container"), 0644))

	parser := NewPDFParserService()
	_, err := parser.ExtractText(path)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExtraction)
}

func TestExtractTextRejectsMissingFile(t *testing.T) {
	parser := NewPDFParserService()
	_, err := parser.ExtractText(filepath.Join(t.TempDir(), "missing.pdf"))

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExtraction)
}
