package extract

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"

	"github.com/Kamaal2002/interviewai-prepbot/internal/config"
)

// Service turns an uploaded document into plain text. Extraction never fails
// the request: broken or unsupported files degrade to a bracketed placeholder
// that flows through the generation path like real resume text.
type Service interface {
	ExtractText(filename string, data []byte) string
}

type service struct{}

func NewService() Service {
	return &service{}
}

func (s *service) ExtractText(filename string, data []byte) string {
	log := config.Logger().WithField("filename", filename)

	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".txt":
		return string(data)

	case ".pdf":
		text, err := extractPDFText(data)
		if err != nil {
			log.WithError(err).Error("PDF parsing failed")
			return fmt.Sprintf("[PDF file received: %s - Text extraction temporarily unavailable. Please paste the content manually.]", filename)
		}
		log.Infof("PDF text extracted successfully, length: %d", len(text))
		return text

	case ".doc", ".docx":
		text, err := extractDocxText(data)
		if err != nil {
			log.WithError(err).Error("DOC/DOCX parsing failed")
			return fmt.Sprintf("[DOC/DOCX file: %s - Text extraction failed. Please paste content manually.]", filename)
		}
		log.Infof("DOC/DOCX text extracted successfully, length: %d", len(text))
		return text

	default:
		return fmt.Sprintf("[Unsupported file type: %s - Please use PDF, DOC, DOCX, or TXT files]", ext)
	}
}

func extractPDFText(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to read pdf: %w", err)
	}

	var textBuilder strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, _ := page.GetPlainText(nil)
		textBuilder.WriteString(text)
	}
	return textBuilder.String(), nil
}

func extractDocxText(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to parse docx: %w", err)
	}
	defer doc.Close()

	return doc.Editable().GetContent(), nil
}
