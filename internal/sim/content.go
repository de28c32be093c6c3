package sim

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"

	"promptpager/internal/prompt"
)

var extraneousWhitespace = regexp.MustCompile(`\s+`)

// DemoProducer emits the built-in demo transaction prompt: the kind of
// label/value stream a signing firmware formats on the fly.
func DemoProducer() prompt.Producer {
	return func(s *prompt.Sink) error {
		if _, err := fmt.Fprintf(s, "Transfer %s XTZ to %s; fee %s XTZ; storage limit %d",
			"152.25", "tz1VSUr8wwNhLAzempoch5d6hLRiTh8Cjcjb", "0.00142", 277); err != nil {
			return err
		}
		return nil
	}
}

// TextProducer wraps a fixed string as a content producer.
func TextProducer(text string) prompt.Producer {
	return func(s *prompt.Sink) error {
		_, err := s.WriteString(text)
		return err
	}
}

// LoadPrompt reads prompt content from a file. PDFs are reduced to their
// plain text; anything else is read verbatim. Whitespace runs collapse to
// single spaces either way, since the device has no line structure of its
// own.
func LoadPrompt(path string) (string, error) {
	var text string
	if strings.EqualFold(filepath.Ext(path), ".pdf") {
		extracted, err := extractPDFText(path)
		if err != nil {
			return "", err
		}
		text = extracted
	} else {
		raw, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("read prompt file: %w", err)
		}
		text = string(raw)
	}
	return strings.TrimSpace(extraneousWhitespace.ReplaceAllString(text, " ")), nil
}

func extractPDFText(path string) (string, error) {
	file, reader, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}
	defer file.Close()

	content, err := reader.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("extract pdf text: %w", err)
	}
	var builder strings.Builder
	if _, err := io.Copy(&builder, content); err != nil {
		return "", err
	}
	return builder.String(), nil
}
