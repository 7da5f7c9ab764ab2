package resume

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Extractor turns a document file into plain text. Implementations for
// binary formats (PDF, DOCX) register here so the engine core never
// depends on a parsing library directly.
type Extractor interface {
	// ExtractText returns the plain-text content of the file at path.
	ExtractText(path string) (string, error)
}

// ErrUnsupportedFormat is returned by Load for file extensions that have
// no registered extractor.
var ErrUnsupportedFormat = fmt.Errorf("unsupported resume format")

// Loader dispatches on file extension to the right Extractor. Plain-text
// formats are handled inline; binary formats go through the registry.
type Loader struct {
	extractors map[string]Extractor
}

func NewLoader() *Loader {
	return &Loader{extractors: map[string]Extractor{}}
}

// Register routes files with the given extension (".pdf", ".docx") to e.
// Later registrations for the same extension win.
func (l *Loader) Register(ext string, e Extractor) {
	l.extractors[strings.ToLower(ext)] = e
}

// Load reads the file at path and returns its plain-text content.
func (l *Loader) Load(path string) (string, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".txt", ".md":
		b, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("read resume: %w", err)
		}
		return string(b), nil
	}

	if e, ok := l.extractors[ext]; ok {
		text, err := e.ExtractText(path)
		if err != nil {
			return "", fmt.Errorf("extract %s: %w", ext, err)
		}
		return text, nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
}

// LoadFacts is the common path: read the file, then run fact extraction.
func (l *Loader) LoadFacts(path string) (Facts, error) {
	text, err := l.Load(path)
	if err != nil {
		return Facts{}, err
	}
	return Extract(text), nil
}
