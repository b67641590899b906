package display

import (
	"fmt"
	"io"
	"sync"

	"go.uber.org/zap"
)

// Surface shows the status label somewhere
type Surface interface {
	Show(text string) error
}

// Label holds the current status text.
// Concurrent writers are allowed; the last Set wins on the label and on every surface.
type Label struct {
	// publishMu orders whole Set calls so surfaces see updates in label order
	publishMu sync.Mutex
	mu        sync.RWMutex
	text      string
	surfaces  []Surface
	logger    *zap.Logger
}

// NewLabel creates a label publishing to the given surfaces
func NewLabel(logger *zap.Logger, surfaces ...Surface) *Label {
	return &Label{
		surfaces: surfaces,
		logger:   logger,
	}
}

// Set replaces the label text and notifies every surface
func (l *Label) Set(text string) {
	l.publishMu.Lock()
	defer l.publishMu.Unlock()

	l.mu.Lock()
	l.text = text
	surfaces := l.surfaces
	l.mu.Unlock()

	for _, s := range surfaces {
		if err := s.Show(text); err != nil {
			l.logger.Warn("Failed to show label", zap.Error(err))
		}
	}
}

// Text returns the current label text
func (l *Label) Text() string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.text
}

// Console writes every label update as a line
type Console struct {
	mu sync.Mutex
	w  io.Writer
}

// NewConsole creates a console surface
func NewConsole(w io.Writer) *Console {
	return &Console{w: w}
}

// Show writes text followed by a newline
func (c *Console) Show(text string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, err := fmt.Fprintln(c.w, text)
	return err
}
