package display

import (
	"bytes"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type failingSurface struct{}

func (failingSurface) Show(string) error {
	return fmt.Errorf("surface closed")
}

// slowSurface takes a while to show some texts and remembers the last one shown
type slowSurface struct {
	mu    sync.Mutex
	delay map[string]time.Duration
	last  string
}

func (s *slowSurface) Show(text string) error {
	time.Sleep(s.delay[text])
	s.mu.Lock()
	defer s.mu.Unlock()
	s.last = text
	return nil
}

func (s *slowSurface) Last() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.last
}

func TestLabel_Set(t *testing.T) {
	var buf bytes.Buffer
	label := NewLabel(zap.NewNop(), NewConsole(&buf), failingSurface{})

	assert.Equal(t, "", label.Text())

	label.Set("मिति अनुपलब्ध")
	label.Set("२०८१ बैशाख १, सोमबार")

	assert.Equal(t, "२०८१ बैशाख १, सोमबार", label.Text())
	assert.Equal(t, "मिति अनुपलब्ध\n२०८१ बैशाख १, सोमबार\n", buf.String())
}

func TestLabel_ConcurrentSet(t *testing.T) {
	label := NewLabel(zap.NewNop())

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			label.Set(fmt.Sprintf("label %d", i))
		}(i)
	}
	wg.Wait()

	assert.Contains(t, label.Text(), "label ")
}

func TestLabel_SetKeepsSurfaceInStepWithText(t *testing.T) {
	surface := &slowSurface{delay: map[string]time.Duration{"old": 50 * time.Millisecond}}
	label := NewLabel(zap.NewNop(), surface)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		label.Set("old")
	}()
	go func() {
		defer wg.Done()
		time.Sleep(10 * time.Millisecond)
		label.Set("new")
	}()
	wg.Wait()

	assert.Equal(t, "new", label.Text())
	assert.Equal(t, "new", surface.Last())
}
