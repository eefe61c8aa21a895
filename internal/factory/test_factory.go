package factory

import (
	"time"

	"github.com/mcoot/missingletters/internal/dependencies/mocks"
	"github.com/mcoot/missingletters/internal/storage/memory"
	"github.com/mcoot/missingletters/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock  *mocks.MockClock
	MockRandom *mocks.MockRandom
}

// NewTestApp creates an App configured for testing with mocked dependencies
func NewTestApp() *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandom()

	app := newWithDependencies(store, mockClock, mockRandom, testutil.NopLogger())

	return &TestApp{
		App:        app,
		MockClock:  mockClock,
		MockRandom: mockRandom,
	}
}

// LoadTestWords replaces the word list with two words
func (t *TestApp) LoadTestWords() error {
	return t.WordListService.LoadWords([]string{"planet", "javascript"})
}

// QueueJavascriptSession queues the randomness for a new session whose
// first word is "javascript" shown as "javas_ri_t", followed by "planet".
// LoadTestWords must have been called.
func (t *TestApp) QueueJavascriptSession(id string) {
	t.MockRandom.QueueString(id)
	t.MockRandom.QueueIdentityShuffle(2)
	t.MockRandom.QueueIntn(2, 3, 7, 1, 0, 2, 2, 1, 0)
}
