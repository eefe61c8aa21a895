package wordlist

import (
	"bufio"
	"context"
	_ "embed"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/mcoot/missingletters/internal/model"
	"github.com/mcoot/missingletters/internal/storage"
)

// MinWordLength is the shortest word that still has an interior letter to hide
const MinWordLength = 3

//go:embed default_words.txt
var defaultWords string

// Default returns the built-in word list
func Default() []string {
	words, err := parse(strings.NewReader(defaultWords))
	if err != nil {
		panic(fmt.Sprintf("invalid embedded word list: %v", err))
	}
	return words
}

// Service owns the fixed word list games are played with
type Service struct {
	storage storage.Storage
	logger  *slog.Logger

	mu    sync.RWMutex
	words []string
}

// New creates a new word list Service holding the built-in list
func New(storage storage.Storage, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		logger:  logger,
		words:   Default(),
	}
}

// LoadFromStorage replaces the list with the one saved in storage
func (s *Service) LoadFromStorage(ctx context.Context) error {
	words, err := s.storage.GetWordList(ctx)
	if err != nil {
		return err
	}
	return s.LoadWords(words)
}

// LoadFromFile replaces the list with words from a file (one word per line)
// and saves it to storage
func (s *Service) LoadFromFile(ctx context.Context, path string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	words, err := parse(file)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	if err := s.LoadWords(words); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	return s.storage.SaveWordList(ctx, s.Words())
}

// LoadWords validates and installs a word list. Words are lowercased and
// duplicates dropped, keeping first occurrences in order.
func (s *Service) LoadWords(words []string) error {
	cleaned, err := clean(words)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.words = cleaned
	s.mu.Unlock()

	s.logger.Info("word list loaded", slog.Int("word_count", len(cleaned)))
	return nil
}

// Words returns a copy of the current list
func (s *Service) Words() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string(nil), s.words...)
}

// WordCount returns the number of words in the list
func (s *Service) WordCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.words)
}

// ValidateWord checks that a word is lowercase a-z and long enough to
// have letters hidden away from its ends
func ValidateWord(word string) error {
	if len(word) < MinWordLength {
		return fmt.Errorf("%w: %q is shorter than %d letters", model.ErrInvalidWord, word, MinWordLength)
	}
	for _, ch := range word {
		if ch < 'a' || ch > 'z' {
			return fmt.Errorf("%w: %q contains %q", model.ErrInvalidWord, word, ch)
		}
	}
	return nil
}

func clean(words []string) ([]string, error) {
	seen := make(map[string]struct{}, len(words))
	cleaned := make([]string, 0, len(words))
	for _, word := range words {
		word = strings.ToLower(strings.TrimSpace(word))
		if err := ValidateWord(word); err != nil {
			return nil, err
		}
		if _, ok := seen[word]; ok {
			continue
		}
		seen[word] = struct{}{}
		cleaned = append(cleaned, word)
	}
	if len(cleaned) == 0 {
		return nil, model.ErrEmptyWordList
	}
	return cleaned, nil
}

// parse reads one word per line, skipping blank lines and # comments
func parse(r io.Reader) ([]string, error) {
	var words []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return words, nil
}

// Interface check
type ServiceInterface interface {
	LoadFromStorage(ctx context.Context) error
	LoadFromFile(ctx context.Context, path string) error
	LoadWords(words []string) error
	Words() []string
	WordCount() int
}

var _ ServiceInterface = (*Service)(nil)
