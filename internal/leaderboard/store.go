// internal/leaderboard/store.go
package leaderboard

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/vmihailenco/msgpack/v5"
)

// MaxNameLength — предел длины имени в рунах.
const MaxNameLength = 15

// DefaultCapacity — сколько записей хранит файл; показываем обычно десять лучших.
const DefaultCapacity = 100

var ErrInvalidName = errors.New("player name is empty")

// Entry — одна запись таблицы рекордов.
type Entry struct {
	Name      string    `msgpack:"name"`
	Score     int       `msgpack:"score"`
	Wave      int       `msgpack:"wave"`
	CreatedAt time.Time `msgpack:"create_date"`
}

// Store — хранилище рекордов. Ядро игры о нём не знает: сюда попадает
// только итог законченной партии.
type Store interface {
	Submit(ctx context.Context, e Entry) error
	Top(ctx context.Context, n int) ([]Entry, error)
}

// NormalizeName обрезает пробелы и длину имени. Пустое имя — ошибка.
func NormalizeName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ErrInvalidName
	}
	if utf8.RuneCountInString(name) > MaxNameLength {
		name = strings.TrimSpace(string([]rune(name)[:MaxNameLength]))
	}
	return name, nil
}

// NewEntry проверяет имя и собирает запись.
func NewEntry(name string, score, wave int, at time.Time) (Entry, error) {
	n, err := NormalizeName(name)
	if err != nil {
		return Entry{}, err
	}
	return Entry{Name: n, Score: score, Wave: wave, CreatedAt: at.UTC()}, nil
}

// rank сортирует по убыванию счёта; при равенстве выше более ранняя запись.
func rank(entries []Entry) {
	slices.SortStableFunc(entries, func(a, b Entry) int {
		if a.Score != b.Score {
			return b.Score - a.Score
		}
		return a.CreatedAt.Compare(b.CreatedAt)
	})
}

func top(entries []Entry, n int) []Entry {
	if n <= 0 || n > len(entries) {
		n = len(entries)
	}
	return slices.Clone(entries[:n])
}

// MemoryStore — хранилище в памяти.
type MemoryStore struct {
	mu      sync.Mutex
	entries []Entry
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Submit(_ context.Context, e Entry) error {
	if _, err := NormalizeName(e.Name); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, e)
	rank(s.entries)
	if len(s.entries) > DefaultCapacity {
		s.entries = s.entries[:DefaultCapacity]
	}
	return nil
}

func (s *MemoryStore) Top(_ context.Context, n int) ([]Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return top(s.entries, n), nil
}

// FileStore хранит рекорды в msgpack-файле. Запись атомарна:
// сначала во временный файл, затем rename.
type FileStore struct {
	mu       sync.Mutex
	path     string
	capacity int
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path, capacity: DefaultCapacity}
}

func (s *FileStore) Submit(ctx context.Context, e Entry) error {
	if _, err := NormalizeName(e.Name); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.load()
	if err != nil {
		return err
	}
	entries = append(entries, e)
	rank(entries)
	if len(entries) > s.capacity {
		entries = entries[:s.capacity]
	}
	return s.save(entries)
}

func (s *FileStore) Top(ctx context.Context, n int) ([]Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.load()
	if err != nil {
		return nil, err
	}
	rank(entries)
	return top(entries, n), nil
}

func (s *FileStore) load() ([]Entry, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read leaderboard: %w", err)
	}
	var entries []Entry
	if err := msgpack.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to decode leaderboard: %w", err)
	}
	return entries, nil
}

func (s *FileStore) save(entries []Entry) error {
	data, err := msgpack.Marshal(entries)
	if err != nil {
		return fmt.Errorf("failed to encode leaderboard: %w", err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".leaderboard-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write leaderboard: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write leaderboard: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("failed to replace leaderboard: %w", err)
	}
	return nil
}
