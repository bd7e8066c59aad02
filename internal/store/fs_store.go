package store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/preston-bernstein/bruins-live-service/internal/domain"
	"github.com/preston-bernstein/bruins-live-service/internal/timeutil"
)

type documentKind string

const (
	kindConfig documentKind = "config"
	kindToday  documentKind = "today"
	kindGames  documentKind = "games"
)

// FSStore keeps each document as a JSON file under basePath:
// config/public.json, today/<dateKey>.json and games/<gameId>.json.
// Writes go through a temp file and rename; identical bytes skip the write.
type FSStore struct {
	mu            sync.Mutex
	basePath      string
	retentionDays int
	now           func() time.Time
}

// NewFSStore constructs a filesystem store rooted at basePath.
// retentionDays <= 0 disables pruning of old today documents.
func NewFSStore(basePath string, retentionDays int) *FSStore {
	return &FSStore{
		basePath:      basePath,
		retentionDays: retentionDays,
		now:           time.Now,
	}
}

func (s *FSStore) Name() string { return "fs" }

// BasePath exposes the store root (primarily for testing).
func (s *FSStore) BasePath() string {
	if s == nil {
		return ""
	}
	return s.basePath
}

func (s *FSStore) documentPath(kind documentKind, name string) string {
	return filepath.Join(s.basePath, string(kind), fmt.Sprintf("%s.json", name))
}

func (s *FSStore) GetConfig(ctx context.Context) (domain.PublicConfig, error) {
	_ = ctx
	raw, found, err := s.read(kindConfig, "public")
	if err != nil {
		return domain.PublicConfig{}, &domain.ConfigError{Reason: "public config document unreadable", Err: err}
	}
	return decodeConfig(raw, found)
}

func (s *FSStore) SetConfig(ctx context.Context, cfg domain.PublicConfig) error {
	_ = ctx
	normalized, err := normalizeConfig(cfg)
	if err != nil {
		return err
	}
	return s.write(kindConfig, "public", normalized)
}

func (s *FSStore) GetToday(ctx context.Context, dateKey string) (*domain.TodayState, error) {
	_ = ctx
	if err := ValidateDateKey(dateKey); err != nil {
		return nil, err
	}
	raw, found, err := s.read(kindToday, dateKey)
	if err != nil || !found {
		return nil, err
	}
	return decodeToday(raw)
}

func (s *FSStore) SetToday(ctx context.Context, state domain.TodayState) error {
	_ = ctx
	if err := ValidateDateKey(state.DateKey); err != nil {
		return err
	}
	if err := s.write(kindToday, state.DateKey, state); err != nil {
		return err
	}
	return s.updateManifest(state.DateKey)
}

func (s *FSStore) GetGame(ctx context.Context, gameID string) (*domain.GameState, error) {
	_ = ctx
	if err := ValidateGameID(gameID); err != nil {
		return nil, err
	}
	raw, found, err := s.read(kindGames, gameID)
	if err != nil || !found {
		return nil, err
	}
	return decodeGame(raw)
}

func (s *FSStore) SetGame(ctx context.Context, state domain.GameState) error {
	_ = ctx
	if err := ValidateGameID(state.GameID); err != nil {
		return err
	}
	return s.write(kindGames, state.GameID, state)
}

func (s *FSStore) Close() error { return nil }

func (s *FSStore) read(kind documentKind, name string) ([]byte, bool, error) {
	if s == nil {
		return nil, false, errors.New("fs store not configured")
	}
	raw, err := os.ReadFile(s.documentPath(kind, name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return raw, true, nil
}

func (s *FSStore) write(kind documentKind, name string, payload any) error {
	if s == nil {
		return errors.New("fs store not configured")
	}
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	target := s.documentPath(kind, name)
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}
	if existing, err := os.ReadFile(target); err == nil && bytes.Equal(existing, data) {
		return nil
	}

	tmp := target + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, target)
}

func (s *FSStore) updateManifest(dateKey string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	manifestPath := filepath.Join(s.basePath, "manifest.json")
	m, _ := readManifest(manifestPath, s.retentionDays)

	dates, err := s.listDates(kindToday)
	if err != nil {
		return err
	}
	if !containsDate(dates, dateKey) {
		dates = append(dates, dateKey)
	}
	pruned := s.pruneOldDocuments(kindToday, dates, dateKey)

	m.Today.Dates = pruned
	m.Today.LastWritten = s.now().UTC()
	m.Retention.TodayDays = s.retentionDays
	return writeManifest(s.basePath, m)
}

func containsDate(dates []string, date string) bool {
	for _, d := range dates {
		if d == date {
			return true
		}
	}
	return false
}

func (s *FSStore) listDates(kind documentKind) ([]string, error) {
	entries, err := os.ReadDir(filepath.Join(s.basePath, string(kind)))
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, err
	}
	dates := make([]string, 0, len(entries))
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || filepath.Ext(name) != ".json" {
			continue
		}
		dates = append(dates, strings.TrimSuffix(name, ".json"))
	}
	sort.Strings(dates)
	return dates, nil
}

// pruneOldDocuments removes documents older than the retention window, never the one just written.
func (s *FSStore) pruneOldDocuments(kind documentKind, dates []string, current string) []string {
	if s.retentionDays <= 0 {
		sort.Strings(dates)
		return dates
	}
	now := s.now().UTC()
	cutoff := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, -s.retentionDays)
	keep := make([]string, 0, len(dates))
	for _, d := range dates {
		parsed, err := timeutil.ParseDate(d)
		if err == nil && d != current && parsed.Before(cutoff) {
			_ = os.Remove(s.documentPath(kind, d))
			continue
		}
		keep = append(keep, d)
	}
	sort.Strings(keep)
	return keep
}
