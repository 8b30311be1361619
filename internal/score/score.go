// Package score keeps the local leaderboard.
package score

import (
	"fmt"
	"sort"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// TopSize is the number of entries the board keeps.
const TopSize = 10

const (
	scoreObject = "leaderboard"
	scoreProp   = "top"
)

// Entry is one leaderboard row.
type Entry struct {
	Name  string `yaml:"name"`
	Score int    `yaml:"score"`
	Wave  int    `yaml:"wave"`
}

// Store persists the leaderboard through a gdata manager. A nil manager
// degrades to memory only: Submit and Top keep working, nothing survives the
// process. The store is safe for concurrent sessions.
type Store struct {
	mu      sync.Mutex
	manager *gdata.Manager
	entries []Entry
}

// Open creates a store backed by the platform data directory.
func Open(appName string) (*Store, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("open data store: %w", err)
	}
	return NewStore(m), nil
}

// NewStore wraps an existing manager, which may be nil for degraded mode.
func NewStore(m *gdata.Manager) *Store {
	s := &Store{manager: m}
	s.load()
	return s
}

func (s *Store) load() {
	if s.manager == nil || !s.manager.ObjectPropExists(scoreObject, scoreProp) {
		return
	}
	data, err := s.manager.LoadObjectProp(scoreObject, scoreProp)
	if err != nil {
		log.Warn("could not read leaderboard, starting fresh", "err", err)
		return
	}
	var entries []Entry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		log.Warn("corrupt leaderboard, starting fresh", "err", err)
		return
	}
	s.entries = entries
}

// Top returns a copy of the board, best first.
func (s *Store) Top() []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Qualifies reports whether a score would enter the board.
func (s *Store) Qualifies(score int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if score <= 0 {
		return false
	}
	if len(s.entries) < TopSize {
		return true
	}
	return score > s.entries[len(s.entries)-1].Score
}

// Submit inserts an entry, trims the board to TopSize and persists it. The
// returned rank is 1-based, 0 when the entry did not make the board.
func (s *Store) Submit(e Entry) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = append(s.entries, e)
	sort.SliceStable(s.entries, func(i, j int) bool {
		return s.entries[i].Score > s.entries[j].Score
	})
	if len(s.entries) > TopSize {
		s.entries = s.entries[:TopSize]
	}

	rank := 0
	for i := range s.entries {
		if s.entries[i] == e {
			rank = i + 1
			break
		}
	}

	if s.manager == nil {
		return rank, nil
	}
	data, err := yaml.Marshal(s.entries)
	if err != nil {
		return rank, fmt.Errorf("encode leaderboard: %w", err)
	}
	if err := s.manager.SaveObjectProp(scoreObject, scoreProp, data); err != nil {
		return rank, fmt.Errorf("save leaderboard: %w", err)
	}
	return rank, nil
}
