package store

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

const appName = "naja"

const (
	highScoreFile = "highscore.yaml"
	runLogFile    = "runs.jsonl"
	logFile       = "naja.log"
)

// DataDir returns the directory where game data is stored: override when set,
// else $XDG_DATA_HOME/naja, defaulting to ~/.local/share/naja.
func DataDir(override string) (string, error) {
	if override != "" {
		return override, nil
	}
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, appName), nil
}

// Store reads and writes the files under one data directory. It is safe
// for concurrent use by several sessions.
type Store struct {
	dir string
	mu  sync.Mutex
}

// Open returns a Store rooted at DataDir(override), creating the directory.
func Open(override string) (*Store, error) {
	dir, err := DataDir(override)
	if err != nil {
		return nil, fmt.Errorf("data dir: %w", err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

func (s *Store) Dir() string { return s.dir }

// LogPath is the default log file location.
func (s *Store) LogPath() string { return filepath.Join(s.dir, logFile) }

// HighScore is the persisted best score.
type HighScore struct {
	Score   int       `yaml:"high_score"`
	Updated time.Time `yaml:"updated"`
}

// LoadHighScore reads the high score. A missing file is a zero score.
func (s *Store) LoadHighScore() (HighScore, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadHighScore()
}

func (s *Store) loadHighScore() (HighScore, error) {
	var hs HighScore
	data, err := os.ReadFile(filepath.Join(s.dir, highScoreFile))
	if errors.Is(err, fs.ErrNotExist) {
		return hs, nil
	}
	if err != nil {
		return hs, fmt.Errorf("read high score: %w", err)
	}
	if err := yaml.Unmarshal(data, &hs); err != nil {
		return HighScore{}, fmt.Errorf("parse high score: %w", err)
	}
	return hs, nil
}

// SaveHighScore records score unless the stored high score is already at
// least as high.
func (s *Store) SaveHighScore(score int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if cur, err := s.loadHighScore(); err == nil && cur.Score >= score {
		return nil
	}
	data, err := yaml.Marshal(HighScore{Score: score, Updated: time.Now().UTC().Truncate(time.Second)})
	if err != nil {
		return fmt.Errorf("encode high score: %w", err)
	}
	path := filepath.Join(s.dir, highScoreFile)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write high score: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("replace high score: %w", err)
	}
	return nil
}

// Run is one finished round, stored as a single JSON line.
type Run struct {
	ID         string    `json:"id"`
	Started    time.Time `json:"started"`
	Ended      time.Time `json:"ended"`
	Score      int       `json:"score"`
	Length     int       `json:"length"`
	Cause      string    `json:"cause"`
	Ticks      uint64    `json:"ticks"`
	Grid       string    `json:"grid"`
	Mode       string    `json:"mode"`
	Difficulty string    `json:"difficulty"`
	Obstacles  int       `json:"obstacles"`
	Electric   bool      `json:"electric_walls"`
	Seed       string    `json:"seed,omitempty"`
	HighScore  bool      `json:"high_score"`
}

// NewRun returns a Run with a fresh id and start time.
func NewRun() Run {
	return Run{ID: uuid.NewString(), Started: time.Now().UTC()}
}

// AppendRun appends r to runs.jsonl.
func (s *Store) AppendRun(r Run) error {
	data, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("encode run: %w", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	f, err := os.OpenFile(filepath.Join(s.dir, runLogFile), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open run log: %w", err)
	}
	defer f.Close()
	if _, err := f.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("write run log: %w", err)
	}
	return nil
}

// Runs reads every run in the log, oldest first. Malformed lines are skipped.
func (s *Store) Runs() ([]Run, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	f, err := os.Open(filepath.Join(s.dir, runLogFile))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open run log: %w", err)
	}
	defer f.Close()

	var runs []Run
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		var r Run
		if err := json.Unmarshal(sc.Bytes(), &r); err != nil {
			continue
		}
		runs = append(runs, r)
	}
	return runs, sc.Err()
}
