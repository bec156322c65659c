package highscore

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// fileName is the flat score record kept in the player's home directory.
const fileName = ".math_sprint_highscore.json"

// Table maps a difficulty name to the best score recorded for it.
type Table map[string]int

// Store reads and writes the best-score table at a fixed path. The file
// is read once and written at most once per round end; concurrent
// processes racing on the same file are last-writer-wins.
type Store struct {
	path string
}

// NewStore returns a Store persisting at path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// DefaultPath resolves the score file from the MATHSPRINT_SCORES env var
// when set, otherwise a dotfile in the home directory, falling back to
// the current directory when the home directory cannot be determined.
func DefaultPath() string {
	if p := os.Getenv("MATHSPRINT_SCORES"); p != "" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return fileName
	}
	return filepath.Join(home, fileName)
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), 0o755)
}

// Load reads the score table. A missing, unreadable, or malformed file
// reads as an empty table; Load never fails.
func (s *Store) Load() Table {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return Table{}
	}
	var t Table
	if err := json.Unmarshal(data, &t); err != nil || t == nil {
		return Table{}
	}
	return t
}

// Save writes the table as a JSON object with two-space indentation.
func (s *Store) Save(t Table) error {
	data, err := json.MarshalIndent(t, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o644)
}

// UpdateIfBetter records score for name when it beats the stored best.
// The current best defaults to zero for unknown names. On improvement
// the table is saved and (true, score) is returned; otherwise the table
// is left untouched and (false, best) is returned.
func (s *Store) UpdateIfBetter(t Table, name string, score int) (bool, int) {
	best := t[name]
	if score > best {
		t[name] = score
		// Best-effort persistence.
		_ = s.Save(t)
		return true, score
	}
	return false, best
}
