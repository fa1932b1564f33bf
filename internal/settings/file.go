package settings

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

// FileStore keeps settings in a small YAML document.
type FileStore struct {
	path string
	mu   sync.Mutex
}

type fileDocument struct {
	HourlyRate string `yaml:"hourlyRate"`
	TaxRate    string `yaml:"taxRate"`
	Currency   string `yaml:"currency"`
}

// NewFileStore prepares a store at path. The file itself is created on the
// first Save.
func NewFileStore(path string) (*FileStore, error) {
	if path == "" {
		return nil, fmt.Errorf("file settings: empty path")
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create settings directory: %w", err)
		}
	}
	return &FileStore{path: path}, nil
}

// Load returns empty settings when the file does not exist yet.
func (f *FileStore) Load(_ context.Context) (Settings, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Settings{}, nil
		}
		return Settings{}, fmt.Errorf("read settings file: %w", err)
	}

	var doc fileDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Settings{}, fmt.Errorf("parse settings file: %w", err)
	}

	return Settings{
		HourlyRate: doc.HourlyRate,
		TaxRate:    doc.TaxRate,
		Currency:   doc.Currency,
	}, nil
}

// Save writes to a temporary file and renames it over the old one.
func (f *FileStore) Save(ctx context.Context, s Settings) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := yaml.Marshal(fileDocument{
		HourlyRate: s.HourlyRate,
		TaxRate:    s.TaxRate,
		Currency:   s.Currency,
	})
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}

	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		return fmt.Errorf("replace settings file: %w", err)
	}
	return nil
}

func (f *FileStore) Close() error { return nil }
