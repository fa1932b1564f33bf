// Package settings persists the last-used hourly rate, tax rate and currency
// as plain string key-value pairs.
package settings

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Storage keys.
const (
	KeyHourlyRate = "hourlyRate"
	KeyTaxRate    = "taxRate"
	KeyCurrency   = "currency"
)

// Keys lists every persisted key in a stable order.
var Keys = []string{KeyHourlyRate, KeyTaxRate, KeyCurrency}

// Backend names accepted by Open.
const (
	BackendSQLite = "sqlite"
	BackendFile   = "file"
	BackendMemory = "memory"
)

var ErrUnknownBackend = errors.New("unknown settings backend")

// Settings are the user's remembered inputs. Values are stored verbatim;
// nothing here parses them.
type Settings struct {
	HourlyRate string `json:"hourly_rate"`
	TaxRate    string `json:"tax_rate"`
	Currency   string `json:"currency"`
}

// Store loads and saves Settings. Load returns empty strings for keys that
// were never saved. Save gives no atomicity across keys.
type Store interface {
	Load(ctx context.Context) (Settings, error)
	Save(ctx context.Context, s Settings) error
	Close() error
}

// ToMap flattens s into storage keys.
func (s Settings) ToMap() map[string]string {
	return map[string]string{
		KeyHourlyRate: s.HourlyRate,
		KeyTaxRate:    s.TaxRate,
		KeyCurrency:   s.Currency,
	}
}

// FromMap rebuilds Settings from storage keys, ignoring unknown keys.
func FromMap(m map[string]string) Settings {
	return Settings{
		HourlyRate: m[KeyHourlyRate],
		TaxRate:    m[KeyTaxRate],
		Currency:   m[KeyCurrency],
	}
}

// Merge returns s with blank fields filled from fallback.
func (s Settings) Merge(fallback Settings) Settings {
	if strings.TrimSpace(s.HourlyRate) == "" {
		s.HourlyRate = fallback.HourlyRate
	}
	if strings.TrimSpace(s.TaxRate) == "" {
		s.TaxRate = fallback.TaxRate
	}
	if strings.TrimSpace(s.Currency) == "" {
		s.Currency = fallback.Currency
	}
	return s
}

// Open constructs the backend named by backend. path is ignored for memory.
func Open(backend, path string) (Store, error) {
	switch backend {
	case BackendSQLite:
		return NewSQLiteStore(path)
	case BackendFile:
		return NewFileStore(path)
	case BackendMemory, "":
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, backend)
	}
}
