// Package usage implements the free-tier quota gate: a daily allowance,
// consumable credits, and an unlimited pro flag, persisted as a single
// JSON record in whatever storage the caller provides. It is deliberately
// local and unauthenticated; clearing the storage resets the quota.
package usage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"
)

// DailyLimit is the free allowance per calendar day.
const DailyLimit = 3

// Storage holds the serialized usage record. Load returns nil when no
// record exists yet.
type Storage interface {
	Load() ([]byte, error)
	Save(data []byte) error
}

// Record is the persisted quota state.
type Record struct {
	Date    string `json:"date"` // YYYY-MM-DD, local clock
	Count   int    `json:"count"`
	IsPro   bool   `json:"isPro"`
	Credits int    `json:"credits"`
}

// Allowance is the outcome of a gate check.
type Allowance struct {
	Allowed   bool
	Unlimited bool
	Remaining int
	Reason    string
}

// Tracker applies the quota regimes in fixed priority: pro, then credits,
// then the daily count.
type Tracker struct {
	storage    Storage
	dailyLimit int
	now        func() time.Time
}

func NewTracker(storage Storage) *Tracker {
	return &Tracker{
		storage:    storage,
		dailyLimit: DailyLimit,
		now:        time.Now,
	}
}

func (t *Tracker) today() string {
	return t.now().Format("2006-01-02")
}

// load reads the record, resetting the daily count at the local-date
// rollover. Missing or corrupted storage yields a fresh zero record:
// fail open, but never synthetic pro status.
func (t *Tracker) load() Record {
	fresh := Record{Date: t.today()}

	data, err := t.storage.Load()
	if err != nil || len(data) == 0 {
		return fresh
	}

	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return fresh
	}

	if rec.Date != t.today() {
		rec.Date = t.today()
		rec.Count = 0
		t.save(rec)
	}
	return rec
}

func (t *Tracker) save(rec Record) {
	data, err := json.Marshal(rec)
	if err != nil {
		return
	}
	_ = t.storage.Save(data)
}

// Check is a read-only predicate; it never consumes. Callers check before
// starting a generation and Consume only after it succeeds, so a failed
// generation costs nothing.
func (t *Tracker) Check() Allowance {
	rec := t.load()

	if rec.IsPro {
		return Allowance{Allowed: true, Unlimited: true}
	}

	if rec.Credits > 0 {
		return Allowance{Allowed: true, Remaining: rec.Credits}
	}

	remaining := t.dailyLimit - rec.Count
	if remaining <= 0 {
		return Allowance{
			Allowed:   false,
			Remaining: 0,
			Reason:    fmt.Sprintf("You've used all %d free portraits today. Upgrade to Pro for unlimited, or grab a credit pack.", t.dailyLimit),
		}
	}

	return Allowance{Allowed: true, Remaining: remaining}
}

// Consume records one generation: credits first, then a daily slot. Pro
// consumes nothing.
func (t *Tracker) Consume() {
	rec := t.load()

	if rec.IsPro {
		return
	}
	if rec.Credits > 0 {
		rec.Credits--
	} else {
		rec.Count++
	}
	t.save(rec)
}

// SetPro toggles unlimited status.
func (t *Tracker) SetPro(isPro bool) {
	rec := t.load()
	rec.IsPro = isPro
	t.save(rec)
}

// AddCredits tops up the consumable balance.
func (t *Tracker) AddCredits(amount int) {
	rec := t.load()
	rec.Credits += amount
	t.save(rec)
}

// RemainingInfo renders a short status line for display, with an urgency
// hint when the balance is nearly gone.
func (t *Tracker) RemainingInfo() (text string, urgent bool) {
	rec := t.load()

	if rec.IsPro {
		return "Pro — unlimited", false
	}
	if rec.Credits > 0 {
		return fmt.Sprintf("%d credits remaining", rec.Credits), rec.Credits <= 2
	}

	remaining := t.dailyLimit - rec.Count
	switch {
	case remaining <= 0:
		return "No free portraits left today", true
	case remaining == 1:
		return "1 free portrait left today", true
	default:
		return fmt.Sprintf("%d free portraits left today", remaining), false
	}
}

// FileStorage keeps the record in a local file, the closest Go analogue
// of browser local storage.
type FileStorage struct {
	Path string
}

func (f *FileStorage) Load() ([]byte, error) {
	data, err := os.ReadFile(f.Path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	return data, err
}

func (f *FileStorage) Save(data []byte) error {
	return os.WriteFile(f.Path, data, 0o600)
}
