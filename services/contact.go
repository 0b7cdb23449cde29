package services

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"regexp"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"urban-threads/models"
	"urban-threads/storage"
)

var emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// ContactLog is the append-only store of contact form submissions. Entries
// are never mutated or deleted.
type ContactLog struct {
	notifier

	mu          sync.Mutex
	store       storage.Store
	log         *slog.Logger
	submissions []models.ContactSubmission
	delay       time.Duration
}

// NewContactLog builds the log. The delay simulates the processing round
// trip between validation and the append; pass zero in tests.
func NewContactLog(store storage.Store, log *slog.Logger, delay time.Duration) *ContactLog {
	c := &ContactLog{store: store, log: log, delay: delay}
	c.load()
	return c
}

func (c *ContactLog) load() {
	raw, err := c.store.Get(keySubmissions)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			c.log.Warn("could not read submissions, starting empty", "error", err)
		}
		c.submissions = []models.ContactSubmission{}
		return
	}

	var submissions []models.ContactSubmission
	if err := json.Unmarshal(raw, &submissions); err != nil {
		c.log.Warn("could not parse submissions, starting empty", "error", err)
		submissions = []models.ContactSubmission{}
	}
	c.submissions = submissions
}

func (c *ContactLog) persist() {
	raw, err := json.Marshal(c.submissions)
	if err != nil {
		c.log.Error("failed to serialize submissions", "error", err)
		return
	}
	if err := c.store.Set(keySubmissions, raw); err != nil {
		c.log.Error("failed to persist submissions", "error", err)
	}
}

// Submit validates the form, then appends a new record with a fresh id and
// the current timestamp. Validation failures report field-level errors and
// write nothing.
func (c *ContactLog) Submit(ctx context.Context, name, email, message string) (*models.ContactSubmission, error) {
	if verr := validateContact(name, email, message); verr != nil {
		return nil, verr
	}

	if c.delay > 0 {
		select {
		case <-time.After(c.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	submission := models.ContactSubmission{
		ID:        uuid.NewString(),
		Name:      name,
		Email:     email,
		Message:   message,
		Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
	}

	c.mu.Lock()
	c.submissions = append(c.submissions, submission)
	c.persist()
	c.mu.Unlock()

	c.notify()
	return &submission, nil
}

func validateContact(name, email, message string) *models.ValidationError {
	verr := models.NewValidationError()
	if strings.TrimSpace(name) == "" {
		verr.Add("name", "Name is required.")
	}
	if !emailPattern.MatchString(email) {
		verr.Add("email", "Please enter a valid email.")
	}
	if strings.TrimSpace(message) == "" {
		verr.Add("message", "Message is required.")
	}
	if verr.HasErrors() {
		return verr
	}
	return nil
}

// ListAll returns the submissions, newest first by timestamp.
func (c *ContactLog) ListAll() []models.ContactSubmission {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]models.ContactSubmission, len(c.submissions))
	copy(out, c.submissions)
	sort.SliceStable(out, func(i, j int) bool {
		ti, _ := time.Parse(time.RFC3339Nano, out[i].Timestamp)
		tj, _ := time.Parse(time.RFC3339Nano, out[j].Timestamp)
		return ti.After(tj)
	})
	return out
}

func (c *ContactLog) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.submissions)
}
