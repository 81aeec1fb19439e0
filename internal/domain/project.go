package domain

import (
	"fmt"
	"regexp"
	"time"
)

var keyPattern = regexp.MustCompile(`^[A-Z]{2,6}$`)

type Project struct {
	ID         string
	Key        string
	Name       string
	Status     ProjectStatus
	ArchivedAt *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// ValidateKey checks that Key is non-empty and matches the required format:
// 2-6 uppercase letters (e.g. WEB, CORE).
func (p *Project) ValidateKey() error {
	if p.Key == "" {
		return fmt.Errorf("project key is required (use --key flag)")
	}
	if !keyPattern.MatchString(p.Key) {
		return fmt.Errorf("project key %q must be 2-6 uppercase letters (e.g. WEB)", p.Key)
	}
	return nil
}

// DisplayID returns the best short identifier for display.
// It prefers Key; if empty it truncates ID to 8 characters.
func (p *Project) DisplayID() string {
	if p.Key != "" {
		return p.Key
	}
	if len(p.ID) >= 8 {
		return p.ID[:8]
	}
	return p.ID
}
