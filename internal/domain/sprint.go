package domain

import "time"

// Sprint is an inclusive calendar window during which stories are worked.
// StartDate and EndDate are date-only values; EndDate >= StartDate holds
// for every persisted sprint.
type Sprint struct {
	ID        string
	ProjectID string
	Name      string
	StartDate time.Time
	EndDate   time.Time
	Status    SprintStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Days returns the inclusive day count of the sprint window.
func (s *Sprint) Days() int {
	return int(s.EndDate.Sub(s.StartDate).Hours()/24) + 1
}
