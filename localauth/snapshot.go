package localauth

import (
	"time"

	"github.com/rewear-app/rewear-api/models"
)

// Snapshot is the aggregate usage report the admin download renders. The
// account list is credential-free; RecentVisits holds at most the last 50
// entries of the full visit log.
type Snapshot struct {
	TotalUsers        int                 `json:"total_users"`
	TotalVisits       int                 `json:"total_visits"`
	TotalUniqueEmails int                 `json:"total_unique_emails"`
	ExportDate        time.Time           `json:"export_date"`
	Users             []models.PublicUser `json:"users"`
	AllEmails         []string            `json:"all_emails"`
	RecentVisits      []models.Visit      `json:"recent_visits"`
}

// ExportSnapshot assembles the admin report. Rendering and download are the
// caller's concern.
func (s *Service) ExportSnapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	users := make([]models.PublicUser, 0, len(s.users))
	for _, u := range s.users {
		users = append(users, u.Public())
	}

	recent := make([]models.Visit, len(s.visits))
	copy(recent, s.visits)
	if len(recent) > 50 {
		recent = recent[len(recent)-50:]
	}

	emails := make([]string, len(s.emails))
	copy(emails, s.emails)

	return Snapshot{
		TotalUsers:        len(s.users),
		TotalVisits:       len(s.visits),
		TotalUniqueEmails: len(s.emails),
		ExportDate:        time.Now().UTC(),
		Users:             users,
		AllEmails:         emails,
		RecentVisits:      recent,
	}
}
