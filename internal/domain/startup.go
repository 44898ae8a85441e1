package domain

import "time"

// Startup moderation states.
const (
	StatusPendingAdmin = "pending_admin"
	StatusApproved     = "approved"
	StatusRejected     = "rejected"
)

// TeamMember is one roster entry embedded in a Startup. Name is a
// point-in-time snapshot of the member's display name, not a live
// reference.
type TeamMember struct {
	UserID   string    `json:"user_id"`
	Name     string    `json:"name"`
	Role     string    `json:"role"`
	JoinedAt time.Time `json:"joined_at"`
}

// Roster is the embedded team-member list, persisted as a JSON column.
type Roster []TeamMember

// Contains reports whether the roster already holds userID.
func (r Roster) Contains(userID string) bool {
	for _, m := range r {
		if m.UserID == userID {
			return true
		}
	}
	return false
}

// Remove returns the roster without entries for userID and whether
// anything was dropped.
func (r Roster) Remove(userID string) (Roster, bool) {
	out := make(Roster, 0, len(r))
	for _, m := range r {
		if m.UserID != userID {
			out = append(out, m)
		}
	}
	return out, len(out) != len(r)
}

// Startup keeps the wire names of the original client: nomi (name),
// tavsif (description), kerakli_mutaxassislar (wanted specialists),
// egasi_id/egasi_name (owner), yaratilgan_vaqt (created at), a_zolar
// (roster). Owner name is a denormalized snapshot.
type Startup struct {
	ID              string     `gorm:"primaryKey;size:64" json:"id"`
	Name            string     `gorm:"column:nomi;size:191" json:"nomi"`
	Description     string     `gorm:"column:tavsif" json:"tavsif"`
	Category        string     `gorm:"size:64" json:"category"`
	WantedRoles     StringList `gorm:"column:kerakli_mutaxassislar;serializer:json" json:"kerakli_mutaxassislar"`
	Logo            string     `json:"logo"`
	OwnerID         string     `gorm:"column:egasi_id;index;size:64" json:"egasi_id"`
	OwnerName       string     `gorm:"column:egasi_name;size:128" json:"egasi_name"`
	Status          string     `gorm:"size:16;default:pending_admin;index" json:"status"`
	CreatedAt       time.Time  `gorm:"column:yaratilgan_vaqt" json:"yaratilgan_vaqt"`
	Team            Roster     `gorm:"column:a_zolar;serializer:json" json:"a_zolar"`
	Views           int        `gorm:"default:0" json:"views"`
	GithubURL       string     `gorm:"column:github_url" json:"github_url"`
	WebsiteURL      string     `gorm:"column:website_url" json:"website_url"`
	RejectionReason string     `gorm:"column:rejection_reason" json:"rejection_reason,omitempty"`
}

func (Startup) TableName() string { return "startups" }
