package domain

import "time"

// JoinRequest lifecycle states.
const (
	RequestPending  = "pending"
	RequestAccepted = "accepted"
	RequestDeclined = "declined"
)

// JoinRequest carries denormalized snapshots of both the startup name
// and the requesting user's name/phone, taken at creation time.
type JoinRequest struct {
	ID          string    `gorm:"primaryKey;size:64" json:"id"`
	StartupID   string    `gorm:"column:startup_id;index;size:64" json:"startup_id"`
	StartupName string    `gorm:"column:startup_name;size:191" json:"startup_name"`
	UserID      string    `gorm:"column:user_id;index;size:64" json:"user_id"`
	UserName    string    `gorm:"column:user_name;size:128" json:"user_name"`
	UserPhone   string    `gorm:"column:user_phone;size:32" json:"user_phone"`
	Specialty   string    `gorm:"size:128" json:"specialty"`
	Comment     string    `json:"comment"`
	Status      string    `gorm:"size:16;default:pending;index" json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

func (JoinRequest) TableName() string { return "join_requests" }

// Resolved reports whether the request reached a terminal state.
func (r JoinRequest) Resolved() bool { return r.Status != RequestPending }
