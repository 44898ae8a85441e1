package domain

import "time"

// NotifyAdmin is the sentinel recipient meaning "visible to any
// admin-role user" rather than one specific user id.
const NotifyAdmin = "admin"

// Notification types.
const (
	NotifyInfo    = "info"
	NotifySuccess = "success"
	NotifyError   = "error"
)

type Notification struct {
	ID        string    `gorm:"primaryKey;size:64" json:"id"`
	UserID    string    `gorm:"column:user_id;index;size:64" json:"user_id"`
	Title     string    `gorm:"size:191" json:"title"`
	Text      string    `json:"text"`
	Type      string    `gorm:"size:16;default:info" json:"type"`
	IsRead    bool      `gorm:"column:is_read;default:false" json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}

func (Notification) TableName() string { return "notifications" }
