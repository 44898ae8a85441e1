package domain

import "time"

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	ID           string     `gorm:"primaryKey;size:64" json:"id"`
	Email        string     `gorm:"uniqueIndex;size:191" json:"email"`
	Password     string     `gorm:"size:191" json:"password,omitempty"`
	Name         string     `gorm:"size:128" json:"name"`
	Phone        string     `gorm:"size:32" json:"phone"`
	Role         string     `gorm:"size:16;default:user" json:"role"`
	Bio          string     `json:"bio"`
	Avatar       string     `json:"avatar"`
	PortfolioURL string     `gorm:"column:portfolio_url" json:"portfolio_url"`
	Skills       StringList `gorm:"serializer:json" json:"skills"`
	Languages    StringList `gorm:"serializer:json" json:"languages"`
	Tools        StringList `gorm:"serializer:json" json:"tools"`
	CreatedAt    time.Time  `json:"created_at"`
	Banned       bool       `gorm:"default:false" json:"banned"`
}

func (User) TableName() string { return "users" }

// StringList is persisted as a JSON text column.
type StringList []string
