package domain

import "time"

type Category struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"uniqueIndex;size:128" json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

func (Category) TableName() string { return "categories" }

// DefaultCategories is the seed set installed on first initialization.
var DefaultCategories = []string{
	"Fintech",
	"Edtech",
	"AI/ML",
	"E-commerce",
	"SaaS",
	"Blockchain",
	"Healthcare",
	"Cybersecurity",
	"GameDev",
	"Networking",
	"Productivity",
	"Other",
}
