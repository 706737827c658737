package domain

import "time"

// Tag is a task label. Default tags are seeded at registration and cannot be
// renamed or deleted.
type Tag struct {
	ID        string    `json:"id" gorm:"primaryKey;size:36"`
	Name      string    `json:"name" gorm:"not null"`
	Color     string    `json:"color"`
	IsDefault bool      `json:"isDefault"`
	UserID    string    `json:"userId" gorm:"index;size:36;not null"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Tag) TableName() string { return "tags" }

type DefaultTag struct {
	Name  string
	Color string
}

var DefaultTags = []DefaultTag{
	{Name: "Bug", Color: "#FF0000"},
	{Name: "Feature", Color: "#00FF00"},
	{Name: "Enhancement", Color: "#45CFF5"},
	{Name: "Documentation", Color: "#FFA500"},
	{Name: "Urgent", Color: "#FF00FF"},
}
