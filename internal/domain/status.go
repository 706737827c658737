package domain

import "time"

// Status is a board column. Default statuses are seeded at registration and
// cannot be renamed or deleted.
type Status struct {
	ID        string    `json:"id" gorm:"primaryKey;size:36"`
	Name      string    `json:"name" gorm:"not null"`
	Color     string    `json:"color"`
	IsDefault bool      `json:"isDefault"`
	UserID    string    `json:"userId" gorm:"index;size:36;not null"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Status) TableName() string { return "statuses" }

// StatusToDo is the fallback column tasks are moved to when their status is
// deleted.
const StatusToDo = "To Do"

type DefaultStatus struct {
	Name  string
	Color string
}

var DefaultStatuses = []DefaultStatus{
	{Name: "Backlog", Color: "#808080"},
	{Name: StatusToDo, Color: "#0AFAEE"},
	{Name: "In Progress", Color: "#EDEA40"},
	{Name: "In Review", Color: "#9370DB"},
	{Name: "Done", Color: "#32CD32"},
}
