package domain

import "time"

type Task struct {
	ID          string     `json:"id" gorm:"primaryKey;size:36"`
	Title       string     `json:"title" gorm:"not null"`
	Description string     `json:"description"`
	StatusID    *string    `json:"statusId" gorm:"index;size:36"`
	Status      *Status    `json:"status,omitempty" gorm:"foreignKey:StatusID"`
	Deadline    *time.Time `json:"deadline"`
	UserID      string     `json:"userId" gorm:"index;size:36;not null"`
	Tags        []Tag      `json:"tags,omitempty" gorm:"many2many:task_tags;"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

func (Task) TableName() string { return "tasks" }
