package task

import "time"

type CreateTaskRequest struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	StatusID    *string    `json:"statusId"`
	Deadline    *time.Time `json:"deadline"`
}

// UpdateTaskRequest uses pointers so absent fields keep their current value.
// TagIDs is the full replacement set: omitting it clears the task's tags.
type UpdateTaskRequest struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	StatusID    *string    `json:"statusId"`
	Deadline    *time.Time `json:"deadline"`
	TagIDs      []string   `json:"tagIds"`
}
