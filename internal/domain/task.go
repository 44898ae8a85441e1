package domain

import "time"

// Task board states.
const (
	TaskTodo       = "todo"
	TaskInProgress = "in-progress"
	TaskDone       = "done"
)

// Task rows are the authoritative storage; startups do not embed a
// task list. Assignee name is a snapshot.
type Task struct {
	ID             string    `gorm:"primaryKey;size:64" json:"id"`
	StartupID      string    `gorm:"column:startup_id;index;size:64" json:"startup_id"`
	Title          string    `gorm:"size:191" json:"title"`
	Description    string    `json:"description"`
	AssignedToID   string    `gorm:"column:assigned_to_id;size:64" json:"assigned_to_id"`
	AssignedToName string    `gorm:"column:assigned_to_name;size:128" json:"assigned_to_name"`
	Deadline       string    `gorm:"size:64" json:"deadline"`
	Status         string    `gorm:"size:16;default:todo" json:"status"`
	CreatedAt      time.Time `json:"created_at"`
}

func (Task) TableName() string { return "tasks" }
