package domain

type ProjectStatus string

const (
	ProjectActive   ProjectStatus = "active"
	ProjectArchived ProjectStatus = "archived"
)

type TaskStatus string

const (
	TaskTodo       TaskStatus = "todo"
	TaskInProgress TaskStatus = "in_progress"
	TaskDone       TaskStatus = "done"
)

// ValidTaskStatuses is the canonical set of accepted task status strings.
var ValidTaskStatuses = map[string]bool{
	"todo": true, "in_progress": true, "done": true,
}

type StoryStatus string

const (
	StoryBacklog    StoryStatus = "backlog"
	StoryTodo       StoryStatus = "todo"
	StoryInProgress StoryStatus = "in_progress"
	StoryReview     StoryStatus = "review"
	StoryDone       StoryStatus = "done"
)

// BoardColumns lists story statuses in board display order.
var BoardColumns = []StoryStatus{
	StoryBacklog, StoryTodo, StoryInProgress, StoryReview, StoryDone,
}

// ValidStoryStatuses is the canonical set of accepted story status strings.
var ValidStoryStatuses = map[string]bool{
	"backlog": true, "todo": true, "in_progress": true, "review": true, "done": true,
}

type SprintStatus string

const (
	SprintPlanned   SprintStatus = "planned"
	SprintActive    SprintStatus = "active"
	SprintCompleted SprintStatus = "completed"
)

// ValidSprintStatuses is the canonical set of accepted sprint status strings.
var ValidSprintStatuses = map[string]bool{
	"planned": true, "active": true, "completed": true,
}
