package domain

// Status представляет статус проекта
type Status string

const (
	StatusOpen       Status = "Open"
	StatusInProgress Status = "In Progress"
	StatusCompleted  Status = "Completed"
	StatusOnHold     Status = "On Hold"
)

// Statuses все допустимые статусы в порядке отображения
var Statuses = []Status{StatusOpen, StatusInProgress, StatusCompleted, StatusOnHold}

// IsValid проверяет валидность статуса
func (s Status) IsValid() bool {
	switch s {
	case StatusOpen, StatusInProgress, StatusCompleted, StatusOnHold:
		return true
	}
	return false
}

func (s Status) String() string {
	return string(s)
}

// Priority представляет приоритет проекта
type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
)

// Priorities все допустимые приоритеты
var Priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh}

// IsValid проверяет валидность приоритета
func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

func (p Priority) String() string {
	return string(p)
}

// Словарь тегов, из которого выбираются ровно два тега на проект
var TagVocabulary = []string{"Urgent", "Feature", "Bug", "Improvement"}
