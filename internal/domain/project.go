package domain

import (
	"errors"
	"fmt"
	"time"
)

// Ошибки домена
var (
	ErrInvalidQueryRequest = errors.New("invalid query request")
	ErrInvalidProjectID    = errors.New("project id must be positive")
)

// Project представляет одну запись таблицы проектов
type Project struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      Status    `json:"status"`
	Assignee    string    `json:"assignee"`
	DueDate     time.Time `json:"dueDate"`
	Priority    Priority  `json:"priority"`
	Client      string    `json:"client"`
	Budget      int       `json:"budget"`
	Progress    int       `json:"progress"` // 0..100
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
	Tags        []string  `json:"tags"`
}

// Validate проверяет инварианты записи
func (p *Project) Validate() error {
	if p.ID < 1 {
		return ErrInvalidProjectID
	}
	if !p.Status.IsValid() {
		return fmt.Errorf("project %d: unknown status %q", p.ID, p.Status)
	}
	if !p.Priority.IsValid() {
		return fmt.Errorf("project %d: unknown priority %q", p.ID, p.Priority)
	}
	if p.Progress < 0 || p.Progress > 100 {
		return fmt.Errorf("project %d: progress %d out of range", p.ID, p.Progress)
	}
	return nil
}

// InvalidQueryError описывает некорректный параметр запроса страницы
type InvalidQueryError struct {
	Param  string
	Reason string
	Err    error
}

func (e *InvalidQueryError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid %s: %s: %v", e.Param, e.Reason, e.Err)
	}
	return fmt.Sprintf("invalid %s: %s", e.Param, e.Reason)
}

func (e *InvalidQueryError) Unwrap() error {
	return e.Err
}

// Is позволяет сравнивать через errors.Is с ErrInvalidQueryRequest
func (e *InvalidQueryError) Is(target error) bool {
	return target == ErrInvalidQueryRequest
}
