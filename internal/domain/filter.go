package domain

import (
	"maps"
	"slices"
	"strconv"
	"strings"
	"time"
)

// FilterClause одна строка фильтра из UI: колонка и значения через запятую.
// Клауза с пустой колонкой или пустым значением не накладывает ограничений.
type FilterClause struct {
	Column string `json:"column"`
	Value  string `json:"value"`
}

// IsInert проверяет, что клауза ничего не фильтрует
func (c FilterClause) IsInert() bool {
	return c.Column == "" || c.Value == ""
}

// Field колонка таблицы, по которой можно фильтровать
type Field string

const (
	FieldID          Field = "id"
	FieldTitle       Field = "title"
	FieldDescription Field = "description"
	FieldStatus      Field = "status"
	FieldAssignee    Field = "assignee"
	FieldDueDate     Field = "dueDate"
	FieldPriority    Field = "priority"
	FieldClient      Field = "client"
	FieldBudget      Field = "budget"
	FieldProgress    Field = "progress"
	FieldCreatedAt   Field = "createdAt"
	FieldUpdatedAt   Field = "updatedAt"
	FieldTags        Field = "tags"
)

// FilterableFields колонки в порядке отображения
var FilterableFields = []Field{
	FieldID, FieldTitle, FieldDescription, FieldStatus, FieldAssignee, FieldDueDate,
	FieldPriority, FieldClient, FieldBudget, FieldProgress, FieldCreatedAt, FieldUpdatedAt, FieldTags,
}

// accessors приводят значение поля к строке так же, как оно выглядит в JSON ответе
var accessors = map[Field]func(*Project) string{
	FieldID:          func(p *Project) string { return strconv.Itoa(p.ID) },
	FieldTitle:       func(p *Project) string { return p.Title },
	FieldDescription: func(p *Project) string { return p.Description },
	FieldStatus:      func(p *Project) string { return p.Status.String() },
	FieldAssignee:    func(p *Project) string { return p.Assignee },
	FieldDueDate:     func(p *Project) string { return FormatTimestamp(p.DueDate) },
	FieldPriority:    func(p *Project) string { return p.Priority.String() },
	FieldClient:      func(p *Project) string { return p.Client },
	FieldBudget:      func(p *Project) string { return strconv.Itoa(p.Budget) },
	FieldProgress:    func(p *Project) string { return strconv.Itoa(p.Progress) },
	FieldCreatedAt:   func(p *Project) string { return FormatTimestamp(p.CreatedAt) },
	FieldUpdatedAt:   func(p *Project) string { return FormatTimestamp(p.UpdatedAt) },
	FieldTags:        func(p *Project) string { return strings.Join(p.Tags, ",") },
}

// ParseField возвращает колонку по имени из запроса
func ParseField(name string) (Field, bool) {
	f := Field(name)
	_, ok := accessors[f]
	return f, ok
}

// Value возвращает строковое представление поля записи
func (f Field) Value(p *Project) (string, bool) {
	get, ok := accessors[f]
	if !ok {
		return "", false
	}
	return get(p), true
}

// TimestampLayout формат времени в ответе API: UTC, ровно три знака миллисекунд
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// FormatTimestamp форматирует время так же, как оно уходит в JSON ответе
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// ParseAlternatives разбивает сырое значение фильтра на варианты:
// split по запятой, trim, lower case
func ParseAlternatives(raw string) []string {
	parts := strings.Split(raw, ",")
	alternatives := make([]string, 0, len(parts))
	for _, part := range parts {
		alternatives = append(alternatives, strings.ToLower(strings.TrimSpace(part)))
	}
	return alternatives
}

// Clause скомпилированный фильтр по одной колонке
type Clause struct {
	Column       string
	Field        Field
	Known        bool // false для неизвестной колонки: такой фильтр не совпадает ни с чем
	Alternatives []string
}

// Matches проверяет, содержит ли поле записи хотя бы один вариант
func (c Clause) Matches(p *Project) bool {
	if !c.Known {
		return false
	}
	value, ok := c.Field.Value(p)
	if !ok {
		return false
	}
	value = strings.ToLower(value)
	for _, alt := range c.Alternatives {
		if strings.Contains(value, alt) {
			return true
		}
	}
	return false
}

// Filter набор клауз, объединённых через AND
type Filter []Clause

// CompileFilters компилирует map фильтров запроса.
// Клаузы упорядочены по имени колонки.
func CompileFilters(filters map[string]string) Filter {
	compiled := make(Filter, 0, len(filters))
	for _, column := range slices.Sorted(maps.Keys(filters)) {
		raw := filters[column]
		field, known := ParseField(column)
		compiled = append(compiled, Clause{
			Column:       column,
			Field:        field,
			Known:        known,
			Alternatives: ParseAlternatives(raw),
		})
	}
	return compiled
}

// Matches проверяет запись по всем клаузам
func (f Filter) Matches(p *Project) bool {
	for _, c := range f {
		if !c.Matches(p) {
			return false
		}
	}
	return true
}

// UnknownColumns возвращает колонки, которых нет в таблице
func (f Filter) UnknownColumns() []string {
	var unknown []string
	for _, c := range f {
		if !c.Known {
			unknown = append(unknown, c.Column)
		}
	}
	return unknown
}
