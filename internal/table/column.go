package table

import "github.com/plastinin/projectgrid/internal/domain"

// Column описание колонки для слоя отрисовки: {accessorKey, header, cell}
type Column struct {
	Key    domain.Field
	Header string
	// Cell необязательный форматтер ячейки, по умолчанию строковое значение поля
	Cell func(p *domain.Project) string
}

// Render возвращает текст ячейки для проекта
func (c Column) Render(p *domain.Project) string {
	if c.Cell != nil {
		return c.Cell(p)
	}
	v, _ := c.Key.Value(p)
	return v
}

// DefaultColumns колонки таблицы проектов
var DefaultColumns = []Column{
	{Key: domain.FieldID, Header: "ID"},
	{Key: domain.FieldTitle, Header: "Title"},
	{Key: domain.FieldDescription, Header: "Description"},
	{Key: domain.FieldStatus, Header: "Status"},
	{Key: domain.FieldAssignee, Header: "Assignee"},
	{Key: domain.FieldDueDate, Header: "Due Date"},
	{Key: domain.FieldPriority, Header: "Priority"},
	{Key: domain.FieldClient, Header: "Client"},
	{Key: domain.FieldBudget, Header: "Budget"},
	{Key: domain.FieldProgress, Header: "Progress (%)"},
	{Key: domain.FieldCreatedAt, Header: "Created At"},
	{Key: domain.FieldUpdatedAt, Header: "Updated At"},
	{Key: domain.FieldTags, Header: "Tags"},
}
