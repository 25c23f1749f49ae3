package dto

import "github.com/plastinin/projectgrid/internal/domain"

// ProjectResponse проект в ответе API
type ProjectResponse struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	Assignee    string    `json:"assignee"`
	DueDate     Timestamp `json:"dueDate"`
	Priority    string    `json:"priority"`
	Client      string    `json:"client"`
	Budget      int       `json:"budget"`
	Progress    int       `json:"progress"`
	CreatedAt   Timestamp `json:"createdAt"`
	UpdatedAt   Timestamp `json:"updatedAt"`
	Tags        []string  `json:"tags"`
}

// ProjectFromDomain конвертирует доменную модель в DTO
func ProjectFromDomain(p *domain.Project) ProjectResponse {
	return ProjectResponse{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Status:      p.Status.String(),
		Assignee:    p.Assignee,
		DueDate:     Timestamp(p.DueDate),
		Priority:    p.Priority.String(),
		Client:      p.Client,
		Budget:      p.Budget,
		Progress:    p.Progress,
		CreatedAt:   Timestamp(p.CreatedAt),
		UpdatedAt:   Timestamp(p.UpdatedAt),
		Tags:        p.Tags,
	}
}

// ToDomain конвертирует DTO обратно в доменную модель
func (p ProjectResponse) ToDomain() domain.Project {
	return domain.Project{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Status:      domain.Status(p.Status),
		Assignee:    p.Assignee,
		DueDate:     p.DueDate.Time(),
		Priority:    domain.Priority(p.Priority),
		Client:      p.Client,
		Budget:      p.Budget,
		Progress:    p.Progress,
		CreatedAt:   p.CreatedAt.Time(),
		UpdatedAt:   p.UpdatedAt.Time(),
		Tags:        p.Tags,
	}
}

// ProjectListResponse страница проектов: {data, total}
type ProjectListResponse struct {
	Data  []ProjectResponse `json:"data"`
	Total int               `json:"total"`
}

// ProjectListFromDomain конвертирует результат запроса в DTO
func ProjectListFromDomain(result *domain.QueryResponse) *ProjectListResponse {
	data := make([]ProjectResponse, len(result.Data))
	for i := range result.Data {
		data[i] = ProjectFromDomain(&result.Data[i])
	}

	return &ProjectListResponse{
		Data:  data,
		Total: result.Total,
	}
}

// ToDomain конвертирует ответ API в доменный результат
func (r *ProjectListResponse) ToDomain() *domain.QueryResponse {
	data := make([]domain.Project, len(r.Data))
	for i, p := range r.Data {
		data[i] = p.ToDomain()
	}
	return &domain.QueryResponse{
		Data:  data,
		Total: r.Total,
	}
}
