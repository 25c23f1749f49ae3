package generator

import (
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/plastinin/projectgrid/internal/domain"
)

const (
	minBudget      = 1000
	maxBudget      = 10000
	tagsPerProject = 2

	// срок сдачи выбирается в ближайшие сутки
	dueWindow = 24 * time.Hour
)

// Generator создаёт синтетические проекты
type Generator struct {
	faker *gofakeit.Faker
	now   func() time.Time
}

// New создаёт генератор. seed 0 означает случайный сид.
func New(seed uint64) *Generator {
	return &Generator{
		faker: gofakeit.New(seed),
		now:   time.Now,
	}
}

// Generate создаёт ровно n проектов с id 1..n по порядку
func (g *Generator) Generate(n int) []domain.Project {
	now := g.now().UTC()
	projects := make([]domain.Project, 0, n)
	for i := 0; i < n; i++ {
		projects = append(projects, g.project(i+1, now))
	}
	return projects
}

func (g *Generator) project(id int, now time.Time) domain.Project {
	f := g.faker
	return domain.Project{
		ID:          id,
		Title:       f.ProductName(),
		Description: f.HackerPhrase(),
		Status:      domain.Statuses[f.IntRange(0, len(domain.Statuses)-1)],
		Assignee:    f.Name(),
		DueDate:     g.timestamp(now, now.Add(dueWindow)),
		Priority:    domain.Priorities[f.IntRange(0, len(domain.Priorities)-1)],
		Client:      f.Company(),
		Budget:      f.IntRange(minBudget, maxBudget),
		Progress:    f.IntRange(0, 100),
		CreatedAt:   g.timestamp(now.AddDate(-1, 0, 0), now),
		UpdatedAt:   g.timestamp(now.Add(-24*time.Hour), now),
		Tags:        g.tags(),
	}
}

// timestamp возвращает случайный момент в [from, to] с точностью до миллисекунды
func (g *Generator) timestamp(from, to time.Time) time.Time {
	return g.faker.DateRange(from, to).UTC().Truncate(time.Millisecond)
}

// tags выбирает теги из словаря без повторений
func (g *Generator) tags() []string {
	vocabulary := make([]string, len(domain.TagVocabulary))
	copy(vocabulary, domain.TagVocabulary)
	g.faker.ShuffleStrings(vocabulary)
	return vocabulary[:tagsPerProject]
}
