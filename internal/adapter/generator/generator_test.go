package generator

import (
	"testing"
	"time"

	"github.com/plastinin/projectgrid/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedGenerator(seed uint64, now time.Time) *Generator {
	g := New(seed)
	g.now = func() time.Time { return now }
	return g
}

func TestGenerate_IDsAndInvariants(t *testing.T) {
	now := time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC)
	projects := fixedGenerator(7, now).Generate(200)

	require.Len(t, projects, 200)
	for i, p := range projects {
		assert.Equal(t, i+1, p.ID)
		require.NoError(t, p.Validate())

		assert.GreaterOrEqual(t, p.Budget, minBudget)
		assert.LessOrEqual(t, p.Budget, maxBudget)

		require.Len(t, p.Tags, tagsPerProject)
		assert.NotEqual(t, p.Tags[0], p.Tags[1])
		assert.Subset(t, domain.TagVocabulary, p.Tags)

		assert.False(t, p.DueDate.Before(now))
		assert.False(t, p.DueDate.After(now.Add(dueWindow)))
		assert.False(t, p.CreatedAt.After(now))
		assert.Equal(t, time.UTC, p.CreatedAt.Location())
		assert.Equal(t, p.UpdatedAt, p.UpdatedAt.Truncate(time.Millisecond))
	}
}

func TestGenerate_SameSeedSameDataset(t *testing.T) {
	now := time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC)

	first := fixedGenerator(42, now).Generate(20)
	second := fixedGenerator(42, now).Generate(20)

	assert.Equal(t, first, second)
}

func TestGenerate_Empty(t *testing.T) {
	assert.Empty(t, New(1).Generate(0))
}
