package client

import "github.com/plastinin/projectgrid/internal/domain"

// BuildRequest собирает запрос страницы из состояния фильтров UI.
// Пустые клаузы отбрасываются, при повторе колонки побеждает последняя.
func BuildRequest(page, pageSize int, clauses []domain.FilterClause) domain.QueryRequest {
	filters := make(map[string]string, len(clauses))
	for _, c := range clauses {
		if c.IsInert() {
			continue
		}
		filters[c.Column] = c.Value
	}
	return domain.QueryRequest{
		Page:     page,
		PageSize: pageSize,
		Filters:  filters,
	}
}
