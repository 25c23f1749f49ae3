package main

import (
	"fmt"
	"strings"

	"github.com/plastinin/projectgrid/internal/domain"
	"github.com/plastinin/projectgrid/internal/table"
)

// parseFilter разбирает "column=value" в клаузу фильтра
func parseFilter(s string) (domain.FilterClause, error) {
	i := strings.IndexByte(s, '=')
	if i <= 0 {
		return domain.FilterClause{}, fmt.Errorf("invalid filter %q (expected column=value)", s)
	}
	return domain.FilterClause{Column: s[:i], Value: s[i+1:]}, nil
}

// selectColumns возвращает колонки по списку ключей, при пустом списке все колонки
func selectColumns(keys []string) ([]table.Column, error) {
	if len(keys) == 0 {
		return table.DefaultColumns, nil
	}

	byKey := make(map[domain.Field]table.Column, len(table.DefaultColumns))
	for _, col := range table.DefaultColumns {
		byKey[col.Key] = col
	}

	columns := make([]table.Column, 0, len(keys))
	for _, key := range keys {
		col, ok := byKey[domain.Field(strings.TrimSpace(key))]
		if !ok {
			return nil, fmt.Errorf("unknown column %q", key)
		}
		columns = append(columns, col)
	}
	return columns, nil
}
