package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"unicode/utf8"

	"github.com/plastinin/projectgrid/internal/adapter/http/dto"
	"github.com/plastinin/projectgrid/internal/domain"
	"github.com/plastinin/projectgrid/internal/table"
)

const maxCellWidth = 40

// printPageJSON печатает страницу в том же виде, в каком её отдаёт API
func printPageJSON(w io.Writer, resp *domain.QueryResponse) error {
	data, err := json.MarshalIndent(dto.ProjectListFromDomain(resp), "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling JSON: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

func printPageTable(w io.Writer, columns []table.Column, rows []domain.Project, page, pageSize, total, width int) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	headers := make([]string, len(columns))
	for i, col := range columns {
		headers[i] = strings.ToUpper(col.Header)
	}
	fmt.Fprintln(tw, strings.Join(headers, "\t"))

	cells := make([]string, len(columns))
	for i := range rows {
		for j, col := range columns {
			cells[j] = truncate(col.Render(&rows[i]), width)
		}
		fmt.Fprintln(tw, strings.Join(cells, "\t"))
	}
	tw.Flush()

	fmt.Fprintf(w, "\nPage %d of %d (%d rows, %d total)\n", page, domain.PageCount(total, pageSize), len(rows), total)
}

func truncate(s string, width int) string {
	if utf8.RuneCountInString(s) <= width {
		return s
	}
	runes := []rune(s)
	return string(runes[:width-3]) + "..."
}
