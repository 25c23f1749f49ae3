package main

import (
	"os"

	"github.com/plastinin/projectgrid/internal/client"
	"github.com/plastinin/projectgrid/internal/domain"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Fetch one page of projects",
	Example: `  tablectl list --page 2 --page-size 20
  tablectl list -f status=Open,Completed -f priority=high`,
	RunE: func(cmd *cobra.Command, args []string) error {
		page, _ := cmd.Flags().GetInt("page")
		pageSize := pageSizeFlag(cmd)
		filterFlags, _ := cmd.Flags().GetStringArray("filter")
		columnKeys, _ := cmd.Flags().GetStringSlice("columns")

		columns, err := selectColumns(columnKeys)
		if err != nil {
			return err
		}

		clauses := make([]domain.FilterClause, 0, len(filterFlags))
		for _, f := range filterFlags {
			clause, err := parseFilter(f)
			if err != nil {
				return err
			}
			clauses = append(clauses, clause)
		}

		req := client.BuildRequest(page, pageSize, clauses)
		log.Debug("Fetching page",
			zap.Int("page", req.Page),
			zap.Int("page_size", req.PageSize),
			zap.Any("filters", req.Filters),
		)

		resp, err := projectClient.FetchPage(cmd.Context(), req)
		if err != nil {
			return err
		}

		if jsonOutput {
			return printPageJSON(os.Stdout, resp)
		}
		printPageTable(os.Stdout, columns, resp.Data, req.Page, req.PageSize, resp.Total, cellWidth(len(columns)))
		return nil
	},
}

func init() {
	listCmd.Flags().Int("page", domain.DefaultPage, "page number (1-based)")
	listCmd.Flags().Int("page-size", 0, "rows per page (default $QUERY_DEFAULT_PAGE_SIZE)")
	listCmd.Flags().StringArrayP("filter", "f", nil, "filter as column=value[,value...] (repeatable)")
	listCmd.Flags().StringSlice("columns", nil, "columns to show (default all)")
}
