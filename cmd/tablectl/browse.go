package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/plastinin/projectgrid/internal/table"
	"github.com/spf13/cobra"
)

const browseHelp = `Commands:
  n | next                 next page
  p | prev                 previous page
  page <n>                 go to page n
  size <n>                 set page size
  add                      add an empty filter row
  col <i> <column>         set the column of filter row i
  val <i> <text>           set the value of filter row i
  rm <i>                   remove filter row i
  clear                    remove all filter rows
  cols [i]                 list columns available to filter row i
  r | refresh              reload the current page
  h | help                 show this help
  q | quit                 exit`

var errQuit = errors.New("quit")

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Interactively page through and filter projects",
	RunE: func(cmd *cobra.Command, args []string) error {
		pageSize := pageSizeFlag(cmd)
		columnKeys, _ := cmd.Flags().GetStringSlice("columns")

		columns, err := selectColumns(columnKeys)
		if err != nil {
			return err
		}

		ctrl := table.NewController(projectClient, columns, pageSize, log)
		return runBrowse(cmd.Context(), ctrl, os.Stdin, os.Stdout, isInteractive())
	},
}

func init() {
	browseCmd.Flags().Int("page-size", 0, "rows per page (default $QUERY_DEFAULT_PAGE_SIZE)")
	browseCmd.Flags().StringSlice("columns", nil, "columns to show (default all)")
}

func runBrowse(ctx context.Context, ctrl *table.Controller, in io.Reader, out io.Writer, prompt bool) error {
	if err := ctrl.Refresh(ctx); err != nil {
		fmt.Fprintf(out, "Error: %v\n", err)
	}
	renderState(out, ctrl)

	scanner := bufio.NewScanner(in)
	for {
		if prompt {
			fmt.Fprint(out, "> ")
		}
		if !scanner.Scan() {
			return scanner.Err()
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		err := execBrowseCommand(ctx, ctrl, line, out)
		switch {
		case errors.Is(err, errQuit):
			return nil
		case err != nil:
			fmt.Fprintf(out, "Error: %v\n", err)
		}
	}
}

func execBrowseCommand(ctx context.Context, ctrl *table.Controller, line string, out io.Writer) error {
	name, rest, _ := strings.Cut(line, " ")
	rest = strings.TrimSpace(rest)

	var err error
	switch name {
	case "q", "quit", "exit":
		return errQuit
	case "h", "help", "?":
		fmt.Fprintln(out, browseHelp)
		return nil
	case "cols":
		return printAvailableColumns(ctrl, rest, out)
	case "n", "next":
		err = ctrl.NextPage(ctx)
	case "p", "prev":
		err = ctrl.PrevPage(ctx)
	case "r", "refresh":
		err = ctrl.Refresh(ctx)
	case "page":
		var n int
		if n, err = parseIntArg(rest, "page"); err == nil {
			err = ctrl.SetPage(ctx, n)
		}
	case "size":
		var n int
		if n, err = parseIntArg(rest, "size"); err == nil {
			err = ctrl.SetPageSize(ctx, n)
		}
	case "add":
		err = ctrl.AddFilter(ctx)
	case "col", "val":
		idxArg, value, _ := strings.Cut(rest, " ")
		var idx int
		if idx, err = parseIntArg(idxArg, "filter index"); err == nil {
			part := table.FilterColumn
			if name == "val" {
				part = table.FilterValue
			}
			err = ctrl.UpdateFilter(ctx, idx, part, strings.TrimSpace(value))
		}
	case "rm":
		var idx int
		if idx, err = parseIntArg(rest, "filter index"); err == nil {
			err = ctrl.RemoveFilter(ctx, idx)
		}
	case "clear":
		err = ctrl.ClearFilters(ctx)
	default:
		return fmt.Errorf("unknown command %q (type help)", name)
	}

	if err != nil {
		return err
	}
	renderState(out, ctrl)
	return nil
}

func renderState(out io.Writer, ctrl *table.Controller) {
	state := ctrl.Snapshot()

	if len(state.Filters) > 0 {
		fmt.Fprintln(out, "Filters:")
		for i, f := range state.Filters {
			column := f.Column
			if column == "" {
				column = "(none)"
			}
			fmt.Fprintf(out, "  [%d] %s = %q\n", i, column, f.Value)
		}
	}

	columns := ctrl.Columns()
	printPageTable(out, columns, state.Rows, state.Page, state.PageSize, state.Total, cellWidth(len(columns)))

	var nav []string
	if state.HasPrev {
		nav = append(nav, "p: prev")
	}
	if state.HasNext {
		nav = append(nav, "n: next")
	}
	if len(nav) > 0 {
		fmt.Fprintln(out, strings.Join(nav, "  "))
	}
}

func printAvailableColumns(ctrl *table.Controller, arg string, out io.Writer) error {
	idx := -1
	if arg != "" {
		n, err := parseIntArg(arg, "filter index")
		if err != nil {
			return err
		}
		idx = n
	}
	for _, col := range ctrl.AvailableColumns(idx) {
		fmt.Fprintf(out, "  %-12s %s\n", col.Key, col.Header)
	}
	return nil
}

func parseIntArg(s, name string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: expected an integer", name, s)
	}
	return n, nil
}
