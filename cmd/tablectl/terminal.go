package main

import (
	"os"

	"golang.org/x/term"
)

const minCellWidth = 8

// isInteractive true, если ввод идёт с терминала, а не из pipe
func isInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// cellWidth делит ширину терминала между колонками
func cellWidth(columns int) int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || columns == 0 {
		return maxCellWidth
	}
	w := width/columns - 2
	return max(minCellWidth, min(w, maxCellWidth))
}
