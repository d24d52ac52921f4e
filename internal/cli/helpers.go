// Package cli defines the cobra command tree.
package cli

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"

	"github.com/example/quorum/internal/ports/primary"
)

// parseID parses a positive numeric id argument.
func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", arg)
	}
	return id, nil
}

// parseIDs parses a list of id arguments.
func parseIDs(args []string) ([]int64, error) {
	ids := make([]int64, 0, len(args))
	for _, arg := range args {
		id, err := parseID(arg)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func okMark() string {
	return color.New(color.FgGreen).Sprint("✓")
}

// printBatchResult summarizes a partial-batch delete.
func printBatchResult(entity string, result *primary.BatchResult) {
	fmt.Printf("%s Deleted %d %s(s)\n", okMark(), result.Succeeded, entity)
	if result.Failed > 0 {
		fmt.Printf("%s %d failed:\n", color.New(color.FgYellow).Sprint("!"), result.Failed)
		for _, msg := range result.Errors {
			fmt.Printf("  %s\n", msg)
		}
	}
}
