package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// RequireBookAndChapter validates `show <book> <chapter> [verse]` arguments.
// Returns a helpful error message with usage and examples if missing or too many.
func RequireBookAndChapter(cmd *cobra.Command, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf(`requires at least 2 arg(s), only received %d

Usage: %s

Example:
  %s Genesis 1
  %s "1 John" 4 8`, len(args), cmd.UseLine(), cmd.CommandPath(), cmd.CommandPath())
	}
	if len(args) > 3 {
		return fmt.Errorf("accepts between 2 and 3 arg(s), received %d", len(args))
	}
	for _, a := range args[1:] {
		if n, err := strconv.Atoi(a); err != nil || n < 1 {
			return fmt.Errorf("invalid argument %q: chapter and verse must be integers >= 1", a)
		}
	}
	return nil
}
