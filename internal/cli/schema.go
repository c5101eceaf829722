package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vvka-141/bibleload/internal/bookmap"
	"github.com/vvka-141/bibleload/internal/store"
)

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the bible_books and bible_verses DDL",
	Long: `Schema prints the DDL that 'bibleload load' expects. It is safe to apply
more than once.

Example:
  bibleload schema | psql -d bible`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := fmt.Fprint(cmd.OutOrStdout(), store.Schema)
		return err
	},
}

var bookmapCmd = &cobra.Command{
	Use:   "bookmap",
	Short: "Print the built-in book map",
	Long: `Bookmap prints the built-in 66-book map as JSON. Use it as a starting point
for a custom --book-map file.

Example:
  bibleload bookmap > book-map.json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := cmd.OutOrStdout().Write(bookmap.DefaultJSON())
		return err
	},
}

func init() {
	rootCmd.AddCommand(schemaCmd)
	rootCmd.AddCommand(bookmapCmd)
}
