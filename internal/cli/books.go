package cli

import (
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/vvka-141/bibleload/internal/logging"
	"github.com/vvka-141/bibleload/internal/store"
	"github.com/vvka-141/bibleload/internal/tui"
	"github.com/vvka-141/bibleload/pkg/bibleload"
)

var booksCmd = &cobra.Command{
	Use:   "books",
	Short: "List stored books in canonical order",
	Long: `Books lists every stored book: old testament first, then by sort order.

Examples:
  bibleload books -h localhost -U reader -d bible
  bibleload books --connection postgresql://reader@localhost/bible`,
	Args: cobra.NoArgs,
	RunE: runBooks,
}

type readFlagValues struct {
	conn    connectionFlags
	timeout time.Duration
}

var booksFlags readFlagValues

func init() {
	rootCmd.AddCommand(booksCmd)

	booksCmd.Flags().DurationVar(&booksFlags.timeout, "timeout", bibleload.DefaultTimeout, "Upper bound for the whole command")
	registerConnectionFlags(booksCmd, &booksFlags.conn)
}

// bookTable renders books as table rows.
func bookTable(books []bibleload.BookRecord) [][]string {
	rows := make([][]string, 0, len(books))
	for _, b := range books {
		rows = append(rows, []string{
			strconv.Itoa(b.SortOrder),
			string(b.Testament),
			b.Name,
			b.DisplayName,
		})
	}
	return rows
}

func runBooks(cmd *cobra.Command, args []string) error {
	logger := logging.NewWriterLogger(cmd.ErrOrStderr(), getVerboseFlag())

	projectCfg, err := loadProjectConfig()
	if err != nil {
		return err
	}
	timeout, err := resolveEffectiveTimeout(cmd, projectCfg, booksFlags.timeout)
	if err != nil {
		return err
	}
	connConfig, err := resolveConnectionFromFlags(booksFlags.conn, projectCfg, logger)
	if err != nil {
		return err
	}

	ctx, cancel := runContext(timeout, cmd.ErrOrStderr())
	defer cancel()

	pool, closeStore, err := openStore(ctx, connConfig, logger)
	if err != nil {
		return err
	}
	defer closeStore()

	books, err := store.NewReader().Books(ctx, pool)
	if err != nil {
		return err
	}

	printer := tui.NewPrinter(cmd.OutOrStdout())
	if len(books) == 0 {
		printer.Warning("No books stored. Run 'bibleload load' first.")
		return nil
	}
	printer.Table([]string{"ORDER", "TESTAMENT", "NAME", "DISPLAY NAME"}, bookTable(books))
	return nil
}
