package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vvka-141/bibleload/internal/logging"
	"github.com/vvka-141/bibleload/internal/store"
	"github.com/vvka-141/bibleload/internal/tui"
	"github.com/vvka-141/bibleload/pkg/bibleload"
)

var showCmd = &cobra.Command{
	Use:   "show <book> <chapter> [verse]",
	Short: "Print a stored chapter or verse",
	Long: `Show prints one chapter, or one verse, as stored.

The book is matched against the stored name exactly as it appeared in the rows.

Examples:
  bibleload show Genesis 1 -d bible
  bibleload show "1 John" 4 8 -d bible`,
	Args: RequireBookAndChapter,
	RunE: runShow,
}

var showFlags readFlagValues

func init() {
	rootCmd.AddCommand(showCmd)

	showCmd.Flags().DurationVar(&showFlags.timeout, "timeout", bibleload.DefaultTimeout, "Upper bound for the whole command")
	registerConnectionFlags(showCmd, &showFlags.conn)
}

// showTarget is a parsed `show` reference. Verse is 0 for a whole chapter.
type showTarget struct {
	Book    string
	Chapter int
	Verse   int
}

func parseShowArgs(args []string) (showTarget, error) {
	target := showTarget{Book: args[0]}
	var err error
	if target.Chapter, err = strconv.Atoi(args[1]); err != nil {
		return target, fmt.Errorf("invalid argument %q: %w", args[1], err)
	}
	if len(args) == 3 {
		if target.Verse, err = strconv.Atoi(args[2]); err != nil {
			return target, fmt.Errorf("invalid argument %q: %w", args[2], err)
		}
	}
	return target, nil
}

func runShow(cmd *cobra.Command, args []string) error {
	target, err := parseShowArgs(args)
	if err != nil {
		return err
	}

	logger := logging.NewWriterLogger(cmd.ErrOrStderr(), getVerboseFlag())

	projectCfg, err := loadProjectConfig()
	if err != nil {
		return err
	}
	timeout, err := resolveEffectiveTimeout(cmd, projectCfg, showFlags.timeout)
	if err != nil {
		return err
	}
	connConfig, err := resolveConnectionFromFlags(showFlags.conn, projectCfg, logger)
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

	reader := store.NewReader()
	printer := tui.NewPrinter(cmd.OutOrStdout())

	if target.Verse > 0 {
		v, err := reader.Verse(ctx, pool, target.Book, target.Chapter, target.Verse)
		if err != nil {
			return err
		}
		printer.Verse(fmt.Sprintf("%s %d:%d", target.Book, v.Chapter, v.Verse), v.Text)
		return nil
	}

	verses, err := reader.Chapter(ctx, pool, target.Book, target.Chapter)
	if err != nil {
		return err
	}
	if len(verses) == 0 {
		return fmt.Errorf("%w: %s %d has no stored verses", bibleload.ErrVerseNotFound, target.Book, target.Chapter)
	}

	printer.Title(fmt.Sprintf("%s %d", target.Book, target.Chapter))
	for _, v := range verses {
		printer.Verse(strconv.Itoa(v.Verse), v.Text)
	}
	return nil
}
