package cli

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/vvka-141/bibleload/pkg/bibleload"
)

var rootCmd = &cobra.Command{
	Use:   "bibleload",
	Short: "Parse raw Bible text and load it into PostgreSQL",
	Long: `bibleload turns a plain-text Bible into normalized verse rows and loads them
into PostgreSQL.

  bibleload parse  raw text   -> rows (JSON Lines or CSV)
  bibleload load   rows       -> bible_books + bible_verses, in one transaction

Loading is an idempotent upsert: rerunning a load with the same rows leaves the
store unchanged. Any failure rolls the whole load back.

Settings are read from flags, then environment (.env and --env-file files are
loaded first), then an optional bibleload.yaml in the working directory.

Exit Codes:
  0  - Success
  1  - General error
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Invalid configuration, pattern, format or book map
  11 - Database connection failed
  12 - Empty or malformed row input
  13 - Unparsed lines in --strict mode
  14 - Book missing from the book map
  15 - Load failed and was rolled back`,
	SilenceUsage:      true,
	PersistentPreRunE: loadEnvFiles,
}

type rootFlagValues struct {
	verbose   bool
	envFiles  []string
	configDir string
}

var rootFlags rootFlagValues

// Execute runs the root command
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo(os.Stdout)
		return nil
	}
	return rootCmd.Execute()
}

func init() {
	// -h is reserved for --host
	rootCmd.PersistentFlags().Bool("help", false, "Help for bibleload")
	rootCmd.PersistentFlags().BoolVarP(&rootFlags.verbose, "verbose", "v", false, "Enable verbose output for all commands")
	rootCmd.PersistentFlags().StringArrayVar(&rootFlags.envFiles, "env-file", nil,
		"Load environment variables from a file before .env (can be specified multiple times)\n"+
			"Variables already set in the environment are never overridden")
	rootCmd.PersistentFlags().StringVar(&rootFlags.configDir, "config-dir", ".",
		"Directory containing bibleload.yaml")
}

// loadEnvFiles loads --env-file files, then .env. godotenv never overrides a
// variable that is already set, so earlier files win.
func loadEnvFiles(cmd *cobra.Command, args []string) error {
	if len(rootFlags.envFiles) > 0 {
		if err := godotenv.Load(rootFlags.envFiles...); err != nil {
			return fmt.Errorf("failed to load --env-file: %v: %w", err, bibleload.ErrInvalidConfig)
		}
	}
	_ = godotenv.Load()
	return nil
}

// getVerboseFlag returns the --verbose value
func getVerboseFlag() bool {
	return rootFlags.verbose
}
