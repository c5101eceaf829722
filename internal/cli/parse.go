package cli

import (
	"bytes"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vvka-141/bibleload/internal/checksum"
	"github.com/vvka-141/bibleload/internal/config"
	"github.com/vvka-141/bibleload/internal/extract"
	"github.com/vvka-141/bibleload/internal/logging"
	"github.com/vvka-141/bibleload/internal/rowio"
	"github.com/vvka-141/bibleload/internal/tui"
	"github.com/vvka-141/bibleload/pkg/bibleload"
)

var parseCmd = &cobra.Command{
	Use:   "parse --input <source.txt> --output <rows.jsonl|rows.csv>",
	Short: "Extract verse rows from raw Bible text",
	Long: `Parse reads a raw text source line by line and writes normalized verse rows.

Each non-empty line is matched against the line pattern. The default pattern
accepts lines such as:

  Genesis 1:1 In the beginning God created the heaven and the earth.
  1 John 4:8 He that loveth not knoweth not God; for God is love.

The pattern must define the named groups book, chapter, verse and text.
Lines starting with '#' are skipped unless --keep-comments is set. Lines that
do not match are counted and, with --print-errors, listed on stderr.

With --strict any unmatched line fails the run and no output is written.

Examples:
  # Default pattern, JSON Lines output
  bibleload parse --input kjv.txt --output build/kjv.jsonl

  # Pipe-delimited source (book|chapter|verse|text), CSV output
  bibleload parse --input kjv.psv --output kjv.csv --format csv --delimiter '|'

  # Custom pattern, fail on the first unmatched line
  bibleload parse --input web.txt --output web.jsonl --strict \
    --line-regex '^(?P<book>.+?) (?P<chapter>\d+):(?P<verse>\d+) (?P<text>.+)$'`,
	Args: cobra.NoArgs,
	RunE: runParse,
}

type parseFlagValues struct {
	input, output string
	format        string
	lineRegex     string
	delimiter     string
	strict        bool
	printErrors   bool
	keepComments  bool
}

var parseFlags parseFlagValues

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().StringVar(&parseFlags.input, "input", "", "Raw text source file")
	parseCmd.Flags().StringVar(&parseFlags.output, "output", "", "Output file; parent directories are created")
	parseCmd.Flags().StringVar(&parseFlags.format, "format", "",
		"Output format: jsonl|csv (default: bibleload.yaml parse.format, else jsonl)")
	parseCmd.Flags().StringVar(&parseFlags.lineRegex, "line-regex", "",
		"Line pattern with named groups book, chapter, verse and text")
	parseCmd.Flags().StringVar(&parseFlags.delimiter, "delimiter", "",
		"Split lines as book<SEP>chapter<SEP>verse<SEP>text instead of matching a pattern")
	parseCmd.Flags().BoolVar(&parseFlags.strict, "strict", false,
		"Fail when any line is left unparsed")
	parseCmd.Flags().BoolVar(&parseFlags.printErrors, "print-errors", false,
		"List unparsed lines on stderr")
	parseCmd.Flags().BoolVar(&parseFlags.keepComments, "keep-comments", false,
		"Treat '#' lines as content instead of skipping them")

	parseCmd.MarkFlagsMutuallyExclusive("line-regex", "delimiter")
	_ = parseCmd.MarkFlagRequired("input")
	_ = parseCmd.MarkFlagRequired("output")
}

// buildParseConfig merges flags with bibleload.yaml's parse section.
// Flags win; the yaml fills anything left empty.
func buildParseConfig(projectCfg *config.ProjectConfig) (bibleload.ParseConfig, error) {
	var yamlParse config.ParseConfig
	if projectCfg != nil {
		yamlParse = projectCfg.Parse
	}

	cfg := bibleload.ParseConfig{
		InputPath:    parseFlags.input,
		OutputPath:   parseFlags.output,
		Format:       firstSet(parseFlags.format, yamlParse.Format, string(rowio.FormatJSONL)),
		Strict:       parseFlags.strict,
		PrintErrors:  parseFlags.printErrors,
		SkipComments: true,
	}

	switch {
	case parseFlags.lineRegex != "":
		cfg.LinePattern = parseFlags.lineRegex
	case parseFlags.delimiter != "":
		cfg.Delimiter = parseFlags.delimiter
	case yamlParse.LineRegex != "":
		cfg.LinePattern = yamlParse.LineRegex
	case yamlParse.Delimiter != "":
		cfg.Delimiter = yamlParse.Delimiter
	default:
		cfg.LinePattern = bibleload.DefaultLinePattern
	}

	if parseFlags.keepComments {
		cfg.SkipComments = false
	} else if yamlParse.SkipComments != nil {
		cfg.SkipComments = *yamlParse.SkipComments
	}

	if err := cfg.Validate(); err != nil {
		return bibleload.ParseConfig{}, err
	}
	return cfg, nil
}

func buildRule(cfg bibleload.ParseConfig) (extract.Rule, error) {
	if cfg.Delimiter != "" {
		return extract.NewDelimitedRule(cfg.Delimiter)
	}
	return extract.NewRegexRule(cfg.LinePattern)
}

func runParse(cmd *cobra.Command, args []string) error {
	logger := logging.NewWriterLogger(cmd.ErrOrStderr(), getVerboseFlag())

	projectCfg, err := loadProjectConfig()
	if err != nil {
		return err
	}

	cfg, err := buildParseConfig(projectCfg)
	if err != nil {
		return err
	}

	format, err := rowio.ParseFormat(cfg.Format)
	if err != nil {
		return err
	}

	// The rule is compiled before the source is read so a bad pattern fails fast
	rule, err := buildRule(cfg)
	if err != nil {
		return err
	}

	source, err := fsProvider.ReadFile(cfg.InputPath)
	if err != nil {
		return fmt.Errorf("input file does not exist or is unreadable: %s: %w", cfg.InputPath, err)
	}
	calc := checksum.New()
	logger.Verbose("Read %d byte(s) from %s (sha256 %s)", len(source), cfg.InputPath, calc.CalculateRaw(source))

	result, err := extract.ExtractReader(bytes.NewReader(source), rule, extract.Options{SkipComments: cfg.SkipComments})
	if err != nil {
		return err
	}

	if cfg.PrintErrors {
		for _, u := range result.Unparsed {
			fmt.Fprintf(cmd.ErrOrStderr(), "Unparsed line %d: %s\n", u.LineNumber, u.Raw)
		}
	}

	if cfg.Strict {
		if err := extract.CheckStrict(result); err != nil {
			return err
		}
	}

	var out bytes.Buffer
	if err := rowio.Write(&out, format, result.Rows); err != nil {
		return fmt.Errorf("failed to encode rows: %w", err)
	}
	if err := fsProvider.WriteFile(cfg.OutputPath, out.Bytes()); err != nil {
		return fmt.Errorf("failed to write output '%s': %w", cfg.OutputPath, err)
	}

	logger.Verbose("Rows checksum: %s", calc.CalculateRows(result.Rows))

	printer := tui.NewPrinter(cmd.OutOrStdout())
	printer.Success("Parsed %d rows from %s. Skipped %d unparsed line(s). Output: %s",
		len(result.Rows), cfg.InputPath, len(result.Unparsed), cfg.OutputPath)
	if len(result.Unparsed) > 0 && !cfg.PrintErrors {
		logger.Verbose("Rerun with --print-errors to list unparsed lines")
	}

	return nil
}

// firstSet returns the first non-empty value.
func firstSet(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
