package cmd

import (
	"fmt"
	"strings"

	"sheetmerge/core/config"
	"sheetmerge/core/logger"
	"sheetmerge/core/reconcile"
	"sheetmerge/core/table"
	"sheetmerge/core/xlsx"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for compare command
	compareLeft       string
	compareRight      string
	compareLeftSheet  string
	compareRightSheet string
	compareKey        string
	compareTrim       bool
	compareIgnoreCase bool
	compareDiffs      []string
	compareSorts      []string
	compareOut        string
)

// compareCmd reconciles two local workbooks into a result workbook.
var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Reconcile two xlsx tables by composite key",
	Long: `Reconcile two xlsx tables into matched, left-only, right-only and
duplicate buckets, then write a result workbook with one sheet per bucket.

Examples:
  # Compare on a single key column
  compare --left a.xlsx --right b.xlsx --key id --out result.xlsx

  # Composite key with normalization and a numeric diff column
  compare --left a.xlsx --right b.xlsx --key "region,sku" \
    --trim --ignore-case --diff "amount:amount:amount_diff" \
    --sort "region:asc" --out result.xlsx`,
	RunE: runCompare,
}

func init() {
	compareCmd.Flags().StringVar(&compareLeft, "left", "", "Left xlsx file (required)")
	compareCmd.Flags().StringVar(&compareRight, "right", "", "Right xlsx file (required)")
	compareCmd.Flags().StringVar(&compareLeftSheet, "left-sheet", "", "Left worksheet name (default: first sheet)")
	compareCmd.Flags().StringVar(&compareRightSheet, "right-sheet", "", "Right worksheet name (default: first sheet)")
	compareCmd.Flags().StringVar(&compareKey, "key", "", "Comma-separated key column names (required)")
	compareCmd.Flags().BoolVar(&compareTrim, "trim", false, "Trim surrounding whitespace from composite keys")
	compareCmd.Flags().BoolVar(&compareIgnoreCase, "ignore-case", false, "Compare composite keys case-insensitively")
	compareCmd.Flags().StringArrayVar(&compareDiffs, "diff", nil, "Diff column as left:right:label (repeatable)")
	compareCmd.Flags().StringArrayVar(&compareSorts, "sort", nil, "Result sort as column:asc|desc (repeatable, max 3)")
	compareCmd.Flags().StringVar(&compareOut, "out", "", "Output workbook path (required)")

	_ = compareCmd.MarkFlagRequired("left")
	_ = compareCmd.MarkFlagRequired("right")
	_ = compareCmd.MarkFlagRequired("key")
	_ = compareCmd.MarkFlagRequired("out")

	RootCmd.AddCommand(compareCmd)
}

func runCompare(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	left, err := xlsx.ReadFile(compareLeft, compareLeftSheet)
	if err != nil {
		return fmt.Errorf("left table: %w", err)
	}
	right, err := xlsx.ReadFile(compareRight, compareRightSheet)
	if err != nil {
		return fmt.Errorf("right table: %w", err)
	}

	keyNames := table.SplitKeyList(compareKey)
	if len(keyNames) == 0 {
		return table.ErrNoKeyColumns
	}
	leftKeys, err := left.KeyIndices(keyNames)
	if err != nil {
		return fmt.Errorf("left table: %w", err)
	}
	rightKeys, err := right.KeyIndices(keyNames)
	if err != nil {
		return fmt.Errorf("right table: %w", err)
	}

	diffs, err := parseDiffFlags(compareDiffs)
	if err != nil {
		return err
	}
	sorts, err := parseSortFlags(compareSorts)
	if err != nil {
		return err
	}

	opts := table.KeyOptions{Trim: compareTrim, CaseInsensitive: compareIgnoreCase}
	buckets, err := reconcile.Reconcile(left, right, leftKeys, rightKeys, opts)
	if err != nil {
		return err
	}
	result, err := reconcile.Unify(buckets, keyNames, diffs)
	if err != nil {
		return err
	}
	if len(sorts) > 0 {
		result = table.Sort(result, sorts)
	}

	for _, entry := range buckets.Log {
		if entry.Level == reconcile.LevelWarn {
			l.Warn(entry.Message)
		} else {
			l.Info(entry.Message)
		}
	}

	sheets := []xlsx.Sheet{
		{Name: "result", Table: result},
		{Name: "left_only", Table: buckets.LeftOnly},
		{Name: "right_only", Table: buckets.RightOnly},
		{Name: "duplicates", Table: buckets.Duplicates},
	}
	if err := xlsx.WriteFile(compareOut, sheets); err != nil {
		return err
	}

	l.Info("Result workbook written",
		zap.String("path", compareOut),
		zap.Int("result_rows", len(result.Rows)),
	)
	return nil
}

// parseDiffFlags parses repeated left:right:label diff definitions.
func parseDiffFlags(flags []string) ([]reconcile.DiffSpec, error) {
	specs := make([]reconcile.DiffSpec, 0, len(flags))
	for _, f := range flags {
		parts := strings.SplitN(f, ":", 3)
		if len(parts) != 3 || parts[0] == "" || parts[1] == "" || parts[2] == "" {
			return nil, fmt.Errorf("invalid --diff %q, expected left:right:label", f)
		}
		specs = append(specs, reconcile.DiffSpec{
			LeftColumn:  parts[0],
			RightColumn: parts[1],
			Label:       parts[2],
		})
	}
	return specs, nil
}

// parseSortFlags parses repeated column:direction sort definitions. The
// direction is optional and defaults to ascending.
func parseSortFlags(flags []string) ([]table.SortSpec, error) {
	specs := make([]table.SortSpec, 0, len(flags))
	for _, f := range flags {
		column := f
		dir := table.Asc
		if i := strings.LastIndex(f, ":"); i >= 0 {
			column = f[:i]
			switch f[i+1:] {
			case "asc", "":
				dir = table.Asc
			case "desc":
				dir = table.Desc
			default:
				return nil, fmt.Errorf("invalid --sort %q, expected column:asc|desc", f)
			}
		}
		if column == "" {
			return nil, fmt.Errorf("invalid --sort %q, expected column:asc|desc", f)
		}
		specs = append(specs, table.SortSpec{Column: column, Direction: dir})
	}
	return specs, nil
}
