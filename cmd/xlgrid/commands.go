package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/ukaji3/xlgrid-go/pkg/xlgrid"
	"github.com/ukaji3/xlgrid-go/pkg/xlgrid/address"
	"github.com/ukaji3/xlgrid-go/pkg/xlgrid/convert"
	"github.com/ukaji3/xlgrid-go/pkg/xlgrid/models"
	"github.com/ukaji3/xlgrid-go/pkg/xlgrid/output"
)

func newExtractCmd() *cobra.Command {
	var (
		outputPath    string
		sheetsDir     string
		printAreasDir string
		rangeRef      string
	)

	cmd := &cobra.Command{
		Use:   "extract <input>",
		Short: "Write every sheet's non-empty cells as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			wb, err := openWorkbook(args[0])
			if err != nil {
				return err
			}

			data := wb.Snapshot()
			if rangeRef != "" {
				rng, err := address.ParseRange(rangeRef)
				if err != nil {
					return err
				}
				data = restrictToRange(data, rng)
			}

			jsonData, err := output.ToJSON(data, cfg.Pretty)
			if err != nil {
				return fmt.Errorf("serialization failed: %w", err)
			}

			if outputPath != "" {
				if err := os.WriteFile(outputPath, jsonData, 0644); err != nil {
					return fmt.Errorf("failed to write output: %w", err)
				}
			} else if sheetsDir == "" && printAreasDir == "" {
				fmt.Fprintln(cmd.OutOrStdout(), string(jsonData))
			}

			if sheetsDir != "" {
				if err := writeSheetFiles(data, sheetsDir); err != nil {
					return fmt.Errorf("failed to write sheet files: %w", err)
				}
			}

			if printAreasDir != "" {
				if err := writePrintAreaFiles(data, printAreasDir); err != nil {
					return fmt.Errorf("failed to write print area files: %w", err)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	cmd.Flags().StringVar(&sheetsDir, "sheets-dir", "", "Directory for per-sheet output files")
	cmd.Flags().StringVar(&printAreasDir, "print-areas-dir", "", "Directory for per-print-area output files")
	cmd.Flags().StringVar(&rangeRef, "range", "", "Only include cells inside this range, e.g. Sheet1!A1:D20")
	return cmd
}

func writeSheetFiles(wb *models.WorkbookData, dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	for i := range wb.Sheets {
		sheet := &wb.Sheets[i]
		jsonData, err := output.SheetToJSON(sheet, cfg.Pretty)
		if err != nil {
			return err
		}

		filename := filepath.Join(dir, sheet.Name+".json")
		if err := os.WriteFile(filename, jsonData, 0644); err != nil {
			return err
		}
	}
	return nil
}

// writePrintAreaFiles writes one file per print area, named
// <sheet>_area<N>.json, holding only the cells inside that area.
func writePrintAreaFiles(wb *models.WorkbookData, dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	for _, sheet := range wb.Sheets {
		for i, area := range sheet.PrintAreas {
			rng, err := address.ParseRange(area)
			if err != nil {
				return err
			}
			rng.Sheet = sheet.Name

			view := restrictToRange(wb, rng)
			jsonData, err := output.ToJSON(view, cfg.Pretty)
			if err != nil {
				return err
			}

			filename := filepath.Join(dir, fmt.Sprintf("%s_area%d.json", sheet.Name, i+1))
			if err := os.WriteFile(filename, jsonData, 0644); err != nil {
				return err
			}
		}
	}
	return nil
}

// restrictToRange keeps only the cells inside rng. A sheet-qualified range
// also drops every other sheet.
func restrictToRange(wb *models.WorkbookData, rng address.Range) *models.WorkbookData {
	out := &models.WorkbookData{BookName: wb.BookName, Names: wb.Names}
	for _, sheet := range wb.Sheets {
		if rng.Sheet != "" && !strings.EqualFold(rng.Sheet, sheet.Name) {
			continue
		}

		view := models.SheetData{Name: sheet.Name, Rows: sheet.Rows, Cols: sheet.Cols}
		for _, row := range sheet.Cells {
			kept := make(map[string]models.Value)
			for label, v := range row.C {
				col, err := address.ColumnNumber(label)
				if err == nil && rng.Contains(row.R, col) {
					kept[label] = v
				}
			}
			if len(kept) > 0 {
				view.Cells = append(view.Cells, models.CellRow{R: row.R, C: kept})
			}
		}
		view.TableCandidates = sheet.TableCandidates
		view.PrintAreas = sheet.PrintAreas
		out.Sheets = append(out.Sheets, view)
	}
	return out
}

func newSheetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sheets <input>",
		Short: "List sheets with their dimensions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			wb, err := openWorkbook(args[0])
			if err != nil {
				return err
			}
			for _, ws := range wb.Sheets() {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%dx%d\n", ws.Name(), ws.RowCount(), ws.ColumnCount())
			}
			return nil
		},
	}
}

// cellResult is the JSON shape printed by the cell command.
type cellResult struct {
	Sheet   string      `json:"sheet"`
	Address string      `json:"address"`
	Type    string      `json:"type"`
	Value   interface{} `json:"value"`
	Outcome string      `json:"outcome,omitempty"`
}

func newCellCmd() *cobra.Command {
	var (
		as      string
		onError string
	)

	cmd := &cobra.Command{
		Use:   "cell <input> <sheet> <address>",
		Short: "Print one cell, optionally converted",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			wb, err := openWorkbook(args[0])
			if err != nil {
				return err
			}
			ws, err := wb.Sheet(args[1])
			if err != nil {
				return err
			}
			c, err := ws.CellAt(args[2])
			if err != nil {
				return err
			}

			policy := cfg.Policy()
			if onError != "" {
				p, ok := convert.ParsePolicy(onError)
				if !ok {
					return fmt.Errorf("invalid --on-error %q (must be default, raise or null)", onError)
				}
				policy = p
			}

			result := cellResult{
				Sheet:   ws.Name(),
				Address: c.Address(),
				Type:    c.DataType().String(),
				Value:   c.Value(),
			}
			if as != "" {
				value, outcome, err := convertCell(c, as, policy)
				if err != nil {
					return err
				}
				result.Value = value
				result.Outcome = outcome.String()
			}

			jsonData, err := output.ValueToJSON(result, cfg.Pretty)
			if err != nil {
				return fmt.Errorf("serialization failed: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(jsonData))
			return nil
		},
	}

	cmd.Flags().StringVar(&as, "as", "", "Convert to: int, float, bool, time, text, decimal")
	cmd.Flags().StringVar(&onError, "on-error", "", "Failed conversion policy: default, raise, null")
	return cmd
}

// convertCell converts a cell to the named target. Absent results print as null.
func convertCell(c *xlgrid.Cell, as string, policy convert.Policy) (interface{}, convert.Outcome, error) {
	switch as {
	case "int":
		return present(convert.To[int64](c.Value(), policy))
	case "float":
		return present(convert.To[float64](c.Value(), policy))
	case "bool":
		return present(convert.To[bool](c.Value(), policy))
	case "time":
		return present(convert.To[time.Time](c.Value(), policy))
	case "text":
		return present(convert.To[string](c.Value(), policy))
	case "decimal":
		return present(convert.To[decimal.Decimal](c.Value(), policy))
	}
	return nil, convert.Absent, fmt.Errorf("invalid --as %q (must be int, float, bool, time, text or decimal)", as)
}

func present[T any](r convert.Result[T], err error) (interface{}, convert.Outcome, error) {
	if err != nil {
		return nil, r.Outcome, err
	}
	if v, ok := r.Get(); ok {
		return v, r.Outcome, nil
	}
	return nil, r.Outcome, nil
}

func newRangeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "range <input> <name-or-reference>",
		Short: "Print the values of a defined name or range as rows",
		Long: `range resolves a defined name such as "Totals", or a reference such as
"Data!B2:D9" (unqualified references use the first sheet), and prints the
values row by row as a JSON array.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			wb, err := openWorkbook(args[0])
			if err != nil {
				return err
			}
			rows, err := resolveRange(wb, args[1])
			if err != nil {
				return err
			}

			values := make([][]models.Value, len(rows))
			for i, row := range rows {
				values[i] = row.Values()
			}
			jsonData, err := output.ValueToJSON(values, cfg.Pretty)
			if err != nil {
				return fmt.Errorf("serialization failed: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(jsonData))
			return nil
		},
	}
}

func resolveRange(wb *xlgrid.Workbook, ref string) ([]xlgrid.Cells, error) {
	rows, err := wb.NamedRange(ref)
	if !errors.Is(err, xlgrid.ErrNameNotFound) {
		return rows, err
	}

	rng, err := address.ParseRange(ref)
	if err != nil {
		return nil, err
	}
	sheetName := rng.Sheet
	if sheetName == "" {
		names := wb.SheetNames()
		if len(names) == 0 {
			return nil, &xlgrid.SheetError{Name: "", Err: xlgrid.ErrSheetNotFound}
		}
		sheetName = names[0]
	}
	ws, err := wb.Sheet(sheetName)
	if err != nil {
		return nil, err
	}
	return ws.Range(ref)
}

func newDescribeCmd() *cobra.Command {
	var skipHeader bool

	cmd := &cobra.Command{
		Use:   "describe <input> <sheet> <column>",
		Short: "Summarize the numeric values of a column",
		Long: `describe scans a column (by label such as "C" or by number) and reports
count, sum, mean, median, min, max and standard deviation of its numeric cells.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			wb, err := openWorkbook(args[0])
			if err != nil {
				return err
			}
			ws, err := wb.Sheet(args[1])
			if err != nil {
				return err
			}
			col, err := parseColumn(args[2])
			if err != nil {
				return err
			}

			skip := 0
			if skipHeader {
				skip = 1
			}
			summary, err := ws.Summarize(col, skip)
			if err != nil {
				return err
			}

			jsonData, err := output.ValueToJSON(summary, cfg.Pretty)
			if err != nil {
				return fmt.Errorf("serialization failed: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(jsonData))
			return nil
		},
	}

	cmd.Flags().BoolVar(&skipHeader, "skip-header", false, "Ignore the first row")
	return cmd
}

func parseColumn(s string) (int, error) {
	if n, err := strconv.Atoi(s); err == nil {
		return n, nil
	}
	return address.ColumnNumber(s)
}

func newSetCmd() *cobra.Command {
	var outputPath string

	cmd := &cobra.Command{
		Use:   "set <input> <sheet> <address> <value>",
		Short: "Write a value into a cell and save the workbook as xlsx",
		Long: `set writes a value and saves every sheet's values to an xlsx file.
The value is stored as a number or TRUE/FALSE when it reads as one, else as text.
Only values are saved, so the input file is never overwritten: without -o the
result goes to <input>.out.xlsx next to it.`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			wb, err := openWorkbook(args[0])
			if err != nil {
				return err
			}
			ws, err := wb.Sheet(args[1])
			if err != nil {
				return err
			}
			c, err := ws.CellAt(args[2])
			if err != nil {
				return err
			}
			if err := c.SetValue(literal(args[3])); err != nil {
				return err
			}

			target := outputPath
			if target == "" {
				target = strings.TrimSuffix(args[0], filepath.Ext(args[0])) + ".out.xlsx"
			}
			if sameFile(target, args[0]) {
				return fmt.Errorf("refusing to overwrite input %s: choose another -o path", args[0])
			}
			if err := xlgrid.SaveAs(wb, target); err != nil {
				return fmt.Errorf("save failed: %w", err)
			}
			logger.Info("wrote %s!%s to %s", ws.Name(), c.Address(), target)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output xlsx path (default: <input>.out.xlsx)")
	return cmd
}

func sameFile(a, b string) bool {
	if sa, err := os.Stat(a); err == nil {
		if sb, err := os.Stat(b); err == nil {
			return os.SameFile(sa, sb)
		}
	}
	return filepath.Clean(a) == filepath.Clean(b)
}

// literal types a command-line value.
func literal(s string) models.Value {
	if s == "" {
		return models.Empty()
	}
	for _, kind := range []models.Kind{models.KindNumber, models.KindBool} {
		if r, err := convert.As(models.Text(s), kind, convert.RaiseOnError); err == nil {
			return r.Value
		}
	}
	return models.Text(s)
}
