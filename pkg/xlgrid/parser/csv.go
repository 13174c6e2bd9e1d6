package parser

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/ukaji3/xlgrid-go/pkg/xlgrid/models"
)

// ReadCSV decodes delimited text into a single table named name. Ragged
// records are allowed; short rows are padded with empty values.
func ReadCSV(r io.Reader, name string, opts Options) (*models.Table, error) {
	reader := csv.NewReader(r)
	if opts.Comma != 0 {
		reader.Comma = opts.Comma
	}
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV %q: %w", name, err)
	}

	rows := make([][]models.Value, len(records))
	for i, record := range records {
		values := make([]models.Value, len(record))
		for j, field := range record {
			if field == "" {
				continue
			}
			if opts.InferTypes {
				values[j] = parseCSVField(field)
			} else {
				values[j] = models.Text(field)
			}
		}
		rows[i] = values
	}

	return models.TableFromRows(name, rows), nil
}

// parseCSVField types a field the way spreadsheet applications do on import:
// numbers and TRUE/FALSE literals; everything else stays text.
func parseCSVField(field string) models.Value {
	switch field {
	case "TRUE", "true", "True":
		return models.Bool(true)
	case "FALSE", "false", "False":
		return models.Bool(false)
	}
	return parseValue(field, field)
}
