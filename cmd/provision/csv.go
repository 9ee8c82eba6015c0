package main

import (
	"encoding/csv"
	"io"
	"strings"

	"github.com/pkg/errors"
)

// deviceRow is one line of an import file.
type deviceRow struct {
	Line       int
	Identifier string
	Secret     string
}

// parseDeviceCSV reads identifier,secret rows. A header row and blank or
// '#' lines are skipped. Format errors are reported with their line number.
func parseDeviceCSV(r io.Reader) ([]deviceRow, error) {
	reader := csv.NewReader(r)
	reader.Comment = '#'
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	var rows []deviceRow
	seen := make(map[string]int)
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to read CSV")
		}

		line, _ := reader.FieldPos(0)
		if len(record) < 2 {
			return nil, errors.Errorf("line %d: expected identifier,secret", line)
		}

		identifier := strings.TrimSpace(record[0])
		secret := strings.TrimSpace(record[1])
		if len(rows) == 0 && strings.EqualFold(identifier, "identifier") {
			continue
		}
		if first, ok := seen[identifier]; ok {
			return nil, errors.Errorf("line %d: %s already listed on line %d", line, identifier, first)
		}
		seen[identifier] = line

		rows = append(rows, deviceRow{Line: line, Identifier: identifier, Secret: secret})
	}

	return rows, nil
}
