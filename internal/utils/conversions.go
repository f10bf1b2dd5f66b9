package utils

import (
	"encoding/json"
	"fmt"
)

// ToStringRow converts a row of loosely typed sheet cells into strings.
// The Sheets values API formats cells as strings, but numeric cells can come
// back untyped depending on the render option. Numeric cells must arrive as
// json.Number; a float64 round trip would turn a long id cell into scientific
// notation and lose digits.
func ToStringRow(row []any) []string {
	stringRow := make([]string, 0, len(row))
	for _, v := range row {
		switch cell := v.(type) {
		case string:
			stringRow = append(stringRow, cell)
		case json.Number:
			stringRow = append(stringRow, cell.String())
		case nil:
			stringRow = append(stringRow, "")
		default:
			stringRow = append(stringRow, fmt.Sprint(cell))
		}
	}
	return stringRow
}
