package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/olgasafonova/wikilookup-mcp-server/internal/lookup"
)

const columnGap = "  "

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// writeTable prints v as rows of aligned columns. v is a sheet value: a list
// whose elements are scalars or rows, or an ordered map from --object.
func writeTable(w io.Writer, v any) error {
	rows := tableRows(v)
	if len(rows) == 0 {
		return nil
	}

	var widths []int
	for _, row := range rows {
		for i, cell := range row {
			if i == len(widths) {
				widths = append(widths, 0)
			}
			widths[i] = max(widths[i], runewidth.StringWidth(cell))
		}
	}

	var b strings.Builder
	for _, row := range rows {
		b.Reset()
		for i, cell := range row {
			if i > 0 {
				b.WriteString(columnGap)
			}
			if i < len(row)-1 {
				cell = runewidth.FillRight(cell, widths[i])
			}
			b.WriteString(cell)
		}
		b.WriteByte('\n')
		if _, err := io.WriteString(w, b.String()); err != nil {
			return err
		}
	}
	return nil
}

func tableRows(v any) [][]string {
	var rows [][]string
	switch v := v.(type) {
	case []any:
		for _, el := range v {
			if row, ok := el.([]any); ok {
				cells := make([]string, len(row))
				for i, cell := range row {
					cells[i] = formatCell(cell)
				}
				rows = append(rows, cells)
			} else {
				rows = append(rows, []string{formatCell(el)})
			}
		}
	case *lookup.OrderedMap[string]:
		for lang, title := range v.All() {
			rows = append(rows, []string{lang, title})
		}
	case *lookup.OrderedMap[[]string]:
		for lang, titles := range v.All() {
			rows = append(rows, append([]string{lang}, titles...))
		}
	default:
		rows = append(rows, []string{formatCell(v)})
	}
	return rows
}

func formatCell(v any) string {
	switch v := v.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}
