package main

import (
	"io"
	"log/slog"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/born-ml/ndarray/ndarray"
)

func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func formatValue(x float64) string {
	return strconv.FormatFloat(x, 'g', 7, 64)
}

// matrixRows formats each element for display. The first column holds the row index.
func matrixRows(m *ndarray.Matrix) [][]string {
	data := m.Array()
	rows := make([][]string, len(data))
	for i, row := range data {
		cells := make([]string, 0, len(row)+1)
		cells = append(cells, strconv.Itoa(i))
		for _, x := range row {
			cells = append(cells, formatValue(x))
		}
		rows[i] = cells
	}
	return rows
}

func columnHeader(cols int) []string {
	header := make([]string, 0, cols+1)
	header = append(header, "")
	for j := 0; j < cols; j++ {
		header = append(header, strconv.Itoa(j))
	}
	return header
}

func newTable(w io.Writer, header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetAlignment(tablewriter.ALIGN_RIGHT)
	table.SetAutoFormatHeaders(false)
	table.SetBorder(false)
	return table
}

func renderMatrix(w io.Writer, m *ndarray.Matrix) {
	table := newTable(w, columnHeader(m.Cols()))
	table.AppendBulk(matrixRows(m))
	table.Render()
}

func renderVector(w io.Writer, v *ndarray.Vector) {
	row := make([]string, 0, v.Len()+1)
	row = append(row, "0")
	for _, x := range v.Array() {
		row = append(row, formatValue(x))
	}
	table := newTable(w, columnHeader(v.Len()))
	table.Append(row)
	table.Render()
}
