package table

import (
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

var twAlign = map[Align]tw.Align{
	AlignLeft:   tw.AlignLeft,
	AlignCenter: tw.AlignCenter,
	AlignRight:  tw.AlignRight,
}

// Render writes d as a bordered table.
func (d Data) Render(w io.Writer) error {
	var cfg tablewriter.Config
	if len(d.ColumnAlignment) > 0 {
		columns := make([]tw.Align, len(d.ColumnAlignment))
		for i, a := range d.ColumnAlignment {
			align, ok := twAlign[a]
			if !ok {
				align = tw.Skip
			}
			columns[i] = align
		}
		cfg.Header.Alignment = tw.CellAlignment{PerColumn: columns}
		cfg.Row.Alignment = tw.CellAlignment{PerColumn: columns}
	}

	t := tablewriter.NewTable(w, tablewriter.WithConfig(cfg))
	if len(d.Headers) > 0 {
		t.Header(cells(d.Headers)...)
	}
	for _, row := range d.Rows {
		if err := t.Append(cells(row)...); err != nil {
			return err
		}
	}
	return t.Render()
}

func cells(row []string) []any {
	out := make([]any, len(row))
	for i, c := range row {
		out[i] = c
	}
	return out
}
