package main

import (
	"encoding/json"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"
)

// Every human-readable report is a two-column label/value table. Fuse
// summaries count things, so their value column is right-aligned; vocab
// status lists paths and names, which read better left-aligned.
type reportRow struct {
	Label string
	Value string
}

func countTable(labelHeader, valueHeader string, rows []reportRow) string {
	return reportTable(labelHeader, valueHeader, rows, text.AlignRight)
}

func fieldTable(labelHeader, valueHeader string, rows []reportRow) string {
	return reportTable(labelHeader, valueHeader, rows, text.AlignLeft)
}

func reportTable(labelHeader, valueHeader string, rows []reportRow, valueAlign text.Align) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{labelHeader, valueHeader})
	for _, row := range rows {
		tw.AppendRow(table.Row{row.Label, row.Value})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
		{Number: 2, Align: valueAlign, AlignHeader: text.AlignLeft},
	})
	return tw.Render()
}

// writeJSON is the machine-readable counterpart for --json flags.
func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
