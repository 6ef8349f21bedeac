// Package display renders the per-file summary table shown after the
// plain-text report on interactive terminals.
package display

import (
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/vhhr7/tcreader/internal/domain/report"
	"github.com/vhhr7/tcreader/internal/types"
)

// Summary renders one table row per report entry. All entries in a
// batch share a kind, so the column set follows the first entry.
func Summary(entries []report.Entry) string {
	if len(entries) == 0 {
		return ""
	}

	var headers []string
	var rows [][]string
	if entries[0].Kind == types.KindAudio {
		headers = []string{"File", "Time Reference", "Sample Rate", "Start TC"}
		for _, e := range entries {
			rows = append(rows, []string{
				e.Name,
				strconv.FormatInt(e.TimeReference, 10),
				strconv.Itoa(e.SampleRate),
				e.StartTimecode,
			})
		}
	} else {
		headers = []string{"File", "Start TC", "End TC", "Duration TC"}
		for _, e := range entries {
			rows = append(rows, []string{e.Name, e.StartTimecode, e.EndTimecode, e.DurationTimecode})
		}
	}
	return renderTable(headers, rows)
}

func renderTable(headers []string, rows [][]string) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	header := make(table.Row, len(headers))
	for i, h := range headers {
		header[i] = h
	}
	tw.AppendHeader(header)

	for _, row := range rows {
		r := make(table.Row, len(row))
		for i, cell := range row {
			r[i] = cell
		}
		tw.AppendRow(r)
	}

	columnConfigs := make([]table.ColumnConfig, 0, len(headers))
	for i := range headers {
		align := text.AlignLeft
		if i > 0 {
			align = text.AlignRight
		}
		columnConfigs = append(columnConfigs, table.ColumnConfig{
			Number:      i + 1,
			Align:       align,
			AlignHeader: text.AlignLeft,
		})
	}
	tw.SetColumnConfigs(columnConfigs)

	return tw.Render()
}
