package console

import (
	"encoding/json"
	"fmt"

	"github.com/bnema/graph-presence-cli/internal/domain"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

const payloadColumnWidth = 48

type LogOptions struct {
	// Detail adds the redacted request and response payloads.
	Detail bool
}

// RenderLogs draws the API log, newest entry first as the logbook keeps it.
func RenderLogs(entries []domain.APILogEntry, opts LogOptions) string {
	if len(entries) == 0 {
		return fmt.Sprintf("%s %s\n", text.FgYellow.Sprint("○"), text.FgYellow.Sprint("No API calls logged yet"))
	}

	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.SetTitle(fmt.Sprintf("API log (%d)", len(entries)))

	header := table.Row{"Time", "Method", "Endpoint", "Status", "Duration"}
	if opts.Detail {
		header = append(header, "Request", "Response")
		t.SetColumnConfigs([]table.ColumnConfig{
			{Number: 6, WidthMax: payloadColumnWidth},
			{Number: 7, WidthMax: payloadColumnWidth},
		})
	}
	t.AppendHeader(header)

	for _, entry := range entries {
		row := table.Row{
			entry.Timestamp.Local().Format("15:04:05"),
			entry.Method,
			entry.Endpoint,
			statusCell(entry.Status),
			fmt.Sprintf("%dms", entry.DurationMillis()),
		}
		if opts.Detail {
			row = append(row, payloadCell(entry.Request), payloadCell(entry.Response))
		}
		t.AppendRow(row)
	}

	return t.Render() + "\n"
}

func statusCell(status domain.LogStatus) string {
	if status == domain.LogStatusSuccess {
		return text.FgGreen.Sprint(string(status))
	}
	return text.FgRed.Sprint(string(status))
}

// payloadCell prints an already-redacted payload as indented JSON.
func payloadCell(v any) string {
	if v == nil {
		return "-"
	}
	encoded, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return domain.RedactionMarker
	}
	return string(encoded)
}
