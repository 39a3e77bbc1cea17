// Package output holds the tool's console writers.
package output

import (
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
)

// Errorf prints a fatal tool error on stderr.
func Errorf(format string, args ...interface{}) {
	color.New(color.FgRed).Fprintf(os.Stderr, "ERROR: "+format+"\n", args...)
}

// UpstreamRow is one line of the upstreams listing: a ref and either its
// resolved upstream or the resolution error.
type UpstreamRow struct {
	Ref    string
	Remote string
	Branch string
	Err    error
}

// WriteUpstreams renders resolved upstreams as an aligned table.
func WriteUpstreams(w io.Writer, rows []UpstreamRow) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Ref", "Remote", "Upstream"})
	for _, row := range rows {
		if row.Err != nil {
			table.Append([]string{row.Ref, "-", row.Err.Error()})
			continue
		}
		table.Append([]string{row.Ref, row.Remote, row.Branch})
	}
	table.Render()
}
