package complaints

import (
	"fmt"
	"io"
	"text/tabwriter"
)

// Renderer describes the template renderer contract needed by the controller.
type Renderer interface {
	Render(name string, data any, out ...io.Writer) (string, error)
}

// WriteDashboard prints view as plain text: the counts, then every row in
// display order.
func WriteDashboard(w io.Writer, view DashboardView) error {
	if _, err := fmt.Fprintf(w, "Total: %d  Pending: %d  Active: %d  Resolved: %d\n\n",
		view.Total, view.Pending, view.Active, view.Resolved); err != nil {
		return err
	}
	if view.Empty() {
		_, err := fmt.Fprintln(w, EmptyStateMessage)
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tSUMMARY\tSTATUS")
	for _, row := range view.Full {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", row.ID, row.Title, row.Summary, row.Status.Badge())
	}
	return tw.Flush()
}
