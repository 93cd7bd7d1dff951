package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/kvarley/taskdeck/internal/domain"
)

// printJSON writes v as indented JSON to w.
func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// printTaskTable renders a compact table of tasks for text output.
func printTaskTable(w io.Writer, tasks []domain.Task) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTYPE\tSTATUS\tPRIORITY\tTITLE\tSUBTASKS")
	for i := range tasks {
		t := &tasks[i]
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%d/%d\n",
			t.ID, t.Type, t.Status, t.Priority, t.Title,
			completedSubtasks(t), len(t.Subtasks))
	}
	_ = tw.Flush()
}

// printTaskDetail renders a single task with its subtasks and links.
func printTaskDetail(w io.Writer, t domain.Task) {
	fmt.Fprintf(w, "Task %d: %s\n", t.ID, t.Title)
	fmt.Fprintf(w, "  type: %s  status: %s  priority: %s\n", t.Type, t.Status, t.Priority)
	fmt.Fprintf(w, "  assigned to: %d  by: %d  expires: %s\n",
		t.AssignedTo, t.AssignedBy, t.ExpiryDate.Format("2006-01-02"))
	for i := range t.Subtasks {
		st := &t.Subtasks[i]
		fmt.Fprintf(w, "  subtask %d [%s] %s\n", st.ID, st.Status, st.Title)
		for j := range st.Links {
			l := &st.Links[j]
			fmt.Fprintf(w, "    link %d [%s] %s (%ds)\n", l.ID, l.Status, l.DisplayURL, l.TimeRequired)
		}
	}
	if t.ClickerTask != nil {
		ct := t.ClickerTask
		fmt.Fprintf(w, "  clicker [%s] %s\n", ct.Status, ct.Title)
		for j := range ct.Links {
			l := &ct.Links[j]
			fmt.Fprintf(w, "    link %d [%s] %s (%ds)\n", l.ID, l.Status, l.DisplayURL, l.TimeRequired)
		}
	}
	m := t.Metrics
	fmt.Fprintf(w, "  views: %d (%d good, %d bad)  clicks: %d (%d good, %d bad)\n",
		m.TotalViews, m.GoodViews, m.BadViews, m.TotalClicks, m.GoodClicks, m.BadClicks)
}

func completedSubtasks(t *domain.Task) int {
	n := 0
	for i := range t.Subtasks {
		if t.Subtasks[i].Status == domain.SubtaskStatusCompleted {
			n++
		}
	}
	return n
}
