package output

import (
	"fmt"
	"strings"

	"github.com/sornas/pizzagami/internal/store"
)

// RenderRunsTable renders exported analysis runs, one per row. Runs are
// expected pre-sorted by the store (newest first).
func RenderRunsTable(runs []*store.Run) string {
	if len(runs) == 0 {
		return "No exported runs found.\n"
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%-36s %-17s %-8s %-9s %-9s %s\n",
		"Run", "Created", "Stores", "Pizzas", "Coverage", "Menu Dir"))
	sb.WriteString(strings.Repeat("─", 100))
	sb.WriteString("\n")

	for _, run := range runs {
		sb.WriteString(fmt.Sprintf("%-36s %-17s %-8d %-9d %-8.1f%% %s\n",
			run.ID,
			run.CreatedAt.Format("2006-01-02 15:04"),
			run.Stores,
			run.DistinctPizzas,
			run.Coverage,
			run.MenuDir))
	}
	return sb.String()
}
