package template

import (
	"fmt"
	"strings"

	"github.com/Freeeeeet/gymlog_bot/internal/format"
	"github.com/Freeeeeet/gymlog_bot/internal/session"
)

// FormatDraft текстовое представление черновика шаблона для редактора
func FormatDraft(draft *session.Draft) string {
	var sb strings.Builder

	name := draft.Name
	if name == "" {
		name = "Unnamed"
	}
	fmt.Fprintf(&sb, "Template %s", name)

	if len(draft.Exercises) == 0 {
		sb.WriteString("\nNo exercises yet.")
		return sb.String()
	}

	for idx, exercise := range draft.Exercises {
		fmt.Fprintf(&sb, "\n%d. %s\n", idx+1, exercise.Name)
		if len(exercise.Sets) == 0 {
			sb.WriteString("       (no sets).\n")
		}
		for setIdx, set := range exercise.Sets {
			fmt.Fprintf(&sb, "   - Set %d: %s x %d\n", setIdx+1, format.Weight(set.Weight), set.Reps)
		}
	}

	return strings.TrimRight(sb.String(), "\n")
}
