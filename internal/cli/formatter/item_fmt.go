package formatter

import (
	"fmt"
	"strings"

	"github.com/daneverett/homeslate/internal/domain"
	"github.com/daneverett/homeslate/internal/scheduler"
)

// FormatItemAdded renders the confirmation for a freshly captured item,
// including everything intake inferred so it can be corrected if wrong.
func FormatItemAdded(item *domain.WorkItem) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s %s  %s\n",
		StyleGreen.Render("Added"),
		Bold(item.Title),
		TruncID(item.ID),
	))

	details := []string{
		fmt.Sprintf("type: %s", item.Type),
		fmt.Sprintf("est: %s", FormatMinutes(item.DurationMin)),
		fmt.Sprintf("difficulty: %s", item.Difficulty),
	}
	if item.Subject != "" {
		details = append([]string{fmt.Sprintf("subject: %s", item.Subject)}, details...)
	}
	if item.PointValue > 0 {
		details = append(details, fmt.Sprintf("points: %d", item.PointValue))
	}
	if item.Portable {
		details = append(details, "portable")
	}
	b.WriteString("  " + Dim(strings.Join(details, "  ")) + "\n")

	if item.DueDate != nil {
		b.WriteString(fmt.Sprintf("  %s %s\n", Dim("Due:"), item.DueDate.Format("Mon Jan 2")))
	}
	return b.String()
}

// FormatItemList renders all of a member's items grouped by status.
func FormatItemList(personName string, items []*domain.WorkItem) string {
	if len(items) == 0 {
		return Dim(fmt.Sprintf("No items for %s.", personName)) + "\n"
	}

	var b strings.Builder
	b.WriteString(Header(fmt.Sprintf("%s's items", personName)))
	b.WriteString("\n\n")

	for _, item := range items {
		line := fmt.Sprintf("%s  %s  %s  %s",
			TruncID(item.ID),
			StyleFg.Render(item.Title),
			StyleBlue.Render(fmt.Sprintf("(%s)", FormatMinutes(item.DurationMin))),
			StatusPill(item.Status),
		)
		b.WriteString(line + "\n")
		if item.Subject != "" || item.DueDate != nil {
			var meta []string
			if item.Subject != "" {
				meta = append(meta, item.Subject)
			}
			if item.DueDate != nil {
				meta = append(meta, "due "+item.DueDate.Format("Jan 2"))
			}
			b.WriteString("   " + Dim(strings.Join(meta, "  ")) + "\n")
		}
	}
	return b.String()
}

// FormatBacklog renders the schedulable backlog in the order the allocator
// will consume it.
func FormatBacklog(personName string, backlog []scheduler.ClassifiedItem) string {
	if len(backlog) == 0 {
		return Dim(fmt.Sprintf("Backlog for %s is empty.", personName)) + "\n"
	}

	var b strings.Builder
	b.WriteString(Header(fmt.Sprintf("%s's backlog", personName)))
	b.WriteString("\n\n")

	for i, ci := range backlog {
		b.WriteString(fmt.Sprintf("%s %s  %s  %s\n",
			Bold(fmt.Sprintf("%d.", i+1)),
			StyleFg.Render(ci.Item.Title),
			StyleBlue.Render(fmt.Sprintf("(%s)", FormatMinutes(ci.Item.DurationMin))),
			TierIndicator(ci.Tier),
		))
		if ci.Item.DueDate != nil {
			b.WriteString(fmt.Sprintf("   %s %s\n", Dim("Due:"), ci.Item.DueDate.Format("Mon Jan 2")))
		}
	}
	return b.String()
}
