package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/daneverett/homeslate/internal/domain"
)

// FormatRoutine renders a member's weekly routine template, one section
// per weekday in week order.
func FormatRoutine(personName string, blocks []domain.RoutineBlock) string {
	if len(blocks) == 0 {
		return Dim(fmt.Sprintf("No routine for %s. Import one with: homeslate routine import <file>", personName)) + "\n"
	}

	byDay := make(map[domain.Weekday][]domain.RoutineBlock)
	for _, blk := range blocks {
		byDay[blk.Weekday] = append(byDay[blk.Weekday], blk)
	}

	var b strings.Builder
	b.WriteString(Header(fmt.Sprintf("%s's weekly routine", personName)))
	b.WriteString("\n")

	for _, day := range domain.WeekDays {
		dayBlocks := byDay[day]
		if len(dayBlocks) == 0 {
			continue
		}
		b.WriteString("\n" + Bold(string(day)) + "\n")
		for _, blk := range dayBlocks {
			label := blk.Label
			if label == "" {
				label = string(blk.Category)
			}
			ordinal := "  "
			if blk.SlotOrdinal != nil {
				ordinal = fmt.Sprintf("#%d", *blk.SlotOrdinal)
			}
			line := fmt.Sprintf("  %s %s-%s  %s",
				Dim(ordinal),
				blk.StartTime, blk.EndTime,
				categoryStyle(blk.Category).Render(label),
			)
			if blk.Subject != "" {
				line += "  " + Dim(blk.Subject)
			}
			b.WriteString(line + "\n")
		}
	}
	return b.String()
}

func categoryStyle(c domain.SlotCategory) lipgloss.Style {
	switch c {
	case domain.SlotFixed:
		return StyleDim
	case domain.SlotSubject:
		return StyleBlue
	default:
		return StyleGreen
	}
}
