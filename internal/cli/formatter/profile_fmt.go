package formatter

import (
	"fmt"
	"strings"

	"github.com/daneverett/homeslate/internal/domain"
)

// FormatProfile renders a member's capacity ceilings and allocator weights.
func FormatProfile(personName string, p *domain.CapacityProfile) string {
	var b strings.Builder

	b.WriteString(Header(fmt.Sprintf("%s's capacity profile", personName)))
	b.WriteString("\n\n")

	b.WriteString(fmt.Sprintf("%s %s\n", Dim("Daily max:"), Bold(FormatMinutes(p.DailyMaxMin))))
	b.WriteString(fmt.Sprintf("%s %s\n", Dim("Per-subject daily max:"), Bold(FormatMinutes(p.SubjectDailyMaxMin))))
	b.WriteString(fmt.Sprintf("%s %s\n", Dim("Distribution:"), StyleFg.Render(string(p.Distribution))))

	b.WriteString("\n" + Dim("Placement weights") + "\n")
	b.WriteString(weightLine("day stride", p.WeightDayStride))
	b.WriteString(weightLine("quick penalty", p.WeightQuickPenalty))
	b.WriteString(weightLine("flexible preference", p.WeightFlexiblePrefer))

	b.WriteString("\n" + Dim("Quick-win weights") + "\n")
	b.WriteString(weightLine("break between long", p.WeightBreakBetweenLong))
	b.WriteString(weightLine("gap fill", p.WeightGapFill))
	b.WriteString(weightLine("momentum builder", p.WeightMomentumBuilder))
	b.WriteString(weightLine("subject diversity", p.WeightSubjectDiversity))
	b.WriteString(weightLine("early week", p.WeightEarlyWeek))

	return b.String()
}

func weightLine(name string, value float64) string {
	return fmt.Sprintf("  %-22s %s\n", name, StyleBlue.Render(fmt.Sprintf("%g", value)))
}
