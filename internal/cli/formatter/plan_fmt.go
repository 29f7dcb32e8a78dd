package formatter

import (
	"fmt"
	"strings"

	"github.com/daneverett/homeslate/internal/app"
	"github.com/daneverett/homeslate/internal/domain"
)

// FormatPlan formats a PlanResponse into a styled weekly dashboard string.
func FormatPlan(personName string, resp *app.PlanResponse) string {
	var b strings.Builder

	if resp.DryRun {
		b.WriteString(StylePurple.Render("DRY RUN (nothing persisted)"))
		b.WriteString("\n\n")
	}

	b.WriteString(Header(fmt.Sprintf("Week plan for %s", personName)))
	b.WriteString("\n\n")

	if len(resp.Scheduled) == 0 {
		b.WriteString(Dim("Nothing placed.") + "\n")
	} else {
		b.WriteString(renderPlacementsByDay(resp.Scheduled, true))
	}

	// Summary line.
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf(
		"%s  %s  %s\n",
		StyleGreen.Render(fmt.Sprintf("Placed: %d of %d items", len(resp.Scheduled), resp.BacklogCount)),
		StyleDim.Render("|"),
		StyleDim.Render(fmt.Sprintf("Total: %s", FormatMinutes(resp.PlacedMin))),
	))

	if len(resp.Unscheduled) > 0 {
		b.WriteString("\n" + Header("Could not place") + "\n\n")
		for _, u := range resp.Unscheduled {
			b.WriteString(fmt.Sprintf("%s  %s  %s\n",
				StyleFg.Render(u.Title),
				StyleBlue.Render(fmt.Sprintf("(%s)", FormatMinutes(u.DurationMin))),
				StyleRed.Render(string(u.Code)),
			))
			b.WriteString("   " + Dim(u.Message) + "\n")
		}
	}

	if len(resp.Warnings) > 0 {
		b.WriteString("\n")
		for _, w := range resp.Warnings {
			b.WriteString(StyleYellow.Render(fmt.Sprintf("  WARNING: %s", w)) + "\n")
		}
	}

	return RenderBox("Schedule", b.String())
}

// FormatWeek formats the persisted placements for a member.
func FormatWeek(personName string, placements []app.Placement) string {
	if len(placements) == 0 {
		return Dim(fmt.Sprintf("No plan persisted for %s. Generate one with: homeslate plan run --person %s", personName, personName)) + "\n"
	}

	var b strings.Builder
	b.WriteString(Header(fmt.Sprintf("Week plan for %s", personName)))
	b.WriteString("\n\n")
	b.WriteString(renderPlacementsByDay(placements, false))
	return RenderBox("Schedule", b.String())
}

func renderPlacementsByDay(placements []app.Placement, withReasons bool) string {
	byDay := make(map[domain.Weekday][]app.Placement)
	for _, p := range placements {
		byDay[p.Weekday] = append(byDay[p.Weekday], p)
	}

	var b strings.Builder
	first := true
	for _, day := range domain.WeekDays {
		dayPlacements := byDay[day]
		if len(dayPlacements) == 0 {
			continue
		}
		if !first {
			b.WriteString("\n")
		}
		first = false

		total := 0
		for _, p := range dayPlacements {
			total += p.DurationMin
		}
		b.WriteString(fmt.Sprintf("%s %s\n", Bold(string(day)), Dim(fmt.Sprintf("(%s)", FormatMinutes(total)))))

		for _, p := range dayPlacements {
			slot := p.SlotLabel
			if slot == "" {
				slot = fmt.Sprintf("slot %d", p.SlotOrdinal)
			}
			line := fmt.Sprintf("  %s  %s  %s  %s",
				Dim(fmt.Sprintf("%s-%s", p.StartTime, p.EndTime)),
				StyleFg.Render(p.Title),
				StyleBlue.Render(fmt.Sprintf("(%s)", FormatMinutes(p.DurationMin))),
				TierIndicator(p.Priority),
			)
			b.WriteString(line + "\n")
			b.WriteString("     " + Dim(slot))
			if p.Subject != "" {
				b.WriteString("  " + Dim(p.Subject))
			}
			b.WriteString("\n")

			if withReasons {
				for _, reason := range p.Reasons {
					b.WriteString(fmt.Sprintf("     %s %s\n",
						StyleYellow.Render("REASON:"),
						Dim(reason.Message),
					))
				}
			}
		}
	}
	return b.String()
}
