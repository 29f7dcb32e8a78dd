package importer

import (
	"time"

	"github.com/daneverett/homeslate/internal/domain"
	"github.com/daneverett/homeslate/internal/intake"
	"github.com/google/uuid"
)

// ConvertedRoutine is the domain view of a validated routine document.
type ConvertedRoutine struct {
	Blocks  []domain.RoutineBlock
	Profile *domain.CapacityProfile // nil when the document sets nothing
	Items   []*domain.WorkItem
}

// Convert transforms a validated schema into domain objects for the given
// person. Call ValidateSchema first; Convert assumes the schema is valid.
func Convert(schema *RoutineSchema, personID string, now time.Time) *ConvertedRoutine {
	out := &ConvertedRoutine{}

	for _, d := range schema.Days {
		day := domain.Weekday(d.Weekday)
		for _, b := range d.Blocks {
			out.Blocks = append(out.Blocks, domain.RoutineBlock{
				ID:          uuid.New().String(),
				PersonID:    personID,
				Weekday:     day,
				SlotOrdinal: b.Slot,
				Category:    domain.SlotCategory(b.Category),
				Subject:     b.Subject,
				Label:       b.Label,
				StartTime:   b.Start,
				EndTime:     b.End,
				CreatedAt:   now,
				UpdatedAt:   now,
			})
		}
	}

	if schema.Profile != nil {
		p := domain.DefaultCapacityProfile(personID)
		p.DailyMaxMin = domain.IntFromPtrWithDefault(p.DailyMaxMin, schema.Profile.DailyMaxMin)
		p.SubjectDailyMaxMin = domain.IntFromPtrWithDefault(p.SubjectDailyMaxMin, schema.Profile.SubjectDailyMaxMin)
		if schema.Profile.Distribution != nil {
			p.Distribution = domain.DistributionPreference(*schema.Profile.Distribution)
		}
		out.Profile = p
	}

	for _, it := range schema.Items {
		var due *time.Time
		if it.DueDate != "" {
			if t, err := time.Parse("2006-01-02", it.DueDate); err == nil {
				due = &t
			}
		}
		out.Items = append(out.Items, intake.Normalize(personID, intake.RawItem{
			Title:          it.Title,
			Description:    it.Description,
			Subject:        it.Subject,
			Type:           it.Type,
			Source:         domain.CoalesceStr(it.Source, "routine_import"),
			DueDate:        due,
			DurationMin:    it.DurationMin,
			PriorityHint:   it.PriorityHint,
			DifficultyHint: it.DifficultyHint,
			PointValue:     it.PointValue,
			Portable:       it.Portable,
		}, now))
	}

	return out
}
