package importer

import (
	"fmt"
	"time"

	"github.com/daneverett/homeslate/internal/domain"
)

var (
	validCategories    = map[string]bool{"fixed": true, "study": true, "subject": true}
	validDistributions = map[string]bool{"even": true, "front_loaded": true, "light_end": true}
)

// ValidateSchema checks the routine document before conversion, returning
// every validation error found rather than stopping at the first.
func ValidateSchema(schema *RoutineSchema) []error {
	var errs []error

	if schema.Person == "" {
		errs = append(errs, fmt.Errorf("person is required"))
	}
	if len(schema.Days) == 0 {
		errs = append(errs, fmt.Errorf("days: at least one weekday is required"))
	}

	errs = append(errs, validateProfile(schema.Profile)...)

	seenDays := make(map[string]bool)
	for i, d := range schema.Days {
		prefix := fmt.Sprintf("days[%d]", i)
		if _, err := domain.ParseWeekday(d.Weekday); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", prefix, err))
			continue
		}
		if seenDays[d.Weekday] {
			errs = append(errs, fmt.Errorf("%s: weekday %q appears more than once", prefix, d.Weekday))
		}
		seenDays[d.Weekday] = true
		errs = append(errs, validateBlocks(prefix, d.Blocks)...)
	}

	for i, it := range schema.Items {
		prefix := fmt.Sprintf("items[%d]", i)
		if it.Title == "" {
			errs = append(errs, fmt.Errorf("%s.title is required", prefix))
		}
		if it.DueDate != "" {
			if _, err := time.Parse("2006-01-02", it.DueDate); err != nil {
				errs = append(errs, fmt.Errorf("%s.due_date: invalid date %q (expected YYYY-MM-DD)", prefix, it.DueDate))
			}
		}
		if it.DurationMin != nil && *it.DurationMin <= 0 {
			errs = append(errs, fmt.Errorf("%s.duration_min must be positive", prefix))
		}
	}

	return errs
}

func validateProfile(p *ProfileImport) []error {
	if p == nil {
		return nil
	}
	var errs []error
	if p.DailyMaxMin != nil && *p.DailyMaxMin <= 0 {
		errs = append(errs, fmt.Errorf("profile.daily_max_min must be positive"))
	}
	if p.SubjectDailyMaxMin != nil && *p.SubjectDailyMaxMin <= 0 {
		errs = append(errs, fmt.Errorf("profile.subject_daily_max_min must be positive"))
	}
	if p.Distribution != nil && !validDistributions[*p.Distribution] {
		errs = append(errs, fmt.Errorf("profile.distribution: invalid value %q", *p.Distribution))
	}
	return errs
}

func validateBlocks(prefix string, blocks []BlockImport) []error {
	var errs []error
	seenSlots := make(map[int]bool)
	unnumbered := 0

	for i, b := range blocks {
		bp := fmt.Sprintf("%s.blocks[%d]", prefix, i)

		if !validCategories[b.Category] {
			errs = append(errs, fmt.Errorf("%s.category: invalid value %q", bp, b.Category))
		}

		start, startErr := domain.ParseClock(b.Start)
		if startErr != nil {
			errs = append(errs, fmt.Errorf("%s.start: %w", bp, startErr))
		}
		end, endErr := domain.ParseClock(b.End)
		if endErr != nil {
			errs = append(errs, fmt.Errorf("%s.end: %w", bp, endErr))
		}
		if startErr == nil && endErr == nil && end <= start {
			errs = append(errs, fmt.Errorf("%s: end %q is not after start %q", bp, b.End, b.Start))
		}

		if b.Slot != nil {
			if *b.Slot < 0 {
				errs = append(errs, fmt.Errorf("%s.slot must not be negative", bp))
			} else if seenSlots[*b.Slot] {
				errs = append(errs, fmt.Errorf("%s.slot %d is already used on this day", bp, *b.Slot))
			}
			seenSlots[*b.Slot] = true
		} else if b.Category != "fixed" {
			unnumbered++
		}
	}

	// The inventory builder can track at most one unnumbered placeable
	// block per day under the fallback ordinal.
	if unnumbered > 1 {
		errs = append(errs, fmt.Errorf("%s: at most one placeable block per day may omit slot", prefix))
	}
	return errs
}
