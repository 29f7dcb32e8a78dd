package scheduler

import "github.com/daneverett/homeslate/internal/domain"

// CapacityLedger tracks per-day and per-(day, subject) placed minutes
// against the profile ceilings during a single run. It is seeded with any
// placements persisted by a previous run and updated as this run commits
// items, so cap checks always re-sum the full picture.
type CapacityLedger struct {
	dailyMax   int
	subjectMax int

	dayMin     map[domain.Weekday]int
	subjectMin map[domain.Weekday]map[string]int
}

// NewCapacityLedger creates a ledger from profile ceilings. A ceiling of
// zero or below means uncapped.
func NewCapacityLedger(profile *domain.CapacityProfile) *CapacityLedger {
	l := &CapacityLedger{
		dayMin:     make(map[domain.Weekday]int),
		subjectMin: make(map[domain.Weekday]map[string]int),
	}
	if profile != nil {
		l.dailyMax = profile.DailyMaxMin
		l.subjectMax = profile.SubjectDailyMaxMin
	}
	return l
}

// FitsDay reports whether durationMin more minutes fit under the daily cap.
func (l *CapacityLedger) FitsDay(day domain.Weekday, durationMin int) bool {
	if l.dailyMax <= 0 {
		return true
	}
	return l.dayMin[day]+durationMin <= l.dailyMax
}

// FitsSubject reports whether durationMin more minutes of the subject fit
// under the per-subject daily cap. Items without a subject are only bound
// by the daily cap.
func (l *CapacityLedger) FitsSubject(day domain.Weekday, subject string, durationMin int) bool {
	if l.subjectMax <= 0 || subject == "" {
		return true
	}
	return l.subjectMin[day][subject]+durationMin <= l.subjectMax
}

// Commit records durationMin placed minutes for the day and subject.
func (l *CapacityLedger) Commit(day domain.Weekday, subject string, durationMin int) {
	l.dayMin[day] += durationMin
	if subject != "" {
		if l.subjectMin[day] == nil {
			l.subjectMin[day] = make(map[string]int)
		}
		l.subjectMin[day][subject] += durationMin
	}
}

// DayTotal returns the committed minutes for a day.
func (l *CapacityLedger) DayTotal(day domain.Weekday) int {
	return l.dayMin[day]
}
