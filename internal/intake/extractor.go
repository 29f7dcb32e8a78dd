// Package intake normalizes raw work item metadata into explicit domain
// values. All text mining happens here, once, at ingestion; the scheduling
// engine never re-inspects free text.
package intake

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/daneverett/homeslate/internal/domain"
	"github.com/google/uuid"
)

// RawItem is the unnormalized input: whatever the source (manual entry,
// LMS export) knows about the item. Optional fields are pointers so
// "absent" is explicit and resolved exactly once.
type RawItem struct {
	Title          string
	Description    string
	Subject        string
	Source         string
	Type           string
	DueDate        *time.Time
	DurationMin    *int
	PriorityHint   string
	DifficultyHint string
	PointValue     *int
	Portable       *bool
}

var (
	pointsRe = regexp.MustCompile(`(?i)\(?\b(\d+)\s*(?:points|pts)\b\)?`)

	typeKeywords = []struct {
		re       *regexp.Regexp
		itemType string
	}{
		{regexp.MustCompile(`(?i)\b(?:final|midterm|exam|test)\b`), "test"},
		{regexp.MustCompile(`(?i)\bquiz\b`), "quiz"},
		{regexp.MustCompile(`(?i)\bworksheet\b`), "worksheet"},
		{regexp.MustCompile(`(?i)\b(?:read|reading|chapter)\b`), "reading"},
		{regexp.MustCompile(`(?i)\b(?:essay|paper|report|project)\b`), "project"},
		{regexp.MustCompile(`(?i)\b(?:practice|drill|review)\b`), "practice"},
		{regexp.MustCompile(`(?i)\b(?:chore|clean|laundry|dishes)\b`), "chore"},
	}
)

// baseDurationMin maps item types to a default estimate in minutes,
// refined by difficulty.
var baseDurationMin = map[string]int{
	"test":       60,
	"quiz":       25,
	"worksheet":  30,
	"reading":    40,
	"project":    90,
	"practice":   20,
	"chore":      15,
	"assignment": 45,
	"review":     20,
	"task":       30,
}

// Normalize produces a WorkItem for the person from raw metadata,
// resolving every optional field via documented defaults. Missing data is
// never an error here.
func Normalize(personID string, raw RawItem, now time.Time) *domain.WorkItem {
	itemType := detectType(raw)
	difficulty := detectDifficulty(raw)

	item := &domain.WorkItem{
		ID:          uuid.New().String(),
		PersonID:    personID,
		Title:       strings.TrimSpace(raw.Title),
		Description: strings.TrimSpace(raw.Description),
		Subject:     strings.TrimSpace(raw.Subject),
		Type:        itemType,
		Source:      domain.CoalesceStr(raw.Source, "manual"),
		Status:      domain.WorkItemPending,
		Priority:    parseTierHint(raw.PriorityHint),
		Difficulty:  difficulty,
		DurationMin: domain.IntFromPtrWithDefault(estimateDuration(itemType, difficulty), raw.DurationMin),
		PointValue:  domain.IntFromPtrWithDefault(detectPoints(raw), raw.PointValue),
		DueDate:     raw.DueDate,
		Portable:    domain.BoolFromPtrWithDefault(defaultPortable(itemType), raw.Portable),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	return item
}

func detectType(raw RawItem) string {
	t := strings.ToLower(strings.TrimSpace(raw.Type))
	if domain.ValidWorkItemTypes[t] {
		return t
	}
	text := raw.Title + " " + raw.Description
	for _, k := range typeKeywords {
		if k.re.MatchString(text) {
			return k.itemType
		}
	}
	return "task"
}

func detectDifficulty(raw RawItem) domain.Difficulty {
	switch strings.ToLower(strings.TrimSpace(raw.DifficultyHint)) {
	case "easy":
		return domain.DifficultyEasy
	case "hard":
		return domain.DifficultyHard
	case "medium":
		return domain.DifficultyMedium
	}
	text := strings.ToLower(raw.Title + " " + raw.Description)
	switch {
	case strings.Contains(text, "honors") || strings.Contains(text, "advanced") || strings.Contains(text, "final"):
		return domain.DifficultyHard
	case strings.Contains(text, "intro") || strings.Contains(text, "basics"):
		return domain.DifficultyEasy
	default:
		return domain.DifficultyMedium
	}
}

// parseTierHint maps a source priority hint onto a tier. Unknown hints
// return the empty tier so the classifier derives one from the due date.
func parseTierHint(hint string) domain.PriorityTier {
	switch strings.ToLower(strings.TrimSpace(hint)) {
	case "critical", "urgent", "high":
		return domain.TierCritical
	case "important", "normal", "medium":
		return domain.TierImportant
	case "flexible", "low", "optional":
		return domain.TierFlexible
	default:
		return ""
	}
}

func estimateDuration(itemType string, difficulty domain.Difficulty) int {
	base, ok := baseDurationMin[itemType]
	if !ok {
		base = 30
	}
	switch difficulty {
	case domain.DifficultyEasy:
		return base * 3 / 4
	case domain.DifficultyHard:
		return base * 3 / 2
	default:
		return base
	}
}

func detectPoints(raw RawItem) int {
	m := pointsRe.FindStringSubmatch(raw.Title + " " + raw.Description)
	if m == nil {
		return 0
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	return n
}

// defaultPortable: chores and reading can move between slots and places;
// assessments and classroom work cannot.
func defaultPortable(itemType string) bool {
	switch itemType {
	case "chore", "reading", "practice", "review":
		return true
	default:
		return false
	}
}
