package scheduler

import (
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/daneverett/homeslate/internal/domain"
	"github.com/daneverett/homeslate/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRun_Invariants property-tests the allocation invariants over random
// backlogs and routines: slots never overfill, caps are never exceeded, no
// item is placed twice, and every backlog item is accounted for.
func TestRun_Invariants(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	subjects := []string{"Math", "History", "Science", "Spanish", ""}
	now := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)

	for trial := 0; trial < 100; trial++ {
		dailyMax := rng.Intn(300) + 60   // 60-359
		subjectMax := rng.Intn(120) + 30 // 30-149

		profile := domain.DefaultCapacityProfile("p1")
		profile.DailyMaxMin = dailyMax
		profile.SubjectDailyMaxMin = subjectMax

		var blocks []domain.RoutineBlock
		for _, day := range domain.WeekDays {
			numSlots := rng.Intn(3) // 0-2 per day
			for s := 0; s < numSlots; s++ {
				startHour := 14 + 2*s
				lengthMin := (rng.Intn(4) + 1) * 30 // 30-120
				blocks = append(blocks, testutil.NewTestBlock("p1", day,
					fmt.Sprintf("%02d:00", startHour),
					fmt.Sprintf("%02d:%02d", startHour+lengthMin/60, lengthMin%60),
					testutil.WithOrdinal(s+1)))
			}
		}

		numItems := rng.Intn(12) + 1
		items := make([]*domain.WorkItem, 0, numItems)
		for i := 0; i < numItems; i++ {
			opts := []testutil.ItemOption{
				testutil.WithDuration(rng.Intn(90) + 5),
				testutil.WithSubject(subjects[rng.Intn(len(subjects))]),
			}
			if rng.Intn(2) == 0 {
				opts = append(opts, testutil.WithDueDate(now.AddDate(0, 0, rng.Intn(14))))
			}
			items = append(items, testutil.NewTestItem("p1", fmt.Sprintf("Task %d", i), opts...))
		}

		in := RunInput{
			Items:   items,
			Blocks:  blocks,
			Profile: profile,
			Weights: DefaultWeights(),
			Now:     now,
		}

		res, err := Run(in)
		require.NoError(t, err, "trial %d", trial)

		// Invariant: scheduled + unscheduled covers the backlog exactly once.
		seen := make(map[string]int)
		for _, p := range res.Scheduled {
			seen[p.ItemID]++
		}
		for _, u := range res.Unscheduled {
			seen[u.ItemID]++
		}
		assert.Len(t, seen, numItems, "trial %d: every item accounted for", trial)
		for id, n := range seen {
			assert.Equal(t, 1, n, "trial %d: item %s appears once", trial, id)
		}

		// Invariant: per-slot placed minutes never exceed slot duration.
		slotMin := make(map[string]int)
		slotCap := make(map[string]int)
		for _, b := range blocks {
			key := string(b.Weekday) + "/" + fmt.Sprint(*b.SlotOrdinal)
			start, _ := domain.ParseClock(b.StartTime)
			end, _ := domain.ParseClock(b.EndTime)
			slotCap[key] = end - start
		}
		for _, p := range res.Scheduled {
			key := string(p.Weekday) + "/" + fmt.Sprint(p.SlotOrdinal)
			slotMin[key] += p.DurationMin
		}
		for key, used := range slotMin {
			assert.LessOrEqual(t, used, slotCap[key], "trial %d: slot %s overfilled", trial, key)
		}

		// Invariant: daily and per-subject caps hold.
		dayMin := make(map[domain.Weekday]int)
		subjMin := make(map[string]int)
		for _, p := range res.Scheduled {
			dayMin[p.Weekday] += p.DurationMin
			if p.Subject != "" {
				subjMin[string(p.Weekday)+"/"+p.Subject] += p.DurationMin
			}
		}
		for day, used := range dayMin {
			assert.LessOrEqual(t, used, dailyMax, "trial %d: daily cap on %s", trial, day)
		}
		for key, used := range subjMin {
			assert.LessOrEqual(t, used, subjectMax, "trial %d: subject cap for %s", trial, key)
		}

		// Invariant: every unscheduled item names a reason.
		for _, u := range res.Unscheduled {
			assert.NotEmpty(t, u.Code, "trial %d", trial)
			assert.NotEmpty(t, u.Message, "trial %d", trial)
		}
	}
}

// TestRun_Deterministic verifies that identical input yields an identical
// plan. The engine has no hidden state or randomness.
func TestRun_Deterministic(t *testing.T) {
	now := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)
	profile := domain.DefaultCapacityProfile("p1")

	var blocks []domain.RoutineBlock
	for _, day := range domain.WeekDays {
		blocks = append(blocks, testutil.NewTestBlock("p1", day, "15:00", "17:00", testutil.WithOrdinal(1)))
	}

	items := []*domain.WorkItem{
		testutil.NewTestItem("p1", "Unit 1 Reading", testutil.WithDuration(40), testutil.WithSubject("History")),
		testutil.NewTestItem("p1", "Unit 2 Reading", testutil.WithDuration(40), testutil.WithSubject("History")),
		testutil.NewTestItem("p1", "Flashcards", testutil.WithDuration(10), testutil.WithSubject("Spanish")),
		testutil.NewTestItem("p1", "Math problem set", testutil.WithDuration(55), testutil.WithSubject("Math")),
	}

	in := RunInput{Items: items, Blocks: blocks, Profile: profile, Weights: DefaultWeights(), Now: now}

	first, err := Run(in)
	require.NoError(t, err)
	second, err := Run(in)
	require.NoError(t, err)

	require.Equal(t, len(first.Scheduled), len(second.Scheduled))
	for i := range first.Scheduled {
		assert.Equal(t, first.Scheduled[i].ItemID, second.Scheduled[i].ItemID)
		assert.Equal(t, first.Scheduled[i].Weekday, second.Scheduled[i].Weekday)
		assert.Equal(t, first.Scheduled[i].SlotOrdinal, second.Scheduled[i].SlotOrdinal)
	}
	assert.Equal(t, first.Warnings, second.Warnings)
}
