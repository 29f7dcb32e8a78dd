package scheduler

import (
	"testing"

	"github.com/daneverett/homeslate/internal/domain"
	"github.com/daneverett/homeslate/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullWeekBlocks(personID string) []domain.RoutineBlock {
	var blocks []domain.RoutineBlock
	for _, day := range domain.WeekDays {
		blocks = append(blocks,
			testutil.NewTestBlock(personID, day, "15:00", "16:00", testutil.WithOrdinal(1)),
			testutil.NewTestBlock(personID, day, "17:00", "18:00", testutil.WithOrdinal(2)),
		)
	}
	return blocks
}

func TestRun_HeavyThenQuick(t *testing.T) {
	in := RunInput{
		Items: []*domain.WorkItem{
			testutil.NewTestItem("p1", "Flashcards", testutil.WithDuration(10), testutil.WithSubject("Spanish")),
			testutil.NewTestItem("p1", "Unit 2 Worksheet", testutil.WithDuration(60), testutil.WithSubject("Math")),
		},
		Blocks:  fullWeekBlocks("p1"),
		Profile: domain.DefaultCapacityProfile("p1"),
		Weights: DefaultWeights(),
		Now:     classifyNow,
	}

	res, err := Run(in)
	require.NoError(t, err)
	require.Len(t, res.Scheduled, 2)
	require.Empty(t, res.Unscheduled)

	// Heavy pass output comes first regardless of backlog order.
	assert.Equal(t, "Unit 2 Worksheet", res.Scheduled[0].Title)
	assert.Equal(t, "Flashcards", res.Scheduled[1].Title)
}

func TestRun_MalformedRoutineFails(t *testing.T) {
	in := RunInput{
		Items:   []*domain.WorkItem{testutil.NewTestItem("p1", "Essay")},
		Blocks:  []domain.RoutineBlock{testutil.NewTestBlock("p1", domain.Monday, "16:00", "15:00", testutil.WithOrdinal(1))},
		Weights: DefaultWeights(),
		Now:     classifyNow,
	}

	_, err := Run(in)
	require.Error(t, err)
}

func TestRun_WarnsOnDaysWithoutSlots(t *testing.T) {
	in := RunInput{
		Items: []*domain.WorkItem{
			testutil.NewTestItem("p1", "Essay", testutil.WithDuration(30)),
		},
		Blocks: []domain.RoutineBlock{
			testutil.NewTestBlock("p1", domain.Monday, "15:00", "16:00", testutil.WithOrdinal(1)),
		},
		Weights: DefaultWeights(),
		Now:     classifyNow,
	}

	res, err := Run(in)
	require.NoError(t, err)
	assert.Contains(t, res.Warnings, "tuesday has no placeable slots")
	assert.Contains(t, res.Warnings, "friday has no placeable slots")
}

func TestRun_WarnsWhenBacklogExceedsWeekCapacity(t *testing.T) {
	in := RunInput{
		Items: []*domain.WorkItem{
			testutil.NewTestItem("p1", "Giant project", testutil.WithDuration(600)),
		},
		Blocks: []domain.RoutineBlock{
			testutil.NewTestBlock("p1", domain.Monday, "15:00", "16:00", testutil.WithOrdinal(1)),
		},
		Weights: DefaultWeights(),
		Now:     classifyNow,
	}

	res, err := Run(in)
	require.NoError(t, err)

	foundCapacity := false
	foundManual := false
	for _, w := range res.Warnings {
		if w == "backlog (600m) exceeds the week's total placeable capacity (60m)" {
			foundCapacity = true
		}
		if w == "1 item(s) could not be scheduled and need manual placement" {
			foundManual = true
		}
	}
	assert.True(t, foundCapacity)
	assert.True(t, foundManual)
}

func TestRun_PriorPlacementsReduceCapacity(t *testing.T) {
	in := RunInput{
		Items: []*domain.WorkItem{
			testutil.NewTestItem("p1", "Essay", testutil.WithDuration(45)),
		},
		Blocks: []domain.RoutineBlock{
			testutil.NewTestBlock("p1", domain.Monday, "15:00", "16:00", testutil.WithOrdinal(1)),
			testutil.NewTestBlock("p1", domain.Tuesday, "15:00", "16:00", testutil.WithOrdinal(1)),
		},
		Placed: []PlacedDuration{
			{Weekday: domain.Monday, SlotOrdinal: 1, Subject: "History", DurationMin: 30},
		},
		Weights: DefaultWeights(),
		Now:     classifyNow,
	}

	res, err := Run(in)
	require.NoError(t, err)
	require.Len(t, res.Scheduled, 1)
	// Monday slot only has 30m left, so the essay lands on Tuesday.
	assert.Equal(t, domain.Tuesday, res.Scheduled[0].Weekday)
}

func TestRun_WarnsOnStalePlacement(t *testing.T) {
	in := RunInput{
		Items: []*domain.WorkItem{
			testutil.NewTestItem("p1", "Essay", testutil.WithDuration(45)),
		},
		Blocks: []domain.RoutineBlock{
			testutil.NewTestBlock("p1", domain.Monday, "15:00", "16:00", testutil.WithOrdinal(1)),
		},
		Placed: []PlacedDuration{
			{Weekday: domain.Friday, SlotOrdinal: 3, Subject: "History", DurationMin: 30},
		},
		Weights: DefaultWeights(),
		Now:     classifyNow,
	}

	res, err := Run(in)
	require.NoError(t, err)
	// The stale record must not eat capacity anywhere.
	require.Len(t, res.Scheduled, 1)
	assert.Equal(t, domain.Monday, res.Scheduled[0].Weekday)
	assert.Contains(t, res.Warnings,
		"an existing placement on friday slot 3 references a block the routine no longer has; its capacity was not reserved")
}
