package service

import (
	"context"
	"database/sql"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/daneverett/homeslate/internal/app"
	"github.com/daneverett/homeslate/internal/domain"
	"github.com/daneverett/homeslate/internal/guard"
	"github.com/daneverett/homeslate/internal/repository"
	"github.com/daneverett/homeslate/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type planFixture struct {
	db       *sql.DB
	persons  *repository.SQLitePersonRepo
	items    *repository.SQLiteWorkItemRepo
	routines *repository.SQLiteRoutineRepo
	profiles *repository.SQLiteCapacityProfileRepo
	plans    PlanService
	person   *domain.Person
}

var planNow = time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC) // a Monday

func newPlanFixture(t *testing.T) *planFixture {
	t.Helper()
	database := testutil.NewTestDB(t)

	f := &planFixture{
		db:       database,
		persons:  repository.NewSQLitePersonRepo(database),
		items:    repository.NewSQLiteWorkItemRepo(database),
		routines: repository.NewSQLiteRoutineRepo(database),
		profiles: repository.NewSQLiteCapacityProfileRepo(database),
	}
	f.plans = NewPlanService(f.persons, f.items, f.routines, f.profiles,
		testutil.NewTestUoW(database), guard.New())

	f.person = testutil.NewTestPerson("Maya")
	require.NoError(t, f.persons.Create(context.Background(), f.person))
	return f
}

func (f *planFixture) seedWeekRoutine(t *testing.T) {
	t.Helper()
	for _, day := range domain.WeekDays {
		b := testutil.NewTestBlock(f.person.ID, day, "15:00", "17:00", testutil.WithOrdinal(1))
		require.NoError(t, f.routines.Create(context.Background(), &b))
	}
}

func TestPlan_UnknownPerson(t *testing.T) {
	f := newPlanFixture(t)

	_, err := f.plans.Plan(context.Background(), app.PlanRequest{PersonID: "ghost"})
	var pe *app.PlanError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, app.PlanErrUnknownPerson, pe.Code)
}

func TestPlan_NoRoutine(t *testing.T) {
	f := newPlanFixture(t)
	require.NoError(t, f.items.Create(context.Background(), testutil.NewTestItem(f.person.ID, "Essay")))

	_, err := f.plans.Plan(context.Background(), app.PlanRequest{PersonID: f.person.ID})
	var pe *app.PlanError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, app.PlanErrNoRoutine, pe.Code)
}

func TestPlan_EmptyBacklog(t *testing.T) {
	f := newPlanFixture(t)
	f.seedWeekRoutine(t)

	_, err := f.plans.Plan(context.Background(), app.PlanRequest{PersonID: f.person.ID})
	var pe *app.PlanError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, app.PlanErrEmptyBacklog, pe.Code)
}

func TestPlan_MalformedRoutine(t *testing.T) {
	f := newPlanFixture(t)
	ctx := context.Background()
	bad := testutil.NewTestBlock(f.person.ID, domain.Monday, "17:00", "15:00", testutil.WithOrdinal(1))
	require.NoError(t, f.routines.Create(ctx, &bad))
	require.NoError(t, f.items.Create(ctx, testutil.NewTestItem(f.person.ID, "Essay")))

	_, err := f.plans.Plan(ctx, app.PlanRequest{PersonID: f.person.ID})
	var pe *app.PlanError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, app.PlanErrBadRoutine, pe.Code)
}

func TestPlan_PersistsPlacements(t *testing.T) {
	f := newPlanFixture(t)
	f.seedWeekRoutine(t)
	ctx := context.Background()

	item := testutil.NewTestItem(f.person.ID, "Unit 2 Worksheet",
		testutil.WithDuration(60), testutil.WithSubject("Math"),
		testutil.WithDueDate(planNow.AddDate(0, 0, 4)))
	require.NoError(t, f.items.Create(ctx, item))

	resp, err := f.plans.Plan(ctx, app.PlanRequest{PersonID: f.person.ID, Now: &planNow})
	require.NoError(t, err)
	require.Len(t, resp.Scheduled, 1)
	assert.Equal(t, 1, resp.BacklogCount)
	assert.Equal(t, 60, resp.PlacedMin)
	assert.Equal(t, domain.Monday, resp.Scheduled[0].Weekday)

	stored, err := f.items.GetByID(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.WorkItemScheduled, stored.Status)
	require.NotNil(t, stored.ScheduledDay)
	assert.Equal(t, domain.Monday, *stored.ScheduledDay)
	// the derived tier is written back with the placement
	assert.Equal(t, domain.TierImportant, stored.Priority)
}

func TestPlan_DryRunPersistsNothing(t *testing.T) {
	f := newPlanFixture(t)
	f.seedWeekRoutine(t)
	ctx := context.Background()

	item := testutil.NewTestItem(f.person.ID, "Essay", testutil.WithDuration(45))
	require.NoError(t, f.items.Create(ctx, item))

	resp, err := f.plans.Plan(ctx, app.PlanRequest{PersonID: f.person.ID, Now: &planNow, DryRun: true})
	require.NoError(t, err)
	assert.True(t, resp.DryRun)
	require.Len(t, resp.Scheduled, 1)

	stored, err := f.items.GetByID(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.WorkItemPending, stored.Status)
	assert.Nil(t, stored.ScheduledDay)
}

func TestPlan_ReplanIsAuthoritative(t *testing.T) {
	// A second run recomputes the whole week; an item done in between
	// frees its slot and the remaining backlog is placed from scratch.
	f := newPlanFixture(t)
	f.seedWeekRoutine(t)
	ctx := context.Background()

	first := testutil.NewTestItem(f.person.ID, "Unit 1 Worksheet", testutil.WithDuration(90), testutil.WithSubject("Math"))
	second := testutil.NewTestItem(f.person.ID, "Unit 2 Worksheet", testutil.WithDuration(90), testutil.WithSubject("Math"))
	require.NoError(t, f.items.Create(ctx, first))
	require.NoError(t, f.items.Create(ctx, second))

	_, err := f.plans.Plan(ctx, app.PlanRequest{PersonID: f.person.ID, Now: &planNow})
	require.NoError(t, err)

	// Finish the first item, then replan.
	stored, err := f.items.GetByID(ctx, first.ID)
	require.NoError(t, err)
	require.NoError(t, stored.MarkDone(planNow))
	require.NoError(t, f.items.Update(ctx, stored))

	resp, err := f.plans.Plan(ctx, app.PlanRequest{PersonID: f.person.ID, Now: &planNow})
	require.NoError(t, err)
	require.Len(t, resp.Scheduled, 1)
	assert.Equal(t, second.ID, resp.Scheduled[0].ItemID)
	// with the week recomputed from scratch the survivor moves up to Monday
	assert.Equal(t, domain.Monday, resp.Scheduled[0].Weekday)
}

func TestPlan_UnscheduledItemsClearedToPending(t *testing.T) {
	f := newPlanFixture(t)
	ctx := context.Background()
	b := testutil.NewTestBlock(f.person.ID, domain.Monday, "15:00", "16:00", testutil.WithOrdinal(1))
	require.NoError(t, f.routines.Create(ctx, &b))

	fits := testutil.NewTestItem(f.person.ID, "Essay", testutil.WithDuration(60))
	tooBig := testutil.NewTestItem(f.person.ID, "Science project", testutil.WithDuration(90))
	require.NoError(t, f.items.Create(ctx, fits))
	require.NoError(t, f.items.Create(ctx, tooBig))

	resp, err := f.plans.Plan(ctx, app.PlanRequest{PersonID: f.person.ID, Now: &planNow})
	require.NoError(t, err)
	require.Len(t, resp.Scheduled, 1)
	require.Len(t, resp.Unscheduled, 1)
	assert.Equal(t, app.UnplacedNoSlotFits, resp.Unscheduled[0].Code)

	stored, err := f.items.GetByID(ctx, tooBig.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.WorkItemPending, stored.Status)
	assert.Nil(t, stored.ScheduledDay)
}

func TestPlan_ProfileCapsApply(t *testing.T) {
	f := newPlanFixture(t)
	f.seedWeekRoutine(t)
	ctx := context.Background()

	profile := domain.DefaultCapacityProfile(f.person.ID)
	profile.DailyMaxMin = 600
	profile.SubjectDailyMaxMin = 60
	require.NoError(t, f.profiles.Upsert(ctx, profile))

	one := testutil.NewTestItem(f.person.ID, "Math set A", testutil.WithDuration(60), testutil.WithSubject("Math"))
	require.NoError(t, f.items.Create(ctx, one))
	// six 60m Math items cannot all fit under a 60m/day subject cap in a
	// five day week
	for _, title := range []string{"Math set B", "Math set C", "Math set D", "Math set E", "Math set F"} {
		require.NoError(t, f.items.Create(ctx, testutil.NewTestItem(f.person.ID, title,
			testutil.WithDuration(60), testutil.WithSubject("Math"))))
	}

	resp, err := f.plans.Plan(ctx, app.PlanRequest{PersonID: f.person.ID, Now: &planNow})
	require.NoError(t, err)
	assert.Len(t, resp.Scheduled, 5)
	require.Len(t, resp.Unscheduled, 1)
	assert.Equal(t, app.UnplacedSubjectCap, resp.Unscheduled[0].Code)
}

func TestPlan_ConcurrentRunsSerialized(t *testing.T) {
	f := newPlanFixture(t)
	f.seedWeekRoutine(t)
	ctx := context.Background()

	require.NoError(t, f.items.Create(ctx, testutil.NewTestItem(f.person.ID, "Essay", testutil.WithDuration(45))))

	const runs = 6
	var wg sync.WaitGroup
	errs := make([]error, runs)
	for i := 0; i < runs; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = f.plans.Plan(ctx, app.PlanRequest{PersonID: f.person.ID, Now: &planNow})
		}(i)
	}
	wg.Wait()

	for i := 0; i < runs; i++ {
		require.NoError(t, errs[i])
	}

	records, err := f.items.ListPlacements(ctx, f.person.ID)
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestPlan_PersistFailureRollsBack(t *testing.T) {
	f := newPlanFixture(t)
	f.seedWeekRoutine(t)
	ctx := context.Background()

	require.NoError(t, f.items.Create(ctx, testutil.NewTestItem(f.person.ID, "Essay", testutil.WithDuration(45))))
	item2 := testutil.NewTestItem(f.person.ID, "Reading", testutil.WithDuration(40))
	require.NoError(t, f.items.Create(ctx, item2))

	failing := &testutil.FailOnNthExecUoW{DB: f.db, FailOn: 2, Err: errors.New("disk full")}
	plans := NewPlanService(f.persons, f.items, f.routines, f.profiles, failing, guard.New())

	_, err := plans.Plan(ctx, app.PlanRequest{PersonID: f.person.ID, Now: &planNow})
	require.Error(t, err)

	// nothing from the failed run is visible
	records, listErr := f.items.ListPlacements(ctx, f.person.ID)
	require.NoError(t, listErr)
	assert.Empty(t, records)
}

func TestWeek_RendersPersistedPlacements(t *testing.T) {
	f := newPlanFixture(t)
	f.seedWeekRoutine(t)
	ctx := context.Background()

	require.NoError(t, f.items.Create(ctx, testutil.NewTestItem(f.person.ID, "Unit 1 Worksheet",
		testutil.WithDuration(90), testutil.WithSubject("Math"))))
	require.NoError(t, f.items.Create(ctx, testutil.NewTestItem(f.person.ID, "Unit 2 Worksheet",
		testutil.WithDuration(90), testutil.WithSubject("History"))))

	_, err := f.plans.Plan(ctx, app.PlanRequest{PersonID: f.person.ID, Now: &planNow})
	require.NoError(t, err)

	week, err := f.plans.Week(ctx, f.person.ID)
	require.NoError(t, err)
	require.Len(t, week, 2)

	assert.Equal(t, "Unit 1 Worksheet", week[0].Title)
	assert.Equal(t, "15:00", week[0].StartTime)
	assert.Equal(t, "17:00", week[0].EndTime)
	assert.LessOrEqual(t, week[0].Weekday.Ordinal(), week[1].Weekday.Ordinal())
}

func TestWeek_EmptyWhenNothingPersisted(t *testing.T) {
	f := newPlanFixture(t)

	week, err := f.plans.Week(context.Background(), f.person.ID)
	require.NoError(t, err)
	assert.Empty(t, week)
}
