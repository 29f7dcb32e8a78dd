package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daneverett/homeslate/internal/domain"
	"github.com/daneverett/homeslate/internal/intake"
	"github.com/daneverett/homeslate/internal/repository"
	"github.com/daneverett/homeslate/internal/testutil"
)

type itemFixture struct {
	items   repository.WorkItemRepo
	persons repository.PersonRepo
	svc     ItemService
	person  *domain.Person
}

func newItemFixture(t *testing.T) *itemFixture {
	t.Helper()
	database := testutil.NewTestDB(t)
	items := repository.NewSQLiteWorkItemRepo(database)
	persons := repository.NewSQLitePersonRepo(database)

	person := testutil.NewTestPerson("Maya")
	require.NoError(t, persons.Create(context.Background(), person))

	return &itemFixture{
		items:   items,
		persons: persons,
		svc:     NewItemService(items, persons),
		person:  person,
	}
}

func TestItemAdd_NormalizesThroughIntake(t *testing.T) {
	f := newItemFixture(t)

	item, err := f.svc.Add(context.Background(), f.person.ID, intake.RawItem{
		Title:   "  Unit 3 Quiz (50 points)  ",
		Subject: "Math",
	})
	require.NoError(t, err)

	assert.Equal(t, "Unit 3 Quiz (50 points)", item.Title)
	assert.Equal(t, "quiz", item.Type)
	assert.Equal(t, 50, item.PointValue)
	assert.Equal(t, domain.WorkItemPending, item.Status)

	stored, err := f.items.GetByID(context.Background(), item.ID)
	require.NoError(t, err)
	assert.Equal(t, item.Type, stored.Type)
}

func TestItemAdd_RequiresTitle(t *testing.T) {
	f := newItemFixture(t)

	_, err := f.svc.Add(context.Background(), f.person.ID, intake.RawItem{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "title")
}

func TestItemAdd_UnknownPerson(t *testing.T) {
	f := newItemFixture(t)

	_, err := f.svc.Add(context.Background(), "nope", intake.RawItem{Title: "Essay"})
	require.Error(t, err)
}

func TestItemDone_MarksTerminal(t *testing.T) {
	f := newItemFixture(t)
	ctx := context.Background()

	item := testutil.NewTestItem(f.person.ID, "Essay draft")
	require.NoError(t, f.items.Create(ctx, item))

	require.NoError(t, f.svc.Done(ctx, item.ID))

	stored, err := f.items.GetByID(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.WorkItemDone, stored.Status)

	require.Error(t, f.svc.Skip(ctx, item.ID), "done is terminal")
}

func TestItemSkip_ExcludesFromBacklog(t *testing.T) {
	f := newItemFixture(t)
	ctx := context.Background()

	keep := testutil.NewTestItem(f.person.ID, "Unit 1 Worksheet")
	skip := testutil.NewTestItem(f.person.ID, "Old reading")
	require.NoError(t, f.items.Create(ctx, keep))
	require.NoError(t, f.items.Create(ctx, skip))

	require.NoError(t, f.svc.Skip(ctx, skip.ID))

	backlog, err := f.svc.Backlog(ctx, f.person.ID)
	require.NoError(t, err)
	require.Len(t, backlog, 1)
	assert.Equal(t, keep.ID, backlog[0].Item.ID)
}

func TestItemBacklog_OrderedByTier(t *testing.T) {
	f := newItemFixture(t)
	ctx := context.Background()

	soon := time.Now().UTC().Add(20 * time.Hour)
	later := time.Now().UTC().Add(14 * 24 * time.Hour)

	flexible := testutil.NewTestItem(f.person.ID, "Reading log", testutil.WithDueDate(later))
	urgent := testutil.NewTestItem(f.person.ID, "Lab report", testutil.WithDueDate(soon))
	require.NoError(t, f.items.Create(ctx, flexible))
	require.NoError(t, f.items.Create(ctx, urgent))

	backlog, err := f.svc.Backlog(ctx, f.person.ID)
	require.NoError(t, err)
	require.Len(t, backlog, 2)
	assert.Equal(t, urgent.ID, backlog[0].Item.ID)
	assert.Equal(t, domain.TierCritical, backlog[0].Tier)
}

func TestItemRemove(t *testing.T) {
	f := newItemFixture(t)
	ctx := context.Background()

	item := testutil.NewTestItem(f.person.ID, "Essay draft")
	require.NoError(t, f.items.Create(ctx, item))
	require.NoError(t, f.svc.Remove(ctx, item.ID))

	_, err := f.items.GetByID(ctx, item.ID)
	require.Error(t, err)
}
