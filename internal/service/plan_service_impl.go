package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/daneverett/homeslate/internal/app"
	"github.com/daneverett/homeslate/internal/db"
	"github.com/daneverett/homeslate/internal/domain"
	"github.com/daneverett/homeslate/internal/guard"
	"github.com/daneverett/homeslate/internal/repository"
	"github.com/daneverett/homeslate/internal/scheduler"
)

type planService struct {
	persons  repository.PersonRepo
	items    repository.WorkItemRepo
	routines repository.RoutineRepo
	profiles repository.CapacityProfileRepo
	uow      db.UnitOfWork
	guard    *guard.Guard
	observer UseCaseObserver
}

func NewPlanService(
	persons repository.PersonRepo,
	items repository.WorkItemRepo,
	routines repository.RoutineRepo,
	profiles repository.CapacityProfileRepo,
	uow db.UnitOfWork,
	g *guard.Guard,
	observers ...UseCaseObserver,
) PlanService {
	return &planService{
		persons:  persons,
		items:    items,
		routines: routines,
		profiles: profiles,
		uow:      uow,
		guard:    g,
		observer: useCaseObserverOrNoop(observers),
	}
}

// Plan executes one guarded scheduling run for the person's week and, unless
// DryRun is set, persists the resulting placements. The guard is held until
// the write commits so a concurrent run cannot see half-updated slot state.
func (s *planService) Plan(ctx context.Context, req app.PlanRequest) (*app.PlanResponse, error) {
	started := time.Now()
	resp, err := s.plan(ctx, req)
	fields := map[string]any{"dry_run": req.DryRun}
	if resp != nil {
		fields["placed"] = len(resp.Scheduled)
		fields["unplaced"] = len(resp.Unscheduled)
	}
	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      "plan",
		PersonID:  req.PersonID,
		Duration:  time.Since(started),
		Success:   err == nil,
		Err:       err,
		StartedAt: started,
		Fields:    fields,
	})
	return resp, err
}

func (s *planService) plan(ctx context.Context, req app.PlanRequest) (*app.PlanResponse, error) {
	now := time.Now().UTC()
	if req.Now != nil {
		now = *req.Now
	}

	release := s.guard.Acquire("plan:" + req.PersonID)
	defer release()

	if _, err := s.persons.GetByID(ctx, req.PersonID); err != nil {
		return nil, &app.PlanError{Code: app.PlanErrUnknownPerson, Message: fmt.Sprintf("person %s: %v", req.PersonID, err)}
	}

	blocks, err := s.routines.ListByPerson(ctx, req.PersonID)
	if err != nil {
		return nil, fmt.Errorf("loading routine: %w", err)
	}
	if len(blocks) == 0 {
		return nil, &app.PlanError{Code: app.PlanErrNoRoutine, Message: "no routine blocks defined; import a routine first"}
	}

	backlog, err := s.items.ListBacklog(ctx, req.PersonID)
	if err != nil {
		return nil, fmt.Errorf("loading backlog: %w", err)
	}
	if len(backlog) == 0 {
		return nil, &app.PlanError{Code: app.PlanErrEmptyBacklog, Message: "no pending work items to schedule"}
	}

	profile, err := s.profiles.Get(ctx, req.PersonID)
	if err != nil {
		return nil, fmt.Errorf("loading capacity profile: %w", err)
	}

	// Each run is authoritative for its own backlog: previously scheduled
	// items re-enter the backlog and the week is recomputed from scratch.
	result, err := scheduler.Run(scheduler.RunInput{
		Items:   backlog,
		Blocks:  blocks,
		Profile: profile,
		Weights: scheduler.WeightsFromProfile(profile),
		Now:     now,
	})
	if err != nil {
		return nil, &app.PlanError{Code: app.PlanErrBadRoutine, Message: err.Error()}
	}

	if !req.DryRun {
		if err := s.persist(ctx, backlog, result, now); err != nil {
			return nil, fmt.Errorf("persisting placements: %w", err)
		}
	}

	placedMin := 0
	for _, p := range result.Scheduled {
		placedMin += p.DurationMin
	}

	return &app.PlanResponse{
		GeneratedAt:  now,
		PersonID:     req.PersonID,
		DryRun:       req.DryRun,
		Scheduled:    result.Scheduled,
		Unscheduled:  result.Unscheduled,
		Warnings:     result.Warnings,
		BacklogCount: len(backlog),
		PlacedMin:    placedMin,
	}, nil
}

// persist writes the run's placements back to the item store in one
// transaction: every backlog item is either assigned its new slot or
// cleared back to pending.
func (s *planService) persist(ctx context.Context, backlog []*domain.WorkItem, result *scheduler.RunResult, now time.Time) error {
	placementByItem := make(map[string]app.Placement, len(result.Scheduled))
	for _, p := range result.Scheduled {
		placementByItem[p.ItemID] = p
	}

	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txItems := repository.NewSQLiteWorkItemRepo(tx)
		for _, item := range backlog {
			if p, ok := placementByItem[item.ID]; ok {
				// Persist the tier resolved during this run so later reads
				// render the same classification.
				item.Priority = p.Priority
				item.AssignPlacement(p.Weekday, p.SlotOrdinal, now)
			} else {
				item.ClearPlacement(now)
			}
			if err := txItems.Update(ctx, item); err != nil {
				return err
			}
		}
		return nil
	})
}

// Week renders the persisted placements as the same Placement contract the
// planner returns, rebuilt against the current routine.
func (s *planService) Week(ctx context.Context, personID string) ([]app.Placement, error) {
	records, err := s.items.ListPlacements(ctx, personID)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, nil
	}

	blocks, err := s.routines.ListByPerson(ctx, personID)
	if err != nil {
		return nil, err
	}
	slotByKey := make(map[string]domain.RoutineBlock)
	for _, b := range blocks {
		ordinal := domain.UnassignedOrdinal
		if b.SlotOrdinal != nil {
			ordinal = *b.SlotOrdinal
		}
		slotByKey[fmt.Sprintf("%s/%d", b.Weekday, ordinal)] = b
	}

	var out []app.Placement
	for _, rec := range records {
		item, err := s.items.GetByID(ctx, rec.ItemID)
		if err != nil {
			return nil, err
		}
		p := app.Placement{
			ItemID:      rec.ItemID,
			Title:       item.Title,
			Subject:     item.Subject,
			DurationMin: item.DurationMin,
			Priority:    item.Priority,
			Weekday:     rec.Weekday,
			SlotOrdinal: rec.SlotOrdinal,
		}
		if b, ok := slotByKey[fmt.Sprintf("%s/%d", rec.Weekday, rec.SlotOrdinal)]; ok {
			p.SlotLabel = b.Label
			p.StartTime = b.StartTime
			p.EndTime = b.EndTime
		}
		out = append(out, p)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Weekday.Ordinal() != out[j].Weekday.Ordinal() {
			return out[i].Weekday.Ordinal() < out[j].Weekday.Ordinal()
		}
		if out[i].SlotOrdinal != out[j].SlotOrdinal {
			return out[i].SlotOrdinal < out[j].SlotOrdinal
		}
		return out[i].ItemID < out[j].ItemID
	})
	return out, nil
}
