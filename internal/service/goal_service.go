package service

import (
	"context"
	"time"

	"github.com/dafibh/wealthflow/wealthflow-backend/internal/domain"
	"github.com/dafibh/wealthflow/wealthflow-backend/internal/websocket"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// GoalService handles savings goals and contributions
type GoalService struct {
	snapshots      *SnapshotService
	loc            *time.Location
	eventPublisher websocket.EventPublisher
}

// NewGoalService creates a new GoalService; deadlines are evaluated in loc
func NewGoalService(snapshots *SnapshotService, loc *time.Location) *GoalService {
	if loc == nil {
		loc = time.UTC
	}
	return &GoalService{
		snapshots: snapshots,
		loc:       loc,
	}
}

// SetEventPublisher sets the event publisher for real-time updates
func (s *GoalService) SetEventPublisher(publisher websocket.EventPublisher) {
	s.eventPublisher = publisher
}

func (s *GoalService) publishEvent(event websocket.Event) {
	if s.eventPublisher != nil {
		s.eventPublisher.Publish(event)
	}
}

// CreateGoalInput holds the input for creating a savings goal
type CreateGoalInput struct {
	ID            string
	Name          string
	TargetAmount  decimal.Decimal
	CurrentAmount decimal.Decimal
	Deadline      domain.Date
}

// CreateGoal validates and adds a savings goal
func (s *GoalService) CreateGoal(ctx context.Context, input CreateGoalInput) (*domain.SavingsGoal, error) {
	name, err := requireText(input.Name, domain.MaxGoalNameLength, domain.ErrNameRequired, domain.ErrNameTooLong)
	if err != nil {
		return nil, err
	}
	if !input.TargetAmount.IsPositive() {
		return nil, domain.ErrInvalidTarget
	}
	if input.CurrentAmount.IsNegative() {
		return nil, domain.ErrInvalidAmount
	}
	if input.Deadline.IsZero() {
		return nil, domain.ErrInvalidDate
	}

	goal := domain.SavingsGoal{
		ID:            newID(input.ID),
		Name:          name,
		TargetAmount:  input.TargetAmount,
		CurrentAmount: input.CurrentAmount,
		Deadline:      input.Deadline,
	}

	_, err = s.snapshots.Update(ctx, func(draft *domain.FinanceSnapshot) error {
		if draft.FindGoal(goal.ID) >= 0 {
			return domain.ErrDuplicateID
		}
		draft.SavingsGoals = append(draft.SavingsGoals, goal)
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Info().Str("goal_id", goal.ID).Str("name", goal.Name).Msg("Savings goal created")
	s.publishEvent(websocket.GoalCreated(goal))
	return &goal, nil
}

// Contribute adds amount to a goal's current amount. Overfunding is allowed.
func (s *GoalService) Contribute(ctx context.Context, id string, amount decimal.Decimal) (*domain.GoalProgress, error) {
	if !amount.IsPositive() {
		return nil, domain.ErrInvalidContribution
	}

	var updated domain.SavingsGoal
	_, err := s.snapshots.Update(ctx, func(draft *domain.FinanceSnapshot) error {
		idx := draft.FindGoal(id)
		if idx < 0 {
			return domain.ErrGoalNotFound
		}
		draft.SavingsGoals[idx].CurrentAmount = draft.SavingsGoals[idx].CurrentAmount.Add(amount)
		updated = draft.SavingsGoals[idx]
		return nil
	})
	if err != nil {
		return nil, err
	}

	progress := GoalProgress(updated, s.snapshots.Now(), s.loc)
	log.Info().
		Str("goal_id", id).
		Str("amount", amount.String()).
		Str("progress", progress.Progress.String()).
		Msg("Contribution recorded")

	s.publishEvent(websocket.GoalContributed(updated))
	return &progress, nil
}

// GetGoals returns every goal with its progress as of now
func (s *GoalService) GetGoals() []domain.GoalProgress {
	return GoalsProgress(s.snapshots.View().SavingsGoals, s.snapshots.Now(), s.loc)
}
