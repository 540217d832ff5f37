package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// GoalPriority orders goals by importance.
type GoalPriority string

const (
	GoalPriorityLow    GoalPriority = "low"
	GoalPriorityMedium GoalPriority = "medium"
	GoalPriorityHigh   GoalPriority = "high"
)

// ValidGoalPriority reports whether p is a known goal priority.
func ValidGoalPriority(p GoalPriority) bool {
	return p == GoalPriorityLow || p == GoalPriorityMedium || p == GoalPriorityHigh
}

// GoalStatus is the lifecycle state of a savings goal.
type GoalStatus string

const (
	GoalStatusActive    GoalStatus = "active"
	GoalStatusPaused    GoalStatus = "paused"
	GoalStatusCompleted GoalStatus = "completed"
)

// Goal mirrors the backend savings-goal record. CurrentAmount may exceed
// TargetAmount; no upper clamp is applied client-side.
type Goal struct {
	ID                  string          `json:"id"`
	Name                string          `json:"name"`
	TargetAmount        decimal.Decimal `json:"targetAmount"`
	CurrentAmount       decimal.Decimal `json:"currentAmount"`
	Deadline            time.Time       `json:"deadline"`
	Priority            GoalPriority    `json:"priority"`
	Status              GoalStatus      `json:"status"`
	LinkedAccountID     string          `json:"linkedAccountId,omitempty"`
	MonthlyContribution decimal.Decimal `json:"monthlyContribution"`
}

// Progress returns current/target as an uncapped percentage.
func (g Goal) Progress() decimal.Decimal {
	if g.TargetAmount.IsZero() {
		return decimal.Zero
	}
	return g.CurrentAmount.Div(g.TargetAmount).Mul(decimal.NewFromInt(100))
}

// DisplayProgress returns Progress capped at 100 for rendering.
func (g Goal) DisplayProgress() decimal.Decimal {
	p := g.Progress()
	hundred := decimal.NewFromInt(100)
	if p.GreaterThan(hundred) {
		return hundred
	}
	return p
}
