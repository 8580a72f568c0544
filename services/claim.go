package services

// Default point awards. The daily award can be overridden via configuration;
// these match the production values of the hub.
const (
	DefaultDailyClaimAward = 5
	DefaultReferralAward   = 25
)

// RewardState is a snapshot of one user's reward counters as read from the
// user_data row.
type RewardState struct {
	Points        int
	PointsEarned  int
	DailyStreak   int
	LastClaimDate CalendarDate
}

// ClaimDelta is the full replacement state a granted claim persists.
// Counters only ever grow here; redemption is the sole path that deducts
// points, and it never touches PointsEarned.
type ClaimDelta struct {
	Points        int
	PointsEarned  int
	DailyStreak   int
	LastClaimDate CalendarDate
}

// ClaimDecision is the outcome of evaluating one claim attempt. When
// AlreadyClaimed is true the Delta is zero and nothing may be persisted.
type ClaimDecision struct {
	AlreadyClaimed bool
	Delta          ClaimDelta
}

// EvaluateClaim decides whether the holder of state may claim points on
// today and computes the resulting counters.
//
// At most one claim is granted per calendar day. The streak advances only
// when the previous claim was exactly yesterday; a first-ever claim or a
// gap of two or more days restarts it at 1.
//
// The function is pure and total: persisting the delta, and guarding the
// write against concurrent claimers, is entirely the caller's job.
func EvaluateClaim(state RewardState, today CalendarDate, award int) ClaimDecision {
	if award <= 0 {
		award = DefaultDailyClaimAward
	}

	if !state.LastClaimDate.IsZero() && state.LastClaimDate == today {
		return ClaimDecision{AlreadyClaimed: true}
	}

	streak := 1
	if prev := today.Previous(); !state.LastClaimDate.IsZero() && state.LastClaimDate == prev {
		streak = state.DailyStreak + 1
	}

	return ClaimDecision{
		Delta: ClaimDelta{
			Points:        state.Points + award,
			PointsEarned:  state.PointsEarned + award,
			DailyStreak:   streak,
			LastClaimDate: today,
		},
	}
}
