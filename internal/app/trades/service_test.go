package trades

import (
	"testing"

	"league-office-service/internal/domain"
	"league-office-service/internal/metrics"
	"league-office-service/internal/testutil"
	"league-office-service/internal/trading"
)

func newService(t *testing.T) (*Service, *metrics.Recorder) {
	t.Helper()
	rec := metrics.NewRecorder()
	return NewService(testutil.DiscardLogger(), rec), rec
}

func cashGift(to string, amount int64) domain.TradeProposal {
	from := "t2"
	if to == "t2" {
		from = "t1"
	}
	return domain.TradeProposal{
		TeamIDs: []string{"t1", "t2"},
		Assets: []domain.TradeAsset{
			{Type: domain.AssetCash, FromTeamID: from, ToTeamID: to, CashAmount: amount},
		},
	}
}

func TestEvaluateRecordsDecision(t *testing.T) {
	svc, rec := newService(t)

	eval := svc.Evaluate("t1", cashGift("t1", 15_000_000), domain.TeamContext{TeamID: "t1", Wins: 41, Losses: 41}, 2025)
	if eval.Decision != trading.DecisionAccept {
		t.Errorf("decision = %s, want accept", eval.Decision)
	}
	if snap := rec.Snapshot(); snap.TradeEvaluations["accept"] != 1 {
		t.Errorf("trade evaluations = %v", snap.TradeEvaluations)
	}
}

func TestRespondAppliesStrategyThreshold(t *testing.T) {
	svc, _ := newService(t)

	// Net +6 clears a rebuilder's threshold (5) but not a contender's (10).
	rebuild := svc.Respond("t1", cashGift("t1", 6_000_000), testutil.RebuildingTeam("t1"), 2025)
	if rebuild.Decision != trading.DecisionAccept {
		t.Errorf("rebuilder decision = %s, want accept", rebuild.Decision)
	}
	contend := svc.Respond("t1", cashGift("t1", 6_000_000), testutil.ContendingTeam("t1"), 2025)
	if contend.Decision != trading.DecisionCounter {
		t.Errorf("contender decision = %s, want counter", contend.Decision)
	}
}

func TestValidateDelegates(t *testing.T) {
	svc, _ := newService(t)
	v := svc.Validate(domain.TradeProposal{TeamIDs: []string{"t1"}}, nil, nil)
	if v.Valid {
		t.Error("single-team proposal should fail")
	}
}

func TestStrategyDelegates(t *testing.T) {
	svc, _ := newService(t)
	if got := svc.Strategy(testutil.ContendingTeam("t1")); got != trading.StrategyContending {
		t.Errorf("strategy = %s, want contending", got)
	}
}
