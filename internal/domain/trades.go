package domain

// AssetType tags the TradeAsset union.
type AssetType string

const (
	AssetPlayer    AssetType = "player"
	AssetDraftPick AssetType = "draft_pick"
	AssetCash      AssetType = "cash"
)

// TradeAsset is a tagged union over player, draft pick, and cash. Only the
// fields relevant to the tag are populated; it exists only inside a proposal.
type TradeAsset struct {
	Type       AssetType `json:"type"`
	FromTeamID string    `json:"fromTeamId"`
	ToTeamID   string    `json:"toTeamId"`

	// player fields
	PlayerID  string `json:"playerId,omitempty"`
	Overall   int    `json:"overall,omitempty"`
	Potential int    `json:"potential,omitempty"`
	Age       int    `json:"age,omitempty"`
	Salary    int64  `json:"salary,omitempty"`

	// draft pick fields
	PickYear         int    `json:"pickYear,omitempty"`
	PickRound        int    `json:"pickRound,omitempty"`
	OriginalTeamID   string `json:"originalTeamId,omitempty"`
	OriginalTeamWins int    `json:"originalTeamWins,omitempty"`

	// cash fields
	CashAmount int64 `json:"cashAmount,omitempty"`
}

// ProposalStatus tracks a trade proposal's lifecycle.
type ProposalStatus string

const (
	ProposalPending   ProposalStatus = "pending"
	ProposalAccepted  ProposalStatus = "accepted"
	ProposalRejected  ProposalStatus = "rejected"
	ProposalCountered ProposalStatus = "countered"
	ProposalExpired   ProposalStatus = "expired"
	ProposalCancelled ProposalStatus = "cancelled"
)

// TradeProposal is a set of assets partitioned across two or more teams. The
// evaluation engine treats it as read-only input.
type TradeProposal struct {
	ID      string         `json:"id"`
	TeamIDs []string       `json:"teamIds"`
	Assets  []TradeAsset   `json:"assets"`
	Status  ProposalStatus `json:"status"`
}

// Incoming returns the assets teamID receives in the proposal.
func (p TradeProposal) Incoming(teamID string) []TradeAsset {
	var out []TradeAsset
	for _, a := range p.Assets {
		if a.ToTeamID == teamID {
			out = append(out, a)
		}
	}
	return out
}

// Outgoing returns the assets teamID sends in the proposal.
func (p TradeProposal) Outgoing(teamID string) []TradeAsset {
	var out []TradeAsset
	for _, a := range p.Assets {
		if a.FromTeamID == teamID {
			out = append(out, a)
		}
	}
	return out
}

// PlayerRestrictions carries the per-player facts trade validation checks.
// A negative day count means the event never happened.
type PlayerRestrictions struct {
	PlayerID        string `json:"playerId"`
	DaysSinceSigned int    `json:"daysSinceSigned"`
	DaysSinceTraded int    `json:"daysSinceTraded"`
	NoTradeClause   bool   `json:"noTradeClause"`
}
