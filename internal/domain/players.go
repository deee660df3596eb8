package domain

// Position is a player's primary position.
type Position string

const (
	PositionPG Position = "PG"
	PositionSG Position = "SG"
	PositionSF Position = "SF"
	PositionPF Position = "PF"
	PositionC  Position = "C"
)

// FreeAgentStatus tracks a free agent through the market lifecycle.
type FreeAgentStatus string

const (
	FAAvailable   FreeAgentStatus = "available"
	FANegotiating FreeAgentStatus = "negotiating"
	FASigned      FreeAgentStatus = "signed"
	FAWithdrawn   FreeAgentStatus = "withdrawn"
)

// Preferences is a free agent's 4-axis preference vector. Axes are
// independent importance weights in [0,100]; they are normalized at scoring
// time, not stored as a distribution.
type Preferences struct {
	Money   int `json:"money"`
	Winning int `json:"winning"`
	Role    int `json:"role"`
	Market  int `json:"market"`
}

// Traits are the hidden personality inputs preferences are derived from.
type Traits struct {
	Greed   int `json:"greed"`
	Ego     int `json:"ego"`
	Loyalty int `json:"loyalty"`
}

// FreeAgent is a player-in-market snapshot.
type FreeAgent struct {
	PlayerID      string          `json:"playerId"`
	Name          string          `json:"name"`
	Position      Position        `json:"position"`
	Age           int             `json:"age"`
	Overall       int             `json:"overall"`
	Potential     int             `json:"potential"`
	YearsInLeague int             `json:"yearsInLeague"`
	Preferences   Preferences     `json:"preferences"`
	AskingSalary  int64           `json:"askingSalary"`
	Status        FreeAgentStatus `json:"status"`
}

// ContractOffer is an immutable signing proposal. It is evaluated and then
// either discarded or converted into a Contract.
type ContractOffer struct {
	ID            string `json:"id"`
	TeamID        string `json:"teamId"`
	PlayerID      string `json:"playerId"`
	Years         int    `json:"years"`
	SalaryPerYear int64  `json:"salaryPerYear"`
	PlayerOption  bool   `json:"playerOption"`
	TeamOption    bool   `json:"teamOption"`
	SigningBonus  int64  `json:"signingBonus"`
}

// ContractStatus tracks a signed contract's state.
type ContractStatus string

const (
	ContractActive    ContractStatus = "active"
	ContractExpired   ContractStatus = "expired"
	ContractBoughtOut ContractStatus = "bought_out"
	ContractWaived    ContractStatus = "waived"
	ContractTraded    ContractStatus = "traded"
)

// Contract is the accepted, persisted outcome of an offer. Salaries hold the
// per-year breakdown, at most five seasons.
type Contract struct {
	ID           string         `json:"id"`
	TeamID       string         `json:"teamId"`
	PlayerID     string         `json:"playerId"`
	Salaries     []int64        `json:"salaries"`
	PlayerOption bool           `json:"playerOption"`
	TeamOption   bool           `json:"teamOption"`
	NoTrade      bool           `json:"noTrade"`
	SignedYear   int            `json:"signedYear"`
	Status       ContractStatus `json:"status"`
}

// TeamContext is a point-in-time snapshot of a team's competitive state,
// supplied by the caller and never persisted here.
type TeamContext struct {
	TeamID           string     `json:"teamId"`
	Wins             int        `json:"wins"`
	Losses           int        `json:"losses"`
	Payroll          int64      `json:"payroll"`
	CapSpace         int64      `json:"capSpace"`
	RosterSize       int        `json:"rosterSize"`
	StarCount        int        `json:"starCount"`
	YoungTalentCount int        `json:"youngTalentCount"`
	AverageAge       float64    `json:"averageAge"`
	InWindow         bool       `json:"inWindow"`
	BestOverall      int        `json:"bestOverall"`
	EighthManOverall int        `json:"eighthManOverall"`
	NeedsPositions   []Position `json:"needsPositions"`
	MarketSize       MarketSize `json:"marketSize"`
}

// MarketSize buckets a team's media market.
type MarketSize string

const (
	MarketLarge  MarketSize = "large"
	MarketMedium MarketSize = "medium"
	MarketSmall  MarketSize = "small"
)

// WinPct returns the team's winning percentage, 0 when no games played.
func (c TeamContext) WinPct() float64 {
	games := c.Wins + c.Losses
	if games == 0 {
		return 0
	}
	return float64(c.Wins) / float64(games)
}

// NeedsPosition reports whether the team has flagged pos as a roster need.
func (c TeamContext) NeedsPosition(pos Position) bool {
	for _, p := range c.NeedsPositions {
		if p == pos {
			return true
		}
	}
	return false
}
