package domain

// Conference identifies one of the two league conferences.
type Conference string

const (
	ConferenceEastern Conference = "Eastern"
	ConferenceWestern Conference = "Western"
)

// Division identifies one of the six five-team divisions.
type Division string

const (
	DivisionAtlantic  Division = "Atlantic"
	DivisionCentral   Division = "Central"
	DivisionSoutheast Division = "Southeast"
	DivisionNorthwest Division = "Northwest"
	DivisionPacific   Division = "Pacific"
	DivisionSouthwest Division = "Southwest"
)

// ConferenceDivisions lists the divisions belonging to each conference in a
// fixed order. Schedule construction relies on this ordering being stable.
var ConferenceDivisions = map[Conference][]Division{
	ConferenceEastern: {DivisionAtlantic, DivisionCentral, DivisionSoutheast},
	ConferenceWestern: {DivisionNorthwest, DivisionPacific, DivisionSouthwest},
}

// Team is the immutable identity of a club for the duration of a season.
type Team struct {
	ID           string     `json:"id"`
	Abbreviation string     `json:"abbreviation"`
	Conference   Conference `json:"conference"`
	Division     Division   `json:"division"`
}

// Matchup is an ordered home/away pairing for a single game.
type Matchup struct {
	HomeTeamID string `json:"homeTeamId"`
	AwayTeamID string `json:"awayTeamId"`
}

// ScheduledGame is a matchup placed on the season calendar. Created once by
// the generator and never mutated afterwards.
type ScheduledGame struct {
	ID          string `json:"id"`
	SeasonID    string `json:"seasonId"`
	HomeTeamID  string `json:"homeTeamId"`
	AwayTeamID  string `json:"awayTeamId"`
	GameDate    string `json:"gameDate"`
	GameDay     int    `json:"gameDay"`
	IsPreseason bool   `json:"isPreseason"`
}
