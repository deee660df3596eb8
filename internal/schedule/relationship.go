package schedule

import (
	"fmt"
	"sort"

	"league-office-service/internal/domain"
)

// RelationshipKind classifies how often two teams meet in a season.
type RelationshipKind string

const (
	// RelDivision pairs meet four times, two home games each.
	RelDivision RelationshipKind = "division"
	// RelConferenceFour pairs share a conference but not a division and meet
	// four times, two home games each.
	RelConferenceFour RelationshipKind = "conference_four"
	// RelConferenceThree pairs share a conference but not a division and meet
	// three times; one side hosts twice.
	RelConferenceThree RelationshipKind = "conference_three"
	// RelInterConference pairs meet twice, one home game each.
	RelInterConference RelationshipKind = "inter_conference"
)

// Relationship is the classification of one unordered team pair, computed
// once and shared by matchup generation and validation.
type Relationship struct {
	Kind        RelationshipKind
	Games       int
	HostTwiceID string // set only for three-game series
}

// slot locates a team inside its conference: which division (0-2, in the
// fixed ConferenceDivisions order) and which seat within it (0-4, by ID).
type slot struct {
	division int
	seat     int
}

// leagueIndex holds the per-team slots the pair classifier works from.
type leagueIndex struct {
	slots map[string]slot
	teams map[string]domain.Team
}

// threeGameOffsets selects, for each unordered division pair within a
// conference, which seat offsets on the 5-cycle produce a three-game series.
// Keying the offsets to the division pair (not the team) makes the
// assignment symmetric: both teams in a flagged pair derive the same answer,
// so every team ends up with exactly four three-game opponents. The offset's
// parity decides which side hosts twice, which hands each team exactly two
// twice-hosted series.
var threeGameOffsets = map[[2]int][2]int{
	{0, 1}: {0, 1},
	{0, 2}: {2, 3},
	{1, 2}: {0, 1},
}

// buildIndex validates the league shape (2 conferences x 3 divisions x 5
// teams) and assigns every team its slot.
func buildIndex(teams []domain.Team) (*leagueIndex, error) {
	byDivision := make(map[domain.Division][]domain.Team)
	for _, t := range teams {
		byDivision[t.Division] = append(byDivision[t.Division], t)
	}

	idx := &leagueIndex{
		slots: make(map[string]slot, len(teams)),
		teams: make(map[string]domain.Team, len(teams)),
	}
	for _, conf := range []domain.Conference{domain.ConferenceEastern, domain.ConferenceWestern} {
		for divPos, div := range domain.ConferenceDivisions[conf] {
			members := byDivision[div]
			if len(members) != teamsPerDivision {
				return nil, fmt.Errorf("division %s has %d teams, want %d", div, len(members), teamsPerDivision)
			}
			sort.Slice(members, func(i, j int) bool { return members[i].ID < members[j].ID })
			for seat, t := range members {
				if t.Conference != conf {
					return nil, fmt.Errorf("team %s: division %s belongs to the %s conference", t.ID, div, conf)
				}
				idx.slots[t.ID] = slot{division: divPos, seat: seat}
				idx.teams[t.ID] = t
			}
		}
	}
	if len(idx.slots) != len(teams) {
		return nil, fmt.Errorf("indexed %d teams, want %d", len(idx.slots), len(teams))
	}
	return idx, nil
}

// classify determines the relationship between two distinct teams.
func (idx *leagueIndex) classify(a, b domain.Team) Relationship {
	if a.Conference != b.Conference {
		return Relationship{Kind: RelInterConference, Games: 2}
	}
	if a.Division == b.Division {
		return Relationship{Kind: RelDivision, Games: 4}
	}

	sa, sb := idx.slots[a.ID], idx.slots[b.ID]
	lower, higher := a, b
	sl, sh := sa, sb
	if sa.division > sb.division {
		lower, higher = b, a
		sl, sh = sb, sa
	}

	offsets := threeGameOffsets[[2]int{sl.division, sh.division}]
	diff := ((sh.seat-sl.seat)%teamsPerDivision + teamsPerDivision) % teamsPerDivision
	for _, o := range offsets {
		if diff != o {
			continue
		}
		host := lower.ID
		if o%2 != 0 {
			host = higher.ID
		}
		return Relationship{Kind: RelConferenceThree, Games: 3, HostTwiceID: host}
	}
	return Relationship{Kind: RelConferenceFour, Games: 4}
}
