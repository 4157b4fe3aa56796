package models

// Advantage labels used by style comparisons.
const (
	AdvantageTeam1 = "team1"
	AdvantageTeam2 = "team2"
	AdvantageEven  = "even"
)

// HeadToHead is the comparison view model of two teams of one title.
type HeadToHead struct {
	Team1           Team             `json:"team1"`
	Team2           Team             `json:"team2"`
	Title           Title            `json:"title"`
	MatchHistory    []H2HMatch       `json:"matchHistory"`
	Stats           H2HStats         `json:"stats"`
	Style           *StyleComparison `json:"styleComparison,omitempty"`
	Insights        []string         `json:"insights"`
	Warnings        []string         `json:"warnings"`
	ConfidenceScore int              `json:"confidenceScore"`
}

type H2HMatch struct {
	MatchID        string    `json:"matchId"`
	Date           string    `json:"date"`
	Winner         string    `json:"winner"`
	Score          string    `json:"score"`
	TournamentName string    `json:"tournamentName"`
	Games          []H2HGame `json:"games"`
}

type H2HGame struct {
	GameNumber int     `json:"gameNumber"`
	WinnerID   string  `json:"winnerId"`
	Duration   float64 `json:"duration"`
}

// H2HStats holds the series record. Team1Wins+Team2Wins never exceeds
// TotalMatches.
type H2HStats struct {
	TotalMatches    int          `json:"totalMatches"`
	Team1Wins       int          `json:"team1Wins"`
	Team2Wins       int          `json:"team2Wins"`
	AvgGameDuration float64      `json:"avgGameDuration,omitempty"`
	CommonPicks     CommonPicks  `json:"commonPicks"`
	KeyMatchups     []KeyMatchup `json:"keyMatchups"`
}

type CommonPicks struct {
	Team1 []string `json:"team1"`
	Team2 []string `json:"team2"`
}

type MatchupPlayer struct {
	PlayerID string  `json:"playerId"`
	Nickname string  `json:"nickname"`
	Role     string  `json:"role"`
	WinRate  float64 `json:"winRate"`
	AvgKDA   float64 `json:"avgKDA"`
}

type KeyMatchup struct {
	Player1      MatchupPlayer `json:"player1"`
	Player2      MatchupPlayer `json:"player2"`
	GamesPlayed  int           `json:"gamesPlayed"`
	Significance string        `json:"significance"`
}

// StyleComparison compares phase ratings. For VALORANT the three phases hold
// pistol, attack and defense round win rates.
type StyleComparison struct {
	Team1EarlyGameRating float64 `json:"team1EarlyGameRating"`
	Team2EarlyGameRating float64 `json:"team2EarlyGameRating"`
	EarlyGameAdvantage   string  `json:"earlyGameAdvantage"`
	EarlyGameInsight     string  `json:"earlyGameInsight,omitempty"`
	Team1MidGameRating   float64 `json:"team1MidGameRating"`
	Team2MidGameRating   float64 `json:"team2MidGameRating"`
	MidGameAdvantage     string  `json:"midGameAdvantage"`
	MidGameInsight       string  `json:"midGameInsight,omitempty"`
	Team1LateGameRating  float64 `json:"team1LateGameRating"`
	Team2LateGameRating  float64 `json:"team2LateGameRating"`
	LateGameAdvantage    string  `json:"lateGameAdvantage"`
	LateGameInsight      string  `json:"lateGameInsight,omitempty"`
	Team1Aggression      float64 `json:"team1Aggression"`
	Team2Aggression      float64 `json:"team2Aggression"`
	StyleInsight         string  `json:"styleInsight,omitempty"`
}

// WinRate returns the share of matches team 1 won, or 0 with no matches.
func (s H2HStats) WinRate() float64 {
	if s.TotalMatches == 0 {
		return 0
	}
	return float64(s.Team1Wins) / float64(s.TotalMatches)
}
