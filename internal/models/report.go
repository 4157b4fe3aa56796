package models

import "strings"

// ScoutingReport is the fully populated view model of one generated report.
// Every slice is non-nil and every number is defined so views can render it
// without further checks.
type ScoutingReport struct {
	ID               string              `json:"id"`
	GeneratedAt      string              `json:"generatedAt"`
	OpponentTeam     Team                `json:"opponentTeam"`
	Title            Title               `json:"title"`
	MatchesAnalyzed  int                 `json:"matchesAnalyzed"`
	ExecutiveSummary string              `json:"executiveSummary"`
	HowToWin         HowToWin            `json:"howToWin"`
	TeamStrategy     TeamAnalysis        `json:"teamStrategy"`
	PlayerProfiles   []PlayerProfile     `json:"playerProfiles"`
	Compositions     CompositionAnalysis `json:"compositions"`
	TrendAnalysis    *TrendAnalysis      `json:"trendAnalysis,omitempty"`
	CommonStrategies CommonStrategies    `json:"commonStrategies"`
}

// ============================================================================
// HOW TO WIN
// ============================================================================

type DraftType string

const (
	DraftBan    DraftType = "ban"
	DraftPick   DraftType = "pick"
	DraftTarget DraftType = "target"
)

type HowToWin struct {
	WinCondition         string                `json:"winCondition"`
	ConfidenceScore      int                   `json:"confidenceScore"`
	Warnings             []string              `json:"warnings"`
	Weaknesses           []WeaknessTarget      `json:"weaknesses"`
	DraftRecommendations []DraftRecommendation `json:"draftRecommendations"`
	InGameStrategies     []InGameStrategy      `json:"inGameStrategies"`
	TargetPlayers        []PlayerTarget        `json:"targetPlayers"`
}

type WeaknessTarget struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Evidence    string  `json:"evidence,omitempty"`
	Impact      float64 `json:"impact"`
}

type DraftRecommendation struct {
	Type      DraftType `json:"type"`
	Character string    `json:"character"`
	Reason    string    `json:"reason"`
	Priority  int       `json:"priority"`
}

type InGameStrategy struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Timing      string `json:"timing,omitempty"`
	Evidence    string `json:"evidence,omitempty"`
}

type PlayerTarget struct {
	PlayerName string `json:"playerName"`
	Role       string `json:"role"`
	Reason     string `json:"reason"`
	Priority   int    `json:"priority"`
}

// Draft returns the recommendations of one type in their original order.
func (h HowToWin) Draft(t DraftType) []DraftRecommendation {
	out := []DraftRecommendation{}
	for _, d := range h.DraftRecommendations {
		if d.Type == t {
			out = append(out, d)
		}
	}
	return out
}

// ============================================================================
// TEAM ANALYSIS
// ============================================================================

type Form string

const (
	FormImproving Form = "improving"
	FormDeclining Form = "declining"
	FormStable    Form = "stable"
)

// ParseForm maps a backend form label onto a known form, defaulting to stable.
func ParseForm(s string) Form {
	switch Form(strings.ToLower(strings.TrimSpace(s))) {
	case FormImproving:
		return FormImproving
	case FormDeclining:
		return FormDeclining
	}
	return FormStable
}

// Insight is a strength or weakness line. Title is the heading form, Text the
// body form; both are always populated when the backend sent either.
type Insight struct {
	Title      string  `json:"title"`
	Text       string  `json:"text"`
	Importance string  `json:"importance,omitempty"`
	Value      float64 `json:"value,omitempty"`
	SampleSize int     `json:"sampleSize,omitempty"`
}

// TeamAnalysis carries exactly one metric block, selected by Title.
type TeamAnalysis struct {
	TeamID          string      `json:"teamId"`
	TeamName        string      `json:"teamName"`
	Title           Title       `json:"title"`
	MatchesAnalyzed int         `json:"matchesAnalyzed"`
	GamesAnalyzed   int         `json:"gamesAnalyzed"`
	WinRate         float64     `json:"winRate"`
	RecentForm      Form        `json:"recentForm"`
	Strengths       []Insight   `json:"strengths"`
	Weaknesses      []Insight   `json:"weaknesses"`
	LoL             *LoLMetrics `json:"lolMetrics,omitempty"`
	VAL             *VALMetrics `json:"valMetrics,omitempty"`
}

type LoLMetrics struct {
	FirstBloodRate    float64  `json:"firstBloodRate"`
	FirstDragonRate   float64  `json:"firstDragonRate"`
	FirstTowerRate    float64  `json:"firstTowerRate"`
	FirstTowerAvgTime *float64 `json:"firstTowerAvgTime,omitempty"`
	GoldDiff15        float64  `json:"goldDiff15"`
	DragonControlRate float64  `json:"dragonControlRate"`
	HeraldControlRate float64  `json:"heraldControlRate"`
	BaronControlRate  float64  `json:"baronControlRate"`
	ElderDragonRate   float64  `json:"elderDragonRate"`
	AvgGameDuration   *float64 `json:"avgGameDuration,omitempty"`
	EarlyGameRating   float64  `json:"earlyGameRating"`
	MidGameRating     float64  `json:"midGameRating"`
	LateGameRating    float64  `json:"lateGameRating"`
	AggressionScore   float64  `json:"aggressionScore"`
	WinConditions     []string `json:"winConditions"`
}

type VALMetrics struct {
	AttackWinRate        float64             `json:"attackWinRate"`
	DefenseWinRate       float64             `json:"defenseWinRate"`
	PistolWinRate        float64             `json:"pistolWinRate"`
	AttackPistolWinRate  float64             `json:"attackPistolWinRate"`
	DefensePistolWinRate float64             `json:"defensePistolWinRate"`
	EcoRoundWinRate      float64             `json:"ecoRoundWinRate"`
	ForceBuyWinRate      float64             `json:"forceBuyWinRate"`
	FullBuyWinRate       float64             `json:"fullBuyWinRate"`
	AvgTeamLoadout       float64             `json:"avgTeamLoadout"`
	Economy              EconomyStats        `json:"economyStats"`
	FirstBloodRate       float64             `json:"firstBloodRate"`
	FirstDeathRate       float64             `json:"firstDeathRate"`
	MapStats             map[string]MapStats `json:"mapStats"`
	MapPool              []MapPoolEntry      `json:"mapPool"`
	AggressionScore      float64             `json:"aggressionScore"`
	ClutchRate           float64             `json:"clutchRate"`
}

// RoundBucket is the outcome of one spend tier of VALORANT rounds.
type RoundBucket struct {
	Won     int     `json:"won"`
	Total   int     `json:"total"`
	WinRate float64 `json:"winRate"`
}

type EconomyStats struct {
	EcoRounds       RoundBucket `json:"ecoRounds"`
	ForceRounds     RoundBucket `json:"forceRounds"`
	FullBuyRounds   RoundBucket `json:"fullBuyRounds"`
	AvgLoadoutValue float64     `json:"avgLoadoutValue"`
}

type MapStats struct {
	MapName        string  `json:"mapName"`
	GamesPlayed    int     `json:"gamesPlayed"`
	Wins           int     `json:"wins"`
	WinRate        float64 `json:"winRate"`
	AttackWinRate  float64 `json:"attackWinRate"`
	DefenseWinRate float64 `json:"defenseWinRate"`
}

type MapStrength string

const (
	MapStrong  MapStrength = "strong"
	MapAverage MapStrength = "average"
	MapWeak    MapStrength = "weak"
)

type MapPoolEntry struct {
	MapName     string      `json:"mapName"`
	GamesPlayed int         `json:"gamesPlayed"`
	WinRate     float64     `json:"winRate"`
	Comfort     float64     `json:"comfort,omitempty"`
	Strength    MapStrength `json:"strength"`
}

// ============================================================================
// PLAYERS
// ============================================================================

type PlayerProfile struct {
	PlayerID        string           `json:"playerId"`
	Nickname        string           `json:"nickname"`
	Role            string           `json:"role"`
	TeamID          string           `json:"teamId"`
	GamesPlayed     int              `json:"gamesPlayed"`
	KDA             float64          `json:"kda"`
	AvgKills        float64          `json:"avgKills"`
	AvgDeaths       float64          `json:"avgDeaths"`
	AvgAssists      float64          `json:"avgAssists"`
	CharacterPool   []CharacterStats `json:"characterPool"`
	SignaturePicks  []string         `json:"signaturePicks"`
	ThreatLevel     int              `json:"threatLevel"`
	ThreatReason    string           `json:"threatReason"`
	Weaknesses      []Insight        `json:"weaknesses"`
	Tendencies      []string         `json:"tendencies"`
	Multikills      *MultikillStats  `json:"multikillStats,omitempty"`
	WeaponStats     []WeaponStat     `json:"weaponStats,omitempty"`
	SynergyPartners []SynergyPartner `json:"synergyPartners,omitempty"`
	AssistRatio     *float64         `json:"assistRatio,omitempty"`
	AbilityUsage    []AbilityUsage   `json:"abilityUsage,omitempty"`
}

type CharacterStats struct {
	Name     string   `json:"name"`
	Games    int      `json:"games"`
	Wins     int      `json:"wins"`
	Losses   int      `json:"losses"`
	WinRate  float64  `json:"winRate"`
	AvgKDA   *float64 `json:"avgKDA,omitempty"`
	PickRate float64  `json:"pickRate,omitempty"`
}

type MultikillStats struct {
	Doubles    int     `json:"doubles"`
	Triples    int     `json:"triples"`
	Quadras    int     `json:"quadras"`
	Pentas     int     `json:"pentas"`
	Total      int     `json:"totalMultikills"`
	AvgPerGame float64 `json:"avgPerGame"`
}

type WeaponStat struct {
	WeaponName string  `json:"weaponName"`
	Kills      int     `json:"kills"`
	KillShare  float64 `json:"killShare"`
}

type SynergyPartner struct {
	PlayerID        string  `json:"playerId"`
	PlayerName      string  `json:"playerName"`
	AssistsGiven    int     `json:"assistsGiven"`
	AssistsReceived int     `json:"assistsReceived"`
	SynergyScore    float64 `json:"synergyScore"`
}

type AbilityUsage struct {
	AbilityName  string  `json:"abilityName"`
	UsageCount   int     `json:"usageCount"`
	UsagePerGame float64 `json:"usagePerGame"`
	Kills        int     `json:"kills,omitempty"`
}

// ============================================================================
// COMPOSITIONS, TRENDS, STRATEGIES
// ============================================================================

type CompositionAnalysis struct {
	TopCompositions     []CompositionInsight `json:"topCompositions"`
	FirstPickPriorities []FirstPickPriority  `json:"firstPickPriorities"`
	CommonBans          []string             `json:"commonBans"`
	FlexPicks           []string             `json:"flexPicks"`
}

// CompositionInsight is a set of characters played together. Frequency and
// WinRate are independent statistics.
type CompositionInsight struct {
	Characters  []string `json:"characters"`
	Frequency   float64  `json:"frequency"`
	WinRate     float64  `json:"winRate"`
	GamesPlayed int      `json:"gamesPlayed"`
	Archetype   string   `json:"archetype,omitempty"`
}

type FirstPickPriority struct {
	Character   string  `json:"character"`
	Rate        float64 `json:"rate"`
	WinRate     float64 `json:"winRate"`
	GamesPlayed int     `json:"gamesPlayed"`
}

type TrendAnalysis struct {
	FormTrend     Form          `json:"formTrend"`
	RecentResults []MatchResult `json:"recentResults"`
	WinRateTrend  []float64     `json:"winRateTrend"`
	KDATrend      []float64     `json:"kdaTrend"`
}

type MatchResult struct {
	Date     string `json:"date"`
	Opponent string `json:"opponent"`
	Won      bool   `json:"won"`
	Score    string `json:"score"`
}

// StrategyInsight is one derived narrative line with the metric behind it.
type StrategyInsight struct {
	Text       string  `json:"text"`
	Metric     string  `json:"metric"`
	Value      float64 `json:"value"`
	SampleSize int     `json:"sampleSize"`
	Context    string  `json:"context"`
}

type CommonStrategies struct {
	AttackPatterns      []StrategyInsight `json:"attackPatterns"`
	DefenseSetups       []StrategyInsight `json:"defenseSetups"`
	ObjectivePriorities []StrategyInsight `json:"objectivePriorities"`
	TimingPatterns      []StrategyInsight `json:"timingPatterns"`
}

// Empty reports whether no strategy line was derived.
func (c CommonStrategies) Empty() bool {
	return len(c.AttackPatterns)+len(c.DefenseSetups)+len(c.ObjectivePriorities)+len(c.TimingPatterns) == 0
}

func upper(s string) string {
	return strings.ToUpper(s)
}
