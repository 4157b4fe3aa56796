package models

// Raw* types mirror every shape the scouting backend has been seen to emit.
// They are decoded with UnmarshalFlex and only ever read by the normalizer.

type RawTeam struct {
	ID      FlexString `json:"id"`
	Name    string     `json:"name"`
	LogoURL string     `json:"logoUrl"`
	Color   string     `json:"color"`
}

type RawReport struct {
	ID               FlexString         `json:"id"`
	GeneratedAt      string             `json:"generatedAt"`
	OpponentTeam     *RawTeam           `json:"opponentTeam"`
	Title            FlexString         `json:"title"`
	MatchesAnalyzed  FlexFloat          `json:"matchesAnalyzed"`
	ExecutiveSummary string             `json:"executiveSummary"`
	HowToWin         *RawHowToWin       `json:"howToWin"`
	TeamStrategy     *RawTeamAnalysis   `json:"teamStrategy"`
	TeamAnalysis     *RawTeamAnalysis   `json:"teamAnalysis"`
	PlayerProfiles   []RawPlayerProfile `json:"playerProfiles"`
	Compositions     *RawCompositions   `json:"compositions"`
	TrendAnalysis    *RawTrendAnalysis  `json:"trendAnalysis"`
}

// ============================================================================
// HOW TO WIN (modern and legacy shapes)
// ============================================================================

type RawHowToWin struct {
	WinCondition      string    `json:"winCondition"`
	ConfidenceScore   FlexFloat `json:"confidenceScore"`
	Warnings          []string  `json:"warnings"`
	SampleSizeWarning string    `json:"sampleSizeWarning"`

	// Modern shape
	Weaknesses           []RawWeakness       `json:"weaknesses"`
	DraftRecommendations []RawDraftRec       `json:"draftRecommendations"`
	InGameStrategies     []RawInGameStrategy `json:"inGameStrategies"`
	TargetPlayers        []RawPlayerTarget   `json:"targetPlayers"`

	// Legacy shape
	ActionableInsights []RawActionableInsight `json:"actionableInsights"`
	DraftStrategy      *RawDraftStrategy      `json:"draftStrategy"`
	InGameStrategy     []RawPhaseStrategy     `json:"inGameStrategy"`
}

type RawWeakness struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Evidence    string    `json:"evidence"`
	Impact      FlexFloat `json:"impact"`
}

type RawDraftRec struct {
	Type      string    `json:"type"`
	Character string    `json:"character"`
	Reason    string    `json:"reason"`
	Priority  FlexFloat `json:"priority"`
}

type RawInGameStrategy struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Timing      string `json:"timing"`
	Evidence    string `json:"evidence"`
}

type RawPlayerTarget struct {
	PlayerName string    `json:"playerName"`
	Role       string    `json:"role"`
	Reason     string    `json:"reason"`
	Priority   FlexFloat `json:"priority"`
}

type RawActionableInsight struct {
	Recommendation string    `json:"recommendation"`
	DataBacking    string    `json:"dataBacking"`
	Impact         string    `json:"impact"`
	ActionType     string    `json:"actionType"`
	Confidence     FlexFloat `json:"confidence"`
}

type RawDraftInsight struct {
	Character  string    `json:"character"`
	Reason     string    `json:"reason"`
	PlayerName string    `json:"playerName"`
	WinRate    FlexFloat `json:"winRate"`
	PickRate   FlexFloat `json:"pickRate"`
}

type RawDraftStrategy struct {
	PriorityBans     []RawDraftInsight `json:"priorityBans"`
	RecommendedPicks []RawDraftInsight `json:"recommendedPicks"`
	TargetPicks      []RawDraftInsight `json:"targetPicks"`
}

type RawPhaseStrategy struct {
	Phase    string `json:"phase"`
	Timing   string `json:"timing"`
	Strategy string `json:"strategy"`
	Priority string `json:"priority"`
}

// ============================================================================
// TEAM ANALYSIS
// ============================================================================

type RawInsight struct {
	Text        string    `json:"text"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Value       FlexFloat `json:"value"`
	SampleSize  FlexFloat `json:"sampleSize"`
	Importance  string    `json:"importance"`
}

type RawTeamAnalysis struct {
	TeamID          FlexString     `json:"teamId"`
	TeamName        string         `json:"teamName"`
	Title           FlexString     `json:"title"`
	MatchesAnalyzed FlexFloat      `json:"matchesAnalyzed"`
	GamesAnalyzed   FlexFloat      `json:"gamesAnalyzed"`
	WinRate         FlexFloat      `json:"winRate"`
	RecentForm      string         `json:"recentForm"`
	Strengths       []RawInsight   `json:"strengths"`
	Weaknesses      []RawInsight   `json:"weaknesses"`
	LoLMetrics      *RawLoLMetrics `json:"lolMetrics"`
	VALMetrics      *RawVALMetrics `json:"valMetrics"`
}

type RawLoLMetrics struct {
	FirstBloodRate    FlexFloat `json:"firstBloodRate"`
	FirstDragonRate   FlexFloat `json:"firstDragonRate"`
	FirstTowerRate    FlexFloat `json:"firstTowerRate"`
	FirstTowerAvgTime FlexFloat `json:"firstTowerAvgTime"`
	GoldDiff15        FlexFloat `json:"goldDiff15"`
	DragonControlRate FlexFloat `json:"dragonControlRate"`
	HeraldControlRate FlexFloat `json:"heraldControlRate"`
	BaronControlRate  FlexFloat `json:"baronControlRate"`
	ElderDragonRate   FlexFloat `json:"elderDragonRate"`
	AvgGameDuration   FlexFloat `json:"avgGameDuration"`
	EarlyGameRating   FlexFloat `json:"earlyGameRating"`
	MidGameRating     FlexFloat `json:"midGameRating"`
	LateGameRating    FlexFloat `json:"lateGameRating"`
	AggressionScore   FlexFloat `json:"aggressionScore"`
	WinConditions     []string  `json:"winConditions"`
}

type RawEconomyStats struct {
	EcoRounds       RoundCount `json:"ecoRounds"`
	ForceRounds     RoundCount `json:"forceRounds"`
	FullBuyRounds   RoundCount `json:"fullBuyRounds"`
	EcoWins         FlexFloat  `json:"ecoWins"`
	EcoWinRate      FlexFloat  `json:"ecoWinRate"`
	ForceWins       FlexFloat  `json:"forceWins"`
	ForceWinRate    FlexFloat  `json:"forceWinRate"`
	FullBuyWins     FlexFloat  `json:"fullBuyWins"`
	FullBuyWinRate  FlexFloat  `json:"fullBuyWinRate"`
	AvgLoadoutValue FlexFloat  `json:"avgLoadoutValue"`
}

type RawMapStats struct {
	MapName        string    `json:"mapName"`
	GamesPlayed    FlexFloat `json:"gamesPlayed"`
	Wins           FlexFloat `json:"wins"`
	WinRate        FlexFloat `json:"winRate"`
	AttackWinRate  FlexFloat `json:"attackWinRate"`
	DefenseWinRate FlexFloat `json:"defenseWinRate"`
}

type RawMapPoolEntry struct {
	Map         string    `json:"map"`
	MapName     string    `json:"mapName"`
	Games       FlexFloat `json:"games"`
	GamesPlayed FlexFloat `json:"gamesPlayed"`
	Comfort     FlexFloat `json:"comfort"`
	Strength    string    `json:"strength"`
	WinRate     FlexFloat `json:"winRate"`
}

type RawVALMetrics struct {
	AttackWinRate        FlexFloat              `json:"attackWinRate"`
	DefenseWinRate       FlexFloat              `json:"defenseWinRate"`
	PistolWinRate        FlexFloat              `json:"pistolWinRate"`
	AttackPistolWinRate  FlexFloat              `json:"attackPistolWinRate"`
	DefensePistolWinRate FlexFloat              `json:"defensePistolWinRate"`
	EcoRoundWinRate      FlexFloat              `json:"ecoRoundWinRate"`
	ForceBuyWinRate      FlexFloat              `json:"forceBuyWinRate"`
	FullBuyWinRate       FlexFloat              `json:"fullBuyWinRate"`
	AvgTeamLoadout       FlexFloat              `json:"avgTeamLoadout"`
	EconomyStats         *RawEconomyStats       `json:"economyStats"`
	FirstBloodRate       FlexFloat              `json:"firstBloodRate"`
	FirstDeathRate       FlexFloat              `json:"firstDeathRate"`
	MapStats             map[string]RawMapStats `json:"mapStats"`
	MapPool              []RawMapPoolEntry      `json:"mapPool"`
	AggressionScore      FlexFloat              `json:"aggressionScore"`
	ClutchRate           FlexFloat              `json:"clutchRate"`
}

// ============================================================================
// PLAYERS
// ============================================================================

type RawCharacterStats struct {
	Name        string    `json:"name"`
	Character   string    `json:"character"`
	Games       FlexFloat `json:"games"`
	GamesPlayed FlexFloat `json:"gamesPlayed"`
	Wins        FlexFloat `json:"wins"`
	Losses      FlexFloat `json:"losses"`
	WinRate     FlexFloat `json:"winRate"`
	AvgKDA      FlexFloat `json:"avgKDA"`
	KDA         FlexFloat `json:"kda"`
	PickRate    FlexFloat `json:"pickRate"`
}

type RawMultikillStats struct {
	Doubles         FlexFloat `json:"doubles"`
	DoubleKills     FlexFloat `json:"doubleKills"`
	Triples         FlexFloat `json:"triples"`
	TripleKills     FlexFloat `json:"tripleKills"`
	Quadras         FlexFloat `json:"quadras"`
	QuadraKills     FlexFloat `json:"quadraKills"`
	Pentas          FlexFloat `json:"pentas"`
	PentaKills      FlexFloat `json:"pentaKills"`
	AvgPerGame      FlexFloat `json:"avgPerGame"`
	TotalMultikills FlexFloat `json:"totalMultikills"`
}

type RawWeaponStat struct {
	Weapon     string    `json:"weapon"`
	WeaponName string    `json:"weaponName"`
	Kills      FlexFloat `json:"kills"`
	Percentage FlexFloat `json:"percentage"`
	KillShare  FlexFloat `json:"killShare"`
}

type RawSynergyPartner struct {
	PlayerID        FlexString `json:"playerId"`
	PlayerName      string     `json:"playerName"`
	AssistsGiven    FlexFloat  `json:"assistsGiven"`
	AssistsReceived FlexFloat  `json:"assistsReceived"`
	SynergyScore    FlexFloat  `json:"synergyScore"`
}

type RawAbilityUsage struct {
	Ability      string    `json:"ability"`
	AbilityID    string    `json:"abilityId"`
	AbilityName  string    `json:"abilityName"`
	Uses         FlexFloat `json:"uses"`
	UsageCount   FlexFloat `json:"usageCount"`
	UsagePerGame FlexFloat `json:"usagePerGame"`
	Kills        FlexFloat `json:"kills"`
}

type RawPlayerProfile struct {
	PlayerID        FlexString          `json:"playerId"`
	Nickname        string              `json:"nickname"`
	Role            string              `json:"role"`
	TeamID          FlexString          `json:"teamId"`
	GamesPlayed     FlexFloat           `json:"gamesPlayed"`
	KDA             FlexFloat           `json:"kda"`
	AvgKills        FlexFloat           `json:"avgKills"`
	AvgDeaths       FlexFloat           `json:"avgDeaths"`
	AvgAssists      FlexFloat           `json:"avgAssists"`
	CharacterPool   []RawCharacterStats `json:"characterPool"`
	SignaturePicks  []string            `json:"signaturePicks"`
	ThreatLevel     FlexFloat           `json:"threatLevel"`
	ThreatReason    string              `json:"threatReason"`
	Weaknesses      []RawInsight        `json:"weaknesses"`
	Tendencies      []string            `json:"tendencies"`
	MultikillStats  *RawMultikillStats  `json:"multikillStats"`
	WeaponStats     []RawWeaponStat     `json:"weaponStats"`
	SynergyPartners []RawSynergyPartner `json:"synergyPartners"`
	AssistRatio     FlexFloat           `json:"assistRatio"`
	AbilityUsage    []RawAbilityUsage   `json:"abilityUsage"`
}

// ============================================================================
// COMPOSITIONS & TRENDS
// ============================================================================

type RawComposition struct {
	Characters  []string  `json:"characters"`
	Frequency   FlexFloat `json:"frequency"`
	WinRate     FlexFloat `json:"winRate"`
	GamesPlayed FlexFloat `json:"gamesPlayed"`
	Archetype   string    `json:"archetype"`
}

type RawFirstPick struct {
	Character   string    `json:"character"`
	Rate        FlexFloat `json:"rate"`
	WinRate     FlexFloat `json:"winRate"`
	GamesPlayed FlexFloat `json:"gamesPlayed"`
}

type RawCompositions struct {
	TopCompositions     []RawComposition `json:"topCompositions"`
	FirstPickPriorities []RawFirstPick   `json:"firstPickPriorities"`
	CommonBans          []string         `json:"commonBans"`
	FlexPicks           []string         `json:"flexPicks"`
}

type RawMatchResult struct {
	Date     string     `json:"date"`
	Opponent string     `json:"opponent"`
	Won      bool       `json:"won"`
	Score    FlexString `json:"score"`
}

type RawTrendAnalysis struct {
	FormTrend     string           `json:"formTrend"`
	RecentResults []RawMatchResult `json:"recentResults"`
	WinRateTrend  []FlexFloat      `json:"winRateTrend"`
	KDATrend      []FlexFloat      `json:"kdaTrend"`
}

// ============================================================================
// HEAD TO HEAD
// ============================================================================

type RawH2HGame struct {
	GameNumber FlexFloat  `json:"gameNumber"`
	WinnerID   FlexString `json:"winnerId"`
	Duration   FlexFloat  `json:"duration"`
}

type RawH2HMatch struct {
	MatchID        FlexString   `json:"matchId"`
	Date           string       `json:"date"`
	Winner         FlexString   `json:"winner"`
	Score          FlexString   `json:"score"`
	TournamentName string       `json:"tournamentName"`
	Games          []RawH2HGame `json:"games"`
}

type RawMatchupPlayer struct {
	PlayerID FlexString `json:"playerId"`
	Nickname string     `json:"nickname"`
	Role     string     `json:"role"`
	WinRate  FlexFloat  `json:"winRate"`
	AvgKDA   FlexFloat  `json:"avgKDA"`
}

type RawKeyMatchup struct {
	Player1      RawMatchupPlayer `json:"player1"`
	Player2      RawMatchupPlayer `json:"player2"`
	GamesPlayed  FlexFloat        `json:"gamesPlayed"`
	Significance string           `json:"significance"`
}

type RawH2HStats struct {
	TotalMatches    FlexFloat       `json:"totalMatches"`
	Team1Wins       FlexFloat       `json:"team1Wins"`
	Team2Wins       FlexFloat       `json:"team2Wins"`
	AvgGameDuration FlexFloat       `json:"avgGameDuration"`
	CommonPicks     *CommonPicks    `json:"commonPicks"`
	KeyMatchups     []RawKeyMatchup `json:"keyMatchups"`
}

type RawStyleComparison struct {
	Team1EarlyGameRating FlexFloat `json:"team1EarlyGameRating"`
	Team2EarlyGameRating FlexFloat `json:"team2EarlyGameRating"`
	EarlyGameAdvantage   string    `json:"earlyGameAdvantage"`
	EarlyGameInsight     string    `json:"earlyGameInsight"`
	Team1MidGameRating   FlexFloat `json:"team1MidGameRating"`
	Team2MidGameRating   FlexFloat `json:"team2MidGameRating"`
	MidGameAdvantage     string    `json:"midGameAdvantage"`
	MidGameInsight       string    `json:"midGameInsight"`
	Team1LateGameRating  FlexFloat `json:"team1LateGameRating"`
	Team2LateGameRating  FlexFloat `json:"team2LateGameRating"`
	LateGameAdvantage    string    `json:"lateGameAdvantage"`
	LateGameInsight      string    `json:"lateGameInsight"`
	Team1Aggression      FlexFloat `json:"team1Aggression"`
	Team2Aggression      FlexFloat `json:"team2Aggression"`
	StyleInsight         string    `json:"styleInsight"`
}

// RawHeadToHead accepts the flat matchup response as well as the nested
// shape where the record lives under "stats".
type RawHeadToHead struct {
	Team1           *RawTeam            `json:"team1"`
	Team2           *RawTeam            `json:"team2"`
	Team1ID         FlexString          `json:"team1Id"`
	Team1Name       string              `json:"team1Name"`
	Team2ID         FlexString          `json:"team2Id"`
	Team2Name       string              `json:"team2Name"`
	Title           FlexString          `json:"title"`
	TotalMatches    FlexFloat           `json:"totalMatches"`
	Team1Wins       FlexFloat           `json:"team1Wins"`
	Team2Wins       FlexFloat           `json:"team2Wins"`
	AvgGameDuration FlexFloat           `json:"avgGameDuration"`
	Stats           *RawH2HStats        `json:"stats"`
	MatchHistory    []RawH2HMatch       `json:"matchHistory"`
	StyleComparison *RawStyleComparison `json:"styleComparison"`
	Insights        TextList            `json:"insights"`
	Warnings        TextList            `json:"warnings"`
	ConfidenceScore FlexFloat           `json:"confidenceScore"`
}
