package models

type Volatility string

const (
	VolatilityLow    Volatility = "LOW"
	VolatilityMedium Volatility = "MEDIUM"
	VolatilityHigh   Volatility = "HIGH"
)

type GameType string

const (
	GameTypeVideoSlot     GameType = "VIDEO_SLOT"
	GameTypeLiveBlackjack GameType = "LIVE_BLACKJACK"
	GameTypeLiveRoulette  GameType = "LIVE_ROULETTE"
	GameTypeLiveGameShow  GameType = "LIVE_GAME_SHOW"
)

// Game is a static catalog descriptor. The backend never settles game rounds
// itself; min/max bet bounds are advisory limits for the game frame.
type Game struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Provider  string   `json:"provider"`
	Category  string   `json:"category"`
	Type      GameType `json:"type"`
	RTP       float64  `json:"rtp"`
	MinBetEUR float64  `json:"min_bet_eur"`
	MaxBetEUR float64  `json:"max_bet_eur"`
	IsLive    bool     `json:"is_live"`
	HasDemo   bool     `json:"has_demo"`

	Thumbnail   string `json:"thumbnail"`
	Description string `json:"description"`
	GameURL     string `json:"game_url"`
	DemoURL     string `json:"demo_url,omitempty"`

	Popularity int        `json:"popularity"`
	Volatility Volatility `json:"volatility"`
}

type GameProvider struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	GameCount int    `json:"game_count"`
}
