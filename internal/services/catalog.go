package services

import (
	"sort"

	"casino-sim-backend/internal/models"
)

var GameCategories = []string{
	"All Games",
	"Slots",
	"Live Casino",
	"Table Games",
	"Jackpots",
	"New Games",
}

// Catalog is the static game list. The backend never runs game rounds; the
// catalog only feeds the lobby and the game frame.
type Catalog struct {
	games []models.Game
}

func NewCatalog() *Catalog {
	return &Catalog{games: defaultGames}
}

func (c *Catalog) All() []models.Game {
	out := make([]models.Game, len(c.games))
	copy(out, c.games)
	return out
}

func (c *Catalog) ByID(id string) (models.Game, bool) {
	for _, g := range c.games {
		if g.ID == id {
			return g, true
		}
	}
	return models.Game{}, false
}

func (c *Catalog) ByProvider(provider string) []models.Game {
	var out []models.Game
	for _, g := range c.games {
		if g.Provider == provider {
			out = append(out, g)
		}
	}
	return out
}

func (c *Catalog) ByCategory(category string) []models.Game {
	if category == "All Games" || category == "" {
		return c.All()
	}
	var out []models.Game
	for _, g := range c.games {
		if g.Category == category {
			out = append(out, g)
		}
	}
	return out
}

func (c *Catalog) Popular(limit int) []models.Game {
	if limit <= 0 {
		limit = 6
	}
	out := c.All()
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Popularity > out[j].Popularity
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

func (c *Catalog) Live() []models.Game {
	var out []models.Game
	for _, g := range c.games {
		if g.IsLive {
			out = append(out, g)
		}
	}
	return out
}

func (c *Catalog) Providers() []models.GameProvider {
	counts := make(map[string]int)
	var order []string
	for _, g := range c.games {
		if counts[g.Provider] == 0 {
			order = append(order, g.Provider)
		}
		counts[g.Provider]++
	}

	providers := make([]models.GameProvider, 0, len(order))
	for _, name := range order {
		providers = append(providers, models.GameProvider{
			ID:        slugify(name),
			Name:      name,
			GameCount: counts[name],
		})
	}
	return providers
}

func slugify(name string) string {
	out := make([]byte, 0, len(name))
	for i := 0; i < len(name); i++ {
		c := name[i]
		switch {
		case c >= 'A' && c <= 'Z':
			out = append(out, c+'a'-'A')
		case c >= 'a' && c <= 'z', c >= '0' && c <= '9':
			out = append(out, c)
		case c == ' ':
			out = append(out, '-')
		}
	}
	return string(out)
}

var defaultGames = []models.Game{
	{
		ID: "sweet-bonanza", Name: "Sweet Bonanza", Provider: "Pragmatic Play",
		Category: "Slots", Type: models.GameTypeVideoSlot,
		RTP: 96.51, MinBetEUR: 0.20, MaxBetEUR: 100.00, HasDemo: true,
		Thumbnail:   "https://placehold.co/400x300?text=Sweet+Bonanza",
		Description: "Sweet tumbling action with multipliers up to 21,100x your bet!",
		GameURL:     "/api/games/pragmatic/sweet-bonanza",
		DemoURL:     "/api/games/pragmatic/sweet-bonanza?demo=true",
		Popularity:  95, Volatility: models.VolatilityHigh,
	},
	{
		ID: "gates-of-olympus", Name: "Gates of Olympus", Provider: "Pragmatic Play",
		Category: "Slots", Type: models.GameTypeVideoSlot,
		RTP: 96.50, MinBetEUR: 0.20, MaxBetEUR: 125.00, HasDemo: true,
		Thumbnail:   "https://placehold.co/400x300?text=Gates+of+Olympus",
		Description: "Zeus rules the reels in this mythological adventure with massive multipliers!",
		GameURL:     "/api/games/pragmatic/gates-of-olympus",
		DemoURL:     "/api/games/pragmatic/gates-of-olympus?demo=true",
		Popularity:  92, Volatility: models.VolatilityHigh,
	},
	{
		ID: "sugar-rush", Name: "Sugar Rush", Provider: "Pragmatic Play",
		Category: "Slots", Type: models.GameTypeVideoSlot,
		RTP: 96.50, MinBetEUR: 0.20, MaxBetEUR: 100.00, HasDemo: true,
		Thumbnail:   "https://placehold.co/400x300?text=Sugar+Rush",
		Description: "Sweet wins await in this candy-filled adventure with tumbling reels!",
		GameURL:     "/api/games/pragmatic/sugar-rush",
		DemoURL:     "/api/games/pragmatic/sugar-rush?demo=true",
		Popularity:  88, Volatility: models.VolatilityHigh,
	},
	{
		ID: "big-bass-bonanza", Name: "Big Bass Bonanza", Provider: "Pragmatic Play",
		Category: "Slots", Type: models.GameTypeVideoSlot,
		RTP: 96.71, MinBetEUR: 0.10, MaxBetEUR: 250.00, HasDemo: true,
		Thumbnail:   "https://placehold.co/400x300?text=Big+Bass+Bonanza",
		Description: "Go fishing for big wins with the angler and his prized bass!",
		GameURL:     "/api/games/pragmatic/big-bass-bonanza",
		DemoURL:     "/api/games/pragmatic/big-bass-bonanza?demo=true",
		Popularity:  90, Volatility: models.VolatilityHigh,
	},
	{
		ID: "live-blackjack-classic", Name: "Live Blackjack Classic", Provider: "Evolution Gaming",
		Category: "Live Casino", Type: models.GameTypeLiveBlackjack,
		RTP: 99.28, MinBetEUR: 1.00, MaxBetEUR: 5000.00, IsLive: true,
		Thumbnail:   "https://placehold.co/400x300?text=Live+Blackjack",
		Description: "Classic blackjack with professional live dealers and multiple betting options.",
		GameURL:     "/api/games/evolution/live-blackjack-classic",
		Popularity:  85, Volatility: models.VolatilityMedium,
	},
	{
		ID: "live-roulette-european", Name: "Live European Roulette", Provider: "Evolution Gaming",
		Category: "Live Casino", Type: models.GameTypeLiveRoulette,
		RTP: 97.30, MinBetEUR: 0.50, MaxBetEUR: 5000.00, IsLive: true,
		Thumbnail:   "https://placehold.co/400x300?text=Live+Roulette",
		Description: "European roulette streamed live with a single zero wheel.",
		GameURL:     "/api/games/evolution/live-roulette-european",
		Popularity:  89, Volatility: models.VolatilityMedium,
	},
	{
		ID: "crazy-time", Name: "Crazy Time", Provider: "Evolution Gaming",
		Category: "Live Casino", Type: models.GameTypeLiveGameShow,
		RTP: 96.08, MinBetEUR: 0.10, MaxBetEUR: 2500.00, IsLive: true,
		Thumbnail:   "https://placehold.co/400x300?text=Crazy+Time",
		Description: "The flagship live game show with four bonus rounds and giant multipliers.",
		GameURL:     "/api/games/evolution/crazy-time",
		Popularity:  98, Volatility: models.VolatilityHigh,
	},
	{
		ID: "starburst", Name: "Starburst", Provider: "NetEnt",
		Category: "Slots", Type: models.GameTypeVideoSlot,
		RTP: 96.09, MinBetEUR: 0.10, MaxBetEUR: 100.00, HasDemo: true,
		Thumbnail:   "https://placehold.co/400x300?text=Starburst",
		Description: "The timeless gem slot with expanding wilds and win-both-ways reels.",
		GameURL:     "/api/games/netent/starburst",
		DemoURL:     "/api/games/netent/starburst?demo=true",
		Popularity:  94, Volatility: models.VolatilityLow,
	},
	{
		ID: "gonzo-quest", Name: "Gonzo's Quest", Provider: "NetEnt",
		Category: "Slots", Type: models.GameTypeVideoSlot,
		RTP: 95.97, MinBetEUR: 0.20, MaxBetEUR: 50.00, HasDemo: true,
		Thumbnail:   "https://placehold.co/400x300?text=Gonzos+Quest",
		Description: "Join Gonzo's search for Eldorado with avalanche reels and rising multipliers.",
		GameURL:     "/api/games/netent/gonzo-quest",
		DemoURL:     "/api/games/netent/gonzo-quest?demo=true",
		Popularity:  91, Volatility: models.VolatilityMedium,
	},
	{
		ID: "dead-or-alive-2", Name: "Dead or Alive 2", Provider: "NetEnt",
		Category: "Slots", Type: models.GameTypeVideoSlot,
		RTP: 96.82, MinBetEUR: 0.09, MaxBetEUR: 18.00, HasDemo: true,
		Thumbnail:   "https://placehold.co/400x300?text=Dead+or+Alive+2",
		Description: "High-volatility wild west action with sticky wilds and three free spin modes.",
		GameURL:     "/api/games/netent/dead-or-alive-2",
		DemoURL:     "/api/games/netent/dead-or-alive-2?demo=true",
		Popularity:  87, Volatility: models.VolatilityHigh,
	},
	{
		ID: "book-of-dead", Name: "Book of Dead", Provider: "Play'n GO",
		Category: "Slots", Type: models.GameTypeVideoSlot,
		RTP: 96.21, MinBetEUR: 0.01, MaxBetEUR: 100.00, HasDemo: true,
		Thumbnail:   "https://placehold.co/400x300?text=Book+of+Dead",
		Description: "Rich Wilde hunts ancient treasure with expanding free spin symbols.",
		GameURL:     "/api/games/playngo/book-of-dead",
		DemoURL:     "/api/games/playngo/book-of-dead?demo=true",
		Popularity:  93, Volatility: models.VolatilityHigh,
	},
	{
		ID: "reactoonz", Name: "Reactoonz", Provider: "Play'n GO",
		Category: "Slots", Type: models.GameTypeVideoSlot,
		RTP: 96.51, MinBetEUR: 0.20, MaxBetEUR: 100.00, HasDemo: true,
		Thumbnail:   "https://placehold.co/400x300?text=Reactoonz",
		Description: "Cascading aliens charge the Quantum Leap meter for electrifying wins.",
		GameURL:     "/api/games/playngo/reactoonz",
		DemoURL:     "/api/games/playngo/reactoonz?demo=true",
		Popularity:  86, Volatility: models.VolatilityHigh,
	},
}
