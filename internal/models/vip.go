package models

// VIPLevel is a cashback bracket selected by cumulative wagered amount.
type VIPLevel struct {
	Level        int     `json:"level"`
	Name         string  `json:"name"`
	CashbackRate float64 `json:"cashback_rate"`
	Color        string  `json:"color"`
	MinWagerEUR  float64 `json:"min_wager_eur"`
}

// VIPLevels is ordered ascending by MinWagerEUR. The first entry has a zero
// threshold so every account matches at least one level.
var VIPLevels = []VIPLevel{
	{Level: 0, Name: "Bronze", CashbackRate: 0.1, Color: "#CD7F32", MinWagerEUR: 0},
	{Level: 1, Name: "Silver", CashbackRate: 0.3, Color: "#C0C0C0", MinWagerEUR: 1000},
	{Level: 2, Name: "Gold", CashbackRate: 0.5, Color: "#FFD700", MinWagerEUR: 10000},
	{Level: 3, Name: "Platinum", CashbackRate: 0.8, Color: "#E5E4E2", MinWagerEUR: 50000},
	{Level: 4, Name: "Diamond", CashbackRate: 1.2, Color: "#B9F2FF", MinWagerEUR: 250000},
}

// VIPLevelFor returns the highest level whose threshold is at or below the
// wagered total. Wagered totals only ever grow, so a level is never lost.
func VIPLevelFor(totalWageredEUR float64) VIPLevel {
	level := VIPLevels[0]
	for _, l := range VIPLevels {
		if totalWageredEUR >= l.MinWagerEUR {
			level = l
		}
	}
	return level
}
