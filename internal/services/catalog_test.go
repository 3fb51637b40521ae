package services_test

import (
	"testing"

	"casino-sim-backend/internal/services"
)

func TestCatalog(t *testing.T) {
	catalog := services.NewCatalog()

	all := catalog.All()
	if len(all) == 0 {
		t.Fatal("Catalog should not be empty")
	}

	game, ok := catalog.ByID("sweet-bonanza")
	if !ok {
		t.Fatal("sweet-bonanza should exist")
	}
	if game.Provider != "Pragmatic Play" {
		t.Errorf("Unexpected provider: %s", game.Provider)
	}
	if game.MinBetEUR <= 0 || game.MaxBetEUR <= game.MinBetEUR {
		t.Errorf("Bet bounds look wrong: min=%f max=%f", game.MinBetEUR, game.MaxBetEUR)
	}

	if _, ok := catalog.ByID("no-such-game"); ok {
		t.Error("Unknown ID should not resolve")
	}

	if got := catalog.ByCategory("All Games"); len(got) != len(all) {
		t.Errorf("All Games should return everything: %d vs %d", len(got), len(all))
	}
	for _, g := range catalog.ByCategory("Slots") {
		if g.Category != "Slots" {
			t.Errorf("Category filter leaked %s", g.ID)
		}
	}
	for _, g := range catalog.ByProvider("NetEnt") {
		if g.Provider != "NetEnt" {
			t.Errorf("Provider filter leaked %s", g.ID)
		}
	}

	popular := catalog.Popular(3)
	if len(popular) != 3 {
		t.Fatalf("Expected 3 popular games, got %d", len(popular))
	}
	for i := 1; i < len(popular); i++ {
		if popular[i].Popularity > popular[i-1].Popularity {
			t.Error("Popular games should be sorted descending")
		}
	}
	if popular[0].ID != "crazy-time" {
		t.Errorf("Expected crazy-time as most popular, got %s", popular[0].ID)
	}

	for _, g := range catalog.Live() {
		if !g.IsLive {
			t.Errorf("Live filter leaked %s", g.ID)
		}
	}

	providers := catalog.Providers()
	if len(providers) != 4 {
		t.Errorf("Expected 4 providers, got %d", len(providers))
	}
	total := 0
	for _, p := range providers {
		if p.ID == "" {
			t.Errorf("Provider %s should have a slug", p.Name)
		}
		total += p.GameCount
	}
	if total != len(all) {
		t.Errorf("Provider counts should add up to %d, got %d", len(all), total)
	}
}
