package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/zappabad/stockgame/internal/game"
	"github.com/zappabad/stockgame/internal/ledger"
)

// Runs the game without a UI: advance the market on a timer, place one
// scripted round-trip trade, and print snapshot lines each tick.
func main() {
	ticks := flag.Int("ticks", 20, "number of ticks to run")
	interval := flag.Duration("interval", 500*time.Millisecond, "delay between ticks")
	configPath := flag.String("config", "", "path to yaml config (optional)")
	flag.Parse()

	cfg := game.DefaultConfig()
	if *configPath != "" {
		loaded, err := game.LoadConfig(*configPath)
		if err != nil {
			log.Fatalf("load config: %v", err)
		}
		cfg = loaded
	}

	session := game.New(cfg)
	session.Create()

	first := session.Listing()[0]

	for i := 1; i <= *ticks; i++ {
		time.Sleep(*interval)
		if err := session.Tick(); err != nil {
			log.Fatalf("tick %d: %v", i, err)
		}

		// scripted round trip on the first listed company
		if i == 1 {
			if receipt, err := session.Trade(ledger.KindBuy, first.CompanyID(), 5); err != nil {
				log.Printf("buy failed: %v", err)
			} else {
				log.Printf("bought %d %s for %d", receipt.Quantity, receipt.Company, receipt.Amount)
			}
		}
		if i == *ticks/2 {
			if receipt, err := session.Trade(ledger.KindSell, first.CompanyID(), 5); err != nil {
				log.Printf("sell failed: %v", err)
			} else {
				log.Printf("sold %d %s for %d", receipt.Quantity, receipt.Company, receipt.Amount)
			}
		}

		snap, err := session.Snapshot()
		if err != nil {
			log.Fatalf("snapshot: %v", err)
		}

		fmt.Printf("\n=== Tick %d ===\n", i)
		fmt.Printf("Cash %d | Stocks %d | Total %d\n", snap.Cash, snap.PortfolioValue, snap.TotalAssets)
		for _, q := range snap.Companies {
			fmt.Printf("Price[%s] = %d (%+d)\n", q.Name, q.Price, q.Delta)
		}
	}

	snap, err := session.Snapshot()
	if err != nil {
		log.Fatalf("snapshot: %v", err)
	}
	fmt.Println("\n=== Trade log ===")
	for _, line := range snap.TradeLog {
		fmt.Println(line)
	}
}
