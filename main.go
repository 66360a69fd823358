package main

import (
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"regenmon/internal/chat"
	"regenmon/internal/config"
	"regenmon/internal/economy"
	"regenmon/internal/engine"
	"regenmon/internal/i18n"
	"regenmon/internal/pet"
	"regenmon/internal/store"
	"regenmon/internal/ui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	tuning, err := config.LoadTuning(cfg.TuningPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "tuning: %v\n", err)
		os.Exit(1)
	}

	db, err := store.Open(cfg.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "store: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	record, found, err := db.Load(store.DefaultSlot)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load: %v\n", err)
		os.Exit(1)
	}
	if !found {
		record = pet.Record{} // empty name sends the UI to the hatch screen
	}

	locale := i18n.ParseLocale(cfg.Locale)
	backend := chat.NewClient(cfg.OpenAIKey, cfg.OpenAIBaseURL, cfg.OpenAIModel)
	if !backend.Available() {
		log.Printf("no api key configured; chat replies will use the fallback line")
	}

	session := engine.New(record, economy.NewLedger(tuning), backend, locale,
		func(r pet.Record) {
			if err := db.Replace(store.DefaultSlot, r); err != nil {
				log.Printf("persist failed: %v", err)
			}
		})

	p := tea.NewProgram(ui.NewModel(session))
	if _, err := p.Run(); err != nil {
		fmt.Printf("Alas, there's been an error: %v", err)
		os.Exit(1)
	}
}
