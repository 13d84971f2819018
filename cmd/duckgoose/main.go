package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"duckgoose/internal/app"
	"duckgoose/internal/config"
	"duckgoose/internal/ports/console"
)

// demoChannel is the single channel the console harness plays in.
const demoChannel = "console"

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	presenter := console.New(os.Stdout)
	director := app.NewDirector(cfg, presenter, log.Logger, nil)

	fmt.Println("duckgoose console: '<player> /start' begins a game, '<player> /end' stops it,")
	fmt.Println("'<player> <text>' plays (three indices, or 'goose'), Ctrl-D quits")

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		player, text, ok := strings.Cut(strings.TrimSpace(scanner.Text()), " ")
		if !ok || player == "" {
			continue
		}
		switch strings.TrimSpace(text) {
		case "/start":
			if _, err := director.StartGame(demoChannel); err != nil {
				log.Warn().Err(err).Str("player", player).Msg("start rejected")
			}
		case "/end":
			director.ForceEnd(demoChannel)
		default:
			director.HandleEvent(demoChannel, player, text)
		}
	}
	if err := scanner.Err(); err != nil {
		log.Fatal().Err(err).Msg("stdin read failed")
	}
}
