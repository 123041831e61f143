package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"lmsadmin/internal/config"
	"lmsadmin/internal/gateway"
	"lmsadmin/internal/logger"
	"lmsadmin/internal/session"
	"lmsadmin/internal/state"
)

func main() {
	log := logger.New()

	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("no .env file found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Msgf("Error loading config: %v", err)
	}

	stateDir, err := cfg.ResolveStateDir()
	if err != nil {
		log.Fatal().Msgf("Error resolving state dir: %v", err)
	}

	sessions := session.NewStore(stateDir, log)
	if err := sessions.Init(); err != nil {
		log.Fatal().Msgf("Error restoring session: %v", err)
	}
	if sessions.Expired() {
		log.Warn().Msg("stored session has expired, sign in again")
		_ = sessions.Clear()
	}

	cli := &commandLine{
		gw:       gateway.New(cfg.APIBaseURL, cfg.RequestTimeout(), sessions, log),
		sessions: sessions,
		courses:  state.Courses(),
		lectures: state.Lectures(),
		logger:   log,
		in:       os.Stdin,
		out:      os.Stdout,
	}

	if err := cli.run(context.Background(), os.Args); err != nil {
		if errors.Is(err, errHelp) {
			os.Exit(2)
		}
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
