package main

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/aquadark/tetris-server/internal/game"
	"github.com/aquadark/tetris-server/internal/httpserver"
	"github.com/aquadark/tetris-server/internal/store"
)

func main() {
	_ = godotenv.Load()
	if lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info")); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	mem := store.NewMemoryStore()
	srv := httpserver.New(mem, configFromEnv())
	port := getEnv("PORT", "5175")
	log.Info().Str("port", port).Msg("starting tetris-server")
	if err := srv.Start(":" + port); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}

// configFromEnv reads the engine tunables. Unset values fall through to the
// engine defaults (10×20 well, 0.55s gravity, 0.05s soft drop, 0.5s lock
// delay, 3-piece preview).
func configFromEnv() game.Config {
	return game.Config{
		WellW:            getEnvInt("WELL_W", 0),
		WellH:            getEnvInt("WELL_H", 0),
		BaseInterval:     getEnvFloat("GRAVITY_BASE", 0),
		SoftDropInterval: getEnvFloat("SOFT_DROP_INTERVAL", 0),
		LockDelay:        getEnvFloat("LOCK_DELAY", 0),
		NextCount:        getEnvInt("NEXT_COUNT", 0),
	}
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getEnvInt(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getEnvFloat(k string, def float64) float64 {
	if v := os.Getenv(k); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}
