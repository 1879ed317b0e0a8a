// Command createuser creates a login account, or resets the password of an
// existing one.
//
//	createuser <username> <password>
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/lshigami/studydash/config"
	"github.com/lshigami/studydash/database"
	"github.com/lshigami/studydash/internal/logger"
	"github.com/lshigami/studydash/internal/repository"
	"github.com/lshigami/studydash/internal/service"
	"github.com/rs/zerolog/log"
)

func main() {
	if len(os.Args) != 3 {
		fmt.Fprintln(os.Stderr, "usage: createuser <username> <password>")
		os.Exit(2)
	}

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}
	logger.Init(cfg.Debug)

	db, err := database.NewDatabase(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open database")
	}
	if err := database.AutoMigrate(db); err != nil {
		log.Fatal().Err(err).Msg("Failed to migrate database")
	}

	accounts := service.NewAccountService(repository.NewUserRepository(db))
	user, created, err := accounts.EnsureAccount(context.Background(), os.Args[1], os.Args[2])
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create user")
	}
	if created {
		fmt.Printf("Created user %q (id %d)\n", user.Username, user.ID)
	} else {
		fmt.Printf("Reset password of user %q (id %d)\n", user.Username, user.ID)
	}
}
