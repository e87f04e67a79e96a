// Command seed populates the database with randomised user accounts for
// manual testing of the pagination and lookup queries.
package main

import (
	"context"
	"errors"
	"fmt"
	"math/rand"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/osouza/go-user-accounts/internal/config"
	"github.com/osouza/go-user-accounts/internal/logger"
	"github.com/osouza/go-user-accounts/internal/store"
	"github.com/osouza/go-user-accounts/models"
)

// seedPassword is the plaintext behind every seeded account, so that seeded
// users can be logged in with during manual testing.
const seedPassword = "123abc"

var firstNames = []string{
	"Alice", "Bruno", "Carla", "Diego", "Elena",
	"Felipe", "Gabriela", "Hugo", "Isabela", "Otavio",
}

var lastNames = []string{
	"Almeida", "Barbosa", "Costa", "Dias", "Ferreira",
	"Gomes", "Lima", "Martins", "Oliveira", "Souza",
}

var cities = []string{"Natal", "Recife", "Fortaleza", "Salvador", "Belo Horizonte"}

func main() {
	log := logger.NewLogger("accounts-seed")

	cfg, err := config.GetConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx := context.Background()

	db, err := store.NewConnectPostgres(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	if err := db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error running migrations")
	}

	storages := store.NewStorages(db, log)

	hash, err := bcrypt.GenerateFromPassword([]byte(seedPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal().Err(err).Msg("error hashing seed password")
	}

	created := 0
	for i := 0; i < cfg.Seed.Count; i++ {
		user, err := storages.Users.CreateUser(ctx, randomUser(string(hash)))
		if errors.Is(err, store.ErrEmailAlreadyExists) {
			continue
		}
		if err != nil {
			log.Fatal().Err(err).Msg("error creating seed user")
		}
		created++

		// give a share of the users an address so that nested queries
		// have something to resolve
		if i%3 == 0 {
			if _, err := storages.Users.CreateAddress(ctx, randomAddress(user.ID)); err != nil {
				log.Fatal().Err(err).Int64("user_id", user.ID).Msg("error creating seed address")
			}
		}
	}

	log.Info().Int("created", created).Msg("seed finished")
}

func randomUser(passwordHash string) models.User {
	first := firstNames[rand.Intn(len(firstNames))]
	last := lastNames[rand.Intn(len(lastNames))]
	return models.User{
		Name:      fmt.Sprintf("%s %s", first, last),
		Email:     fmt.Sprintf("%s.%s@example.com", first, uuid.NewString()[:8]),
		Password:  passwordHash,
		BirthDate: fmt.Sprintf("%02d-%02d-%d", 1+rand.Intn(28), 1+rand.Intn(12), 1950+rand.Intn(55)),
	}
}

func randomAddress(userID int64) models.Address {
	return models.Address{
		UserID:       userID,
		ZipCode:      59000000 + rand.Intn(999999),
		Street:       fmt.Sprintf("Rua %s", lastNames[rand.Intn(len(lastNames))]),
		StreetNumber: 1 + rand.Intn(2000),
		City:         cities[rand.Intn(len(cities))],
		State:        "RN",
	}
}
