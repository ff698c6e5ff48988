package main

import (
	"context"

	"places/internal/catalog"
	"places/internal/config"
	"places/pkg/domain"
	"places/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const (
	seedAdminUsername = "admin"
	seedUserUsername  = "user"
)

// seedCommand constructs the 'seed' subcommand that loads a demo dataset:
// an admin, a regular user and a handful of landmark places in mixed
// validation states with a few ratings.
func seedCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Loads demo users and places into the database",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			existing, err := strg.UserByUsername(ctx, seedAdminUsername)
			if err != nil {
				logger.Fatal(ctx, "could not check for existing seed data", zap.Error(err))
			}
			if existing != nil {
				logger.Info(ctx, "seed data already present, nothing to do")

				return
			}

			admin, err := strg.StoreUser(ctx, domain.User{Username: seedAdminUsername, Role: domain.RoleAdmin})
			if err != nil {
				logger.Fatal(ctx, "could not create admin user", zap.Error(err))
			}
			user, err := strg.StoreUser(ctx, domain.User{Username: seedUserUsername, Role: domain.RoleUser})
			if err != nil {
				logger.Fatal(ctx, "could not create regular user", zap.Error(err))
			}

			cat, err := catalog.New(strg, catalog.NewGate(strg), catalog.NewOptions(cfg))
			if err != nil {
				logger.Fatal(ctx, "could not create catalog service", zap.Error(err))
			}

			type seedPlace struct {
				draft   domain.PlaceDraft
				status  domain.ValidationStatus
				ratings map[domain.UserID]int
			}

			seeds := []seedPlace{
				{
					draft: domain.PlaceDraft{
						Name:        "Tour Eiffel",
						Description: "Monument emblématique de Paris",
						Location:    "Paris, France",
						Latitude:    48.8584,
						Longitude:   2.2945,
					},
					status:  domain.StatusValidated,
					ratings: map[domain.UserID]int{admin.ID: 9, user.ID: 8},
				},
				{
					draft: domain.PlaceDraft{
						Name:        "Colisée",
						Description: "Amphithéâtre antique au cœur de Rome",
						Location:    "Rome, Italie",
						Latitude:    41.8902,
						Longitude:   12.4922,
					},
					status:  domain.StatusValidated,
					ratings: map[domain.UserID]int{user.ID: 10},
				},
				{
					draft: domain.PlaceDraft{
						Name:        "Statue de la Liberté",
						Description: "Statue offerte par la France aux États-Unis",
						Location:    "New York, États-Unis",
						Latitude:    40.6892,
						Longitude:   -74.0445,
					},
					status: domain.StatusUnvalidated,
				},
				{
					draft: domain.PlaceDraft{
						Name:        "Grande Muraille",
						Description: "Fortification de plusieurs milliers de kilomètres",
						Location:    "Chine",
						Latitude:    40.4319,
						Longitude:   116.5704,
					},
					status: domain.StatusRejected,
				},
				{
					draft: domain.PlaceDraft{
						Name:        "Machu Picchu",
						Description: "Cité inca perchée dans les Andes",
						Location:    "Pérou",
						Latitude:    -13.1631,
						Longitude:   -72.545,
					},
					status:  domain.StatusValidated,
					ratings: map[domain.UserID]int{admin.ID: 10},
				},
			}

			for _, seed := range seeds {
				place, err := cat.Create(ctx, admin.ID, seed.draft)
				if err != nil {
					logger.Fatal(ctx, "could not create place",
						zap.String("name", seed.draft.Name), zap.Error(err))
				}

				switch seed.status {
				case domain.StatusValidated:
					if _, err := cat.Validate(ctx, admin.ID, place.ID); err != nil {
						logger.Fatal(ctx, "could not validate place",
							zap.String("name", seed.draft.Name), zap.Error(err))
					}
				case domain.StatusRejected:
					if _, err := cat.Reject(ctx, admin.ID, place.ID); err != nil {
						logger.Fatal(ctx, "could not reject place",
							zap.String("name", seed.draft.Name), zap.Error(err))
					}
				case domain.StatusUnvalidated:
					// create already leaves it unvalidated
				}

				for raterID, rating := range seed.ratings {
					if _, err := cat.Rate(ctx, raterID, place.ID, rating); err != nil {
						logger.Fatal(ctx, "could not rate place",
							zap.String("name", seed.draft.Name), zap.Error(err))
					}
				}
			}

			logger.Info(ctx, "seed data loaded",
				zap.String("adminID", admin.ID.String()),
				zap.String("userID", user.ID.String()),
				zap.Int("places", len(seeds)))
		},
	}

	return cmd
}
