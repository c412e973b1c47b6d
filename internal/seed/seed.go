package seed

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	appModels "github.com/yigit/mentorly/internal/app/models"
	appRepos "github.com/yigit/mentorly/internal/app/repositories"
	"github.com/yigit/mentorly/internal/db"
	"github.com/yigit/mentorly/internal/pkg/helpers"
)

// DemoCoach is a listed mentor created for local development
type DemoCoach struct {
	ID             string
	FullName       string
	CurrentTitle   string
	CurrentCompany string
	Years          int
	LinkedinURL    string
	FocusAreas     []string
	PriceDollars   string
	AlumniSchool   string
}

// DemoCoaches are the coaches seeded into an empty database
var DemoCoaches = []DemoCoach{
	{
		ID:             "8b6f0c2e-5d1a-4f7e-9c3b-2a1d0e9f8a01",
		FullName:       "Jane Doe",
		CurrentTitle:   "Staff Software Engineer",
		CurrentCompany: "Northwind",
		Years:          11,
		LinkedinURL:    "https://www.linkedin.com/in/janedoe",
		FocusAreas:     []string{"System design", "Career growth"},
		PriceDollars:   "45",
		AlumniSchool:   "State University",
	},
	{
		ID:             "8b6f0c2e-5d1a-4f7e-9c3b-2a1d0e9f8a02",
		FullName:       "Omar Haddad",
		CurrentTitle:   "Product Manager",
		CurrentCompany: "Contoso",
		Years:          7,
		LinkedinURL:    "https://www.linkedin.com/in/omarhaddad",
		FocusAreas:     []string{"Product strategy", "Interview prep"},
		PriceDollars:   "49.50",
		AlumniSchool:   "Tech Institute",
	},
	{
		ID:             "8b6f0c2e-5d1a-4f7e-9c3b-2a1d0e9f8a03",
		FullName:       "Mei Tanaka",
		CurrentTitle:   "Engineering Director",
		CurrentCompany: "Fabrikam",
		Years:          18,
		LinkedinURL:    "https://www.linkedin.com/in/meitanaka",
		FocusAreas:     []string{"Leadership"},
		PriceDollars:   "1200",
		AlumniSchool:   "City College",
	},
}

// CreateDefaultData creates the demo coaches that don't exist yet. Existing
// profiles are left untouched. Each coach is written as itself so the
// row-level security policies apply as they would for a real signup.
func CreateDefaultData(ctx context.Context, gateway *db.Gateway, lgr zerolog.Logger) error {
	lgr.Info().Int("coaches", len(DemoCoaches)).Msg("Checking/Creating demo coaches...")
	var finalErr error

	for _, coach := range DemoCoaches {
		created, err := createCoach(ctx, gateway, coach)
		if err != nil {
			lgr.Error().Err(err).Str("coach", coach.FullName).Msg("Error creating demo coach")
			finalErr = errors.Join(finalErr, err)
			continue
		}
		if created {
			lgr.Info().Str("coach", coach.FullName).Msg("Demo coach created")
		}
	}

	return finalErr
}

func createCoach(ctx context.Context, gateway *db.Gateway, coach DemoCoach) (bool, error) {
	price, err := decimal.NewFromString(coach.PriceDollars)
	if err != nil {
		return false, err
	}
	cents, err := helpers.DollarsToCents(price)
	if err != nil {
		return false, err
	}
	now := helpers.NowUTC()
	fullName := coach.FullName
	desired := string(appModels.RoleMentor)

	created := false
	err = gateway.As(coach.ID).Run(ctx, func(q db.Querier) error {
		repos := appRepos.New(q)

		inserted, err := repos.Profiles.CreateIfAbsent(ctx, &appModels.Profile{
			ID:          coach.ID,
			FullName:    &fullName,
			DesiredRole: &desired,
			CreatedAt:   now,
			UpdatedAt:   now,
		})
		if err != nil || !inserted {
			return err
		}

		if err := repos.Mentors.Upsert(ctx, &appModels.Mentor{
			ID:              coach.ID,
			CurrentTitle:    coach.CurrentTitle,
			CurrentCompany:  coach.CurrentCompany,
			YearsExperience: coach.Years,
			LinkedinURL:     coach.LinkedinURL,
			FocusAreas:      coach.FocusAreas,
			PriceCents:      &cents,
			AlumniSchool:    coach.AlumniSchool,
			IsActive:        true,
			Status:          appModels.MentorStatusActive,
			CreatedAt:       now,
			UpdatedAt:       now,
		}); err != nil {
			return err
		}

		if err := repos.Profiles.PromoteToMentor(ctx, coach.ID, nil, now); err != nil {
			return err
		}
		created = true
		return nil
	})
	return created, err
}
