package seed

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"

	"github.com/mergington/activities/internal/app/repositories"
	"github.com/mergington/activities/internal/db"
)

// TxRunner runs a function inside a database transaction. *db.PostgresDB
// satisfies it.
type TxRunner interface {
	WithTransaction(ctx context.Context, fn db.TransactionFn) error
}

// Entry is one activity in the default catalog, together with its initial
// roster of participant emails.
type Entry struct {
	Name            string
	Description     string
	Schedule        string
	MaxParticipants int
	Participants    []string
}

// Catalog returns the default Mergington High School activity catalog that
// populates an empty store on first startup.
func Catalog() []Entry {
	return []Entry{
		{
			Name:            "Chess Club",
			Description:     "Learn strategies and compete in chess tournaments",
			Schedule:        "Fridays, 3:30 PM - 5:00 PM",
			MaxParticipants: 12,
			Participants:    []string{"michael@mergington.edu", "daniel@mergington.edu"},
		},
		{
			Name:            "Programming Class",
			Description:     "Learn programming fundamentals and build software projects",
			Schedule:        "Tuesdays and Thursdays, 3:30 PM - 4:30 PM",
			MaxParticipants: 20,
			Participants:    []string{"emma@mergington.edu", "sophia@mergington.edu"},
		},
		{
			Name:            "Gym Class",
			Description:     "Physical education and sports activities",
			Schedule:        "Mondays, Wednesdays, Fridays, 2:00 PM - 3:00 PM",
			MaxParticipants: 30,
			Participants:    []string{"john@mergington.edu", "olivia@mergington.edu"},
		},
		{
			Name:            "Soccer Team",
			Description:     "Join the school soccer team and compete in matches",
			Schedule:        "Tuesdays and Thursdays, 4:00 PM - 5:30 PM",
			MaxParticipants: 22,
			Participants:    []string{"liam@mergington.edu", "noah@mergington.edu"},
		},
		{
			Name:            "Basketball Team",
			Description:     "Practice and play basketball with the school team",
			Schedule:        "Wednesdays and Fridays, 3:30 PM - 5:00 PM",
			MaxParticipants: 15,
			Participants:    []string{"ava@mergington.edu", "mia@mergington.edu"},
		},
		{
			Name:            "Art Club",
			Description:     "Explore your creativity through painting and drawing",
			Schedule:        "Thursdays, 3:30 PM - 5:00 PM",
			MaxParticipants: 15,
			Participants:    []string{"amelia@mergington.edu", "harper@mergington.edu"},
		},
		{
			Name:            "Drama Club",
			Description:     "Act, direct, and produce plays and performances",
			Schedule:        "Mondays and Wednesdays, 4:00 PM - 5:30 PM",
			MaxParticipants: 20,
			Participants:    []string{"ella@mergington.edu", "scarlett@mergington.edu"},
		},
		{
			Name:            "Math Club",
			Description:     "Solve challenging problems and participate in math competitions",
			Schedule:        "Tuesdays, 3:30 PM - 4:30 PM",
			MaxParticipants: 10,
			Participants:    []string{"james@mergington.edu", "benjamin@mergington.edu"},
		},
		{
			Name:            "Debate Team",
			Description:     "Develop public speaking and argumentation skills",
			Schedule:        "Fridays, 4:00 PM - 5:30 PM",
			MaxParticipants: 12,
			Participants:    []string{"charlotte@mergington.edu", "henry@mergington.edu"},
		},
	}
}

// CreateDefaultData seeds the activity catalog if the store is empty. The
// existence check and every insert run inside one transaction, so a crashed
// seed leaves nothing behind and a restart retries cleanly. Any existing
// activity row skips seeding entirely.
func CreateDefaultData(ctx context.Context, database TxRunner, lgr zerolog.Logger) error {
	sb := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

	return database.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		count, err := repositories.NewActivityRepository(tx).CountActivities(ctx)
		if err != nil {
			return fmt.Errorf("failed to check existing activities: %w", err)
		}
		if count > 0 {
			lgr.Debug().Int("activities", count).Msg("Store already seeded, skipping")
			return nil
		}

		lgr.Info().Msg("Empty store detected, seeding default activity catalog...")

		for _, entry := range Catalog() {
			sql, args, err := sb.Insert("activities").
				Columns("name", "description", "schedule", "max_participants").
				Values(entry.Name, entry.Description, entry.Schedule, entry.MaxParticipants).
				ToSql()
			if err != nil {
				return fmt.Errorf("failed to build seed activity query: %w", err)
			}
			if _, err := tx.Exec(ctx, sql, args...); err != nil {
				return fmt.Errorf("failed to seed activity %q: %w", entry.Name, err)
			}

			for _, email := range entry.Participants {
				sql, args, err := sb.Insert("participants").
					Columns("activity_name", "email").
					Values(entry.Name, email).
					ToSql()
				if err != nil {
					return fmt.Errorf("failed to build seed participant query: %w", err)
				}
				if _, err := tx.Exec(ctx, sql, args...); err != nil {
					return fmt.Errorf("failed to seed participant %q for %q: %w", email, entry.Name, err)
				}
			}
		}

		lgr.Info().Int("activities", len(Catalog())).Msg("Default activity catalog seeded")
		return nil
	})
}
