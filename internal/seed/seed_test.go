package seed

import (
	"context"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mergington/activities/internal/db"
)

func TestCatalog(t *testing.T) {
	catalog := Catalog()
	require.Len(t, catalog, 9)

	seen := make(map[string]bool)
	for _, entry := range catalog {
		assert.False(t, seen[entry.Name], "duplicate activity %q", entry.Name)
		seen[entry.Name] = true

		assert.NotEmpty(t, entry.Description, "%q has no description", entry.Name)
		assert.NotEmpty(t, entry.Schedule, "%q has no schedule", entry.Name)
		assert.Positive(t, entry.MaxParticipants, "%q has no capacity", entry.Name)
		assert.LessOrEqual(t, len(entry.Participants), entry.MaxParticipants,
			"%q seeded past capacity", entry.Name)
	}
}

func TestCatalog_ChessClubRoster(t *testing.T) {
	for _, entry := range Catalog() {
		if entry.Name != "Chess Club" {
			continue
		}
		assert.Equal(t, 12, entry.MaxParticipants)
		assert.Equal(t,
			[]string{"michael@mergington.edu", "daniel@mergington.edu"},
			entry.Participants,
		)
		return
	}
	t.Fatal("Chess Club missing from catalog")
}

// fakeTx records seed inserts in memory. Only the methods the seeder touches
// are implemented; the embedded interface covers the rest of pgx.Tx.
type fakeTx struct {
	pgx.Tx
	activities   int
	participants int
}

func (t *fakeTx) QueryRow(context.Context, string, ...any) pgx.Row {
	return countRow{n: t.activities}
}

func (t *fakeTx) Exec(_ context.Context, sql string, _ ...any) (pgconn.CommandTag, error) {
	switch {
	case strings.HasPrefix(sql, "INSERT INTO activities"):
		t.activities++
	case strings.HasPrefix(sql, "INSERT INTO participants"):
		t.participants++
	}
	return pgconn.NewCommandTag("INSERT 0 1"), nil
}

type countRow struct{ n int }

func (r countRow) Scan(dest ...any) error {
	*(dest[0].(*int)) = r.n
	return nil
}

// fakeRunner stands in for *db.PostgresDB and keeps the same transaction
// state across calls, the way a real store would between restarts.
type fakeRunner struct {
	tx *fakeTx
}

func (r *fakeRunner) WithTransaction(ctx context.Context, fn db.TransactionFn) error {
	return fn(ctx, r.tx)
}

func TestCreateDefaultData_SeedsEmptyStoreOnce(t *testing.T) {
	runner := &fakeRunner{tx: &fakeTx{}}
	lgr := zerolog.Nop()
	ctx := context.Background()

	wantParticipants := 0
	for _, entry := range Catalog() {
		wantParticipants += len(entry.Participants)
	}

	require.NoError(t, CreateDefaultData(ctx, runner, lgr))
	assert.Equal(t, len(Catalog()), runner.tx.activities)
	assert.Equal(t, wantParticipants, runner.tx.participants)

	// A second startup against the now non-empty store inserts nothing.
	require.NoError(t, CreateDefaultData(ctx, runner, lgr))
	assert.Equal(t, len(Catalog()), runner.tx.activities)
	assert.Equal(t, wantParticipants, runner.tx.participants)
}
