package dberrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsDuplicateConstraintError(t *testing.T) {
	dup := &pgconn.PgError{Code: "23505", ConstraintName: "participants_activity_name_email_key"}

	assert.True(t, IsDuplicateConstraintError(dup, "participants_activity_name_email_key"))
	assert.True(t, IsDuplicateConstraintError(fmt.Errorf("insert: %w", dup), "participants_activity_name_email_key"))
	assert.False(t, IsDuplicateConstraintError(dup, "activities_pkey"))
	assert.False(t, IsDuplicateConstraintError(&pgconn.PgError{Code: "23503", ConstraintName: "participants_activity_name_email_key"}, "participants_activity_name_email_key"))
	assert.False(t, IsDuplicateConstraintError(errors.New("plain error"), "participants_activity_name_email_key"))
	assert.False(t, IsDuplicateConstraintError(nil, "participants_activity_name_email_key"))
}
