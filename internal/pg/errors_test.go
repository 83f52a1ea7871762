package pg

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestErrorClassification(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		undefined bool
		unique    bool
		noRows    bool
	}{
		{name: "Missing table", err: &pgconn.PgError{Code: "42P01"}, undefined: true},
		{name: "Wrapped missing table", err: fmt.Errorf("load: %w", &pgconn.PgError{Code: "42P01"}), undefined: true},
		{name: "Unique violation", err: &pgconn.PgError{Code: "23505"}, unique: true},
		{name: "No rows", err: pgx.ErrNoRows, noRows: true},
		{name: "Plain error", err: errors.New("boom")},
		{name: "Nil", err: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.undefined, IsUndefinedTable(tt.err))
			assert.Equal(t, tt.unique, IsUniqueViolation(tt.err))
			assert.Equal(t, tt.noRows, IsNoRows(tt.err))
		})
	}
}
