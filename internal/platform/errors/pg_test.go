package errors

import (
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func TestIsDuplicateKey(t *testing.T) {
	err := &pgconn.PgError{Code: "23505", ConstraintName: "blog_posts_slug_key"}
	if !IsDuplicateKey(err) {
		t.Fatal("expected duplicate key")
	}
	wrapped := fmt.Errorf("insert: %w", err)
	if !IsDuplicateKey(wrapped) {
		t.Fatal("expected duplicate key through wrapping")
	}
}

func TestFromPostgres_MapsCodes(t *testing.T) {
	cases := []struct {
		sqlstate string
		want     ErrorCode
	}{
		{"23505", ErrorCodeDuplicateKey},
		{"23503", ErrorCodeInvalidArgument},
		{"23502", ErrorCodeValidation},
		{"22001", ErrorCodeInvalidArgument},
		{"57P03", ErrorCodeUnavailable},
		{"XX000", ErrorCodeDB},
	}
	for _, c := range cases {
		err := FromPostgres(&pgconn.PgError{Code: c.sqlstate}, "query failed")
		if CodeOf(err) != c.want {
			t.Fatalf("sqlstate %s: expected code %d got %d", c.sqlstate, c.want, CodeOf(err))
		}
	}
}

func TestFromPostgres_NonPgError(t *testing.T) {
	err := FromPostgres(fmt.Errorf("conn reset"), "query failed")
	if CodeOf(err) != ErrorCodeDB {
		t.Fatalf("expected generic db code got %d", CodeOf(err))
	}
}

func TestAttachFieldFromPg_ConstraintName(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23505", ConstraintName: "blog_posts_slug_key"}
	err := FromPostgresWithField(pgErr, "create blog post")

	e, ok := As(err)
	if !ok {
		t.Fatal("expected project error")
	}
	if e.Field() != "slug" {
		t.Fatalf("expected field slug got %q", e.Field())
	}
}

func TestAttachFieldFromPg_ColumnNameWins(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23502", ColumnName: "title", ConstraintName: "whatever_key"}
	err := FromPostgresWithField(pgErr, "create blog post")

	e, _ := As(err)
	if e.Field() != "title" {
		t.Fatalf("expected field title got %q", e.Field())
	}
}
