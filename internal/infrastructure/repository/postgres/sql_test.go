package postgres

import (
	"database/sql"
	"fmt"
	"testing"

	"github.com/lib/pq"
)

func TestIsNotFound(t *testing.T) {
	if !isNotFound(sql.ErrNoRows) {
		t.Fatalf("expected true for sql.ErrNoRows")
	}
	if !isNotFound(fmt.Errorf("wrapped: %w", sql.ErrNoRows)) {
		t.Fatalf("expected true for wrapped sql.ErrNoRows")
	}
	if isNotFound(fmt.Errorf("pq: connection refused")) {
		t.Fatalf("expected false for unrelated error")
	}
}

func TestIsUniqueViolation(t *testing.T) {
	err := &pq.Error{Code: pqUniqueViolation}
	if !isUniqueViolation(err) {
		t.Fatalf("expected true for unique violation")
	}
	if !isUniqueViolation(fmt.Errorf("insert vote: %w", err)) {
		t.Fatalf("expected true for wrapped unique violation")
	}
	if isUniqueViolation(&pq.Error{Code: pqForeignKeyViolation}) {
		t.Fatalf("expected false for other code")
	}
}

func TestIsForeignKeyViolation(t *testing.T) {
	err := &pq.Error{Code: pqForeignKeyViolation}
	if !isForeignKeyViolation(err) {
		t.Fatalf("expected true for foreign key violation")
	}
	if isForeignKeyViolation(&pq.Error{Code: pqUniqueViolation}) {
		t.Fatalf("expected false for other code")
	}
	if isForeignKeyViolation(fmt.Errorf("plain error")) {
		t.Fatalf("expected false for non-pq error")
	}
}
