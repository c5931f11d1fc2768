package db_test

import (
	"testing"

	"github.com/kriptogan/dexnorm/internal/iodb"
	"github.com/kriptogan/dexnorm/pkg/db"
)

// TestPgxOperatorImplementsInterface verifies that NewPgxOperator
// returns a db.Operator that starts without a pool.
func TestPgxOperatorImplementsInterface(t *testing.T) {
	var op db.Operator = iodb.NewPgxOperator()
	if op.Pool() != nil {
		t.Fatal("pool must be nil before Connect")
	}
}
