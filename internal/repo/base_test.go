package repo

import (
	"context"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func openSQLite(t *testing.T) *gorm.DB {
	t.Helper()
	conn, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	return conn
}

func TestBaseBindsContext(t *testing.T) {
	conn := openSQLite(t)
	base := NewBase(conn)

	ctx := context.WithValue(context.Background(), struct{}{}, "marker")
	bound := base.DB(ctx)
	if bound == nil || bound.Statement == nil {
		t.Fatal("expected a context-bound session")
	}
	if bound.Statement.Context != ctx {
		t.Fatalf("context did not flow through, got %v", bound.Statement.Context)
	}
}

func TestBaseNilContextReturnsRawConnection(t *testing.T) {
	conn := openSQLite(t)
	base := NewBase(conn)

	if base.DB(nil) != conn {
		t.Fatal("nil context must return the raw connection")
	}
}
