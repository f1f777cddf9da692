// ABOUTME: Tests for database lifecycle and schema setup
// ABOUTME: Provides the shared in-memory test database helper
package sqlite

import (
	"fmt"
	"path/filepath"
	"sync"
	"testing"

	"github.com/harper/recipedex/internal/models"
)

// testDB creates an in-memory database for a single test
func testDB(t *testing.T) *DB {
	t.Helper()

	db, err := OpenInMemory()
	if err != nil {
		t.Fatalf("OpenInMemory() error = %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	return db
}

func TestOpen_CreatesDirectoryAndSchema(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "recipes.db")

	db, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer func() { _ = db.Close() }()

	if db.Path() != path {
		t.Errorf("Path() = %q, want %q", db.Path(), path)
	}

	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM recipes`).Scan(&count); err != nil {
		t.Fatalf("recipes table missing after Open(): %v", err)
	}
}

func TestOpen_StampsSchemaVersion(t *testing.T) {
	db := testDB(t)

	var version int
	if err := db.QueryRow(`PRAGMA user_version`).Scan(&version); err != nil {
		t.Fatalf("reading user_version: %v", err)
	}
	if version != SchemaVersion {
		t.Errorf("user_version = %d, want %d", version, SchemaVersion)
	}
}

func TestOpen_RefusesNewerSchema(t *testing.T) {
	path := filepath.Join(t.TempDir(), "recipes.db")

	db, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if _, err := db.Exec(`PRAGMA user_version = 99`); err != nil {
		t.Fatalf("setting user_version: %v", err)
	}
	if err := db.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	if _, err := Open(path); err == nil {
		t.Error("Open() error = nil, want refusal of newer schema version")
	}
}

func TestOpenInMemory_SharedAcrossConcurrentQueries(t *testing.T) {
	db := testDB(t)
	store := NewRecipeStore(db)

	if _, err := store.Insert(&models.Recipe{Name: "Shared"}); err != nil {
		t.Fatalf("Insert() error = %v", err)
	}

	var wg sync.WaitGroup
	errs := make(chan error, 8)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			recipes, err := store.List(models.RecipeFilter{})
			if err != nil {
				errs <- err
				return
			}
			if len(recipes) != 1 {
				errs <- fmt.Errorf("saw %d recipes, want 1", len(recipes))
			}
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Errorf("concurrent List(): %v", err)
	}
}

func TestOpen_SchemaIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "recipes.db")

	db, err := Open(path)
	if err != nil {
		t.Fatalf("first Open() error = %v", err)
	}
	if _, err := NewRecipeStore(db).Insert(&SampleRecipes()[0]); err != nil {
		t.Fatalf("Insert() error = %v", err)
	}
	if err := db.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	db, err = Open(path)
	if err != nil {
		t.Fatalf("second Open() error = %v", err)
	}
	defer func() { _ = db.Close() }()

	recipes, err := NewRecipeStore(db).List(models.RecipeFilter{})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(recipes) != 1 {
		t.Errorf("List() returned %d recipes after reopen, want 1", len(recipes))
	}
}
