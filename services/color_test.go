package services

import (
	"testing"

	"github.com/lumina-arg/lumina_api/dto"
	"github.com/lumina-arg/lumina_api/shared"
)

func TestColorSeedIsIdempotent(t *testing.T) {
	env := newTestEnv(t)

	if err := env.color.SeedDefaults(); err != nil {
		t.Fatalf("SeedDefaults failed: %v", err)
	}
	colors, err := env.color.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(colors) != 20 {
		t.Fatalf("Expected 20 seeded colors, got %d", len(colors))
	}

	if err := env.color.SeedDefaults(); err != nil {
		t.Fatalf("Second SeedDefaults failed: %v", err)
	}
	colors, _ = env.color.List()
	if len(colors) != 20 {
		t.Errorf("Reseeding must not duplicate rows, got %d", len(colors))
	}
}

func TestColorCRUD(t *testing.T) {
	env := newTestEnv(t)

	created, err := env.color.Create(dto.CreateColorRequest{Eng: "Turquoise", Sp: "Turquesa"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if created.ID == 0 {
		t.Fatal("Expected an id")
	}

	got, err := env.color.Get(created.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.Eng != "Turquoise" || got.Sp != "Turquesa" {
		t.Errorf("Unexpected color: %+v", got)
	}

	updated, err := env.color.Update(created.ID, dto.UpdateColorRequest{Eng: "Turquoise", Sp: "Turquesa Claro"})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if updated.Sp != "Turquesa Claro" {
		t.Errorf("Expected updated Spanish name, got %q", updated.Sp)
	}

	if err := env.color.Delete(created.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	_, err = env.color.Get(created.ID)
	appErr, ok := shared.GetAppError(err)
	if !ok || appErr.StatusCode != 404 {
		t.Errorf("Expected 404 after delete, got %v", err)
	}
}

func TestColorDuplicateName(t *testing.T) {
	env := newTestEnv(t)

	if _, err := env.color.Create(dto.CreateColorRequest{Eng: "Red", Sp: "Rojo"}); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	_, err := env.color.Create(dto.CreateColorRequest{Eng: "Red", Sp: "Colorado"})
	appErr, ok := shared.GetAppError(err)
	if !ok || appErr.StatusCode != 409 {
		t.Errorf("Expected 409 for duplicate English name, got %v", err)
	}
}

func TestColorSearch(t *testing.T) {
	env := newTestEnv(t)
	if err := env.color.SeedDefaults(); err != nil {
		t.Fatalf("SeedDefaults failed: %v", err)
	}

	results, err := env.color.Search("blu", "")
	if err != nil {
		t.Fatalf("Search by eng failed: %v", err)
	}
	if len(results) != 1 || results[0].Eng != "Blue" {
		t.Errorf("Expected Blue, got %+v", results)
	}

	results, err = env.color.Search("", "azul")
	if err != nil {
		t.Fatalf("Search by sp failed: %v", err)
	}
	// Azul and Azul Marino both match
	if len(results) != 2 {
		t.Errorf("Expected 2 Spanish matches, got %d", len(results))
	}

	results, err = env.color.Search("", "")
	if err != nil {
		t.Fatalf("Empty search failed: %v", err)
	}
	if len(results) != 20 {
		t.Errorf("Empty search should list everything, got %d", len(results))
	}
}

func TestColorUnknownID(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.color.Update(42, dto.UpdateColorRequest{Eng: "X", Sp: "Y"})
	appErr, ok := shared.GetAppError(err)
	if !ok || appErr.StatusCode != 404 {
		t.Errorf("Expected 404 updating unknown color, got %v", err)
	}

	err = env.color.Delete(42)
	appErr, ok = shared.GetAppError(err)
	if !ok || appErr.StatusCode != 404 {
		t.Errorf("Expected 404 deleting unknown color, got %v", err)
	}
}
