package services

import (
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/lumina-arg/lumina_api/dto"
	"github.com/lumina-arg/lumina_api/services/repositories"
	"github.com/lumina-arg/lumina_api/shared"
)

func newAdminEnv(t *testing.T) (*testEnv, *AdminService) {
	t.Helper()

	env := newTestEnv(t)
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("Failed to hash operator password: %v", err)
	}

	admin := &AdminService{
		sqlSvc: testStore{db: env.db},
		jwtSvc: &JWTService{
			TokenDuration: 24 * time.Hour,
			jwtSecretKey:  "test-secret",
		},
		adminRepo:        repositories.NewAdminRepository(env.db),
		operatorUsername: "operator",
		operatorHash:     string(hash),
	}
	return env, admin
}

func TestAdminLogin(t *testing.T) {
	_, admin := newAdminEnv(t)

	resp, err := admin.Login(dto.AdminLoginRequest{Username: "operator", Password: "hunter2"})
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if resp.AccessToken == "" {
		t.Fatal("Expected an access token")
	}
	if resp.ExpiresIn != 86400 {
		t.Errorf("Expected 86400s expiry, got %d", resp.ExpiresIn)
	}

	username, err := admin.jwtSvc.VerifyJWTToken(resp.AccessToken)
	if err != nil {
		t.Fatalf("Issued token did not verify: %v", err)
	}
	if username != "operator" {
		t.Errorf("Expected operator claim, got %q", username)
	}
}

func TestAdminLoginRejected(t *testing.T) {
	_, admin := newAdminEnv(t)

	cases := []struct {
		name string
		req  dto.AdminLoginRequest
	}{
		{"wrong password", dto.AdminLoginRequest{Username: "operator", Password: "nope"}},
		{"unknown username", dto.AdminLoginRequest{Username: "player", Password: "hunter2"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := admin.Login(tc.req)
			appErr, ok := shared.GetAppError(err)
			if !ok || appErr.StatusCode != 401 {
				t.Errorf("Expected 401, got %v", err)
			}
		})
	}
}

func TestAdminLoginDisabledWithoutHash(t *testing.T) {
	_, admin := newAdminEnv(t)
	admin.operatorHash = ""

	_, err := admin.Login(dto.AdminLoginRequest{Username: "operator", Password: "hunter2"})
	appErr, ok := shared.GetAppError(err)
	if !ok || appErr.StatusCode != 401 {
		t.Errorf("Expected 401 when no hash is configured, got %v", err)
	}
}

func TestAdminListTables(t *testing.T) {
	_, admin := newAdminEnv(t)

	tables, err := admin.ListTables()
	if err != nil {
		t.Fatalf("ListTables failed: %v", err)
	}

	found := map[string]bool{}
	for _, table := range tables {
		found[table.Name] = true
		if len(table.Columns) == 0 {
			t.Errorf("Table %s reported no columns", table.Name)
		}
	}
	for _, want := range []string{"users", "contacts", "chat_messages", "colors"} {
		if !found[want] {
			t.Errorf("Expected table %s in listing", want)
		}
	}
}

func TestAdminBrowseTable(t *testing.T) {
	env, admin := newAdminEnv(t)
	if err := env.color.SeedDefaults(); err != nil {
		t.Fatalf("SeedDefaults failed: %v", err)
	}

	data, err := admin.BrowseTable("colors", 5)
	if err != nil {
		t.Fatalf("BrowseTable failed: %v", err)
	}
	if len(data.Rows) != 5 {
		t.Errorf("Expected 5 rows, got %d", len(data.Rows))
	}
	if len(data.Columns) == 0 {
		t.Error("Expected column metadata")
	}
}

func TestAdminRejectsBadIdentifiers(t *testing.T) {
	_, admin := newAdminEnv(t)

	cases := []struct {
		name string
		call func() error
	}{
		{"table with semicolon", func() error {
			_, err := admin.BrowseTable("users; DROP TABLE users", 10)
			return err
		}},
		{"unknown table", func() error {
			_, err := admin.BrowseTable("payments", 10)
			return err
		}},
		{"unknown column", func() error {
			_, err := admin.InsertRow(dto.InsertRowRequest{
				Table: "colors",
				Data:  map[string]interface{}{"nope": "x"},
			})
			return err
		}},
		{"quoted column", func() error {
			_, err := admin.DeleteRow(dto.DeleteRowRequest{
				Table:    "colors",
				IDColumn: `id" OR "1"="1`,
				ID:       1,
			})
			return err
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			appErr, ok := shared.GetAppError(tc.call())
			if !ok || appErr.StatusCode != 400 {
				t.Errorf("Expected 400, got %v", tc.call())
			}
		})
	}
}

func TestAdminExecSQL(t *testing.T) {
	env, admin := newAdminEnv(t)
	if err := env.color.SeedDefaults(); err != nil {
		t.Fatalf("SeedDefaults failed: %v", err)
	}

	result, err := admin.ExecSQL(dto.SQLRequest{SQL: "SELECT eng, sp FROM colors ORDER BY eng LIMIT 3"})
	if err != nil {
		t.Fatalf("Select failed: %v", err)
	}
	if result.Type != "select" {
		t.Errorf("Expected select result, got %q", result.Type)
	}
	if len(result.Rows) != 3 {
		t.Errorf("Expected 3 rows, got %d", len(result.Rows))
	}

	result, err = admin.ExecSQL(dto.SQLRequest{SQL: "UPDATE colors SET sp = 'Colorado' WHERE eng = 'Red'"})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if result.Type != "execute" || result.RowsAffected != 1 {
		t.Errorf("Expected one affected row, got %+v", result)
	}

	_, err = admin.ExecSQL(dto.SQLRequest{SQL: "   "})
	appErr, ok := shared.GetAppError(err)
	if !ok || appErr.StatusCode != 400 {
		t.Errorf("Expected 400 for empty SQL, got %v", err)
	}
}

func TestAdminRowMutations(t *testing.T) {
	_, admin := newAdminEnv(t)

	inserted, err := admin.InsertRow(dto.InsertRowRequest{
		Table: "colors",
		Data:  map[string]interface{}{"eng": "Beige", "sp": "Beis"},
	})
	if err != nil {
		t.Fatalf("InsertRow failed: %v", err)
	}
	if !inserted.Success || inserted.RowsAffected != 1 {
		t.Errorf("Unexpected insert result: %+v", inserted)
	}

	updated, err := admin.UpdateRow(dto.UpdateRowRequest{
		Table:    "colors",
		IDColumn: "eng",
		ID:       "Beige",
		Data:     map[string]interface{}{"sp": "Crema"},
	})
	if err != nil {
		t.Fatalf("UpdateRow failed: %v", err)
	}
	if updated.RowsAffected != 1 {
		t.Errorf("Expected one updated row, got %d", updated.RowsAffected)
	}

	deleted, err := admin.DeleteRow(dto.DeleteRowRequest{
		Table:    "colors",
		IDColumn: "eng",
		ID:       "Beige",
	})
	if err != nil {
		t.Fatalf("DeleteRow failed: %v", err)
	}
	if deleted.RowsAffected != 1 {
		t.Errorf("Expected one deleted row, got %d", deleted.RowsAffected)
	}

	gone, err := admin.DeleteRow(dto.DeleteRowRequest{
		Table:    "colors",
		IDColumn: "eng",
		ID:       "Beige",
	})
	if err != nil {
		t.Fatalf("Second delete failed: %v", err)
	}
	if gone.RowsAffected != 0 {
		t.Errorf("Expected no rows affected, got %d", gone.RowsAffected)
	}
}
