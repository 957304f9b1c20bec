package services

import (
	"path/filepath"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/lumina-arg/lumina_api/services/repositories"
)

// testStore satisfies SqlService over a throwaway database file.
type testStore struct {
	db *gorm.DB
}

func (s testStore) Db() *gorm.DB {
	return s.db
}

func (s testStore) HandleError(err error) error {
	return translateStoreError(err)
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(migratedModels()...); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}
	return db
}

// testEnv builds the service graph by hand, bypassing the runtime container.
type testEnv struct {
	db      *gorm.DB
	session *SessionService
	unlock  *UnlockService
	chat    *ChatService
	auth    *AuthService
	photo   *PhotoActionService
	color   *ColorService
	user    *UserService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db := newTestDB(t)
	store := testStore{db: db}

	session := &SessionService{
		sqlSvc:      store,
		sessionRepo: repositories.NewSessionRepository(db),
	}
	chat := &ChatService{
		sqlSvc:      store,
		contactRepo: repositories.NewContactRepository(db),
		messageRepo: repositories.NewMessageRepository(db),
		userRepo:    repositories.NewUserRepository(db),
	}
	unlock := &UnlockService{
		sqlSvc:     store,
		chatSvc:    chat,
		unlockRepo: repositories.NewUnlockRepository(db),
		userRepo:   repositories.NewUserRepository(db),
	}
	auth := &AuthService{
		sqlSvc:     store,
		sessionSvc: session,
		unlockSvc:  unlock,
		userRepo:   repositories.NewUserRepository(db),
	}
	photo := &PhotoActionService{
		sqlSvc:     store,
		actionRepo: repositories.NewPhotoActionRepository(db),
	}
	color := &ColorService{
		sqlSvc:    store,
		colorRepo: repositories.NewColorRepository(db),
	}
	user := &UserService{
		sqlSvc:      store,
		userRepo:    repositories.NewUserRepository(db),
		messageRepo: repositories.NewMessageRepository(db),
	}

	return &testEnv{
		db:      db,
		session: session,
		unlock:  unlock,
		chat:    chat,
		auth:    auth,
		photo:   photo,
		color:   color,
		user:    user,
	}
}
