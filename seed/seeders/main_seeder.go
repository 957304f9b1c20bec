package seeders

import (
	"log"

	"gorm.io/gorm"

	"github.com/lumina-arg/lumina_api/model"
)

// MainSeeder coordinates all seeding operations
type MainSeeder struct {
	db *gorm.DB
}

// NewMainSeeder creates a new main seeder
func NewMainSeeder(db *gorm.DB) *MainSeeder {
	return &MainSeeder{db: db}
}

// SeedAll runs all seeders in the correct order
func (s *MainSeeder) SeedAll() error {
	log.Println("Starting database seeding...")

	if err := s.migrate(); err != nil {
		log.Printf("Migration failed: %v", err)
		return err
	}

	colorSeeder := NewColorSeeder(s.db)
	if err := colorSeeder.SeedColors(); err != nil {
		log.Printf("Color seeding failed: %v", err)
		return err
	}

	demoSeeder := NewDemoSeeder(s.db)
	if err := demoSeeder.SeedDemoAccount(); err != nil {
		log.Printf("Demo account seeding failed: %v", err)
		return err
	}

	log.Println("Database seeding completed successfully!")
	return nil
}

func (s *MainSeeder) SeedColorsOnly() error {
	if err := s.migrate(); err != nil {
		return err
	}
	return NewColorSeeder(s.db).SeedColors()
}

func (s *MainSeeder) SeedDemoOnly() error {
	if err := s.migrate(); err != nil {
		return err
	}
	return NewDemoSeeder(s.db).SeedDemoAccount()
}

func (s *MainSeeder) migrate() error {
	return s.db.AutoMigrate(
		&model.User{},
		&model.Session{},
		&model.Contact{},
		&model.ChatMessage{},
		&model.PlayerSentMessage{},
		&model.Message{},
		&model.UnlockApp{},
		&model.PhotoAction{},
		&model.Color{},
		&model.RateLimitWindow{},
	)
}
