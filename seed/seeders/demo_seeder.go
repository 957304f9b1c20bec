package seeders

import (
	"log"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/lumina-arg/lumina_api/model"
	"github.com/lumina-arg/lumina_api/shared"
)

// DemoSeeder provisions a demo account with the same tutorial state a fresh
// registration receives.
type DemoSeeder struct {
	db *gorm.DB
}

func NewDemoSeeder(db *gorm.DB) *DemoSeeder {
	return &DemoSeeder{db: db}
}

const (
	demoUsername = "demo"
	demoPassword = "demo1234"

	tutorialContactName = "Tutorial"
	tutorialWelcome     = "Hey! Welcome. I'll walk you through how this phone works. Open my thread whenever you're ready."
)

func (s *DemoSeeder) SeedDemoAccount() error {
	log.Printf("Seeding demo account %q...", demoUsername)

	return s.db.Transaction(func(tx *gorm.DB) error {
		user := model.User{
			Username: demoUsername,
			Password: demoPassword,
		}
		err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "username"}},
			DoNothing: true,
		}).Create(&user).Error
		if err != nil {
			return err
		}

		if user.ID == 0 {
			if err := tx.Where("username = ?", demoUsername).First(&user).Error; err != nil {
				return err
			}
		}

		unlock := model.UnlockApp{Username: demoUsername, Messages: true}
		err = tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "username"}},
			DoNothing: true,
		}).Create(&unlock).Error
		if err != nil {
			return err
		}

		var contact model.Contact
		err = tx.Where("user_id = ? AND name = ?", user.ID, tutorialContactName).First(&contact).Error
		if err == nil {
			log.Println("Demo account already provisioned, skipping")
			return nil
		}
		if err != gorm.ErrRecordNotFound {
			return err
		}

		contact = model.Contact{
			UserID:   user.ID,
			Name:     tutorialContactName,
			Avatar:   "T",
			Gradient: shared.DefaultGradient,
			Online:   true,
			Status:   "online",
		}
		if err := tx.Create(&contact).Error; err != nil {
			return err
		}

		welcome := model.ChatMessage{
			ContactID: contact.ID,
			Content:   tutorialWelcome,
			Sent:      false,
			Seen:      false,
		}
		if err := tx.Create(&welcome).Error; err != nil {
			return err
		}

		log.Println("Demo account seeded")
		return nil
	})
}
