package seeders

import (
	"log"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/lumina-arg/lumina_api/model"
)

// ColorSeeder loads the canonical bilingual color set. Upserting by the
// unique English name keeps it idempotent.
type ColorSeeder struct {
	db *gorm.DB
}

func NewColorSeeder(db *gorm.DB) *ColorSeeder {
	return &ColorSeeder{db: db}
}

var canonicalColors = []model.Color{
	{Eng: "Red", Sp: "Rojo"},
	{Eng: "Blue", Sp: "Azul"},
	{Eng: "Green", Sp: "Verde"},
	{Eng: "Yellow", Sp: "Amarillo"},
	{Eng: "Black", Sp: "Negro"},
	{Eng: "White", Sp: "Blanco"},
	{Eng: "Orange", Sp: "Naranja"},
	{Eng: "Purple", Sp: "Púrpura"},
	{Eng: "Pink", Sp: "Rosa"},
	{Eng: "Brown", Sp: "Marrón"},
	{Eng: "Gray", Sp: "Gris"},
	{Eng: "Cyan", Sp: "Cian"},
	{Eng: "Magenta", Sp: "Magenta"},
	{Eng: "Lime", Sp: "Lima"},
	{Eng: "Olive", Sp: "Oliva"},
	{Eng: "Maroon", Sp: "Granate"},
	{Eng: "Navy", Sp: "Azul Marino"},
	{Eng: "Teal", Sp: "Verde Azulado"},
	{Eng: "Silver", Sp: "Plateado"},
	{Eng: "Gold", Sp: "Dorado"},
}

func (s *ColorSeeder) SeedColors() error {
	log.Printf("Seeding %d colors...", len(canonicalColors))

	err := s.db.Transaction(func(tx *gorm.DB) error {
		for i := range canonicalColors {
			color := canonicalColors[i]
			err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "eng"}},
				DoUpdates: clause.AssignmentColumns([]string{"sp", "updated_at"}),
			}).Create(&color).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	log.Println("Color seeding completed")
	return nil
}
