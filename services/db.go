package services

import (
	"github.com/lumina-arg/lumina_api/model"
	"gorm.io/gorm"
)

// SqlService is the store contract consumers resolve from the container. Both
// the sqlite and postgres services register under SQL_SVC; runtime/main picks
// one from DB_DRIVER.
type SqlService interface {
	Db() *gorm.DB
	HandleError(err error) error
}

const SQL_SVC = "sql_svc"

func migratedModels() []interface{} {
	return []interface{}{
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
	}
}
