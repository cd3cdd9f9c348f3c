package migration

import (
	"mesaayuda/internal/infrastructure/persistence/models"
)

func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.TicketModel{},
		&models.UserProfileModel{},
	}
}
