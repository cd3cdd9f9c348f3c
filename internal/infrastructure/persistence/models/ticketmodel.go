package models

type TicketModel struct {
	ID           uint    `gorm:"primaryKey"`
	CallerName   string  `gorm:"size:200;not null"`
	CallDuration string  `gorm:"size:50;not null"`
	RawText      string  `gorm:"type:text;not null"`
	Subject      string  `gorm:"size:200;not null"`
	TicketType   string  `gorm:"size:100;not null"`
	Solution     string  `gorm:"type:text;not null"`
	Site         string  `gorm:"size:100;not null"`
	AgentName    *string `gorm:"size:200"`
	Status       string  `gorm:"size:20;not null;index"`
	CreatedAt    int64   `gorm:"autoCreateTime:milli;not null;index"`
	UpdatedAt    int64   `gorm:"autoUpdateTime:milli;not null"`

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (TicketModel) TableName() string {
	return "tickets"
}
