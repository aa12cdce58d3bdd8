package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ServicePasswordModel mirrors the 'service_passwords' table.
// (username, service_name) is unique.
type ServicePasswordModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Username    string    `gorm:"type:varchar(100);not null;uniqueIndex:idx_service_passwords_username_service_name"`
	ServiceName string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_service_passwords_username_service_name"`
	Password    string    `gorm:"type:text;not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ServicePasswordModel) TableName() string {
	return "service_passwords"
}

// BeforeCreate assigns a time-ordered UUID when the caller left ID empty.
func (m *ServicePasswordModel) BeforeCreate(_ *gorm.DB) error {
	return assignID(&m.ID)
}
