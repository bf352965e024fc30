package models

import (
	"time"

	"freight-app/idgen"
	"freight-app/types"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Username  string `json:"username" gorm:"unique"`
	Password  string `json:"password"`
	Name      string `json:"name"`
	Email     string `json:"email" gorm:"unique"`
	Role      string `json:"role"`
	CreatedBy int
	UpdatedBy int
	DeletedBy int
}

type UserSession struct {
	gorm.Model
	UserID         uint64    `json:"user_id"`
	SessionID      string    `json:"session_id" gorm:"index"`
	IPAddress      string    `json:"ip_address"`
	UserAgent      string    `json:"user_agent"`
	DeviceID       string    `json:"device_id"`
	IsActive       bool      `json:"is_active" gorm:"default:true"`
	LastActivityAt time.Time `json:"last_activity_at"`
	ExpiresAt      time.Time `json:"expires_at"`
}

type LoginLog struct {
	ID            types.SnowflakeID `json:"id" gorm:"primaryKey"`
	SessionID     string            `json:"session_id"`
	UserID        *uint64           `json:"user_id"`
	Username      string            `json:"username"`
	LoginAt       *time.Time        `json:"login_at"`
	LogoutAt      *time.Time        `json:"logout_at"`
	IPAddress     string            `json:"ip_address"`
	UserAgent     string            `json:"user_agent"`
	Browser       string            `json:"browser"`
	OS            string            `json:"os"`
	DeviceType    string            `json:"device_type"`
	LoginStatus   string            `json:"login_status"`
	FailureReason *string           `json:"failure_reason"`
	CreatedAt     time.Time         `json:"created_at"`
}

func (l *LoginLog) BeforeCreate(tx *gorm.DB) (err error) {
	if l.ID == 0 {
		l.ID = types.SnowflakeID(idgen.GenerateID())
	}
	return nil
}
