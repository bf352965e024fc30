package models

import (
	"time"

	"gorm.io/gorm"
)

// FileLog mencatat file price list yang sudah diproses supaya tidak
// diimpor dua kali.
type FileLog struct {
	gorm.Model
	Filename     string `json:"filename" gorm:"unique"`
	DateModified time.Time
}
