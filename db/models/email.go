package models

import "time"

type EmailLog struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	Recipient      string    `json:"recipient"`
	Subject        string    `json:"subject"`
	Message        string    `json:"message"`
	SentAt         time.Time `json:"sent_at"`
	Active         *bool     `json:"active"`
	AttachmentPath string    `json:"attachment_path"`
}
