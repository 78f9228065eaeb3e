package models

import "time"

type User struct {
	ID           string    `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"uniqueIndex;not null" json:"username"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"not null" json:"-"`
	FirstName    string    `json:"firstname"`
	LastName     string    `json:"lastname"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	Avatar   *Image    `gorm:"foreignKey:UserID" json:"avatar,omitempty"`
	Promotor *Promotor `gorm:"foreignKey:UserID" json:"promotor,omitempty"`
}

type Promotor struct {
	ID           string    `gorm:"primaryKey" json:"id"`
	UserID       string    `gorm:"uniqueIndex;not null" json:"user_id"`
	PromotorName string    `gorm:"not null" json:"promotor_name"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	PromotorImage *Image `gorm:"foreignKey:PromotorID" json:"promotor_image,omitempty"`
}
