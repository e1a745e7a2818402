// Package model defines the database models for notepanel.
package model

import "time"

// User is an account that owns notes. Admin users may additionally browse
// and manage every other user's notes.
type User struct {
	Id       int    `json:"id" gorm:"primaryKey;autoIncrement"`
	Email    string `json:"email" gorm:"uniqueIndex;not null"`
	Password string `json:"-" gorm:"not null"` // bcrypt hash
	IsAdmin  bool   `json:"isAdmin"`
}

// Note is a personal text note. Every note belongs to exactly one user.
type Note struct {
	Id        string    `json:"id" gorm:"primaryKey"`
	Title     string    `json:"title" gorm:"not null"`
	Body      string    `json:"body" gorm:"not null"`
	UserId    int       `json:"userId" gorm:"index;not null"`
	User      *User     `json:"user,omitempty" gorm:"foreignKey:UserId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
