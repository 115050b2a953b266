package domain

import "time"

type Language = string

const (
	LanguageEnglish Language = "english"
	LanguageHindi   Language = "hindi"
	LanguageTelugu  Language = "telugu"
)

type User struct {
	ID           string    `json:"_id" db:"id"`
	Username     string    `json:"username" db:"username"`
	PasswordHash string    `json:"-" db:"password_hash"`
	Phone        *string   `json:"phone" db:"phone"`
	Location     *string   `json:"location" db:"location"`
	Language     Language  `json:"language" db:"language"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}

// InsertUser is what a client may supply at registration; the password
// arrives in plain text and is stored only as a bcrypt hash.
type InsertUser struct {
	Username     string
	PasswordHash string
	Phone        *string
	Location     *string
	Language     Language
}
