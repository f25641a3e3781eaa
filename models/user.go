package models

import "time"

// User is an authenticated account. The business profile fields feed the
// billFrom defaulting on invoice writes.
type User struct {
	ID           string    `bson:"id" json:"id"`
	Name         string    `bson:"name" json:"name"`
	Email        string    `bson:"email" json:"email"`
	PasswordHash string    `bson:"passwordHash" json:"-"`
	BusinessName string    `bson:"businessName,omitempty" json:"businessName,omitempty"`
	Address      string    `bson:"address,omitempty" json:"address,omitempty"`
	Phone        string    `bson:"phone,omitempty" json:"phone,omitempty"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
}
