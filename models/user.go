package models

import "time"

// User is a customer account.
type User struct {
	ID               string    `bson:"id" json:"id"`
	Name             string    `bson:"name" json:"name"`
	Email            string    `bson:"email" json:"email"`
	PasswordHash     string    `bson:"passwordHash" json:"-"`
	Role             string    `bson:"role" json:"role"` // CUSTOMER, ADMIN
	Banned           bool      `bson:"banned" json:"banned"`
	ConsentConfirmed bool      `bson:"consentConfirmed" json:"consentConfirmed"`
	CreatedAt        time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt        time.Time `bson:"updatedAt" json:"updatedAt"`
}
