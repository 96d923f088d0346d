package entity

import "time"

const (
	RoleBuyer  = "buyer"
	RoleSeller = "seller"
	RoleAdmin  = "admin"
)

const (
	StatusPending  = "pending"
	StatusActive   = "active"
	StatusRejected = "rejected"
)

// User is a marketplace account. Email is the logical key; status is only
// meaningful for sellers going through approval.
type User struct {
	ID     string `json:"_id" bson:"_id,omitempty" firestore:"-"`
	Email  string `json:"email" bson:"email" firestore:"email"`
	Name   string `json:"name,omitempty" bson:"name,omitempty" firestore:"name,omitempty"`
	Photo  string `json:"photo,omitempty" bson:"photo,omitempty" firestore:"photo,omitempty"`
	Role   string `json:"role" bson:"role" firestore:"role"`
	Status string `json:"status,omitempty" bson:"status,omitempty" firestore:"status,omitempty"`
}

func (u *User) SetID(id string) { u.ID = id }

// Identity is the caller-submitted payload embedded in issued tokens.
type Identity struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
	Photo string `json:"photo,omitempty"`
}

// Session is what a verified token asserts about its bearer.
type Session struct {
	UserID    string
	Email     string
	Name      string
	Photo     string
	Role      string
	ExpiresAt time.Time
}
