package models

import "time"

type User struct {
	UID         string    `bson:"_id" json:"uid"`
	Email       string    `bson:"email" json:"email"`
	DisplayName string    `bson:"displayName" json:"displayName"`
	PhotoURL    string    `bson:"photoURL" json:"photoURL"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
}
