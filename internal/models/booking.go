package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type GuestInfo struct {
	Name  string `bson:"name,omitempty" json:"name,omitempty"`
	Image string `bson:"image,omitempty" json:"image,omitempty"`
	Email string `bson:"email" json:"email"`
}

type Booking struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	RoomID        string             `bson:"roomId" json:"roomId"`
	Guest         GuestInfo          `bson:"guest" json:"guest"`
	Host          HostInfo           `bson:"host" json:"host"`
	Price         float64            `bson:"price" json:"price"`
	Date          string             `bson:"date" json:"date"`
	TransactionID string             `bson:"transactionId,omitempty" json:"transactionId,omitempty"`
	Location      string             `bson:"location,omitempty" json:"location,omitempty"`
	Title         string             `bson:"title,omitempty" json:"title,omitempty"`
	Image         string             `bson:"image,omitempty" json:"image,omitempty"`
	From          string             `bson:"from,omitempty" json:"from,omitempty"`
	To            string             `bson:"to,omitempty" json:"to,omitempty"`
}

// Sale is the date/price projection of a booking used for statistics.
type Sale struct {
	Date  string  `bson:"date" json:"date"`
	Price float64 `bson:"price" json:"price"`
}

// BookingFilter narrows a booking query. Empty fields match everything.
type BookingFilter struct {
	HostEmail  string
	GuestEmail string
}
