package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// HostInfo is the host snapshot embedded in a room when it is listed.
type HostInfo struct {
	Name  string `bson:"name,omitempty" json:"name,omitempty"`
	Image string `bson:"image,omitempty" json:"image,omitempty"`
	Email string `bson:"email" json:"email"`
}

type Room struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Location    string             `bson:"location,omitempty" json:"location,omitempty"`
	Category    string             `bson:"category,omitempty" json:"category,omitempty"`
	Title       string             `bson:"title,omitempty" json:"title,omitempty"`
	From        string             `bson:"from,omitempty" json:"from,omitempty"`
	To          string             `bson:"to,omitempty" json:"to,omitempty"`
	Price       float64            `bson:"price" json:"price"`
	Guests      int                `bson:"guests,omitempty" json:"guests,omitempty"`
	Bathrooms   int                `bson:"bathrooms,omitempty" json:"bathrooms,omitempty"`
	Bedrooms    int                `bson:"bedrooms,omitempty" json:"bedrooms,omitempty"`
	Image       string             `bson:"image,omitempty" json:"image,omitempty"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Host        HostInfo           `bson:"host" json:"host"`
	Booked      bool               `bson:"booked" json:"booked"`
}

// RoomUpdate is the partial body accepted by the room update route.
type RoomUpdate struct {
	Location    *string  `json:"location,omitempty"`
	Category    *string  `json:"category,omitempty"`
	Title       *string  `json:"title,omitempty"`
	From        *string  `json:"from,omitempty"`
	To          *string  `json:"to,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	Guests      *int     `json:"guests,omitempty"`
	Bathrooms   *int     `json:"bathrooms,omitempty"`
	Bedrooms    *int     `json:"bedrooms,omitempty"`
	Image       *string  `json:"image,omitempty"`
	Description *string  `json:"description,omitempty"`
}

// Fields returns the $set document for the non-nil fields.
func (u RoomUpdate) Fields() map[string]interface{} {
	fields := map[string]interface{}{}
	if u.Location != nil {
		fields["location"] = *u.Location
	}
	if u.Category != nil {
		fields["category"] = *u.Category
	}
	if u.Title != nil {
		fields["title"] = *u.Title
	}
	if u.From != nil {
		fields["from"] = *u.From
	}
	if u.To != nil {
		fields["to"] = *u.To
	}
	if u.Price != nil {
		fields["price"] = *u.Price
	}
	if u.Guests != nil {
		fields["guests"] = *u.Guests
	}
	if u.Bathrooms != nil {
		fields["bathrooms"] = *u.Bathrooms
	}
	if u.Bedrooms != nil {
		fields["bedrooms"] = *u.Bedrooms
	}
	if u.Image != nil {
		fields["image"] = *u.Image
	}
	if u.Description != nil {
		fields["description"] = *u.Description
	}
	return fields
}
