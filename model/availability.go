package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserAvailabilityCalendar 用户按天的可用性
type UserAvailabilityCalendar struct {
	ID        primitive.ObjectID    `json:"id" bson:"_id,omitempty"`
	UserID    primitive.ObjectID    `json:"user_id" bson:"user_id"`
	ProjectID primitive.ObjectID    `json:"project_id" bson:"project_id"`
	Date      time.Time             `json:"date" bson:"date"`
	Sessions  []SessionAvailability `json:"sessions" bson:"sessions"`
}

// SessionAvailability 单个时段的可用标记
type SessionAvailability struct {
	SessionID primitive.ObjectID `json:"session_id" bson:"session_id"`
	Available bool               `json:"available" bson:"available"`
}

// UserBooking 一个用户对另一个用户时段的预定
type UserBooking struct {
	ID       primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	UserID   primitive.ObjectID `json:"user_id" bson:"user_id"`
	BookedBy primitive.ObjectID `json:"booked_by" bson:"booked_by"`
	Date     time.Time          `json:"date" bson:"date"`
	Sessions []SessionBooking   `json:"sessions" bson:"sessions"`
}

// SessionBooking 单个时段的预定状态
type SessionBooking struct {
	SessionID primitive.ObjectID `json:"session_id" bson:"session_id"`
	Status    string             `json:"status" bson:"status"`
}
