package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// User 用户
type User struct {
	ID           primitive.ObjectID   `json:"id" bson:"_id,omitempty"`
	FirstName    string               `json:"first_name" bson:"first_name"`
	LastName     string               `json:"last_name" bson:"last_name"`
	Email        string               `json:"email" bson:"email"`
	Password     string               `json:"-" bson:"password"`
	Status       string               `json:"status" bson:"status,omitempty"`
	Roles        []primitive.ObjectID `json:"roles" bson:"roles"`
	Designation  primitive.ObjectID   `json:"designation" bson:"designation"`
	Skills       []primitive.ObjectID `json:"skills" bson:"skills"`
	Phone        string               `json:"phone" bson:"phone,omitempty"`
	Address      string               `json:"address" bson:"address,omitempty"`
	ProfileImage string               `json:"profile_image" bson:"profile_image,omitempty"`
}

// LoggedUser 登录会话记录. user_id为字符串, 不做引用完整性校验
type LoggedUser struct {
	ID     primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	UserID string             `json:"user_id" bson:"user_id"`
	Token  string             `json:"token" bson:"token"`
	Logged bool               `json:"logged" bson:"logged"`
}
