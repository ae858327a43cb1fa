package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// Client 客户
type Client struct {
	ID   primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name string             `json:"name" bson:"name"`
}

// Designation 职位
type Designation struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name        string             `json:"name" bson:"name"`
	IsDeveloper bool               `json:"is_developer" bson:"is_developer"`
}

// Skill 技能
type Skill struct {
	ID     primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name   string             `json:"name" bson:"name"`
	Status string             `json:"status" bson:"status,omitempty"`
}

// Role 角色
type Role struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name        string             `json:"name" bson:"name"`
	Status      string             `json:"status" bson:"status,omitempty"`
	Permissions []ActionPermission `json:"permissions" bson:"permissions"`
}

// Technology 技术栈
type Technology struct {
	ID     primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name   string             `json:"name" bson:"name"`
	Type   string             `json:"type" bson:"type"`
	Status string             `json:"status" bson:"status,omitempty"`
}

// Status 任务状态配置
type Status struct {
	ID              primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	TaskStatus      string             `json:"task_status" bson:"task_status"`
	Color           string             `json:"color" bson:"color,omitempty"`
	BackgroundColor string             `json:"background_color" bson:"background_color,omitempty"`
}

// Session 时段(如上午/下午)
type Session struct {
	ID   primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name string             `json:"name" bson:"name"`
}
