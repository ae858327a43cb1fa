package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TimeLog 工时记录, 只软删除
type TimeLog struct {
	ID           primitive.ObjectID  `json:"id" bson:"_id,omitempty"`
	ProjectID    primitive.ObjectID  `json:"project_id" bson:"project_id"`
	TaskID       *primitive.ObjectID `json:"task_id" bson:"task_id,omitempty"`
	UserID       primitive.ObjectID  `json:"user_id" bson:"user_id"`
	Date         time.Time           `json:"date" bson:"date"`
	StartTime    string              `json:"start_time" bson:"start_time"`
	EndTime      string              `json:"end_time" bson:"end_time"`
	Duration     string              `json:"duration" bson:"duration"`
	Billable     bool                `json:"billable" bson:"billable"`
	Billed       bool                `json:"billed" bson:"billed"`
	DeleteStatus string              `json:"delete_status" bson:"delete_status,omitempty"`
}

// InviteUser 项目成员邀请, 通过status标记删除, 不物理移除
type InviteUser struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	UserID    primitive.ObjectID `json:"user_id" bson:"user_id"`
	ProjectID primitive.ObjectID `json:"project_id" bson:"project_id"`
	Status    string             `json:"status" bson:"status,omitempty"`
	IsAdmin   bool               `json:"is_admin" bson:"is_admin"`
}

// Permission 用户在项目内的细粒度权限覆盖
type Permission struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	UserID      primitive.ObjectID `json:"user_id" bson:"user_id"`
	ProjectID   primitive.ObjectID `json:"project_id" bson:"project_id"`
	Permissions []ActionPermission `json:"permissions" bson:"permissions"`
	AssignedBy  primitive.ObjectID `json:"assigned_by" bson:"assigned_by"`
}
