package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Task 任务.
// status_name是所引用Status.task_status的冗余缓存,
// 任何task_status变更必须在同一操作内重算status_name
type Task struct {
	ID             primitive.ObjectID   `json:"id" bson:"_id,omitempty"`
	Name           string               `json:"task_name" bson:"task_name"`
	Description    string               `json:"description" bson:"description"`
	TaskStatus     primitive.ObjectID   `json:"task_status" bson:"task_status"`
	StatusName     string               `json:"status_name" bson:"status_name,omitempty"`
	Priority       string               `json:"task_priority" bson:"task_priority"`
	Estimate       string               `json:"estimate" bson:"estimate"`
	StartDate      time.Time            `json:"task_start_date" bson:"task_start_date"`
	EndDate        time.Time            `json:"task_end_date" bson:"task_end_date"`
	TaskLoggedTime string               `json:"task_logged_time" bson:"task_logged_time,omitempty"`
	IsTaskFinished bool                 `json:"is_task_finished" bson:"is_task_finished"`
	ProjectID      primitive.ObjectID   `json:"project_id" bson:"project_id"`
	MilestoneID    *primitive.ObjectID  `json:"milestone_id" bson:"milestone_id,omitempty"`
	ParentTask     *primitive.ObjectID  `json:"parent_task" bson:"parent_task,omitempty"`
	GroupID        *primitive.ObjectID  `json:"group_id" bson:"group_id,omitempty"`
	AssignedBy     primitive.ObjectID   `json:"assigned_by" bson:"assigned_by"`
	AssignedTo     []primitive.ObjectID `json:"assigned_to" bson:"assigned_to"`
	CreatedBy      primitive.ObjectID   `json:"created_by" bson:"created_by"`
	Comments       []TaskComment        `json:"comments" bson:"comments"`
}

// TaskComment 任务评论, 内嵌于任务, 按时间顺序追加
type TaskComment struct {
	Comment     string             `json:"comment" bson:"comment"`
	CommentedBy primitive.ObjectID `json:"commented_by" bson:"commented_by"`
	CommentedAt time.Time          `json:"commented_at" bson:"commented_at"`
	Replies     []TaskReply        `json:"replies" bson:"replies"`
}

// TaskReply 评论回复
type TaskReply struct {
	Reply     string             `json:"reply" bson:"reply"`
	RepliedBy primitive.ObjectID `json:"replied_by" bson:"replied_by"`
	RepliedAt time.Time          `json:"replied_at" bson:"replied_at"`
}

// TaskUpdateHistory 任务更新前的审计快照.
// task_id为字符串, 不强制引用完整性, 快照只增不改
type TaskUpdateHistory struct {
	ID            primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	TaskID        string             `json:"task_id" bson:"task_id"`
	Snapshot      bson.M             `json:"snapshot" bson:"snapshot"`
	UpdatedFields []string           `json:"updated_fields" bson:"updated_fields"`
	UpdatedAt     time.Time          `json:"updated_at" bson:"updated_at"`
}
