package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Milestone 里程碑.
// is_current_milestone在应用层约定每个项目至多一个为true, 存储层不强制.
// status是字符串标志而非布尔值, "1"进行中, "0"已关闭, 读取方按字符串过滤
type Milestone struct {
	ID                 primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Title              string             `json:"title" bson:"title"`
	Description        string             `json:"description" bson:"description"`
	Status             string             `json:"status" bson:"status,omitempty"`
	StartDate          time.Time          `json:"start_date" bson:"start_date"`
	EndDate            time.Time          `json:"end_date" bson:"end_date"`
	IsCurrentMilestone bool               `json:"is_current_milestone" bson:"is_current_milestone"`
	ProjectID          primitive.ObjectID `json:"project_id" bson:"project_id"`
	CreatedBy          primitive.ObjectID `json:"created_by" bson:"created_by"`
}

// Group 里程碑下的任务分组, 只软删除不物理删除
type Group struct {
	ID           primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name         string             `json:"name" bson:"name"`
	Description  string             `json:"description" bson:"description"`
	Status       string             `json:"status" bson:"status,omitempty"`
	DeleteStatus string             `json:"delete_status" bson:"delete_status,omitempty"`
	ProjectID    primitive.ObjectID `json:"project_id" bson:"project_id"`
	MilestoneID  primitive.ObjectID `json:"milestone_id" bson:"milestone_id"`
}
