package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Project 项目
type Project struct {
	ID           primitive.ObjectID   `json:"id" bson:"_id,omitempty"`
	Name         string               `json:"name" bson:"name"`
	Description  string               `json:"description" bson:"description"`
	StartDate    time.Time            `json:"start_date" bson:"start_date"`
	EndDate      time.Time            `json:"end_date" bson:"end_date,omitempty"`
	Platform     string               `json:"platform" bson:"platform"`
	Status       string               `json:"status" bson:"status,omitempty"`
	ClientID     primitive.ObjectID   `json:"client_id" bson:"client_id"`
	Requirements []ProjectRequirement `json:"requirements" bson:"requirements"`
	Technologies []ProjectTechnology  `json:"technologies" bson:"technologies"`
	Issues       []ProjectIssue       `json:"issues" bson:"issues"`
}

// ProjectRequirement 需求条目, 内嵌于项目, 按插入顺序追加
type ProjectRequirement struct {
	Title string        `json:"requirement_title" bson:"requirement_title"`
	Notes []ProjectNote `json:"notes" bson:"notes"`
}

// ProjectNote 需求备注
type ProjectNote struct {
	Note      string    `json:"note" bson:"note"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

// ProjectTechnology 项目技术选型记录
type ProjectTechnology struct {
	TechnologyID primitive.ObjectID `json:"technology_id" bson:"technology_id"`
	Version      string             `json:"version" bson:"version"`
	Reason       string             `json:"reason" bson:"reason"`
	Status       string             `json:"status" bson:"status"`
}

// ProjectIssue 项目问答条目
type ProjectIssue struct {
	Question string    `json:"question" bson:"question"`
	Answer   string    `json:"answer" bson:"answer"`
	AskedOn  time.Time `json:"asked_on" bson:"asked_on"`
}

// ProjectDocument 项目文档元数据
type ProjectDocument struct {
	ID           primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	ProjectID    primitive.ObjectID `json:"project_id" bson:"project_id"`
	DocumentName string             `json:"document_name" bson:"document_name"`
	Description  string             `json:"document_description" bson:"document_description"`
	OriginalName string             `json:"original_name" bson:"original_name"`
	UniqueName   string             `json:"unique_name" bson:"unique_name"`
	StorageKey   string             `json:"storage_key" bson:"storage_key"`
	URL          string             `json:"url" bson:"url"`
	DocumentType string             `json:"document_type" bson:"document_type"`
}
