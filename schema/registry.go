package schema

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/protrack/service/model"
)

func init() {
	Register(&Definition{
		Entity: model.CLIENT,
		Fields: []Field{
			{Name: "name", Kind: String, Required: true},
		},
	})
	Register(&Definition{
		Entity: model.DESIGNATION,
		Fields: []Field{
			{Name: "name", Kind: String, Required: true},
			{Name: "is_developer", Kind: Bool, Default: false},
		},
		Relations: []Relation{
			{Name: "users", From: model.USER, LocalField: "_id", ForeignField: "designation"},
		},
	})
	Register(&Definition{
		Entity: model.SKILL,
		Fields: []Field{
			{Name: "name", Kind: String, Required: true},
			{Name: "status", Kind: String, Enum: []string{model.StatusActive, model.StatusInactive}, Default: model.StatusActive},
		},
	})
	Register(&Definition{
		Entity: model.ROLE,
		Fields: []Field{
			{Name: "name", Kind: String, Required: true},
			{Name: "status", Kind: String, Enum: []string{model.StatusActive, model.StatusInactive}, Default: model.StatusActive},
			{Name: "permissions", Kind: Array, Required: true},
		},
	})
	Register(&Definition{
		Entity: model.USER,
		Fields: []Field{
			{Name: "first_name", Kind: String, Required: true},
			{Name: "last_name", Kind: String, Required: true},
			{Name: "email", Kind: String, Required: true},
			{Name: "password", Kind: String, Required: true},
			{Name: "status", Kind: String, Enum: []string{model.UserStatusOnline, model.UserStatusOffline}, Default: model.UserStatusOffline},
			{Name: "roles", Kind: ObjectIDList, Required: true, Ref: model.ROLE},
			{Name: "designation", Kind: ObjectID, Required: true, Ref: model.DESIGNATION},
			{Name: "skills", Kind: ObjectIDList, Ref: model.SKILL},
			{Name: "phone", Kind: String},
			{Name: "address", Kind: String},
			{Name: "profile_image", Kind: String},
		},
		Indexes: []Index{
			{Keys: []string{"email"}, Unique: true},
		},
	})
	Register(&Definition{
		Entity: model.TECHNOLOGY,
		Fields: []Field{
			{Name: "name", Kind: String, Required: true},
			{Name: "type", Kind: String, Required: true, Enum: []string{model.TechnologyTypeClient, model.TechnologyTypeServer}},
			{Name: "status", Kind: String, Enum: []string{model.StatusActive, model.StatusInactive}, Default: model.StatusActive},
		},
	})
	Register(&Definition{
		Entity: model.PROJECT,
		Fields: []Field{
			{Name: "name", Kind: String, Required: true},
			{Name: "description", Kind: String},
			{Name: "start_date", Kind: Date, Required: true},
			{Name: "end_date", Kind: Date},
			{Name: "platform", Kind: String},
			{Name: "status", Kind: String, Default: model.StatusActive},
			{Name: "client_id", Kind: ObjectID, Required: true, Ref: model.CLIENT},
			{Name: "requirements", Kind: Array, Default: bson.A{}},
			{Name: "technologies", Kind: Array, Default: bson.A{}},
			{Name: "issues", Kind: Array, Default: bson.A{}},
		},
		Relations: []Relation{
			{Name: "inviteuser", From: model.INVITEUSER, LocalField: "_id", ForeignField: "project_id"},
			{Name: "availability", From: model.AVAILABILITY, LocalField: "_id", ForeignField: "project_id"},
			{Name: "project_documents", From: model.PROJECTDOCUMENT, LocalField: "_id", ForeignField: "project_id"},
			{Name: "tasks", From: model.TASK, LocalField: "_id", ForeignField: "project_id"},
		},
		Indexes: []Index{
			{Keys: []string{"client_id"}},
		},
	})
	Register(&Definition{
		Entity: model.MILESTONE,
		Fields: []Field{
			{Name: "title", Kind: String, Required: true},
			{Name: "description", Kind: String},
			{Name: "status", Kind: String, Enum: []string{model.MilestoneStatusOpen, model.MilestoneStatusClosed}, Default: model.MilestoneStatusOpen},
			{Name: "start_date", Kind: Date, Required: true},
			{Name: "end_date", Kind: Date},
			{Name: "is_current_milestone", Kind: Bool, Default: false},
			{Name: "project_id", Kind: ObjectID, Required: true, Ref: model.PROJECT},
			{Name: "created_by", Kind: ObjectID, Required: true, Ref: model.USER},
		},
		Relations: []Relation{
			{Name: "groups", From: model.GROUP, LocalField: "_id", ForeignField: "milestone_id"},
		},
		Indexes: []Index{
			{Keys: []string{"project_id"}},
		},
	})
	Register(&Definition{
		Entity: model.GROUP,
		Fields: []Field{
			{Name: "name", Kind: String, Required: true},
			{Name: "description", Kind: String},
			{Name: "status", Kind: String, Enum: []string{model.GroupStatusProgress, model.GroupStatusCompleted}, Default: model.GroupStatusProgress},
			{Name: "delete_status", Kind: String, Enum: []string{model.DeleteStatusActive, model.DeleteStatusDeleted}, Default: model.DeleteStatusActive},
			{Name: "project_id", Kind: ObjectID, Required: true, Ref: model.PROJECT},
			{Name: "milestone_id", Kind: ObjectID, Required: true, Ref: model.MILESTONE},
		},
		Indexes: []Index{
			{Keys: []string{"project_id"}},
			{Keys: []string{"milestone_id"}},
		},
	})
	Register(&Definition{
		Entity: model.STATUS,
		Fields: []Field{
			{Name: "task_status", Kind: String, Required: true},
			{Name: "color", Kind: String},
			{Name: "background_color", Kind: String},
		},
	})
	Register(&Definition{
		Entity: model.TASK,
		Fields: []Field{
			{Name: "task_name", Kind: String, Required: true},
			{Name: "description", Kind: String},
			{Name: "task_status", Kind: ObjectID, Required: true, Ref: model.STATUS},
			{Name: "status_name", Kind: String, Default: model.TaskStatusNameDefault},
			{Name: "task_priority", Kind: String, Enum: []string{model.PriorityLow, model.PriorityMedium, model.PriorityHigh, model.PriorityUrgent}, Default: model.PriorityMedium},
			{Name: "estimate", Kind: String},
			{Name: "task_start_date", Kind: Date},
			{Name: "task_end_date", Kind: Date},
			{Name: "task_logged_time", Kind: String, Default: model.TaskLoggedTimeDefault},
			{Name: "is_task_finished", Kind: Bool, Default: false},
			{Name: "project_id", Kind: ObjectID, Required: true, Ref: model.PROJECT},
			{Name: "milestone_id", Kind: ObjectID, Ref: model.MILESTONE},
			{Name: "parent_task", Kind: ObjectID, Ref: model.TASK},
			{Name: "group_id", Kind: ObjectID, Ref: model.GROUP},
			{Name: "assigned_by", Kind: ObjectID, Required: true, Ref: model.USER},
			{Name: "assigned_to", Kind: ObjectIDList, Ref: model.USER},
			{Name: "created_by", Kind: ObjectID, Required: true, Ref: model.USER},
			{Name: "comments", Kind: Array, Default: bson.A{}},
		},
		Indexes: []Index{
			{Keys: []string{"project_id"}},
			{Keys: []string{"task_status"}},
		},
	})
	Register(&Definition{
		Entity: model.TASKUPDATEHISTORY,
		Fields: []Field{
			{Name: "task_id", Kind: String, Required: true},
			{Name: "snapshot", Kind: Document, Required: true},
			{Name: "updated_fields", Kind: Array, Required: true},
			{Name: "updated_at", Kind: Date, Required: true},
		},
	})
	Register(&Definition{
		Entity: model.TIMELOG,
		Fields: []Field{
			{Name: "project_id", Kind: ObjectID, Required: true, Ref: model.PROJECT},
			{Name: "task_id", Kind: ObjectID, Ref: model.TASK},
			{Name: "user_id", Kind: ObjectID, Required: true, Ref: model.USER},
			{Name: "date", Kind: Date, Required: true},
			{Name: "start_time", Kind: String, Required: true},
			{Name: "end_time", Kind: String, Required: true},
			{Name: "duration", Kind: String, Required: true},
			{Name: "billable", Kind: Bool, Default: true},
			{Name: "billed", Kind: Bool, Default: false},
			{Name: "delete_status", Kind: String, Enum: []string{model.DeleteStatusActive, model.DeleteStatusDeleted}, Default: model.DeleteStatusActive},
		},
		Indexes: []Index{
			{Keys: []string{"project_id"}},
			{Keys: []string{"user_id"}},
		},
	})
	Register(&Definition{
		Entity: model.INVITEUSER,
		Fields: []Field{
			{Name: "user_id", Kind: ObjectID, Required: true, Ref: model.USER},
			{Name: "project_id", Kind: ObjectID, Required: true, Ref: model.PROJECT},
			{Name: "status", Kind: String, Enum: []string{model.InviteStatusActive, model.InviteStatusDeleted}, Default: model.InviteStatusActive},
			{Name: "is_admin", Kind: Bool, Default: false},
		},
		Indexes: []Index{
			{Keys: []string{"project_id"}},
		},
	})
	Register(&Definition{
		Entity: model.PERMISSION,
		Fields: []Field{
			{Name: "user_id", Kind: ObjectID, Required: true, Ref: model.USER},
			{Name: "project_id", Kind: ObjectID, Required: true, Ref: model.PROJECT},
			{Name: "permissions", Kind: Array, Required: true},
			{Name: "assigned_by", Kind: ObjectID, Required: true, Ref: model.USER},
		},
	})
	Register(&Definition{
		Entity: model.SESSION,
		Fields: []Field{
			{Name: "name", Kind: String, Required: true},
		},
	})
	Register(&Definition{
		Entity: model.AVAILABILITY,
		Fields: []Field{
			{Name: "user_id", Kind: ObjectID, Required: true, Ref: model.USER},
			{Name: "project_id", Kind: ObjectID, Required: true, Ref: model.PROJECT},
			{Name: "date", Kind: Date, Required: true},
			{Name: "sessions", Kind: Array, Required: true},
		},
		Indexes: []Index{
			{Keys: []string{"user_id", "date"}},
		},
	})
	Register(&Definition{
		Entity: model.USERBOOKING,
		Fields: []Field{
			{Name: "user_id", Kind: ObjectID, Required: true, Ref: model.USER},
			{Name: "booked_by", Kind: ObjectID, Required: true, Ref: model.USER},
			{Name: "date", Kind: Date, Required: true},
			{Name: "sessions", Kind: Array, Required: true},
		},
	})
	Register(&Definition{
		Entity: model.LOGGEDUSER,
		Fields: []Field{
			// user_id按原样存为字符串, 不做引用校验
			{Name: "user_id", Kind: String, Required: true},
			{Name: "token", Kind: String, Required: true},
			{Name: "logged", Kind: Bool, Default: true},
		},
	})
	Register(&Definition{
		Entity: model.PROJECTDOCUMENT,
		Fields: []Field{
			{Name: "project_id", Kind: ObjectID, Required: true, Ref: model.PROJECT},
			{Name: "document_name", Kind: String, Required: true},
			{Name: "document_description", Kind: String},
			{Name: "original_name", Kind: String, Required: true},
			{Name: "unique_name", Kind: String, Required: true},
			{Name: "storage_key", Kind: String},
			{Name: "url", Kind: String},
			{Name: "document_type", Kind: String},
		},
		Indexes: []Index{
			{Keys: []string{"project_id"}},
		},
	})
}

// IsGroupDeleted 分组是否已软删除.
// delete_status极性与直觉相反: "0"为已删除, 默认值"1"为有效
func IsGroupDeleted(record bson.M) bool {
	return record["delete_status"] == model.DeleteStatusDeleted
}

// IsTimeLogDeleted 工时记录是否已软删除, 极性同IsGroupDeleted
func IsTimeLogDeleted(record bson.M) bool {
	return record["delete_status"] == model.DeleteStatusDeleted
}
