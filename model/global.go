package model

// delete_status 软删除标志.
// 注意极性与直觉相反: "1"表示有效(默认), "0"表示已删除.
// 历史数据即按此取值存储, 不能改为布尔值, 否则语义会被悄悄反转.
const (
	DeleteStatusActive  string = "1"
	DeleteStatusDeleted string = "0"
)

// Group.status 取值
const (
	GroupStatusProgress  string = "PROGRESS"
	GroupStatusCompleted string = "COMPLETED"
)

// Milestone.status 字符串标志取值, 与delete_status同一套"1"/"0"约定
const (
	MilestoneStatusOpen   string = "1"
	MilestoneStatusClosed string = "0"
)

// InviteUser.status 取值
const (
	InviteStatusActive  string = "active"
	InviteStatusDeleted string = "deleted"
)

// User.status 取值
const (
	UserStatusOnline  string = "online"
	UserStatusOffline string = "offline"
)

// Technology.type 取值
const (
	TechnologyTypeClient string = "client"
	TechnologyTypeServer string = "server"
)

// 参照数据status取值
const (
	StatusActive   string = "active"
	StatusInactive string = "inactive"
)

// Task.priority 取值
const (
	PriorityLow    string = "LOW"
	PriorityMedium string = "MEDIUM"
	PriorityHigh   string = "HIGH"
	PriorityUrgent string = "URGENT"
)

// Task 默认值
const (
	TaskStatusNameDefault string = "NEW"
	TaskLoggedTimeDefault string = "00:00"
)

// UserBooking 时段状态取值
const (
	BookingAvailable string = "available"
	BookingBooked    string = "booked"
)

// ActionPermission 操作权限项
type ActionPermission struct {
	Action  string `json:"action" bson:"action"`
	Allowed bool   `json:"allowed" bson:"allowed"`
}
