package model

const (
	// CLIENT 客户
	CLIENT string = "clients"

	// DESIGNATION 职位
	DESIGNATION string = "designations"

	// SKILL 技能
	SKILL string = "skills"

	// ROLE 角色
	ROLE string = "roles"

	// USER 用户
	USER string = "users"

	// TECHNOLOGY 技术栈
	TECHNOLOGY string = "technologies"

	// PROJECT 项目
	PROJECT string = "projects"

	// MILESTONE 里程碑
	MILESTONE string = "milestones"

	// GROUP 任务分组
	GROUP string = "groups"

	// STATUS 任务状态配置
	STATUS string = "statuses"

	// TASK 任务
	TASK string = "tasks"

	// TASKUPDATEHISTORY 任务更新审计
	TASKUPDATEHISTORY string = "taskupdatehistories"

	// TIMELOG 工时记录
	TIMELOG string = "timelogs"

	// INVITEUSER 项目成员邀请
	INVITEUSER string = "invite_users"

	// PERMISSION 项目级权限
	PERMISSION string = "permissions"

	// SESSION 时段
	SESSION string = "sessions"

	// AVAILABILITY 用户日历可用性.
	// 集合名沿用历史拼写calender, 改正拼写会导致现有读取方查不到数据
	AVAILABILITY string = "useravailabilitycalender"

	// USERBOOKING 用户时段预定
	USERBOOKING string = "userbookings"

	// LOGGEDUSER 登录会话记录
	LOGGEDUSER string = "loggedusers"

	// PROJECTDOCUMENT 项目文档
	PROJECTDOCUMENT string = "projectdocuments"
)

// Collections 全部集合, 清库阶段按此列表逐一清空
var Collections = []string{
	CLIENT,
	DESIGNATION,
	SKILL,
	ROLE,
	USER,
	TECHNOLOGY,
	PROJECT,
	MILESTONE,
	GROUP,
	STATUS,
	TASK,
	TASKUPDATEHISTORY,
	TIMELOG,
	INVITEUSER,
	PERMISSION,
	SESSION,
	AVAILABILITY,
	USERBOOKING,
	LOGGEDUSER,
	PROJECTDOCUMENT,
}
