package seed

import (
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"github.com/protrack/service/errors"
	"github.com/protrack/service/model"
	"github.com/protrack/service/schema"
	"github.com/protrack/service/tools"
)

// 演示账号统一口令
const demoPassword = "changeme123"

func toDocs(vals ...interface{}) ([]bson.M, error) {
	docs := make([]bson.M, 0, len(vals))
	for _, v := range vals {
		doc, err := schema.ToDoc(v)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func oid(id primitive.ObjectID) *primitive.ObjectID {
	return &id
}

func hashPassword(pw string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.DefaultCost)
	if err != nil {
		return "", errors.Wrap(err, "密码hash失败")
	}
	return string(hash), nil
}

func buildClients(_ *run) ([]bson.M, error) {
	return toDocs(
		model.Client{Name: "Acme Logistics"},
		model.Client{Name: "Northwind Retail"},
		model.Client{Name: "Bluepeak Media"},
	)
}

func buildDesignations(_ *run) ([]bson.M, error) {
	return toDocs(
		model.Designation{Name: "Project Manager", IsDeveloper: false},
		model.Designation{Name: "Senior Developer", IsDeveloper: true},
		model.Designation{Name: "Developer", IsDeveloper: true},
		model.Designation{Name: "QA Engineer", IsDeveloper: false},
	)
}

func buildSkills(_ *run) ([]bson.M, error) {
	names := []string{"Go", "Python", "React", "Node.js", "MongoDB", "UI Design", "DevOps", "QA Automation"}
	vals := make([]interface{}, 0, len(names))
	for _, name := range names {
		vals = append(vals, model.Skill{Name: name, Status: model.StatusActive})
	}
	return toDocs(vals...)
}

func buildRoles(_ *run) ([]bson.M, error) {
	return toDocs(
		model.Role{Name: "admin", Status: model.StatusActive, Permissions: []model.ActionPermission{
			{Action: "project.create", Allowed: true},
			{Action: "project.delete", Allowed: true},
			{Action: "task.assign", Allowed: true},
			{Action: "user.invite", Allowed: true},
		}},
		model.Role{Name: "manager", Status: model.StatusActive, Permissions: []model.ActionPermission{
			{Action: "project.create", Allowed: true},
			{Action: "project.delete", Allowed: false},
			{Action: "task.assign", Allowed: true},
			{Action: "user.invite", Allowed: true},
		}},
		model.Role{Name: "member", Status: model.StatusActive, Permissions: []model.ActionPermission{
			{Action: "project.create", Allowed: false},
			{Action: "project.delete", Allowed: false},
			{Action: "task.assign", Allowed: false},
			{Action: "user.invite", Allowed: false},
		}},
	)
}

func buildTechnologies(_ *run) ([]bson.M, error) {
	return toDocs(
		model.Technology{Name: "React", Type: model.TechnologyTypeClient, Status: model.StatusActive},
		model.Technology{Name: "Vue", Type: model.TechnologyTypeClient, Status: model.StatusActive},
		model.Technology{Name: "Flutter", Type: model.TechnologyTypeClient, Status: model.StatusActive},
		model.Technology{Name: "Go", Type: model.TechnologyTypeServer, Status: model.StatusActive},
		model.Technology{Name: "Node.js", Type: model.TechnologyTypeServer, Status: model.StatusActive},
		model.Technology{Name: "MongoDB", Type: model.TechnologyTypeServer, Status: model.StatusActive},
		model.Technology{Name: "Redis", Type: model.TechnologyTypeServer, Status: model.StatusActive},
		model.Technology{Name: "Nginx", Type: model.TechnologyTypeServer, Status: model.StatusInactive},
	)
}

// statusSeed 任务状态配置. Task.status_name的取值必须与此处task_status保持一致
var statusSeed = []model.Status{
	{TaskStatus: "NEW", Color: "#ffffff", BackgroundColor: "#607d8b"},
	{TaskStatus: "TODO", Color: "#ffffff", BackgroundColor: "#2196f3"},
	{TaskStatus: "IN PROGRESS", Color: "#000000", BackgroundColor: "#ff9800"},
	{TaskStatus: "REVIEW", Color: "#ffffff", BackgroundColor: "#9c27b0"},
	{TaskStatus: "COMPLETED", Color: "#ffffff", BackgroundColor: "#4caf50"},
}

func buildStatuses(_ *run) ([]bson.M, error) {
	vals := make([]interface{}, 0, len(statusSeed))
	for _, s := range statusSeed {
		vals = append(vals, s)
	}
	return toDocs(vals...)
}

func buildSessions(_ *run) ([]bson.M, error) {
	return toDocs(
		model.Session{Name: "Morning"},
		model.Session{Name: "Afternoon"},
		model.Session{Name: "Evening"},
	)
}

func buildUsers(r *run) ([]bson.M, error) {
	hash, err := hashPassword(demoPassword)
	if err != nil {
		return nil, err
	}
	admin := r.id(model.ROLE, 0)
	manager := r.id(model.ROLE, 1)
	member := r.id(model.ROLE, 2)
	return toDocs(
		model.User{
			FirstName: "Priya", LastName: "Sharma",
			Email: "priya.sharma@protrack.dev", Password: hash,
			Status:      model.UserStatusOnline,
			Roles:       []primitive.ObjectID{admin},
			Designation: r.id(model.DESIGNATION, 0),
			Skills:      []primitive.ObjectID{r.id(model.SKILL, 6)},
			Phone:       "+91-98100-11001",
		},
		model.User{
			FirstName: "Daniel", LastName: "Kovacs",
			Email: "daniel.kovacs@protrack.dev", Password: hash,
			Status:      model.UserStatusOffline,
			Roles:       []primitive.ObjectID{manager},
			Designation: r.id(model.DESIGNATION, 0),
			Skills:      []primitive.ObjectID{r.id(model.SKILL, 5)},
		},
		model.User{
			FirstName: "Meera", LastName: "Iyer",
			Email: "meera.iyer@protrack.dev", Password: hash,
			Status:      model.UserStatusOnline,
			Roles:       []primitive.ObjectID{member},
			Designation: r.id(model.DESIGNATION, 1),
			Skills:      []primitive.ObjectID{r.id(model.SKILL, 0), r.id(model.SKILL, 4)},
		},
		model.User{
			FirstName: "Tomas", LastName: "Lindqvist",
			Email: "tomas.lindqvist@protrack.dev", Password: hash,
			Status:      model.UserStatusOffline,
			Roles:       []primitive.ObjectID{member},
			Designation: r.id(model.DESIGNATION, 2),
			Skills:      []primitive.ObjectID{r.id(model.SKILL, 2), r.id(model.SKILL, 3)},
		},
		model.User{
			FirstName: "Aisha", LastName: "Bello",
			Email: "aisha.bello@protrack.dev", Password: hash,
			Status:      model.UserStatusOnline,
			Roles:       []primitive.ObjectID{member},
			Designation: r.id(model.DESIGNATION, 2),
			Skills:      []primitive.ObjectID{r.id(model.SKILL, 1), r.id(model.SKILL, 4)},
		},
		model.User{
			FirstName: "Lucas", LastName: "Moreira",
			Email: "lucas.moreira@protrack.dev", Password: hash,
			Status:      model.UserStatusOffline,
			Roles:       []primitive.ObjectID{member},
			Designation: r.id(model.DESIGNATION, 3),
			Skills:      []primitive.ObjectID{r.id(model.SKILL, 7)},
		},
	)
}

func buildProjects(r *run) ([]bson.M, error) {
	return toDocs(
		model.Project{
			Name:        "Fleet Tracking Platform",
			Description: "Real-time vehicle tracking and dispatch for Acme Logistics",
			StartDate:   date(2026, 1, 5), EndDate: date(2026, 9, 30),
			Platform: "web",
			Status:   model.StatusActive,
			ClientID: r.id(model.CLIENT, 0),
			Requirements: []model.ProjectRequirement{
				{Title: "Live map view", Notes: []model.ProjectNote{
					{Note: "Positions refresh at most every 10 seconds", CreatedAt: date(2026, 1, 6)},
					{Note: "Clustering above 200 vehicles", CreatedAt: date(2026, 1, 12)},
				}},
				{Title: "Dispatch board", Notes: []model.ProjectNote{
					{Note: "Drag and drop assignment", CreatedAt: date(2026, 1, 8)},
				}},
			},
			Technologies: []model.ProjectTechnology{
				{TechnologyID: r.id(model.TECHNOLOGY, 0), Version: "18.2", Reason: "team experience", Status: model.StatusActive},
				{TechnologyID: r.id(model.TECHNOLOGY, 3), Version: "1.21", Reason: "low-latency ingest", Status: model.StatusActive},
				{TechnologyID: r.id(model.TECHNOLOGY, 5), Version: "6.0", Reason: "geo queries", Status: model.StatusActive},
			},
			Issues: []model.ProjectIssue{
				{Question: "Do offline vehicles keep their last known position?", Answer: "Yes, greyed out after 15 minutes", AskedOn: date(2026, 1, 15)},
			},
		},
		model.Project{
			Name:        "Storefront Revamp",
			Description: "Replatform of the Northwind web storefront",
			StartDate:   date(2026, 2, 2), EndDate: date(2026, 7, 31),
			Platform: "web",
			Status:   model.StatusActive,
			ClientID: r.id(model.CLIENT, 1),
			Requirements: []model.ProjectRequirement{
				{Title: "Checkout flow", Notes: []model.ProjectNote{
					{Note: "Guest checkout must be one page", CreatedAt: date(2026, 2, 3)},
				}},
			},
			Technologies: []model.ProjectTechnology{
				{TechnologyID: r.id(model.TECHNOLOGY, 1), Version: "3.4", Reason: "existing components", Status: model.StatusActive},
				{TechnologyID: r.id(model.TECHNOLOGY, 4), Version: "20 LTS", Reason: "shared tooling", Status: model.StatusActive},
			},
			Issues: []model.ProjectIssue{
				{Question: "Which payment providers are in scope?", Answer: "Stripe and PayPal for launch", AskedOn: date(2026, 2, 10)},
				{Question: "Is the legacy wishlist migrated?", Answer: "", AskedOn: date(2026, 2, 20)},
			},
		},
		model.Project{
			Name:        "Campaign Analytics App",
			Description: "Mobile campaign reporting for Bluepeak account teams",
			StartDate:   date(2026, 3, 2),
			Platform:    "mobile",
			Status:      model.StatusActive,
			ClientID:    r.id(model.CLIENT, 2),
			Technologies: []model.ProjectTechnology{
				{TechnologyID: r.id(model.TECHNOLOGY, 2), Version: "3.19", Reason: "single codebase for iOS and Android", Status: model.StatusActive},
				{TechnologyID: r.id(model.TECHNOLOGY, 3), Version: "1.21", Reason: "API layer", Status: model.StatusActive},
			},
		},
	)
}

func buildMilestones(r *run) ([]bson.M, error) {
	p0 := r.id(model.PROJECT, 0)
	p1 := r.id(model.PROJECT, 1)
	p2 := r.id(model.PROJECT, 2)
	pm := r.id(model.USER, 0)
	lead := r.id(model.USER, 1)
	return toDocs(
		model.Milestone{
			Title: "Foundations", Description: "Ingest pipeline and base map",
			Status: model.MilestoneStatusOpen, StartDate: date(2026, 1, 5), EndDate: date(2026, 2, 27),
			IsCurrentMilestone: false, ProjectID: p0, CreatedBy: pm,
		},
		model.Milestone{
			Title: "Dispatch MVP", Description: "Board, assignment and notifications",
			Status: model.MilestoneStatusOpen, StartDate: date(2026, 3, 2), EndDate: date(2026, 5, 29),
			IsCurrentMilestone: true, ProjectID: p0, CreatedBy: pm,
		},
		model.Milestone{
			Title: "Catalog & Cart", Description: "Browse, search and cart",
			Status: model.MilestoneStatusOpen, StartDate: date(2026, 2, 2), EndDate: date(2026, 4, 30),
			IsCurrentMilestone: true, ProjectID: p1, CreatedBy: lead,
		},
		model.Milestone{
			Title: "Checkout", Description: "Payment and order placement",
			Status: model.MilestoneStatusClosed, StartDate: date(2026, 5, 4), EndDate: date(2026, 7, 31),
			IsCurrentMilestone: false, ProjectID: p1, CreatedBy: lead,
		},
		model.Milestone{
			Title: "Reporting Core", Description: "Dashboards and export",
			Status: model.MilestoneStatusOpen, StartDate: date(2026, 3, 2), EndDate: date(2026, 6, 30),
			IsCurrentMilestone: true, ProjectID: p2, CreatedBy: pm,
		},
	)
}

func buildGroups(r *run) ([]bson.M, error) {
	return toDocs(
		model.Group{
			Name: "Backend", Description: "Ingest and APIs",
			Status:       model.GroupStatusProgress,
			DeleteStatus: model.DeleteStatusActive,
			ProjectID:    r.id(model.PROJECT, 0), MilestoneID: r.id(model.MILESTONE, 1),
		},
		model.Group{
			Name: "Frontend", Description: "Dispatch board UI",
			Status:       model.GroupStatusProgress,
			DeleteStatus: model.DeleteStatusActive,
			ProjectID:    r.id(model.PROJECT, 0), MilestoneID: r.id(model.MILESTONE, 1),
		},
		model.Group{
			Name: "Catalog", Description: "Product browsing",
			Status:       model.GroupStatusCompleted,
			DeleteStatus: model.DeleteStatusActive,
			ProjectID:    r.id(model.PROJECT, 1), MilestoneID: r.id(model.MILESTONE, 2),
		},
		// 软删除示例, delete_status="0"表示已删除
		model.Group{
			Name: "Spike: charting libs", Description: "Abandoned exploration",
			Status:       model.GroupStatusCompleted,
			DeleteStatus: model.DeleteStatusDeleted,
			ProjectID:    r.id(model.PROJECT, 2), MilestoneID: r.id(model.MILESTONE, 4),
		},
	)
}

func buildTasks(r *run) ([]bson.M, error) {
	return toDocs(
		model.Task{
			Name:        "GPS ingest service",
			Description: "Consume device pings and persist positions",
			TaskStatus:  r.id(model.STATUS, 2), StatusName: statusSeed[2].TaskStatus,
			Priority: model.PriorityHigh, Estimate: "40:00",
			StartDate: date(2026, 3, 2), EndDate: date(2026, 3, 27),
			TaskLoggedTime: "12:30",
			ProjectID:      r.id(model.PROJECT, 0),
			MilestoneID:    oid(r.id(model.MILESTONE, 1)),
			GroupID:        oid(r.id(model.GROUP, 0)),
			AssignedBy:     r.id(model.USER, 0),
			AssignedTo:     []primitive.ObjectID{r.id(model.USER, 2), r.id(model.USER, 3)},
			CreatedBy:      r.id(model.USER, 0),
			Comments: []model.TaskComment{
				{
					Comment: "Device protocol doc is in the shared drive", CommentedBy: r.id(model.USER, 0), CommentedAt: date(2026, 3, 3),
					Replies: []model.TaskReply{
						{Reply: "Found it, thanks", RepliedBy: r.id(model.USER, 2), RepliedAt: date(2026, 3, 3)},
					},
				},
				{Comment: "Batching pings per vehicle cut writes by 80%", CommentedBy: r.id(model.USER, 2), CommentedAt: date(2026, 3, 10)},
			},
		},
		model.Task{
			Name:        "Dispatch board layout",
			Description: "Column per driver, unassigned lane on the left",
			TaskStatus:  r.id(model.STATUS, 1), StatusName: statusSeed[1].TaskStatus,
			Priority: model.PriorityMedium, Estimate: "24:00",
			StartDate: date(2026, 3, 9), EndDate: date(2026, 4, 3),
			ProjectID:   r.id(model.PROJECT, 0),
			MilestoneID: oid(r.id(model.MILESTONE, 1)),
			GroupID:     oid(r.id(model.GROUP, 1)),
			AssignedBy:  r.id(model.USER, 0),
			AssignedTo:  []primitive.ObjectID{r.id(model.USER, 3)},
			CreatedBy:   r.id(model.USER, 0),
		},
		model.Task{
			Name:        "Product search",
			Description: "Faceted search over the catalog",
			TaskStatus:  r.id(model.STATUS, 4), StatusName: statusSeed[4].TaskStatus,
			Priority: model.PriorityHigh, Estimate: "32:00",
			StartDate: date(2026, 2, 9), EndDate: date(2026, 3, 6),
			TaskLoggedTime: "31:15",
			IsTaskFinished: true,
			ProjectID:      r.id(model.PROJECT, 1),
			MilestoneID:    oid(r.id(model.MILESTONE, 2)),
			GroupID:        oid(r.id(model.GROUP, 2)),
			AssignedBy:     r.id(model.USER, 1),
			AssignedTo:     []primitive.ObjectID{r.id(model.USER, 4)},
			CreatedBy:      r.id(model.USER, 1),
			Comments: []model.TaskComment{
				{Comment: "Release notes drafted", CommentedBy: r.id(model.USER, 4), CommentedAt: date(2026, 3, 6)},
			},
		},
		model.Task{
			Name:        "Cart persistence",
			Description: "Carts survive login and device switch",
			TaskStatus:  r.id(model.STATUS, 3), StatusName: statusSeed[3].TaskStatus,
			Priority: model.PriorityMedium, Estimate: "16:00",
			StartDate: date(2026, 3, 9), EndDate: date(2026, 3, 20),
			TaskLoggedTime: "14:00",
			ProjectID:      r.id(model.PROJECT, 1),
			MilestoneID:    oid(r.id(model.MILESTONE, 2)),
			AssignedBy:     r.id(model.USER, 1),
			AssignedTo:     []primitive.ObjectID{r.id(model.USER, 4)},
			CreatedBy:      r.id(model.USER, 4),
		},
		model.Task{
			Name:        "Campaign KPI dashboard",
			Description: "Spend, reach and conversion per campaign",
			TaskStatus:  r.id(model.STATUS, 0), StatusName: statusSeed[0].TaskStatus,
			Priority: model.PriorityUrgent, Estimate: "48:00",
			StartDate: date(2026, 3, 16), EndDate: date(2026, 4, 24),
			ProjectID:   r.id(model.PROJECT, 2),
			MilestoneID: oid(r.id(model.MILESTONE, 4)),
			AssignedBy:  r.id(model.USER, 0),
			AssignedTo:  []primitive.ObjectID{r.id(model.USER, 2), r.id(model.USER, 4)},
			CreatedBy:   r.id(model.USER, 0),
		},
		model.Task{
			Name:        "Regression suite for checkout",
			Description: "Automated happy-path and failure cases",
			TaskStatus:  r.id(model.STATUS, 1), StatusName: statusSeed[1].TaskStatus,
			Priority: model.PriorityLow, Estimate: "20:00",
			StartDate: date(2026, 5, 4), EndDate: date(2026, 5, 22),
			ProjectID:   r.id(model.PROJECT, 1),
			MilestoneID: oid(r.id(model.MILESTONE, 3)),
			AssignedBy:  r.id(model.USER, 1),
			AssignedTo:  []primitive.ObjectID{r.id(model.USER, 5)},
			CreatedBy:   r.id(model.USER, 1),
		},
	)
}

// buildSubtasks 子任务单独一批插入, parent_task必须引用已落库的任务
func buildSubtasks(r *run) ([]bson.M, error) {
	return toDocs(
		model.Task{
			Name:        "Ping deduplication",
			Description: "Drop duplicate pings inside a 5 second window",
			TaskStatus:  r.id(model.STATUS, 1), StatusName: statusSeed[1].TaskStatus,
			Priority: model.PriorityMedium, Estimate: "08:00",
			StartDate: date(2026, 3, 16), EndDate: date(2026, 3, 20),
			ProjectID:   r.id(model.PROJECT, 0),
			MilestoneID: oid(r.id(model.MILESTONE, 1)),
			ParentTask:  oid(r.id(model.TASK, 0)),
			GroupID:     oid(r.id(model.GROUP, 0)),
			AssignedBy:  r.id(model.USER, 2),
			AssignedTo:  []primitive.ObjectID{r.id(model.USER, 3)},
			CreatedBy:   r.id(model.USER, 2),
		},
		model.Task{
			Name:        "Search synonym list",
			Description: "Seed synonyms from last season's queries",
			TaskStatus:  r.id(model.STATUS, 4), StatusName: statusSeed[4].TaskStatus,
			Priority: model.PriorityLow, Estimate: "04:00",
			StartDate: date(2026, 2, 23), EndDate: date(2026, 2, 27),
			TaskLoggedTime: "03:45",
			IsTaskFinished: true,
			ProjectID:      r.id(model.PROJECT, 1),
			MilestoneID:    oid(r.id(model.MILESTONE, 2)),
			ParentTask:     oid(r.id(model.TASK, 2)),
			AssignedBy:     r.id(model.USER, 1),
			AssignedTo:     []primitive.ObjectID{r.id(model.USER, 4)},
			CreatedBy:      r.id(model.USER, 4),
		},
	)
}

func buildTimeLogs(r *run) ([]bson.M, error) {
	logs := []struct {
		project, task, user int
		day                 time.Time
		start, end          string
		billable, billed    bool
		deleted             bool
	}{
		{0, 0, 2, date(2026, 3, 3), "09:00", "12:30", true, false, false},
		{0, 0, 3, date(2026, 3, 4), "10:00", "13:00", true, false, false},
		{0, 1, 3, date(2026, 3, 10), "14:00", "17:30", true, false, false},
		{1, 2, 4, date(2026, 2, 10), "09:15", "18:00", true, true, false},
		{1, 3, 4, date(2026, 3, 11), "09:00", "16:00", false, false, false},
		// 误录入后软删除的记录
		{1, 2, 4, date(2026, 2, 11), "09:00", "09:05", true, false, true},
	}
	vals := make([]interface{}, 0, len(logs))
	for _, l := range logs {
		duration, err := tools.Duration(l.start, l.end)
		if err != nil {
			return nil, err
		}
		deleteStatus := model.DeleteStatusActive
		if l.deleted {
			deleteStatus = model.DeleteStatusDeleted
		}
		vals = append(vals, model.TimeLog{
			ProjectID: r.id(model.PROJECT, l.project),
			TaskID:    oid(r.id(model.TASK, l.task)),
			UserID:    r.id(model.USER, l.user),
			Date:      l.day,
			StartTime: l.start, EndTime: l.end, Duration: duration,
			Billable: l.billable, Billed: l.billed,
			DeleteStatus: deleteStatus,
		})
	}
	return toDocs(vals...)
}

func buildInviteUsers(r *run) ([]bson.M, error) {
	invites := []struct {
		user, project int
		status        string
		admin         bool
	}{
		{0, 0, model.InviteStatusActive, true},
		{2, 0, model.InviteStatusActive, false},
		{3, 0, model.InviteStatusActive, false},
		{1, 1, model.InviteStatusActive, true},
		{4, 1, model.InviteStatusActive, false},
		{5, 1, model.InviteStatusActive, false},
		{0, 2, model.InviteStatusActive, true},
		{2, 2, model.InviteStatusActive, false},
		// 邀请后又移出项目, 记录保留
		{5, 0, model.InviteStatusDeleted, false},
	}
	vals := make([]interface{}, 0, len(invites))
	for _, iv := range invites {
		vals = append(vals, model.InviteUser{
			UserID:    r.id(model.USER, iv.user),
			ProjectID: r.id(model.PROJECT, iv.project),
			Status:    iv.status,
			IsAdmin:   iv.admin,
		})
	}
	return toDocs(vals...)
}

func buildPermissions(r *run) ([]bson.M, error) {
	return toDocs(
		model.Permission{
			UserID: r.id(model.USER, 2), ProjectID: r.id(model.PROJECT, 0),
			Permissions: []model.ActionPermission{
				{Action: "task.assign", Allowed: true},
				{Action: "milestone.edit", Allowed: false},
			},
			AssignedBy: r.id(model.USER, 0),
		},
		model.Permission{
			UserID: r.id(model.USER, 4), ProjectID: r.id(model.PROJECT, 1),
			Permissions: []model.ActionPermission{
				{Action: "task.assign", Allowed: true},
				{Action: "timelog.edit", Allowed: true},
			},
			AssignedBy: r.id(model.USER, 1),
		},
		model.Permission{
			UserID: r.id(model.USER, 5), ProjectID: r.id(model.PROJECT, 1),
			Permissions: []model.ActionPermission{
				{Action: "task.close", Allowed: true},
			},
			AssignedBy: r.id(model.USER, 1),
		},
	)
}

func buildAvailability(r *run) ([]bson.M, error) {
	allDay := func(available ...bool) []model.SessionAvailability {
		sessions := make([]model.SessionAvailability, 0, len(available))
		for i, a := range available {
			sessions = append(sessions, model.SessionAvailability{SessionID: r.id(model.SESSION, i), Available: a})
		}
		return sessions
	}
	entries := []struct {
		user, project int
		day           time.Time
		sessions      []model.SessionAvailability
	}{
		{2, 0, date(2026, 3, 16), allDay(true, true, false)},
		{2, 0, date(2026, 3, 17), allDay(true, false, false)},
		{3, 0, date(2026, 3, 16), allDay(true, true, true)},
		{4, 1, date(2026, 3, 16), allDay(false, true, true)},
		{4, 1, date(2026, 3, 18), allDay(true, true, false)},
		{5, 1, date(2026, 3, 17), allDay(true, true, false)},
	}
	vals := make([]interface{}, 0, len(entries))
	for _, e := range entries {
		vals = append(vals, model.UserAvailabilityCalendar{
			UserID:    r.id(model.USER, e.user),
			ProjectID: r.id(model.PROJECT, e.project),
			Date:      e.day,
			Sessions:  e.sessions,
		})
	}
	return toDocs(vals...)
}

func buildBookings(r *run) ([]bson.M, error) {
	return toDocs(
		model.UserBooking{
			UserID: r.id(model.USER, 2), BookedBy: r.id(model.USER, 0),
			Date: date(2026, 3, 16),
			Sessions: []model.SessionBooking{
				{SessionID: r.id(model.SESSION, 0), Status: model.BookingBooked},
				{SessionID: r.id(model.SESSION, 1), Status: model.BookingAvailable},
			},
		},
		model.UserBooking{
			UserID: r.id(model.USER, 3), BookedBy: r.id(model.USER, 0),
			Date: date(2026, 3, 16),
			Sessions: []model.SessionBooking{
				{SessionID: r.id(model.SESSION, 2), Status: model.BookingBooked},
			},
		},
		model.UserBooking{
			UserID: r.id(model.USER, 4), BookedBy: r.id(model.USER, 1),
			Date: date(2026, 3, 18),
			Sessions: []model.SessionBooking{
				{SessionID: r.id(model.SESSION, 0), Status: model.BookingBooked},
				{SessionID: r.id(model.SESSION, 1), Status: model.BookingBooked},
			},
		},
	)
}

func buildLoggedUsers(r *run) ([]bson.M, error) {
	return toDocs(
		model.LoggedUser{
			UserID: r.id(model.USER, 0).Hex(),
			Token:  uuid.New().String(),
			Logged: true,
		},
		model.LoggedUser{
			UserID: r.id(model.USER, 2).Hex(),
			Token:  uuid.New().String(),
			Logged: false,
		},
	)
}

func buildProjectDocuments(r *run) ([]bson.M, error) {
	doc := func(project int, name, desc, original, docType string) model.ProjectDocument {
		unique := uuid.New().String()
		return model.ProjectDocument{
			ProjectID:    r.id(model.PROJECT, project),
			DocumentName: name,
			Description:  desc,
			OriginalName: original,
			UniqueName:   unique,
			StorageKey:   "documents/" + unique,
			URL:          "https://files.protrack.dev/documents/" + unique,
			DocumentType: docType,
		}
	}
	return toDocs(
		doc(0, "Device protocol", "GPS unit message format", "device-protocol-v3.pdf", "pdf"),
		doc(0, "Dispatch wireframes", "Board layout drafts", "dispatch-wireframes.fig", "fig"),
		doc(1, "Brand guidelines", "Northwind storefront styling", "northwind-brand.pdf", "pdf"),
		doc(2, "KPI definitions", "Metric formulas agreed with the client", "kpi-definitions.xlsx", "xlsx"),
	)
}
