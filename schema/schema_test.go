package schema

import (
	"strings"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/protrack/service/model"
)

func validGroupDoc() bson.M {
	return bson.M{
		"name":         "Backend",
		"status":       model.GroupStatusProgress,
		"project_id":   primitive.NewObjectID(),
		"milestone_id": primitive.NewObjectID(),
	}
}

func TestValidateGroupEnum(t *testing.T) {
	doc := validGroupDoc()
	doc["status"] = "DONE"
	_, err := Validate(model.GROUP, doc)
	if err == nil {
		t.Fatal("期望枚举越界报错")
	}
	verr, ok := err.(*ValidationError)
	if !ok {
		t.Fatalf("期望*ValidationError, 实际%T", err)
	}
	if len(verr.Fields) != 1 || verr.Fields[0].Field != "status" {
		t.Fatalf("错误字段不正确: %+v", verr.Fields)
	}

	doc = validGroupDoc()
	out, err := Validate(model.GROUP, doc)
	if err != nil {
		t.Fatal(err)
	}
	if out["delete_status"] != model.DeleteStatusActive {
		t.Fatalf("delete_status默认值期望%q, 实际%v", model.DeleteStatusActive, out["delete_status"])
	}
}

func TestValidateNeverCoerces(t *testing.T) {
	doc := validGroupDoc()
	doc["delete_status"] = "2"
	out, err := Validate(model.GROUP, doc)
	if err == nil {
		t.Fatalf("期望报错, 实际通过: %v", out)
	}
	if out != nil {
		t.Fatal("校验失败时不应返回记录")
	}
}

func TestValidateInviteStatusEnum(t *testing.T) {
	doc := bson.M{
		"user_id":    primitive.NewObjectID(),
		"project_id": primitive.NewObjectID(),
		"status":     "pending",
	}
	if _, err := Validate(model.INVITEUSER, doc); err == nil {
		t.Fatal("期望status枚举越界报错")
	}
	doc["status"] = model.InviteStatusDeleted
	if _, err := Validate(model.INVITEUSER, doc); err != nil {
		t.Fatal(err)
	}
}

func TestValidateTaskDefaults(t *testing.T) {
	doc := bson.M{
		"task_name":   "GPS ingest service",
		"task_status": primitive.NewObjectID(),
		"project_id":  primitive.NewObjectID(),
		"assigned_by": primitive.NewObjectID(),
		"created_by":  primitive.NewObjectID(),
	}
	out, err := Validate(model.TASK, doc)
	if err != nil {
		t.Fatal(err)
	}
	if out["task_logged_time"] != model.TaskLoggedTimeDefault {
		t.Errorf("task_logged_time期望%q, 实际%v", model.TaskLoggedTimeDefault, out["task_logged_time"])
	}
	if out["status_name"] != model.TaskStatusNameDefault {
		t.Errorf("status_name期望%q, 实际%v", model.TaskStatusNameDefault, out["status_name"])
	}
	if out["is_task_finished"] != false {
		t.Errorf("is_task_finished期望false, 实际%v", out["is_task_finished"])
	}
	// 原记录不被修改
	if _, ok := doc["status_name"]; ok {
		t.Error("Validate不应修改入参")
	}
}

// Milestone.status是"1"/"0"字符串标志, 读取方按db.milestones.find({"status": "1"})查询.
func TestValidateMilestoneStatusFlag(t *testing.T) {
	doc := bson.M{
		"title":      "上线里程碑",
		"start_date": primitive.NewDateTimeFromTime(time.Now()),
		"project_id": primitive.NewObjectID(),
		"created_by": primitive.NewObjectID(),
	}
	out, err := Validate(model.MILESTONE, doc)
	if err != nil {
		t.Fatal(err)
	}
	if out["status"] != model.MilestoneStatusOpen {
		t.Errorf("status默认值期望%q, 实际%v", model.MilestoneStatusOpen, out["status"])
	}
	doc["status"] = true
	if _, err := Validate(model.MILESTONE, doc); err == nil {
		t.Fatal("期望布尔status报类型错误")
	}
	doc["status"] = "2"
	if _, err := Validate(model.MILESTONE, doc); err == nil {
		t.Fatal("期望枚举外status报错")
	}
}

func TestValidateRequiredMissing(t *testing.T) {
	_, err := Validate(model.CLIENT, bson.M{})
	if err == nil {
		t.Fatal("期望必填字段缺失报错")
	}
	if !strings.Contains(err.Error(), "name") {
		t.Fatalf("错误信息应指出缺失字段: %s", err.Error())
	}
}

func TestValidateRequiredZeroObjectID(t *testing.T) {
	doc := validGroupDoc()
	doc["project_id"] = primitive.NilObjectID
	if _, err := Validate(model.GROUP, doc); err == nil {
		t.Fatal("期望零值外键报错")
	}
}

func TestValidateWrongType(t *testing.T) {
	doc := validGroupDoc()
	doc["name"] = 42
	_, err := Validate(model.GROUP, doc)
	if err == nil {
		t.Fatal("期望类型错误报错")
	}
	verr := err.(*ValidationError)
	if verr.Fields[0].Field != "name" {
		t.Fatalf("错误字段不正确: %+v", verr.Fields)
	}
}

func TestIsGroupDeletedPolarity(t *testing.T) {
	// 极性相反: "0"为已删除, "1"为有效
	if !IsGroupDeleted(bson.M{"delete_status": model.DeleteStatusDeleted}) {
		t.Error("delete_status=0应判定为已删除")
	}
	if IsGroupDeleted(bson.M{"delete_status": model.DeleteStatusActive}) {
		t.Error("delete_status=1不应判定为已删除")
	}
	out, err := Validate(model.GROUP, validGroupDoc())
	if err != nil {
		t.Fatal(err)
	}
	if IsGroupDeleted(out) {
		t.Error("默认值记录不应判定为已删除")
	}
}

func TestDerivedRelation(t *testing.T) {
	rel, err := DerivedRelation(model.PROJECT, "inviteuser")
	if err != nil {
		t.Fatal(err)
	}
	if rel.From != model.INVITEUSER || rel.ForeignField != "project_id" || rel.LocalField != "_id" {
		t.Fatalf("关系定义不正确: %+v", rel)
	}
	pipeline := rel.Pipeline()
	if len(pipeline) != 1 {
		t.Fatalf("期望单个$lookup阶段, 实际%d", len(pipeline))
	}
	stage := pipeline[0][0]
	if stage.Key != "$lookup" {
		t.Fatalf("期望$lookup, 实际%s", stage.Key)
	}
	lookup := stage.Value.(bson.M)
	if lookup["from"] != model.INVITEUSER || lookup["as"] != "inviteuser" {
		t.Fatalf("lookup内容不正确: %v", lookup)
	}

	if _, err := DerivedRelation(model.DESIGNATION, "users"); err != nil {
		t.Fatal(err)
	}
	if _, err := DerivedRelation(model.PROJECT, "nonexistent"); err == nil {
		t.Fatal("期望未知关系报错")
	}
}

func TestToDoc(t *testing.T) {
	g := model.Group{
		Name:         "Backend",
		Status:       model.GroupStatusProgress,
		DeleteStatus: model.DeleteStatusActive,
		ProjectID:    primitive.NewObjectID(),
		MilestoneID:  primitive.NewObjectID(),
	}
	doc, err := ToDoc(g)
	if err != nil {
		t.Fatal(err)
	}
	if doc["name"] != "Backend" {
		t.Errorf("name不正确: %v", doc["name"])
	}
	if _, ok := doc["project_id"].(primitive.ObjectID); !ok {
		t.Errorf("project_id期望ObjectID, 实际%T", doc["project_id"])
	}
	if _, ok := doc["_id"]; ok {
		t.Error("零值_id应被省略")
	}
	if _, err := Validate(model.GROUP, doc); err != nil {
		t.Fatal(err)
	}
}

func TestAllCollectionsRegistered(t *testing.T) {
	for _, name := range model.Collections {
		if _, err := Get(name); err != nil {
			t.Errorf("集合%s未注册", name)
		}
	}
	if len(Entities()) != len(model.Collections) {
		t.Errorf("注册实体数期望%d, 实际%d", len(model.Collections), len(Entities()))
	}
}
