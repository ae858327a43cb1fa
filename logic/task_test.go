package logic

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// is_task_finished只由status_name推导, 与状态引用在同一$set内覆盖
func TestStatusSet(t *testing.T) {
	id := primitive.NewObjectID()

	set := statusSet(id, "COMPLETED")
	if set["task_status"] != id {
		t.Errorf("task_status期望%s, 实际%v", id.Hex(), set["task_status"])
	}
	if set["status_name"] != "COMPLETED" {
		t.Errorf("status_name期望COMPLETED, 实际%v", set["status_name"])
	}
	if set["is_task_finished"] != true {
		t.Error("COMPLETED状态下is_task_finished应为true")
	}

	for _, name := range []string{"NEW", "IN PROGRESS", "completed"} {
		set := statusSet(id, name)
		if set["is_task_finished"] != false {
			t.Errorf("状态%s下is_task_finished应为false", name)
		}
	}
}

func TestHistoryDoc(t *testing.T) {
	taskID := primitive.NewObjectID()
	prior := bson.M{
		"_id":         taskID,
		"task_name":   "GPS ingest service",
		"status_name": "NEW",
	}
	doc, err := historyDoc(taskID, prior, []string{"task_status", "status_name", "is_task_finished"})
	if err != nil {
		t.Fatal(err)
	}
	if doc["task_id"] != taskID.Hex() {
		t.Errorf("task_id期望%s, 实际%v", taskID.Hex(), doc["task_id"])
	}
	snap, ok := doc["snapshot"].(bson.M)
	if !ok {
		t.Fatalf("snapshot类型不正确: %T", doc["snapshot"])
	}
	if _, ok := snap["_id"]; ok {
		t.Error("快照不应携带原记录_id")
	}
	if snap["task_name"] != "GPS ingest service" {
		t.Errorf("快照内容丢失: %v", snap)
	}
	fields, ok := doc["updated_fields"].(primitive.A)
	if !ok || len(fields) != 3 {
		t.Errorf("updated_fields不正确: %v", doc["updated_fields"])
	}
	if _, ok := doc["updated_at"].(primitive.DateTime); !ok {
		t.Errorf("updated_at类型不正确: %T", doc["updated_at"])
	}
}
