package logic

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/protrack/service/errors"
	"github.com/protrack/service/init/mongodb"
	"github.com/protrack/service/model"
	"github.com/protrack/service/schema"
)

// finishedStatus 任务进入此状态时is_task_finished置为true
const finishedStatus = "COMPLETED"

// statusSet 状态引用变更的$set内容.
// status_name是Status.task_status的冗余缓存, 必须与引用变更在同一操作内
// 重算覆盖, 不允许最终一致窗口
func statusSet(statusID primitive.ObjectID, statusName string) bson.M {
	return bson.M{
		"task_status":      statusID,
		"status_name":      statusName,
		"is_task_finished": statusName == finishedStatus,
	}
}

// historyDoc 构造更新前的审计快照记录, 快照不含记录自身的_id
func historyDoc(taskID primitive.ObjectID, prior bson.M, updated []string) (bson.M, error) {
	delete(prior, "_id")
	hist, err := schema.ToDoc(model.TaskUpdateHistory{
		TaskID:        taskID.Hex(),
		Snapshot:      prior,
		UpdatedFields: updated,
		UpdatedAt:     time.Now().UTC(),
	})
	if err != nil {
		return nil, err
	}
	return schema.Validate(model.TASKUPDATEHISTORY, hist)
}

// UpdateTaskStatus 变更任务的状态引用, 更新前的任务内容写入审计快照
func UpdateTaskStatus(ctx context.Context, db *mongo.Database, taskID, statusID primitive.ObjectID) error {
	var status bson.M
	if err := mongodb.FindByID(ctx, db.Collection(model.STATUS), &status, statusID); err != nil {
		return err
	}
	statusName, ok := status["task_status"].(string)
	if !ok {
		return errors.Errorf("状态记录%s缺少task_status", statusID.Hex())
	}

	var prior bson.M
	if err := mongodb.FindByID(ctx, db.Collection(model.TASK), &prior, taskID); err != nil {
		return err
	}

	update := bson.M{"$set": statusSet(statusID, statusName)}
	if _, err := db.Collection(model.TASK).UpdateOne(ctx, bson.M{"_id": taskID}, update); err != nil {
		return &mongodb.StoreOperationError{Collection: model.TASK, Op: "update", Err: err}
	}

	doc, err := historyDoc(taskID, prior, []string{"task_status", "status_name", "is_task_finished"})
	if err != nil {
		return err
	}
	_, err = mongodb.InsertMany(ctx, db.Collection(model.TASKUPDATEHISTORY), []bson.M{doc})
	return err
}
