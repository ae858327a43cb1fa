package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/protrack/service/errors"
	"github.com/protrack/service/schema"
)

// StoreOperationError 数据库读写操作失败, 不重试
type StoreOperationError struct {
	Collection string
	Op         string
	Err        error
}

func (e *StoreOperationError) Error() string {
	return "集合" + e.Collection + " " + e.Op + "操作失败: " + e.Err.Error()
}

// Unwrap 返回底层错误
func (e *StoreOperationError) Unwrap() error { return e.Err }

// InsertMany 批量插入并捕获存储端分配的ObjectID, 按记录的逻辑位置索引
func InsertMany(ctx context.Context, col *mongo.Collection, docs []bson.M) ([]primitive.ObjectID, error) {
	if len(docs) == 0 {
		return nil, nil
	}
	models := make([]interface{}, 0, len(docs))
	for _, doc := range docs {
		models = append(models, doc)
	}
	result, err := col.InsertMany(ctx, models)
	if err != nil {
		return nil, &StoreOperationError{Collection: col.Name(), Op: "insert", Err: err}
	}
	ids := make([]primitive.ObjectID, 0, len(result.InsertedIDs))
	for _, raw := range result.InsertedIDs {
		id, ok := raw.(primitive.ObjectID)
		if !ok {
			return nil, &StoreOperationError{
				Collection: col.Name(),
				Op:         "insert",
				Err:        errors.Errorf("返回的_id不是ObjectID: %v", raw),
			}
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// DeleteAll 清空集合
func DeleteAll(ctx context.Context, col *mongo.Collection) (int64, error) {
	result, err := col.DeleteMany(ctx, bson.M{})
	if err != nil {
		return 0, &StoreOperationError{Collection: col.Name(), Op: "delete", Err: err}
	}
	return result.DeletedCount, nil
}

// FindByID 根据id查询单条记录
func FindByID(ctx context.Context, col *mongo.Collection, result *bson.M, id primitive.ObjectID) error {
	err := col.FindOne(ctx, bson.M{"_id": id}).Decode(result)
	if err != nil {
		return &StoreOperationError{Collection: col.Name(), Op: "find", Err: err}
	}
	return nil
}

// FindPipeline 根据pipeline查询数据
func FindPipeline(ctx context.Context, col *mongo.Collection, result *[]bson.M, pipeLine mongo.Pipeline) error {
	cursor, err := col.Aggregate(ctx, pipeLine)
	if err != nil {
		return &StoreOperationError{Collection: col.Name(), Op: "aggregate", Err: err}
	}
	defer cursor.Close(ctx)
	for cursor.Next(ctx) {
		var r bson.M
		if err := cursor.Decode(&r); err != nil {
			return &StoreOperationError{Collection: col.Name(), Op: "aggregate", Err: err}
		}
		*result = append(*result, r)
	}
	if err := cursor.Err(); err != nil {
		return &StoreOperationError{Collection: col.Name(), Op: "aggregate", Err: err}
	}
	return nil
}

// FindRelated 按派生关系解析关联记录, 外键等值lookup, 不冗余存储
func FindRelated(ctx context.Context, db *mongo.Database, entity, relation string, result *[]bson.M) error {
	rel, err := schema.DerivedRelation(entity, relation)
	if err != nil {
		return err
	}
	return FindPipeline(ctx, db.Collection(entity), result, rel.Pipeline())
}
