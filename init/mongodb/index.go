package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/protrack/service/schema"
)

// EnsureIndexes 按实体定义的索引提示建索引
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	for _, entity := range schema.Entities() {
		def, err := schema.Get(entity)
		if err != nil {
			return err
		}
		if len(def.Indexes) == 0 {
			continue
		}
		models := make([]mongo.IndexModel, 0, len(def.Indexes))
		for _, idx := range def.Indexes {
			keys := bson.D{}
			for _, k := range idx.Keys {
				keys = append(keys, bson.E{Key: k, Value: 1})
			}
			m := mongo.IndexModel{Keys: keys}
			if idx.Unique {
				m.Options = options.Index().SetUnique(true)
			}
			models = append(models, m)
		}
		if _, err := db.Collection(entity).Indexes().CreateMany(ctx, models); err != nil {
			return &StoreOperationError{Collection: entity, Op: "createIndexes", Err: err}
		}
	}
	return nil
}
