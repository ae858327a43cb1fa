package schema

import (
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/protrack/service/errors"
)

// Kind 字段类型
type Kind string

const (
	String       Kind = "string"
	Bool         Kind = "bool"
	Date         Kind = "date"
	ObjectID     Kind = "objectId"
	ObjectIDList Kind = "objectIdList"
	Array        Kind = "array"
	Document     Kind = "document"
)

// Field 字段定义
type Field struct {
	Name     string
	Kind     Kind
	Required bool
	// Default 省略时写入的默认值, 为nil表示无默认
	Default interface{}
	// Enum 枚举域, 仅对string字段生效
	Enum []string
	// Ref 外键引用的集合名, 仅对objectId/objectIdList字段生效
	Ref string
}

// Index 索引提示
type Index struct {
	Keys   []string
	Unique bool
}

// Relation 派生关系, 由查询层按外键等值lookup解析, 不冗余存储
type Relation struct {
	Name         string
	From         string
	LocalField   string
	ForeignField string
}

// Pipeline 渲染派生关系的$lookup阶段
func (r Relation) Pipeline() mongo.Pipeline {
	return mongo.Pipeline{
		bson.D{bson.E{Key: "$lookup", Value: bson.M{
			"from":         r.From,
			"localField":   r.LocalField,
			"foreignField": r.ForeignField,
			"as":           r.Name,
		}}},
	}
}

// Definition 实体定义
type Definition struct {
	Entity    string
	Fields    []Field
	Relations []Relation
	Indexes   []Index
}

var registry = map[string]*Definition{}

// Register 注册实体定义
func Register(def *Definition) {
	registry[def.Entity] = def
}

// Get 获取实体定义
func Get(entity string) (*Definition, error) {
	def, ok := registry[entity]
	if !ok {
		return nil, errors.Errorf("实体%s未注册", entity)
	}
	return def, nil
}

// Entities 已注册的实体名
func Entities() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	return names
}

// FieldError 单个字段的校验错误
type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// ValidationError 记录校验失败, 列出全部违反约束的字段
type ValidationError struct {
	Entity string       `json:"entity"`
	Fields []FieldError `json:"fields"`
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Reason)
	}
	return fmt.Sprintf("实体%s校验失败: %s", e.Entity, strings.Join(parts, "; "))
}

// Validate 校验记录: 必填字段存在, 枚举值在域内, 类型匹配, 并为省略的可选字段
// 填入默认值. 枚举越界不做任何纠正, 直接报错
func Validate(entity string, record bson.M) (bson.M, error) {
	def, err := Get(entity)
	if err != nil {
		return nil, err
	}
	out := bson.M{}
	for k, v := range record {
		out[k] = v
	}
	verr := &ValidationError{Entity: entity}
	for _, f := range def.Fields {
		v, ok := out[f.Name]
		if !ok || v == nil {
			if f.Default != nil {
				out[f.Name] = f.Default
				continue
			}
			if f.Required {
				verr.Fields = append(verr.Fields, FieldError{Field: f.Name, Reason: "必填字段缺失"})
			}
			continue
		}
		if reason := checkKind(f, v); reason != "" {
			verr.Fields = append(verr.Fields, FieldError{Field: f.Name, Reason: reason})
		}
	}
	if len(verr.Fields) > 0 {
		return nil, verr
	}
	return out, nil
}

func checkKind(f Field, v interface{}) string {
	switch f.Kind {
	case String:
		s, ok := v.(string)
		if !ok {
			return fmt.Sprintf("期望string, 实际%T", v)
		}
		if len(f.Enum) > 0 {
			for _, e := range f.Enum {
				if s == e {
					return ""
				}
			}
			return fmt.Sprintf("值%q不在枚举域[%s]内", s, strings.Join(f.Enum, ","))
		}
	case Bool:
		if _, ok := v.(bool); !ok {
			return fmt.Sprintf("期望bool, 实际%T", v)
		}
	case Date:
		switch v.(type) {
		case primitive.DateTime:
		default:
			return fmt.Sprintf("期望日期, 实际%T", v)
		}
	case ObjectID:
		id, ok := v.(primitive.ObjectID)
		if !ok {
			return fmt.Sprintf("期望ObjectID, 实际%T", v)
		}
		if f.Required && id.IsZero() {
			return "必填外键为零值ObjectID"
		}
	case ObjectIDList:
		a, ok := v.(primitive.A)
		if !ok {
			return fmt.Sprintf("期望ObjectID数组, 实际%T", v)
		}
		for i, item := range a {
			if _, ok := item.(primitive.ObjectID); !ok {
				return fmt.Sprintf("第%d个元素期望ObjectID, 实际%T", i, item)
			}
		}
	case Array:
		if _, ok := v.(primitive.A); !ok {
			return fmt.Sprintf("期望数组, 实际%T", v)
		}
	case Document:
		if _, ok := v.(bson.M); !ok {
			return fmt.Sprintf("期望文档, 实际%T", v)
		}
	}
	return ""
}

// DerivedRelation 查找实体的派生关系
func DerivedRelation(entity, name string) (Relation, error) {
	def, err := Get(entity)
	if err != nil {
		return Relation{}, err
	}
	for _, r := range def.Relations {
		if r.Name == name {
			return r, nil
		}
	}
	return Relation{}, errors.Errorf("实体%s无派生关系%s", entity, name)
}

// ToDoc 通过bson序列化把实体结构体转为文档, 使结构体与裸文档走同一条校验路径
func ToDoc(v interface{}) (bson.M, error) {
	data, err := bson.Marshal(v)
	if err != nil {
		return nil, errors.Wrap(err, "bson marshal")
	}
	doc := bson.M{}
	if err := bson.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(err, "bson unmarshal")
	}
	return doc, nil
}
