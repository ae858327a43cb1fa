package seed

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/protrack/service/config"
	"github.com/protrack/service/init/mongodb"
	"github.com/protrack/service/logger"
	"github.com/protrack/service/model"
	"github.com/protrack/service/schema"
)

// DependencyOrderError 填充步骤在被引用集合落库前就试图取其标识,
// 属于步骤顺序被破坏的内部缺陷, 不是可恢复的运行时状况
type DependencyOrderError struct {
	Entity string
	Index  int
	Reason string
}

func (e *DependencyOrderError) Error() string {
	return fmt.Sprintf("依赖顺序被破坏: 集合%s下标%d: %s", e.Entity, e.Index, e.Reason)
}

type buildFunc func(r *run) ([]bson.M, error)

// step 单个填充步骤, 只有引用的集合全部落库后才会执行
type step struct {
	entity string
	build  buildFunc
}

// steps 填充顺序. 先无依赖的参照数据, 再按外键依赖逐层推进,
// 子任务单独一步, 因为parent_task要引用同集合已落库的记录
var steps = []step{
	{model.CLIENT, buildClients},
	{model.DESIGNATION, buildDesignations},
	{model.SKILL, buildSkills},
	{model.ROLE, buildRoles},
	{model.TECHNOLOGY, buildTechnologies},
	{model.STATUS, buildStatuses},
	{model.SESSION, buildSessions},
	{model.USER, buildUsers},
	{model.PROJECT, buildProjects},
	{model.MILESTONE, buildMilestones},
	{model.GROUP, buildGroups},
	{model.TASK, buildTasks},
	{model.TASK, buildSubtasks},
	{model.TIMELOG, buildTimeLogs},
	{model.INVITEUSER, buildInviteUsers},
	{model.PERMISSION, buildPermissions},
	{model.AVAILABILITY, buildAvailability},
	{model.USERBOOKING, buildBookings},
	{model.LOGGEDUSER, buildLoggedUsers},
	{model.PROJECTDOCUMENT, buildProjectDocuments},
}

// run 一次生成过程. ids按集合保存已落库记录的ObjectID,
// 仅由InsertMany的返回填充, 供后续步骤按位置取外键
type run struct {
	db  *mongo.Database
	ids map[string][]primitive.ObjectID
	err error
}

// id 取已落库集合第i条记录的标识.
// 集合未填充或下标越界时记录DependencyOrderError并返回零值
func (r *run) id(entity string, i int) primitive.ObjectID {
	ids, ok := r.ids[entity]
	if !ok {
		r.fail(&DependencyOrderError{Entity: entity, Index: i, Reason: "集合尚未填充"})
		return primitive.NilObjectID
	}
	if i < 0 || i >= len(ids) {
		r.fail(&DependencyOrderError{Entity: entity, Index: i,
			Reason: fmt.Sprintf("下标越界, 集合只有%d条记录", len(ids))})
		return primitive.NilObjectID
	}
	return ids[i]
}

func (r *run) fail(err error) {
	if r.err == nil {
		r.err = err
	}
}

// RunWithURI 连接目标库执行生成, 连接在任意退出路径上保证释放
func RunWithURI(ctx context.Context, uri, dbName string) (*Report, error) {
	cfg := config.C.Mongo
	cfg.Addr = uri
	cli, clean, err := mongodb.NewMongoDB(cfg)
	if clean != nil {
		defer clean()
	}
	if err != nil {
		return nil, err
	}
	return Run(ctx, cli.Database(dbName))
}

// Run 执行生成: 清空全部集合, 按依赖顺序填充, 返回各集合计数.
// 任一插入失败立即中止后续步骤, 不做局部修复; 因清库阶段总是先执行,
// 重跑即可回到干净状态
func Run(ctx context.Context, db *mongo.Database) (*Report, error) {
	r := &run{db: db, ids: map[string][]primitive.ObjectID{}}
	if err := r.clear(ctx); err != nil {
		return nil, err
	}
	for _, s := range steps {
		if err := r.populate(ctx, s); err != nil {
			return nil, err
		}
	}
	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		logger.Warnf(nil, "索引创建失败: %s", err.Error())
	}
	report := r.buildReport()
	logger.Infof(map[string]interface{}{"total": report.Total}, "种子数据生成完成")
	logger.Debugf(nil, "报告: %s", report.JSON())
	return report, nil
}

// clear 清空全部集合, 集合间无依赖约束, 必须全部完成后才进入填充阶段
func (r *run) clear(ctx context.Context) error {
	for _, name := range model.Collections {
		n, err := mongodb.DeleteAll(ctx, r.db.Collection(name))
		if err != nil {
			logger.Errorf(map[string]interface{}{"phase": "clear", "collection": name}, "清空集合失败: %s", err.Error())
			return err
		}
		logger.Debugf(map[string]interface{}{"phase": "clear", "collection": name, "deleted": n}, "集合已清空")
	}
	return nil
}

// populate 执行单个填充步骤: 构造记录, 逐条校验, 批量插入并捕获标识
func (r *run) populate(ctx context.Context, s step) error {
	fields := map[string]interface{}{"phase": "populate", "collection": s.entity}
	docs, err := s.build(r)
	if err == nil {
		err = r.err
	}
	if err != nil {
		logger.Errorf(fields, "构造记录失败: %s", err.Error())
		return err
	}
	validated := make([]bson.M, 0, len(docs))
	for i, doc := range docs {
		v, err := schema.Validate(s.entity, doc)
		if err != nil {
			logger.Errorf(fields, "第%d条记录校验失败: %s", i, err.Error())
			return err
		}
		validated = append(validated, v)
	}
	ids, err := mongodb.InsertMany(ctx, r.db.Collection(s.entity), validated)
	if err != nil {
		logger.Errorf(fields, "插入失败: %s", err.Error())
		return err
	}
	r.ids[s.entity] = append(r.ids[s.entity], ids...)
	logger.Infof(fields, "已插入%d条记录", len(ids))
	return nil
}

func (r *run) buildReport() *Report {
	report := &Report{}
	for _, name := range model.Collections {
		report.Add(name, int64(len(r.ids[name])))
	}
	return report
}
