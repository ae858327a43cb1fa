package seed

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/protrack/service/model"
	"github.com/protrack/service/schema"
)

// buildAll 不连库执行全部构造步骤: 每步构造后为该批记录编造标识,
// 模拟InsertMany的标识捕获, 返回各集合的记录与标识
func buildAll(t *testing.T) (map[string][]bson.M, map[string][]primitive.ObjectID) {
	t.Helper()
	r := &run{ids: map[string][]primitive.ObjectID{}}
	docs := map[string][]bson.M{}
	for _, s := range steps {
		batch, err := s.build(r)
		if err != nil {
			t.Fatalf("集合%s构造失败: %s", s.entity, err.Error())
		}
		if r.err != nil {
			t.Fatalf("集合%s触发依赖顺序错误: %s", s.entity, r.err.Error())
		}
		for i, doc := range batch {
			v, err := schema.Validate(s.entity, doc)
			if err != nil {
				t.Fatalf("集合%s第%d条记录校验失败: %s", s.entity, i, err.Error())
			}
			docs[s.entity] = append(docs[s.entity], v)
			r.ids[s.entity] = append(r.ids[s.entity], primitive.NewObjectID())
		}
	}
	return docs, r.ids
}

func idSet(ids []primitive.ObjectID) map[primitive.ObjectID]bool {
	set := map[primitive.ObjectID]bool{}
	for _, id := range ids {
		set[id] = true
	}
	return set
}

func TestBuildersCounts(t *testing.T) {
	docs, _ := buildAll(t)
	want := map[string]int{
		model.CLIENT:          3,
		model.DESIGNATION:     4,
		model.SKILL:           8,
		model.ROLE:            3,
		model.TECHNOLOGY:      8,
		model.STATUS:          5,
		model.SESSION:         3,
		model.USER:            6,
		model.PROJECT:         3,
		model.MILESTONE:       5,
		model.GROUP:           4,
		model.TASK:            8,
		model.TIMELOG:         6,
		model.INVITEUSER:      9,
		model.PERMISSION:      3,
		model.AVAILABILITY:    6,
		model.USERBOOKING:     3,
		model.LOGGEDUSER:      2,
		model.PROJECTDOCUMENT: 4,
	}
	for entity, n := range want {
		if len(docs[entity]) != n {
			t.Errorf("集合%s期望%d条记录, 实际%d", entity, n, len(docs[entity]))
		}
	}
}

// TestBuildersReferentialIntegrity 每条记录的非空外键都必须指向
// 被引用集合中已捕获的标识
func TestBuildersReferentialIntegrity(t *testing.T) {
	docs, ids := buildAll(t)
	for entity, batch := range docs {
		def, err := schema.Get(entity)
		if err != nil {
			t.Fatal(err)
		}
		for i, doc := range batch {
			for _, f := range def.Fields {
				if f.Ref == "" {
					continue
				}
				v, ok := doc[f.Name]
				if !ok || v == nil {
					continue
				}
				refs := idSet(ids[f.Ref])
				switch val := v.(type) {
				case primitive.ObjectID:
					if !refs[val] {
						t.Errorf("%s[%d].%s引用了集合%s中不存在的标识", entity, i, f.Name, f.Ref)
					}
				case primitive.A:
					for _, item := range val {
						if id, ok := item.(primitive.ObjectID); ok && !refs[id] {
							t.Errorf("%s[%d].%s引用了集合%s中不存在的标识", entity, i, f.Name, f.Ref)
						}
					}
				}
			}
		}
	}

	// 内嵌技术选型的外键同样必须可解析
	techIDs := idSet(ids[model.TECHNOLOGY])
	for i, p := range docs[model.PROJECT] {
		techs, _ := p["technologies"].(primitive.A)
		for _, raw := range techs {
			tech, ok := raw.(bson.M)
			if !ok {
				t.Fatalf("project[%d]技术选型格式不正确: %T", i, raw)
			}
			id, _ := tech["technology_id"].(primitive.ObjectID)
			if !techIDs[id] {
				t.Errorf("project[%d]内嵌technology_id不可解析", i)
			}
		}
	}
}

func TestBuildersCurrentMilestonePerProject(t *testing.T) {
	docs, _ := buildAll(t)
	current := map[primitive.ObjectID]int{}
	for _, m := range docs[model.MILESTONE] {
		if m["is_current_milestone"] == true {
			current[m["project_id"].(primitive.ObjectID)]++
		}
	}
	for project, n := range current {
		if n > 1 {
			t.Errorf("项目%s有%d个当前里程碑, 至多允许1个", project.Hex(), n)
		}
	}
}

func TestBuildersUniqueEmails(t *testing.T) {
	docs, _ := buildAll(t)
	seen := map[string]bool{}
	for _, u := range docs[model.USER] {
		email := u["email"].(string)
		if seen[email] {
			t.Errorf("email重复: %s", email)
		}
		seen[email] = true
	}
}

// TestBuildersStatusNameSync status_name必须与引用的Status.task_status一致
func TestBuildersStatusNameSync(t *testing.T) {
	docs, ids := buildAll(t)
	nameByID := map[primitive.ObjectID]string{}
	for i, id := range ids[model.STATUS] {
		nameByID[id] = statusSeed[i].TaskStatus
	}
	for i, task := range docs[model.TASK] {
		statusID := task["task_status"].(primitive.ObjectID)
		if task["status_name"] != nameByID[statusID] {
			t.Errorf("task[%d].status_name=%v与引用状态%q不一致", i, task["status_name"], nameByID[statusID])
		}
	}
}

func TestBuildersSoftDelete(t *testing.T) {
	docs, _ := buildAll(t)
	deleted := 0
	for _, g := range docs[model.GROUP] {
		if schema.IsGroupDeleted(g) {
			deleted++
		}
	}
	if deleted != 1 {
		t.Errorf("期望恰好1个软删除分组, 实际%d", deleted)
	}
	deleted = 0
	for _, l := range docs[model.TIMELOG] {
		if schema.IsTimeLogDeleted(l) {
			deleted++
		}
	}
	if deleted != 1 {
		t.Errorf("期望恰好1条软删除工时记录, 实际%d", deleted)
	}
}

func TestBuildersSubtasks(t *testing.T) {
	docs, ids := buildAll(t)
	taskIDs := idSet(ids[model.TASK])
	subtasks := 0
	for i, task := range docs[model.TASK] {
		parent, ok := task["parent_task"].(primitive.ObjectID)
		if !ok {
			continue
		}
		subtasks++
		if !taskIDs[parent] {
			t.Errorf("task[%d].parent_task不可解析", i)
		}
	}
	if subtasks != 2 {
		t.Errorf("期望2个子任务, 实际%d", subtasks)
	}
}
