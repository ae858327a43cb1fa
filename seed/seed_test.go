package seed

import (
	"strings"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/protrack/service/model"
	"github.com/protrack/service/schema"
	"github.com/protrack/service/util/json"
)

// TestStepOrder 每个集合只能在它外键引用的集合全部落库之后填充.
// 自引用(task.parent_task)由TestBuildersReferentialIntegrity单独覆盖
func TestStepOrder(t *testing.T) {
	populated := map[string]bool{}
	for _, s := range steps {
		def, err := schema.Get(s.entity)
		if err != nil {
			t.Fatal(err)
		}
		for _, f := range def.Fields {
			if f.Ref == "" || f.Ref == s.entity {
				continue
			}
			if !populated[f.Ref] {
				t.Errorf("集合%s先于其引用的集合%s填充", s.entity, f.Ref)
			}
		}
		populated[s.entity] = true
	}
}

func TestRunIDDependencyOrder(t *testing.T) {
	r := &run{ids: map[string][]primitive.ObjectID{}}
	id := r.id(model.PROJECT, 0)
	if !id.IsZero() {
		t.Error("未填充集合应返回零值标识")
	}
	if r.err == nil {
		t.Fatal("期望记录DependencyOrderError")
	}
	if _, ok := r.err.(*DependencyOrderError); !ok {
		t.Fatalf("期望*DependencyOrderError, 实际%T", r.err)
	}

	r = &run{ids: map[string][]primitive.ObjectID{
		model.PROJECT: {primitive.NewObjectID()},
	}}
	r.id(model.PROJECT, 5)
	derr, ok := r.err.(*DependencyOrderError)
	if !ok {
		t.Fatalf("期望下标越界错误, 实际%v", r.err)
	}
	if derr.Entity != model.PROJECT || derr.Index != 5 {
		t.Fatalf("错误上下文不正确: %+v", derr)
	}

	// 只保留第一个错误
	first := r.err
	r.id(model.TASK, 0)
	if r.err != first {
		t.Error("后续错误不应覆盖第一个错误")
	}
}

func TestReport(t *testing.T) {
	report := &Report{}
	report.Add(model.CLIENT, 3)
	report.Add(model.TASK, 8)
	if report.Total != 11 {
		t.Errorf("总数期望11, 实际%d", report.Total)
	}
	if report.Count(model.TASK) != 8 {
		t.Errorf("task计数期望8, 实际%d", report.Count(model.TASK))
	}
	if report.Count("unknown") != -1 {
		t.Error("未知集合应返回-1")
	}
	s := report.String()
	if !strings.Contains(s, model.CLIENT) || !strings.Contains(s, "11") {
		t.Errorf("报告输出不完整:\n%s", s)
	}
}

func TestReportJSON(t *testing.T) {
	report := &Report{}
	report.Add(model.CLIENT, 3)
	var decoded Report
	if err := json.Unmarshal([]byte(report.JSON()), &decoded); err != nil {
		t.Fatal(err)
	}
	if decoded.Total != 3 || decoded.Count(model.CLIENT) != 3 {
		t.Errorf("JSON报告解码不一致: %+v", decoded)
	}
}

// TestStepsCoverCollections 除审计集合外, 全部集合都有填充步骤;
// 审计集合只在任务更新时产生记录, 新生成的数据集中为空
func TestStepsCoverCollections(t *testing.T) {
	seeded := map[string]bool{}
	for _, s := range steps {
		seeded[s.entity] = true
	}
	for _, name := range model.Collections {
		if name == model.TASKUPDATEHISTORY {
			if seeded[name] {
				t.Errorf("审计集合%s不应有填充步骤", name)
			}
			continue
		}
		if !seeded[name] {
			t.Errorf("集合%s缺少填充步骤", name)
		}
	}
}
