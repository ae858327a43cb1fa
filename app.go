package service

import (
	"context"
	"os"

	"github.com/protrack/service/config"
	"github.com/protrack/service/errors"
	"github.com/protrack/service/init/mongodb"
	"github.com/protrack/service/logger"
	"github.com/protrack/service/schema"
	"github.com/protrack/service/seed"
)

// App 种子数据应用
type App interface {
	Run(ctx context.Context) (*seed.Report, error)
}

type app struct{}

// NewApp 加载配置并初始化日志
func NewApp(configPaths ...string) App {
	config.MustLoad(configPaths...)
	logger.Init()
	config.PrintWithJSON()
	return &app{}
}

// Run 执行一次完整的种子数据生成.
// 连接在获取后通过defer保证在任意退出路径上释放
func (a *app) Run(ctx context.Context) (*seed.Report, error) {
	cli, clean, err := mongodb.InitMongoDB()
	if clean != nil {
		defer clean()
	}
	if err != nil {
		logger.Errorf(nil, "mongo连接失败: %s", err.Error())
		return nil, err
	}
	report, err := seed.Run(ctx, cli.Database(config.C.Database()))
	if err != nil {
		logger.Errorf(map[string]interface{}{"hint": Hint(err)}, "种子数据生成失败: %s", err.Error())
		return nil, err
	}
	os.Stdout.WriteString(report.String())
	return report, nil
}

// Hint 按错误类别给出排查提示
func Hint(err error) string {
	var connErr *mongodb.ConnectionError
	if errors.As(err, &connErr) {
		return "connectivity: 检查连接地址与凭据"
	}
	var valErr *schema.ValidationError
	if errors.As(err, &valErr) {
		return "schema mismatch: 检查实体定义与构造的记录"
	}
	var depErr *seed.DependencyOrderError
	if errors.As(err, &depErr) {
		return "missing prerequisite collection: 填充顺序被破坏, 属程序缺陷"
	}
	return "store operation: 检查数据库状态后重跑, 清库阶段会先恢复干净状态"
}
