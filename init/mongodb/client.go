package mongodb

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/protrack/service/config"
	"github.com/protrack/service/logger"
)

// ConnectionError 数据库连接无法建立或保持
type ConnectionError struct {
	Addr string
	Err  error
}

func (e *ConnectionError) Error() string {
	return "mongo连接失败 " + e.Addr + ": " + e.Err.Error()
}

// Unwrap 返回底层错误
func (e *ConnectionError) Unwrap() error { return e.Err }

// InitMongoDB 初始化mongo存储
func InitMongoDB() (*mongo.Client, func(), error) {
	cfg := config.C.Mongo
	return NewMongoDB(cfg)
}

// NewMongoDB 创建mongo存储, 返回的清理函数保证在任意退出路径上释放连接
func NewMongoDB(cfg config.Mongo) (*mongo.Client, func(), error) {
	addr := cfg.Addr
	if addr == "" {
		addr = "mongodb://localhost:27017"
	}
	poolSize := cfg.PoolSize
	if poolSize == 0 {
		poolSize = 10
	}
	heartbeat := cfg.HeartbeatInterval
	if heartbeat == 0 {
		heartbeat = 30
	}
	idle := cfg.MaxConnIdleTime
	if idle == 0 {
		idle = 30
	}
	opts := options.Client().
		ApplyURI(addr).
		SetMaxPoolSize(poolSize).
		SetHeartbeatInterval(time.Duration(heartbeat) * time.Second).
		SetMaxConnIdleTime(time.Duration(idle) * time.Second)
	cli, err := mongo.Connect(context.Background(), opts)
	if err != nil {
		return nil, nil, &ConnectionError{Addr: addr, Err: err}
	}
	cleanFunc := func() {
		err := cli.Disconnect(context.Background())
		if err != nil {
			logger.Errorf(nil, "mongo close error: %s", err.Error())
		}
	}
	err = cli.Ping(context.Background(), nil)
	if err != nil {
		return nil, cleanFunc, &ConnectionError{Addr: addr, Err: err}
	}
	return cli, cleanFunc, nil
}
