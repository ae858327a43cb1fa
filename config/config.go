package config

import (
	"log"
	"os"
	"path"
	"strings"
	"sync"

	"github.com/spf13/viper"

	"github.com/protrack/service/util/json"
)

var (
	// C 全局配置(需要先执行MustLoad，否则拿不到配置)
	C    = new(Config)
	once sync.Once
)

// MustLoad 加载配置
func MustLoad(fpaths ...string) {
	once.Do(func() {
		viper.SetConfigType("env")
		viper.AutomaticEnv()
		// AutomaticEnv只在Get时生效, Unmarshal依赖显式绑定;
		// 环境变量形如MONGO_ADDR, 对应配置键mongo.addr
		viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		for _, key := range []string{
			"runmode", "printconfig",
			"log.level", "log.file",
			"mongo.addr", "mongo.db", "mongo.poolsize",
			"mongo.heartbeatinterval", "mongo.maxconnidletime",
			"seed.db",
		} {
			if err := viper.BindEnv(key); err != nil {
				log.Fatalln("unable to bind env: ", err.Error())
			}
		}

		for _, fpath := range fpaths {
			dir, file := path.Split(fpath)
			index := strings.LastIndex(file, ".")
			viper.SetConfigName(file[:index])
			viper.SetConfigType(file[index+1:])
			viper.AddConfigPath(dir)
		}
		if len(fpaths) > 0 {
			if err := viper.ReadInConfig(); err != nil {
				log.Fatalln("Fatal error config file: ", err.Error())
			}
		}
		if err := viper.Unmarshal(C); err != nil {
			log.Fatalln("unable to decode into struct: ", err.Error())
		}
	})
}

// PrintWithJSON 基于JSON格式输出配置
func PrintWithJSON() {
	if C.PrintConfig {
		b, err := json.MarshalIndent(C, "", " ")
		if err != nil {
			os.Stdout.WriteString("[CONFIG] JSON marshal error: " + err.Error())
			return
		}
		os.Stdout.WriteString(string(b) + "\n")
	}
}

// Config 配置参数
type Config struct {
	RunMode     string
	PrintConfig bool
	Log         Log
	Mongo       Mongo
	Seed        Seed
}

// IsDebugMode 是否是debug模式
func (c *Config) IsDebugMode() bool {
	return c.RunMode == "debug"
}

// Log 日志配置参数
type Log struct {
	Level string
	File  string
}

// Mongo mongodb配置参数
type Mongo struct {
	Addr              string
	DB                string
	PoolSize          uint64
	HeartbeatInterval uint16
	MaxConnIdleTime   uint16
}

// Seed 种子数据配置参数
type Seed struct {
	// DB 覆盖Mongo.DB指定的库名, 为空时使用Mongo.DB
	DB string
}

// Database 返回种子数据写入的库名
func (c *Config) Database() string {
	if c.Seed.DB != "" {
		return c.Seed.DB
	}
	if c.Mongo.DB != "" {
		return c.Mongo.DB
	}
	return "pmtool"
}
