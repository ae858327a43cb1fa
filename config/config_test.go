package config

import (
	"os"
	"testing"
)

// 无配置文件时纯环境变量也要能生效
func TestMustLoadEnvOnly(t *testing.T) {
	os.Setenv("MONGO_ADDR", "mongodb://seed-host:27017")
	os.Setenv("MONGO_DB", "pmtool_test")
	defer func() {
		os.Unsetenv("MONGO_ADDR")
		os.Unsetenv("MONGO_DB")
	}()

	MustLoad()
	if C.Mongo.Addr != "mongodb://seed-host:27017" {
		t.Errorf("mongo.addr期望来自环境变量, 实际%q", C.Mongo.Addr)
	}
	if C.Mongo.DB != "pmtool_test" {
		t.Errorf("mongo.db期望pmtool_test, 实际%q", C.Mongo.DB)
	}
	if C.Database() != "pmtool_test" {
		t.Errorf("库名期望pmtool_test, 实际%q", C.Database())
	}
}
