package main

import (
	"context"
	"flag"
	"os"

	service "github.com/protrack/service"
)

var configFile = flag.String("c", "", "配置文件路径, 为空时仅从环境变量读取")

func main() {
	flag.Parse()
	var paths []string
	if *configFile != "" {
		paths = append(paths, *configFile)
	}
	app := service.NewApp(paths...)
	if _, err := app.Run(context.Background()); err != nil {
		os.Exit(1)
	}
}
