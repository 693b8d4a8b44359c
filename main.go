package main

import (
	"context"

	"github.com/ecodeclub/webshop/ioc"
	"github.com/gotomicro/ego"
	"github.com/gotomicro/ego/core/elog"
	"github.com/gotomicro/ego/server/egin"
	"github.com/gotomicro/ego/server/egovernor"
)

// export EGO_DEBUG=true
// go run main.go --config=config/config.yaml
func main() {
	// 先触发初始化，econf 在这一步加载配置
	egoApp := ego.New()
	tp := ioc.InitZipkinTracer()
	defer func() {
		if err := tp.Shutdown(context.Background()); err != nil {
			elog.Error("关闭 zipkin tracer 失败", elog.FieldErr(err))
		}
	}()
	app, err := ioc.InitApp()
	if err != nil {
		panic(err)
	}
	err = egoApp.
		Serve(
			// /metrics 在 governor 上暴露
			egovernor.Load("server.governor").Build(),
			app.Web,
			(*egin.Component)(app.Admin)).
		Run()
	if err != nil {
		elog.DefaultLogger.Error("应用运行出错", elog.FieldErr(err))
	}
}
