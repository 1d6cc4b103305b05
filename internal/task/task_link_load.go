package task

import (
	"context"
	"time"

	"github.com/haierkeys/link-store-service/internal/app"
)

// LinkLoadTask 启动时加载 links.json
// 失败由 LinkService 记录日志和指标，这里不再向上返回
type LinkLoadTask struct {
	app *app.App
}

func init() {
	RegisterWithApp(func(appContainer *app.App) (Task, error) {
		if !appContainer.Config().Links.LoadOnStartup {
			appContainer.Logger().Info("links.json startup load is disabled")
			return nil, nil
		}
		return &LinkLoadTask{
			app: appContainer,
		}, nil
	})
}

func (t *LinkLoadTask) Name() string {
	return "link_load"
}

func (t *LinkLoadTask) Run(ctx context.Context) error {
	_, _ = t.app.LinkService.Load(ctx)
	return nil
}

func (t *LinkLoadTask) LoopInterval() time.Duration {
	return 0
}

func (t *LinkLoadTask) IsStartupRun() bool {
	return true
}
