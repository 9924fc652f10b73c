package app

import (
	"log/slog"
	"os"

	fa "github.com/shandysiswandi/gofareagent/internal/fareagent"
)

func (a *App) initModules() {
	if a.config.GetBool("modules.fare-agent.enabled") {
		if err := fa.New(fa.Dependency{
			Config: a.config,
			Router: a.router,
		}); err != nil {
			slog.Error("failed to init module fare-agent", "error", err)
			os.Exit(1)
		}
	}
}
