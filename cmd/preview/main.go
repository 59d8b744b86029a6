package main

import (
	"launchericons/pkg/config"
	"launchericons/pkg/ui"
	"log"
)

func main() {
	cfgPath := config.ResolveIconConfigPath()
	cfg, err := config.LoadIconConfig(cfgPath)
	if err != nil {
		log.Fatalf("failed to load icon config %q: %v", cfgPath, err)
	}

	ui.NewPreviewApp(cfg).Run()
}
