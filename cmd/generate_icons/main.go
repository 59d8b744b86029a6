package main

import (
	"launchericons/pkg/config"
	"launchericons/pkg/icon"
	"log"
	"os"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("generate_icons: ")

	cfgPath := config.ResolveIconConfigPath()
	cfg, err := config.LoadIconConfig(cfgPath)
	if err != nil {
		log.Fatalf("failed to load icon config %q: %v", cfgPath, err)
	}

	if _, err := icon.Run(cfg, os.Stdout); err != nil {
		log.Fatalf("failed to generate icons: %v", err)
	}
}
