package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/FortiShield/tradescope/internal/app"
	"github.com/FortiShield/tradescope/internal/exchange"
	"github.com/FortiShield/tradescope/internal/infra"
)

func main() {
	configPath := flag.String("config", infra.ResolveConfigPath(), "path to config.yaml")
	exchangeName := flag.String("exchange", "", "override exchange.name from the config")
	listExchanges := flag.Bool("list-exchanges", false, "print exchanges with registered adjustments and exit")
	flag.Parse()

	if *listExchanges {
		for _, name := range exchange.Default().Variants() {
			fmt.Println(name)
		}
		return
	}

	cfg, err := infra.LoadConfig(*configPath)
	if err != nil {
		slog.Error("Failed to load config", slog.String("path", *configPath), slog.Any("error", err))
		os.Exit(1)
	}
	if *exchangeName != "" {
		cfg.Exchange.Name = *exchangeName
	}

	bootstrap := app.NewBootstrap()
	if err := bootstrap.InitializeWith(cfg); err != nil {
		slog.Error("Bootstrapping failed", slog.Any("error", err))
		os.Exit(1)
	}
	defer bootstrap.Close()

	infra.PrintBanner(os.Stdout, bootstrap.Banner())

	caps := bootstrap.Exchange.Capabilities()
	for _, key := range caps.Keys() {
		v, _ := caps.Get(key)
		fmt.Printf("  %-28s %s\n", key, v)
	}
}
