package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"AlienInvasion/internal/invasion/app"
	"AlienInvasion/internal/invasion/infra/scenario"
	"AlienInvasion/internal/invasion/interfaces/console"
	"AlienInvasion/internal/invasion/service"
	"AlienInvasion/internal/shared/gameconfig"
	"AlienInvasion/internal/shared/logs"
	"AlienInvasion/internal/shared/utils"
	"AlienInvasion/modules/kit/logx"

	"go.uber.org/zap"
)

const appName = "invasion"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdin, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// run 用法：invasion [-config path] [-scenario path] [seed]
// 种子优先级：命令行参数 > 场景文件 > 配置里的 game.seed。
func run(ctx context.Context, args []string, stdin io.Reader, stdout io.Writer) error {
	fs := flag.NewFlagSet(appName, flag.ContinueOnError)
	cfgName := fs.String("config", "", "配置文件路径，为空时向上查找 configs/conf.yml")
	scenarioPath := fs.String("scenario", "", "开局场景 YAML")
	if err := fs.Parse(args); err != nil {
		return err
	}

	conf, path, err := gameconfig.Load(*cfgName, func(lc gameconfig.LogConfig) {
		logs.SetLevel(lc.Level)
		logs.Info("log level changed", zap.String("level", lc.Level))
	})
	if err != nil {
		return err
	}
	if err := logs.Init(appName, conf.Log); err != nil {
		return err
	}
	defer func() { _ = logs.Sync() }()
	logs.Info("conf", zap.String("path", path), zap.Any("game", conf.Game))

	var sc *scenario.Scenario
	if *scenarioPath != "" {
		if sc, err = scenario.Load(*scenarioPath); err != nil {
			return err
		}
	}

	seedText := conf.Game.Seed
	if sc != nil && sc.Seed != "" {
		seedText = sc.Seed
	}
	if fs.NArg() > 0 {
		seedText = fs.Arg(0)
	}
	seed := utils.SeedFromText(seedText)
	rng := utils.NewPRNG(seed)
	l := logx.NewZapLogger(logs.Logger())
	rules := service.RulesFrom(conf.Game)

	var game *service.Game
	if sc != nil {
		if game, err = scenario.Build(sc, rng, rules, l); err != nil {
			return err
		}
	} else {
		game = service.NewGame(rng, rules, l)
	}

	session := app.NewSession(game, console.NewRenderer(stdout, conf.Game.Color), console.NewPrompter(stdin, stdout), l)
	logs.Info("game starting",
		zap.String("session_id", session.ID()),
		zap.Int64("seed", seed),
		zap.String("scenario", *scenarioPath))

	outcome, err := session.Run(ctx)
	if err != nil {
		if ctx.Err() != nil {
			logs.Info("收到退出信号，游戏结束")
			return nil
		}
		return err
	}
	logs.Info("game over", zap.Stringer("outcome", outcome), zap.Int("score", game.Player().Score()))
	return nil
}
