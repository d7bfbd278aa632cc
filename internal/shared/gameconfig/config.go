package gameconfig

import (
	"errors"

	"AlienInvasion/internal/shared/config"
	"AlienInvasion/modules/kit/errx"

	"github.com/fsnotify/fsnotify"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Default 返回不读文件时的配置：玩家初始力量 1，首个外星人力量 5，第 5 回合之后才允许核平。
func Default() Config {
	return Config{
		Log: LogConfig{
			FileDir:    "logs/invasion.log",
			MaxSize:    10,
			MaxBackups: 3,
			MaxAge:     7,
			Level:      "info",
		},
		Game: GameConfig{
			FirstAlienStrength: 5,
			PlayerStrength:     1,
			NukeAfterTurn:      5,
			BombThreshold:      5,
			Color:              true,
		},
	}
}

func defaults() map[string]any {
	d := Default()
	return map[string]any{
		"log.file_dir":              d.Log.FileDir,
		"log.max_size":              d.Log.MaxSize,
		"log.max_backups":           d.Log.MaxBackups,
		"log.max_age":               d.Log.MaxAge,
		"log.level":                 d.Log.Level,
		"game.first_alien_strength": d.Game.FirstAlienStrength,
		"game.player_strength":      d.Game.PlayerStrength,
		"game.nuke_after_turn":      d.Game.NukeAfterTurn,
		"game.bomb_threshold":       d.Game.BombThreshold,
		"game.color":                d.Game.Color,
	}
}

// Load 读取配置并校验。
// cfgName 为空且找不到 configs/conf.yml 时使用 Default()。
// onLogChange 非空时监听文件，只把新的日志配置推给回调；游戏规则在开局后不再变化。
func Load(cfgName string, onLogChange func(LogConfig)) (Config, string, error) {
	var opts config.Options
	opts.Defaults = defaults()
	if onLogChange != nil {
		opts.OnChange = func(_ fsnotify.Event, v *viper.Viper) {
			var next Config
			if err := config.Decode(v, &next); err != nil {
				return
			}
			if err := Validate(next); err != nil {
				return
			}
			onLogChange(next.Log)
		}
	}

	var c Config
	path, err := config.Load(cfgName, &c, opts)
	if err != nil {
		if cfgName == "" && errors.Is(err, config.ErrNotFound) {
			return Default(), "", nil
		}
		return Config{}, path, errx.ErrConfigInvalid.WithData("path", path).WithCause(err)
	}
	if err := Validate(c); err != nil {
		return Config{}, path, errx.ErrConfigInvalid.WithData("path", path).WithCause(err)
	}
	return c, path, nil
}

func Validate(c Config) error {
	return validate.Struct(c)
}
