package config

import (
	"fmt"
	"os"

	"github.com/fsnotify/fsnotify"
	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
)

// Options 控制一次加载。
type Options struct {
	// Defaults 是 viper key -> 默认值，文件里没写的字段用它兜底。
	Defaults map[string]any
	// OnChange 非空时开启文件监听，文件变更并重新解析成功后回调。
	// 回调在 viper 的监听 goroutine 里执行。
	OnChange func(e fsnotify.Event, v *viper.Viper)
}

func load(configPath string, out any, opts Options) error {
	if !fileExist(configPath) {
		return fmt.Errorf("config file not exist, configPath=%v", configPath)
	}

	v := viper.New()
	v.SetConfigFile(configPath)
	for k, val := range opts.Defaults {
		v.SetDefault(k, val)
	}
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("read config %s: %w", configPath, err)
	}
	if err := Decode(v, out); err != nil {
		return fmt.Errorf("unmarshal config %s: %w", configPath, err)
	}

	if opts.OnChange != nil {
		v.OnConfigChange(func(e fsnotify.Event) {
			opts.OnChange(e, v)
		})
		v.WatchConfig()
	}
	return nil
}

// Decode 用统一的 decode hook 把 viper 的当前值解到 out。
func Decode(v *viper.Viper, out any) error {
	return v.Unmarshal(out, viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
		mapstructure.TextUnmarshallerHookFunc(),
	)))
}

func fileExist(fileName string) bool {
	_, err := os.Stat(fileName)
	return err == nil
}
