package gameconfig

type Config struct {
	Log  LogConfig  `yaml:"log" mapstructure:"log"`
	Game GameConfig `yaml:"game" mapstructure:"game"`
}

type LogConfig struct {
	FileDir    string `yaml:"file_dir" mapstructure:"file_dir"`
	MaxSize    int    `yaml:"max_size" mapstructure:"max_size" validate:"min=0"` // MB
	MaxBackups int    `yaml:"max_backups" mapstructure:"max_backups" validate:"min=0"`
	MaxAge     int    `yaml:"max_age" mapstructure:"max_age" validate:"min=0"` // days
	Compress   bool   `yaml:"compress" mapstructure:"compress"`
	Level      string `yaml:"level" mapstructure:"level" validate:"omitempty,oneof=debug info warn error dpanic panic fatal DEBUG INFO WARN ERROR"`
	Dev        bool   `yaml:"dev" mapstructure:"dev"`
	// Console 为 true 时日志同时写 stderr；游戏画面在 stdout，默认关掉避免刷屏。
	Console bool `yaml:"console" mapstructure:"console"`
}

type GameConfig struct {
	// Seed 是默认种子文本，命令行参数优先。
	Seed               string `yaml:"seed" mapstructure:"seed"`
	FirstAlienStrength int    `yaml:"first_alien_strength" mapstructure:"first_alien_strength" validate:"min=1,max=9"`
	PlayerStrength     int    `yaml:"player_strength" mapstructure:"player_strength" validate:"min=1,max=9"`
	NukeAfterTurn      int    `yaml:"nuke_after_turn" mapstructure:"nuke_after_turn" validate:"min=0"`
	BombThreshold      int    `yaml:"bomb_threshold" mapstructure:"bomb_threshold" validate:"min=1"`
	Color              bool   `yaml:"color" mapstructure:"color"`
}
