package scenario

import (
	"fmt"
	"os"

	"AlienInvasion/internal/invasion/entity"
	"AlienInvasion/internal/invasion/service"
	"AlienInvasion/internal/shared/utils"
	"AlienInvasion/modules/kit/errx"
	"AlienInvasion/modules/kit/logx"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Scenario 是一局的开局快照：玩家状态加上带谱系的外星人。
type Scenario struct {
	// Seed 为空时由调用方决定种子。
	Seed   string      `yaml:"seed"`
	Player PlayerSpec  `yaml:"player"`
	Aliens []AlienSpec `yaml:"aliens" validate:"dive"`
}

// PlayerSpec 里 Strength 为 0 表示沿用规则里的初始力量。
type PlayerSpec struct {
	Strength int `yaml:"strength" validate:"omitempty,min=1,max=9"`
	Score    int `yaml:"score"`
	Turn     int `yaml:"turn" validate:"min=0"`
	Hits     int `yaml:"hits" validate:"min=0"`
}

// AlienSpec 顶层的是根，Children 按出生顺序排列。
type AlienSpec struct {
	X        int         `yaml:"x" validate:"min=0,max=7"`
	Y        int         `yaml:"y" validate:"min=0,max=7"`
	Strength int         `yaml:"strength" validate:"min=1,max=9"`
	Children []AlienSpec `yaml:"children" validate:"dive"`
}

// Load 从 YAML 文件读取场景并校验字段范围。格子冲突在 Build 时才能发现。
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errx.ErrScenarioInvalid.WithData("path", path).WithCause(err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, errx.ErrScenarioInvalid.WithData("path", path).WithCause(err)
	}
	return s, nil
}

func Parse(data []byte) (*Scenario, error) {
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse scenario yaml: %w", err)
	}
	if err := validate.Struct(&s); err != nil {
		return nil, fmt.Errorf("validate scenario: %w", err)
	}
	return &s, nil
}

type placement struct {
	spec   AlienSpec
	parent *entity.Alien
}

// Build 按场景摆好棋盘，返回可以直接开局的 Game。
// 外星人按先序放置，编号顺序与文件里出现的顺序一致。
func Build(s *Scenario, rng utils.Rand, rules service.Rules, l logx.Logger) (*service.Game, error) {
	if s == nil {
		return nil, errx.ErrScenarioInvalid.WithData("reason", "nil scenario")
	}
	g := service.NewGame(rng, rules, l)

	for _, root := range s.Aliens {
		stack := []placement{{spec: root}}
		for len(stack) > 0 {
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			pos := entity.Coord{X: top.spec.X, Y: top.spec.Y}
			a, err := place(g, top.parent, pos, top.spec.Strength)
			if err != nil {
				return nil, errx.ErrScenarioInvalid.WithData("coord", pos.String()).WithCause(err)
			}
			kids := top.spec.Children
			for i := len(kids) - 1; i >= 0; i-- {
				stack = append(stack, placement{spec: kids[i], parent: a})
			}
		}
	}

	strength := s.Player.Strength
	if strength == 0 {
		strength = rules.PlayerStrength
	}
	g.Player().Restore(entity.PlayerState{
		Strength:        strength,
		Score:           s.Player.Score,
		Turn:            s.Player.Turn,
		ConsecutiveHits: s.Player.Hits,
	})
	return g, nil
}

func place(g *service.Game, parent *entity.Alien, pos entity.Coord, strength int) (*entity.Alien, error) {
	if parent == nil {
		return g.AddRoot(pos, strength)
	}
	a, err := g.Board().NewAlien(pos, strength)
	if err != nil {
		return nil, err
	}
	parent.SetChildren(append(parent.Children(), a.ID()))
	return a, nil
}
