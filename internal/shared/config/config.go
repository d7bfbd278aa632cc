package config

import (
	"errors"
	"os"
	"path/filepath"
)

// DefaultRelPath 是不传路径时向上查找的配置文件。
const DefaultRelPath = "configs/conf.yml"

// ErrNotFound 表示没有传路径且向上找不到 configs/conf.yml。
var ErrNotFound = errors.New("config file not found")

// Load 解析配置到 out：
// 1) 传入 cfgName（相对/绝对路径）则优先使用，文件不存在直接报错；
// 2) 否则从当前目录开始向上查找 `configs/conf.yml`，找不到返回 ErrNotFound。
func Load(cfgName string, out any, opts Options) (string, error) {
	path, err := Resolve(cfgName)
	if err != nil {
		return "", err
	}
	if err := load(path, out, opts); err != nil {
		return path, err
	}
	return path, nil
}

// Resolve 只做路径查找，不读文件。
func Resolve(cfgName string) (string, error) {
	curDir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	if cfgName != "" {
		if !filepath.IsAbs(cfgName) {
			cfgName = filepath.Join(curDir, cfgName)
		}
		return cfgName, nil
	}
	return findConfigUpward(curDir)
}

func findConfigUpward(startDir string) (string, error) {
	dir := startDir
	for {
		candidate := filepath.Join(dir, DefaultRelPath)
		if fileExist(candidate) {
			return candidate, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", ErrNotFound
		}
		dir = parent
	}
}
