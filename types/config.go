// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"encoding/json"
	"os"

	tml "github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// Config 配置文件
type Config struct {
	Title string `toml:"title"`
	Log   *Log   `toml:"log"`
	Store *Store `toml:"store"`
	Exec  *Exec  `toml:"exec"`
}

// Log 日志配置
type Log struct {
	// 日志级别，支持debug(dbug)/info/warn/error(eror)/crit
	Loglevel        string `toml:"loglevel"`
	LogConsoleLevel string `toml:"logConsoleLevel"`
	// 日志文件名，可带目录，所有生成的日志文件都放到此目录下
	LogFile string `toml:"logFile"`
	// 单个日志文件的最大值（单位：兆）
	MaxFileSize uint32 `toml:"maxFileSize"`
	// 最多保存的历史日志文件个数
	MaxBackups uint32 `toml:"maxBackups"`
	// 最多保存的历史日志消息（单位：天）
	MaxAge uint32 `toml:"maxAge"`
	// 日志文件名是否使用本地时间（否则使用UTC时间）
	LocalTime bool `toml:"localTime"`
	// 历史日志文件是否压缩（压缩格式为gz）
	Compress bool `toml:"compress"`
	// 是否打印调用源文件和行号
	CallerFile bool `toml:"callerFile"`
	// 是否打印调用方法
	CallerFunction bool `toml:"callerFunction"`
}

// Store 状态数据库配置
type Store struct {
	// 数据库类型 leveldb, badger, memdb
	Driver    string `toml:"driver"`
	DbPath    string `toml:"dbPath"`
	DbCache   int32  `toml:"dbCache"`
	LocalPath string `toml:"localdbPath"`
}

// Exec 执行器配置
type Exec struct {
	// 创世地址, 只有它可以执行 coins genesis
	GenesisAddr string `toml:"genesisAddr"`
	// 是否开启执行统计
	EnableStat bool `toml:"enableStat"`
}

// ConfigSubModule 子模块的配置, 以json格式传给执行器
type ConfigSubModule struct {
	Exec map[string][]byte
}

type subModule struct {
	Exec map[string]interface{}
}

// DefaultConfig 默认配置, 内存数据库
const DefaultConfig = `
Title="local"

[log]
loglevel = "info"
logConsoleLevel = "error"
logFile = ""

[store]
driver = "memdb"
dbPath = "datadir"
dbCache = 16

[exec]
genesisAddr = ""
enableStat = false

[exec.sub.rps]
roundDuration = 600
betAmount = 100000000
timeoutPolicy = "forfeit"
minBetAmount = 1
maxBetAmount = 10000000000000
`

// InitCfg 初始化配置
func InitCfg(path string) (*Config, *ConfigSubModule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, errors.Wrap(err, "InitCfg")
	}
	return InitCfgString(string(data))
}

// InitCfgString 从字符串中解析配置
func InitCfgString(cfgstring string) (*Config, *ConfigSubModule, error) {
	var cfg Config
	if _, err := tml.Decode(cfgstring, &cfg); err != nil {
		return nil, nil, errors.Wrap(err, "decode config")
	}
	fillDefaultConfig(&cfg)
	var sub subModule
	if _, err := tml.Decode(cfgstring, &sub); err != nil {
		return nil, nil, errors.Wrap(err, "decode sub config")
	}
	return &cfg, &ConfigSubModule{Exec: parseItem(sub.Exec)}, nil
}

// MustInitCfgString 配置错误直接panic, 用于测试以及默认配置
func MustInitCfgString(cfgstring string) (*Config, *ConfigSubModule) {
	cfg, sub, err := InitCfgString(cfgstring)
	if err != nil {
		panic(err)
	}
	return cfg, sub
}

func fillDefaultConfig(cfg *Config) {
	if cfg.Log == nil {
		cfg.Log = &Log{}
	}
	if cfg.Store == nil {
		cfg.Store = &Store{}
	}
	if cfg.Store.Driver == "" {
		cfg.Store.Driver = "memdb"
	}
	if cfg.Store.DbPath == "" {
		cfg.Store.DbPath = "datadir"
	}
	if cfg.Exec == nil {
		cfg.Exec = &Exec{}
	}
}

func parseItem(data map[string]interface{}) map[string][]byte {
	subconfig := make(map[string][]byte)
	if len(data) == 0 {
		return subconfig
	}
	for key := range data {
		if key == "sub" {
			subcfg, ok := data[key].(map[string]interface{})
			if !ok {
				continue
			}
			for k := range subcfg {
				subconfig[k], _ = json.Marshal(subcfg[k])
			}
		}
	}
	return subconfig
}

//ModifySubConfig json data modify
func ModifySubConfig(sub []byte, key string, value interface{}) ([]byte, error) {
	var data map[string]interface{}
	if len(sub) > 0 {
		err := json.Unmarshal(sub, &data)
		if err != nil {
			return nil, err
		}
	}
	if data == nil {
		data = make(map[string]interface{})
	}
	data[key] = value
	return json.Marshal(data)
}
