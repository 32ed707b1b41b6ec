// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package log 按配置设置 log15 的控制台输出以及滚动文件输出
package log

import (
	"os"
	"runtime"

	"github.com/33cn/rps/types"
	log15 "github.com/inconshreveable/log15"
	"gopkg.in/natefinch/lumberjack.v2"
)

// 级别配置错误或者为空时使用 error 级别, 防止打印太多日志
const defaultLevel = log15.LvlError

// SetLogLevel 只输出到控制台
func SetLogLevel(level string) {
	log15.Root().SetHandler(consoleHandler(parseLevel(level)))
}

// SetFileLog 按配置同时输出到控制台和文件, 没有配置文件名时只输出到控制台
func SetFileLog(cfg *types.Log) {
	if cfg == nil {
		cfg = &types.Log{LogFile: "logs/rps.log"}
	}
	console := consoleHandler(parseLevel(cfg.LogConsoleLevel))
	if cfg.LogFile == "" {
		log15.Root().SetHandler(console)
		return
	}
	log15.Root().SetHandler(log15.MultiHandler(console, fileHandler(cfg)))
}

// New 从根 logger 派生
func New(ctx ...interface{}) log15.Logger {
	return log15.Root().New(ctx...)
}

func parseLevel(level string) log15.Lvl {
	lvl, err := log15.LvlFromString(level)
	if err != nil {
		return defaultLevel
	}
	return lvl
}

// 控制台日志写 stderr, stdout 留给命令行的 json 输出
func consoleHandler(lvl log15.Lvl) log15.Handler {
	format := log15.TerminalFormat()
	if runtime.GOOS == "windows" {
		format = log15.LogfmtFormat()
	}
	return log15.LvlFilterHandler(lvl, log15.StreamHandler(os.Stderr, format))
}

func fileHandler(cfg *types.Log) log15.Handler {
	w := &lumberjack.Logger{
		Filename:   cfg.LogFile,
		MaxSize:    int(cfg.MaxFileSize),
		MaxBackups: int(cfg.MaxBackups),
		MaxAge:     int(cfg.MaxAge),
		LocalTime:  cfg.LocalTime,
		Compress:   cfg.Compress,
	}
	h := log15.StreamHandler(w, log15.LogfmtFormat())
	if cfg.CallerFunction {
		h = log15.CallerFuncHandler(h)
	}
	if cfg.CallerFile {
		h = log15.CallerFileHandler(h)
	}
	return log15.LvlFilterHandler(parseLevel(cfg.Loglevel), h)
}
