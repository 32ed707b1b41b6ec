// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pluginmgr 管理执行器插件的注册和初始化
package pluginmgr

import (
	"sort"
	"sync"

	"github.com/33cn/rps/types"
	log "github.com/inconshreveable/log15"
	"github.com/spf13/cobra"
)

var (
	mgrlog      = log.New("module", "plugin.manager")
	mu          sync.RWMutex
	pluginItems = make(map[string]Plugin)
)

// Register 注册插件, 插件名重复时 panic
func Register(p Plugin) {
	if p == nil {
		panic("plugin param is nil")
	}
	packageName := p.GetName()
	if len(packageName) == 0 {
		panic("plugin package name is empty")
	}
	mu.Lock()
	defer mu.Unlock()
	if _, ok := pluginItems[packageName]; ok {
		panic("execute plugin item is existed. name = " + packageName)
	}
	pluginItems[packageName] = p
}

// InitExec 初始化所有插件的执行器, 可以用不同的配置重复调用
func InitExec(cfg *types.Config, sub *types.ConfigSubModule) {
	var subs map[string][]byte
	if sub != nil {
		subs = sub.Exec
	}
	for _, item := range items() {
		mgrlog.Debug("InitExec", "plugin", item.GetName(), "exec", item.GetExecutorName())
		item.InitExec(cfg, subs)
	}
}

// HasExec 是否存在该执行器
func HasExec(name string) bool {
	for _, item := range items() {
		if item.GetExecutorName() == name {
			return true
		}
	}
	return false
}

// AddCmd 添加所有插件的命令行
func AddCmd(rootCmd *cobra.Command) {
	for _, item := range items() {
		item.AddCmd(rootCmd)
	}
}

// 按名称排序, 保证初始化顺序确定
func items() []Plugin {
	mu.RLock()
	defer mu.RUnlock()
	list := make([]Plugin, 0, len(pluginItems))
	for _, item := range pluginItems {
		list = append(list, item)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].GetName() < list[j].GetName() })
	return list
}
