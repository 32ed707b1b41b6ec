// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pluginmgr

import (
	"github.com/33cn/rps/types"
	"github.com/spf13/cobra"
)

// PluginBase 插件的基础实现
type PluginBase struct {
	Name     string
	ExecName string
	Exec     func(name string, cfg *types.Config, sub []byte)
	Cmd      func() *cobra.Command
}

// GetName 插件名
func (p *PluginBase) GetName() string {
	return p.Name
}

// GetExecutorName 执行器名
func (p *PluginBase) GetExecutorName() string {
	return p.ExecName
}

// InitExec 用执行器对应的子配置初始化执行器, 没有子配置时传 nil
func (p *PluginBase) InitExec(cfg *types.Config, sub map[string][]byte) {
	if p.Exec == nil {
		return
	}
	subcfg, ok := sub[p.ExecName]
	if !ok {
		subcfg = nil
	}
	p.Exec(p.ExecName, cfg, subcfg)
}

// AddCmd 添加插件的命令行
func (p *PluginBase) AddCmd(rootCmd *cobra.Command) {
	if p.Cmd != nil {
		cmd := p.Cmd()
		if cmd == nil {
			return
		}
		rootCmd.AddCommand(cmd)
	}
}
