// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package rps 石头剪刀布执行器插件
package rps

import (
	"github.com/33cn/rps/plugin/dapp/rps/commands"
	"github.com/33cn/rps/plugin/dapp/rps/executor"
	rpsty "github.com/33cn/rps/plugin/dapp/rps/types"
	"github.com/33cn/rps/pluginmgr"
)

func init() {
	pluginmgr.Register(&pluginmgr.PluginBase{
		Name:     rpsty.RpsX,
		ExecName: executor.GetName(),
		Exec:     executor.Init,
		Cmd:      commands.RpsCmd,
	})
}
