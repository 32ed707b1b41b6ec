// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package coins 原生币执行器插件
package coins

import (
	"github.com/33cn/rps/pluginmgr"
	"github.com/33cn/rps/system/dapp/coins/commands"
	"github.com/33cn/rps/system/dapp/coins/executor"
	ty "github.com/33cn/rps/system/dapp/coins/types"
)

func init() {
	pluginmgr.Register(&pluginmgr.PluginBase{
		Name:     ty.CoinsX,
		ExecName: executor.GetName(),
		Exec:     executor.Init,
		Cmd:      commands.CoinsCmd,
	})
}
