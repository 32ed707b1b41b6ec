// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package token 同质化代币执行器插件
package token

import (
	"github.com/33cn/rps/plugin/dapp/token/commands"
	"github.com/33cn/rps/plugin/dapp/token/executor"
	tokenty "github.com/33cn/rps/plugin/dapp/token/types"
	"github.com/33cn/rps/pluginmgr"
)

func init() {
	pluginmgr.Register(&pluginmgr.PluginBase{
		Name:     tokenty.TokenX,
		ExecName: executor.GetName(),
		Exec:     executor.Init,
		Cmd:      commands.TokenCmd,
	})
}
