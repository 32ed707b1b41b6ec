// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

/*
coins 是一个货币的exec。内置货币的执行器。

主要提供三种操作：
Genesis  -> 创世发行, 只有配置的创世地址可以执行
Transfer -> 转移资产, 目标是执行器地址时转入执行器子账户
Withdraw -> 从执行器子账户取回资产
*/

import (
	drivers "github.com/33cn/rps/system/dapp"
	cty "github.com/33cn/rps/system/dapp/coins/types"
	"github.com/33cn/rps/types"
	log "github.com/inconshreveable/log15"
)

var clog = log.New("module", "execs.coins")
var driverName = cty.CoinsX

var genesisAddr string

// Init 注册 coins 执行器
func Init(name string, cfg *types.Config, sub []byte) {
	if name != driverName {
		panic("system dapp can't be rename")
	}
	genesisAddr = ""
	if cfg != nil && cfg.Exec != nil {
		genesisAddr = cfg.Exec.GenesisAddr
	}
	drivers.Register(driverName, newCoins, 0)
}

// GetName 执行器名称
func GetName() string {
	return newCoins().GetName()
}

// Coins 原生币执行器
type Coins struct {
	drivers.DriverBase
}

func newCoins() drivers.Driver {
	c := &Coins{}
	c.SetChild(c)
	c.SetExecutorType(types.LoadExecutorType(driverName))
	return c
}

// GetDriverName 驱动名称
func (c *Coins) GetDriverName() string {
	return driverName
}

// CheckTx coins 交易不接受附带金额, 金额写在 action 中
func (c *Coins) CheckTx(tx *types.Transaction, index int) error {
	if tx.Amount != 0 {
		return types.ErrAmount
	}
	return nil
}
