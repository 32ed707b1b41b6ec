// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

/*
token执行器, 一个简单的同质化代币

主要提供操作有以下几种：
1）创建token, 创建者持有全部发行量；
2）转账, 授权, 授权转账；
3）创建者可以冻结账户, 冻结的账户不能转出也不能收款
*/

import (
	tokenty "github.com/33cn/rps/plugin/dapp/token/types"
	drivers "github.com/33cn/rps/system/dapp"
	"github.com/33cn/rps/types"
	log "github.com/inconshreveable/log15"
)

var tokenlog = log.New("module", "execs.token")

var driverName = tokenty.TokenX

type subConfig struct {
	// SaveTokenList 是否保存 token 列表索引
	SaveTokenList bool `json:"saveTokenList"`
}

var cfg = subConfig{SaveTokenList: true}

// Init 注册 token 执行器
func Init(name string, c *types.Config, sub []byte) {
	cfg = subConfig{SaveTokenList: true}
	if sub != nil {
		types.MustDecode(sub, &cfg)
	}
	drivers.Register(GetName(), newToken, 0)
}

// GetName 执行器名称
func GetName() string {
	return newToken().GetName()
}

type token struct {
	drivers.DriverBase
}

func newToken() drivers.Driver {
	t := &token{}
	t.SetChild(t)
	t.SetExecutorType(types.LoadExecutorType(driverName))
	return t
}

func (t *token) GetDriverName() string {
	return driverName
}

// CheckTx token 交易不接受附带的原生币
func (t *token) CheckTx(tx *types.Transaction, index int) error {
	if tx.Amount != 0 {
		return types.ErrAmount
	}
	return nil
}
