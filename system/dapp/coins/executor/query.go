// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"github.com/33cn/rps/account"
	"github.com/33cn/rps/common/address"
	drivers "github.com/33cn/rps/system/dapp"
	"github.com/33cn/rps/types"
)

// Query_GetBalance 查询主账户余额, 指定 Execer 时同时返回该执行器下的子账户
func (c *Coins) Query_GetBalance(in *types.ReqBalance) (types.Message, error) {
	if err := address.CheckAddress(in.Addr); err != nil {
		return nil, types.ErrInvalidAddress
	}
	acc := account.NewCoinsAccount(c.GetStateDB())
	reply := &types.ReplyBalance{Main: acc.LoadAccount(in.Addr)}
	if in.Execer != "" {
		reply.Exec = acc.LoadExecAccount(in.Addr, drivers.ExecAddress(in.Execer))
	}
	return reply, nil
}

// Query_GetAddrReciver 地址累计收到的金额
func (c *Coins) Query_GetAddrReciver(in *types.ReqString) (types.Message, error) {
	recv, err := getAddrReciver(c.GetLocalDB(), in.Data)
	if err != nil {
		return nil, err
	}
	return &types.Int64{Data: recv}, nil
}
