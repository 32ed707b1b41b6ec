// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"github.com/33cn/rps/common/address"
	drivers "github.com/33cn/rps/system/dapp"
	cty "github.com/33cn/rps/system/dapp/coins/types"
	"github.com/33cn/rps/types"
)

// Exec_Transfer 转账, to 是执行器地址时转入 from 在该执行器下的子账户
func (c *Coins) Exec_Transfer(transfer *cty.CoinsTransfer, tx *types.Transaction, index int) (*types.Receipt, error) {
	if err := address.CheckAddress(transfer.To); err != nil {
		return nil, types.ErrInvalidAddress
	}
	if drivers.IsDriverAddress(transfer.To) {
		return c.GetCoinsAccount().TransferToExec(tx.From, transfer.To, transfer.Amount)
	}
	return c.GetCoinsAccount().Transfer(tx.From, transfer.To, transfer.Amount)
}

// Exec_Withdraw 从执行器子账户取回到主账户
func (c *Coins) Exec_Withdraw(withdraw *cty.CoinsWithdraw, tx *types.Transaction, index int) (*types.Receipt, error) {
	execaddr := drivers.ExecAddress(withdraw.ExecName)
	if !drivers.IsDriverAddress(execaddr) {
		return nil, types.ErrExecNameNotAllow
	}
	return c.GetCoinsAccount().TransferWithdraw(tx.From, execaddr, withdraw.Amount)
}

// Exec_Genesis 创世发行. 没有配置创世地址时只能在0高度执行
func (c *Coins) Exec_Genesis(genesis *cty.CoinsGenesis, tx *types.Transaction, index int) (*types.Receipt, error) {
	if genesisAddr == "" {
		if c.GetHeight() != 0 {
			return nil, types.ErrNoPermission
		}
	} else if tx.From != genesisAddr {
		return nil, types.ErrNoPermission
	}
	if err := address.CheckAddress(genesis.To); err != nil {
		return nil, types.ErrInvalidAddress
	}
	clog.Info("genesis", "to", genesis.To, "amount", genesis.Amount)
	return c.GetCoinsAccount().GenesisInit(genesis.To, genesis.Amount)
}
