// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"testing"

	"github.com/33cn/rps/common/address"
	dbm "github.com/33cn/rps/common/db"
	execenv "github.com/33cn/rps/executor"
	cty "github.com/33cn/rps/system/dapp/coins/types"
	"github.com/33cn/rps/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	addr1 = address.LabelAddress("addr1")
	addr2 = address.LabelAddress("addr2")
)

func newExecutor(t *testing.T, genesis string) *execenv.Executor {
	cfg, _ := types.MustInitCfgString(types.DefaultConfig)
	cfg.Exec.GenesisAddr = genesis
	Init(cty.CoinsX, cfg, nil)
	state, err := dbm.NewGoMemDB("state", "", 0)
	require.NoError(t, err)
	local, err := dbm.NewGoMemDB("local", "", 0)
	require.NoError(t, err)
	exec, err := execenv.New(cfg, state, local)
	require.NoError(t, err)
	return exec
}

func execTx(t *testing.T, exec *execenv.Executor, from string, action *cty.CoinsAction, nonce int64) error {
	tx := types.CreateTx(cty.CoinsX, from, action, 0, nonce)
	results, err := exec.ExecBlock(exec.NextBlock(0, tx))
	require.NoError(t, err)
	return results[0].Err
}

func getBalance(t *testing.T, exec *execenv.Executor, addr, execer string) *types.ReplyBalance {
	reply, err := exec.Query(cty.CoinsX, "GetBalance", &types.ReqBalance{Addr: addr, Execer: execer})
	require.NoError(t, err)
	return reply.(*types.ReplyBalance)
}

func TestGenesis(t *testing.T) {
	exec := newExecutor(t, "")
	require.NoError(t, execTx(t, exec, addr1, cty.NewGenesis(addr1, 10*types.Coin), 1))
	assert.Equal(t, 10*types.Coin, getBalance(t, exec, addr1, "").Main.Balance)

	// 没有配置创世地址时只能在0高度发行
	err := execTx(t, exec, addr1, cty.NewGenesis(addr2, types.Coin), 2)
	assert.Equal(t, types.ErrNoPermission, err)
	assert.Equal(t, int64(0), getBalance(t, exec, addr2, "").Main.Balance)
}

func TestGenesisAddr(t *testing.T) {
	exec := newExecutor(t, addr1)
	err := execTx(t, exec, addr2, cty.NewGenesis(addr2, types.Coin), 1)
	assert.Equal(t, types.ErrNoPermission, err)
	require.NoError(t, execTx(t, exec, addr1, cty.NewGenesis(addr2, types.Coin), 2))
	require.NoError(t, execTx(t, exec, addr1, cty.NewGenesis(addr2, types.Coin), 3))
	assert.Equal(t, 2*types.Coin, getBalance(t, exec, addr2, "").Main.Balance)
}

func TestTransferAndWithdraw(t *testing.T) {
	exec := newExecutor(t, "")
	require.NoError(t, execTx(t, exec, addr1, cty.NewGenesis(addr1, 10*types.Coin), 1))

	require.NoError(t, execTx(t, exec, addr1, cty.NewTransfer(addr2, 3*types.Coin, "hi"), 2))
	assert.Equal(t, 7*types.Coin, getBalance(t, exec, addr1, "").Main.Balance)
	assert.Equal(t, 3*types.Coin, getBalance(t, exec, addr2, "").Main.Balance)

	err := execTx(t, exec, addr2, cty.NewTransfer(addr1, 4*types.Coin, ""), 3)
	assert.Equal(t, types.ErrNoBalance, err)
	err = execTx(t, exec, addr2, cty.NewTransfer("notaddr", types.Coin, ""), 4)
	assert.Equal(t, types.ErrInvalidAddress, err)

	// 转到执行器地址时进入执行器子账户
	execaddr := address.ExecAddress(cty.CoinsX)
	require.NoError(t, execTx(t, exec, addr1, cty.NewTransfer(execaddr, 2*types.Coin, ""), 5))
	balance := getBalance(t, exec, addr1, cty.CoinsX)
	assert.Equal(t, 5*types.Coin, balance.Main.Balance)
	assert.Equal(t, 2*types.Coin, balance.Exec.Balance)

	err = execTx(t, exec, addr1, cty.NewWithdraw("none", types.Coin), 6)
	assert.Equal(t, types.ErrExecNameNotAllow, err)
	require.NoError(t, execTx(t, exec, addr1, cty.NewWithdraw(cty.CoinsX, types.Coin), 7))
	balance = getBalance(t, exec, addr1, cty.CoinsX)
	assert.Equal(t, 6*types.Coin, balance.Main.Balance)
	assert.Equal(t, types.Coin, balance.Exec.Balance)
}

func TestAddrReciver(t *testing.T) {
	exec := newExecutor(t, "")
	require.NoError(t, execTx(t, exec, addr1, cty.NewGenesis(addr1, 10*types.Coin), 1))
	require.NoError(t, execTx(t, exec, addr1, cty.NewTransfer(addr2, types.Coin, ""), 2))
	require.NoError(t, execTx(t, exec, addr1, cty.NewTransfer(addr2, types.Coin, ""), 3))
	// 失败的交易不计入
	_ = execTx(t, exec, addr2, cty.NewTransfer(addr1, 10*types.Coin, ""), 4)

	reply, err := exec.Query(cty.CoinsX, "GetAddrReciver", &types.ReqString{Data: addr2})
	require.NoError(t, err)
	assert.Equal(t, 2*types.Coin, reply.(*types.Int64).Data)
	reply, err = exec.Query(cty.CoinsX, "GetAddrReciver", &types.ReqString{Data: addr1})
	require.NoError(t, err)
	assert.Equal(t, 10*types.Coin, reply.(*types.Int64).Data)
}
