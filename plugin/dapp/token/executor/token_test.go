// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"errors"
	"testing"

	"github.com/33cn/rps/common/address"
	dbm "github.com/33cn/rps/common/db"
	execenv "github.com/33cn/rps/executor"
	tokenty "github.com/33cn/rps/plugin/dapp/token/types"
	"github.com/33cn/rps/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	owner   = address.LabelAddress("owner")
	holder  = address.LabelAddress("holder")
	spender = address.LabelAddress("spender")
)

type tokenEnv struct {
	t     *testing.T
	exec  *execenv.Executor
	nonce int64
}

func newTokenEnv(t *testing.T) *tokenEnv {
	cfg, _ := types.MustInitCfgString(types.DefaultConfig)
	Init(tokenty.TokenX, cfg, nil)
	state, err := dbm.NewGoMemDB("state", "", 0)
	require.NoError(t, err)
	local, err := dbm.NewGoMemDB("local", "", 0)
	require.NoError(t, err)
	exec, err := execenv.New(cfg, state, local)
	require.NoError(t, err)
	return &tokenEnv{t: t, exec: exec}
}

func (env *tokenEnv) send(from string, action *tokenty.TokenAction) error {
	env.nonce++
	tx := types.CreateTx(tokenty.TokenX, from, action, 0, env.nonce)
	results, err := env.exec.ExecBlock(env.exec.NextBlock(1539918074, tx))
	require.NoError(env.t, err)
	return results[0].Err
}

func (env *tokenEnv) balance(symbol, addr string) int64 {
	reply, err := env.exec.Query(tokenty.TokenX, "BalanceOf", &tokenty.ReqTokenBalance{Symbol: symbol, Addr: addr})
	require.NoError(env.t, err)
	return reply.(*tokenty.ReplyTokenBalance).Balance
}

func (env *tokenEnv) allowance(symbol, from, to string) int64 {
	reply, err := env.exec.Query(tokenty.TokenX, "Allowance", &tokenty.ReqAllowance{Symbol: symbol, Owner: from, Spender: to})
	require.NoError(env.t, err)
	return reply.(*types.Int64).Data
}

func TestTokenCreate(t *testing.T) {
	env := newTokenEnv(t)
	require.NoError(t, env.send(owner, tokenty.NewCreate("MTR", "MTRToken", 100)))
	assert.Equal(t, int64(100), env.balance("MTR", owner))

	err := env.send(holder, tokenty.NewCreate("MTR", "other", 1))
	assert.Equal(t, tokenty.ErrTokenExist, err)
	err = env.send(owner, tokenty.NewCreate("mtr", "lower", 1))
	assert.True(t, errors.Is(err, types.ErrValidation))
	assert.Equal(t, tokenty.ErrTokenSymbol, err)

	reply, err := env.exec.Query(tokenty.TokenX, "GetTokenInfo", &types.ReqString{Data: "MTR"})
	require.NoError(t, err)
	info := reply.(*tokenty.TokenInfo)
	assert.Equal(t, owner, info.Owner)
	assert.Equal(t, int64(100), info.Total)

	_, err = env.exec.Query(tokenty.TokenX, "GetTokenInfo", &types.ReqString{Data: "NONE"})
	assert.Equal(t, tokenty.ErrTokenNotExist, err)
}

func TestTokenTransfer(t *testing.T) {
	env := newTokenEnv(t)
	require.NoError(t, env.send(owner, tokenty.NewCreate("MTR", "MTRToken", 100)))
	require.NoError(t, env.send(owner, tokenty.NewTransfer("MTR", holder, 30)))
	assert.Equal(t, int64(70), env.balance("MTR", owner))
	assert.Equal(t, int64(30), env.balance("MTR", holder))

	err := env.send(holder, tokenty.NewTransfer("MTR", owner, 31))
	assert.Equal(t, types.ErrNoBalance, err)
	err = env.send(holder, tokenty.NewTransfer("XYZ", owner, 1))
	assert.Equal(t, tokenty.ErrTokenNotExist, err)
	assert.Equal(t, int64(30), env.balance("MTR", holder))
}

func TestTokenApprove(t *testing.T) {
	env := newTokenEnv(t)
	require.NoError(t, env.send(owner, tokenty.NewCreate("MTR", "MTRToken", 100)))
	require.NoError(t, env.send(owner, tokenty.NewApprove("MTR", spender, 10)))
	assert.Equal(t, int64(10), env.allowance("MTR", owner, spender))

	err := env.send(spender, tokenty.NewTransferFrom("MTR", owner, holder, 11))
	assert.Equal(t, tokenty.ErrInsufficientAllowance, err)
	require.NoError(t, env.send(spender, tokenty.NewTransferFrom("MTR", owner, holder, 4)))
	assert.Equal(t, int64(6), env.allowance("MTR", owner, spender))
	assert.Equal(t, int64(4), env.balance("MTR", holder))
	assert.Equal(t, int64(96), env.balance("MTR", owner))

	// 重新授权覆盖原来的额度, 0 表示取消授权
	require.NoError(t, env.send(owner, tokenty.NewApprove("MTR", spender, 0)))
	assert.Equal(t, int64(0), env.allowance("MTR", owner, spender))
	err = env.send(owner, tokenty.NewApprove("MTR", owner, 1))
	assert.Equal(t, types.ErrSendSameToRecv, err)
}

func TestTokenFreeze(t *testing.T) {
	env := newTokenEnv(t)
	require.NoError(t, env.send(owner, tokenty.NewCreate("MTR", "MTRToken", 100)))
	require.NoError(t, env.send(owner, tokenty.NewTransfer("MTR", holder, 30)))

	err := env.send(holder, tokenty.NewFreeze("MTR", spender, true))
	assert.Equal(t, tokenty.ErrTokenOwner, err)

	require.NoError(t, env.send(owner, tokenty.NewFreeze("MTR", holder, true)))
	err = env.send(holder, tokenty.NewTransfer("MTR", owner, 1))
	assert.Equal(t, tokenty.ErrTokenFrozen, err)
	assert.True(t, errors.Is(err, types.ErrFunds))
	err = env.send(owner, tokenty.NewTransfer("MTR", holder, 1))
	assert.Equal(t, tokenty.ErrTokenFrozen, err)

	reply, err := env.exec.Query(tokenty.TokenX, "BalanceOf", &tokenty.ReqTokenBalance{Symbol: "MTR", Addr: holder})
	require.NoError(t, err)
	assert.True(t, reply.(*tokenty.ReplyTokenBalance).Frozen)

	require.NoError(t, env.send(owner, tokenty.NewFreeze("MTR", holder, false)))
	require.NoError(t, env.send(holder, tokenty.NewTransfer("MTR", owner, 1)))
	assert.Equal(t, int64(29), env.balance("MTR", holder))
}

func TestTokenRejectsAttachedValue(t *testing.T) {
	env := newTokenEnv(t)
	env.nonce++
	tx := types.CreateTx(tokenty.TokenX, owner, tokenty.NewCreate("MTR", "MTRToken", 100), 1, env.nonce)
	results, err := env.exec.ExecBlock(env.exec.NextBlock(1539918074, tx))
	require.NoError(t, err)
	assert.Equal(t, types.ErrAmount, results[0].Err)
	assert.Equal(t, int32(types.ExecErr), results[0].Receipt.Ty)
}

func TestGetTokens(t *testing.T) {
	env := newTokenEnv(t)
	for _, symbol := range []string{"AAA", "BBB", "CCC"} {
		require.NoError(t, env.send(owner, tokenty.NewCreate(symbol, symbol, 1)))
	}
	reply, err := env.exec.Query(tokenty.TokenX, "GetTokens", &tokenty.ReqTokens{Count: 10, Direction: 1})
	require.NoError(t, err)
	tokens := reply.(*tokenty.ReplyTokens).Tokens
	require.Len(t, tokens, 3)
	assert.Equal(t, "AAA", tokens[0].Symbol)
	assert.Equal(t, "CCC", tokens[2].Symbol)

	reply, err = env.exec.Query(tokenty.TokenX, "GetTokens", &tokenty.ReqTokens{Count: 10, Direction: 1, FromKey: "AAA"})
	require.NoError(t, err)
	tokens = reply.(*tokenty.ReplyTokens).Tokens
	require.Len(t, tokens, 2)
	assert.Equal(t, "BBB", tokens[0].Symbol)
}
