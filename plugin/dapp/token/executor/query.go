// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	tokenty "github.com/33cn/rps/plugin/dapp/token/types"
	"github.com/33cn/rps/types"
)

func (t *token) Query_GetTokenInfo(in *types.ReqString) (types.Message, error) {
	tokendb, err := NewTokenDB(t.GetStateDB(), in.Data)
	if err != nil {
		return nil, err
	}
	return tokendb.Info(), nil
}

func (t *token) Query_BalanceOf(in *tokenty.ReqTokenBalance) (types.Message, error) {
	tokendb, err := NewTokenDB(t.GetStateDB(), in.Symbol)
	if err != nil {
		return nil, err
	}
	return &tokenty.ReplyTokenBalance{
		Symbol:  in.Symbol,
		Addr:    in.Addr,
		Balance: tokendb.BalanceOf(in.Addr),
		Frozen:  tokendb.IsFrozen(in.Addr),
	}, nil
}

func (t *token) Query_Allowance(in *tokenty.ReqAllowance) (types.Message, error) {
	tokendb, err := NewTokenDB(t.GetStateDB(), in.Symbol)
	if err != nil {
		return nil, err
	}
	return &types.Int64{Data: tokendb.Allowance(in.Owner, in.Spender)}, nil
}

// Query_GetTokens 按符号顺序列出 token
func (t *token) Query_GetTokens(in *tokenty.ReqTokens) (types.Message, error) {
	var key []byte
	if in.FromKey != "" {
		key = calcTokenListKey(in.FromKey)
	}
	values, err := t.GetLocalDB().List([]byte(tokenListPrefix), key, in.Count, in.Direction)
	if err != nil {
		return nil, err
	}
	reply := &tokenty.ReplyTokens{}
	for _, value := range values {
		var info tokenty.TokenInfo
		if err := types.Decode(value, &info); err != nil {
			return nil, err
		}
		reply.Tokens = append(reply.Tokens, &info)
	}
	return reply, nil
}
