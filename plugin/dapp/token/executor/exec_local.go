// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	tokenty "github.com/33cn/rps/plugin/dapp/token/types"
	"github.com/33cn/rps/types"
)

const tokenListPrefix = "LODB-token-create:"

func calcTokenListKey(symbol string) []byte {
	return []byte(tokenListPrefix + symbol)
}

// ExecLocal_Create 保存 token 列表索引
func (t *token) ExecLocal_Create(payload *tokenty.TokenCreate, tx *types.Transaction, receiptData *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	if !cfg.SaveTokenList {
		return nil, nil
	}
	tokendb, err := NewTokenDB(t.GetStateDB(), payload.Symbol)
	if err != nil {
		return nil, err
	}
	kv := &types.KeyValue{Key: calcTokenListKey(payload.Symbol), Value: types.Encode(tokendb.Info())}
	return &types.LocalDBSet{KV: []*types.KeyValue{kv}}, nil
}
