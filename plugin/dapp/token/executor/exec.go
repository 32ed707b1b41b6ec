// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"github.com/33cn/rps/common/address"
	tokenty "github.com/33cn/rps/plugin/dapp/token/types"
	"github.com/33cn/rps/types"
)

func (t *token) Exec_Create(payload *tokenty.TokenCreate, tx *types.Transaction, index int) (*types.Receipt, error) {
	info := &tokenty.TokenInfo{
		Symbol:     payload.Symbol,
		Name:       payload.Name,
		Owner:      tx.From,
		Total:      payload.Total,
		CreateTime: t.GetBlockTime(),
	}
	tokenlog.Info("create token", "symbol", payload.Symbol, "owner", tx.From, "total", payload.Total)
	return createToken(t.GetStateDB(), info)
}

func (t *token) Exec_Transfer(payload *tokenty.TokenTransfer, tx *types.Transaction, index int) (*types.Receipt, error) {
	if err := address.CheckAddress(payload.To); err != nil {
		return nil, types.ErrInvalidAddress
	}
	tokendb, err := NewTokenDB(t.GetStateDB(), payload.Symbol)
	if err != nil {
		return nil, err
	}
	return tokendb.Transfer(tx.From, payload.To, payload.Amount)
}

func (t *token) Exec_Approve(payload *tokenty.TokenApprove, tx *types.Transaction, index int) (*types.Receipt, error) {
	if err := address.CheckAddress(payload.Spender); err != nil {
		return nil, types.ErrInvalidAddress
	}
	tokendb, err := NewTokenDB(t.GetStateDB(), payload.Symbol)
	if err != nil {
		return nil, err
	}
	return tokendb.Approve(tx.From, payload.Spender, payload.Amount)
}

func (t *token) Exec_TransferFrom(payload *tokenty.TokenTransferFrom, tx *types.Transaction, index int) (*types.Receipt, error) {
	if err := address.CheckAddress(payload.To); err != nil {
		return nil, types.ErrInvalidAddress
	}
	tokendb, err := NewTokenDB(t.GetStateDB(), payload.Symbol)
	if err != nil {
		return nil, err
	}
	return tokendb.TransferFrom(tx.From, payload.From, payload.To, payload.Amount)
}

func (t *token) Exec_Freeze(payload *tokenty.TokenFreeze, tx *types.Transaction, index int) (*types.Receipt, error) {
	if err := address.CheckAddress(payload.Addr); err != nil {
		return nil, types.ErrInvalidAddress
	}
	tokendb, err := NewTokenDB(t.GetStateDB(), payload.Symbol)
	if err != nil {
		return nil, err
	}
	return tokendb.SetFrozen(tx.From, payload.Addr, payload.Frozen)
}
