// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	rpsty "github.com/33cn/rps/plugin/dapp/rps/types"
	"github.com/33cn/rps/types"
)

func (r *rps) Exec_Create(payload *rpsty.RpsCreate, tx *types.Transaction, index int) (*types.Receipt, error) {
	action := newAction(r, tx, index)
	return action.Create(payload)
}

func (r *rps) Exec_Commit(payload *rpsty.RpsCommit, tx *types.Transaction, index int) (*types.Receipt, error) {
	action := newAction(r, tx, index)
	return action.Commit(payload)
}

func (r *rps) Exec_Reveal(payload *rpsty.RpsReveal, tx *types.Transaction, index int) (*types.Receipt, error) {
	action := newAction(r, tx, index)
	return action.Reveal(payload)
}

func (r *rps) Exec_Claim(payload *rpsty.RpsClaim, tx *types.Transaction, index int) (*types.Receipt, error) {
	action := newAction(r, tx, index)
	return action.Claim(payload)
}

func (r *rps) Exec_Withdraw(payload *rpsty.RpsWithdraw, tx *types.Transaction, index int) (*types.Receipt, error) {
	action := newAction(r, tx, index)
	return action.Withdraw(payload)
}
