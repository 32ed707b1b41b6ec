// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"fmt"

	rpsty "github.com/33cn/rps/plugin/dapp/rps/types"
	"github.com/33cn/rps/types"
)

const (
	phasePrefix = "LODB-rps-phase:"
	addrPrefix  = "LODB-rps-addr:"
)

func calcPhasePrefix(phase int32) []byte {
	return []byte(fmt.Sprintf("%s%d:", phasePrefix, phase))
}

func calcPhaseKey(phase int32, index int64) []byte {
	return []byte(fmt.Sprintf("%s%d:%018d", phasePrefix, phase, index))
}

func calcAddrPrefix(addr string) []byte {
	return []byte(fmt.Sprintf("%s%s:", addrPrefix, addr))
}

func calcAddrKey(addr string, index int64) []byte {
	return []byte(fmt.Sprintf("%s%s:%018d", addrPrefix, addr, index))
}

// updateIndex 阶段变化时移动阶段索引, 创建或者加入游戏时写入地址索引
func updateIndex(receipt *types.ReceiptData) (*types.LocalDBSet, error) {
	set := &types.LocalDBSet{}
	for _, item := range receipt.Logs {
		switch item.Ty {
		case rpsty.TyLogRpsCreate, rpsty.TyLogRpsCommit, rpsty.TyLogRpsReveal,
			rpsty.TyLogRpsResolve, rpsty.TyLogRpsExpire, rpsty.TyLogRpsWithdraw:
		default:
			continue
		}
		var r rpsty.ReceiptRps
		if err := types.Decode(item.Log, &r); err != nil {
			return nil, err
		}
		id := []byte(r.RoundID)
		if item.Ty == rpsty.TyLogRpsCreate {
			set.KV = append(set.KV, &types.KeyValue{Key: calcPhaseKey(r.Phase, r.Index), Value: id})
		} else if r.Phase != r.PrevPhase {
			set.KV = append(set.KV, &types.KeyValue{Key: calcPhaseKey(r.PrevPhase, r.PrevIndex)})
			set.KV = append(set.KV, &types.KeyValue{Key: calcPhaseKey(r.Phase, r.Index), Value: id})
		}
		if r.Joined != "" {
			set.KV = append(set.KV, &types.KeyValue{Key: calcAddrKey(r.Joined, r.TxIndex), Value: id})
		}
	}
	return set, nil
}

func (r *rps) ExecLocal_Create(payload *rpsty.RpsCreate, tx *types.Transaction, receipt *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return updateIndex(receipt)
}

func (r *rps) ExecLocal_Commit(payload *rpsty.RpsCommit, tx *types.Transaction, receipt *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return updateIndex(receipt)
}

func (r *rps) ExecLocal_Reveal(payload *rpsty.RpsReveal, tx *types.Transaction, receipt *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return updateIndex(receipt)
}

func (r *rps) ExecLocal_Claim(payload *rpsty.RpsClaim, tx *types.Transaction, receipt *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return updateIndex(receipt)
}

func (r *rps) ExecLocal_Withdraw(payload *rpsty.RpsWithdraw, tx *types.Transaction, receipt *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return updateIndex(receipt)
}
