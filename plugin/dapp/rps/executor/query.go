// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"github.com/33cn/rps/common"
	rpsty "github.com/33cn/rps/plugin/dapp/rps/types"
	"github.com/33cn/rps/types"
)

func (r *rps) Query_GetRoundInfo(in *types.ReqString) (types.Message, error) {
	return readRound(r.GetStateDB(), in.Data)
}

// Query_GetMoves 玩家的承诺哈希, 没有提交时为空
func (r *rps) Query_GetMoves(in *rpsty.ReqRoundPlayer) (types.Message, error) {
	round, err := readRound(r.GetStateDB(), in.RoundID)
	if err != nil {
		return nil, err
	}
	reply := &rpsty.ReplyMoves{RoundID: in.RoundID, Addr: in.Addr}
	if slot := findSlot(round, in.Addr); slot != nil {
		reply.Commitment = common.ToHex(slot.Commitment)
	}
	return reply, nil
}

func (r *rps) Query_GetPlayerStatus(in *rpsty.ReqRoundPlayer) (types.Message, error) {
	round, err := readRound(r.GetStateDB(), in.RoundID)
	if err != nil {
		return nil, err
	}
	slot := findSlot(round, in.Addr)
	reply := &rpsty.ReplyPlayerStatus{RoundID: in.RoundID, Addr: in.Addr, Status: slot.GetStatus()}
	if v, ok := stateOf(slot).(revealed); ok {
		reply.Move = v.move
	}
	return reply, nil
}

// Query_GetRoundList Addr 不为空时按地址列出, 否则按阶段列出
func (r *rps) Query_GetRoundList(in *rpsty.ReqRoundList) (types.Message, error) {
	count := in.Count
	if count <= 0 {
		count = rpsty.DefaultCount
	}
	if count > rpsty.MaxCount {
		count = rpsty.MaxCount
	}
	var prefix, key []byte
	if in.Addr != "" {
		prefix = calcAddrPrefix(in.Addr)
		if in.Index > 0 {
			key = calcAddrKey(in.Addr, in.Index)
		}
	} else {
		prefix = calcPhasePrefix(in.Phase)
		if in.Index > 0 {
			key = calcPhaseKey(in.Phase, in.Index)
		}
	}
	values, err := r.GetLocalDB().List(prefix, key, count, in.Direction)
	if err != nil && err != types.ErrNotFound {
		return nil, err
	}
	reply := &rpsty.ReplyRoundList{}
	for _, id := range values {
		round, err := readRound(r.GetStateDB(), string(id))
		if err != nil {
			rlog.Error("GetRoundList", "roundID", string(id), "err", err)
			return nil, err
		}
		reply.Rounds = append(reply.Rounds, round)
	}
	return reply, nil
}

// Query_GetPendingPayouts Addr 为空时返回全部
func (r *rps) Query_GetPendingPayouts(in *rpsty.ReqRoundPlayer) (types.Message, error) {
	round, err := readRound(r.GetStateDB(), in.RoundID)
	if err != nil {
		return nil, err
	}
	reply := &rpsty.ReplyPendingPayouts{}
	for _, p := range round.Pending {
		if in.Addr == "" || p.To == in.Addr {
			reply.Payouts = append(reply.Payouts, p)
		}
	}
	return reply, nil
}
