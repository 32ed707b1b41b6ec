// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	rpsty "github.com/33cn/rps/plugin/dapp/rps/types"
)

// slotState 玩家位置的状态, 只可能是 committed 或者 revealed
type slotState interface {
	status() int32
}

type committed struct {
	hash []byte
}

type revealed struct {
	hash []byte
	move int32
}

func (committed) status() int32 { return rpsty.StatusCommitted }
func (revealed) status() int32  { return rpsty.StatusRevealed }

// reveal 只有提交过承诺的位置可以公开
func (c committed) reveal(move int32, salt string) (revealed, error) {
	if !rpsty.CheckCommitment(c.hash, move, salt) {
		return revealed{}, rpsty.ErrCommitmentMismatch
	}
	return revealed{hash: c.hash, move: move}, nil
}

// stateOf 从存储的 PlayerSlot 还原状态, 没有加入时返回 nil
func stateOf(p *rpsty.PlayerSlot) slotState {
	switch p.GetStatus() {
	case rpsty.StatusCommitted:
		return committed{hash: p.Commitment}
	case rpsty.StatusRevealed:
		return revealed{hash: p.Commitment, move: p.Move}
	}
	return nil
}

// apply 把状态写回 PlayerSlot
func apply(p *rpsty.PlayerSlot, s slotState) {
	switch v := s.(type) {
	case committed:
		p.Commitment = v.hash
		p.Move = rpsty.MoveNone
	case revealed:
		p.Commitment = v.hash
		p.Move = v.move
	}
	p.Status = s.status()
}
