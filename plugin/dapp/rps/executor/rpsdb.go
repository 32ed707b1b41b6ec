// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"github.com/33cn/rps/account"
	"github.com/33cn/rps/common"
	dbm "github.com/33cn/rps/common/db"
	rpsty "github.com/33cn/rps/plugin/dapp/rps/types"
	drivers "github.com/33cn/rps/system/dapp"
	"github.com/33cn/rps/types"
)

func calcRoundKey(roundID string) []byte {
	return []byte("mavl-rps-round-" + roundID)
}

func readRound(db dbm.KV, roundID string) (*rpsty.Round, error) {
	data, err := db.Get(calcRoundKey(roundID))
	if err == types.ErrNotFound {
		return nil, rpsty.ErrRoundNotFound
	}
	if err != nil {
		rlog.Error("readRound", "roundID", roundID, "err", err)
		return nil, err
	}
	var round rpsty.Round
	if err := types.Decode(data, &round); err != nil {
		rlog.Error("readRound decode", "roundID", roundID, "err", err)
		return nil, err
	}
	return &round, nil
}

func findSlot(round *rpsty.Round, addr string) *rpsty.PlayerSlot {
	for _, slot := range round.Slots {
		if slot.Addr == addr {
			return slot
		}
	}
	return nil
}

// payout 一笔押金的转移, from == to 时表示退还
type payout struct {
	from   string
	to     string
	amount int64
}

// resolvePayouts 赢家得到双方的押金, 平局各自退还
func resolvePayouts(round *rpsty.Round, outcome int32) []payout {
	a, b := round.Slots[0], round.Slots[1]
	switch outcome {
	case rpsty.OutcomePlayerAWins:
		return []payout{{b.Addr, a.Addr, b.Stake}, {a.Addr, a.Addr, a.Stake}}
	case rpsty.OutcomePlayerBWins:
		return []payout{{a.Addr, b.Addr, a.Stake}, {b.Addr, b.Addr, b.Stake}}
	}
	return refundPayouts(round)
}

func refundPayouts(round *rpsty.Round) []payout {
	var pays []payout
	for _, slot := range round.Slots {
		pays = append(pays, payout{slot.Addr, slot.Addr, slot.Stake})
	}
	return pays
}

// forfeitPayouts 超时的时候只有 winner 公开了, winner 拿走全部押金
func forfeitPayouts(round *rpsty.Round, winner *rpsty.PlayerSlot) []payout {
	var pays []payout
	for _, slot := range round.Slots {
		if slot != winner {
			pays = append(pays, payout{slot.Addr, winner.Addr, slot.Stake})
		}
	}
	return append(pays, payout{winner.Addr, winner.Addr, winner.Stake})
}

type action struct {
	coinsAccount *account.DB
	db           dbm.KV
	localDB      dbm.KVDB
	txhash       []byte
	fromaddr     string
	blocktime    int64
	height       int64
	index        int
	execaddr     string
	amount       int64
}

func newAction(r *rps, tx *types.Transaction, index int) *action {
	return &action{
		coinsAccount: r.GetCoinsAccount(),
		db:           r.GetStateDB(),
		localDB:      r.GetLocalDB(),
		txhash:       tx.Hash(),
		fromaddr:     tx.From,
		blocktime:    r.GetBlockTime(),
		height:       r.GetHeight(),
		index:        index,
		execaddr:     drivers.ExecAddress(string(tx.Execer)),
		amount:       tx.Amount,
	}
}

func (a *action) getIndex() int64 {
	return types.TxIndex(a.height, a.index)
}

func (a *action) saveRound(round *rpsty.Round) *types.KeyValue {
	kv := &types.KeyValue{Key: calcRoundKey(round.RoundID), Value: types.Encode(round)}
	if err := a.db.Set(kv.Key, kv.Value); err != nil {
		panic(err)
	}
	return kv
}

// setPhase 修改阶段, 同时记录位置用于移动本地索引
func (a *action) setPhase(round *rpsty.Round, phase int32) int32 {
	prev := round.Phase
	round.Phase = phase
	round.PrevIndex = round.Index
	round.Index = a.getIndex()
	return prev
}

func (a *action) receiptLog(ty int32, round *rpsty.Round, prevPhase int32, joined string) *types.ReceiptLog {
	r := &rpsty.ReceiptRps{
		RoundID:   round.RoundID,
		Addr:      a.fromaddr,
		Phase:     round.Phase,
		PrevPhase: prevPhase,
		Index:     round.Index,
		PrevIndex: round.PrevIndex,
		Joined:    joined,
		TxIndex:   a.getIndex(),
		Outcome:   round.Outcome,
		Winner:    round.Winner,
	}
	if round.Phase == rpsty.PhaseResolved {
		r.Summary = Summary(round.Slots[0].Move, round.Slots[1].Move)
	}
	return &types.ReceiptLog{Ty: ty, Log: types.Encode(r)}
}

// checkOpen 已经结束或者超时的游戏不接受提交和公开
func (a *action) checkOpen(round *rpsty.Round) error {
	if rpsty.IsClosed(round.Phase) {
		return rpsty.ErrRoundClosed
	}
	if a.blocktime > round.Deadline {
		return rpsty.ErrRoundExpired
	}
	return nil
}

// settle 依次付款, 付款失败记录为待领取, 不影响结算
func (a *action) settle(ledger StakeLedger, round *rpsty.Round, pays []payout) ([]*types.KeyValue, []*types.ReceiptLog) {
	var kv []*types.KeyValue
	var logs []*types.ReceiptLog
	for _, p := range pays {
		receipt, err := ledger.Release(p.from, p.to, p.amount)
		if err == nil {
			kv = append(kv, receipt.KV...)
			logs = append(logs, receipt.Logs...)
			continue
		}
		pending := &rpsty.PendingPayout{
			RoundID: round.RoundID,
			From:    p.from,
			To:      p.to,
			Amount:  p.amount,
			Asset:   ledger.Asset(),
			Err:     err.Error(),
		}
		rlog.Error("settle payout failed", "roundID", round.RoundID, "to", p.to, "amount", p.amount, "err", err)
		pendingCounter.Inc(1)
		round.Pending = append(round.Pending, pending)
		logs = append(logs, &types.ReceiptLog{Ty: rpsty.TyLogRpsPendingPayout, Log: types.Encode(pending)})
	}
	return kv, logs
}

// Create 创建一局游戏, 游戏 id 为交易哈希
func (a *action) Create(create *rpsty.RpsCreate) (*types.Receipt, error) {
	duration := create.RoundDuration
	if duration == 0 {
		duration = cfg.RoundDuration
	}
	if duration < 0 {
		return nil, rpsty.ErrRoundDuration
	}
	bet := create.BetAmount
	if bet == 0 {
		bet = cfg.BetAmount
	}
	if bet < cfg.MinBetAmount || bet > cfg.MaxBetAmount {
		rlog.Error("Create", "bet", bet, "min", cfg.MinBetAmount, "max", cfg.MaxBetAmount)
		return nil, rpsty.ErrBetAmount
	}
	asset := create.StakeAsset
	if asset == "" {
		asset = cfg.StakeAsset
	}
	if asset == types.BTY {
		asset = ""
	}
	if _, err := newLedger(a, asset); err != nil {
		return nil, err
	}
	policy := create.TimeoutPolicy
	if policy == rpsty.PolicyDefault {
		policy = cfg.policy
	}
	if policy != rpsty.PolicyForfeit && policy != rpsty.PolicyRefund {
		return nil, rpsty.ErrTimeoutPolicy
	}
	round := &rpsty.Round{
		RoundID:       common.ToHex(a.txhash),
		Creator:       a.fromaddr,
		CreateTime:    a.blocktime,
		Deadline:      a.blocktime + duration,
		RoundDuration: duration,
		BetAmount:     bet,
		StakeAsset:    asset,
		TimeoutPolicy: policy,
		Phase:         rpsty.PhaseEmpty,
		Index:         a.getIndex(),
	}
	kv := a.saveRound(round)
	log := a.receiptLog(rpsty.TyLogRpsCreate, round, rpsty.PhaseEmpty, a.fromaddr)
	rlog.Debug("Create", "roundID", round.RoundID, "bet", bet, "asset", asset, "deadline", round.Deadline)
	return &types.Receipt{Ty: types.ExecOk, KV: []*types.KeyValue{kv}, Logs: []*types.ReceiptLog{log}}, nil
}

// Commit 提交承诺并缴纳押金
func (a *action) Commit(commit *rpsty.RpsCommit) (*types.Receipt, error) {
	round, err := readRound(a.db, commit.RoundID)
	if err != nil {
		return nil, err
	}
	if err := a.checkOpen(round); err != nil {
		return nil, err
	}
	if len(commit.Commitment) != rpsty.CommitmentLen {
		return nil, rpsty.ErrInvalidCommitment
	}
	if findSlot(round, a.fromaddr) != nil {
		return nil, rpsty.ErrAlreadyCommitted
	}
	if len(round.Slots) >= rpsty.MaxPlayers {
		return nil, rpsty.ErrCapacityExceeded
	}
	ledger, err := newLedger(a, round.StakeAsset)
	if err != nil {
		return nil, err
	}
	receipt, err := ledger.Escrow(a.fromaddr, round.BetAmount)
	if err != nil {
		rlog.Error("Commit escrow", "roundID", round.RoundID, "addr", a.fromaddr, "bet", round.BetAmount, "err", err)
		return nil, err
	}
	slot := &rpsty.PlayerSlot{Addr: a.fromaddr, Stake: round.BetAmount, CommitTime: a.blocktime}
	apply(slot, committed{hash: commit.Commitment})
	round.Slots = append(round.Slots, slot)

	phase := rpsty.PhaseOneCommitted
	if len(round.Slots) == rpsty.MaxPlayers {
		phase = rpsty.PhaseBothCommitted
	}
	prev := a.setPhase(round, phase)
	joined := a.fromaddr
	if joined == round.Creator {
		joined = ""
	}
	kv := append(receipt.KV, a.saveRound(round))
	logs := append(receipt.Logs, a.receiptLog(rpsty.TyLogRpsCommit, round, prev, joined))
	return &types.Receipt{Ty: types.ExecOk, KV: kv, Logs: logs}, nil
}

// Reveal 公开出拳, 第二个人公开时立即结算
func (a *action) Reveal(reveal *rpsty.RpsReveal) (*types.Receipt, error) {
	round, err := readRound(a.db, reveal.RoundID)
	if err != nil {
		return nil, err
	}
	if err := a.checkOpen(round); err != nil {
		return nil, err
	}
	if !rpsty.ValidMove(reveal.Move) {
		return nil, rpsty.ErrInvalidMove
	}
	slot := findSlot(round, a.fromaddr)
	if slot == nil {
		return nil, rpsty.ErrNotCommittedYet
	}
	c, ok := stateOf(slot).(committed)
	if !ok {
		return nil, rpsty.ErrAlreadyRevealed
	}
	if len(round.Slots) < rpsty.MaxPlayers {
		return nil, rpsty.ErrOpponentNotReady
	}
	r, err := c.reveal(reveal.Move, reveal.Salt)
	if err != nil {
		return nil, err
	}
	apply(slot, r)
	slot.RevealTime = a.blocktime

	for _, s := range round.Slots {
		if _, ok := stateOf(s).(revealed); !ok {
			prev := a.setPhase(round, rpsty.PhaseOneRevealed)
			kv := a.saveRound(round)
			log := a.receiptLog(rpsty.TyLogRpsReveal, round, prev, "")
			return &types.Receipt{Ty: types.ExecOk, KV: []*types.KeyValue{kv}, Logs: []*types.ReceiptLog{log}}, nil
		}
	}
	return a.resolve(round)
}

func (a *action) resolve(round *rpsty.Round) (*types.Receipt, error) {
	ledger, err := newLedger(a, round.StakeAsset)
	if err != nil {
		return nil, err
	}
	outcome := Resolve(round.Slots[0].Move, round.Slots[1].Move)
	switch outcome {
	case rpsty.OutcomePlayerAWins:
		round.Winner = round.Slots[0].Addr
	case rpsty.OutcomePlayerBWins:
		round.Winner = round.Slots[1].Addr
	}
	round.Outcome = outcome
	round.CloseTime = a.blocktime
	prev := a.setPhase(round, rpsty.PhaseResolved)

	kv, logs := a.settle(ledger, round, resolvePayouts(round, outcome))
	kv = append(kv, a.saveRound(round))
	logs = append(logs, a.receiptLog(rpsty.TyLogRpsResolve, round, prev, ""))
	resolvedCounter.Inc(1)
	rlog.Info("round resolved", "roundID", round.RoundID, "result", Summary(round.Slots[0].Move, round.Slots[1].Move), "winner", round.Winner)
	return &types.Receipt{Ty: types.ExecOk, KV: kv, Logs: logs}, nil
}

// Claim 超时以后由创建者或者玩家结束游戏
func (a *action) Claim(claim *rpsty.RpsClaim) (*types.Receipt, error) {
	round, err := readRound(a.db, claim.RoundID)
	if err != nil {
		return nil, err
	}
	if rpsty.IsClosed(round.Phase) {
		return nil, rpsty.ErrRoundClosed
	}
	if a.blocktime <= round.Deadline {
		return nil, rpsty.ErrRoundNotExpired
	}
	if a.fromaddr != round.Creator && findSlot(round, a.fromaddr) == nil {
		return nil, rpsty.ErrNotParticipant
	}
	ledger, err := newLedger(a, round.StakeAsset)
	if err != nil {
		return nil, err
	}

	var revealedSlots []int
	for i, s := range round.Slots {
		if _, ok := stateOf(s).(revealed); ok {
			revealedSlots = append(revealedSlots, i)
		}
	}
	pays := refundPayouts(round)
	if len(revealedSlots) == 1 && round.TimeoutPolicy == rpsty.PolicyForfeit {
		i := revealedSlots[0]
		winner := round.Slots[i]
		pays = forfeitPayouts(round, winner)
		round.Winner = winner.Addr
		round.Outcome = rpsty.OutcomePlayerAWins
		if i == 1 {
			round.Outcome = rpsty.OutcomePlayerBWins
		}
	}
	round.CloseTime = a.blocktime
	prev := a.setPhase(round, rpsty.PhaseExpired)

	kv, logs := a.settle(ledger, round, pays)
	kv = append(kv, a.saveRound(round))
	logs = append(logs, a.receiptLog(rpsty.TyLogRpsExpire, round, prev, ""))
	expiredCounter.Inc(1)
	rlog.Info("round expired", "roundID", round.RoundID, "policy", rpsty.PolicyName(round.TimeoutPolicy), "winner", round.Winner)
	return &types.Receipt{Ty: types.ExecOk, KV: kv, Logs: logs}, nil
}

// Withdraw 重新执行调用者所有失败的付款, 任何一笔失败整个交易失败
func (a *action) Withdraw(withdraw *rpsty.RpsWithdraw) (*types.Receipt, error) {
	round, err := readRound(a.db, withdraw.RoundID)
	if err != nil {
		return nil, err
	}
	var mine, rest []*rpsty.PendingPayout
	for _, p := range round.Pending {
		if p.To == a.fromaddr {
			mine = append(mine, p)
		} else {
			rest = append(rest, p)
		}
	}
	if len(mine) == 0 {
		return nil, rpsty.ErrNoPendingPayout
	}
	ledger, err := newLedger(a, round.StakeAsset)
	if err != nil {
		return nil, err
	}
	var kv []*types.KeyValue
	var logs []*types.ReceiptLog
	for _, p := range mine {
		receipt, err := ledger.Release(p.From, p.To, p.Amount)
		if err != nil {
			rlog.Error("Withdraw", "roundID", round.RoundID, "to", p.To, "amount", p.Amount, "err", err)
			return nil, err
		}
		kv = append(kv, receipt.KV...)
		logs = append(logs, receipt.Logs...)
	}
	round.Pending = rest
	kv = append(kv, a.saveRound(round))
	logs = append(logs, a.receiptLog(rpsty.TyLogRpsWithdraw, round, round.Phase, ""))
	return &types.Receipt{Ty: types.ExecOk, KV: kv, Logs: logs}, nil
}
