// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"testing"

	"github.com/33cn/rps/common"
	"github.com/33cn/rps/common/address"
	dbm "github.com/33cn/rps/common/db"
	execenv "github.com/33cn/rps/executor"
	rpsty "github.com/33cn/rps/plugin/dapp/rps/types"
	tokenexec "github.com/33cn/rps/plugin/dapp/token/executor"
	tokenty "github.com/33cn/rps/plugin/dapp/token/types"
	coinsexec "github.com/33cn/rps/system/dapp/coins/executor"
	cty "github.com/33cn/rps/system/dapp/coins/types"
	"github.com/33cn/rps/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	alice = address.LabelAddress("alice")
	bob   = address.LabelAddress("bob")
	carol = address.LabelAddress("carol")
	dave  = address.LabelAddress("dave")
)

const (
	startTime = int64(1539918074)
	bet       = types.Coin
	saltA     = "ILIKESALTYFOOD"
	saltB     = "ILIKESPICYFOOD"
	saltC     = "ILIKECRISPYFOOD"
)

type testEnv struct {
	t         *testing.T
	exec      *execenv.Executor
	blocktime int64
	nonce     int64
}

func newTestEnv(t *testing.T) *testEnv {
	cfg, sub := types.MustInitCfgString(types.DefaultConfig)
	coinsexec.Init(types.CoinsX, cfg, nil)
	tokenexec.Init(tokenty.TokenX, cfg, nil)
	Init(rpsty.RpsX, cfg, sub.Exec[rpsty.RpsX])

	state, err := dbm.NewGoMemDB("state", "", 0)
	require.NoError(t, err)
	local, err := dbm.NewGoMemDB("local", "", 0)
	require.NoError(t, err)
	exec, err := execenv.New(cfg, state, local)
	require.NoError(t, err)
	env := &testEnv{t: t, exec: exec, blocktime: startTime}

	var txs []*types.Transaction
	for _, addr := range []string{alice, bob, carol} {
		env.nonce++
		txs = append(txs, types.CreateTx(types.CoinsX, alice, cty.NewGenesis(addr, 100*types.Coin), 0, env.nonce))
	}
	results, err := exec.ExecBlock(exec.NextBlock(env.blocktime, txs...))
	require.NoError(t, err)
	for _, r := range results {
		require.NoError(t, r.Err)
	}
	return env
}

func (env *testEnv) send(from, execer string, action types.Message, amount int64) (*execenv.TxResult, error) {
	env.nonce++
	tx := types.CreateTx(execer, from, action, amount, env.nonce)
	results, err := env.exec.ExecBlock(env.exec.NextBlock(env.blocktime, tx))
	require.NoError(env.t, err)
	return results[0], results[0].Err
}

func (env *testEnv) mustSend(from, execer string, action types.Message, amount int64) *execenv.TxResult {
	result, err := env.send(from, execer, action, amount)
	require.NoError(env.t, err)
	require.Equal(env.t, int32(types.ExecOk), result.Receipt.Ty)
	return result
}

func (env *testEnv) create(from string, bet int64, asset string, policy int32) string {
	result := env.mustSend(from, rpsty.RpsX, rpsty.NewCreate(0, bet, asset, policy), 0)
	return common.ToHex(result.Hash)
}

func (env *testEnv) commit(from, roundID string, move int32, salt string, amount int64) error {
	_, err := env.send(from, rpsty.RpsX, rpsty.NewCommit(roundID, rpsty.Commitment(move, salt)), amount)
	return err
}

func (env *testEnv) reveal(from, roundID string, move int32, salt string) error {
	_, err := env.send(from, rpsty.RpsX, rpsty.NewReveal(roundID, move, salt), 0)
	return err
}

func (env *testEnv) claim(from, roundID string) error {
	_, err := env.send(from, rpsty.RpsX, rpsty.NewClaim(roundID), 0)
	return err
}

func (env *testEnv) query(execer, funcName string, param types.Message) types.Message {
	reply, err := env.exec.Query(execer, funcName, param)
	require.NoError(env.t, err)
	return reply
}

func (env *testEnv) balance(addr string) int64 {
	return env.query(types.CoinsX, "GetBalance", &types.ReqBalance{Addr: addr}).(*types.ReplyBalance).Main.Balance
}

func (env *testEnv) tokenBalance(symbol, addr string) int64 {
	reply := env.query(tokenty.TokenX, "BalanceOf", &tokenty.ReqTokenBalance{Symbol: symbol, Addr: addr})
	return reply.(*tokenty.ReplyTokenBalance).Balance
}

func (env *testEnv) round(roundID string) *rpsty.Round {
	return env.query(rpsty.RpsX, "GetRoundInfo", &types.ReqString{Data: roundID}).(*rpsty.Round)
}

// setupToken alice 发行 100 个 MTR, 分给 bob 50 个, 两人都授权 rps 使用 10 个
func (env *testEnv) setupToken() {
	execaddr := address.ExecAddress(rpsty.RpsX)
	env.mustSend(alice, tokenty.TokenX, tokenty.NewCreate("MTR", "MTRToken", 100), 0)
	env.mustSend(alice, tokenty.TokenX, tokenty.NewTransfer("MTR", bob, 50), 0)
	env.mustSend(alice, tokenty.TokenX, tokenty.NewApprove("MTR", execaddr, 10), 0)
	env.mustSend(bob, tokenty.TokenX, tokenty.NewApprove("MTR", execaddr, 10), 0)
}

func TestNativeRound(t *testing.T) {
	env := newTestEnv(t)
	roundID := env.create(carol, bet, "", 0)
	round := env.round(roundID)
	assert.Equal(t, rpsty.PhaseEmpty, round.Phase)
	assert.Equal(t, startTime+600, round.Deadline)
	assert.Equal(t, rpsty.PolicyForfeit, round.TimeoutPolicy)

	aliceBefore := env.balance(alice)
	require.NoError(t, env.commit(alice, roundID, rpsty.MoveRock, saltA, bet))
	assert.Equal(t, rpsty.PhaseOneCommitted, env.round(roundID).Phase)
	assert.Equal(t, aliceBefore-bet, env.balance(alice))
	require.NoError(t, env.commit(bob, roundID, rpsty.MovePaper, saltB, bet))
	assert.Equal(t, rpsty.PhaseBothCommitted, env.round(roundID).Phase)

	require.NoError(t, env.reveal(alice, roundID, rpsty.MoveRock, saltA))
	assert.Equal(t, rpsty.PhaseOneRevealed, env.round(roundID).Phase)

	resolved := resolvedCounter.Count()
	bobBefore := env.balance(bob)
	require.NoError(t, env.reveal(bob, roundID, rpsty.MovePaper, saltB))
	assert.Equal(t, bobBefore+2*bet, env.balance(bob))
	assert.Equal(t, aliceBefore-bet, env.balance(alice))
	assert.Equal(t, resolved+1, resolvedCounter.Count())

	round = env.round(roundID)
	assert.Equal(t, rpsty.PhaseResolved, round.Phase)
	assert.Equal(t, rpsty.OutcomePlayerBWins, round.Outcome)
	assert.Equal(t, bob, round.Winner)
	assert.Empty(t, round.Pending)

	// 结束以后不再接受操作
	assert.Equal(t, rpsty.ErrRoundClosed, env.reveal(bob, roundID, rpsty.MovePaper, saltB))
	assert.Equal(t, rpsty.ErrRoundClosed, env.commit(carol, roundID, rpsty.MoveRock, saltC, bet))
}

func TestNativeTie(t *testing.T) {
	env := newTestEnv(t)
	roundID := env.create(alice, bet, types.BTY, 0)
	aliceBefore, bobBefore := env.balance(alice), env.balance(bob)
	require.NoError(t, env.commit(alice, roundID, rpsty.MoveScissors, saltA, bet))
	require.NoError(t, env.commit(bob, roundID, rpsty.MoveScissors, saltB, bet))
	require.NoError(t, env.reveal(bob, roundID, rpsty.MoveScissors, saltB))
	require.NoError(t, env.reveal(alice, roundID, rpsty.MoveScissors, saltA))

	round := env.round(roundID)
	assert.Equal(t, rpsty.OutcomeTie, round.Outcome)
	assert.Equal(t, "", round.Winner)
	assert.Equal(t, aliceBefore, env.balance(alice))
	assert.Equal(t, bobBefore, env.balance(bob))
}

func TestTokenRound(t *testing.T) {
	env := newTestEnv(t)
	env.setupToken()
	roundID := env.create(carol, 10, "MTR", 0)
	assert.Equal(t, "MTR", env.round(roundID).StakeAsset)

	require.NoError(t, env.commit(alice, roundID, rpsty.MoveScissors, saltA, 0))
	require.NoError(t, env.commit(bob, roundID, rpsty.MoveRock, saltB, 0))
	assert.Equal(t, int64(40), env.tokenBalance("MTR", alice))
	assert.Equal(t, int64(20), env.tokenBalance("MTR", address.ExecAddress(rpsty.RpsX)))

	require.NoError(t, env.reveal(alice, roundID, rpsty.MoveScissors, saltA))
	before := env.tokenBalance("MTR", bob)
	require.NoError(t, env.reveal(bob, roundID, rpsty.MoveRock, saltB))
	assert.Equal(t, before+20, env.tokenBalance("MTR", bob))
	assert.Equal(t, int64(40), env.tokenBalance("MTR", alice))
	assert.Equal(t, int64(0), env.tokenBalance("MTR", address.ExecAddress(rpsty.RpsX)))
	assert.Equal(t, bob, env.round(roundID).Winner)
}

func TestTokenStake(t *testing.T) {
	env := newTestEnv(t)
	env.setupToken()
	roundID := env.create(carol, 10, "MTR", 0)

	// 原生币不能用于 token 游戏
	before := env.balance(alice)
	assert.Equal(t, rpsty.ErrValueNotAccepted, env.commit(alice, roundID, rpsty.MoveRock, saltA, bet))
	assert.Equal(t, before, env.balance(alice))

	// carol 没有 token 也没有授权
	assert.Equal(t, rpsty.ErrInsufficientStake, env.commit(carol, roundID, rpsty.MoveRock, saltC, 0))

	// 授权额度不够
	env.mustSend(alice, tokenty.TokenX, tokenty.NewApprove("MTR", address.ExecAddress(rpsty.RpsX), 5), 0)
	assert.Equal(t, rpsty.ErrInsufficientStake, env.commit(alice, roundID, rpsty.MoveRock, saltA, 0))
	assert.Equal(t, rpsty.PhaseEmpty, env.round(roundID).Phase)

	_, err := env.send(alice, rpsty.RpsX, rpsty.NewCreate(0, 10, "NONE", 0), 0)
	assert.Equal(t, tokenty.ErrTokenNotExist, err)
}

func TestCommitErrors(t *testing.T) {
	env := newTestEnv(t)
	roundID := env.create(alice, bet, "", 0)

	assert.Equal(t, rpsty.ErrRoundNotFound, env.commit(alice, "0x1234", rpsty.MoveRock, saltA, bet))
	_, err := env.send(alice, rpsty.RpsX, rpsty.NewCommit(roundID, []byte("short")), bet)
	assert.Equal(t, rpsty.ErrInvalidCommitment, err)

	// 附带金额必须等于押金, 失败时附带的金额也要回滚
	before := env.balance(alice)
	result, err := env.send(alice, rpsty.RpsX, rpsty.NewCommit(roundID, rpsty.Commitment(rpsty.MoveRock, saltA)), bet/2)
	assert.Equal(t, rpsty.ErrInsufficientStake, err)
	assert.Equal(t, int32(types.ExecPack), result.Receipt.Ty)
	assert.Equal(t, before, env.balance(alice))
	assert.Equal(t, rpsty.ErrInsufficientStake, env.commit(alice, roundID, rpsty.MoveRock, saltA, 0))

	require.NoError(t, env.commit(alice, roundID, rpsty.MoveRock, saltA, bet))
	err = env.commit(alice, roundID, rpsty.MovePaper, saltA, bet)
	assert.Equal(t, rpsty.ErrAlreadyCommitted, err)
	assert.EqualError(t, err, "You've already played. Wait for the other player.")

	require.NoError(t, env.commit(bob, roundID, rpsty.MovePaper, saltB, bet))
	before = env.balance(carol)
	err = env.commit(carol, roundID, rpsty.MoveScissors, saltC, bet)
	assert.EqualError(t, err, "Can't accept more than 2 players")
	assert.Equal(t, before, env.balance(carol))

	// 没有钱的账户附带金额, 交易不会执行
	result, err = env.send(dave, rpsty.RpsX, rpsty.NewCommit(roundID, rpsty.Commitment(rpsty.MoveRock, saltA)), bet)
	assert.Equal(t, types.ErrNoBalance, err)
	assert.Equal(t, int32(types.ExecPack), result.Receipt.Ty)
}

func TestRevealErrors(t *testing.T) {
	env := newTestEnv(t)
	roundID := env.create(alice, bet, "", 0)

	err := env.reveal(alice, roundID, rpsty.MoveRock, saltA)
	assert.EqualError(t, err, "You should commit a move first")

	require.NoError(t, env.commit(alice, roundID, rpsty.MoveRock, saltA, bet))
	err = env.reveal(alice, roundID, rpsty.MoveRock, saltA)
	assert.EqualError(t, err, "Wait for the other player to commit their move.")

	for _, move := range []int32{0, 4, -1} {
		err = env.reveal(alice, roundID, move, saltA)
		assert.EqualError(t, err, "Your move is not valid! Only 1, 2, or 3")
	}

	require.NoError(t, env.commit(bob, roundID, rpsty.MovePaper, saltB, bet))
	assert.Equal(t, rpsty.ErrCommitmentMismatch, env.reveal(alice, roundID, rpsty.MovePaper, saltA))
	assert.Equal(t, rpsty.ErrCommitmentMismatch, env.reveal(alice, roundID, rpsty.MoveRock, saltB))
	assert.EqualError(t, env.reveal(carol, roundID, rpsty.MoveRock, saltC), "You should commit a move first")

	require.NoError(t, env.reveal(alice, roundID, rpsty.MoveRock, saltA))
	assert.Equal(t, rpsty.ErrAlreadyRevealed, env.reveal(alice, roundID, rpsty.MoveRock, saltA))

	status := env.query(rpsty.RpsX, "GetPlayerStatus", &rpsty.ReqRoundPlayer{RoundID: roundID, Addr: alice}).(*rpsty.ReplyPlayerStatus)
	assert.Equal(t, rpsty.StatusRevealed, status.Status)
	assert.Equal(t, rpsty.MoveRock, status.Move)
	status = env.query(rpsty.RpsX, "GetPlayerStatus", &rpsty.ReqRoundPlayer{RoundID: roundID, Addr: bob}).(*rpsty.ReplyPlayerStatus)
	assert.Equal(t, rpsty.StatusCommitted, status.Status)
	assert.Equal(t, rpsty.MoveNone, status.Move)
	status = env.query(rpsty.RpsX, "GetPlayerStatus", &rpsty.ReqRoundPlayer{RoundID: roundID, Addr: carol}).(*rpsty.ReplyPlayerStatus)
	assert.Equal(t, rpsty.StatusNotJoined, status.Status)

	moves := env.query(rpsty.RpsX, "GetMoves", &rpsty.ReqRoundPlayer{RoundID: roundID, Addr: bob}).(*rpsty.ReplyMoves)
	assert.Equal(t, common.ToHex(rpsty.Commitment(rpsty.MovePaper, saltB)), moves.Commitment)
	moves = env.query(rpsty.RpsX, "GetMoves", &rpsty.ReqRoundPlayer{RoundID: roundID, Addr: carol}).(*rpsty.ReplyMoves)
	assert.Equal(t, "", moves.Commitment)
}

func TestCreateErrors(t *testing.T) {
	env := newTestEnv(t)
	_, err := env.send(alice, rpsty.RpsX, rpsty.NewCreate(-1, bet, "", 0), 0)
	assert.Equal(t, rpsty.ErrRoundDuration, err)
	_, err = env.send(alice, rpsty.RpsX, rpsty.NewCreate(0, types.MaxCoin, "", 0), 0)
	assert.Equal(t, rpsty.ErrBetAmount, err)
	_, err = env.send(alice, rpsty.RpsX, rpsty.NewCreate(0, bet, "", 7), 0)
	assert.Equal(t, rpsty.ErrTimeoutPolicy, err)

	// 只有 commit 可以附带原生币, 其他交易不会被打包
	result, err := env.send(alice, rpsty.RpsX, rpsty.NewCreate(0, bet, "", 0), bet)
	assert.Equal(t, rpsty.ErrValueNotAccepted, err)
	assert.Equal(t, int32(types.ExecErr), result.Receipt.Ty)

	roundID := env.create(alice, 0, "", rpsty.PolicyRefund)
	round := env.round(roundID)
	assert.Equal(t, bet, round.BetAmount)
	assert.Equal(t, int64(600), round.RoundDuration)
	assert.Equal(t, rpsty.PolicyRefund, round.TimeoutPolicy)
}

func TestTimeoutRefund(t *testing.T) {
	env := newTestEnv(t)
	roundID := env.create(carol, bet, "", rpsty.PolicyRefund)
	aliceBefore, bobBefore := env.balance(alice), env.balance(bob)
	require.NoError(t, env.commit(alice, roundID, rpsty.MoveRock, saltA, bet))
	require.NoError(t, env.commit(bob, roundID, rpsty.MovePaper, saltB, bet))
	require.NoError(t, env.reveal(alice, roundID, rpsty.MoveRock, saltA))

	assert.Equal(t, rpsty.ErrRoundNotExpired, env.claim(alice, roundID))
	env.blocktime = startTime + 601
	assert.Equal(t, rpsty.ErrRoundExpired, env.reveal(bob, roundID, rpsty.MovePaper, saltB))
	assert.Equal(t, rpsty.ErrNotParticipant, env.claim(dave, roundID))

	expired := expiredCounter.Count()
	require.NoError(t, env.claim(carol, roundID))
	assert.Equal(t, expired+1, expiredCounter.Count())
	round := env.round(roundID)
	assert.Equal(t, rpsty.PhaseExpired, round.Phase)
	assert.Equal(t, "", round.Winner)
	assert.Equal(t, aliceBefore, env.balance(alice))
	assert.Equal(t, bobBefore, env.balance(bob))
	assert.Equal(t, rpsty.ErrRoundClosed, env.claim(carol, roundID))
}

func TestTimeoutForfeit(t *testing.T) {
	env := newTestEnv(t)
	roundID := env.create(carol, bet, "", rpsty.PolicyForfeit)
	aliceBefore, bobBefore := env.balance(alice), env.balance(bob)
	require.NoError(t, env.commit(alice, roundID, rpsty.MoveRock, saltA, bet))
	require.NoError(t, env.commit(bob, roundID, rpsty.MovePaper, saltB, bet))
	require.NoError(t, env.reveal(alice, roundID, rpsty.MoveRock, saltA))

	env.blocktime = startTime + 601
	require.NoError(t, env.claim(bob, roundID))
	round := env.round(roundID)
	assert.Equal(t, rpsty.PhaseExpired, round.Phase)
	assert.Equal(t, alice, round.Winner)
	assert.Equal(t, rpsty.OutcomePlayerAWins, round.Outcome)
	assert.Equal(t, aliceBefore+bet, env.balance(alice))
	assert.Equal(t, bobBefore-bet, env.balance(bob))
}

func TestTimeoutNobodyRevealed(t *testing.T) {
	env := newTestEnv(t)
	empty := env.create(carol, bet, "", rpsty.PolicyForfeit)
	roundID := env.create(carol, bet, "", rpsty.PolicyForfeit)
	aliceBefore := env.balance(alice)
	require.NoError(t, env.commit(alice, roundID, rpsty.MoveRock, saltA, bet))

	env.blocktime = startTime + 601
	assert.Equal(t, rpsty.ErrRoundExpired, env.commit(bob, roundID, rpsty.MovePaper, saltB, bet))
	require.NoError(t, env.claim(alice, roundID))
	assert.Equal(t, aliceBefore, env.balance(alice))
	assert.Equal(t, rpsty.PhaseExpired, env.round(roundID).Phase)

	require.NoError(t, env.claim(carol, empty))
	assert.Equal(t, rpsty.PhaseExpired, env.round(empty).Phase)
}

func TestPendingPayout(t *testing.T) {
	env := newTestEnv(t)
	env.setupToken()
	roundID := env.create(carol, 10, "MTR", 0)
	require.NoError(t, env.commit(alice, roundID, rpsty.MoveRock, saltA, 0))
	require.NoError(t, env.commit(bob, roundID, rpsty.MovePaper, saltB, 0))
	require.NoError(t, env.reveal(alice, roundID, rpsty.MoveRock, saltA))

	// token 的 owner 冻结 bob, bob 不能收款
	env.mustSend(alice, tokenty.TokenX, tokenty.NewFreeze("MTR", bob, true), 0)
	before := env.tokenBalance("MTR", bob)
	require.NoError(t, env.reveal(bob, roundID, rpsty.MovePaper, saltB))
	round := env.round(roundID)
	assert.Equal(t, rpsty.PhaseResolved, round.Phase)
	assert.Equal(t, bob, round.Winner)
	assert.Equal(t, before, env.tokenBalance("MTR", bob))

	reply := env.query(rpsty.RpsX, "GetPendingPayouts", &rpsty.ReqRoundPlayer{RoundID: roundID, Addr: bob}).(*rpsty.ReplyPendingPayouts)
	require.Len(t, reply.Payouts, 2)
	assert.Equal(t, "MTR", reply.Payouts[0].Asset)
	assert.Equal(t, tokenty.ErrTokenFrozen.Error(), reply.Payouts[0].Err)

	_, err := env.send(alice, rpsty.RpsX, rpsty.NewWithdraw(roundID), 0)
	assert.Equal(t, rpsty.ErrNoPendingPayout, err)
	_, err = env.send(bob, rpsty.RpsX, rpsty.NewWithdraw(roundID), 0)
	assert.Equal(t, tokenty.ErrTokenFrozen, err)
	assert.Len(t, env.round(roundID).Pending, 2)

	env.mustSend(alice, tokenty.TokenX, tokenty.NewFreeze("MTR", bob, false), 0)
	env.mustSend(bob, rpsty.RpsX, rpsty.NewWithdraw(roundID), 0)
	assert.Equal(t, before+20, env.tokenBalance("MTR", bob))
	assert.Empty(t, env.round(roundID).Pending)
	_, err = env.send(bob, rpsty.RpsX, rpsty.NewWithdraw(roundID), 0)
	assert.Equal(t, rpsty.ErrNoPendingPayout, err)
}

func TestRoundList(t *testing.T) {
	env := newTestEnv(t)
	r1 := env.create(carol, bet, "", 0)
	r2 := env.create(carol, bet, "", 0)
	require.NoError(t, env.commit(alice, r1, rpsty.MoveRock, saltA, bet))
	require.NoError(t, env.commit(bob, r1, rpsty.MoveRock, saltB, bet))
	require.NoError(t, env.reveal(alice, r1, rpsty.MoveRock, saltA))
	require.NoError(t, env.reveal(bob, r1, rpsty.MoveRock, saltB))

	list := func(req *rpsty.ReqRoundList) []string {
		var ids []string
		for _, round := range env.query(rpsty.RpsX, "GetRoundList", req).(*rpsty.ReplyRoundList).Rounds {
			ids = append(ids, round.RoundID)
		}
		return ids
	}
	assert.Equal(t, []string{r1}, list(&rpsty.ReqRoundList{Phase: rpsty.PhaseResolved}))
	assert.Equal(t, []string{r2}, list(&rpsty.ReqRoundList{Phase: rpsty.PhaseEmpty}))
	assert.Empty(t, list(&rpsty.ReqRoundList{Phase: rpsty.PhaseOneRevealed}))
	assert.Equal(t, []string{r2, r1}, list(&rpsty.ReqRoundList{Addr: carol}))
	assert.Equal(t, []string{r1, r2}, list(&rpsty.ReqRoundList{Addr: carol, Direction: types.ListASC}))
	assert.Equal(t, []string{r1}, list(&rpsty.ReqRoundList{Addr: bob}))
	assert.Equal(t, []string{r1}, list(&rpsty.ReqRoundList{Addr: carol, Count: 1, Direction: types.ListASC}))
}
