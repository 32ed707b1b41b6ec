// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

/*
rps执行器, 两个玩家的石头剪刀布

一局游戏的流程:
1）任何人创建游戏, 指定押金, 押金资产以及超时时间；
2）两个玩家分别提交 keccak256(move, salt) 并缴纳押金；
3）两个人都提交后, 分别公开 move 和 salt, 第二个人公开时立即结算；
4）超时以后参与者可以结束游戏, 根据策略退还押金或者判公开者获胜；
5）付款失败时记录为待领取, 接收者之后通过 withdraw 领取。
*/

import (
	rpsty "github.com/33cn/rps/plugin/dapp/rps/types"
	drivers "github.com/33cn/rps/system/dapp"
	"github.com/33cn/rps/types"
	log "github.com/inconshreveable/log15"
)

var rlog = log.New("module", "execs.rps")

var driverName = rpsty.RpsX

type subConfig struct {
	RoundDuration int64  `json:"roundDuration"`
	BetAmount     int64  `json:"betAmount"`
	StakeAsset    string `json:"stakeAsset"`
	TimeoutPolicy string `json:"timeoutPolicy"`
	MinBetAmount  int64  `json:"minBetAmount"`
	MaxBetAmount  int64  `json:"maxBetAmount"`

	policy int32
}

func defaultConfig() subConfig {
	return subConfig{
		RoundDuration: 600,
		BetAmount:     types.Coin,
		TimeoutPolicy: "forfeit",
		MinBetAmount:  1,
		MaxBetAmount:  types.MaxCoin,
		policy:        rpsty.PolicyForfeit,
	}
}

var cfg = defaultConfig()

// Init 注册 rps 执行器, 配置错误时 panic
func Init(name string, c *types.Config, sub []byte) {
	conf := defaultConfig()
	if sub != nil {
		types.MustDecode(sub, &conf)
	}
	policy, err := rpsty.ParsePolicy(conf.TimeoutPolicy)
	if err != nil || policy == rpsty.PolicyDefault {
		panic("rps: invalid timeoutPolicy " + conf.TimeoutPolicy)
	}
	conf.policy = policy
	if conf.RoundDuration <= 0 || conf.MinBetAmount <= 0 || conf.MaxBetAmount < conf.MinBetAmount {
		panic("rps: invalid config")
	}
	cfg = conf
	drivers.Register(GetName(), newRps, 0)
}

// GetName 执行器名称
func GetName() string {
	return newRps().GetName()
}

type rps struct {
	drivers.DriverBase
}

func newRps() drivers.Driver {
	r := &rps{}
	r.SetChild(r)
	r.SetExecutorType(types.LoadExecutorType(driverName))
	return r
}

func (r *rps) GetDriverName() string {
	return driverName
}

// CheckTx 只有 commit 可以附带原生币
func (r *rps) CheckTx(tx *types.Transaction, index int) error {
	if tx.Amount == 0 {
		return nil
	}
	if r.GetExecutorType().ActionName(tx) != "Commit" {
		return rpsty.ErrValueNotAccepted
	}
	return nil
}
