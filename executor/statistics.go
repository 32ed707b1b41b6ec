// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"github.com/33cn/rps/metrics"
)

var (
	txOkCounter   = metrics.Counter("exec.tx.ok")
	txFailCounter = metrics.Counter("exec.tx.fail")
	blockTimer    = metrics.Timer("exec.block")
)

// Stat 执行统计, 包括各个执行器注册的指标
func Stat() []*metrics.Stat {
	return metrics.Snapshot()
}

func logStat() {
	elog.Info("exec stat", "ok", txOkCounter.Count(), "fail", txFailCounter.Count(), "blocks", blockTimer.Count())
	metrics.LogSnapshot()
}
