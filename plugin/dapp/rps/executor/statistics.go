// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"github.com/33cn/rps/metrics"
)

var (
	resolvedCounter = metrics.Counter("rps.round.resolved")
	expiredCounter  = metrics.Counter("rps.round.expired")
	pendingCounter  = metrics.Counter("rps.payout.pending")
)
