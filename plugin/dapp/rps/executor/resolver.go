// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"fmt"

	rpsty "github.com/33cn/rps/plugin/dapp/rps/types"
)

// beats[a] 是 a 能赢的出拳
var beats = map[int32]int32{
	rpsty.MoveRock:     rpsty.MoveScissors,
	rpsty.MoveScissors: rpsty.MovePaper,
	rpsty.MovePaper:    rpsty.MoveRock,
}

var verbs = map[int32]string{
	rpsty.MoveRock:     "crushes",
	rpsty.MoveScissors: "cuts",
	rpsty.MovePaper:    "covers",
}

// Resolve 比较 A 和 B 的出拳
func Resolve(a, b int32) int32 {
	switch {
	case a == b:
		return rpsty.OutcomeTie
	case beats[a] == b:
		return rpsty.OutcomePlayerAWins
	default:
		return rpsty.OutcomePlayerBWins
	}
}

// Summary "paper covers rock"
func Summary(a, b int32) string {
	switch Resolve(a, b) {
	case rpsty.OutcomeTie:
		return fmt.Sprintf("%s ties %s", rpsty.MoveName(a), rpsty.MoveName(b))
	case rpsty.OutcomePlayerAWins:
		return fmt.Sprintf("%s %s %s", rpsty.MoveName(a), verbs[a], rpsty.MoveName(b))
	default:
		return fmt.Sprintf("%s %s %s", rpsty.MoveName(b), verbs[b], rpsty.MoveName(a))
	}
}
