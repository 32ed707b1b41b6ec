// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package metrics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSnapshot(t *testing.T) {
	before := Counter("test.counter").Count()
	Counter("test.counter").Inc(2)
	Timer("test.timer").Update(time.Millisecond)

	var counter, timer *Stat
	for _, s := range Snapshot() {
		switch s.Name {
		case "rps.test.counter":
			counter = s
		case "rps.test.timer":
			timer = s
		}
	}
	if assert.NotNil(t, counter) {
		assert.Equal(t, before+2, counter.Count)
	}
	if assert.NotNil(t, timer) {
		assert.True(t, timer.Count >= 1)
	}
	LogSnapshot()
}
