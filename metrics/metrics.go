// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package metrics 执行统计, 基于 go-metrics 的默认 registry
package metrics

import (
	"sort"
	"time"

	log "github.com/inconshreveable/log15"
	go_metrics "github.com/rcrowley/go-metrics"
)

var mlog = log.New("module", "metrics")

// Namespace 所有指标名称的前缀
var Namespace = "rps"

func name(n string) string {
	return Namespace + "." + n
}

// Counter 获取或者注册计数器
func Counter(n string) go_metrics.Counter {
	return go_metrics.GetOrRegisterCounter(name(n), go_metrics.DefaultRegistry)
}

// Timer 获取或者注册计时器
func Timer(n string) go_metrics.Timer {
	return go_metrics.GetOrRegisterTimer(name(n), go_metrics.DefaultRegistry)
}

// Stat 一条统计数据
type Stat struct {
	Name  string
	Count int64
	// Mean 计时器的平均耗时, 计数器为0
	Mean time.Duration
}

// Snapshot 当前所有指标的快照, 按名称排序
func Snapshot() []*Stat {
	var stats []*Stat
	go_metrics.DefaultRegistry.Each(func(n string, i interface{}) {
		switch m := i.(type) {
		case go_metrics.Counter:
			stats = append(stats, &Stat{Name: n, Count: m.Count()})
		case go_metrics.Timer:
			s := m.Snapshot()
			stats = append(stats, &Stat{Name: n, Count: s.Count(), Mean: time.Duration(s.Mean())})
		}
	})
	sort.Slice(stats, func(i, j int) bool { return stats[i].Name < stats[j].Name })
	return stats
}

// LogSnapshot 打印当前的统计数据
func LogSnapshot() {
	for _, s := range Snapshot() {
		mlog.Info("metrics", "name", s.Name, "count", s.Count, "mean", s.Mean)
	}
}
