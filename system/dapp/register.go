// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dapp

import (
	"sort"
	"sync"

	"github.com/33cn/rps/common/address"
	"github.com/33cn/rps/types"
)

var elog = blog.New("submodule", "register")

// DriverCreate 创建执行器实例
type DriverCreate func() Driver

type driverWithHeight struct {
	create DriverCreate
	height int64
}

var (
	mu                 sync.RWMutex
	registedExecDriver = make(map[string]*driverWithHeight)
	execAddressNameMap = make(map[string]string)
)

// Register 注册执行器, 从 height 开始生效. 重复注册时覆盖, 子配置可能不同
func Register(name string, create DriverCreate, height int64) {
	if create == nil {
		panic("Execute: Register driver is nil")
	}
	mu.Lock()
	defer mu.Unlock()
	if _, dup := registedExecDriver[name]; dup {
		elog.Debug("Register again", "driver", name)
	}
	registedExecDriver[name] = &driverWithHeight{
		create: create,
		height: height,
	}
	execAddressNameMap[ExecAddress(name)] = name
}

// LoadDriver 加载执行器, height 为 -1 时不检查高度
func LoadDriver(name string, height int64) (Driver, error) {
	mu.RLock()
	c, ok := registedExecDriver[name]
	mu.RUnlock()
	if !ok {
		elog.Debug("LoadDriver", "driver", name)
		return nil, types.ErrExecNotFound
	}
	if height >= c.height || height == -1 {
		return c.create(), nil
	}
	return nil, types.ErrExecNotFound
}

// ExecAddress 执行器地址
func ExecAddress(name string) string {
	return address.ExecAddress(name)
}

// IsDriverAddress 地址是否是已注册执行器的地址
func IsDriverAddress(addr string) bool {
	mu.RLock()
	defer mu.RUnlock()
	_, ok := execAddressNameMap[addr]
	return ok
}

// DriverNames 已注册的执行器名称
func DriverNames() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(registedExecDriver))
	for name := range registedExecDriver {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// HeightIndexStr 本地索引使用的交易位置字符串
func HeightIndexStr(height, index int64) string {
	return types.HeightIndexStr(height, index)
}
