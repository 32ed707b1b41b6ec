// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dapp 执行器驱动的公共接口和基础实现
package dapp

//store package store the world - state data
import (
	"reflect"

	"github.com/33cn/rps/account"
	dbm "github.com/33cn/rps/common/db"
	"github.com/33cn/rps/types"
	log "github.com/inconshreveable/log15"
	"github.com/pkg/errors"
)

var blog = log.New("module", "execs.base")

// ErrMethodReturnType 执行器方法的返回值类型错误
var ErrMethodReturnType = errors.New("ErrMethodReturnType")

// Driver 执行器驱动接口
type Driver interface {
	SetStateDB(dbm.KV)
	GetStateDB() dbm.KV
	SetLocalDB(dbm.KVDB)
	GetLocalDB() dbm.KVDB
	GetCoinsAccount() *account.DB
	//驱动的名字，这个名称是固定的
	GetDriverName() string
	GetName() string
	SetEnv(height, blocktime int64)
	GetHeight() int64
	GetBlockTime() int64
	CheckTx(tx *types.Transaction, index int) error
	Exec(tx *types.Transaction, index int) (*types.Receipt, error)
	ExecLocal(tx *types.Transaction, receipt *types.ReceiptData, index int) (*types.LocalDBSet, error)
	Query(funcName string, params []byte) (types.Message, error)
	GetExecutorType() types.ExecutorType
	GetFuncMap() map[string]reflect.Method
}

// DriverBase 执行器驱动的基础实现, 按照 action 名称分发到 Exec_xxx, ExecLocal_xxx, Query_xxx
type DriverBase struct {
	statedb      dbm.KV
	localdb      dbm.KVDB
	coinsaccount *account.DB
	height       int64
	blocktime    int64
	child        Driver
	childValue   reflect.Value
	funcMap      map[string]reflect.Method
	ety          types.ExecutorType
}

// SetChild 设置具体的执行器
func (d *DriverBase) SetChild(e Driver) {
	d.child = e
	d.childValue = reflect.ValueOf(e)
	d.funcMap = ListMethod(e)
}

// SetExecutorType 设置执行器类型
func (d *DriverBase) SetExecutorType(e types.ExecutorType) {
	d.ety = e
}

// GetExecutorType 获取执行器类型
func (d *DriverBase) GetExecutorType() types.ExecutorType {
	return d.ety
}

// GetFuncMap 执行器的方法列表
func (d *DriverBase) GetFuncMap() map[string]reflect.Method {
	return d.funcMap
}

// GetName 执行器名称
func (d *DriverBase) GetName() string {
	return d.child.GetDriverName()
}

// SetEnv 设置区块高度以及区块时间
func (d *DriverBase) SetEnv(height, blocktime int64) {
	d.height = height
	d.blocktime = blocktime
}

// GetHeight 区块高度
func (d *DriverBase) GetHeight() int64 {
	return d.height
}

// GetBlockTime 区块时间
func (d *DriverBase) GetBlockTime() int64 {
	return d.blocktime
}

// SetStateDB 设置状态数据库, 同时重置原生币账户
func (d *DriverBase) SetStateDB(db dbm.KV) {
	d.statedb = db
	if d.coinsaccount == nil {
		d.coinsaccount = account.NewCoinsAccount(db)
		return
	}
	d.coinsaccount.SetDB(db)
}

// GetStateDB 状态数据库
func (d *DriverBase) GetStateDB() dbm.KV {
	return d.statedb
}

// SetLocalDB 设置本地数据库
func (d *DriverBase) SetLocalDB(db dbm.KVDB) {
	d.localdb = db
}

// GetLocalDB 本地数据库
func (d *DriverBase) GetLocalDB() dbm.KVDB {
	return d.localdb
}

// GetCoinsAccount 原生币账户
func (d *DriverBase) GetCoinsAccount() *account.DB {
	return d.coinsaccount
}

// CheckTx 默认不做检查
func (d *DriverBase) CheckTx(tx *types.Transaction, index int) error {
	return nil
}

// Exec 调用 Exec_ + action 名称
func (d *DriverBase) Exec(tx *types.Transaction, index int) (*types.Receipt, error) {
	if d.ety == nil {
		return nil, types.ErrActionNotSupport
	}
	name, value, err := d.ety.DecodePayloadValue(tx)
	if err != nil {
		return nil, err
	}
	method, ok := d.funcMap["Exec_"+name]
	if !ok {
		blog.Error("Exec", "execer", string(tx.Execer), "action", name, "err", "method not found")
		return nil, types.ErrActionNotSupport
	}
	valueret := method.Func.Call([]reflect.Value{d.childValue, value, reflect.ValueOf(tx), reflect.ValueOf(index)})
	if len(valueret) != 2 {
		return nil, ErrMethodReturnType
	}
	var receipt *types.Receipt
	if r1 := valueret[0].Interface(); r1 != nil {
		if receipt, ok = r1.(*types.Receipt); !ok {
			return nil, ErrMethodReturnType
		}
	}
	if r2 := valueret[1].Interface(); r2 != nil {
		if err, ok := r2.(error); ok {
			return nil, err
		}
		return nil, ErrMethodReturnType
	}
	return receipt, nil
}

// ExecLocal 调用 ExecLocal_ + action 名称, 只处理执行成功的交易
func (d *DriverBase) ExecLocal(tx *types.Transaction, receipt *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	set := &types.LocalDBSet{}
	if receipt.GetTy() != types.ExecOk || d.ety == nil {
		return set, nil
	}
	name, value, err := d.ety.DecodePayloadValue(tx)
	if err != nil {
		return set, nil
	}
	method, ok := d.funcMap["ExecLocal_"+name]
	if !ok {
		return set, nil
	}
	valueret := method.Func.Call([]reflect.Value{d.childValue, value, reflect.ValueOf(tx), reflect.ValueOf(receipt), reflect.ValueOf(index)})
	if len(valueret) != 2 {
		return nil, ErrMethodReturnType
	}
	if r2 := valueret[1].Interface(); r2 != nil {
		if err, ok := r2.(error); ok {
			return nil, err
		}
		return nil, ErrMethodReturnType
	}
	if r1 := valueret[0].Interface(); r1 != nil {
		lset, ok := r1.(*types.LocalDBSet)
		if !ok {
			return nil, ErrMethodReturnType
		}
		set.KV = append(set.KV, lset.GetKV()...)
	}
	return set, nil
}

// Query 调用 Query_ + funcName, 参数类型由方法签名决定
func (d *DriverBase) Query(funcName string, params []byte) (types.Message, error) {
	method, ok := d.funcMap["Query_"+funcName]
	if !ok {
		blog.Debug("Query", "funcName", funcName, "err", types.ErrQueryNotSupport)
		return nil, types.ErrQueryNotSupport
	}
	ptype := method.Type.In(1)
	if ptype.Kind() != reflect.Ptr {
		return nil, ErrMethodReturnType
	}
	param := reflect.New(ptype.Elem())
	msg, ok := param.Interface().(types.Message)
	if !ok {
		return nil, ErrMethodReturnType
	}
	if err := types.Decode(params, msg); err != nil {
		return nil, types.ErrDecode
	}
	valueret := method.Func.Call([]reflect.Value{d.childValue, param})
	if len(valueret) != 2 {
		return nil, ErrMethodReturnType
	}
	if r2 := valueret[1].Interface(); r2 != nil {
		if err, ok := r2.(error); ok {
			return nil, err
		}
		return nil, ErrMethodReturnType
	}
	if r1 := valueret[0].Interface(); r1 != nil {
		if reply, ok := r1.(types.Message); ok {
			return reply, nil
		}
		return nil, ErrMethodReturnType
	}
	return nil, types.ErrNotFound
}

// ListMethod 列出对象的所有导出方法
func ListMethod(action interface{}) map[string]reflect.Method {
	typ := reflect.TypeOf(action)
	methods := make(map[string]reflect.Method)
	for m := 0; m < typ.NumMethod(); m++ {
		method := typ.Method(m)
		methods[method.Name] = method
	}
	return methods
}
