// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"reflect"
	"sync"
)

// ExecutorType 执行器的交易类型描述
type ExecutorType interface {
	GetName() string
	// GetPayload 返回 action 消息的空实例
	GetPayload() Message
	// GetTypeMap action 名称到 action 类型的映射, 名称与 action 消息中的字段名一致
	GetTypeMap() map[string]int32
	GetLogMap() map[int64]*LogInfo
	DecodePayloadValue(tx *Transaction) (string, reflect.Value, error)
	ActionName(tx *Transaction) string
}

// LogInfo 日志类型信息
type LogInfo struct {
	Ty   reflect.Type
	Name string
}

type actionTy interface {
	GetTy() int32
}

// ExecTypeBase 执行器类型的基础实现
type ExecTypeBase struct {
	child ExecutorType
	once  sync.Once
	names map[int32]string
}

// SetChild 设置具体的执行器类型
func (base *ExecTypeBase) SetChild(child ExecutorType) {
	base.child = child
}

func (base *ExecTypeBase) actionNames() map[int32]string {
	base.once.Do(func() {
		base.names = make(map[int32]string)
		for name, ty := range base.child.GetTypeMap() {
			base.names[ty] = name
		}
	})
	return base.names
}

// GetLogMap 默认没有日志
func (base *ExecTypeBase) GetLogMap() map[int64]*LogInfo {
	return nil
}

// DecodePayloadValue 解析交易 payload, 返回 action 名称以及对应字段的值
func (base *ExecTypeBase) DecodePayloadValue(tx *Transaction) (string, reflect.Value, error) {
	payload := base.child.GetPayload()
	if payload == nil {
		return "", reflect.Value{}, ErrActionNotSupport
	}
	if err := Decode(tx.GetPayload(), payload); err != nil {
		return "", reflect.Value{}, ErrDecode
	}
	action, ok := payload.(actionTy)
	if !ok {
		return "", reflect.Value{}, ErrActionNotSupport
	}
	name, ok := base.actionNames()[action.GetTy()]
	if !ok {
		return "", reflect.Value{}, ErrActionNotSupport
	}
	field := reflect.ValueOf(payload).Elem().FieldByName(name)
	if !field.IsValid() || field.Kind() != reflect.Ptr || field.IsNil() {
		return "", reflect.Value{}, ErrActionNotSupport
	}
	return name, field, nil
}

// ActionName 交易的 action 名称, 解析失败时为 unknown
func (base *ExecTypeBase) ActionName(tx *Transaction) string {
	name, _, err := base.DecodePayloadValue(tx)
	if err != nil {
		return "unknown"
	}
	return name
}

var executorTypes = make(map[string]ExecutorType)

// RegistorExecutor 注册执行器类型, 命令行和执行器共用
func RegistorExecutor(name string, ety ExecutorType) {
	if _, ok := executorTypes[name]; ok {
		panic("RegistorExecutor dup name " + name)
	}
	executorTypes[name] = ety
}

// LoadExecutorType 获取执行器类型
func LoadExecutorType(name string) ExecutorType {
	return executorTypes[name]
}

// SystemLog 账户相关的系统日志, 所有执行器共用
var SystemLog = map[int64]*LogInfo{
	TyLogErr:             {reflect.TypeOf(ReceiptLogErr{}), "LogErr"},
	TyLogFee:             {reflect.TypeOf(ReceiptAccountTransfer{}), "LogFee"},
	TyLogTransfer:        {reflect.TypeOf(ReceiptAccountTransfer{}), "LogTransfer"},
	TyLogGenesis:         {reflect.TypeOf(ReceiptAccountTransfer{}), "LogGenesis"},
	TyLogDeposit:         {reflect.TypeOf(ReceiptAccountTransfer{}), "LogDeposit"},
	TyLogExecTransfer:    {reflect.TypeOf(ReceiptExecAccountTransfer{}), "LogExecTransfer"},
	TyLogExecWithdraw:    {reflect.TypeOf(ReceiptExecAccountTransfer{}), "LogExecWithdraw"},
	TyLogExecDeposit:     {reflect.TypeOf(ReceiptExecAccountTransfer{}), "LogExecDeposit"},
	TyLogExecFrozen:      {reflect.TypeOf(ReceiptExecAccountTransfer{}), "LogExecFrozen"},
	TyLogExecActive:      {reflect.TypeOf(ReceiptExecAccountTransfer{}), "LogExecActive"},
	TyLogGenesisTransfer: {reflect.TypeOf(ReceiptAccountTransfer{}), "LogGenesisTransfer"},
	TyLogGenesisDeposit:  {reflect.TypeOf(ReceiptExecAccountTransfer{}), "LogGenesisDeposit"},
}

// DecodeLog 按执行器的日志类型解析日志, 返回日志名称和解析后的消息
func DecodeLog(execer string, log *ReceiptLog) (string, Message, error) {
	info, ok := SystemLog[int64(log.Ty)]
	if !ok {
		if ety := LoadExecutorType(execer); ety != nil {
			info, ok = ety.GetLogMap()[int64(log.Ty)]
		}
	}
	if !ok {
		return "", nil, ErrNotFound
	}
	msg, ok := reflect.New(info.Ty).Interface().(Message)
	if !ok {
		return "", nil, ErrDecode
	}
	if err := Decode(log.Log, msg); err != nil {
		return "", nil, err
	}
	return info.Name, msg, nil
}
