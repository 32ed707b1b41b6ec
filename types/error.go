// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"errors"
)

// 错误分类, 具体错误通过 errors.Is 归入其中一类
var (
	// ErrProtocolViolation 在错误的状态下调用
	ErrProtocolViolation = errors.New("ErrProtocolViolation")
	// ErrValidation 参数格式或者哈希校验失败
	ErrValidation = errors.New("ErrValidation")
	// ErrFunds 押金, 授权额度或者转账失败
	ErrFunds = errors.New("ErrFunds")
)

// Error 带分类的错误, Error() 返回原始的错误信息
type Error struct {
	kind error
	msg  string
}

// NewError 创建一个属于 kind 分类的错误
func NewError(kind error, msg string) error {
	return &Error{kind: kind, msg: msg}
}

func (e *Error) Error() string {
	return e.msg
}

// Unwrap 返回错误分类
func (e *Error) Unwrap() error {
	return e.kind
}

// Kind 错误分类
func (e *Error) Kind() error {
	return e.kind
}

// 系统错误
var (
	ErrNotFound           = errors.New("ErrNotFound")
	ErrActionNotSupport   = errors.New("ErrActionNotSupport")
	ErrQueryNotSupport    = errors.New("ErrQueryNotSupport")
	ErrExecNotFound       = errors.New("ErrExecNotFound")
	ErrExecNameNotAllow   = errors.New("ErrExecNameNotAllow")
	ErrSymbolNameNotAllow = errors.New("ErrSymbolNameNotAllow")
	ErrInvalidParam       = errors.New("ErrInvalidParam")
	ErrInvalidAddress     = errors.New("ErrInvalidAddress")
	ErrDecode             = errors.New("ErrDecode")
	ErrTxExist            = errors.New("ErrTxExist")
	ErrEmpty              = errors.New("ErrEmpty")
	ErrNoPermission       = errors.New("ErrNoPermission")

	ErrAmount         = NewError(ErrFunds, "ErrAmount")
	ErrNoBalance      = NewError(ErrFunds, "ErrNoBalance")
	ErrSendSameToRecv = NewError(ErrValidation, "ErrSendSameToRecv")
)
