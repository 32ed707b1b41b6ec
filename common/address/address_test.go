// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package address

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPubkeyToAddress(t *testing.T) {
	pubkey := "024a17b0c6eb3143839482faa7e917c9b90a8cfe5008dff748789b8cea1a3d08d5"
	b, err := hex.DecodeString(pubkey)
	require.NoError(t, err)
	addr := PubKeyToAddress(b)
	require.NoError(t, CheckAddress(addr.String()))

	addr2, err := NewAddrFromString(addr.String())
	require.NoError(t, err)
	assert.Equal(t, addr.Hash160, addr2.Hash160)
}

func TestExecAddress(t *testing.T) {
	a1 := ExecAddress("rps")
	a2 := ExecAddress("rps")
	assert.Equal(t, a1, a2)
	assert.NotEqual(t, a1, ExecAddress("token"))
	require.NoError(t, CheckAddress(a1))
}

func TestLabelAddress(t *testing.T) {
	alice := LabelAddress("alice")
	bob := LabelAddress("bob")
	assert.NotEqual(t, alice, bob)
	assert.Equal(t, alice, LabelAddress("alice"))
	require.NoError(t, CheckAddress(alice))
}

func TestCheckAddress(t *testing.T) {
	addr := LabelAddress("carol")
	bad := []byte(addr)
	if bad[5] == '2' {
		bad[5] = '3'
	} else {
		bad[5] = '2'
	}
	assert.Error(t, CheckAddress(string(bad)))
	assert.Error(t, CheckAddress(""))
	assert.Error(t, CheckAddress("0OIl"))
}

func BenchmarkExecAddress(b *testing.B) {
	for i := 0; i < b.N; i++ {
		ExecAddress("rps")
	}
}
