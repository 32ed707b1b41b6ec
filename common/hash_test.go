// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHex(t *testing.T) {
	assert.Equal(t, "", ToHex(nil))
	assert.Equal(t, "0x0a0b", ToHex([]byte{10, 11}))

	for _, s := range []string{"0x0a0b", "0X0a0b", "0a0b", "a0b"} {
		b, err := FromHex(s)
		require.NoError(t, err, s)
		assert.Equal(t, []byte{10, 11}, b, s)
	}
	b, err := FromHex("")
	require.NoError(t, err)
	assert.Empty(t, b)
	_, err = FromHex("0xzz")
	assert.Error(t, err)
}

func TestHash(t *testing.T) {
	assert.Equal(t, "0xe3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855", ToHex(Sha256(nil)))
	assert.Equal(t, "0xc5d2460186f7233c927e7db2dcc703c0e500b653ca82273b7bfad8045d85a470", ToHex(Keccak256()))
	assert.Equal(t, Keccak256([]byte("ab")), Keccak256([]byte("a"), []byte("b")))
	assert.Equal(t, Sha256(Sha256([]byte("x"))), Sha2Sum([]byte("x")))
	assert.Len(t, Rimp160AfterSha256([]byte("x")), 20)

	src := []byte{1, 2}
	dst := CopyBytes(src)
	dst[0] = 9
	assert.Equal(t, byte(1), src[0])
	assert.Nil(t, CopyBytes(nil))
}
