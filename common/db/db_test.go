// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package db

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDBs(t *testing.T) map[string]DB {
	dbs := make(map[string]DB)
	for _, backend := range []string{MemDBBackendStr, GoLevelDBBackendStr, GoBadgerDBBackendStr} {
		db, err := NewDB("test", backend, t.TempDir(), 16)
		require.NoError(t, err, backend)
		dbs[backend] = db
	}
	t.Cleanup(func() {
		for _, db := range dbs {
			db.Close()
		}
	})
	return dbs
}

func TestNewDBUnknownBackend(t *testing.T) {
	_, err := NewDB("test", "cleveldb", t.TempDir(), 16)
	assert.Error(t, err)
}

func TestGetSetDelete(t *testing.T) {
	for name, db := range newTestDBs(t) {
		_, err := db.Get([]byte("a"))
		assert.Equal(t, ErrNotFoundInDb, err, name)

		require.NoError(t, db.Set([]byte("a"), []byte("1")), name)
		require.NoError(t, db.SetSync([]byte("b"), []byte("2")), name)
		v, err := db.Get([]byte("a"))
		require.NoError(t, err, name)
		assert.Equal(t, []byte("1"), v, name)

		require.NoError(t, db.Delete([]byte("a")), name)
		_, err = db.Get([]byte("a"))
		assert.Equal(t, ErrNotFoundInDb, err, name)
		require.NoError(t, db.DeleteSync([]byte("b")), name)
		_, err = db.Get([]byte("b"))
		assert.Equal(t, ErrNotFoundInDb, err, name)
	}
}

func TestBatch(t *testing.T) {
	for name, db := range newTestDBs(t) {
		require.NoError(t, db.Set([]byte("old"), []byte("x")), name)
		batch := db.NewBatch(true)
		batch.Set([]byte("k1"), []byte("v1"))
		batch.Set([]byte("k2"), []byte("v2"))
		batch.Delete([]byte("old"))
		assert.True(t, batch.ValueSize() > 0, name)

		// 提交前不可见
		_, err := db.Get([]byte("k1"))
		assert.Equal(t, ErrNotFoundInDb, err, name)

		require.NoError(t, batch.Write(), name)
		v, err := db.Get([]byte("k2"))
		require.NoError(t, err, name)
		assert.Equal(t, []byte("v2"), v, name)
		_, err = db.Get([]byte("old"))
		assert.Equal(t, ErrNotFoundInDb, err, name)

		batch.Reset()
		assert.Equal(t, 0, batch.ValueSize(), name)
	}
}

func fillPrefix(t *testing.T, db DB) {
	for i := 1; i <= 5; i++ {
		key := fmt.Sprintf("round:%018d", i)
		require.NoError(t, db.Set([]byte(key), []byte(fmt.Sprint(i))))
	}
	// 前缀之外的 key
	require.NoError(t, db.Set([]byte("rounc:1"), []byte("before")))
	require.NoError(t, db.Set([]byte("roune:1"), []byte("after")))
}

func TestIterator(t *testing.T) {
	for name, db := range newTestDBs(t) {
		fillPrefix(t, db)

		it := db.Iterator([]byte("round:"), false)
		var got []string
		for it.Rewind(); it.Valid(); it.Next() {
			got = append(got, string(it.Value()))
		}
		it.Close()
		assert.Equal(t, []string{"1", "2", "3", "4", "5"}, got, name)

		it = db.Iterator([]byte("round:"), true)
		got = nil
		for it.Rewind(); it.Valid(); it.Next() {
			got = append(got, string(it.ValueCopy()))
		}
		it.Close()
		assert.Equal(t, []string{"5", "4", "3", "2", "1"}, got, name)

		it = db.Iterator([]byte("round:"), true)
		assert.True(t, it.Seek([]byte(fmt.Sprintf("round:%018d", 3))), name)
		assert.Equal(t, "3", string(it.Value()), name)
		assert.True(t, it.Seek([]byte(fmt.Sprintf("round:%018dx", 3))), name)
		assert.Equal(t, "3", string(it.Value()), name)
		assert.NoError(t, it.Error(), name)
		it.Close()
	}
}
