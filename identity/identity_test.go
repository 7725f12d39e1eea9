// SPDX-License-Identifier: LGPL-3.0-or-later

package identity

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSignVerifyRoundTrip(t *testing.T) {
	id, err := Generate()
	require.NoError(t, err)

	s := Signable{
		ID:        "msg-1",
		From:      id.PeerID(),
		To:        "peer-2",
		Type:      "greet",
		Payload:   map[string]interface{}{"hello": "world"},
		Timestamp: time.Now().UnixMilli(),
	}

	sig, pub, err := id.Sign(s)
	require.NoError(t, err)
	require.NoError(t, id.Verify(s, sig, pub))
}

func TestVerifyRejectsPeerIDMismatch(t *testing.T) {
	id, err := Generate()
	require.NoError(t, err)

	s := Signable{ID: "m", From: "someone-else", To: "x", Type: "t", Timestamp: time.Now().UnixMilli()}
	sig, pub, err := id.Sign(s)
	require.NoError(t, err)
	err = id.Verify(s, sig, pub)
	require.Error(t, err)
}

func TestVerifyRejectsTamperedPayload(t *testing.T) {
	id, err := Generate()
	require.NoError(t, err)

	s := Signable{ID: "m", From: id.PeerID(), To: "x", Type: "t", Payload: "a", Timestamp: time.Now().UnixMilli()}
	sig, pub, err := id.Sign(s)
	require.NoError(t, err)

	s.Payload = "b"
	require.Error(t, id.Verify(s, sig, pub))
}

func TestIsMessageFresh(t *testing.T) {
	now := time.Now()
	require.True(t, IsMessageFresh(now.UnixMilli(), now, 60*time.Second, 5*time.Second))
	require.False(t, IsMessageFresh(now.Add(-2*time.Minute).UnixMilli(), now, 60*time.Second, 5*time.Second))
	require.True(t, IsMessageFresh(now.Add(3*time.Second).UnixMilli(), now, 60*time.Second, 5*time.Second))
	require.False(t, IsMessageFresh(now.Add(10*time.Second).UnixMilli(), now, 60*time.Second, 5*time.Second))
}

func TestLoadOrGeneratePersists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "node.json")

	id1, err := LoadOrGenerate(path, true)
	require.NoError(t, err)

	id2, err := LoadOrGenerate(path, false)
	require.NoError(t, err)
	require.Equal(t, id1.PeerID(), id2.PeerID())
}

func TestLoadMissingWithoutGenerateFails(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "missing.json")
	_, err := LoadOrGenerate(path, false)
	require.Error(t, err)
}

func TestCanonicalizeSortsKeys(t *testing.T) {
	a, err := Canonicalize(map[string]interface{}{"b": 1, "a": 2})
	require.NoError(t, err)
	require.Equal(t, `{"a":2,"b":1}`, string(a))
}
