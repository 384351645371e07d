// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account_test

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/itemledger/account"
	"github.com/bitmark-inc/itemledger/fault"
)

type accountTest struct {
	testnet       bool
	publicKey     []byte
	base58Account string
}

// Valid account
var testAccount = []accountTest{
	{
		testnet:       false,
		publicKey:     decodeHex("60b3c6e20cfff7091a86488b1656b96ec0a2f69907e2c035175918f42c37d72e"),
		base58Account: "anF8SWxSRY5vnN3Bbyz9buRYW1hfCAAZxfbv8Fw9SFXaktvLCj",
	},
	{
		testnet:       true,
		publicKey:     decodeHex("731114267f15754a5fce4aaed8380b28aff25af7b378b011d92ef7b3f08910db"),
		base58Account: "eopaSeB7uiSVMdAmTrijq3W2MCWA5KHZrZvm5QLFGRVd3oWNe2",
	},
	{
		testnet:       true,
		publicKey:     decodeHex("cb6ff605f79deba3deb0c5122e40359a258481c151dffc176a2da5e8bc87cd2e"),
		base58Account: "fUjtNvmUJn7yJ7PVP7NT2FZbKDrudFxLVBHkwLJFgKWmGsPNVi",
	},
	{
		testnet:       true,
		publicKey:     decodeHex("0000000000000000000000000000000000000000000000000000000000000000"),
		base58Account: "dw9MQXcC5rJZb3QE1nz86PiQAheMP1dx9M3dr52tT8NNs14m33",
	},
}

type invalid struct {
	str string
	err error
}

// Invalid account
var testInvalidAccountFromBase58 = []invalid{
	{"3gLJjLSociTmf4kgL3ztUK;tgADFvg9yjXt1jFbEx9KgpEEAFn", fault.ErrCannotDecodeAccount}, // invalid base58 string
	{"anF8SWxSRY5vnN3Bbyz9buRYW1hfCAAZxfbv8Fw9SFXaktvLDj", fault.ErrChecksumMismatch},    // checksum mismatch
	{"YqVxD4vazrrnxnLH2MzCHJedPPz1VKHnKbVfya39nF96ABAYes", fault.ErrNotPublicKey},        // private key
	{"", fault.ErrCannotDecodeAccount},                                                    // empty
}

func TestValidBytes(t *testing.T) {
	for index, test := range testAccount {
		testnet := 0x00
		if test.testnet {
			testnet = 0x02
		}

		buffer := []byte{byte(account.ED25519<<4 | 0x01 | testnet)}
		buffer = append(buffer, test.publicKey...)
		acc, err := account.FromBytes(buffer)
		if nil != err {
			t.Errorf("%d: create account from bytes failed: %s", index, err)
			continue
		}
		if !bytes.Equal(buffer, acc.Bytes()) {
			t.Errorf("%d: account bytes: %x does not match: %x", index, acc.Bytes(), buffer)
		}
		if account.BytesLength != len(acc.Bytes()) {
			t.Errorf("%d: account bytes length: %d  expected: %d", index, len(acc.Bytes()), account.BytesLength)
		}
	}
}

// From valid base58 string to account
func TestValidBase58(t *testing.T) {
	for index, test := range testAccount {
		acc, err := account.FromBase58(test.base58Account)
		if nil != err {
			t.Errorf("%d: from base58 error: %s", index, err)
			continue
		}
		if acc.IsTesting() != test.testnet {
			t.Errorf("%d: from base58 testnet: %t  expected: %t", index, acc.IsTesting(), test.testnet)
		}
		if !bytes.Equal(acc.PublicKeyBytes(), test.publicKey) {
			t.Errorf("%d: from base58 pubkey: %x  expected %x", index, acc.PublicKeyBytes(), test.publicKey)
		}
		if acc.String() != test.base58Account {
			t.Errorf("%d: to base58: got: %s  expected %s", index, acc, test.base58Account)
		}

		j := `"` + test.base58Account + `"`
		var a account.Account
		err = json.Unmarshal([]byte(j), &a)
		if nil != err {
			t.Errorf("%d: from JSON string error: %s", index, err)
			continue
		}

		buffer, _ := json.Marshal(a)
		if j != string(buffer) {
			t.Errorf("%d: marshal JSON:failed: expected %s  actual: %s", index, j, buffer)
		}
	}
}

// Test invalid account parsing
func TestInvalidBase58(t *testing.T) {
	for index, test := range testInvalidAccountFromBase58 {
		_, err := account.FromBase58(test.str)
		if test.err != err {
			t.Errorf("invalid base58 string: %d failed: expected: %q actual: %q", index, test.err, err)
		}
	}
}

func TestInvalidBytes(t *testing.T) {
	key := decodeHex("60b3c6e20cfff7091a86488b1656b96ec0a2f69907e2c035175918f42c37d72e")

	_, err := account.FromBytes(key)
	assert.Equal(t, fault.ErrInvalidKeyLength, err, "short buffer accepted")

	_, err = account.FromBytes(append([]byte{0x10}, key...))
	assert.Equal(t, fault.ErrNotPublicKey, err, "private variant accepted")

	_, err = account.FromBytes(append([]byte{0x21}, key...))
	assert.Equal(t, fault.ErrInvalidKeyType, err, "unknown algorithm accepted")

	_, err = account.FromPublicKey(key[:31], false)
	assert.Equal(t, fault.ErrInvalidKeyLength, err, "short public key accepted")
}

func TestEqual(t *testing.T) {
	a, _ := account.FromPublicKey(testAccount[1].publicKey, true)
	b, _ := account.FromBase58(testAccount[1].base58Account)
	c, _ := account.FromPublicKey(testAccount[1].publicKey, false)

	assert.True(t, a.Equal(b), "same account not equal")
	assert.False(t, a.Equal(c), "different network equal")
	assert.False(t, a.Equal(nil), "account equal to nil")

	var none *account.Account
	assert.True(t, none.Equal(nil), "nil not equal to nil")
	assert.Equal(t, account.NoneName, none.String(), "wrong nil text")
}

// Decode the hex string and return []byte.
func decodeHex(hexStr string) []byte {
	b, err := hex.DecodeString(hexStr)
	if nil != err {
		panic(err)
	}
	return b
}
