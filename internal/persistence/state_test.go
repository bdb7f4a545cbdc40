package persistence

import (
	"bytes"
	"net/netip"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Hash(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		data []byte
		hash uint64
	}{
		"empty": {},
		"config": {
			data: []byte("[general]\nupdate_rate = 300\n"),
			hash: 0x281a420a9c1b672c,
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			hash := Hash(testCase.data)

			assert.Equal(t, testCase.hash, hash)
		})
	}
}

func Test_State_roundTrip(t *testing.T) {
	t.Parallel()

	now := time.Unix(1700000000, 0)
	state := New([]byte("hello world, please hash me"), now)
	state.Addresses["hello"] = netip.MustParseAddr("192.168.100.200")
	state.Addresses["你好"] = netip.MustParseAddr("172.19.10.20")
	state.Addresses["world"] = netip.MustParseAddr("2001:db8:1234:4567:cafe:babe:dead:beef")
	state.Addresses["世界"] = netip.MustParseAddr("2001:db8:1111:2222:1337:ff1:ce00:4b1d")

	buffer := bytes.NewBuffer(nil)
	err := state.Encode(buffer)
	require.NoError(t, err)

	decoded, err := Decode(buffer)
	require.NoError(t, err)

	assert.Equal(t, state, decoded)
}

func Test_State_Encode(t *testing.T) {
	t.Parallel()

	state := &State{
		Version:    1,
		Timestamp:  0x0102,
		ConfigHash: 0x0a0b,
		Addresses: map[string]netip.Addr{
			"b": netip.MustParseAddr("::1"),
			"a": netip.MustParseAddr("1.2.3.4"),
		},
	}

	buffer := bytes.NewBuffer(nil)
	err := state.Encode(buffer)
	require.NoError(t, err)

	expected := []byte{
		'd', 'y', 'n', 'n', 'e', 'r', 's', 0,
		1, 0, 0, 0,
		2, 1, 0, 0, 0, 0, 0, 0,
		0x0b, 0x0a, 0, 0, 0, 0, 0, 0,
		1, 0, 0, 0, 'a', 0, 4, 3, 2, 1,
		1, 0, 0, 0, 'b', 1, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0,
	}
	assert.Equal(t, expected, buffer.Bytes())
}

func Test_State_Encode_invalidAddress(t *testing.T) {
	t.Parallel()

	state := &State{
		Addresses: map[string]netip.Addr{"x": {}},
	}

	err := state.Encode(bytes.NewBuffer(nil))

	assert.ErrorIs(t, err, ErrAddressInvalid)
	assert.EqualError(t, err, "address is not valid: for x")
}

func Test_Decode(t *testing.T) {
	t.Parallel()

	header := []byte{
		'd', 'y', 'n', 'n', 'e', 'r', 's', 0,
		1, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0,
	}
	withHeader := func(b ...byte) []byte {
		return append(append([]byte(nil), header...), b...)
	}

	testCases := map[string]struct {
		data       []byte
		state      *State
		errWrapped error
		errMessage string
	}{
		"empty": {
			errWrapped: ErrUnexpectedEOF,
			errMessage: "unexpected end of persistent state file: reading magic",
		},
		"bad_magic": {
			data:       []byte{'d', 'y', 'n', 'o', 'e', 'r', 's', 0},
			errWrapped: ErrMagicNotValid,
			errMessage: `unexpected file format: magic is not valid: "dynoers\x00"`,
		},
		"version_too_new": {
			data:       []byte{'d', 'y', 'n', 'n', 'e', 'r', 's', 0, 2, 0, 0, 0},
			errWrapped: ErrVersionTooNew,
			errMessage: "persistent state file is too new: " +
				"version 2 is greater than supported version 1",
		},
		"truncated_header": {
			data:       header[:16],
			errWrapped: ErrUnexpectedEOF,
			errMessage: "unexpected end of persistent state file: reading update timestamp",
		},
		"no_entries_no_terminator": {
			data: header,
			state: &State{
				Version:   1,
				Addresses: map[string]netip.Addr{},
			},
		},
		"truncated_name_length": {
			data:       withHeader(1, 0),
			errWrapped: ErrUnexpectedEOF,
			errMessage: "unexpected end of persistent state file: reading name length",
		},
		"truncated_name": {
			data:       withHeader(3, 0, 0, 0, 'a'),
			errWrapped: ErrUnexpectedEOF,
			errMessage: "unexpected end of persistent state file: reading name",
		},
		"name_length_too_large": {
			data:       withHeader(0xff, 0xff, 0xff, 0xff, 'a', 'b'),
			errWrapped: ErrNameTooLong,
			errMessage: "IP name is too long: 4294967295 bytes exceeds the maximum of 65536 bytes",
		},
		"name_not_utf8": {
			data:       withHeader(1, 0, 0, 0, 0xff),
			errWrapped: ErrNameNotUTF8,
			errMessage: `IP name is not valid UTF-8: "\xff"`,
		},
		"unknown_ip_type": {
			data:       withHeader(1, 0, 0, 0, 'a', 7),
			errWrapped: ErrIPTypeUnknown,
			errMessage: "IP type is unknown: 7 for a",
		},
		"truncated_address": {
			data:       withHeader(1, 0, 0, 0, 'a', 1, 1, 2, 3),
			errWrapped: ErrUnexpectedEOF,
			errMessage: "unexpected end of persistent state file: reading address of a",
		},
		"entries_after_terminator_ignored": {
			data: withHeader(1, 0, 0, 0, 'a', 0, 4, 3, 2, 1, 0, 0, 0, 0, 0xff),
			state: &State{
				Version: 1,
				Addresses: map[string]netip.Addr{
					"a": netip.MustParseAddr("1.2.3.4"),
				},
			},
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			state, err := Decode(bytes.NewReader(testCase.data))

			assert.ErrorIs(t, err, testCase.errWrapped)
			if testCase.errWrapped != nil {
				assert.EqualError(t, err, testCase.errMessage)
			}
			assert.Equal(t, testCase.state, state)
		})
	}
}

func Test_State_ValidateAgainst(t *testing.T) {
	t.Parallel()

	config := []byte("[general]\n")
	createdAt := time.Unix(1000, 0)
	validatedAt := time.Unix(2000, 0)

	state := New(config, createdAt)
	state.Addresses["home"] = netip.MustParseAddr("1.2.3.4")

	valid := state.ValidateAgainst(config, validatedAt)
	assert.True(t, valid)
	assert.Equal(t, uint64(1000), state.Timestamp)
	assert.Len(t, state.Addresses, 1)

	changed := []byte("[general]\nshell = \"/bin/sh\"\n")
	valid = state.ValidateAgainst(changed, validatedAt)
	assert.False(t, valid)
	assert.Equal(t, uint64(2000), state.Timestamp)
	assert.Equal(t, Hash(changed), state.ConfigHash)
	assert.Empty(t, state.Addresses)
}
