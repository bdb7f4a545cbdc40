// Package persistence encodes and decodes the state file keeping
// the last known IP addresses between runs.
package persistence

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"hash/crc32"
	"io"
	"net/netip"
	"sort"
	"time"
	"unicode/utf8"
)

// Version is the format version written by this program.
// Files with a greater version are rejected.
const Version uint32 = 1

var magic = [8]byte{'d', 'y', 'n', 'n', 'e', 'r', 's', 0}

const (
	ipTypeV4 byte = 0
	ipTypeV6 byte = 1
)

type State struct {
	Version uint32
	// Timestamp is the unix time in seconds the state was created at.
	Timestamp uint64
	// ConfigHash is the hash of the configuration file content
	// the addresses were obtained with.
	ConfigHash uint64
	Addresses  map[string]netip.Addr
}

// Hash returns a non cryptographic 64 bit hash of the data, made of
// its CRC32 checksum in the high bits and a multiplicative rolling
// hash seeded with the checksum in the low bits.
func Hash(data []byte) uint64 {
	checksum := crc32.ChecksumIEEE(data)
	rolling := checksum
	for _, b := range data {
		rolling = rolling*65539 + uint32(b) //nolint:gomnd
	}
	return uint64(checksum)<<32 | uint64(rolling) //nolint:gomnd
}

func New(config []byte, now time.Time) *State {
	return NewWithHash(Hash(config), now)
}

func NewWithHash(configHash uint64, now time.Time) *State {
	return &State{
		Version:    Version,
		Timestamp:  unixSeconds(now),
		ConfigHash: configHash,
		Addresses:  make(map[string]netip.Addr),
	}
}

func unixSeconds(t time.Time) uint64 {
	seconds := t.Unix()
	if seconds < 0 {
		return 0
	}
	return uint64(seconds)
}

// ValidateAgainst returns true if the state was created with the same
// configuration content. Otherwise, the addresses are discarded, the hash
// and timestamp are refreshed and false is returned.
func (s *State) ValidateAgainst(config []byte, now time.Time) (valid bool) {
	configHash := Hash(config)
	if s.ConfigHash == configHash {
		return true
	}
	s.Addresses = make(map[string]netip.Addr)
	s.ConfigHash = configHash
	s.Timestamp = unixSeconds(now)
	return false
}

// Decode reads a state from the reader. The entries end either with
// a zero length name or at the end of the data.
func Decode(reader io.Reader) (state *State, err error) {
	bufReader := bufio.NewReader(reader)

	var header struct {
		Magic      [8]byte
		Version    uint32
		Timestamp  uint64
		ConfigHash uint64
	}

	err = binary.Read(bufReader, binary.LittleEndian, &header.Magic)
	if err != nil {
		return nil, wrapEOF(err, "magic")
	} else if header.Magic != magic {
		return nil, fmt.Errorf("%w: %q", ErrMagicNotValid, header.Magic[:])
	}

	err = binary.Read(bufReader, binary.LittleEndian, &header.Version)
	if err != nil {
		return nil, wrapEOF(err, "version")
	} else if header.Version > Version {
		return nil, fmt.Errorf("%w: version %d is greater than supported version %d",
			ErrVersionTooNew, header.Version, Version)
	}

	err = binary.Read(bufReader, binary.LittleEndian, &header.Timestamp)
	if err != nil {
		return nil, wrapEOF(err, "update timestamp")
	}

	err = binary.Read(bufReader, binary.LittleEndian, &header.ConfigHash)
	if err != nil {
		return nil, wrapEOF(err, "config hash")
	}

	state = &State{
		Version:    header.Version,
		Timestamp:  header.Timestamp,
		ConfigHash: header.ConfigHash,
		Addresses:  make(map[string]netip.Addr),
	}

	for {
		var nameLength uint32
		err = binary.Read(bufReader, binary.LittleEndian, &nameLength)
		if errors.Is(err, io.EOF) {
			break
		} else if err != nil {
			return nil, wrapEOF(err, "name length")
		} else if nameLength == 0 {
			break
		}

		name, address, err := decodeEntry(bufReader, nameLength)
		if err != nil {
			return nil, err
		}
		state.Addresses[name] = address
	}

	return state, nil
}

func decodeEntry(reader io.Reader, nameLength uint32) (
	name string, address netip.Addr, err error) {
	if nameLength > maxNameLength {
		return "", address, fmt.Errorf("%w: %d bytes exceeds the maximum of %d bytes",
			ErrNameTooLong, nameLength, maxNameLength)
	}
	nameBytes := make([]byte, nameLength)
	_, err = io.ReadFull(reader, nameBytes)
	if err != nil {
		return "", address, wrapEOF(err, "name")
	} else if !utf8.Valid(nameBytes) {
		return "", address, fmt.Errorf("%w: %q", ErrNameNotUTF8, nameBytes)
	}
	name = string(nameBytes)

	var ipType [1]byte
	_, err = io.ReadFull(reader, ipType[:])
	if err != nil {
		return "", address, wrapEOF(err, "IP type of "+name)
	}

	var length int
	switch ipType[0] {
	case ipTypeV4:
		length = net4Length
	case ipTypeV6:
		length = net6Length
	default:
		return "", address, fmt.Errorf("%w: %d for %s", ErrIPTypeUnknown, ipType[0], name)
	}

	raw := make([]byte, length)
	_, err = io.ReadFull(reader, raw)
	if err != nil {
		return "", address, wrapEOF(err, "address of "+name)
	}
	reverse(raw)
	address, _ = netip.AddrFromSlice(raw)
	return name, address, nil
}

const (
	maxNameLength = 64 * 1024
	net4Length    = 4
	net6Length    = 16
)

func wrapEOF(err error, field string) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("%w: reading %s", ErrUnexpectedEOF, field)
	}
	return fmt.Errorf("reading %s: %w", field, err)
}

// Encode writes the state to the writer. Entries are written
// sorted by name and followed by a zero length name.
// Addresses are written as little endian integers.
func (s *State) Encode(writer io.Writer) (err error) {
	bufWriter := bufio.NewWriter(writer)

	header := []any{magic, s.Version, s.Timestamp, s.ConfigHash}
	for _, field := range header {
		_ = binary.Write(bufWriter, binary.LittleEndian, field)
	}

	names := make([]string, 0, len(s.Addresses))
	for name := range s.Addresses {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		address := s.Addresses[name]
		ipType := ipTypeV4
		switch {
		case address.Is4():
		case address.Is6():
			ipType = ipTypeV6
		default:
			return fmt.Errorf("%w: for %s", ErrAddressInvalid, name)
		}

		_ = binary.Write(bufWriter, binary.LittleEndian, uint32(len(name)))
		_, _ = bufWriter.WriteString(name)
		_ = bufWriter.WriteByte(ipType)
		raw := address.AsSlice()
		reverse(raw)
		_, _ = bufWriter.Write(raw)
	}

	_ = binary.Write(bufWriter, binary.LittleEndian, uint32(0))

	// bufio.Writer keeps the first write error and returns it on Flush.
	return bufWriter.Flush()
}

func reverse(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}
