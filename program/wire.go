// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package program

import (
	"encoding/binary"

	"github.com/luxfi/starkverify/contract"
)

// Command tags, the first byte of every instruction.
const (
	CmdPublishFragment byte = 0x00
	CmdSchedule        byte = 0x01
	CmdVerifyProof     byte = 0x02
)

// Command is a decoded instruction. Offset and Data are meaningful only
// for PublishFragment.
type Command struct {
	Tag    byte
	Offset uint64
	Data   []byte
}

// DecodeCommand parses the length-delimited tagged encoding:
// tag (1) | offset u64 LE | data length u32 LE | data.
func DecodeCommand(input []byte) (Command, error) {
	if len(input) < 1 {
		return Command{}, contract.ErrTruncatedCommand
	}
	cmd := Command{Tag: input[0]}
	switch cmd.Tag {
	case CmdPublishFragment:
		if len(input) < 13 {
			return Command{}, contract.ErrTruncatedCommand
		}
		cmd.Offset = binary.LittleEndian.Uint64(input[1:9])
		n := binary.LittleEndian.Uint32(input[9:13])
		if len(input) != 13+int(n) {
			return Command{}, contract.ErrTruncatedCommand
		}
		cmd.Data = input[13:]
	case CmdSchedule, CmdVerifyProof:
		if len(input) != 1 {
			return Command{}, contract.ErrTruncatedCommand
		}
	default:
		return Command{}, contract.ErrUnknownCommand
	}
	return cmd, nil
}

// EncodePublishFragment builds the wire form of a fragment write.
func EncodePublishFragment(offset uint64, data []byte) []byte {
	out := make([]byte, 13+len(data))
	out[0] = CmdPublishFragment
	binary.LittleEndian.PutUint64(out[1:9], offset)
	binary.LittleEndian.PutUint32(out[9:13], uint32(len(data)))
	copy(out[13:], data)
	return out
}

func EncodeSchedule() []byte {
	return []byte{CmdSchedule}
}

func EncodeVerifyProof() []byte {
	return []byte{CmdVerifyProof}
}
