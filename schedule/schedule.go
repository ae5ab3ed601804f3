// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package schedule implements the bounded LIFO work stack that drives
// verification across invocations. Descriptors are popped in LIFO order,
// giving depth-first traversal of the task tree.
package schedule

import (
	"encoding/binary"

	"github.com/luxfi/starkverify/contract"
)

const (
	descriptorSize = 4
	topOff         = 0
	slotsOff       = 8
)

// Stack is a view over the account's schedule region:
// a top cursor followed by fixed descriptor slots.
type Stack struct {
	data []byte
}

// New wraps the schedule region bytes.
func New(data []byte) Stack {
	return Stack{data: data}
}

func (s Stack) capacity() int {
	return (len(s.data) - slotsOff) / descriptorSize
}

func (s Stack) top() int {
	return int(binary.LittleEndian.Uint64(s.data[topOff : topOff+8]))
}

func (s Stack) setTop(n int) {
	binary.LittleEndian.PutUint64(s.data[topOff:topOff+8], uint64(n))
}

func (s Stack) slot(i int) []byte {
	off := slotsOff + i*descriptorSize
	return s.data[off : off+descriptorSize]
}

// Push appends one 4-byte descriptor record.
func (s Stack) Push(d [4]byte) error {
	t := s.top()
	if t >= s.capacity() {
		return contract.ErrScheduleFull
	}
	copy(s.slot(t), d[:])
	s.setTop(t + 1)
	return nil
}

// PushSlice appends records given in reverse execution order, so the last
// pushed is the next popped.
func (s Stack) PushSlice(ds [][4]byte) error {
	for _, d := range ds {
		if err := s.Push(d); err != nil {
			return err
		}
	}
	return nil
}

// Next pops and returns the top descriptor; ok is false on an empty stack.
func (s Stack) Next() (d [4]byte, ok bool) {
	t := s.top()
	if t == 0 {
		return d, false
	}
	t--
	copy(d[:], s.slot(t))
	s.setTop(t)
	return d, true
}

func (s Stack) Flush() {
	s.setTop(0)
}

func (s Stack) Finished() bool {
	return s.top() == 0
}

// Remaining reports the stack height.
func (s Stack) Remaining() int {
	return s.top()
}
