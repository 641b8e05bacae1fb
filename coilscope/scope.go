// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package coilscope

import (
	"errors"
	"fmt"

	"github.com/GermanBionicSystems/steppers/coil"
	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/gpio"
)

// ErrNoMotor is returned by New when motor is nil.
var ErrNoMotor = errors.New("coilscope: nil motor")

// Frame is the state of the probes after a call to the motor.
type Frame struct {
	// Index is the step index requested. It is meaningless for a clear.
	Index uint32
	// Cleared is true when the frame was captured after Clear.
	Cleared bool
	// Levels holds one level per probe, in probe order.
	Levels []gpio.Level
	// Err is the error returned by the motor, if any.
	Err error
}

func (f Frame) String() string {
	b := make([]byte, len(f.Levels))
	for i, l := range f.Levels {
		b[i] = '_'
		if l {
			b[i] = '#'
		}
	}
	if f.Cleared {
		return fmt.Sprintf("clear %s", b)
	}
	return fmt.Sprintf("%5d %s", f.Index, b)
}

// FrameWriter receives frames as they are captured.
type FrameWriter interface {
	WriteFrame(f Frame) error
}

// Opts represents the options available for a Scope.
type Opts struct {
	// Depth is the number of frames kept. Older frames are dropped.
	Depth int
	// Out, when set, receives every frame as it is captured.
	Out FrameWriter

	_ struct{}
}

// DefaultOpts is the recommended default options.
var DefaultOpts = Opts{Depth: 64}

// Scope is a coil.Motor that captures the state of its probes after each
// call to the wrapped motor.
//
// It is not safe for concurrent use.
type Scope struct {
	motor  coil.Motor
	probes []*Probe
	out    FrameWriter
	depth  int
	frames []Frame
	err    error
}

// New returns a Scope observing motor through probes.
//
// The probes are expected to be the pins motor was built with.
func New(motor coil.Motor, probes []*Probe, opts *Opts) (*Scope, error) {
	if motor == nil {
		return nil, ErrNoMotor
	}
	if opts == nil {
		opts = &DefaultOpts
	}
	depth := opts.Depth
	if depth <= 0 {
		depth = DefaultOpts.Depth
	}
	return &Scope{
		motor:  motor,
		probes: probes,
		out:    opts.Out,
		depth:  depth,
		frames: make([]Frame, 0, depth),
	}, nil
}

// Step implements coil.Motor.
func (s *Scope) Step(index uint32) error {
	err := s.motor.Step(index)
	s.capture(Frame{Index: index, Err: err})
	return err
}

// Clear implements coil.Motor.
func (s *Scope) Clear() error {
	err := s.motor.Clear()
	s.capture(Frame{Cleared: true, Err: err})
	return err
}

func (s *Scope) capture(f Frame) {
	f.Levels = make([]gpio.Level, len(s.probes))
	for i, p := range s.probes {
		f.Levels[i] = p.Level()
	}
	if len(s.frames) == s.depth {
		copy(s.frames, s.frames[1:])
		s.frames = s.frames[:len(s.frames)-1]
	}
	s.frames = append(s.frames, f)
	if s.out != nil && s.err == nil {
		s.err = s.out.WriteFrame(f)
	}
}

// Frames returns the captured frames, oldest first.
func (s *Scope) Frames() []Frame {
	return append([]Frame(nil), s.frames...)
}

// Reset forgets the captured frames and any output error.
func (s *Scope) Reset() {
	s.frames = s.frames[:0]
	s.err = nil
}

// Names returns the names of the probed pins.
func (s *Scope) Names() []string {
	names := make([]string, len(s.probes))
	for i, p := range s.probes {
		names[i] = p.Name()
	}
	return names
}

// Err returns the first error returned by Opts.Out. Frames are not sent
// anymore after it.
func (s *Scope) Err() error {
	return s.err
}

func (s *Scope) String() string {
	return fmt.Sprintf("Scope{%v}", s.motor)
}

// Halt implements conn.Resource.
//
// It clears the wrapped motor.
func (s *Scope) Halt() error {
	return s.Clear()
}

var _ coil.Motor = &Scope{}
var _ conn.Resource = &Scope{}
