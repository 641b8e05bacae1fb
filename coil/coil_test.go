// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package coil

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpiotest"
)

const (
	L = gpio.Low
	H = gpio.High
)

func newPins(n int) []*gpiotest.Pin {
	pins := make([]*gpiotest.Pin, n)
	for i := range pins {
		pins[i] = &gpiotest.Pin{N: fmt.Sprintf("P%d", i+1), Num: i + 1}
	}
	return pins
}

func levels(pins []*gpiotest.Pin) []gpio.Level {
	out := make([]gpio.Level, len(pins))
	for i, p := range pins {
		out[i] = p.Read()
	}
	return out
}

// brokenPin fails every write once armed and counts attempts.
type brokenPin struct {
	gpiotest.Pin
	err    error
	writes int
}

func (p *brokenPin) Out(l gpio.Level) error {
	p.writes++
	if p.err != nil {
		return p.err
	}
	return p.Pin.Out(l)
}

func TestTwoWireSequence(t *testing.T) {
	pins := newPins(2)
	m, err := NewTwoWire(pins[0], pins[1])
	if err != nil {
		t.Fatal(err)
	}
	want := [][]gpio.Level{{L, H}, {H, H}, {H, L}, {L, L}}
	for i, w := range want {
		if err := m.Step(uint32(i)); err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(levels(pins), w); diff != "" {
			t.Errorf("Step(%d) difference (-got +want):\n%s", i, diff)
		}
	}
	if c := m.CycleLength(); c != 4 {
		t.Errorf("CycleLength() expected 4, received %d", c)
	}
}

func TestFourWireSequence(t *testing.T) {
	pins := newPins(4)
	m, err := NewFourWire(pins[0], pins[1], pins[2], pins[3])
	if err != nil {
		t.Fatal(err)
	}
	want := [][]gpio.Level{
		{H, L, H, L},
		{L, H, H, L},
		{L, H, L, H},
		{H, L, L, H},
	}
	for i, w := range want {
		if err := m.Step(uint32(i)); err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(levels(pins), w); diff != "" {
			t.Errorf("Step(%d) difference (-got +want):\n%s", i, diff)
		}
	}
	if c := m.CycleLength(); c != 4 {
		t.Errorf("CycleLength() expected 4, received %d", c)
	}
}

func TestFiveWireSequence(t *testing.T) {
	pins := newPins(5)
	m, err := NewFiveWire(pins[0], pins[1], pins[2], pins[3], pins[4])
	if err != nil {
		t.Fatal(err)
	}
	want := [][]gpio.Level{
		{L, H, H, L, H},
		{L, H, L, L, H},
		{L, H, L, H, H},
		{L, H, L, H, L},
		{H, H, L, H, L},
		{H, L, L, H, L},
		{H, L, H, H, L},
		{H, L, H, L, L},
		{H, L, H, L, H},
		{L, L, H, L, H},
	}
	for i, w := range want {
		if err := m.Step(uint32(i)); err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(levels(pins), w); diff != "" {
			t.Errorf("Step(%d) difference (-got +want):\n%s", i, diff)
		}
	}
	if c := m.CycleLength(); c != 10 {
		t.Errorf("CycleLength() expected 10, received %d", c)
	}
}

func TestStepWrapsIndex(t *testing.T) {
	for _, tc := range []struct {
		name  string
		index uint32
	}{
		{name: "two", index: 4*7 + 1},
		{name: "four", index: 4*9 + 2},
		{name: "five", index: 10*3 + 7},
		{name: "five-max", index: ^uint32(0)},
	} {
		t.Run(tc.name, func(t *testing.T) {
			var got, want []gpio.Level
			switch tc.name {
			case "two":
				pins := newPins(2)
				m, _ := NewTwoWire(pins[0], pins[1])
				if err := m.Step(tc.index); err != nil {
					t.Fatal(err)
				}
				p := TwoWirePattern(tc.index % TwoWireCycle)
				got, want = levels(pins), p[:]
			case "four":
				pins := newPins(4)
				m, _ := NewFourWire(pins[0], pins[1], pins[2], pins[3])
				if err := m.Step(tc.index); err != nil {
					t.Fatal(err)
				}
				p := FourWirePattern(tc.index % FourWireCycle)
				got, want = levels(pins), p[:]
			default:
				pins := newPins(5)
				m, _ := NewFiveWire(pins[0], pins[1], pins[2], pins[3], pins[4])
				if err := m.Step(tc.index); err != nil {
					t.Fatal(err)
				}
				p := FiveWirePattern(tc.index % FiveWireCycle)
				got, want = levels(pins), p[:]
			}
			if diff := cmp.Diff(got, want); diff != "" {
				t.Errorf("Step(%d) difference (-got +want):\n%s", tc.index, diff)
			}
		})
	}
}

func TestClear(t *testing.T) {
	for _, n := range []int{2, 4, 5} {
		t.Run(fmt.Sprintf("%d-wire", n), func(t *testing.T) {
			pins := newPins(n)
			for _, p := range pins {
				p.L = gpio.High
			}
			var m Motor
			var err error
			switch n {
			case 2:
				m, err = NewTwoWire(pins[0], pins[1])
			case 4:
				m, err = NewFourWire(pins[0], pins[1], pins[2], pins[3])
			case 5:
				m, err = NewFiveWire(pins[0], pins[1], pins[2], pins[3], pins[4])
			}
			if err != nil {
				t.Fatal(err)
			}
			if err := m.Clear(); err != nil {
				t.Fatal(err)
			}
			for i, p := range pins {
				if p.Read() != gpio.Low {
					t.Errorf("pin %d expected Low after Clear()", i+1)
				}
			}
		})
	}
}

func TestHaltClears(t *testing.T) {
	pins := newPins(4)
	m, _ := NewFourWire(pins[0], pins[1], pins[2], pins[3])
	if err := m.Step(1); err != nil {
		t.Fatal(err)
	}
	if err := m.Halt(); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(levels(pins), []gpio.Level{L, L, L, L}); diff != "" {
		t.Errorf("Halt() difference (-got +want):\n%s", diff)
	}
}

func TestPinErrorPassthrough(t *testing.T) {
	errPin := errors.New("pin stuck")
	p1 := &brokenPin{Pin: gpiotest.Pin{N: "P1"}}
	p2 := &brokenPin{Pin: gpiotest.Pin{N: "P2"}, err: errPin}
	p3 := &brokenPin{Pin: gpiotest.Pin{N: "P3"}}
	p4 := &brokenPin{Pin: gpiotest.Pin{N: "P4"}}
	m, err := NewFourWire(p1, p2, p3, p4)
	if err != nil {
		t.Fatal(err)
	}
	if err := m.Step(0); err != errPin {
		t.Fatalf("Step() expected %v, received %v", errPin, err)
	}
	if p3.writes != 0 || p4.writes != 0 {
		t.Errorf("pins after the failing one were written: p3=%d p4=%d", p3.writes, p4.writes)
	}
	if err := m.Clear(); err != errPin {
		t.Fatalf("Clear() expected %v, received %v", errPin, err)
	}
	if p1.writes != 2 || p2.writes != 2 {
		t.Errorf("unexpected write counts p1=%d p2=%d", p1.writes, p2.writes)
	}
}

func TestNilPin(t *testing.T) {
	pins := newPins(5)
	if _, err := NewTwoWire(pins[0], nil); !errors.Is(err, ErrNilPin) {
		t.Errorf("NewTwoWire() expected ErrNilPin, received %v", err)
	}
	if _, err := NewFourWire(nil, pins[1], pins[2], pins[3]); !errors.Is(err, ErrNilPin) {
		t.Errorf("NewFourWire() expected ErrNilPin, received %v", err)
	}
	_, err := NewFiveWire(pins[0], pins[1], pins[2], nil, pins[4])
	if !errors.Is(err, ErrNilPin) {
		t.Errorf("NewFiveWire() expected ErrNilPin, received %v", err)
	}
	if want := "coil: nil pin: p4"; err.Error() != want {
		t.Errorf("error expected %q, received %q", want, err.Error())
	}
}

func TestString(t *testing.T) {
	pins := newPins(2)
	m, _ := NewTwoWire(pins[0], pins[1])
	if s, want := m.String(), "TwoWire{"+pins[0].String()+", "+pins[1].String()+"}"; s != want {
		t.Errorf("String() expected %q, received %q", want, s)
	}
}
