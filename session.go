// Copyright 2020 the ffp authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Device session. Owns the USB handle and enforces the mode/chip-select
// ordering contract for every data exchange.
package ffp

import (
	"fmt"

	"github.com/golang/glog"
)

// Operating mode of the bridge's SPI pins. The mode arbitrates which
// device on the shared bus is electrically connected; it must be set
// before chip select is asserted, and chip select must be deasserted
// before the mode is changed.
//
//go:generate stringer -type Mode
type Mode uint16

const (
	ModeHighZ Mode = 0
	ModeFlash Mode = 1
	ModeFPGA  Mode = 2
)

// SessionInterface is implemented by *Session and mocked in tests.
type SessionInterface interface {
	SetChipSelect(assert bool) error
	SetTargetReset(assert bool) error
	SetMode(mode Mode) error
	SetTargetPower(on bool) error
	GetTargetPower() (bool, error)
	SetLED(on bool) error
	Bootload() error
	Exchange(tx []byte, progress Progress) ([]byte, error)
	Command(mode Mode, tx []byte) ([]byte, error)
	Close() error
}

// Session is the single logical owner of one FFP device for the process
// lifetime. The design is fully synchronous; concurrent use is not
// supported.
type Session struct {
	dev UsbDeviceInterface
	tr  *Transport
}

// NewSession wraps an open device and turns its indicator LED on.
func NewSession(dev UsbDeviceInterface) (*Session, error) {
	s := &Session{dev: dev, tr: NewTransport(dev)}
	if err := s.SetLED(true); err != nil {
		return nil, fmt.Errorf("Turning LED on: %v", err)
	}
	return s, nil
}

// Close releases the device: chip select and mode lines are returned to
// their inactive states and the LED is turned off before the USB handle
// is closed. Runs every step regardless of earlier failures.
func (s *Session) Close() error {
	glog.V(1).Info("Closing session")
	err := s.SetChipSelect(false)
	if e := s.SetMode(ModeHighZ); err == nil {
		err = e
	}
	if e := s.SetLED(false); err == nil {
		err = e
	}
	if e := s.dev.Close(); err == nil {
		err = e
	}
	return err
}

// Both the chip-select and reset lines are active low at the device.

func (s *Session) SetChipSelect(assert bool) error {
	return s.dev.ControlOut(ReqSetCS, lowActive(assert))
}

func (s *Session) SetTargetReset(assert bool) error {
	return s.dev.ControlOut(ReqSetFPGAReset, lowActive(assert))
}

func (s *Session) SetMode(mode Mode) error {
	return s.dev.ControlOut(ReqSetMode, uint16(mode))
}

func (s *Session) SetTargetPower(on bool) error {
	return s.dev.ControlOut(ReqSetTPwr, highActive(on))
}

func (s *Session) GetTargetPower() (bool, error) {
	var state uint16
	if err := s.dev.ControlIn(ReqGetTPwr, &state); err != nil {
		return false, err
	}
	return state&1 == 1, nil
}

func (s *Session) SetLED(on bool) error {
	return s.dev.ControlOut(ReqSetLED, highActive(on))
}

// Bootload reboots the bridge itself into its DFU system bootloader.
// The device re-enumerates afterwards; the session is unusable once this
// returns.
func (s *Session) Bootload() error {
	return s.dev.ControlOut(ReqBootload, 0)
}

// Exchange performs a raw chunked transfer with the current mode and
// chip-select state. Callers that want the standard command bracketing
// should use Command instead.
func (s *Session) Exchange(tx []byte, progress Progress) ([]byte, error) {
	return s.tr.Exchange(tx, progress)
}

// Command brackets one exchange with the ordering contract: select mode,
// assert chip select, exchange, deassert chip select. Deassertion is
// attempted even when the exchange fails.
func (s *Session) Command(mode Mode, tx []byte) ([]byte, error) {
	if err := s.SetMode(mode); err != nil {
		return nil, fmt.Errorf("Selecting %v: %v", mode, err)
	}
	if err := s.SetChipSelect(true); err != nil {
		return nil, fmt.Errorf("Asserting chip select: %v", err)
	}
	rx, err := s.tr.Exchange(tx, nil)
	if csErr := s.SetChipSelect(false); err == nil && csErr != nil {
		err = fmt.Errorf("Deasserting chip select: %v", csErr)
	}
	return rx, err
}

// Loopback runs the transport integrity check with the SPI pins left in
// high impedance, so no attached device sees the traffic.
func (s *Session) Loopback(tx []byte) (int, error) {
	if err := s.SetMode(ModeHighZ); err != nil {
		return 0, err
	}
	return s.tr.Loopback(tx)
}

func lowActive(assert bool) uint16 {
	if assert {
		return 0
	}
	return 1
}

func highActive(on bool) uint16 {
	if on {
		return 1
	}
	return 0
}
