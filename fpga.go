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

// FPGA slave-SPI configuration.
package ffp

import (
	"fmt"
	"time"

	"github.com/golang/glog"
)

// FPGA loads bitstreams into an iCE40-style target over slave SPI.
type FPGA struct {
	sess SessionInterface

	// SettleDelay is the wake-up latency granted after reset release,
	// before configuration traffic starts.
	SettleDelay time.Duration
}

func NewFPGA(sess SessionInterface) *FPGA {
	return &FPGA{sess: sess, SettleDelay: 10 * time.Millisecond}
}

// Reset pulses the target reset line, restarting the FPGA.
func (f *FPGA) Reset() error {
	if err := f.sess.SetTargetReset(true); err != nil {
		return err
	}
	time.Sleep(f.SettleDelay)
	return f.sess.SetTargetReset(false)
}

// PowerOn enables the target power switch.
func (f *FPGA) PowerOn() error {
	return f.sess.SetTargetPower(true)
}

// PowerOff disables the target power switch.
func (f *FPGA) PowerOff() error {
	return f.sess.SetTargetPower(false)
}

// Program streams bitstream into the FPGA's configuration memory and
// starts it. The bitstream contents are opaque payload.
//
// The target samples its configuration-mode strap on reset release, so
// chip select must already be asserted when reset is deasserted; that
// ordering is load bearing. Completion is declared once the trailing
// clock run has been sent; the protocol offers no status readback.
func (f *FPGA) Program(bitstream []byte, progress Progress) error {
	glog.V(1).Infof("Programming FPGA with %d byte bitstream", len(bitstream))

	// Hold the FPGA in reset while the flash sharing the bus is put into
	// power down, so only the FPGA listens once slave SPI traffic starts.
	if err := f.sess.SetTargetReset(true); err != nil {
		return fmt.Errorf("Asserting target reset: %v", err)
	}
	if err := NewFlash(f.sess).PowerDown(); err != nil {
		return fmt.Errorf("Powering down flash: %v", err)
	}

	// Release the FPGA from reset in slave SPI mode with CS asserted.
	if err := f.sess.SetMode(ModeFPGA); err != nil {
		return fmt.Errorf("Selecting FPGA mode: %v", err)
	}
	if err := f.sess.SetChipSelect(true); err != nil {
		return fmt.Errorf("Asserting chip select: %v", err)
	}
	if err := f.sess.SetTargetReset(false); err != nil {
		return fmt.Errorf("Releasing target reset: %v", err)
	}

	// Wait for the FPGA to come out of reset.
	time.Sleep(f.SettleDelay)

	// Prime the configuration logic: dummy clocks with CS high, then
	// re-assert CS for the payload.
	if err := f.sess.SetChipSelect(false); err != nil {
		return err
	}
	if _, err := f.sess.Exchange([]byte{0x00, 0x00}, nil); err != nil {
		return fmt.Errorf("Sending dummy clocks: %v", err)
	}
	if err := f.sess.SetChipSelect(true); err != nil {
		return err
	}

	if _, err := f.sess.Exchange(bitstream, progress); err != nil {
		return fmt.Errorf("Writing configuration data: %v", err)
	}

	// Release CS and run the clock while the target completes internal
	// configuration after the last payload bit.
	if err := f.sess.SetChipSelect(false); err != nil {
		return err
	}
	if _, err := f.sess.Exchange(make([]byte, 40), nil); err != nil {
		return fmt.Errorf("Sending trailing clocks: %v", err)
	}

	glog.V(1).Info("FPGA configuration complete")
	return nil
}
