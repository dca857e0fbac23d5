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

// SPI NOR flash controller.
package ffp

import (
	"fmt"
	"strings"

	"github.com/golang/glog"
)

// Flash command set, common to Winbond W25Q and compatible parts.
const (
	flashCmdPageProgram   = 0x02
	flashCmdWriteDisable  = 0x04
	flashCmdReadStatus1   = 0x05
	flashCmdWriteEnable   = 0x06
	flashCmdFastRead      = 0x0B
	flashCmdSectorErase4K = 0x20
	flashCmdReadStatus2   = 0x35
	flashCmdReadUniqueID  = 0x4B
	flashCmdBlockErase32K = 0x52
	flashCmdEnableReset   = 0x66
	flashCmdReadDeviceID  = 0x90
	flashCmdReset         = 0x99
	flashCmdReadJEDECID   = 0x9F
	flashCmdPowerUp       = 0xAB // Release Power Down / Device ID
	flashCmdPowerDown     = 0xB9
	flashCmdChipErase     = 0xC7
	flashCmdBlockErase64K = 0xD8
)

const (
	// Erase granularity used for arbitrary address ranges.
	eraseBlockSize = 64 * 1024
	// Page program payload limit.
	pageSize = 256

	// Each busy poll is a full USB round trip, so the limit bounds even a
	// chip erase by a comfortable margin while still terminating when the
	// hardware misbehaves.
	DefaultBusyPollLimit = 1000000
)

// FlashID identifies an attached flash chip.
type FlashID struct {
	Manufacturer byte
	Device       byte
	UniqueID     [8]byte
}

func (id FlashID) String() string {
	return fmt.Sprintf("Manufacturer %02X, Device %02X, Unique ID %X",
		id.Manufacturer, id.Device, id.UniqueID)
}

// StatusRegister is the flash status register 1.
//
//	Bit | W25Q128 meaning
//	----+---------------------------------
//	1   | WEL: Write Enable Latch
//	0   | BUSY: Erase/Write in progress
type StatusRegister byte

func (sr StatusRegister) Busy() bool         { return sr&(1<<0) != 0 }
func (sr StatusRegister) WriteEnabled() bool { return sr&(1<<1) != 0 }

func (sr StatusRegister) String() string {
	b := fmt.Sprintf("%08b", byte(sr))
	s := []string{}
	if sr.WriteEnabled() {
		s = append(s, "WEL")
	}
	if sr.Busy() {
		s = append(s, "BUSY")
	}
	if len(s) == 0 {
		return b
	}
	return b + " " + strings.Join(s, ",")
}

// Flash drives a SPI NOR flash chip through an FFP session. Every
// command selects flash mode and brackets the exchange with chip select,
// since the physical bus is shared with the FPGA.
type Flash struct {
	sess SessionInterface

	// BusyPollLimit caps WaitWhileBusy status reads before giving up
	// with ErrBusyTimeout.
	BusyPollLimit int
}

func NewFlash(sess SessionInterface) *Flash {
	return &Flash{sess: sess, BusyPollLimit: DefaultBusyPollLimit}
}

// ReadID reads the manufacturer, device, and unique IDs of the attached
// flash. The target FPGA is held in reset first so it cannot contend for
// the bus.
func (f *Flash) ReadID() (FlashID, error) {
	var id FlashID
	if err := f.sess.SetTargetReset(true); err != nil {
		return id, fmt.Errorf("Asserting target reset: %v", err)
	}
	if err := f.PowerUp(); err != nil {
		return id, fmt.Errorf("Releasing power down: %v", err)
	}
	dev, err := f.exchange(flashCmdReadDeviceID, nil, 3+2)
	if err != nil {
		return id, fmt.Errorf("Reading device ID: %v", err)
	}
	id.Manufacturer = dev[3]
	id.Device = dev[4]
	uid, err := f.exchange(flashCmdReadUniqueID, nil, 4+8)
	if err != nil {
		return id, fmt.Errorf("Reading unique ID: %v", err)
	}
	copy(id.UniqueID[:], uid[4:])
	return id, nil
}

// ReadJEDECID reads the JEDEC manufacturer, memory type, and capacity
// bytes.
func (f *Flash) ReadJEDECID() (manufacturer, memType, capacity byte, err error) {
	data, err := f.exchange(flashCmdReadJEDECID, nil, 3)
	if err != nil {
		return 0, 0, 0, err
	}
	return data[0], data[1], data[2], nil
}

// Read returns length bytes starting at address lma, using a fast-read
// command with one latency byte.
func (f *Flash) Read(lma uint32, length int) ([]byte, error) {
	glog.V(1).Infof("[flash-read]: lma = %#x, length = %d", lma, length)
	data, err := f.exchange(flashCmdFastRead, packAddr(lma), length+1)
	if err != nil {
		return nil, err
	}
	return data[1:], nil
}

// Erase erases the 64 KiB blocks covering [lma, lma+length), in
// ascending address order. Data outside the requested range but inside a
// covered block is lost; that is inherent to the erase granularity.
func (f *Flash) Erase(lma uint32, length int) error {
	glog.V(1).Infof("[flash-erase]: lma = %#x, length = %d", lma, length)
	for _, addr := range eraseBlocks(lma, length) {
		if err := f.writeEnable(); err != nil {
			return err
		}
		if err := f.eraseAt(flashCmdBlockErase64K, addr); err != nil {
			return fmt.Errorf("Erasing block %#x: %v", addr, err)
		}
		if err := f.WaitWhileBusy(); err != nil {
			return fmt.Errorf("Erasing block %#x: %v", addr, err)
		}
	}
	return nil
}

// eraseBlocks expands [lma, lma+length) to the covering set of 64 KiB
// aligned block addresses.
func eraseBlocks(lma uint32, length int) []uint32 {
	length += int(lma & 0xFFFF)
	lma &= 0xFF0000
	n := (length + eraseBlockSize - 1) / eraseBlockSize
	blocks := make([]uint32, 0, n)
	for i := 0; i < n; i++ {
		blocks = append(blocks, lma+uint32(i*eraseBlockSize))
	}
	return blocks
}

// Erase4K erases one 4 KiB sector.
func (f *Flash) Erase4K(lma uint32) error {
	if err := f.writeEnable(); err != nil {
		return err
	}
	if err := f.eraseAt(flashCmdSectorErase4K, lma); err != nil {
		return err
	}
	return f.WaitWhileBusy()
}

// Erase32K erases one 32 KiB block.
func (f *Flash) Erase32K(lma uint32) error {
	if err := f.writeEnable(); err != nil {
		return err
	}
	if err := f.eraseAt(flashCmdBlockErase32K, lma); err != nil {
		return err
	}
	return f.WaitWhileBusy()
}

// EraseChip erases the entire chip.
func (f *Flash) EraseChip() error {
	if err := f.writeEnable(); err != nil {
		return err
	}
	if err := f.command(flashCmdChipErase); err != nil {
		return err
	}
	return f.WaitWhileBusy()
}

// Program writes data to flash starting at lma. The start address is
// aligned down to a 256-byte page boundary by prepending 0xFF fill
// bytes, then each page is written with its own page-program command.
// The covered range must have been erased first.
func (f *Flash) Program(lma uint32, data []byte) error {
	glog.V(1).Infof("[flash-program]: lma = %#x, length = %d", lma, len(data))
	pad := int(lma & 0xFF)
	if pad != 0 {
		padded := make([]byte, pad, pad+len(data))
		for i := range padded {
			padded[i] = 0xFF
		}
		data = append(padded, data...)
	}
	lma &= 0xFFFF00
	for off := 0; off < len(data); off += pageSize {
		page := data[off:min(off+pageSize, len(data))]
		if err := f.writeEnable(); err != nil {
			return err
		}
		if err := f.pageProgram(lma+uint32(off), page); err != nil {
			return fmt.Errorf("Programming page %#x: %v", lma+uint32(off), err)
		}
		if err := f.WaitWhileBusy(); err != nil {
			return fmt.Errorf("Programming page %#x: %v", lma+uint32(off), err)
		}
	}
	return nil
}

// Reset issues the software reset sequence.
func (f *Flash) Reset() error {
	if err := f.command(flashCmdEnableReset); err != nil {
		return err
	}
	return f.command(flashCmdReset)
}

// PowerUp releases the flash from power down.
func (f *Flash) PowerUp() error {
	return f.command(flashCmdPowerUp)
}

// PowerDown puts the flash into deep power down, so it does not contend
// for the bus while the FPGA is configured over slave SPI.
func (f *Flash) PowerDown() error {
	return f.command(flashCmdPowerDown)
}

func (f *Flash) ReadStatus() (StatusRegister, error) {
	data, err := f.exchange(flashCmdReadStatus1, nil, 1)
	if err != nil {
		return 0, err
	}
	return StatusRegister(data[0]), nil
}

func (f *Flash) ReadStatus2() (StatusRegister, error) {
	data, err := f.exchange(flashCmdReadStatus2, nil, 1)
	if err != nil {
		return 0, err
	}
	return StatusRegister(data[0]), nil
}

// WaitWhileBusy re-reads status register 1 until its busy bit clears.
// There is no backoff between polls; each poll is already a USB round
// trip. Returns ErrBusyTimeout after BusyPollLimit reads.
func (f *Flash) WaitWhileBusy() error {
	for i := 0; i < f.BusyPollLimit; i++ {
		sr, err := f.ReadStatus()
		if err != nil {
			return err
		}
		if !sr.Busy() {
			return nil
		}
	}
	return ErrBusyTimeout
}

// ReleaseTarget deasserts the target reset line, booting the FPGA.
func (f *Flash) ReleaseTarget() error {
	return f.sess.SetTargetReset(false)
}

func (f *Flash) writeEnable() error {
	return f.command(flashCmdWriteEnable)
}

func (f *Flash) pageProgram(lma uint32, data []byte) error {
	// Oversized payloads wrap around within the page on real hardware,
	// silently corrupting it; this is a caller bug, not a runtime
	// condition.
	if len(data) < 1 || len(data) > pageSize {
		panic(fmt.Sprintf("page program payload must be 1..256 bytes, got %d", len(data)))
	}
	_, err := f.exchangeData(flashCmdPageProgram, packAddr(lma), data, 0)
	return err
}

func (f *Flash) eraseAt(op byte, lma uint32) error {
	_, err := f.exchange(op, packAddr(lma), 0)
	return err
}

// exchange transmits op, then args, then nbytes of zero padding, and
// returns the response with the echoed op and args stripped.
func (f *Flash) exchange(op byte, args []byte, nbytes int) ([]byte, error) {
	return f.exchangeData(op, args, nil, nbytes)
}

func (f *Flash) exchangeData(op byte, args, payload []byte, nbytes int) ([]byte, error) {
	tx := make([]byte, 0, 1+len(args)+len(payload)+nbytes)
	tx = append(tx, op)
	tx = append(tx, args...)
	tx = append(tx, payload...)
	tx = append(tx, make([]byte, nbytes)...)
	rx, err := f.sess.Command(ModeFlash, tx)
	if err != nil {
		return nil, err
	}
	if len(rx) < len(tx) {
		return nil, &NotEnoughDataError{Expected: len(tx), Read: len(rx)}
	}
	return rx[1+len(args):], nil
}

func (f *Flash) command(op byte) error {
	_, err := f.exchange(op, nil, 0)
	return err
}

// packAddr packs a 24-bit flash address big endian.
func packAddr(lma uint32) []byte {
	return []byte{byte(lma >> 16), byte(lma >> 8), byte(lma)}
}
