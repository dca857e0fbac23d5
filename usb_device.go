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

// Provides low-level interface for the FFP USB programmer.
// The bridge exposes the target's SPI bus through a pair of bulk endpoints
// and drives its GPIO-like lines (chip select, reset, mode, power, LED)
// through vendor control requests.
package ffp

import (
	"bytes"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"io"

	"github.com/golang/glog"
	"github.com/google/gousb"
)

const (
	ffpVid = 0x1209
	ffpPid = 0xff50
	// Bulk OUT 0x01 and bulk IN 0x81 share endpoint number 1.
	ffpDataEp = 1
)

//go:generate stringer -type Request
type Request uint8

const (
	ReqSetCS        Request = 1
	ReqSetFPGAReset Request = 2
	ReqSetMode      Request = 3
	ReqSetTPwr      Request = 4
	ReqGetTPwr      Request = 5
	ReqSetLED       Request = 6
	ReqBootload     Request = 7
)

const (
	rTypeControlIn  uint8 = gousb.ControlIn | gousb.ControlVendor | gousb.ControlDevice
	rTypeControlOut uint8 = gousb.ControlOut | gousb.ControlVendor | gousb.ControlDevice
)

//go:generate mockgen -destination=mocks/ffp.go -package=mocks github.com/adamgreig/ffp UsbDeviceInterface,SessionInterface
type UsbDeviceInterface interface {
	// Reads/Writes to bulk data endpoint.
	io.Reader
	io.Writer
	io.Closer
	// Sends a request over the control endpoint. All FFP requests carry
	// their argument in the 16-bit value field; only GetTPwr returns data.
	ControlOut(request Request, val uint16) error
	ControlIn(request Request, data interface{}) error
}

// Encapsulates FFP USB resources.
type UsbDevice struct {
	ctx *gousb.Context
	// dev also implements the control endpoint.
	dev       *gousb.Device
	intf      *gousb.Interface
	intf_done func()
	// Bulk output/input data endpoints.
	ep_out *gousb.OutEndpoint
	ep_in  *gousb.InEndpoint
}

func OpenUsbDevice() (*UsbDevice, error) {
	d := &UsbDevice{}
	d.ctx = gousb.NewContext()

	var err error
	d.dev, err = d.ctx.OpenDeviceWithVIDPID(ffpVid, ffpPid)
	if d.dev == nil && err == nil {
		return nil, fmt.Errorf("FFP device not found")
	}

	if err != nil {
		d.Close()
		return nil, fmt.Errorf("Opening FFP device: %v", err)
	}

	// The default interface is always #0 alt #0 in the currently active
	// config.
	d.intf, d.intf_done, err = d.dev.DefaultInterface()
	if err != nil {
		d.Close()
		return nil, fmt.Errorf("Claiming default interface: %v", err)
	}

	d.ep_out, err = d.intf.OutEndpoint(ffpDataEp)
	if err != nil {
		d.Close()
		return nil, fmt.Errorf("Opening output endpoint: %v", err)
	}

	d.ep_in, err = d.intf.InEndpoint(ffpDataEp)
	if err != nil {
		d.Close()
		return nil, fmt.Errorf("Opening input endpoint: %v", err)
	}

	return d, nil
}

func (d *UsbDevice) Close() error {
	glog.V(1).Infof("Closing USB device")
	if d.intf_done != nil {
		d.intf_done()
		d.intf_done = nil
	}
	if d.intf != nil {
		d.intf.Close()
		d.intf = nil
	}
	if d.dev != nil {
		d.dev.Close()
		d.dev = nil
	}
	if d.ctx != nil {
		d.ctx.Close()
		d.ctx = nil
	}
	return nil
}

func (d *UsbDevice) Read(p []byte) (n int, err error) {
	n, err = d.ep_in.Read(p)
	glog.V(2).Infof("[usb-bulk IN]: read %d bytes. data:\n%s", n, hex.Dump(p[:n]))
	return n, err
}

func (d *UsbDevice) Write(buf []byte) (n int, err error) {
	n, err = d.ep_out.Write(buf)
	glog.V(2).Infof("[usb-bulk OUT]: wrote %d bytes. data:\n%s", n, hex.Dump(buf))
	return n, err
}

func (d *UsbDevice) ControlOut(request Request, val uint16) error {
	_, err := d.dev.Control(rTypeControlOut, uint8(request), val, 0, nil)
	if err != nil {
		return fmt.Errorf("Request %v val %v failed: %v", request, val, err)
	}
	glog.V(2).Infof("[usb-ctrl OUT]: request = %v, val = %x", request, val)
	return nil
}

func (d *UsbDevice) ControlIn(request Request, data interface{}) error {
	if binary.Size(data) == -1 {
		return fmt.Errorf("Failed to get data size")
	}
	buf := make([]byte, binary.Size(data))
	n, err := d.dev.Control(rTypeControlIn, uint8(request), 0, 0, buf)
	if err != nil {
		return fmt.Errorf("Request %v failed: %v", request, err)
	}
	if n != len(buf) {
		return fmt.Errorf("Failed to read entire buffer %v vs %v", n, len(buf))
	}
	r := bytes.NewReader(buf)
	if err := binary.Read(r, binary.LittleEndian, data); err != nil {
		return fmt.Errorf("binary.Read failed: %v", err)
	}
	glog.V(2).Infof("[usb-ctrl IN]: request = %v, data =\n%s", request, hex.Dump(buf))
	return nil
}
