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

// Chunked full-duplex bulk transport.
package ffp

import (
	"fmt"
	"io"

	"github.com/golang/glog"
)

// ChunkSize is the bulk transfer frame size of the FFP firmware. Every
// frame written to the device yields exactly one frame read back of the
// same length; the link behaves like a shift register, not a queue.
const ChunkSize = 64

// Progress reports long transfers. done and total are byte counts.
// A nil Progress disables reporting.
type Progress func(done, total int)

// Transport splits byte buffers into fixed-size frames over the bulk
// endpoint pair and reassembles the echoed frames.
type Transport struct {
	dev       io.ReadWriter
	chunkSize int
}

func NewTransport(dev io.ReadWriter) *Transport {
	return &Transport{dev: dev, chunkSize: ChunkSize}
}

// Exchange writes tx one frame at a time, reading one frame back after
// each write, and returns the concatenated reads. A frame whose read
// length differs from its written length is a diagnostic condition, not
// an error: it is logged and whatever was read is kept, so the returned
// slice may be shorter than tx. Bulk I/O failures are fatal.
func (t *Transport) Exchange(tx []byte, progress Progress) ([]byte, error) {
	rx := make([]byte, 0, len(tx))
	buf := make([]byte, t.chunkSize)
	for off := 0; off < len(tx); off += t.chunkSize {
		chunk := tx[off:min(off+t.chunkSize, len(tx))]
		if _, err := t.dev.Write(chunk); err != nil {
			return nil, fmt.Errorf("Writing frame at offset %d: %v", off, err)
		}
		n, err := t.dev.Read(buf)
		if err != nil {
			return nil, fmt.Errorf("Reading frame at offset %d: %v", off, err)
		}
		if n != len(chunk) {
			glog.Warningf("Frame at offset %d: wrote %d bytes but read %d back",
				off, len(chunk), n)
		}
		rx = append(rx, buf[:n]...)
		if progress != nil {
			progress(min(off+t.chunkSize, len(tx)), len(tx))
		}
	}
	if len(rx) != len(tx) {
		glog.Warningf("Did not receive as many bytes as transmitted (rx %d, tx %d)",
			len(rx), len(tx))
	}
	return rx, nil
}

// Loopback exchanges tx and compares the echo byte for byte, logging the
// first differing offset of each frame. It returns the number of frames
// whose echo diverged. Used by the CLI self test to check link integrity.
func (t *Transport) Loopback(tx []byte) (int, error) {
	rx, err := t.Exchange(tx, nil)
	if err != nil {
		return 0, err
	}
	mismatches := 0
	for off := 0; off < len(tx); off += t.chunkSize {
		end := min(off+t.chunkSize, len(tx))
		txChunk := tx[off:end]
		var rxChunk []byte
		if off < len(rx) {
			rxChunk = rx[off:min(end, len(rx))]
		}
		if pos, ok := firstDiff(txChunk, rxChunk); !ok {
			mismatches++
			glog.Warningf("Frame at offset %d: echo diverges at byte %d (tx % x, rx % x)",
				off, pos, txChunk, rxChunk)
		}
	}
	return mismatches, nil
}

func firstDiff(a, b []byte) (int, bool) {
	for i := range a {
		if i >= len(b) || a[i] != b[i] {
			return i, false
		}
	}
	if len(b) > len(a) {
		return len(a), false
	}
	return 0, true
}
