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

package ffp

import (
	"errors"
	"fmt"
)

// ErrBusyTimeout is returned when the flash status register's busy bit
// does not clear within the configured poll limit, indicating
// misbehaving or absent hardware.
var ErrBusyTimeout = errors.New("flash stayed busy past the poll limit")

// NotEnoughDataError is returned when a command response is too short to
// contain the echoed opcode and argument bytes that must be stripped.
type NotEnoughDataError struct {
	Expected int
	Read     int
}

func (e *NotEnoughDataError) Error() string {
	return fmt.Sprintf("not enough data read back from device: expected %d, read %d",
		e.Expected, e.Read)
}

// VerifyError is returned when post-program readback does not match the
// programmed image. DumpPath names a file holding the actual readback
// bytes for offline inspection; it is empty if persisting them failed.
type VerifyError struct {
	DumpPath string
}

func (e *VerifyError) Error() string {
	if e.DumpPath == "" {
		return "flash readback verification failed"
	}
	return fmt.Sprintf("flash readback verification failed (readback stored in %s)", e.DumpPath)
}
