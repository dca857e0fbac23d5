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

package util

import (
	"bytes"
	"fmt"
	"os"

	"github.com/adamgreig/ffp"

	"github.com/golang/glog"
)

//go:generate mockgen -destination=mocks/flash_programmer.go -package=mocks github.com/adamgreig/ffp/util FlashProgrammer
type FlashProgrammer interface {
	ReadID() (ffp.FlashID, error)
	Erase(lma uint32, length int) error
	Program(lma uint32, data []byte) error
	Read(lma uint32, length int) ([]byte, error)
	ReleaseTarget() error
}

// Writes firmware to flash.
// Identifies the chip, erases the covered blocks, programs the image,
// then reads it back and compares byte for byte. On a successful verify
// the target is released from reset so it boots the new image. On a
// mismatch the target stays in reset, the readback is persisted for
// offline inspection, and no retry is attempted.
func ProgramDevice(prog FlashProgrammer, firmware *Segment) error {
	id, err := prog.ReadID()
	if err != nil {
		return fmt.Errorf("Failed to read flash ID: %v", err)
	}
	glog.Infof("Flash: %v", id)
	glog.Info("Erasing flash")
	if err = prog.Erase(firmware.Address, len(firmware.Data)); err != nil {
		return fmt.Errorf("Failed to erase flash: %v", err)
	}
	glog.Info("Programming flash")
	if err = prog.Program(firmware.Address, firmware.Data); err != nil {
		return fmt.Errorf("Failed to write to flash: %v", err)
	}
	glog.Info("Verifying contents")
	mem, err := prog.Read(firmware.Address, len(firmware.Data))
	if err != nil {
		return fmt.Errorf("Failed to read flash contents: %v", err)
	}
	if !bytes.Equal(firmware.Data, mem) {
		return &ffp.VerifyError{DumpPath: dumpReadback(mem)}
	}
	glog.Info("Readback successful, booting target")
	return prog.ReleaseTarget()
}

// dumpReadback stores the mismatched readback in a temporary file and
// returns its path, or "" if it could not be persisted.
func dumpReadback(data []byte) string {
	f, err := os.CreateTemp("", "ffp-readback-*.bin")
	if err != nil {
		glog.Warningf("Failed to create readback dump: %v", err)
		return ""
	}
	defer f.Close()
	if _, err := f.Write(data); err != nil {
		glog.Warningf("Failed to write readback dump: %v", err)
		return ""
	}
	return f.Name()
}

// ReadFlashToFile reads length bytes at lma and writes them to filename.
func ReadFlashToFile(prog FlashProgrammer, lma uint32, length int, filename string) error {
	data, err := prog.Read(lma, length)
	if err != nil {
		return fmt.Errorf("Failed to read flash: %v", err)
	}
	return os.WriteFile(filename, data, 0o644)
}
