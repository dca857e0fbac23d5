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

package util_test

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/adamgreig/ffp"
	"github.com/adamgreig/ffp/util"
	"github.com/adamgreig/ffp/util/mocks"

	"github.com/golang/mock/gomock"
)

func TestProgramDeviceReleasesTargetOnMatch(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	data := []byte{0xAA, 0xBB, 0xCC}
	const lma = 0x10000

	prog := mocks.NewMockFlashProgrammer(mockCtrl)
	gomock.InOrder(
		prog.EXPECT().ReadID().Return(ffp.FlashID{Manufacturer: 0xEF, Device: 0x17}, nil),
		prog.EXPECT().Erase(uint32(lma), len(data)).Return(nil),
		prog.EXPECT().Program(uint32(lma), data).Return(nil),
		prog.EXPECT().Read(uint32(lma), len(data)).Return(data, nil),
		prog.EXPECT().ReleaseTarget().Return(nil),
	)

	if err := util.ProgramDevice(prog, &util.Segment{lma, data}); err != nil {
		t.Errorf("ProgramDevice failed: %v", err)
	}
}

func TestProgramDeviceKeepsTargetInResetOnMismatch(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	data := []byte{0xAA, 0xBB, 0xCC}
	readback := []byte{0xAA, 0xDD, 0xCC} // 2nd byte is different.
	const lma = 0x10000

	prog := mocks.NewMockFlashProgrammer(mockCtrl)
	gomock.InOrder(
		prog.EXPECT().ReadID().Return(ffp.FlashID{}, nil),
		prog.EXPECT().Erase(uint32(lma), len(data)).Return(nil),
		prog.EXPECT().Program(uint32(lma), data).Return(nil),
		prog.EXPECT().Read(uint32(lma), len(data)).Return(readback, nil),
		// No ReleaseTarget: the target must stay in reset.
	)

	err := util.ProgramDevice(prog, &util.Segment{lma, data})
	var verr *ffp.VerifyError
	if !errors.As(err, &verr) {
		t.Fatalf("ProgramDevice = %v, want VerifyError", err)
	}
	if verr.DumpPath == "" {
		t.Fatal("VerifyError has no dump path")
	}
	defer os.Remove(verr.DumpPath)
	dumped, err := os.ReadFile(verr.DumpPath)
	if err != nil {
		t.Fatalf("Reading dump: %v", err)
	}
	if !bytes.Equal(dumped, readback) {
		t.Errorf("Dump holds %v, want the readback %v", dumped, readback)
	}
}

func TestProgramDeviceFailsIfEraseFails(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	prog := mocks.NewMockFlashProgrammer(mockCtrl)
	gomock.InOrder(
		prog.EXPECT().ReadID().Return(ffp.FlashID{}, nil),
		prog.EXPECT().Erase(gomock.Any(), gomock.Any()).
			Return(fmt.Errorf("erase failed")),
	)

	err := util.ProgramDevice(prog, &util.Segment{0, []byte{0x01}})
	if err == nil || !strings.Contains(err.Error(), "erase failed") {
		t.Errorf("ProgramDevice did not fail as expected. Err: %v", err)
	}
}

func TestReadFlashToFile(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	data := []byte{0x01, 0x02, 0x03, 0x04}
	prog := mocks.NewMockFlashProgrammer(mockCtrl)
	prog.EXPECT().Read(uint32(0x200), len(data)).Return(data, nil)

	filename := t.TempDir() + "/out.bin"
	if err := util.ReadFlashToFile(prog, 0x200, len(data), filename); err != nil {
		t.Fatalf("ReadFlashToFile failed: %v", err)
	}
	out, err := os.ReadFile(filename)
	if err != nil {
		t.Fatalf("Reading output: %v", err)
	}
	if !bytes.Equal(out, data) {
		t.Errorf("Output holds %v, want %v", out, data)
	}
}
