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

package ffp_test

import (
	"testing"

	"github.com/adamgreig/ffp"
	"github.com/adamgreig/ffp/mocks"

	"github.com/golang/mock/gomock"
)

func TestFpgaProgramSequence(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	bitstream := make([]byte, 300)
	for i := range bitstream {
		bitstream[i] = byte(i)
	}

	sess := mocks.NewMockSessionInterface(mockCtrl)
	gomock.InOrder(
		// Reset held while the flash is quiesced.
		sess.EXPECT().SetTargetReset(true).Return(nil),
		sess.EXPECT().Command(ffp.ModeFlash, []byte{0xB9}).
			Return([]byte{0x00}, nil),
		// Slave SPI mode with chip select asserted strictly before the
		// target leaves reset.
		sess.EXPECT().SetMode(ffp.ModeFPGA).Return(nil),
		sess.EXPECT().SetChipSelect(true).Return(nil),
		sess.EXPECT().SetTargetReset(false).Return(nil),
		// Dummy clocks with chip select high.
		sess.EXPECT().SetChipSelect(false).Return(nil),
		sess.EXPECT().Exchange([]byte{0x00, 0x00}, gomock.Any()).
			Return([]byte{0x00, 0x00}, nil),
		sess.EXPECT().SetChipSelect(true).Return(nil),
		// The bitstream itself.
		sess.EXPECT().Exchange(bitstream, gomock.Any()).
			Return(make([]byte, len(bitstream)), nil),
		// Trailing clock run of at least 40 zero bytes.
		sess.EXPECT().SetChipSelect(false).Return(nil),
		sess.EXPECT().Exchange(make([]byte, 40), gomock.Any()).
			Return(make([]byte, 40), nil),
	)

	fpga := ffp.NewFPGA(sess)
	fpga.SettleDelay = 0
	if err := fpga.Program(bitstream, nil); err != nil {
		t.Fatalf("Program failed: %v", err)
	}
}

func TestFpgaReset(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	sess := mocks.NewMockSessionInterface(mockCtrl)
	gomock.InOrder(
		sess.EXPECT().SetTargetReset(true).Return(nil),
		sess.EXPECT().SetTargetReset(false).Return(nil),
	)

	fpga := ffp.NewFPGA(sess)
	fpga.SettleDelay = 0
	if err := fpga.Reset(); err != nil {
		t.Errorf("Reset failed: %v", err)
	}
}

func TestFpgaProgramStopsIfQuiesceFails(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	sess := mocks.NewMockSessionInterface(mockCtrl)
	gomock.InOrder(
		sess.EXPECT().SetTargetReset(true).Return(nil),
		sess.EXPECT().Command(ffp.ModeFlash, []byte{0xB9}).
			Return(nil, &ffp.NotEnoughDataError{Expected: 1, Read: 0}),
	)

	fpga := ffp.NewFPGA(sess)
	fpga.SettleDelay = 0
	if err := fpga.Program([]byte{0xAA}, nil); err == nil {
		t.Errorf("Program should fail when the flash cannot be powered down")
	}
}
