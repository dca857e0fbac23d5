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
	"bytes"
	"testing"

	"github.com/adamgreig/ffp"
	"github.com/adamgreig/ffp/mocks"

	"github.com/golang/mock/gomock"
)

// expectEcho scripts one write/read frame pair that echoes the frame back.
func expectEcho(dev *mocks.MockUsbDeviceInterface, frame []byte) []*gomock.Call {
	frame = append([]byte(nil), frame...)
	return []*gomock.Call{
		dev.EXPECT().Write(frame).Return(len(frame), nil),
		dev.EXPECT().Read(gomock.Any()).DoAndReturn(func(p []byte) (int, error) {
			return copy(p, frame), nil
		}),
	}
}

func TestExchangeSplitsIntoFrames(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	tx := make([]byte, 150)
	for i := range tx {
		tx[i] = byte(i)
	}

	dev := mocks.NewMockUsbDeviceInterface(mockCtrl)
	var calls []*gomock.Call
	calls = append(calls, expectEcho(dev, tx[0:64])...)
	calls = append(calls, expectEcho(dev, tx[64:128])...)
	calls = append(calls, expectEcho(dev, tx[128:150])...)
	gomock.InOrder(calls...)

	rx, err := ffp.NewTransport(dev).Exchange(tx, nil)
	if err != nil {
		t.Fatalf("Exchange failed: %v", err)
	}
	if !bytes.Equal(rx, tx) {
		t.Errorf("Exchange returned unexpected data (%v)", rx)
	}
}

func TestExchangeReportsProgress(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	tx := make([]byte, 150)
	dev := mocks.NewMockUsbDeviceInterface(mockCtrl)
	var calls []*gomock.Call
	calls = append(calls, expectEcho(dev, tx[0:64])...)
	calls = append(calls, expectEcho(dev, tx[64:128])...)
	calls = append(calls, expectEcho(dev, tx[128:150])...)
	gomock.InOrder(calls...)

	var reports [][2]int
	progress := func(done, total int) {
		reports = append(reports, [2]int{done, total})
	}
	if _, err := ffp.NewTransport(dev).Exchange(tx, progress); err != nil {
		t.Fatalf("Exchange failed: %v", err)
	}
	want := [][2]int{{64, 150}, {128, 150}, {150, 150}}
	if len(reports) != len(want) {
		t.Fatalf("Got %d progress reports, want %d", len(reports), len(want))
	}
	for i := range want {
		if reports[i] != want[i] {
			t.Errorf("Report %d = %v, want %v", i, reports[i], want[i])
		}
	}
}

func TestExchangeShortReadContinues(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	tx := make([]byte, 64)
	for i := range tx {
		tx[i] = 0x55
	}

	dev := mocks.NewMockUsbDeviceInterface(mockCtrl)
	gomock.InOrder(
		dev.EXPECT().Write(tx).Return(len(tx), nil),
		dev.EXPECT().Read(gomock.Any()).DoAndReturn(func(p []byte) (int, error) {
			return copy(p, tx[:60]), nil
		}),
	)

	// A short echo is a diagnostic condition, not an error.
	rx, err := ffp.NewTransport(dev).Exchange(tx, nil)
	if err != nil {
		t.Fatalf("Exchange failed: %v", err)
	}
	if len(rx) != 60 {
		t.Errorf("Got %d bytes back, want the 60 that were read", len(rx))
	}
}

func TestLoopbackCountsMismatchedFrames(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	tx := make([]byte, 128)
	for i := range tx {
		tx[i] = byte(i)
	}
	corrupted := append([]byte(nil), tx[64:128]...)
	corrupted[10] ^= 0xFF

	dev := mocks.NewMockUsbDeviceInterface(mockCtrl)
	var calls []*gomock.Call
	calls = append(calls, expectEcho(dev, tx[0:64])...)
	calls = append(calls,
		dev.EXPECT().Write(tx[64:128]).Return(64, nil),
		dev.EXPECT().Read(gomock.Any()).DoAndReturn(func(p []byte) (int, error) {
			return copy(p, corrupted), nil
		}),
	)
	gomock.InOrder(calls...)

	mismatches, err := ffp.NewTransport(dev).Loopback(tx)
	if err != nil {
		t.Fatalf("Loopback failed: %v", err)
	}
	if mismatches != 1 {
		t.Errorf("Got %d mismatched frames, want 1", mismatches)
	}
}
