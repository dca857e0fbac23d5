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
	"os"
	"testing"

	"github.com/adamgreig/ffp/util"
)

const hexImage = ":03010000AABBCCCB\n:00000001FF\n"

func writeTempFile(t *testing.T, name, contents string) string {
	t.Helper()
	filename := t.TempDir() + "/" + name
	if err := os.WriteFile(filename, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}
	return filename
}

func TestLoadIntelHexFile(t *testing.T) {
	filename := writeTempFile(t, "fw.hex", hexImage)

	seg, err := util.LoadIntelHexFile(filename)
	if err != nil {
		t.Fatalf("LoadIntelHexFile failed: %v", err)
	}
	if seg.Address != 0x0100 {
		t.Errorf("Address = %#x, want 0x100", seg.Address)
	}
	if !bytes.Equal(seg.Data, []byte{0xAA, 0xBB, 0xCC}) {
		t.Errorf("Data = %v", seg.Data)
	}
}

func TestLoadImageFilePicksFormatByExtension(t *testing.T) {
	hexFile := writeTempFile(t, "fw.hex", hexImage)
	seg, err := util.LoadImageFile(hexFile, 0x5000)
	if err != nil {
		t.Fatalf("LoadImageFile(.hex) failed: %v", err)
	}
	// Hex images carry their own load address; the lma argument is for
	// raw binaries only.
	if seg.Address != 0x0100 {
		t.Errorf("Address = %#x, want the address from the file", seg.Address)
	}

	binFile := writeTempFile(t, "fw.bin", "\x01\x02\x03")
	seg, err = util.LoadImageFile(binFile, 0x5000)
	if err != nil {
		t.Fatalf("LoadImageFile(.bin) failed: %v", err)
	}
	if seg.Address != 0x5000 {
		t.Errorf("Address = %#x, want 0x5000", seg.Address)
	}
	if !bytes.Equal(seg.Data, []byte{0x01, 0x02, 0x03}) {
		t.Errorf("Data = %v", seg.Data)
	}
}
