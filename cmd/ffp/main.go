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

// Command line driver for the FFP programmer.
// Exactly one operation must be selected per invocation.
package main

import (
	"crypto/rand"
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/adamgreig/ffp"
	"github.com/adamgreig/ffp/util"

	"github.com/golang/glog"
)

var (
	fpgaFile      = flag.String("fpga", "", "bitstream file to program directly to the FPGA")
	flashFile     = flag.String("flash", "", "image file to program to flash (.hex or raw binary)")
	readFlashFile = flag.String("read-flash", "", "read flash contents to file")
	readFlashID   = flag.Bool("read-flash-id", false, "just read the flash ID")
	power         = flag.String("power", "", "control target power (on|off)")
	bootload      = flag.Bool("bootload", false, "reboot the FFP into its DFU bootloader")
	selftest      = flag.Bool("selftest", false, "run a bulk loopback integrity check")
	lmaFlag       = flag.String("lma", "0", "load memory address (-flash and -read-flash)")
	readLength    = flag.Int("read-length", 1024, "flash read length (-read-flash only)")
)

const selftestLength = 128 * 1024

func main() {
	flag.Parse()
	defer glog.Flush()
	if err := run(); err != nil {
		glog.Exitf("%v", err)
	}
}

func run() error {
	selected := 0
	for _, on := range []bool{
		*fpgaFile != "", *flashFile != "", *readFlashFile != "",
		*readFlashID, *power != "", *bootload, *selftest,
	} {
		if on {
			selected++
		}
	}
	if selected != 1 {
		flag.Usage()
		return fmt.Errorf("exactly one operation must be selected")
	}

	lma64, err := strconv.ParseUint(*lmaFlag, 0, 32)
	if err != nil {
		return fmt.Errorf("invalid -lma %q: %v", *lmaFlag, err)
	}
	lma := uint32(lma64)

	dev, err := ffp.OpenUsbDevice()
	if err != nil {
		return err
	}
	sess, err := ffp.NewSession(dev)
	if err != nil {
		dev.Close()
		return err
	}
	defer sess.Close()

	switch {
	case *fpgaFile != "":
		data, err := os.ReadFile(*fpgaFile)
		if err != nil {
			return err
		}
		glog.Info("Programming FPGA")
		if err := ffp.NewFPGA(sess).Program(data, logProgress("Programming")); err != nil {
			return err
		}
		glog.Info("Programming complete")

	case *flashFile != "":
		firmware, err := util.LoadImageFile(*flashFile, lma)
		if err != nil {
			return err
		}
		return util.ProgramDevice(ffp.NewFlash(sess), firmware)

	case *readFlashFile != "":
		return util.ReadFlashToFile(ffp.NewFlash(sess), lma, *readLength, *readFlashFile)

	case *readFlashID:
		id, err := ffp.NewFlash(sess).ReadID()
		if err != nil {
			return err
		}
		fmt.Printf("Flash: %v\n", id)

	case *power != "":
		on := *power == "on"
		if !on && *power != "off" {
			return fmt.Errorf("invalid -power %q: want on or off", *power)
		}
		if err := sess.SetTargetPower(on); err != nil {
			return err
		}
		time.Sleep(100 * time.Millisecond)
		state, err := sess.GetTargetPower()
		if err != nil {
			return err
		}
		fmt.Printf("Target power: %v\n", state)

	case *bootload:
		glog.Info("Rebooting FFP into system bootloader")
		return sess.Bootload()

	case *selftest:
		data := make([]byte, selftestLength)
		if _, err := rand.Read(data); err != nil {
			return err
		}
		glog.Infof("Writing %d bytes", len(data))
		start := time.Now()
		mismatches, err := sess.Loopback(data)
		if err != nil {
			return err
		}
		elapsed := time.Since(start)
		rate := float64(len(data)) / elapsed.Seconds() / 1024
		glog.Infof("Done in %v, %.0f kB/s", elapsed.Round(time.Millisecond), rate)
		if mismatches > 0 {
			return fmt.Errorf("loopback failed on %d frames", mismatches)
		}
		glog.Info("Loopback OK")
	}
	return nil
}

// logProgress reports a long transfer at 10% steps.
func logProgress(op string) ffp.Progress {
	last := -1
	return func(done, total int) {
		pct := done * 100 / total
		if pct/10 > last/10 || last < 0 {
			glog.Infof("%s: %d%% (%d/%d bytes)", op, pct, done, total)
			last = pct
		}
	}
}
