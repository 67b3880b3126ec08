//go:build !debug

package debug

import "testing"

func TestContractsReleaseBuild(t *testing.T) {
	if Enabled {
		t.Fatal("checks should be disabled without the debug tag")
	}
	if Assert(false, "x") {
		t.Error("Assert(false) should report failure")
	}
	if !CheckChannels(2, 2) || CheckChannels(1, 2) {
		t.Error("CheckChannels mismatch")
	}
	if !CheckBlockSize(512, 512) || CheckBlockSize(513, 512) {
		t.Error("CheckBlockSize mismatch")
	}
}
