package sysinfo

import "testing"

// cpuinfo content in the shape a RISC-V kernel produces.
const sampleCPUInfo = `processor	: 0
hart		: 0
isa		: rv64imafdc_zicntr_zicsr_zifencei_zihpm_zba_zbb
mmu		: sv39
mvendorid	: 0x489
marchid		: 0x8000000000000007
mimpid		: 0x4210427

processor	: 1
hart		: 1
isa		: rv64imafdc_zicntr_zicsr_zifencei_zihpm_zba_zbb
mmu		: sv39
mvendorid	: 0x489
marchid		: 0x8000000000000007
mimpid		: 0x4210427
`

func TestISAFromCPUInfo(t *testing.T) {
	want := "rv64imafdc_zicntr_zicsr_zifencei_zihpm_zba_zbb"
	if got := isaFromCPUInfo(sampleCPUInfo); got != want {
		t.Fatalf("isaFromCPUInfo = %q; want %q", got, want)
	}

	if got := isaFromCPUInfo("model name : something else\n"); got != "" {
		t.Fatalf("isaFromCPUInfo on non-riscv content = %q; want empty", got)
	}
	if got := isaFromCPUInfo(""); got != "" {
		t.Fatalf("isaFromCPUInfo on empty content = %q; want empty", got)
	}
}

func TestHardwareIDsFromCPUInfo(t *testing.T) {
	ids := hardwareIDsFromCPUInfo(sampleCPUInfo)
	if ids.MVendorID != "0x489" {
		t.Fatalf("MVendorID = %q; want 0x489", ids.MVendorID)
	}
	if ids.MArchID != "0x8000000000000007" {
		t.Fatalf("MArchID = %q; want 0x8000000000000007", ids.MArchID)
	}
	if ids.MImpID != "0x4210427" {
		t.Fatalf("MImpID = %q; want 0x4210427", ids.MImpID)
	}
	if ids.Empty() {
		t.Fatal("ids.Empty() = true for populated ids")
	}
}

func TestHardwareIDsSkipZeroValues(t *testing.T) {
	content := "mvendorid\t: 0x0\nmarchid\t: \nmimpid\t: 0x1\n"
	ids := hardwareIDsFromCPUInfo(content)
	if ids.MVendorID != "" {
		t.Fatalf("MVendorID = %q; want empty for 0x0", ids.MVendorID)
	}
	if ids.MArchID != "" {
		t.Fatalf("MArchID = %q; want empty for blank value", ids.MArchID)
	}
	if ids.MImpID != "0x1" {
		t.Fatalf("MImpID = %q; want 0x1", ids.MImpID)
	}

	if !hardwareIDsFromCPUInfo("").Empty() {
		t.Fatal("empty content must yield empty ids")
	}
}

func TestHartCountFromCPUInfo(t *testing.T) {
	if got := hartCountFromCPUInfo(sampleCPUInfo); got != 2 {
		t.Fatalf("hartCountFromCPUInfo = %d; want 2", got)
	}
	if got := hartCountFromCPUInfo(""); got != 0 {
		t.Fatalf("hartCountFromCPUInfo on empty = %d; want 0", got)
	}
}

func TestCPUInfoValue(t *testing.T) {
	value, ok := cpuinfoValue("isa\t\t: rv64imac")
	if !ok || value != "rv64imac" {
		t.Fatalf("cpuinfoValue = %q, %v", value, ok)
	}

	if _, ok := cpuinfoValue("no separator here"); ok {
		t.Fatal("cpuinfoValue accepted a line without a colon")
	}
}
