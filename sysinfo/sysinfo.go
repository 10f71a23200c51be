// Package sysinfo reads RISC-V architecture and generic host information
// from the pseudo-filesystems and the kernel. Probes never fail: when a
// source is unreadable they substitute a documented default ("unknown",
// empty string, zero) so callers always receive a valid, possibly trivial,
// value.
package sysinfo

import (
	"riscfetch/isa"
)

// ANSI color codes for terminal output formatting
const (
	ColorReset   = "\033[0m"
	ColorRed     = "\033[31m"
	ColorGreen   = "\033[32m"
	ColorYellow  = "\033[33m"
	ColorBlue    = "\033[34m"
	ColorPurple  = "\033[35m"
	ColorCyan    = "\033[36m"
	ColorWhite   = "\033[37m"
	ColorMagenta = "\033[95m"
)

// HardwareIDs holds the machine-level identification CSR values exposed
// through /proc/cpuinfo. Fields stay empty when the kernel reports nothing
// or the placeholder value 0x0.
type HardwareIDs struct {
	MVendorID string `json:"mvendorid" yaml:"mvendorid"`
	MArchID   string `json:"marchid" yaml:"marchid"`
	MImpID    string `json:"mimpid" yaml:"mimpid"`
}

// Empty reports whether no CSR value was readable at all.
func (ids HardwareIDs) Empty() bool {
	return ids.MVendorID == "" && ids.MArchID == "" && ids.MImpID == ""
}

// VectorInfo describes the vector unit as inferred from the ISA string.
// VLEN and ELEN stay zero when the hardware does not report them; the
// widths are implementation-defined and never guessed.
type VectorInfo struct {
	Enabled bool `json:"enabled" yaml:"enabled"`
	VLEN    int  `json:"vlen,omitempty" yaml:"vlen,omitempty"`
	ELEN    int  `json:"elen,omitempty" yaml:"elen,omitempty"`
}

// CacheInfo holds per-level cache sizes as reported by sysfs.
type CacheInfo struct {
	L1D string `json:"l1d,omitempty" yaml:"l1d,omitempty"`
	L1I string `json:"l1i,omitempty" yaml:"l1i,omitempty"`
	L2  string `json:"l2,omitempty" yaml:"l2,omitempty"`
	L3  string `json:"l3,omitempty" yaml:"l3,omitempty"`
}

// RiscvInfo is the architecture-only result set, without generic host data.
type RiscvInfo struct {
	ISA         string      `json:"isa" yaml:"isa"`
	Extensions  []string    `json:"extensions" yaml:"extensions"`
	ZExtensions []string    `json:"z_extensions" yaml:"z_extensions"`
	Vector      VectorInfo  `json:"vector" yaml:"vector"`
	HartCount   int         `json:"hart_count" yaml:"hart_count"`
	HardwareIDs HardwareIDs `json:"hardware_ids" yaml:"hardware_ids"`
	Cache       CacheInfo   `json:"cache" yaml:"cache"`
}

// SystemInfo is the complete result set for structured output.
type SystemInfo struct {
	ISA              string      `json:"isa" yaml:"isa"`
	Extensions       []string    `json:"extensions" yaml:"extensions"`
	ZExtensions      []string    `json:"z_extensions" yaml:"z_extensions"`
	SExtensions      []string    `json:"s_extensions" yaml:"s_extensions"`
	Vector           VectorInfo  `json:"vector" yaml:"vector"`
	HartCount        int         `json:"hart_count" yaml:"hart_count"`
	HardwareIDs      HardwareIDs `json:"hardware_ids" yaml:"hardware_ids"`
	Cache            CacheInfo   `json:"cache" yaml:"cache"`
	Board            string      `json:"board" yaml:"board"`
	MemoryUsedBytes  uint64      `json:"memory_used_bytes" yaml:"memory_used_bytes"`
	MemoryTotalBytes uint64      `json:"memory_total_bytes" yaml:"memory_total_bytes"`
	Kernel           string      `json:"kernel" yaml:"kernel"`
	OS               string      `json:"os" yaml:"os"`
	UptimeSeconds    uint64      `json:"uptime_seconds" yaml:"uptime_seconds"`
}

// CollectRiscv gathers the architecture-specific information only.
func CollectRiscv() RiscvInfo {
	isaString := ISAString()

	return RiscvInfo{
		ISA:         isaString,
		Extensions:  baseNames(isaString),
		ZExtensions: namedNames(isa.ParseZExtensionsWithCategory(isaString)),
		Vector:      vectorInfo(isaString),
		HartCount:   HartCountNum(),
		HardwareIDs: ReadHardwareIDs(),
		Cache:       ReadCacheInfo(),
	}
}

// CollectAll gathers architecture and generic host information.
func CollectAll() SystemInfo {
	isaString := ISAString()
	used, total := MemoryBytes()

	return SystemInfo{
		ISA:              isaString,
		Extensions:       baseNames(isaString),
		ZExtensions:      namedNames(isa.ParseZExtensionsWithCategory(isaString)),
		SExtensions:      namedNames(isa.ParseSExtensionsWithCategory(isaString)),
		Vector:           vectorInfo(isaString),
		HartCount:        HartCountNum(),
		HardwareIDs:      ReadHardwareIDs(),
		Cache:            ReadCacheInfo(),
		Board:            BoardModel(),
		MemoryUsedBytes:  used,
		MemoryTotalBytes: total,
		Kernel:           KernelVersion(),
		OS:               OSName(),
		UptimeSeconds:    UptimeSeconds(),
	}
}

func baseNames(isaString string) []string {
	exts := isa.ParseBaseExplained(isaString)
	names := make([]string, len(exts))
	for i, ext := range exts {
		names[i] = ext.Name
	}
	return names
}

func namedNames(exts []isa.ExtensionInfo) []string {
	names := make([]string, len(exts))
	for i, ext := range exts {
		names[i] = ext.Name
	}
	return names
}

func vectorInfo(isaString string) VectorInfo {
	_, enabled := isa.ParseVectorDetail(isaString)
	return VectorInfo{Enabled: enabled, VLEN: sysfsVLEN()}
}
