// RISC-V hardware probes backed by /proc and /sys. Each probe is split
// into a pure parser over file content (testable without the
// pseudo-filesystem) and a thin reader that substitutes the default on
// failure.
package sysinfo

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"riscfetch/isa"
)

const (
	procCPUInfo     = "/proc/cpuinfo"
	dtModelPath     = "/proc/device-tree/model"
	dtCompatPath    = "/proc/device-tree/compatible"
	cacheDirPattern = "/sys/devices/system/cpu/cpu0/cache/index%d/size"
	vlenPath        = "/sys/devices/system/cpu/cpu0/riscv/vlen"
)

func readPseudoFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", errors.Wrapf(err, "read %s", path)
	}
	return string(data), nil
}

// ISAString returns the raw ISA capability string from /proc/cpuinfo,
// or "unknown" when no isa line is readable.
func ISAString() string {
	content, err := readPseudoFile(procCPUInfo)
	if err != nil {
		slog.Debug("isa probe failed", "error", err)
		return "unknown"
	}
	if s := isaFromCPUInfo(content); s != "" {
		return s
	}
	return "unknown"
}

// isaFromCPUInfo extracts the value of the first "isa" line.
func isaFromCPUInfo(content string) string {
	for _, line := range strings.Split(content, "\n") {
		if strings.HasPrefix(line, "isa") {
			if value, ok := cpuinfoValue(line); ok {
				return value
			}
		}
	}
	return ""
}

// cpuinfoValue splits a "key : value" cpuinfo line.
func cpuinfoValue(line string) (string, bool) {
	_, value, ok := strings.Cut(line, ":")
	if !ok {
		return "", false
	}
	return strings.TrimSpace(value), true
}

// ReadHardwareIDs returns the mvendorid/marchid/mimpid CSR values from
// /proc/cpuinfo. Missing or zero-valued registers stay empty.
func ReadHardwareIDs() HardwareIDs {
	content, err := readPseudoFile(procCPUInfo)
	if err != nil {
		slog.Debug("hardware id probe failed", "error", err)
		return HardwareIDs{}
	}
	return hardwareIDsFromCPUInfo(content)
}

func hardwareIDsFromCPUInfo(content string) HardwareIDs {
	var ids HardwareIDs
	for _, line := range strings.Split(content, "\n") {
		value, ok := cpuinfoValue(line)
		if !ok || value == "" || value == "0x0" {
			continue
		}
		switch {
		case strings.HasPrefix(line, "mvendorid"):
			ids.MVendorID = value
		case strings.HasPrefix(line, "marchid"):
			ids.MArchID = value
		case strings.HasPrefix(line, "mimpid"):
			ids.MImpID = value
		}
	}
	return ids
}

// HartCountNum returns the number of harts counted from /proc/cpuinfo,
// falling back to the scheduler's CPU count.
func HartCountNum() int {
	if content, err := readPseudoFile(procCPUInfo); err == nil {
		if count := hartCountFromCPUInfo(content); count > 0 {
			return count
		}
	}
	return fallbackCPUCount()
}

// HartCount returns the hart count as a display string, e.g. "4 harts".
func HartCount() string {
	count := HartCountNum()
	if count == 1 {
		return "1 hart"
	}
	return fmt.Sprintf("%d harts", count)
}

func hartCountFromCPUInfo(content string) int {
	count := 0
	for _, line := range strings.Split(content, "\n") {
		if strings.HasPrefix(line, "processor") {
			count++
		}
	}
	return count
}

// cacheLevels pairs sysfs cache index directories with display labels.
var cacheLevels = []struct {
	index int
	label string
}{
	{0, "L1D"},
	{1, "L1I"},
	{2, "L2"},
	{3, "L3"},
}

// CacheSizes returns the cache hierarchy as a compact display string,
// e.g. "L1D:32K L1I:32K L2:2048K". Empty when sysfs exposes nothing.
func CacheSizes() string {
	var parts []string
	for _, level := range cacheLevels {
		if size := cacheSize(level.index); size != "" {
			parts = append(parts, level.label+":"+size)
		}
	}
	return strings.Join(parts, " ")
}

// ReadCacheInfo returns the cache hierarchy as structured data.
func ReadCacheInfo() CacheInfo {
	return CacheInfo{
		L1D: cacheSize(0),
		L1I: cacheSize(1),
		L2:  cacheSize(2),
		L3:  cacheSize(3),
	}
}

func cacheSize(index int) string {
	content, err := readPseudoFile(fmt.Sprintf(cacheDirPattern, index))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(content)
}

// BoardModel returns the board identity from the device tree: the model
// node, or the first compatible entry, or "".
func BoardModel() string {
	if content, err := readPseudoFile(dtModelPath); err == nil {
		if model := strings.TrimSpace(strings.Trim(content, "\x00")); model != "" {
			return model
		}
	}

	if content, err := readPseudoFile(dtCompatPath); err == nil {
		if first, _, _ := strings.Cut(content, "\x00"); first != "" {
			return first
		}
	}

	slog.Debug("board probe found no device tree identity")
	return ""
}

// VectorDetail returns the vector capability line for the current host:
// the ISA-derived detail plus the exact VLEN from sysfs when the kernel
// exposes it. Empty when the host has no vector support.
func VectorDetail() string {
	detail, ok := isa.ParseVectorDetail(ISAString())
	if !ok {
		return ""
	}
	if vlen := sysfsVLEN(); vlen > 0 {
		detail += fmt.Sprintf(", VLEN=%d", vlen)
	}
	return detail
}

// sysfsVLEN returns the exact vector register width reported by the
// kernel, or 0 when unavailable.
func sysfsVLEN() int {
	content, err := readPseudoFile(vlenPath)
	if err != nil {
		return 0
	}
	vlen, err := strconv.Atoi(strings.TrimSpace(content))
	if err != nil {
		slog.Debug("vlen probe returned non-numeric value", "value", strings.TrimSpace(content))
		return 0
	}
	return vlen
}
