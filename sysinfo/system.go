// Generic host probes: memory, uptime, kernel and OS identity,
// architecture detection. Syscall-backed where the kernel offers one,
// with /proc fallbacks.
package sysinfo

import (
	"bytes"
	"log/slog"
	"runtime"
	"strconv"
	"strings"

	"golang.org/x/sys/unix"
)

const (
	procMemInfo   = "/proc/meminfo"
	procUptime    = "/proc/uptime"
	osReleasePath = "/etc/os-release"
)

// IsRISCV reports whether the current host is a RISC-V machine, checked
// against the kernel's machine name and /proc/cpuinfo.
func IsRISCV() bool {
	if strings.Contains(unameField(machineField), "riscv") {
		return true
	}

	content, err := readPseudoFile(procCPUInfo)
	if err != nil {
		return false
	}
	return strings.Contains(content, "riscv") || strings.Contains(content, "RISC-V")
}

// MemoryBytes returns used and total physical memory. Prefers
// /proc/meminfo (MemAvailable accounts for reclaimable pages), falling
// back to the sysinfo syscall, then to zeros.
func MemoryBytes() (used, total uint64) {
	if content, err := readPseudoFile(procMemInfo); err == nil {
		if used, total, ok := memoryFromMemInfo(content); ok {
			return used, total
		}
	}

	var si unix.Sysinfo_t
	if err := unix.Sysinfo(&si); err != nil {
		slog.Debug("memory probe failed", "error", err)
		return 0, 0
	}
	unit := uint64(si.Unit)
	if unit == 0 {
		unit = 1
	}
	total = uint64(si.Totalram) * unit
	free := (uint64(si.Freeram) + uint64(si.Bufferram)) * unit
	return total - free, total
}

// memoryFromMemInfo derives (used, total) from /proc/meminfo content.
// Values there are in kibibytes.
func memoryFromMemInfo(content string) (used, total uint64, ok bool) {
	var available uint64
	for _, line := range strings.Split(content, "\n") {
		switch {
		case strings.HasPrefix(line, "MemTotal:"):
			total = memInfoKiB(line) * 1024
		case strings.HasPrefix(line, "MemAvailable:"):
			available = memInfoKiB(line) * 1024
		}
	}
	if total == 0 || available > total {
		return 0, 0, false
	}
	return total - available, total, true
}

func memInfoKiB(line string) uint64 {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return 0
	}
	value, err := strconv.ParseUint(fields[1], 10, 64)
	if err != nil {
		return 0
	}
	return value
}

// MemoryInfo returns memory usage as "used GiB / total GiB".
func MemoryInfo() string {
	used, total := MemoryBytes()
	return FormatGiB(used) + " / " + FormatGiB(total)
}

// UptimeSeconds returns the system uptime, 0 when unreadable.
func UptimeSeconds() uint64 {
	var si unix.Sysinfo_t
	if err := unix.Sysinfo(&si); err == nil && si.Uptime > 0 {
		return uint64(si.Uptime)
	}

	content, err := readPseudoFile(procUptime)
	if err != nil {
		slog.Debug("uptime probe failed", "error", err)
		return 0
	}
	first, _, _ := strings.Cut(strings.TrimSpace(content), " ")
	seconds, err := strconv.ParseFloat(first, 64)
	if err != nil {
		return 0
	}
	return uint64(seconds)
}

// Uptime returns the formatted system uptime, e.g. "3h 42m".
func Uptime() string {
	return FormatUptime(UptimeSeconds())
}

// KernelVersion returns the kernel release string, or "Unknown".
func KernelVersion() string {
	if release := unameField(releaseField); release != "" {
		return release
	}
	return "Unknown"
}

// OSName returns the OS pretty name from /etc/os-release, or "Linux".
func OSName() string {
	content, err := readPseudoFile(osReleasePath)
	if err != nil {
		slog.Debug("os-release probe failed", "error", err)
		return "Linux"
	}
	if name := prettyNameFromOSRelease(content); name != "" {
		return name
	}
	return "Linux"
}

func prettyNameFromOSRelease(content string) string {
	for _, line := range strings.Split(content, "\n") {
		if strings.HasPrefix(line, "PRETTY_NAME=") {
			_, value, _ := strings.Cut(line, "=")
			return strings.Trim(value, `"`)
		}
	}
	return ""
}

type utsField int

const (
	releaseField utsField = iota
	machineField
)

// unameField returns one field of the uname result, "" on failure.
func unameField(field utsField) string {
	var uts unix.Utsname
	if err := unix.Uname(&uts); err != nil {
		slog.Debug("uname failed", "error", err)
		return ""
	}
	switch field {
	case machineField:
		return utsString(uts.Machine[:])
	default:
		return utsString(uts.Release[:])
	}
}

func utsString(field []byte) string {
	if i := bytes.IndexByte(field, 0); i >= 0 {
		field = field[:i]
	}
	return string(field)
}

func fallbackCPUCount() int {
	return runtime.NumCPU()
}
