package sysinfo

import "testing"

func TestMemoryFromMemInfo(t *testing.T) {
	content := `MemTotal:        8000000 kB
MemFree:         2000000 kB
MemAvailable:    5000000 kB
Buffers:          300000 kB
`
	used, total, ok := memoryFromMemInfo(content)
	if !ok {
		t.Fatal("memoryFromMemInfo rejected valid content")
	}
	if total != 8000000*1024 {
		t.Fatalf("total = %d; want %d", total, uint64(8000000*1024))
	}
	if used != 3000000*1024 {
		t.Fatalf("used = %d; want %d", used, uint64(3000000*1024))
	}
}

func TestMemoryFromMemInfoRejectsGarbage(t *testing.T) {
	for _, content := range []string{
		"",
		"MemTotal: not-a-number kB\n",
		"MemTotal: 100 kB\nMemAvailable: 200 kB\n", // available > total
	} {
		if _, _, ok := memoryFromMemInfo(content); ok {
			t.Fatalf("memoryFromMemInfo accepted %q", content)
		}
	}
}

func TestPrettyNameFromOSRelease(t *testing.T) {
	content := `NAME="Debian GNU/Linux"
VERSION_ID="13"
PRETTY_NAME="Debian GNU/Linux 13 (trixie)"
ID=debian
`
	want := "Debian GNU/Linux 13 (trixie)"
	if got := prettyNameFromOSRelease(content); got != want {
		t.Fatalf("prettyNameFromOSRelease = %q; want %q", got, want)
	}

	if got := prettyNameFromOSRelease("ID=debian\n"); got != "" {
		t.Fatalf("prettyNameFromOSRelease without PRETTY_NAME = %q; want empty", got)
	}
}

func TestUtsString(t *testing.T) {
	field := []byte{'6', '.', '1', '.', '0', 0, 'x', 'x'}
	if got := utsString(field); got != "6.1.0" {
		t.Fatalf("utsString = %q; want 6.1.0", got)
	}

	if got := utsString([]byte{'a', 'b'}); got != "ab" {
		t.Fatalf("utsString without NUL = %q; want ab", got)
	}
}

func TestMemoryInfoFormat(t *testing.T) {
	// MemoryInfo always yields the "X GiB / Y GiB" shape, even when the
	// probes return zeros.
	got := MemoryInfo()
	if got == "" {
		t.Fatal("MemoryInfo returned empty string")
	}
}
