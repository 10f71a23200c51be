package sysinfo

import "testing"

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		in   uint64
		want string
	}{
		{512, "512 B"},
		{1536, "1.5 KB"},
		{1024 * 1024, "1.0 MB"},
		{8 * 1024 * 1024 * 1024, "8.0 GB"},
	}

	for _, tc := range tests {
		if got := FormatBytes(tc.in); got != tc.want {
			t.Fatalf("FormatBytes(%d) = %q; want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatGiB(t *testing.T) {
	tests := []struct {
		in   uint64
		want string
	}{
		{0, "0.00 GiB"},
		{1073741824, "1.00 GiB"},
		{8 * 1073741824, "8.00 GiB"},
		{1610612736, "1.50 GiB"},
	}

	for _, tc := range tests {
		if got := FormatGiB(tc.in); got != tc.want {
			t.Fatalf("FormatGiB(%d) = %q; want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatUptime(t *testing.T) {
	tests := []struct {
		in   uint64
		want string
	}{
		{0, "0m"},
		{59, "0m"},
		{60, "1m"},
		{3599, "59m"},
		{3600, "1h 0m"},
		{3 * 3600 * 24, "72h 0m"},
		{7425, "2h 3m"},
	}

	for _, tc := range tests {
		if got := FormatUptime(tc.in); got != tc.want {
			t.Fatalf("FormatUptime(%d) = %q; want %q", tc.in, got, tc.want)
		}
	}
}

func TestTruncateString(t *testing.T) {
	if got := TruncateString("Hello World", 8); got != "Hello..." {
		t.Fatalf("TruncateString short failed: got %q", got)
	}
	if got := TruncateString("Hi", 5); got != "Hi" {
		t.Fatalf("TruncateString no-truncate failed: got %q", got)
	}
	if got := TruncateString("abcdef", 2); got != "ab" {
		t.Fatalf("TruncateString tiny-max failed: got %q", got)
	}
}

func TestPadRight(t *testing.T) {
	if got := PadRight("Hi", 5); got != "Hi   " {
		t.Fatalf("PadRight failed: got %q", got)
	}
	if got := PadRight("HelloWorld", 5); got != "HelloWorld" {
		t.Fatalf("PadRight truncate-case failed: got %q", got)
	}
}
