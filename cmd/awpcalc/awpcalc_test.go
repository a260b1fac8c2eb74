package main

import (
	"bytes"
	"strings"
	"testing"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestDuct(t *testing.T) {
	out, err := run(t, "duct", "--shape", "circular", "--diameter", "350", "--flow", "600", "--length", "10")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"Velocity", "m/s", "Friction rate", "turbulent"} {
		if !strings.Contains(out, want) {
			t.Errorf("output lacks %q:\n%s", want, out)
		}
	}
}

func TestConvert(t *testing.T) {
	out, err := run(t, "convert", "length", "3 1/8", "--from", "in", "--to", "mm")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out, "79.37") {
		t.Errorf("out = %q", out)
	}

	if _, err := run(t, "convert", "velocity", "abc", "--from", "m/s", "--to", "fpm"); err == nil {
		t.Error("non-numeric value accepted")
	}
}

func TestFan(t *testing.T) {
	out, err := run(t, "fan", "q2", "q1=2", "n1=1000", "n2=1500", "d1=0.5", "d2=0.5")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "q2 = 3 ") {
		t.Errorf("out = %q", out)
	}
	if _, err := run(t, "fan", "warp", "x=1"); err == nil {
		t.Error("unknown law accepted")
	}
}

func TestSearchTable(t *testing.T) {
	out, err := run(t, "search", "table", "cooling-loads", "office", "general")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "2 of 32 shown") {
		t.Errorf("out = %q", out)
	}
}

func TestSearchFilters(t *testing.T) {
	out, err := run(t, "search", "filters", "--h", "592", "--w", "592", "--tol", "5")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "matching rows") {
		t.Errorf("out = %q", out)
	}
}
