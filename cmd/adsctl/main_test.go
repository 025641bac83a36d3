package main

import (
	"strings"
	"testing"
)

func TestRunRejectsUnknownCommand(t *testing.T) {
	err := run([]string{"frobnicate"})
	if err == nil {
		t.Fatal("run(frobnicate) = nil, want error")
	}
	if !strings.Contains(err.Error(), "frobnicate") {
		t.Errorf("error = %v, want it to name the command", err)
	}
}

func TestRunRequiresCommand(t *testing.T) {
	if err := run(nil); err == nil {
		t.Fatal("run() with no args = nil, want error")
	}
}

func TestOverlay(t *testing.T) {
	t.Setenv("ADSCTL_TEST_OVERLAY", "from-env")

	tests := []struct {
		name      string
		file      string
		flagValue string
		envKey    string
		want      string
	}{
		{name: "flag wins", file: "from-file", flagValue: "from-flag", envKey: "ADSCTL_TEST_OVERLAY", want: "from-flag"},
		{name: "env beats file", file: "from-file", envKey: "ADSCTL_TEST_OVERLAY", want: "from-env"},
		{name: "file survives", file: "from-file", envKey: "ADSCTL_TEST_UNSET", want: "from-file"},
		{name: "no env key", file: "from-file", want: "from-file"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.file
			overlay(&got, tt.flagValue, tt.envKey)
			if got != tt.want {
				t.Errorf("overlay = %q, want %q", got, tt.want)
			}
		})
	}
}
