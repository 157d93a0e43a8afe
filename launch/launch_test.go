package launch

import (
	"flag"
	"testing"
)

func TestFlags(t *testing.T) {
	var f Flags
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	f.Register(fs)

	err := fs.Parse([]string{"-level", "playground", "-preset", "quake", "-debug", "-statsview"})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	want := Flags{Level: "playground", Preset: "quake", Debug: true, StatsView: true}
	if f != want {
		t.Errorf("flags = %+v, want %+v", f, want)
	}
}
