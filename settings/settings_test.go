package settings

import (
	"errors"
	"io"
	"testing"

	"github.com/automoto/goldenfps/config"
	"github.com/sirupsen/logrus"
)

type memItems struct {
	data    map[string][]byte
	loadErr error
}

func (m *memItems) LoadItem(name string) ([]byte, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	return m.data[name], nil
}

func (m *memItems) SaveItem(name string, data []byte) error {
	m.data[name] = data
	return nil
}

func testStore() (*Store, *memItems) {
	log := logrus.New()
	log.SetOutput(io.Discard)
	m := &memItems{data: make(map[string][]byte)}
	return &Store{items: m, log: log}, m
}

func TestSaveAndLoad(t *testing.T) {
	s, _ := testStore()
	if got, err := s.Load(); got != nil || err != nil {
		t.Fatalf("Load on empty store = %v, %v", got, err)
	}

	want := Saved{SensitivityX: 0.004, SensitivityY: 0.001, Preset: config.PresetQuake, Level: "playground"}
	if err := s.Save(&want); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := s.Load()
	if err != nil || got == nil || *got != want {
		t.Fatalf("Load = %+v, %v; want %+v", got, err, want)
	}
}

func TestLoadErrors(t *testing.T) {
	s, m := testStore()
	m.data[settingsKey] = []byte("{not json")
	if _, err := s.Load(); err == nil {
		t.Error("expected a parse error")
	}

	m.loadErr = errors.New("disk gone")
	if got, err := s.Load(); got != nil || err != nil {
		t.Errorf("Load with a failing backend = %v, %v; want nothing", got, err)
	}
}

func TestStoreWithoutBackend(t *testing.T) {
	s := &Store{log: logrus.New()}
	if err := s.Save(&Saved{}); err != nil {
		t.Errorf("Save = %v", err)
	}
	if got, err := s.Load(); got != nil || err != nil {
		t.Errorf("Load = %v, %v", got, err)
	}
}

func TestApply(t *testing.T) {
	in := config.Input
	preset, level := Apply(&Saved{SensitivityX: 0.01, Preset: "gone", Level: "playground"}, &in, config.PresetGolden, "")
	if in.SensitivityX != 0.01 || in.SensitivityY != config.Input.SensitivityY {
		t.Errorf("sensitivity = %v/%v", in.SensitivityX, in.SensitivityY)
	}
	if preset != config.PresetGolden {
		t.Errorf("preset = %q, want the default for an unknown saved preset", preset)
	}
	if level != "playground" {
		t.Errorf("level = %q", level)
	}

	cur := Current(&in, config.PresetNoclip, "arena")
	if cur.SensitivityX != 0.01 || cur.Preset != config.PresetNoclip || cur.Level != "arena" {
		t.Errorf("Current = %+v", cur)
	}
}
