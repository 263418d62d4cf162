package keymaps

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// LayoutID identifies an installed keyboard layout (an HKL on Windows).
type LayoutID uintptr

func (id LayoutID) String() string { return fmt.Sprintf("%#08x", uintptr(id)) }

// KeyDef describes one physical key of a layout: where it sits, which
// virtual key it reports, and what it types under each shift state.
type KeyDef struct {
	ScanCode   ScanCode   `yaml:"scan"`
	VirtualKey VirtualKey `yaml:"vk"`

	Base         string `yaml:"base,omitempty"`
	Shift        string `yaml:"shift,omitempty"`
	Ctrl         string `yaml:"ctrl,omitempty"`
	ShiftCtrl    string `yaml:"shift+ctrl,omitempty"`
	Alt          string `yaml:"alt,omitempty"`
	ShiftAlt     string `yaml:"shift+alt,omitempty"`
	CtrlAlt      string `yaml:"ctrl+alt,omitempty"`
	ShiftCtrlAlt string `yaml:"shift+ctrl+alt,omitempty"`

	// Dead lists the shift states (by description key) whose output is a
	// dead key rather than a character.
	Dead []string `yaml:"dead,omitempty"`
}

// Output returns the text typed under ss and whether it is a dead key.
func (k KeyDef) Output(ss ShiftState) (text string, dead bool) {
	switch ss {
	case 0:
		text = k.Base
	case ShiftStateShift:
		text = k.Shift
	case ShiftStateCtrl:
		text = k.Ctrl
	case ShiftStateShift | ShiftStateCtrl:
		text = k.ShiftCtrl
	case ShiftStateMenu:
		text = k.Alt
	case ShiftStateShift | ShiftStateMenu:
		text = k.ShiftAlt
	case ShiftStateCtrl | ShiftStateMenu:
		text = k.CtrlAlt
	case ShiftStateShift | ShiftStateCtrl | ShiftStateMenu:
		text = k.ShiftCtrlAlt
	}
	for _, d := range k.Dead {
		if s, err := ParseShiftState(d); err == nil && s == ss {
			return text, true
		}
	}
	return text, false
}

// Description is an offline keyboard layout: the data a layout probe would
// otherwise read from the OS.
type Description struct {
	Name string   `yaml:"name"`
	ID   LayoutID `yaml:"id"`
	Keys []KeyDef `yaml:"keys"`
}

// Validate checks the description for values a translator cannot serve.
func (d *Description) Validate() error {
	if d.Name == "" {
		return fmt.Errorf("layout description has no name")
	}
	if d.ID == 0 {
		return fmt.Errorf("layout %q: id must be non-zero", d.Name)
	}
	seen := map[ScanCode]struct{}{}
	for i, k := range d.Keys {
		if k.ScanCode == 0 || k.ScanCode > MaxScanCode {
			return fmt.Errorf("layout %q: key %d: scan code %#x out of range", d.Name, i, k.ScanCode)
		}
		if k.VirtualKey == 0 || k.VirtualKey == 0xFF {
			return fmt.Errorf("layout %q: key %d: virtual key %d out of range", d.Name, i, k.VirtualKey)
		}
		if _, dup := seen[k.ScanCode]; dup {
			return fmt.Errorf("layout %q: scan code %#x defined twice", d.Name, k.ScanCode)
		}
		seen[k.ScanCode] = struct{}{}
		for _, dead := range k.Dead {
			if _, err := ParseShiftState(dead); err != nil {
				return fmt.Errorf("layout %q: key %d: %w", d.Name, i, err)
			}
		}
	}
	return nil
}

// LoadDescription decodes and validates a YAML layout description.
func LoadDescription(r io.Reader) (*Description, error) {
	var d Description
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&d); err != nil {
		return nil, fmt.Errorf("decoding layout description: %w", err)
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return &d, nil
}

// LoadDescriptionFile reads a YAML layout description from path.
func LoadDescriptionFile(path string) (*Description, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return LoadDescription(f)
}

// UnmarshalYAML accepts either a winuser.h name ("OEM_5") or a number.
func (vk *VirtualKey) UnmarshalYAML(node *yaml.Node) error {
	if v, ok := VirtualKeyByName(node.Value); ok {
		*vk = v
		return nil
	}
	n, err := strconv.ParseUint(node.Value, 0, 8)
	if err != nil {
		return fmt.Errorf("line %d: unknown virtual key %q", node.Line, node.Value)
	}
	*vk = VirtualKey(n)
	return nil
}

// MarshalYAML writes the winuser.h name when one exists.
func (vk VirtualKey) MarshalYAML() (interface{}, error) {
	if name, ok := VirtualKeyName(vk); ok {
		return name, nil
	}
	return int(vk), nil
}

// UnmarshalYAML accepts decimal or 0x-prefixed scan codes.
func (sc *ScanCode) UnmarshalYAML(node *yaml.Node) error {
	n, err := strconv.ParseUint(node.Value, 0, 8)
	if err != nil {
		return fmt.Errorf("line %d: invalid scan code %q", node.Line, node.Value)
	}
	*sc = ScanCode(n)
	return nil
}

// UnmarshalYAML accepts decimal or 0x-prefixed layout ids.
func (id *LayoutID) UnmarshalYAML(node *yaml.Node) error {
	n, err := strconv.ParseUint(node.Value, 0, 64)
	if err != nil {
		return fmt.Errorf("line %d: invalid layout id %q", node.Line, node.Value)
	}
	*id = LayoutID(n)
	return nil
}
