// This file is part of 86Box.
//
// 86Box is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// 86Box is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with 86Box.  If not, see <https://www.gnu.org/licenses/>.

// Package preferences holds the user preferences for the emulated adapter.
// Preferences are stored in the prefs file of the resource directory.
//
// Changes to the preferences are passed to the emulation with post hooks,
// which are installed by the owner of the emulation.
package preferences

import (
	"fmt"

	"github.com/NishiOwO/86Box/curated"
	"github.com/NishiOwO/86Box/hardware/clocks"
	"github.com/NishiOwO/86Box/hardware/display"
	"github.com/NishiOwO/86Box/paths"
	"github.com/NishiOwO/86Box/prefs"
)

// Preferences for the adapter.
type Preferences struct {
	dsk *prefs.Disk

	// the name of the display scheme
	Scheme prefs.String

	// the clock of the emulated CPU in MHz. the adapter's timing is measured
	// in CPU cycles
	CPUClock prefs.Float

	// path to a character ROM. the built-in font is used if empty
	FontROM prefs.String

	// scaling of the window and of screenshots
	Scale prefs.Float

	// whether to limit the emulation to the refresh rate
	FPSCap prefs.Bool
}

func (p *Preferences) String() string {
	return fmt.Sprintf("scheme=%s cpu=%sMHz font=%q scale=%s fpscap=%s",
		p.Scheme.String(), p.CPUClock.String(), p.FontROM.String(), p.Scale.String(), p.FPSCap.String())
}

// NewPreferences is the preferred method of initialisation for the Preferences
// type. Preferences are loaded from the file at pth or from the default prefs
// file if pth is empty.
func NewPreferences(pth string) (*Preferences, error) {
	p := &Preferences{}
	p.SetDefaults()

	p.Scheme.SetHookPre(func(v prefs.Value) error {
		for _, s := range display.Schemes {
			if s == v.(string) {
				return nil
			}
		}
		return fmt.Errorf("unknown display scheme (%s)", v)
	})
	p.CPUClock.SetHookPre(func(v prefs.Value) error {
		if v.(float64) <= 0 {
			return fmt.Errorf("cpu clock must be positive")
		}
		return nil
	})
	p.Scale.SetHookPre(func(v prefs.Value) error {
		if v.(float64) <= 0 {
			return fmt.Errorf("scale must be positive")
		}
		return nil
	})

	var err error
	if pth == "" {
		pth, err = paths.ResourcePath("", prefs.DefaultPrefsFile)
		if err != nil {
			return nil, err
		}
	}

	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}
	if err := p.dsk.Add("display.scheme", &p.Scheme); err != nil {
		return nil, err
	}
	if err := p.dsk.Add("cpu.clock", &p.CPUClock); err != nil {
		return nil, err
	}
	if err := p.dsk.Add("font.rom", &p.FontROM); err != nil {
		return nil, err
	}
	if err := p.dsk.Add("display.scale", &p.Scale); err != nil {
		return nil, err
	}
	if err := p.dsk.Add("display.fpscap", &p.FPSCap); err != nil {
		return nil, err
	}

	err = p.dsk.Load(true)
	if err != nil {
		if !curated.Is(err, prefs.NoPrefsFile) {
			return nil, err
		}
	}

	return p, nil
}

// SetDefaults reverts all preferences to the default values. Hooks are
// called.
func (p *Preferences) SetDefaults() {
	_ = p.Scheme.Set(display.SchemeDefault)
	_ = p.CPUClock.Set(clocks.XT)
	_ = p.FontROM.Set("")
	_ = p.Scale.Set(1.0)
	_ = p.FPSCap.Set(true)
}

// Load preferences from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load(false)
}

// Save preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}

// Path returns the location of the prefs file.
func (p *Preferences) Path() string {
	return p.dsk.Path()
}
