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

package monitor

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/NishiOwO/86Box/hardware/mda"
)

var (
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("2")).
			Padding(0, 1)

	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	labelStyle = lipgloss.NewStyle().Faint(true)
	onStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
)

var registerNames = [16]string{
	"htotal", "hdisp", "hsync", "swidth",
	"vtotal", "vadjust", "vdisp", "vsync",
	"ilace", "maxscan", "cstart", "cend",
	"starthi", "startlo", "cursorhi", "cursorlo",
}

func (mon *Monitor) registerPanel() string {
	regs := mon.mch.MDA.Registers()

	s := strings.Builder{}
	s.WriteString(titleStyle.Render("CRTC"))
	for i, n := range registerNames {
		s.WriteString(fmt.Sprintf("\n%s %s %#02x",
			labelStyle.Render(fmt.Sprintf("R%-2d", i)),
			fmt.Sprintf("%-8s", n), regs[i]))
	}
	s.WriteString(fmt.Sprintf("\n%s %#02x", labelStyle.Render("index"), mon.mch.MDA.Index()))

	return panelStyle.Render(s.String())
}

func flag(name string, set bool) string {
	if set {
		return onStyle.Render(strings.ToUpper(name))
	}
	return labelStyle.Render(name)
}

func (mon *Monitor) statusPanel() string {
	m := mon.mch.MDA
	row, sc, ma := m.Counters()
	active, blank := m.Durations()
	reads, writes := m.MemoryAccesses()
	ctrl := m.Control()
	stat := m.Status()
	w, h := mon.mch.Display.Size()
	cols, rows := mon.mch.Display.Resolution()

	lines := []string{
		titleStyle.Render("adapter"),
		fmt.Sprintf("%s %s", labelStyle.Render("phase   "), m.Phase()),
		fmt.Sprintf("%s %d", labelStyle.Render("clock   "), m.Clock()),
		fmt.Sprintf("%s %d/%d", labelStyle.Render("duration"), active, blank),
		fmt.Sprintf("%s %d", labelStyle.Render("row     "), row),
		fmt.Sprintf("%s %d", labelStyle.Render("scanline"), sc),
		fmt.Sprintf("%s %#04x", labelStyle.Render("address "), ma),
		fmt.Sprintf("%s %d", labelStyle.Render("frames  "), m.Frames()),
		fmt.Sprintf("%s %d", labelStyle.Render("blink   "), m.Blink()),
		fmt.Sprintf("%s %d/%d", labelStyle.Render("memory  "), reads, writes),
		fmt.Sprintf("%s %#02x %s %s %s", labelStyle.Render("control "), ctrl,
			flag("hires", ctrl&mda.CtrlHighRes != 0),
			flag("enable", ctrl&mda.CtrlEnable != 0),
			flag("blink", ctrl&mda.CtrlBlink != 0)),
		fmt.Sprintf("%s %#02x %s %s", labelStyle.Render("status  "), stat,
			flag("hretrace", stat&mda.StatusHRetrace != 0),
			flag("vretrace", stat&mda.StatusVRetrace != 0)),
		fmt.Sprintf("%s %s %s", labelStyle.Render("beam    "),
			flag("display", m.DisplayEnabled()), flag("cursor", m.CursorOn())),
		fmt.Sprintf("%s %dx%d (%dx%d) %.2fHz", labelStyle.Render("output  "),
			w, h, cols, rows, m.RefreshRate()),
	}

	return panelStyle.Render(strings.Join(lines, "\n"))
}

// panels returns the register and status panels side by side.
func (mon *Monitor) panels() string {
	return lipgloss.JoinHorizontal(lipgloss.Top, mon.registerPanel(), " ", mon.statusPanel())
}
