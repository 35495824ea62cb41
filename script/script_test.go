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

package script_test

import (
	"bytes"
	"context"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/NishiOwO/86Box/curated"
	"github.com/NishiOwO/86Box/hardware/machine"
	"github.com/NishiOwO/86Box/script"
	"github.com/NishiOwO/86Box/test"
)

func newScript(t *testing.T) (*script.Script, *machine.Machine, *bytes.Buffer) {
	t.Helper()
	m, err := machine.NewMachine(nil)
	test.DemandSuccess(t, err)
	m.Display.SetFPSCap(false)

	out := &bytes.Buffer{}
	scr := script.NewScript(m, out)
	t.Cleanup(func() {
		scr.Close()
		_ = m.End()
	})
	return scr, m, out
}

func TestRegisters(t *testing.T) {
	scr, m, out := newScript(t)

	err := scr.RunString(context.Background(), `
		out(0x3b4, 1)
		out(0x3b5, 0x28)
		print(register(1), inp(0x3b5))
	`)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, m.MDA.Register(1), uint8(0x28))
	test.ExpectEquality(t, out.String(), "40\t40\n")
}

func TestMemory(t *testing.T) {
	scr, m, out := newScript(t)

	err := scr.RunString(context.Background(), `
		poke(0xb0000, 0x41, 0x70)
		print(peek(0xb0000), peek(0xb0001))
	`)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, m.MDA.Peek(0), uint8(0x41))
	test.ExpectEquality(t, m.MDA.Peek(1), uint8(0x70))
	test.ExpectEquality(t, out.String(), "65\t112\n")

	// the memory window is mirrored every 4k
	err = scr.RunString(context.Background(), `print(peek(0xb1000))`)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, strings.HasSuffix(out.String(), "65\n"), true)
}

func TestFrames(t *testing.T) {
	scr, m, out := newScript(t)

	err := scr.RunString(context.Background(), `
		set_mode()
		puts(0, 0, "hello")
		puts(24, 75, "world", 0x70)
		cursor(0, 5)
		run_frames(3)
		local page = text_page()
		print(frames(), #page, page[1], page[25])
	`)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, m.MDA.Frames(), uint64(3))
	test.ExpectEquality(t, out.String(), "3\t25\thello\t"+strings.Repeat(" ", 75)+"world\n")
	test.ExpectEquality(t, m.MDA.Register(15), uint8(5))
}

func TestArgumentErrors(t *testing.T) {
	scr, _, _ := newScript(t)

	for _, src := range []string{
		`out(0x3b4)`,
		`out(0x3b4, 256)`,
		`poke(0xb0000)`,
		`peek(-1)`,
		`register(32)`,
		`run_frames(-1)`,
		`error("stop")`,
	} {
		err := scr.RunString(context.Background(), src)
		test.ExpectEquality(t, curated.Is(err, script.ScriptError), true)
	}
}

func TestCancelled(t *testing.T) {
	scr, _, _ := newScript(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := scr.RunString(ctx, `while true do end`)
	test.ExpectFailure(t, err)
}

func TestRunFile(t *testing.T) {
	scr, m, _ := newScript(t)

	dir := t.TempDir()
	src := filepath.Join(dir, "test.lua")
	png := filepath.Join(dir, "test.png")
	lua := "set_mode()\nclear(0x70)\nrun_frames(2)\nscreenshot(\"" + filepath.ToSlash(png) + "\")\n"
	test.DemandSuccess(t, os.WriteFile(src, []byte(lua), 0o644))

	test.DemandSuccess(t, scr.RunFile(context.Background(), src))
	test.ExpectEquality(t, m.MDA.Peek(1), uint8(0x70))

	b, err := os.ReadFile(png)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, bytes.HasPrefix(b, []byte("\x89PNG")), true)

	test.ExpectFailure(t, scr.RunFile(context.Background(), filepath.Join(dir, "missing.lua")))
}

func TestRunFramesInterrupted(t *testing.T) {
	scr, m, _ := newScript(t)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	err := scr.RunString(ctx, `set_mode() run_frames(1000000000)`)
	test.ExpectEquality(t, curated.Is(err, script.ScriptError), true)
	test.ExpectSuccess(t, m.MDA.Frames() < 1000000000)
}

func TestScreenshot(t *testing.T) {
	scr, _, _ := newScript(t)

	dir := t.TempDir()
	pth := filepath.Join(dir, "shot.png")
	err := scr.RunString(context.Background(), `set_mode() run_frames(2) screenshot("`+filepath.ToSlash(pth)+`")`)
	test.DemandSuccess(t, err)

	f, err := os.Open(pth)
	test.DemandSuccess(t, err)
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, cfg.Width > 0 && cfg.Height > 0)

	// a directory cannot be written to
	err = scr.RunString(context.Background(), `screenshot("`+filepath.ToSlash(dir)+`")`)
	test.ExpectEquality(t, curated.Is(err, script.ScriptError), true)
}
