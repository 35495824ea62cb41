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

// Package script drives the machine from a Lua program. The program stands in
// for the CPU: it writes the CRTC registers through the I/O ports, fills video
// memory and runs the machine for a number of frames.
//
// The following functions are available to the program:
//
//	out(port, value)              write to an I/O port
//	inp(port)                     read from an I/O port
//	poke(address, value, ...)     write consecutive bytes of memory
//	peek(address)                 read a byte of memory
//	set_mode()                    program the 80x25 text mode
//	clear([attr])                 clear the page
//	puts(row, col, text, [attr])  write text to the page
//	cursor(row, col)              move the cursor
//	run_frames(n)                 run until n more frames have been presented
//	frames()                      the number of frames presented
//	register(n)                   the value of a CRTC register
//	text_page()                   the displayed page as a table of strings
//	screenshot(file)              save the most recent frame as a PNG file
//	print(...)                    write to the script output
package script

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	lua "github.com/yuin/gopher-lua"

	"github.com/NishiOwO/86Box/curated"
	"github.com/NishiOwO/86Box/hardware/machine"
	"github.com/NishiOwO/86Box/logger"
	"github.com/NishiOwO/86Box/screenshot"
)

// ScriptError is the pattern for all errors returned by the package.
const ScriptError = "script: %v"

// Script is a Lua interpreter bound to a machine.
type Script struct {
	mch *machine.Machine
	out io.Writer
	L   *lua.LState
}

// NewScript is the preferred method of initialisation for the Script type.
// Output from the print function is written to out.
func NewScript(mch *machine.Machine, out io.Writer) *Script {
	scr := &Script{
		mch: mch,
		out: out,
		L:   lua.NewState(),
	}

	for name, fn := range map[string]lua.LGFunction{
		"out":        scr.luaOut,
		"inp":        scr.luaIn,
		"poke":       scr.luaPoke,
		"peek":       scr.luaPeek,
		"set_mode":   scr.luaSetMode,
		"clear":      scr.luaClear,
		"puts":       scr.luaPuts,
		"cursor":     scr.luaCursor,
		"run_frames": scr.luaRunFrames,
		"frames":     scr.luaFrames,
		"register":   scr.luaRegister,
		"text_page":  scr.luaTextPage,
		"screenshot": scr.luaScreenshot,
		"print":      scr.luaPrint,
	} {
		scr.L.SetGlobal(name, scr.L.NewFunction(fn))
	}

	return scr
}

// Close the interpreter.
func (scr *Script) Close() {
	scr.L.Close()
}

// RunString runs the Lua program in src. The program is stopped if the
// context is cancelled.
func (scr *Script) RunString(ctx context.Context, src string) error {
	scr.L.SetContext(ctx)
	defer scr.L.RemoveContext()
	if err := scr.L.DoString(src); err != nil {
		return curated.Errorf(ScriptError, err)
	}
	return nil
}

// RunFile runs the Lua program in the named file.
func (scr *Script) RunFile(ctx context.Context, pth string) error {
	logger.Logf(logger.Allow, "script", "running %s", pth)
	scr.L.SetContext(ctx)
	defer scr.L.RemoveContext()
	if err := scr.L.DoFile(pth); err != nil {
		return curated.Errorf(ScriptError, err)
	}
	return nil
}

func checkByte(L *lua.LState, n int) uint8 {
	v := L.CheckInt(n)
	if v < 0 || v > 0xff {
		L.ArgError(n, "value out of range")
	}
	return uint8(v)
}

func checkPort(L *lua.LState, n int) uint16 {
	v := L.CheckInt(n)
	if v < 0 || v > 0xffff {
		L.ArgError(n, "port out of range")
	}
	return uint16(v)
}

func checkAddress(L *lua.LState, n int) uint32 {
	v := L.CheckInt(n)
	if v < 0 || v > 0xfffff {
		L.ArgError(n, "address out of range")
	}
	return uint32(v)
}

func (scr *Script) luaOut(L *lua.LState) int {
	scr.mch.Bus.Out(checkPort(L, 1), checkByte(L, 2))
	return 0
}

func (scr *Script) luaIn(L *lua.LState) int {
	L.Push(lua.LNumber(scr.mch.Bus.In(checkPort(L, 1))))
	return 1
}

func (scr *Script) luaPoke(L *lua.LState) int {
	addr := checkAddress(L, 1)
	top := L.GetTop()
	if top < 2 {
		L.ArgError(2, "value expected")
	}
	for n := 2; n <= top; n++ {
		scr.mch.Bus.Write(addr+uint32(n-2), checkByte(L, n))
	}
	return 0
}

func (scr *Script) luaPeek(L *lua.LState) int {
	L.Push(lua.LNumber(scr.mch.Bus.Read(checkAddress(L, 1))))
	return 1
}

func (scr *Script) luaSetMode(_ *lua.LState) int {
	scr.mch.SetMode80x25()
	return 0
}

func (scr *Script) luaClear(L *lua.LState) int {
	attr := uint8(0x07)
	if L.GetTop() >= 1 {
		attr = checkByte(L, 1)
	}
	scr.mch.Clear(attr)
	return 0
}

func (scr *Script) luaPuts(L *lua.LState) int {
	row := L.CheckInt(1)
	col := L.CheckInt(2)
	text := L.CheckString(3)
	attr := uint8(0x07)
	if L.GetTop() >= 4 {
		attr = checkByte(L, 4)
	}
	scr.mch.Print(row, col, text, attr)
	return 0
}

func (scr *Script) luaCursor(L *lua.LState) int {
	scr.mch.SetCursor(L.CheckInt(1), L.CheckInt(2))
	return 0
}

func (scr *Script) luaRunFrames(L *lua.LState) int {
	n := L.OptInt(1, 1)
	if n < 0 {
		L.ArgError(1, "negative frame count")
	}

	// the context is checked between frames so that a long run can be
	// interrupted
	ctx := L.Context()
	err := scr.mch.Run(func() bool {
		if n == 0 || (ctx != nil && ctx.Err() != nil) {
			return false
		}
		n--
		return true
	})
	if err != nil {
		L.RaiseError("%v", err)
	}
	if ctx != nil && ctx.Err() != nil {
		L.RaiseError("%v", ctx.Err())
	}
	return 0
}

func (scr *Script) luaFrames(L *lua.LState) int {
	L.Push(lua.LNumber(scr.mch.MDA.Frames()))
	return 1
}

func (scr *Script) luaRegister(L *lua.LState) int {
	n := L.CheckInt(1)
	if n < 0 || n > 31 {
		L.ArgError(1, "register out of range")
	}
	L.Push(lua.LNumber(scr.mch.MDA.Register(n)))
	return 1
}

func (scr *Script) luaTextPage(L *lua.LState) int {
	tbl := L.NewTable()
	for _, l := range scr.mch.MDA.TextPage() {
		tbl.Append(lua.LString(l))
	}
	L.Push(tbl)
	return 1
}

func (scr *Script) luaScreenshot(L *lua.LState) int {
	pth := L.CheckString(1)
	f, err := os.Create(pth)
	if err != nil {
		L.RaiseError("%v", err)
	}
	if err := screenshot.Write(f, scr.mch.Display.Image(), scr.mch.Prefs.Scale.Get().(float64)); err != nil {
		_ = f.Close()
		L.RaiseError("%v", err)
	}
	if err := f.Close(); err != nil {
		L.RaiseError("%v", err)
	}
	return 0
}

func (scr *Script) luaPrint(L *lua.LState) int {
	top := L.GetTop()
	s := make([]string, 0, top)
	for n := 1; n <= top; n++ {
		s = append(s, L.ToStringMeta(L.Get(n)).String())
	}
	fmt.Fprintln(scr.out, strings.Join(s, "\t"))
	return 0
}
