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

package prefs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/NishiOwO/86Box/curated"
	"github.com/NishiOwO/86Box/prefs"
	"github.com/NishiOwO/86Box/test"
)

func prefsFile(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "preferences")
}

func cmpPrefsFile(t *testing.T, fn string, expected string) {
	t.Helper()
	data, err := os.ReadFile(fn)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, string(data), prefs.WarningBoilerPlate+"\n"+expected)
}

func TestBool(t *testing.T) {
	fn := prefsFile(t)
	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v, w, x prefs.Bool
	test.ExpectSuccess(t, dsk.Add("test", &v))
	test.ExpectSuccess(t, dsk.Add("testB", &w))
	test.ExpectSuccess(t, dsk.Add("testC", &x))

	test.ExpectSuccess(t, v.Set(true))
	test.ExpectSuccess(t, w.Set("foo"))
	test.ExpectSuccess(t, x.Set("true"))

	test.DemandSuccess(t, dsk.Save())
	cmpPrefsFile(t, fn, "test :: true\ntestB :: false\ntestC :: true\n")
}

func TestString(t *testing.T) {
	fn := prefsFile(t)
	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.String
	test.ExpectSuccess(t, dsk.Add("display.scheme", &v))
	test.ExpectSuccess(t, v.Set("amber"))
	test.DemandSuccess(t, dsk.Save())
	cmpPrefsFile(t, fn, "display.scheme :: amber\n")

	v.SetMaxLen(3)
	test.ExpectEquality(t, v.String(), "amb")
}

func TestInt(t *testing.T) {
	fn := prefsFile(t)
	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v, w prefs.Int
	test.ExpectSuccess(t, dsk.Add("number", &v))
	test.ExpectSuccess(t, dsk.Add("numberB", &w))
	test.ExpectSuccess(t, v.Set(10))
	test.ExpectSuccess(t, w.Set("99"))

	test.DemandSuccess(t, dsk.Save())
	cmpPrefsFile(t, fn, "number :: 10\nnumberB :: 99\n")

	test.ExpectFailure(t, v.Set("---"))
	test.ExpectFailure(t, v.Set(1.0))
}

func TestFloat(t *testing.T) {
	var v prefs.Float
	test.ExpectEquality(t, v.Get(), prefs.Value(0.0))
	test.ExpectSuccess(t, v.Set("4.772728"))
	test.ExpectEquality(t, v.String(), "4.772728")
	test.ExpectFailure(t, v.Set(true))
}

func TestLoad(t *testing.T) {
	fn := prefsFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var scheme prefs.String
	var clock prefs.Float
	test.ExpectSuccess(t, dsk.Add("display.scheme", &scheme))
	test.ExpectSuccess(t, dsk.Add("cpu.clock", &clock))

	// file does not exist yet
	err = dsk.Load(false)
	test.ExpectSuccess(t, curated.Is(err, prefs.NoPrefsFile))

	test.ExpectSuccess(t, scheme.Set("green"))
	test.ExpectSuccess(t, clock.Set(8.0))
	test.DemandSuccess(t, dsk.Save())

	test.ExpectSuccess(t, scheme.Reset())
	test.ExpectSuccess(t, clock.Reset())
	test.ExpectSuccess(t, dsk.Load(false))
	test.ExpectEquality(t, scheme.String(), "green")
	test.ExpectEquality(t, clock.Get(), prefs.Value(8.0))

	// command line values take precedence
	prefs.PushCommandLineStack("display.scheme::gray")
	test.ExpectSuccess(t, dsk.Load(false))
	test.ExpectEquality(t, scheme.String(), "gray")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")
}

func TestUnknownEntriesPreserved(t *testing.T) {
	fn := prefsFile(t)

	first, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)
	var a prefs.Bool
	test.ExpectSuccess(t, first.Add("a", &a))
	test.ExpectSuccess(t, a.Set(true))
	test.DemandSuccess(t, first.Save())

	second, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)
	var b prefs.Int
	test.ExpectSuccess(t, second.Add("b", &b))
	test.ExpectSuccess(t, b.Set(3))
	test.DemandSuccess(t, second.Save())

	cmpPrefsFile(t, fn, "a :: true\nb :: 3\n")
}

func TestHooks(t *testing.T) {
	var v prefs.Int
	var seen int
	v.SetHookPost(func(value prefs.Value) error {
		seen = value.(int)
		return nil
	})
	test.ExpectSuccess(t, v.Set(7))
	test.ExpectEquality(t, seen, 7)
}

func TestIllegalKey(t *testing.T) {
	dsk, err := prefs.NewDisk(prefsFile(t))
	test.DemandSuccess(t, err)
	var v prefs.Bool
	test.ExpectFailure(t, dsk.Add("a :: b", &v))
	test.ExpectFailure(t, dsk.Add("", &v))
}
