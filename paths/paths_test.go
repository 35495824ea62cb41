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

package paths_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/NishiOwO/86Box/paths"
	"github.com/NishiOwO/86Box/test"
)

func TestResourcePath(t *testing.T) {
	t.Chdir(t.TempDir())
	test.DemandSuccess(t, os.Mkdir(".mda86", 0o700))

	pth, err := paths.ResourcePath("fonts", "mda.rom")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, filepath.Join(".mda86", "fonts", "mda.rom"))

	// sub-directory has been created
	info, err := os.Stat(filepath.Join(".mda86", "fonts"))
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, info.IsDir())

	pth, err = paths.ResourcePath("", "preferences")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, filepath.Join(".mda86", "preferences"))

	pth, err = paths.ResourcePath("", "")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, ".mda86")
}

func TestUniqueFilename(t *testing.T) {
	fn := paths.UniqueFilename("screenshot", "")
	test.ExpectSuccess(t, strings.HasPrefix(fn, "screenshot_"))
	test.ExpectEquality(t, len(fn), len("screenshot_YYYYMMDD_HHMMSS"))

	fn = paths.UniqueFilename("screenshot", " green ")
	test.ExpectSuccess(t, strings.HasPrefix(fn, "screenshot_green_"))
}
