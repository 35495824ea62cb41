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

package paths

import (
	"os"
	"path/filepath"
)

// the name of the resource directory when it is found in the current
// directory
const localResourceDir = ".mda86"

// the name of the resource directory inside the user's config directory
const configResourceDir = "mda86"

// ResourcePath returns the path to a resource file inside the named
// sub-directory of the resource directory. The sub-directory is created if
// necessary. Either subPth or file can be empty.
func ResourcePath(subPth string, file string) (string, error) {
	base, err := basePath()
	if err != nil {
		return "", err
	}

	dir := filepath.Join(base, subPth)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", err
	}

	return filepath.Join(dir, file), nil
}

// the local resource directory takes precedence over the user's config
// directory
func basePath() (string, error) {
	if info, err := os.Stat(localResourceDir); err == nil && info.IsDir() {
		return localResourceDir, nil
	}

	cnf, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(cnf, configResourceDir), nil
}
