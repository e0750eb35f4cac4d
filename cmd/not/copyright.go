package main

import (
	"fmt"
	"io"
	"strings"
)

var copyrightNotice = []string{
	"not suppresses lines of input that start with, end with, or contain the specified string.",
	"Copyright (C) 2023 Timothy J. Bruce",
	"",
	"This program is free software: you can redistribute it and/or modify",
	"it under the terms of the GNU General Public License as published by",
	"the Free Software Foundation, either version 3 of the License, or",
	"(at your option) any later version.",
	"",
	"This program is distributed in the hope that it will be useful,",
	"but WITHOUT ANY WARRANTY; without even the implied warranty of",
	"MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the",
	"GNU General Public License for more details.",
	"",
	"You should have received a copy of the GNU General Public License",
	"along with this program.  If not, see <https://www.gnu.org/licenses/>.",
}

func printCopyright(w io.Writer) error {
	_, err := fmt.Fprintln(w, strings.Join(copyrightNotice, "\n"))
	return err
}
