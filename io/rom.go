package io

import (
	"bufio"
	"io"
	"io/fs"
	"strconv"
	"strings"
)

const (
	ROM_SIZE = 256    // Largest image that fits in memory.
	ROM_EXT  = ".ls8" // Program image file extension.
)

// Rom is a program image, loaded into memory at address zero.
type Rom struct {
	Data   []byte // Machine code.
	LineNo []int  // Source line of each byte of Data.
}

// Open loads the program image name+ROM_EXT from a file system.
func (rom *Rom) Open(filesys fs.FS, name string) (err error) {
	inf, err := filesys.Open(name + ROM_EXT)
	if err != nil {
		return
	}
	defer inf.Close()

	return rom.Unmarshal(inf)
}

// Unmarshal parses a program image.
//
// Each line holds one 8-bit binary literal, optionally followed by a
// '#' comment. Blank and comment-only lines are skipped.
func (rom *Rom) Unmarshal(r io.Reader) (err error) {
	rom.Data = nil
	rom.LineNo = nil

	scanner := bufio.NewScanner(r)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := scanner.Text()

		word, _, _ := strings.Cut(line, "#")
		word = strings.TrimSpace(word)
		if len(word) == 0 {
			continue
		}

		if len(rom.Data) == ROM_SIZE {
			err = ErrSyntax{LineNo: lineno, Line: line, Err: ErrRomFull}
			return
		}

		var value uint64
		value, err = strconv.ParseUint(word, 2, 8)
		if err != nil {
			err = ErrSyntax{LineNo: lineno, Line: line, Err: ErrParseBinary(word)}
			return
		}

		rom.Data = append(rom.Data, byte(value))
		rom.LineNo = append(rom.LineNo, lineno)
	}

	err = scanner.Err()
	if err != nil {
		return
	}

	if len(rom.Data) == 0 {
		err = ErrRomEmpty
	}

	return
}

// Line returns the source line that produced the byte at address,
// or 0 if the address is outside of the image.
func (rom *Rom) Line(address int) int {
	if address < 0 || address >= len(rom.LineNo) {
		return 0
	}

	return rom.LineNo[address]
}
