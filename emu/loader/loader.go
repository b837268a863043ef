/*
 * DCPU16 - ROM image loader.
 *
 * Copyright 2024, Richard Cornwell
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in
 * all copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 */

package loader

import (
	"fmt"
	"os"

	"github.com/nchashch/dcpu16/emu/cpu"
)

/*
   The guest is word addressed; a ROM image is a stream of 16 bit
   words, at most 65536 of them, and word 0 is the initial PC target.
   Byte order only exists at the file boundary. Images are stored big
   endian by convention, little endian on request.
*/

// ReadROM reads a word image from a file.
func ReadROM(path string, littleEndian bool) ([]uint16, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if len(data)%2 != 0 {
		return nil, fmt.Errorf("rom %s: odd byte count %d", path, len(data))
	}
	if len(data)/2 > cpu.MemSize {
		return nil, fmt.Errorf("rom %s: %d words exceed memory", path, len(data)/2)
	}
	words := make([]uint16, len(data)/2)
	for i := range words {
		hi, lo := data[2*i], data[2*i+1]
		if littleEndian {
			hi, lo = lo, hi
		}
		words[i] = uint16(hi)<<8 | uint16(lo)
	}
	return words, nil
}

// WriteROM writes a word image to a file, big endian.
func WriteROM(path string, words []uint16) error {
	data := make([]byte, 2*len(words))
	for i, w := range words {
		data[2*i] = byte(w >> 8)
		data[2*i+1] = byte(w)
	}
	return os.WriteFile(path, data, 0o644)
}
