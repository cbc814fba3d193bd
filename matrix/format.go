// SPDX-License-Identifier: MIT

package matrix

import (
	"strconv"
	"strings"
)

// ---------- Formatting literals  ----------
const (
	_fmtHeader   = "Matrix of size "
	_fmtRowBreak = "\n "
	_fmtSep      = ", "
	_fmtAbsent   = "  *  "

	// single-row matrices use angle brackets
	_fmtSingleOpen  = "<"
	_fmtSingleClose = ">"

	// multi-row matrices draw a bracket spanning top/middle/bottom rows
	_fmtTopOpen     = "/"
	_fmtTopClose    = "\\"
	_fmtMidOpen     = "|"
	_fmtMidClose    = "|"
	_fmtBottomOpen  = "\\"
	_fmtBottomClose = "/"
)

// String implements fmt.Stringer.
// Stage 1: header "Matrix of size RxC".
// Stage 2: one line per row; stored values with 2 decimals (non-negative
// values get a leading space so columns line up), "  *  " for absent entries.
// Complexity: O(rows*cols).
func (m *Sparse) String() string {
	var sb strings.Builder
	sb.WriteString(_fmtHeader)
	sb.WriteString(strconv.Itoa(m.r))
	sb.WriteByte('x')
	sb.WriteString(strconv.Itoa(m.c))

	var i, j int
	for i = 0; i < m.r; i++ {
		opening, closing := rowBrackets(i, m.r)
		sb.WriteString(_fmtRowBreak)
		sb.WriteString(opening)
		row := m.data[i]
		for j = 0; j < m.c; j++ {
			if v, ok := row[j]; ok {
				if v >= 0 {
					sb.WriteByte(' ')
				}
				sb.WriteString(strconv.FormatFloat(v, 'f', 2, 64))
			} else {
				sb.WriteString(_fmtAbsent)
			}
			if j != m.c-1 {
				sb.WriteString(_fmtSep)
			}
		}
		sb.WriteString(closing)
	}

	return sb.String()
}

// rowBrackets picks the border characters for row i of an r-row matrix.
func rowBrackets(i, r int) (opening, closing string) {
	switch {
	case r == 1:
		return _fmtSingleOpen, _fmtSingleClose
	case i == 0:
		return _fmtTopOpen, _fmtTopClose
	case i == r-1:
		return _fmtBottomOpen, _fmtBottomClose
	default:
		return _fmtMidOpen, _fmtMidClose
	}
}
