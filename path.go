package svgo

import (
	"strings"

	"github.com/tdewolff/parse/v2/strconv"
)

// PathItem is a single path command with its arguments. Arc flags are stored as 0 or 1.
type PathItem struct {
	Command byte
	Args    []float64
}

// argsCount is the number of arguments per command.
var argsCount = [256]int{
	'M': 2, 'm': 2,
	'Z': 0, 'z': 0,
	'L': 2, 'l': 2,
	'H': 1, 'h': 1,
	'V': 1, 'v': 1,
	'C': 6, 'c': 6,
	'S': 4, 's': 4,
	'Q': 4, 'q': 4,
	'T': 2, 't': 2,
	'A': 7, 'a': 7,
}

// parseFloat parses a number at the start of s and returns the number of bytes consumed.
func parseFloat(s string) (float64, int) {
	return strconv.ParseFloat([]byte(s))
}

func isPathCommand(c byte) bool {
	switch c {
	case 'M', 'm', 'Z', 'z', 'L', 'l', 'H', 'h', 'V', 'v', 'C', 'c', 'S', 's', 'Q', 'q', 'T', 't', 'A', 'a':
		return true
	}
	return false
}

func isWsp(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

type numberState int

const (
	stateNone numberState = iota
	stateSign
	stateWhole
	stateDecimalPoint
	stateDecimal
	stateE
	stateExponentSign
	stateExponent
)

// readNumber reads one number starting at i. It returns the position after the number and whether a number was found. A second sign or decimal point ends the number, so that they act as separators.
func readNumber(s string, i int) (int, float64, bool) {
	start := i
	state := stateNone
Loop:
	for ; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '+' || c == '-':
			if state == stateNone {
				state = stateSign
				continue
			} else if state == stateE {
				state = stateExponentSign
				continue
			}
		case isDigit(c):
			switch state {
			case stateNone, stateSign, stateWhole:
				state = stateWhole
				continue
			case stateDecimalPoint, stateDecimal:
				state = stateDecimal
				continue
			case stateE, stateExponentSign, stateExponent:
				state = stateExponent
				continue
			}
		case c == '.':
			if state == stateNone || state == stateSign || state == stateWhole {
				state = stateDecimalPoint
				continue
			}
		case c == 'e' || c == 'E':
			if state == stateWhole || state == stateDecimalPoint || state == stateDecimal {
				state = stateE
				continue
			}
		}
		break Loop
	}

	f, n := parseFloat(s[start:i])
	if n == 0 {
		return start, 0.0, false
	}
	// an incomplete exponent such as 1e is not part of the number
	return start + n, f, true
}

// ParsePathData parses path data. Parsing stops at the first error and returns the commands before it, a path must start with a moveto.
func ParsePathData(s string) []PathItem {
	items := []PathItem{}
	var command byte
	var args []float64
	canHaveComma, hadComma := false, false
	for i := 0; i < len(s); {
		c := s[i]
		if isWsp(c) {
			i++
			continue
		} else if canHaveComma && c == ',' {
			if hadComma {
				break
			}
			hadComma = true
			i++
			continue
		} else if isPathCommand(c) {
			if hadComma {
				return items
			} else if command == 0 {
				if c != 'M' && c != 'm' {
					return items
				}
			} else if len(args) != 0 {
				return items
			}
			command = c
			args = []float64{}
			canHaveComma = false
			if argsCount[command] == 0 {
				items = append(items, PathItem{command, args})
			}
			i++
			continue
		} else if command == 0 {
			return items
		}

		var f float64
		ok := false
		next := i
		if command == 'A' || command == 'a' {
			switch len(args) {
			case 0, 1:
				if c != '+' && c != '-' {
					next, f, ok = readNumber(s, i)
				}
			case 2, 5, 6:
				next, f, ok = readNumber(s, i)
			case 3, 4:
				if c == '0' || c == '1' {
					next, f, ok = i+1, float64(c-'0'), true
				}
			}
		} else {
			next, f, ok = readNumber(s, i)
		}
		if !ok || argsCount[command] == 0 {
			return items
		}

		args = append(args, f)
		canHaveComma = true
		hadComma = false
		i = next
		if len(args) == argsCount[command] {
			items = append(items, PathItem{command, args})
			if command == 'M' {
				command = 'L'
			} else if command == 'm' {
				command = 'l'
			}
			args = []float64{}
		}
	}
	return items
}

// PathStringifyOptions are the options for StringifyPathData.
type PathStringifyOptions struct {
	Precision         int // number of decimals, negative to keep all
	NoSpaceAfterFlags bool
}

func stringifyArgs(sb *strings.Builder, command byte, args []float64, opts PathStringifyOptions) {
	prev := ""
	for i, f := range args {
		s := FormatNumberPrec(f, opts.Precision)
		if opts.NoSpaceAfterFlags && (command == 'A' || command == 'a') && (i%7 == 4 || i%7 == 5) {
			sb.WriteString(s)
		} else if i == 0 || s[0] == '-' {
			sb.WriteString(s)
		} else if strings.IndexByte(prev, '.') != -1 && s[0] == '.' {
			sb.WriteString(s)
		} else {
			sb.WriteByte(' ')
			sb.WriteString(s)
		}
		prev = s
	}
}

// StringifyPathData serializes path data, repeated commands are merged and linetos directly after a moveto use the implicit form.
func StringifyPathData(items []PathItem, opts PathStringifyOptions) string {
	if len(items) == 0 {
		return ""
	}
	sb := strings.Builder{}
	if len(items) == 1 {
		sb.WriteByte(items[0].Command)
		stringifyArgs(&sb, items[0].Command, items[0].Args, opts)
		return sb.String()
	}

	prev := PathItem{items[0].Command, append([]float64{}, items[0].Args...)}
	if items[1].Command == 'L' {
		prev.Command = 'M'
	} else if items[1].Command == 'l' {
		prev.Command = 'm'
	}
	for i := 1; i < len(items); i++ {
		item := items[i]
		if prev.Command == item.Command && prev.Command != 'M' && prev.Command != 'm' || prev.Command == 'M' && item.Command == 'L' || prev.Command == 'm' && item.Command == 'l' {
			prev.Args = append(prev.Args, item.Args...)
			if i == len(items)-1 {
				sb.WriteByte(prev.Command)
				stringifyArgs(&sb, prev.Command, prev.Args, opts)
			}
		} else {
			sb.WriteByte(prev.Command)
			stringifyArgs(&sb, prev.Command, prev.Args, opts)
			if i == len(items)-1 {
				sb.WriteByte(item.Command)
				stringifyArgs(&sb, item.Command, item.Args, opts)
			} else {
				prev = PathItem{item.Command, append([]float64{}, item.Args...)}
			}
		}
	}
	return sb.String()
}

// ToAbsolute converts all commands to their absolute form, H and V stay horizontal and vertical.
func ToAbsolute(items []PathItem) []PathItem {
	out := make([]PathItem, 0, len(items))
	var cur, start Point
	for _, item := range items {
		args := append([]float64{}, item.Args...)
		cmd := item.Command
		switch cmd {
		case 'm':
			args[0] += cur.X
			args[1] += cur.Y
			cmd = 'M'
		case 'l', 't':
			args[0] += cur.X
			args[1] += cur.Y
			cmd -= 'a' - 'A'
		case 'h':
			args[0] += cur.X
			cmd = 'H'
		case 'v':
			args[0] += cur.Y
			cmd = 'V'
		case 'c', 's', 'q':
			for j := range args {
				if j%2 == 0 {
					args[j] += cur.X
				} else {
					args[j] += cur.Y
				}
			}
			cmd -= 'a' - 'A'
		case 'a':
			args[5] += cur.X
			args[6] += cur.Y
			cmd = 'A'
		case 'z':
			cmd = 'Z'
		}

		switch cmd {
		case 'M':
			cur = Point{args[0], args[1]}
			start = cur
		case 'H':
			cur.X = args[0]
		case 'V':
			cur.Y = args[0]
		case 'Z':
			cur = start
		default:
			cur = Point{args[len(args)-2], args[len(args)-1]}
		}
		out = append(out, PathItem{cmd, args})
	}
	return out
}

// ToRelative converts all commands to their relative form, except for the first moveto.
func ToRelative(items []PathItem) []PathItem {
	abs := ToAbsolute(items)
	out := make([]PathItem, 0, len(abs))
	var cur, start Point
	for i, item := range abs {
		args := append([]float64{}, item.Args...)
		cmd := item.Command
		switch cmd {
		case 'M':
			if i != 0 {
				args[0] -= cur.X
				args[1] -= cur.Y
				cmd = 'm'
			}
			start = Point{item.Args[0], item.Args[1]}
		case 'L', 'T':
			args[0] -= cur.X
			args[1] -= cur.Y
			cmd += 'a' - 'A'
		case 'H':
			args[0] -= cur.X
			cmd = 'h'
		case 'V':
			args[0] -= cur.Y
			cmd = 'v'
		case 'C', 'S', 'Q':
			for j := range args {
				if j%2 == 0 {
					args[j] -= cur.X
				} else {
					args[j] -= cur.Y
				}
			}
			cmd += 'a' - 'A'
		case 'A':
			args[5] -= cur.X
			args[6] -= cur.Y
			cmd = 'a'
		case 'Z':
			cmd = 'z'
		}

		switch item.Command {
		case 'M':
			cur = start
		case 'H':
			cur.X = item.Args[0]
		case 'V':
			cur.Y = item.Args[0]
		case 'Z':
			cur = start
		default:
			cur = Point{item.Args[len(item.Args)-2], item.Args[len(item.Args)-1]}
		}
		out = append(out, PathItem{cmd, args})
	}
	return out
}
