package svgo

import (
	"math"
	"math/rand"
	"testing"

	"github.com/tdewolff/test"
)

func TestParsePathData(t *testing.T) {
	var tests = []struct {
		d        string
		expected []PathItem
	}{
		{"M10,20L30 40", []PathItem{{'M', []float64{10, 20}}, {'L', []float64{30, 40}}}},
		{"m10 20 30 40", []PathItem{{'m', []float64{10, 20}}, {'l', []float64{30, 40}}}},
		{"M1-2.5.5.5z", []PathItem{{'M', []float64{1, -2.5}}, {'L', []float64{0.5, 0.5}}, {'z', []float64{}}}},
		{"M1-2.5.5z", []PathItem{{'M', []float64{1, -2.5}}}},
		{"M0 0h10V5z", []PathItem{{'M', []float64{0, 0}}, {'h', []float64{10}}, {'V', []float64{5}}, {'z', []float64{}}}},
		{"M0 0a5 5 0 1010 10", []PathItem{{'M', []float64{0, 0}}, {'a', []float64{5, 5, 0, 1, 0, 10, 10}}}},
		{"M0 0L10", []PathItem{{'M', []float64{0, 0}}}},
		{"L10 10", []PathItem{}},
		{"M0 0,,L10 10", []PathItem{{'M', []float64{0, 0}}}},
		{"M1e2 1e", []PathItem{{'M', []float64{100, 1}}}},
	}
	for _, tt := range tests {
		t.Run(tt.d, func(t *testing.T) {
			test.T(t, ParsePathData(tt.d), tt.expected)
		})
	}
}

func TestStringifyPathData(t *testing.T) {
	var tests = []struct {
		d        string
		expected string
	}{
		{"M10 20L30 40L50 60", "M10 20 30 40 50 60"},
		{"M10 20l30 40", "m10 20 30 40"},
		{"M0 0h10h10v10z", "M0 0h10 10v10z"},
		{"M0.5 0.5L-1 -1", "M.5.5-1-1"},
		{"M0 0M10 10", "M0 0M10 10"},
		{"M0 0", "M0 0"},
	}
	for _, tt := range tests {
		t.Run(tt.d, func(t *testing.T) {
			test.String(t, StringifyPathData(ParsePathData(tt.d), PathStringifyOptions{Precision: -1}), tt.expected)
		})
	}

	items := []PathItem{{'M', []float64{0.12345, 0}}, {'a', []float64{5, 5, 0, 1, 0, 10, 10}}}
	test.String(t, StringifyPathData(items, PathStringifyOptions{Precision: 2}), "M.12 0a5 5 0 1 0 10 10")
	test.String(t, StringifyPathData(items, PathStringifyOptions{Precision: 2, NoSpaceAfterFlags: true}), "M.12 0a5 5 0 1010 10")
}

func TestToAbsoluteRelative(t *testing.T) {
	items := ParsePathData("M10 10l10 0h10v10c0 5 5 5 5 0zm5 5 10 0")
	test.T(t, ToAbsolute(items), []PathItem{
		{'M', []float64{10, 10}},
		{'L', []float64{20, 10}},
		{'H', []float64{30}},
		{'V', []float64{20}},
		{'C', []float64{30, 25, 35, 25, 35, 20}},
		{'Z', []float64{}},
		{'M', []float64{15, 15}},
		{'L', []float64{25, 15}},
	})
	test.T(t, ToRelative(ToAbsolute(items)), items)
}

func TestArcToCubic(t *testing.T) {
	near := func(a, b float64) bool {
		return math.Abs(a-b) < 1e-3
	}

	// quarter circle around the origin
	items := ArcToCubic(Point{10, 0}, 10, 10, 0, false, true, Point{0, 10})
	test.T(t, len(items), 1)
	args := items[0].Args
	test.That(t, near(args[0], 10) && near(args[1], 5.523), args)
	test.That(t, near(args[2], 5.523) && near(args[3], 10), args)
	test.That(t, args[4] == 0 && args[5] == 10, args)

	// half circle is split in two
	items = ArcToCubic(Point{0, 0}, 5, 5, 0, false, true, Point{10, 0})
	test.T(t, len(items), 2)
	test.That(t, near(items[0].Args[4], 5) && near(math.Abs(items[0].Args[5]), 5), items[0].Args)

	test.T(t, len(ArcToCubic(Point{1, 1}, 5, 5, 0, false, false, Point{1, 1})), 0)
	test.T(t, ArcToCubic(Point{0, 0}, 0, 5, 0, false, false, Point{10, 0}), []PathItem{{'C', []float64{0, 0, 10, 0, 10, 0}}})
}

func TestPathDataRoundTrip(t *testing.T) {
	commands := []byte("MmLlHhVvCcSsQqTtAaz")
	r := rand.New(rand.NewSource(1))
	coord := func() float64 {
		return float64(r.Intn(161)-80) / 4.0
	}
	for i := 0; i < 100; i++ {
		items := []PathItem{{'M', []float64{coord(), coord()}}}
		n := 1 + r.Intn(10)
		for j := 0; j < n; j++ {
			command := commands[r.Intn(len(commands))]
			if command == 'z' && items[len(items)-1].Command == 'z' {
				continue
			}
			var args []float64
			switch command {
			case 'z':
				args = []float64{}
			case 'H', 'h', 'V', 'v':
				args = []float64{coord()}
			case 'A', 'a':
				args = []float64{float64(1+r.Intn(20)) / 4.0, float64(1+r.Intn(20)) / 4.0, float64(r.Intn(360)), float64(r.Intn(2)), float64(r.Intn(2)), coord(), coord()}
			default:
				size := map[byte]int{'M': 2, 'L': 2, 'T': 2, 'C': 6, 'S': 4, 'Q': 4}[command&^0x20]
				for k := 0; k < size; k++ {
					args = append(args, coord())
				}
			}
			items = append(items, PathItem{command, args})
		}
		if 1 < len(items) && items[1].Command == 'l' {
			// the first moveto takes the relative form of the lineto that follows
			items[0].Command = 'm'
		}

		d := StringifyPathData(items, PathStringifyOptions{Precision: -1})
		t.Run(d, func(t *testing.T) {
			test.T(t, ParsePathData(d), items)
		})
	}
}
