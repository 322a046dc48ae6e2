package pattern_test

import (
	"fmt"
	"strings"

	"github.com/mhr3/bitmatch/pattern"
)

func ExamplePatternVector() {
	pv := pattern.NewPatternVectorString("GUMBO")

	fmt.Printf("%05b\n", pv.Get('G'))
	fmt.Printf("%05b\n", pv.Get('M'))
	fmt.Println(pv.Get('Z'))
	// Output:
	// 00001
	// 00100
	// 0
}

func ExampleBlockedPatternVector() {
	p := strings.Repeat("-", 64) + "ab" + strings.Repeat("-", 62) + "xb"
	bv := pattern.NewBlockedPatternVectorString(p)

	fmt.Println(bv.BlockCount())
	for block := 0; block < bv.BlockCount(); block++ {
		fmt.Printf("block %d: a=%b b=%b\n", block, bv.Get(block, 'a'), bv.Get(block, 'b'))
	}
	// Output:
	// 3
	// block 0: a=0 b=0
	// block 1: a=1 b=10
	// block 2: a=0 b=10
}

// Myers' bit-vector edit distance, driven by a PatternVector.
func ExamplePatternVector_levenshtein() {
	distance := func(a, b string) int {
		pv := pattern.NewPatternVectorString(a)
		n := len([]rune(a))
		if n == 0 {
			return len([]rune(b))
		}
		vp, vn := ^uint64(0), uint64(0)
		last := uint64(1) << uint(n-1)
		dist := n
		for _, c := range b {
			x := pv.Get(uint64(c)) | vn
			d0 := ((vp + (x & vp)) ^ vp) | x
			hn := vp & d0
			hp := vn | ^(d0 | vp)
			x = hp<<1 | 1
			vn = x & d0
			vp = hn<<1 | ^(x | d0)
			if hp&last != 0 {
				dist++
			}
			if hn&last != 0 {
				dist--
			}
		}
		return dist
	}

	fmt.Println(distance("kitten", "sitting"))
	fmt.Println(distance("Straße", "Strasse"))
	// Output:
	// 3
	// 2
}

func ExampleTrimCommonAffixString() {
	a, b, prefix, suffix := pattern.TrimCommonAffixString("café au lait", "café olé lait")
	fmt.Printf("%q %q %d %d\n", a, b, prefix, suffix)
	// Output:
	// "au" "olé" 6 5
}
