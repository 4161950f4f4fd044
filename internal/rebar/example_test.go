package rebar

import "fmt"

func ExampleSelectBarLayout() {
	// 5.79 cm² in a 30 cm web, 30 mm cover, ø8 stirrups
	l, ok := SelectBarLayout(5.79e-4, 1.84e-4, 60e-4, 0.016, 0.008, 0.30, 0.030)
	fmt.Println(l, ok)
	// Output: 3 x ø16 true
}

func ExampleSelectSpacingLayout() {
	l, ok := SelectSpacingLayout(4.55e-4, 2.23e-4, 80e-4, 0.010, 0.020)
	fmt.Println(l, ok)
	// Output: ø10 / 170 mm true
}
