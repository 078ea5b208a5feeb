package w33_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/w33"
)

func ExampleBuild() {
	cfg, err := w33.Build(context.Background())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(cfg.Params())
	fmt.Println(cfg.Spectrum())
	fmt.Println(cfg.GroupOrder())
	s := cfg.Summary()
	fmt.Println(s.Lines, s.Triangles, s.K4Components)
	// Output:
	// SRG(40,12,2,4)
	// [12^1 2^24 -4^15]
	// 51840
	// 40 160 90
}
