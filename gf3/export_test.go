package gf3

// Collect exposes the dedup-and-count stage to the black-box tests.
var Collect = collect
