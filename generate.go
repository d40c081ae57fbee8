package main

// The demo application under internal/demo is wired by vmwire itself.
//
//vmwire:scan internal/demo/...
//vmwire:catalog internal/wiring

//go:generate go run . generate
