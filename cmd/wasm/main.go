//go:build js && wasm

package main

import (
	"fmt"
	"math/big"
	"syscall/js"

	"github.com/jouliene/bitcoin-from-scratch/pkg/ecc"
)

func main() {
	c := make(chan struct{}, 0)

	fmt.Println("Go secp256k1 WASM Initialized")

	// Expose Go functions to JS
	js.Global().Set("GoSecp256k1", map[string]interface{}{
		"ScalarBaseMult": js.FuncOf(ScalarBaseMult),
		"Add":            js.FuncOf(Add),
	})

	<-c
}

// ScalarBaseMult computes k*G.
// Arguments:
// 0: scalar as a hex string
// Returns:
// {x, y} hex strings, or {infinity: true}, or {error}
func ScalarBaseMult(this js.Value, args []js.Value) interface{} {
	if len(args) != 1 {
		return map[string]interface{}{"error": "expected 1 argument (kHex)"}
	}

	k, ok := new(big.Int).SetString(args[0].String(), 16)
	if !ok {
		return map[string]interface{}{"error": "invalid scalar hex"}
	}

	return pointResult(ecc.Generator().ScalarMul(k))
}

// Add adds two points given as hex coordinate pairs.
// Arguments:
// 0-3: x1, y1, x2, y2 hex strings; empty strings denote the identity
// Returns:
// {x, y} hex strings, or {infinity: true}, or {error}
func Add(this js.Value, args []js.Value) interface{} {
	if len(args) != 4 {
		return map[string]interface{}{"error": "expected 4 arguments (x1, y1, x2, y2)"}
	}

	p, err := parsePoint(args[0].String(), args[1].String())
	if err != nil {
		return map[string]interface{}{"error": err.Error()}
	}
	q, err := parsePoint(args[2].String(), args[3].String())
	if err != nil {
		return map[string]interface{}{"error": err.Error()}
	}

	return pointResult(p.Add(q))
}

func parsePoint(xHex, yHex string) (ecc.Point, error) {
	if xHex == "" && yHex == "" {
		return ecc.Infinity(), nil
	}

	xi, ok := new(big.Int).SetString(xHex, 16)
	if !ok {
		return ecc.Point{}, fmt.Errorf("invalid x hex")
	}
	yi, ok := new(big.Int).SetString(yHex, 16)
	if !ok {
		return ecc.Point{}, fmt.Errorf("invalid y hex")
	}

	x, err := ecc.NewFieldElement(xi)
	if err != nil {
		return ecc.Point{}, err
	}
	y, err := ecc.NewFieldElement(yi)
	if err != nil {
		return ecc.Point{}, err
	}
	return ecc.NewPoint(&x, &y)
}

func pointResult(p ecc.Point) map[string]interface{} {
	x, y, ok := p.Coords()
	if !ok {
		return map[string]interface{}{"infinity": true}
	}
	return map[string]interface{}{
		"x": fmt.Sprintf("%064x", x.Num()),
		"y": fmt.Sprintf("%064x", y.Num()),
	}
}
