//go:build js && wasm

package main

import (
	"errors"
	"fmt"
	"syscall/js"
)

// mountCanvas moves the canvas ebiten created into the element with the
// given id.
func mountCanvas(id string) error {
	doc := js.Global().Get("document")
	target := doc.Call("getElementById", id)
	if target.IsNull() || target.IsUndefined() {
		return fmt.Errorf("no element with id %q", id)
	}

	canvas := doc.Call("querySelector", "canvas")
	if canvas.IsNull() || canvas.IsUndefined() {
		return errors.New("no canvas on the page")
	}
	target.Call("appendChild", canvas)
	return nil
}
