//go:build !(js && wasm)

package main

// mountCanvas is a no-op outside the browser; the desktop window is the mount.
func mountCanvas(string) error {
	return nil
}
