//go:build !windows
// +build !windows

package main

// enableANSIConsole is a no-op outside Windows; terminals there speak ANSI
// already.
func enableANSIConsole() {}

// adminCheck always passes outside Windows; elevation is a Windows concern.
func adminCheck() (bool, error) {
	return true, nil
}
