//go:build !(linux || darwin || freebsd || openbsd || netbsd)

package secrets

import "errors"

var errMlockUnsupported = errors.New("memory locking is not supported on this platform")

func lockMemory(b []byte) error   { return errMlockUnsupported }
func unlockMemory(b []byte) error { return nil }
