package font

// This file contains helpers shared by the font tests. Tests use the
// Go Regular font embedded in golang.org/x/image so they don't depend
// on external assets.

import "testing"

import "golang.org/x/image/font/gofont/goregular"

var testBackends = []Backend{ BackendSfnt, BackendGoText }

func mustParseTestFont(t *testing.T, backend Backend) Face {
	t.Helper()
	face, err := ParseFromBytes(goregular.TTF, backend)
	if err != nil {
		t.Fatalf("parsing goregular with %s backend: %s", backend, err)
	}
	return face
}

func doesNotPanic(function func()) (didNotPanic bool) {
	didNotPanic = true
	defer func() { didNotPanic = (recover() == nil) }()
	function()
	return
}
