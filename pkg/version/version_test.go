package version_test

import (
	"strings"
	"testing"

	"github.com/pzverkov/curvelab/pkg/version"
)

func TestString(t *testing.T) {
	s := version.String()
	if !strings.HasPrefix(s, "v") {
		t.Errorf("version %q should start with v", s)
	}
	if strings.Count(s, ".") != 2 {
		t.Errorf("version %q should have three components", s)
	}
}

func TestFull(t *testing.T) {
	if !strings.HasPrefix(version.Full(), "curvelab v") {
		t.Errorf("Full() = %q", version.Full())
	}
}
