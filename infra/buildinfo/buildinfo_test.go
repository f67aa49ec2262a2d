package buildinfo

import (
	"os"
	"testing"
)

// GOTEST_BUILDINFO_COMPILE_TIME_INFO=true marks a test binary built with
// -ldflags "-X ...version=v1.0.0 -X ...commitHash=34567#".
func compileTimeInfoGiven() bool {
	return os.Getenv("GOTEST_BUILDINFO_COMPILE_TIME_INFO") == "true"
}

func TestGet(t *testing.T) {
	want := BuildInfo{Version: defaultVersion, CommitHash: defaultCommitHash}
	if compileTimeInfoGiven() {
		want = BuildInfo{Version: "v1.0.0", CommitHash: "34567#"}
	}
	if got := Get(); got != want {
		t.Errorf("Get() = %+v, want %+v", got, want)
	}
}

func TestBuildInfoString(t *testing.T) {
	for _, tt := range []struct {
		in   BuildInfo
		want string
	}{
		{BuildInfo{Version: "v1.0.0", CommitHash: "abc"}, "v1.0.0 (commit: abc)"},
		{BuildInfo{Version: defaultVersion, CommitHash: defaultCommitHash}, "dev (commit: none)"},
	} {
		if got := tt.in.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
