package buildinfo

import (
	"fmt"
	"runtime"
	"testing"

	. "github.com/goeval/goeval/pkg/prog/progtest"
)

func TestProgram(t *testing.T) {
	fullVersion := Version + VersionSuffix
	Test(t, Program,
		ThatGoeval("-version").WritesStdout(fullVersion+"\n"),

		ThatGoeval("-buildinfo").WritesStdout(
			fmt.Sprintf("Version: %v\nGo version: %v\nReproducible build: %v\n",
				fullVersion, runtime.Version(), Reproducible)),
		ThatGoeval("-buildinfo", "-json").WritesStdout(
			fmt.Sprintf(`{"version":%s,"goversion":%s,"reproducible":%v}`+"\n",
				quoteJSON(fullVersion), quoteJSON(runtime.Version()), Reproducible)),

		ThatGoeval().
			ExitsWith(2).
			WritesStderr("internal error: no suitable subprogram\n"),
	)
}
