package eval

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/goeval/goeval/pkg/buildinfo"
	"github.com/goeval/goeval/pkg/fsutil"
)

// initFile is the name of the per-user init file run by :load_config,
// relative to the goeval config directory.
const initFile = "init.goeval"

// commandHelp maps each command, including the leading colon, to the one-line
// summary shown by :help.
var commandHelp = map[string]string{
	":clear":           "reset the interpreter, dropping all declarations",
	":help":            "show this list",
	":last_error_json": "show the last compile error as JSON",
	":load_config":     "run the per-user init file if it exists",
	":opt":             "show the optimization level; :opt <level> sets it",
	":timing":          "toggle per-snippet timing output",
	":vars":            "list the variables declared in this session",
	":version":         "print the version",
}

// CommandNames returns the names of all commands, including the leading
// colon, sorted.
func CommandNames() []string {
	names := make([]string, 0, len(commandHelp))
	for name := range commandHelp {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (eg *Engine) runCommand(line string) (*Result, error) {
	name, arg, _ := strings.Cut(line, " ")
	arg = strings.TrimSpace(arg)
	switch name {
	case ":help":
		return textResult(helpText()), nil
	case ":version":
		return textResult(buildinfo.Version + buildinfo.VersionSuffix), nil
	case ":vars":
		return textResult(eg.varsText()), nil
	case ":timing":
		eg.timing = !eg.timing
		if eg.timing {
			return textResult("timing: on"), nil
		}
		return textResult("timing: off"), nil
	case ":opt":
		if arg != "" {
			eg.optLevel = arg
		}
		level := eg.optLevel
		if level == "" {
			level = "default"
		}
		return textResult("opt: " + level), nil
	case ":clear":
		if err := eg.reset(); err != nil {
			return nil, err
		}
		eg.lastError = nil
		return &Result{}, nil
	case ":load_config":
		return eg.loadConfig()
	case ":last_error_json":
		if eg.lastError == nil {
			return textResult("null"), nil
		}
		b, err := marshalDiagnostics(eg.lastError.Diags)
		if err != nil {
			return nil, err
		}
		return textResult(string(b)), nil
	default:
		return nil, fmt.Errorf("unknown command %s (type :help for help)", name)
	}
}

func helpText() string {
	var sb strings.Builder
	for i, name := range CommandNames() {
		if i > 0 {
			sb.WriteByte('\n')
		}
		fmt.Fprintf(&sb, "%-16s  %s", name, commandHelp[name])
	}
	return sb.String()
}

func (eg *Engine) varsText() string {
	names := make([]string, 0, len(eg.vars))
	for name := range eg.vars {
		names = append(names, name)
	}
	sort.Strings(names)
	lines := make([]string, len(names))
	for i, name := range names {
		lines[i] = name + ": " + eg.vars[name]
	}
	return strings.Join(lines, "\n")
}

// loadConfig evaluates the per-user init file. A missing file is a no-op.
func (eg *Engine) loadConfig() (*Result, error) {
	dir, err := fsutil.ConfigHome()
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(filepath.Join(dir, "goeval", initFile))
	if err != nil {
		if os.IsNotExist(err) {
			return &Result{}, nil
		}
		return nil, err
	}
	return eg.evalCode(string(data))
}

// textResult wraps s as a text/plain result. An empty string produces an
// empty result, so that nothing prints.
func textResult(s string) *Result {
	if s == "" {
		return &Result{}
	}
	return &Result{Content: map[string]string{"text/plain": s}}
}
