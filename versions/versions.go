// Package versions assembles the provenance artifact that travels alongside
// each pipeline stage's outputs.
package versions

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/carbocation/pfx"
	"gopkg.in/yaml.v3"
)

type CompileInfo struct {
	Package    string
	GoVersion  string
	Commit     string
	CommitTime string
	Modified   bool
}

func (c CompileInfo) String() string {
	mod := ""
	if c.Modified {
		mod = " Files in the repo were modified after that commit."
	}

	return fmt.Sprintf("This %s binary was built with %s at commit %v at time %v.%s", c.Package, c.GoVersion, c.Commit, c.CommitTime, mod)
}

func Get() CompileInfo {
	out := CompileInfo{}

	z, ok := debug.ReadBuildInfo()
	if !ok {
		return out
	}

	out.GoVersion = z.GoVersion
	out.Package = z.Path
	for _, s := range z.Settings {
		switch s.Key {
		case "vcs.revision":
			out.Commit = s.Value
		case "vcs.time":
			out.CommitTime = s.Value
		case "vcs.modified":
			out.Modified = s.Value == "true"
		}
	}

	return out
}

func PrintToStdErr() {
	z := Get()
	fmt.Fprintf(os.Stderr, "%s\n", z)
}

// Artifact maps a pipeline stage name to that stage's tool versions. Entries
// produced by upstream stages are opaque here and forwarded unchanged.
type Artifact map[string]map[string]string

// Load reads an upstream versions artifact. An empty path yields an empty
// artifact, so the first stage of a pipeline needs no input file.
func Load(path string) (Artifact, error) {
	out := Artifact{}

	if path == "" {
		return out, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, pfx.Err(err)
	}
	if err := yaml.Unmarshal(raw, &out); err != nil {
		return nil, pfx.Err(err)
	}

	return out, nil
}

// Add records stage's own entry, drawing its details from the build info
// compiled into the running binary.
func (a Artifact) Add(stage string) {
	info := Get()

	entry := map[string]string{"go": info.GoVersion}
	if info.Commit != "" {
		entry["commit"] = info.Commit
	}
	if info.CommitTime != "" {
		entry["committime"] = info.CommitTime
	}

	a[stage] = entry
}

// Write emits the merged artifact as YAML.
func (a Artifact) Write(path string) error {
	raw, err := yaml.Marshal(a)
	if err != nil {
		return pfx.Err(err)
	}

	return pfx.Err(os.WriteFile(path, raw, 0o644))
}
