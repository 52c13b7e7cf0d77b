package main

import (
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"sort"
)

const defaultDepsJSON = "buck-out/gen/deps/list-deps/dependencies.json"

// depFetcher runs the dependency-fetch step: build the dependency
// list, then fetch every listed library. It has no data dependency on
// the extraction core; it only has to finish (or fail loudly) before
// builds that need the fetched libraries.
type depFetcher struct {
	buck     string
	depsJSON string
	run      func(name string, args ...string) error
}

func newDepFetcher(buck, depsJSON string) *depFetcher {
	return &depFetcher{buck: buck, depsJSON: depsJSON, run: runCommand}
}

func (f *depFetcher) fetchAll() error {
	if err := f.run(f.buck, "build", "deps:list-deps"); err != nil {
		return err
	}
	names, err := readDepsFile(f.depsJSON)
	if err != nil {
		return err
	}
	for _, name := range names {
		if err := f.run(f.buck, "fetch", "deps:"+name); err != nil {
			return err
		}
	}
	return nil
}

// readDepsFile reads the JSON object mapping dependency name to
// metadata and returns the names, sorted for a stable fetch order.
// The metadata itself is opaque to this tool.
func readDepsFile(path string) ([]string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading dependency list: %w", err)
	}
	var deps map[string]json.RawMessage
	if err := json.Unmarshal(raw, &deps); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	names := make([]string, 0, len(deps))
	for name := range deps {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func runCommand(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s %s: %w", name, args[0], err)
	}
	return nil
}
