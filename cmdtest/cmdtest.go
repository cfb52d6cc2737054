// Package cmdtest runs a command in-process against YAML described cases and
// compares its exit code, stdout and stderr with the expected ones.
//
// A case file holds either a sequence of cases or a mapping with a "tests"
// key:
//
//	tests:
//	  - name: sorts stdin
//	    cmd: natsort
//	    args: ["-r"]
//	    stdin: "a1\na2\n"
//	    expect:
//	      stdout: "a2\na1\n"
//
// With update enabled, mismatching expectations are written back to the file
// instead of failing the test.
package cmdtest

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"gopkg.in/yaml.v3"
)

// TestData is one case.
type TestData struct {
	Name        string            `yaml:"name"`
	Description string            `yaml:"description"`
	Cmd         string            `yaml:"cmd"`
	Args        []string          `yaml:"args"`
	Env         map[string]string `yaml:"env"`

	// Stdin is fed to the command. Without it the command reads an empty
	// stream.
	Stdin  *string `yaml:"stdin"`
	Expect Expect  `yaml:"expect"`
}

// Expect is what a case must produce.
type Expect struct {
	Stdout   string `yaml:"stdout"`
	Stderr   string `yaml:"stderr"`
	ExitCode int    `yaml:"exitCode"`
}

// TestGroup is the content of one file.
type TestGroup struct {
	Name  string
	Tests []TestData `yaml:"tests"`
}

// TestSuite holds the loaded groups and the commands they may call.
type TestSuite struct {
	groups   []*TestGroup
	commands map[string]func() int
	backings map[*TestGroup]*groupBacking
	mu       sync.Mutex
}

// groupBacking keeps the parsed node tree so updates preserve comments and
// layout.
type groupBacking struct {
	path      string
	root      *yaml.Node
	testNodes []*yaml.Node
}

// Read loads every .yaml and .yml file under dir.
func Read(dir string) (*TestSuite, error) {
	suite := &TestSuite{
		commands: make(map[string]func() int),
		backings: make(map[*TestGroup]*groupBacking),
	}
	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() {
			return nil
		}
		if ext := strings.ToLower(filepath.Ext(path)); ext != ".yaml" && ext != ".yml" {
			return nil
		}
		group, backing, err := readGroup(path)
		if err != nil {
			return err
		}
		suite.groups = append(suite.groups, group)
		suite.backings[group] = backing
		return nil
	})
	if err != nil {
		return nil, err
	}
	return suite, nil
}

func readGroup(path string) (*TestGroup, *groupBacking, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("read %s: %w", path, err)
	}
	var root yaml.Node
	if err := yaml.Unmarshal(content, &root); err != nil {
		return nil, nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if len(root.Content) == 0 {
		return nil, nil, fmt.Errorf("%s: empty yaml", path)
	}
	testsNode, err := locateTestsNode(root.Content[0])
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}

	group := &TestGroup{Name: filepath.Base(path)}
	if err := testsNode.Decode(&group.Tests); err != nil {
		return nil, nil, fmt.Errorf("%s: decode tests: %w", path, err)
	}
	return group, &groupBacking{path: path, root: &root, testNodes: testsNode.Content}, nil
}

// Register makes run available to cases under the name cmd. run returns the
// exit code and reads os.Args, os.Stdin, os.Stdout and os.Stderr at call
// time.
func (s *TestSuite) Register(cmd string, run func() int) {
	s.commands[cmd] = run
}

// Run runs every case as a subtest of t, one subtest per file. Cases run
// sequentially since they swap process-wide streams.
func (s *TestSuite) Run(t *testing.T, update bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, g := range s.groups {
		t.Run(g.Name, func(t *testing.T) {
			for i := range g.Tests {
				t.Run(caseName(g, i), func(t *testing.T) {
					s.runCase(t, g, i, update)
				})
			}
		})
	}
}

func caseName(g *TestGroup, idx int) string {
	if name := g.Tests[idx].Name; name != "" {
		return name
	}
	return fmt.Sprintf("Case-%d", idx)
}

func (s *TestSuite) runCase(t *testing.T, group *TestGroup, idx int, update bool) {
	test := &group.Tests[idx]
	run, ok := s.commands[test.Cmd]
	if !ok {
		t.Fatalf("command %q not registered", test.Cmd)
	}
	for k, v := range test.Env {
		t.Setenv(k, v)
	}

	var stdin string
	if test.Stdin != nil {
		stdin = *test.Stdin
	}
	got, err := capture(append([]string{test.Cmd}, test.Args...), stdin, run)
	if err != nil {
		t.Fatalf("run %s: %v", test.Cmd, err)
	}

	changes := s.compare(t, group, idx, got, update)
	if update && len(changes) > 0 {
		if err := s.persist(group); err != nil {
			t.Fatalf("persist %s: %v", s.backings[group].path, err)
		}
		t.Logf("cmdtest: updated %s (%s): %s", s.backings[group].path, caseName(group, idx), strings.Join(changes, "; "))
	}
}

// compare checks got against the case, or rewrites the case when update is
// set. It returns a short description of every rewritten field.
func (s *TestSuite) compare(t *testing.T, group *TestGroup, idx int, got Expect, update bool) []string {
	want := &group.Tests[idx].Expect
	backing := s.backings[group]
	if backing == nil {
		t.Fatalf("no yaml backing for group %s", group.Name)
	}
	expectNode := ensureMapValue(backing.testNodes[idx], "expect")

	var changes []string
	if got.ExitCode != want.ExitCode {
		if update {
			want.ExitCode = got.ExitCode
			setIntScalar(ensureMapValue(expectNode, "exitCode"), got.ExitCode)
			changes = append(changes, fmt.Sprintf("exitCode=%d", got.ExitCode))
		} else {
			t.Errorf("exit code mismatch:\nwant: %d\ngot:  %d", want.ExitCode, got.ExitCode)
		}
	}
	if got.Stdout != want.Stdout {
		if update {
			want.Stdout = got.Stdout
			setStringScalar(ensureMapValue(expectNode, "stdout"), got.Stdout)
			changes = append(changes, fmt.Sprintf("stdout=%q", summarize(got.Stdout)))
		} else {
			t.Errorf("stdout mismatch:\nwant:\n%s\ngot:\n%s", want.Stdout, got.Stdout)
		}
	}
	if got.Stderr != want.Stderr {
		if update {
			want.Stderr = got.Stderr
			setStringScalar(ensureMapValue(expectNode, "stderr"), got.Stderr)
			changes = append(changes, fmt.Sprintf("stderr=%q", summarize(got.Stderr)))
		} else {
			t.Errorf("stderr mismatch:\nwant:\n%s\ngot:\n%s", want.Stderr, got.Stderr)
		}
	}
	return changes
}

func summarize(s string) string {
	s = strings.ReplaceAll(s, "\n", `\n`)
	s = strings.ReplaceAll(s, "\t", `\t`)
	if len(s) > 80 {
		return s[:77] + "..."
	}
	return s
}
