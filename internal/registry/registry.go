// Package registry holds the closed set of framework descriptors the
// generator can scaffold. Entries are compile-time constants: the set is an
// ordered list, never mutated, and the order drives the numbered interactive
// selection.
package registry

import "fmt"

// Config describes the tooling of one target stack. All fields other than
// Key are descriptive metadata consumed by token substitution and README
// synthesis.
type Config struct {
	Key             string
	DisplayName     string
	Language        string
	Framework       string
	PackageManager  string
	TestFramework   string
	CoverageTool    string
	DockerImage     string
	LanguageVersion string
	Description     string
}

// frameworks is the registration-ordered descriptor table.
// Order is part of the contract: interactive selection presents entries
// numbered 1..n in this order.
var frameworks = []Config{
	{
		Key:             "python-fastapi",
		DisplayName:     "Python + FastAPI",
		Language:        "Python",
		Framework:       "FastAPI",
		PackageManager:  "Poetry",
		TestFramework:   "pytest",
		CoverageTool:    "pytest-cov",
		DockerImage:     "python:3.11-slim",
		LanguageVersion: "3.11.x",
		Description:     "Modern Python web API with FastAPI, Poetry, and pytest",
	},
	{
		Key:             "typescript-nodejs",
		DisplayName:     "TypeScript + Node.js + Express",
		Language:        "TypeScript",
		Framework:       "Express",
		PackageManager:  "npm/yarn",
		TestFramework:   "Jest",
		CoverageTool:    "Istanbul",
		DockerImage:     "node:20-alpine",
		LanguageVersion: "5.3+",
		Description:     "TypeScript backend with Express, Jest, and ESLint",
	},
	{
		Key:             "python-behave",
		DisplayName:     "Python + Behave (BDD)",
		Language:        "Python",
		Framework:       "Behave",
		PackageManager:  "Poetry",
		TestFramework:   "Behave + pytest",
		CoverageTool:    "coverage.py",
		DockerImage:     "python:3.11-slim",
		LanguageVersion: "3.11.x",
		Description:     "Behavior-driven development with Behave and Python",
	},
}

// Lookup returns the descriptor registered under key.
// Returns ErrUnknownFramework when the key is not registered.
func Lookup(key string) (Config, error) {
	for _, fw := range frameworks {
		if fw.Key == key {
			return fw, nil
		}
	}
	return Config{}, fmt.Errorf("%w: %q", ErrUnknownFramework, key)
}

// All returns the descriptors in registration order. The returned slice is
// a copy; callers cannot mutate the registry through it.
func All() []Config {
	out := make([]Config, len(frameworks))
	copy(out, frameworks)
	return out
}

// Keys returns the registered framework keys in registration order.
func Keys() []string {
	keys := make([]string, len(frameworks))
	for i, fw := range frameworks {
		keys[i] = fw.Key
	}
	return keys
}

// Len returns the number of registered frameworks.
func Len() int {
	return len(frameworks)
}
