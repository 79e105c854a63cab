package gradle

import (
	"github.com/Masterminds/semver/v3"
)

// Extension names under which the known plugin extensions are registered.
const (
	ExtKotlin  = "kotlin"
	ExtAndroid = "android"
	ExtJava    = "java"
)

// Platform types reported by the Kotlin Gradle plugin for a target.
const (
	PlatformJVM        = "jvm"
	PlatformAndroidJVM = "androidJvm"
	PlatformJS         = "js"
	PlatformNative     = "native"
	PlatformCommon     = "common"
)

// KotlinPluginID is the plugin coordinate whose version drives upgrade advisories.
const KotlinPluginID = "org.jetbrains.kotlin"

// Project is a read-only snapshot of a host Gradle project's materialized
// configuration state. It is produced once by Load and never mutated.
type Project struct {
	// Name is the Gradle project name
	Name string
	// Path is the Gradle project path (e.g. ":" or ":app")
	Path string
	// Extensions contains the plugin extensions registered on the project
	Extensions *ExtensionContainer
	// Tasks contains the compile-task objects of older plugin generations
	Tasks []any
	// PluginVersions maps applied plugin IDs to their version strings
	PluginVersions map[string]string
}

// KotlinPluginVersion returns the applied Kotlin plugin version, or nil when
// the plugin is absent or its version string does not parse.
func (p *Project) KotlinPluginVersion() *semver.Version {
	raw, exists := p.PluginVersions[KotlinPluginID]
	if !exists {
		return nil
	}
	version, err := semver.NewVersion(raw)
	if err != nil {
		return nil
	}
	return version
}

// ExtensionContainer holds the plugin extensions registered on a project,
// keyed by their conventional extension names.
type ExtensionContainer struct {
	byName map[string]any
}

// NewExtensionContainer creates an empty extension container.
func NewExtensionContainer() *ExtensionContainer {
	return &ExtensionContainer{
		byName: make(map[string]any),
	}
}

// Add registers an extension under the given name.
func (c *ExtensionContainer) Add(name string, extension any) {
	if extension == nil {
		return
	}
	c.byName[name] = extension
}

// Find returns the extension registered under the given name, or nil when no
// such extension exists. A nil container finds nothing.
func (c *ExtensionContainer) Find(name string) any {
	if c == nil {
		return nil
	}
	return c.byName[name]
}

// Target is a named compilation unit of a multi-target build, associated
// with one platform type.
type Target struct {
	Name         string
	PlatformType string
	Compilations map[string]*Compilation
}

// Compilation produces one set of outputs from a set of source directories
// and one resolved dependency classpath.
type Compilation struct {
	Name            string
	DependencyFiles FileCollection
	SourceSets      []*SourceSet
}

// SourceSet is a named group of source directories within a compilation.
type SourceSet struct {
	Name       string
	SourceDirs []string
}

// Variant is a named build configuration of a mobile-style project.
type Variant struct {
	Name string
}
