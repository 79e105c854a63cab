package platform

import (
	"errors"
	"fmt"

	"dokgen/pkg/gradle"
)

// MainCompilationName is the conventional production compilation of
// non-Android projects.
const MainCompilationName = "main"

// ReleaseVariantName is the build variant Android projects must declare for
// their production compilation to be located.
const ReleaseVariantName = "release"

// ErrNoReleaseVariant reports an Android project with no "release" build
// variant. This is a host configuration error and the only condition that
// propagates out of a resolution strategy.
var ErrNoReleaseVariant = errors.New("no \"release\" build variant found")

// ErrUnknownCompilation reports a target whose compilation collection does
// not contain the computed main compilation name. Callers treat it as
// "strategy not applicable" on this plugin version.
var ErrUnknownCompilation = errors.New("unknown compilation")

// VariantSelector computes the build variants of a mobile-style extension
// and picks the canonical release compilation name.
type VariantSelector struct {
	android *gradle.AndroidExtension
}

// NewVariantSelector creates a selector over the given Android extension.
func NewVariantSelector(android *gradle.AndroidExtension) *VariantSelector {
	return &VariantSelector{android: android}
}

// Variants returns the union of all variant collections of the extension,
// deduplicated by variant name. Which collections are populated depends on
// the applied Android plugin subtype.
func (s *VariantSelector) Variants() []*gradle.Variant {
	collections := [][]*gradle.Variant{
		s.android.ApplicationVariants,
		s.android.LibraryVariants,
		s.android.FeatureVariants,
		s.android.TestVariants,
		s.android.UnitTestVariants,
	}

	seen := make(map[string]struct{})
	var variants []*gradle.Variant
	for _, collection := range collections {
		for _, variant := range collection {
			if _, exists := seen[variant.Name]; exists {
				continue
			}
			seen[variant.Name] = struct{}{}
			variants = append(variants, variant)
		}
	}
	return variants
}

// ReleaseCompilationName returns the name of the first variant literally
// named "release". A project with no such variant fails with
// ErrNoReleaseVariant rather than silently picking another variant.
func (s *VariantSelector) ReleaseCompilationName() (string, error) {
	for _, variant := range s.Variants() {
		if variant.Name == ReleaseVariantName {
			return variant.Name, nil
		}
	}
	return "", ErrNoReleaseVariant
}

// CompilationLocator finds the main compilation of a target and reads its
// classpath and source roots.
type CompilationLocator struct {
	project *gradle.Project
}

// NewCompilationLocator creates a locator for the given project.
func NewCompilationLocator(project *gradle.Project) *CompilationLocator {
	return &CompilationLocator{project: project}
}

// MainCompilationName computes the name of the production compilation: the
// release variant name for mobile-style projects, "main" otherwise.
func (l *CompilationLocator) MainCompilationName() (string, error) {
	if android, ok := l.project.Extensions.Find(gradle.ExtAndroid).(*gradle.AndroidExtension); ok {
		return NewVariantSelector(android).ReleaseCompilationName()
	}
	return MainCompilationName, nil
}

// MainCompilation locates the main compilation of the given target. A nil
// target yields a nil compilation without error; a target that lacks the
// computed compilation name yields ErrUnknownCompilation.
func (l *CompilationLocator) MainCompilation(target *gradle.Target) (*gradle.Compilation, error) {
	if target == nil {
		return nil, nil
	}

	name, err := l.MainCompilationName()
	if err != nil {
		return nil, err
	}

	compilation, exists := target.Compilations[name]
	if !exists {
		return nil, fmt.Errorf("%w: %q in target %q", ErrUnknownCompilation, name, target.Name)
	}
	return compilation, nil
}

// Classpath returns the compilation's resolved dependency files, filtered to
// existing paths. A nil compilation yields an empty classpath.
func (l *CompilationLocator) Classpath(compilation *gradle.Compilation) []string {
	if compilation == nil || compilation.DependencyFiles == nil {
		return []string{}
	}
	return ExistingFiles(compilation.DependencyFiles.Files())
}

// SourceRoots returns the union of the compilation's source-set directories,
// filtered to existing paths. A nil compilation yields no roots.
func (l *CompilationLocator) SourceRoots(compilation *gradle.Compilation) []string {
	if compilation == nil {
		return []string{}
	}

	var dirs []string
	for _, set := range compilation.SourceSets {
		dirs = append(dirs, set.SourceDirs...)
	}
	return ExistingFiles(dirs)
}
