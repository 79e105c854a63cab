// Package detect guesses the shape of a Gradle checkout from its build
// files, so callers can order the resolution strategies sensibly before the
// project state dump is consulted.
package detect

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

const (
	maxBuildFiles     = 200
	maxBuildFileBytes = 64 * 1024
	maxWalkDepth      = 4
)

// Hints records which plugin families appear to be applied in a checkout.
type Hints struct {
	// Android is true when an Android application/library plugin is applied
	Android bool
	// Multiplatform is true when the Kotlin multiplatform plugin is applied
	Multiplatform bool
	// KotlinJVM is true when the single-target Kotlin JVM plugin is applied
	KotlinJVM bool
}

// Strategy identifies one resolution strategy of the platform resolver.
type Strategy string

const (
	StrategyMultiPlatform  Strategy = "multiplatform"
	StrategySinglePlatform Strategy = "singlePlatform"
	StrategyKotlinTasks    Strategy = "kotlinTasks"
	StrategyJavaPlugin     Strategy = "javaPlugin"
)

// Order returns the strategy order to try for a project with the given
// hints. The structured extensions always come before the legacy-task and
// Java fallbacks; the hints only decide whether the multiplatform or the
// single-target probe goes first.
func Order(hints Hints) []Strategy {
	if !hints.Multiplatform && (hints.KotlinJVM || hints.Android) {
		return []Strategy{
			StrategySinglePlatform,
			StrategyMultiPlatform,
			StrategyKotlinTasks,
			StrategyJavaPlugin,
		}
	}
	return []Strategy{
		StrategyMultiPlatform,
		StrategySinglePlatform,
		StrategyKotlinTasks,
		StrategyJavaPlugin,
	}
}

// ProjectHints walks the checkout under dir looking for plugin declarations
// in build.gradle and build.gradle.kts files. The walk is bounded in depth
// and file count; errors along the way are treated as "no hint".
func ProjectHints(dir string) Hints {
	var hints Hints
	visited := 0

	_ = filepath.WalkDir(dir, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if entry.IsDir() {
			switch entry.Name() {
			case ".git", ".gradle", "build":
				return filepath.SkipDir
			}
			if pathDepth(path, dir) > maxWalkDepth {
				return filepath.SkipDir
			}
			return nil
		}
		if entry.Name() != "build.gradle" && entry.Name() != "build.gradle.kts" {
			return nil
		}
		visited++
		if visited > maxBuildFiles {
			return fs.SkipAll
		}

		content := readFilePrefix(path, maxBuildFileBytes)
		if content == "" {
			return nil
		}
		if !hints.Android && (strings.Contains(content, "com.android.application") ||
			strings.Contains(content, "com.android.library") ||
			strings.Contains(content, "com.android.dynamic-feature") ||
			strings.Contains(content, "com.android.feature")) {
			hints.Android = true
		}
		if !hints.Multiplatform && (strings.Contains(content, "org.jetbrains.kotlin.multiplatform") ||
			strings.Contains(content, `kotlin("multiplatform"`)) {
			hints.Multiplatform = true
		}
		if !hints.KotlinJVM && (strings.Contains(content, "org.jetbrains.kotlin.jvm") ||
			strings.Contains(content, `kotlin("jvm"`)) {
			hints.KotlinJVM = true
		}
		if hints.Android && hints.Multiplatform && hints.KotlinJVM {
			return fs.SkipAll
		}
		return nil
	})

	return hints
}

// readFilePrefix reads at most maxBytes from the file, returning "" on any error.
func readFilePrefix(path string, maxBytes int64) string {
	file, err := os.Open(path)
	if err != nil {
		return ""
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxBytes))
	if err != nil {
		return ""
	}
	return string(data)
}

// pathDepth counts directory levels of path below root.
func pathDepth(path, root string) int {
	rel, err := filepath.Rel(root, path)
	if err != nil || rel == "." {
		return 0
	}
	return len(strings.Split(rel, string(filepath.Separator)))
}
