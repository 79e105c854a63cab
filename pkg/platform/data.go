// Package platform resolves which source roots and dependency classpaths
// belong to each compilation platform of a host Gradle project. Every
// resolution strategy reads the already-materialized project state and
// silently reports "not applicable" when the installed plugin generation
// does not expose the shape it probes for.
package platform

import (
	"os"
	"strings"

	"dokgen/pkg/gradle"
)

// Data describes one documentable platform of the host project.
type Data struct {
	// Name distinguishes a target among siblings. Empty for single-target
	// and task-based results, "common" for the shared multiplatform target.
	Name string `json:"name,omitempty"`
	// Classpath contains resolved dependency files, filtered to existing paths
	Classpath []string `json:"classpath"`
	// SourceRoots contains source directories, filtered to existing paths
	SourceRoots []string `json:"sourceRoots"`
	// Platform is the canonical platform type (jvm, js, native, common),
	// empty when the strategy cannot determine one
	Platform string `json:"platform"`
}

// ExistingFiles filters paths down to those that exist on disk.
func ExistingFiles(paths []string) []string {
	existing := make([]string, 0, len(paths))
	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			existing = append(existing, path)
		}
	}
	return existing
}

// PlatformName canonicalizes a platform type token. The Android-flavored JVM
// platform reads as plain "jvm"; everything else keeps its own form.
func PlatformName(platformType string) string {
	if strings.EqualFold(platformType, gradle.PlatformAndroidJVM) {
		return gradle.PlatformJVM
	}
	return platformType
}
