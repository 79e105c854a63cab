package detect

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeBuildFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
}

func TestProjectHints_Multiplatform(t *testing.T) {
	tempDir := t.TempDir()
	writeBuildFile(t, tempDir, "build.gradle.kts", `plugins {
    kotlin("multiplatform") version "1.9.20"
}`)

	hints := ProjectHints(tempDir)
	assert.True(t, hints.Multiplatform)
	assert.False(t, hints.Android)
	assert.False(t, hints.KotlinJVM)
}

func TestProjectHints_KotlinJVMSubproject(t *testing.T) {
	tempDir := t.TempDir()
	writeBuildFile(t, filepath.Join(tempDir, "lib"), "build.gradle.kts", `plugins {
    kotlin("jvm") version "1.9.20"
}`)

	hints := ProjectHints(tempDir)
	assert.True(t, hints.KotlinJVM)
}

func TestProjectHints_AndroidGroovy(t *testing.T) {
	tempDir := t.TempDir()
	writeBuildFile(t, filepath.Join(tempDir, "app"), "build.gradle", `apply plugin: 'com.android.application'
apply plugin: 'org.jetbrains.kotlin.jvm'`)

	hints := ProjectHints(tempDir)
	assert.True(t, hints.Android)
	assert.True(t, hints.KotlinJVM)
}

func TestProjectHints_SkipsBuildDirectories(t *testing.T) {
	tempDir := t.TempDir()
	writeBuildFile(t, filepath.Join(tempDir, "build"), "build.gradle.kts", `kotlin("multiplatform")`)

	hints := ProjectHints(tempDir)
	assert.False(t, hints.Multiplatform)
}

func TestProjectHints_EmptyTree(t *testing.T) {
	hints := ProjectHints(t.TempDir())
	assert.Equal(t, Hints{}, hints)
}

func TestOrder(t *testing.T) {
	tests := []struct {
		name  string
		hints Hints
		first Strategy
	}{
		{"multiplatform", Hints{Multiplatform: true}, StrategyMultiPlatform},
		{"kotlin jvm", Hints{KotlinJVM: true}, StrategySinglePlatform},
		{"android", Hints{Android: true}, StrategySinglePlatform},
		{"android and multiplatform", Hints{Android: true, Multiplatform: true}, StrategyMultiPlatform},
		{"no hints", Hints{}, StrategyMultiPlatform},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			order := Order(tt.hints)
			require.Len(t, order, 4)
			assert.Equal(t, tt.first, order[0])
			// the fallbacks always close the chain
			assert.Equal(t, StrategyKotlinTasks, order[2])
			assert.Equal(t, StrategyJavaPlugin, order[3])
		})
	}
}
