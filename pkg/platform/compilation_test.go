package platform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dokgen/pkg/gradle"
)

func variants(names ...string) []*gradle.Variant {
	out := make([]*gradle.Variant, 0, len(names))
	for _, name := range names {
		out = append(out, &gradle.Variant{Name: name})
	}
	return out
}

func androidProject(android *gradle.AndroidExtension) *gradle.Project {
	extensions := gradle.NewExtensionContainer()
	extensions.Add(gradle.ExtAndroid, android)
	return &gradle.Project{Extensions: extensions}
}

func TestVariantSelector_VariantsDeduplicated(t *testing.T) {
	selector := NewVariantSelector(&gradle.AndroidExtension{
		ApplicationVariants: variants("debug", "release"),
		TestVariants:        variants("debug", "debugAndroidTest"),
		UnitTestVariants:    variants("releaseUnitTest", "release"),
	})

	names := make([]string, 0)
	for _, variant := range selector.Variants() {
		names = append(names, variant.Name)
	}
	assert.Equal(t, []string{"debug", "release", "debugAndroidTest", "releaseUnitTest"}, names)
}

func TestVariantSelector_ReleaseCompilationName(t *testing.T) {
	selector := NewVariantSelector(&gradle.AndroidExtension{
		LibraryVariants:  variants("debug", "release"),
		UnitTestVariants: variants("releaseUnitTest"),
	})

	name, err := selector.ReleaseCompilationName()
	require.NoError(t, err)
	assert.Equal(t, "release", name)
}

func TestVariantSelector_NoReleaseVariant(t *testing.T) {
	// a variant merely containing "release" does not count
	selector := NewVariantSelector(&gradle.AndroidExtension{
		ApplicationVariants: variants("debug", "releaseUnitTest"),
	})

	_, err := selector.ReleaseCompilationName()
	assert.ErrorIs(t, err, ErrNoReleaseVariant)
}

func TestCompilationLocator_MainCompilationName(t *testing.T) {
	plain := &gradle.Project{Extensions: gradle.NewExtensionContainer()}
	name, err := NewCompilationLocator(plain).MainCompilationName()
	require.NoError(t, err)
	assert.Equal(t, "main", name)

	android := androidProject(&gradle.AndroidExtension{
		ApplicationVariants: variants("debug", "release", "releaseUnitTest"),
	})
	name, err = NewCompilationLocator(android).MainCompilationName()
	require.NoError(t, err)
	assert.Equal(t, "release", name)
}

func TestCompilationLocator_MainCompilationNilTarget(t *testing.T) {
	locator := NewCompilationLocator(&gradle.Project{Extensions: gradle.NewExtensionContainer()})

	compilation, err := locator.MainCompilation(nil)
	require.NoError(t, err)
	assert.Nil(t, compilation)
}

func TestCompilationLocator_MainCompilationUnknown(t *testing.T) {
	locator := NewCompilationLocator(&gradle.Project{Extensions: gradle.NewExtensionContainer()})
	target := &gradle.Target{
		Name:         "jvm",
		PlatformType: gradle.PlatformJVM,
		Compilations: map[string]*gradle.Compilation{},
	}

	_, err := locator.MainCompilation(target)
	assert.ErrorIs(t, err, ErrUnknownCompilation)
}

func TestCompilationLocator_EmptyForNilCompilation(t *testing.T) {
	locator := NewCompilationLocator(&gradle.Project{Extensions: gradle.NewExtensionContainer()})

	assert.Empty(t, locator.Classpath(nil))
	assert.NotNil(t, locator.Classpath(nil))
	assert.Empty(t, locator.SourceRoots(nil))
	assert.NotNil(t, locator.SourceRoots(nil))
}

func TestCompilationLocator_SourceRootsUnionFiltered(t *testing.T) {
	tempDir := t.TempDir()
	jvmMain := makeDir(t, tempDir, "jvmMain")
	commonMain := makeDir(t, tempDir, "commonMain")

	locator := NewCompilationLocator(&gradle.Project{Extensions: gradle.NewExtensionContainer()})
	compilation := &gradle.Compilation{
		Name: "main",
		SourceSets: []*gradle.SourceSet{
			{Name: "jvmMain", SourceDirs: []string{jvmMain, "/missing/dir"}},
			{Name: "commonMain", SourceDirs: []string{commonMain}},
		},
	}

	assert.Equal(t, []string{jvmMain, commonMain}, locator.SourceRoots(compilation))
}
