package gradle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileList_Files(t *testing.T) {
	list := FileList{"/a.jar", "/b.jar"}
	assert.Equal(t, []string{"/a.jar", "/b.jar"}, list.Files())
}

func TestConfiguration_Resolve(t *testing.T) {
	cfg := NewConfiguration("compileClasspath", []string{"/a.jar"})

	files, err := cfg.Resolve()
	require.NoError(t, err)
	assert.Equal(t, []string{"/a.jar"}, files)
	assert.Equal(t, []string{"/a.jar"}, cfg.Files())
}

func TestConfiguration_ResolveUnresolvable(t *testing.T) {
	cfg := NewUnresolvableConfiguration("compileClasspath")

	_, err := cfg.Resolve()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnresolvable)
	assert.Nil(t, cfg.Files())
}

func TestConfiguration_Union(t *testing.T) {
	first := NewConfiguration("jvmCompileClasspath", []string{"/a.jar"})
	second := NewConfiguration("jsCompileClasspath", []string{"/b.jar"})

	merged := first.Union(second)
	files, err := merged.Resolve()
	require.NoError(t, err)
	assert.Equal(t, []string{"/a.jar", "/b.jar"}, files)
}

func TestConfiguration_UnionNilSafe(t *testing.T) {
	cfg := NewConfiguration("compileClasspath", []string{"/a.jar"})

	var accumulated *Configuration
	accumulated = accumulated.Union(cfg)
	require.NotNil(t, accumulated)
	assert.Equal(t, cfg, accumulated)

	assert.Equal(t, cfg, cfg.Union(nil))
}

func TestConfiguration_UnionPropagatesUnresolvable(t *testing.T) {
	good := NewConfiguration("compileClasspath", []string{"/a.jar"})
	bad := NewUnresolvableConfiguration("brokenClasspath")

	_, err := good.Union(bad).Resolve()
	assert.ErrorIs(t, err, ErrUnresolvable)
}
