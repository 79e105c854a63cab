package gradle

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"
)

// Task and extension kinds understood by the loader. A dump may contain
// other kinds; those are skipped so that newer dump producers degrade to
// "absent" instead of failing the whole load.
const (
	taskKindCompile  = "kotlinCompile"
	taskKindProps    = "kotlinCompileProps"
	taskKindLegacy   = "kotlinCompileLegacy"
	kotlinKindSingle = "singleTarget"
	kotlinKindMulti  = "multiplatform"
)

// projectDump is the on-disk shape of a project state dump, produced by the
// init script this tool emits (see dokgen init-script).
type projectDump struct {
	Name           string            `json:"name" yaml:"name"`
	Path           string            `json:"path" yaml:"path"`
	PluginVersions map[string]string `json:"pluginVersions" yaml:"pluginVersions"`
	Extensions     extensionsDump    `json:"extensions" yaml:"extensions"`
	Tasks          []taskDump        `json:"tasks" yaml:"tasks"`
}

type extensionsDump struct {
	Kotlin  *kotlinDump  `json:"kotlin" yaml:"kotlin"`
	Android *androidDump `json:"android" yaml:"android"`
	Java    *javaDump    `json:"java" yaml:"java"`
}

type kotlinDump struct {
	Kind    string       `json:"kind" yaml:"kind"`
	Target  *targetDump  `json:"target" yaml:"target"`
	Targets []targetDump `json:"targets" yaml:"targets"`
}

type targetDump struct {
	Name         string                     `json:"name" yaml:"name"`
	PlatformType string                     `json:"platformType" yaml:"platformType"`
	Compilations map[string]compilationDump `json:"compilations" yaml:"compilations"`
}

type compilationDump struct {
	DependencyFiles *filesDump      `json:"dependencyFiles" yaml:"dependencyFiles"`
	SourceSets      []sourceSetDump `json:"sourceSets" yaml:"sourceSets"`
}

type filesDump struct {
	Configuration string   `json:"configuration" yaml:"configuration"`
	Files         []string `json:"files" yaml:"files"`
	Unresolvable  bool     `json:"unresolvable" yaml:"unresolvable"`
}

type sourceSetDump struct {
	Name       string   `json:"name" yaml:"name"`
	SourceDirs []string `json:"sourceDirs" yaml:"sourceDirs"`
}

type androidDump struct {
	ApplicationVariants []string `json:"applicationVariants" yaml:"applicationVariants"`
	LibraryVariants     []string `json:"libraryVariants" yaml:"libraryVariants"`
	FeatureVariants     []string `json:"featureVariants" yaml:"featureVariants"`
	TestVariants        []string `json:"testVariants" yaml:"testVariants"`
	UnitTestVariants    []string `json:"unitTestVariants" yaml:"unitTestVariants"`
}

type javaDump struct {
	SourceSets map[string]javaSourceSetDump `json:"sourceSets" yaml:"sourceSets"`
}

type javaSourceSetDump struct {
	SrcDirs []string `json:"srcDirs" yaml:"srcDirs"`
}

type taskDump struct {
	Kind      string     `json:"kind" yaml:"kind"`
	Name      string     `json:"name" yaml:"name"`
	Classpath *filesDump `json:"classpath" yaml:"classpath"`
	// SourceRoots is a pointer so a dump can distinguish "no roots" from
	// "the source container could not be read on this plugin version"
	SourceRoots *[]string `json:"sourceRoots" yaml:"sourceRoots"`
}

// Load reads a project state dump from the given path. JSON and YAML dumps
// are supported, selected by file extension.
func Load(path string) (*Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read project dump %s: %w", path, err)
	}

	var dump projectDump
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &dump); err != nil {
			return nil, fmt.Errorf("failed to parse project dump %s: %w", path, err)
		}
	case ".json":
		if err := json.Unmarshal(data, &dump); err != nil {
			return nil, fmt.Errorf("failed to parse project dump %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("unsupported project dump format: %s", path)
	}

	return dump.toProject(), nil
}

// toProject converts the raw dump into the typed read-only model. Unknown
// extension kinds and task kinds are dropped, never reported as errors.
func (d *projectDump) toProject() *Project {
	project := &Project{
		Name:           d.Name,
		Path:           d.Path,
		Extensions:     NewExtensionContainer(),
		PluginVersions: d.PluginVersions,
	}

	if kotlin := d.Extensions.Kotlin; kotlin != nil {
		switch kotlin.Kind {
		case kotlinKindSingle:
			if kotlin.Target != nil {
				project.Extensions.Add(ExtKotlin, &KotlinSingleTargetExtension{
					Target: kotlin.Target.toTarget(),
				})
			}
		case kotlinKindMulti:
			targets := make([]*Target, 0, len(kotlin.Targets))
			for i := range kotlin.Targets {
				targets = append(targets, kotlin.Targets[i].toTarget())
			}
			project.Extensions.Add(ExtKotlin, &KotlinMultiplatformExtension{
				Targets: targets,
			})
		}
	}

	if android := d.Extensions.Android; android != nil {
		project.Extensions.Add(ExtAndroid, &AndroidExtension{
			ApplicationVariants: toVariants(android.ApplicationVariants),
			LibraryVariants:     toVariants(android.LibraryVariants),
			FeatureVariants:     toVariants(android.FeatureVariants),
			TestVariants:        toVariants(android.TestVariants),
			UnitTestVariants:    toVariants(android.UnitTestVariants),
		})
	}

	if java := d.Extensions.Java; java != nil {
		sourceSets := make(map[string]*JavaSourceSet, len(java.SourceSets))
		for name, set := range java.SourceSets {
			sourceSets[name] = &JavaSourceSet{SrcDirs: set.SrcDirs}
		}
		project.Extensions.Add(ExtJava, &JavaPluginConvention{SourceSets: sourceSets})
	}

	for i := range d.Tasks {
		if task := d.Tasks[i].toTask(); task != nil {
			project.Tasks = append(project.Tasks, task)
		}
	}

	return project
}

func (t *targetDump) toTarget() *Target {
	compilations := make(map[string]*Compilation, len(t.Compilations))
	for name, comp := range t.Compilations {
		sourceSets := make([]*SourceSet, 0, len(comp.SourceSets))
		for _, set := range comp.SourceSets {
			sourceSets = append(sourceSets, &SourceSet{
				Name:       set.Name,
				SourceDirs: set.SourceDirs,
			})
		}
		compilations[name] = &Compilation{
			Name:            name,
			DependencyFiles: comp.DependencyFiles.toCollection(),
			SourceSets:      sourceSets,
		}
	}
	return &Target{
		Name:         t.Name,
		PlatformType: t.PlatformType,
		Compilations: compilations,
	}
}

func (f *filesDump) toCollection() FileCollection {
	if f == nil {
		return FileList(nil)
	}
	if f.Unresolvable {
		return NewUnresolvableConfiguration(f.Configuration)
	}
	if f.Configuration != "" {
		return NewConfiguration(f.Configuration, f.Files)
	}
	return FileList(f.Files)
}

func (t *taskDump) toTask() any {
	var source *TaskSource
	if t.SourceRoots != nil {
		source = NewTaskSource(*t.SourceRoots)
	}

	switch t.Kind {
	case taskKindCompile:
		return NewKotlinCompileTask(t.Name, t.Classpath.toTaskCollection(), source)
	case taskKindProps:
		return NewKotlinCompilePropsTask(t.Name, t.Classpath.toTaskCollection(), source)
	case taskKindLegacy:
		return NewKotlinCompileLegacyTask(t.Name, t.Classpath.toTaskCollection(), source)
	default:
		return nil
	}
}

// toTaskCollection is like toCollection but keeps an absent classpath nil so
// accessor probing can fall through to the next generation.
func (f *filesDump) toTaskCollection() FileCollection {
	if f == nil {
		return nil
	}
	return f.toCollection()
}

func toVariants(names []string) []*Variant {
	variants := make([]*Variant, 0, len(names))
	for _, name := range names {
		variants = append(variants, &Variant{Name: name})
	}
	return variants
}
