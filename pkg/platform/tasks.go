package platform

import (
	"log/slog"

	"github.com/Masterminds/semver/v3"

	"dokgen/pkg/gradle"
)

// Classpath accessor generations, probed in order. Which one a task
// satisfies depends on the installed plugin generation.
type classpathGetter interface {
	GetClasspath() gradle.FileCollection
}

type compileClasspathProvider interface {
	CompileClasspath() gradle.FileCollection
}

type legacyClasspathGetter interface {
	Classpath() gradle.FileCollection
}

type sourceProvider interface {
	Source() *gradle.TaskSource
}

// TaskExtractor normalizes classpath and source-root extraction across the
// historical compile-task shapes and merges per-task results into one record.
type TaskExtractor struct {
	log           *slog.Logger
	pluginVersion *semver.Version
}

// NewTaskExtractor creates an extractor. pluginVersion, when known, is
// included in upgrade advisories.
func NewTaskExtractor(logger *slog.Logger, pluginVersion *semver.Version) *TaskExtractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &TaskExtractor{
		log:           logger,
		pluginVersion: pluginVersion,
	}
}

// Extract merges the given compile tasks into a single unnamed record.
//
// A task with no readable source container aborts the whole extraction and
// yields nil: a missing source accessor means the plugin generation is
// incompatible, not that one task is anomalous. A task with no usable
// classpath accessor only loses its classpath contribution. Lazily
// resolvable classpaths are merged unresolved and materialized once at the
// end; when that materialization fails the structured portion is empty and
// the directly-collected portion is kept.
func (e *TaskExtractor) Extract(tasks []any) *Data {
	var roots []string
	seenRoots := make(map[string]struct{})
	var direct []string
	seenDirect := make(map[string]struct{})
	var merged *gradle.Configuration

	for _, task := range tasks {
		provider, ok := task.(sourceProvider)
		if !ok || provider.Source() == nil {
			e.advise("compile task exposes no readable source container")
			return nil
		}
		for _, root := range ExistingFiles(provider.Source().SourceRoots()) {
			if _, exists := seenRoots[root]; exists {
				continue
			}
			seenRoots[root] = struct{}{}
			roots = append(roots, root)
		}

		classpath, ok := e.classpathOf(task)
		if !ok {
			e.advise("compile task exposes no known classpath accessor")
			continue
		}
		if configuration, isLazy := classpath.(*gradle.Configuration); isLazy {
			merged = merged.Union(configuration)
			continue
		}
		for _, file := range classpath.Files() {
			if _, exists := seenDirect[file]; exists {
				continue
			}
			seenDirect[file] = struct{}{}
			direct = append(direct, file)
		}
	}

	var structured []string
	if merged != nil {
		files, err := merged.Resolve()
		if err != nil {
			e.log.Warn("could not resolve merged compile classpath", "error", err)
		} else {
			structured = files
		}
	}

	classpath := append(ExistingFiles(structured), ExistingFiles(direct)...)
	if roots == nil {
		roots = []string{}
	}

	return &Data{
		Classpath:   classpath,
		SourceRoots: roots,
	}
}

// classpathOf probes the accessor generations in order: the base compile
// task accessor, then the compiler-specific property, then the accessor on
// the task's own class.
func (e *TaskExtractor) classpathOf(task any) (gradle.FileCollection, bool) {
	if getter, ok := task.(classpathGetter); ok {
		if classpath := getter.GetClasspath(); classpath != nil {
			return classpath, true
		}
	}
	if provider, ok := task.(compileClasspathProvider); ok {
		if classpath := provider.CompileClasspath(); classpath != nil {
			return classpath, true
		}
	}
	if getter, ok := task.(legacyClasspathGetter); ok {
		if classpath := getter.Classpath(); classpath != nil {
			return classpath, true
		}
	}
	return nil, false
}

func (e *TaskExtractor) advise(reason string) {
	if e.pluginVersion != nil {
		e.log.Info("consider upgrading the Kotlin Gradle plugin",
			"reason", reason, "pluginVersion", e.pluginVersion.String())
		return
	}
	e.log.Info("consider upgrading the Kotlin Gradle plugin", "reason", reason)
}
