package platform

import (
	"errors"
	"log/slog"

	"dokgen/pkg/gradle"
)

// Resolver extracts platform records from a host project. Each Extract
// method embodies one assumption about the project's shape and returns nil
// when the project does not match it; callers try the next strategy on nil.
type Resolver struct {
	project *gradle.Project
	locator *CompilationLocator
	log     *slog.Logger
}

// NewResolver creates a resolver over the given project state. A nil logger
// falls back to slog.Default.
func NewResolver(project *gradle.Project, logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = slog.Default()
	}
	return &Resolver{
		project: project,
		locator: NewCompilationLocator(project),
		log:     logger,
	}
}

// ExtractFromSinglePlatform reads the single-target Kotlin extension. The
// result is nil when the extension is absent or the installed plugin version
// does not expose the expected compilation; only a missing release variant
// on Android projects is an error.
func (r *Resolver) ExtractFromSinglePlatform() (*Data, error) {
	extension, ok := r.project.Extensions.Find(gradle.ExtKotlin).(*gradle.KotlinSingleTargetExtension)
	if !ok || extension.Target == nil {
		return nil, nil
	}

	target := extension.Target
	compilation, err := r.locator.MainCompilation(target)
	if err != nil {
		if errors.Is(err, ErrNoReleaseVariant) {
			return nil, err
		}
		return nil, nil
	}

	return &Data{
		Classpath:   r.locator.Classpath(compilation),
		SourceRoots: r.locator.SourceRoots(compilation),
		Platform:    PlatformName(target.PlatformType),
	}, nil
}

// ExtractFromMultiPlatform reads the multiplatform Kotlin extension. It
// returns one record per non-common target in declaration order, followed by
// exactly one record for the common target. The common record is produced
// even when no common target exists, with empty classpath and source roots.
func (r *Resolver) ExtractFromMultiPlatform() ([]Data, error) {
	extension, ok := r.project.Extensions.Find(gradle.ExtKotlin).(*gradle.KotlinMultiplatformExtension)
	if !ok {
		return nil, nil
	}

	var common *gradle.Target
	var targets []*gradle.Target
	for _, target := range extension.Targets {
		if target.PlatformType == gradle.PlatformCommon {
			if common == nil {
				common = target
			}
			continue
		}
		targets = append(targets, target)
	}

	records := make([]Data, 0, len(targets)+1)
	for _, target := range targets {
		compilation, err := r.locator.MainCompilation(target)
		if err != nil {
			if errors.Is(err, ErrNoReleaseVariant) {
				return nil, err
			}
			return nil, nil
		}
		records = append(records, Data{
			Name:        target.Name,
			Classpath:   r.locator.Classpath(compilation),
			SourceRoots: r.locator.SourceRoots(compilation),
			Platform:    PlatformName(target.PlatformType),
		})
	}

	compilation, err := r.locator.MainCompilation(common)
	if err != nil {
		if errors.Is(err, ErrNoReleaseVariant) {
			return nil, err
		}
		// a common target we cannot read still yields an empty record
		compilation = nil
	}
	records = append(records, Data{
		Name:        gradle.PlatformCommon,
		Classpath:   r.locator.Classpath(compilation),
		SourceRoots: r.locator.SourceRoots(compilation),
		Platform:    gradle.PlatformCommon,
	})

	return records, nil
}

// ExtractFromKotlinTasks merges the classpaths and source roots of the given
// legacy compile-task objects into a single unnamed record. The result is
// nil when any task's source container cannot be read, which indicates an
// incompatible plugin generation rather than a per-task anomaly.
func (r *Resolver) ExtractFromKotlinTasks(tasks []any) *Data {
	extractor := NewTaskExtractor(r.log, r.project.KotlinPluginVersion())
	return extractor.Extract(tasks)
}

// ExtractFromJavaPlugin reads the conventional "main" source set of the
// plain Java plugin. The classpath is left empty; later stages of the Java
// pipeline supply it downstream.
func (r *Resolver) ExtractFromJavaPlugin() *Data {
	convention, ok := r.project.Extensions.Find(gradle.ExtJava).(*gradle.JavaPluginConvention)
	if !ok {
		return nil
	}

	roots := []string{}
	if mainSet := convention.SourceSets[MainCompilationName]; mainSet != nil {
		roots = ExistingFiles(mainSet.SrcDirs)
	}

	return &Data{
		Classpath:   []string{},
		SourceRoots: roots,
	}
}
