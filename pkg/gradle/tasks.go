package gradle

// TaskSource mirrors the source container of a Kotlin compile task. Older
// plugin generations may not expose it at all, which loaders model as a nil
// TaskSource on the task.
type TaskSource struct {
	roots []string
}

// NewTaskSource creates a source container over the given source roots.
func NewTaskSource(roots []string) *TaskSource {
	return &TaskSource{roots: roots}
}

// SourceRoots returns the source root directories of the task.
func (s *TaskSource) SourceRoots() []string {
	return s.roots
}

// KotlinCompileTask is the current compile-task generation. Its classpath is
// reachable through the base compile-task accessor.
type KotlinCompileTask struct {
	TaskName  string
	classpath FileCollection
	source    *TaskSource
}

// NewKotlinCompileTask creates a current-generation compile task.
func NewKotlinCompileTask(name string, classpath FileCollection, source *TaskSource) *KotlinCompileTask {
	return &KotlinCompileTask{
		TaskName:  name,
		classpath: classpath,
		source:    source,
	}
}

// GetClasspath returns the classpath via the base compile-task accessor.
func (t *KotlinCompileTask) GetClasspath() FileCollection {
	return t.classpath
}

// Source returns the task's source container, nil when unavailable.
func (t *KotlinCompileTask) Source() *TaskSource {
	return t.source
}

// KotlinCompilePropsTask is the plugin generation that only exposes the
// classpath as a compiler-specific compileClasspath property.
type KotlinCompilePropsTask struct {
	TaskName         string
	compileClasspath FileCollection
	source           *TaskSource
}

// NewKotlinCompilePropsTask creates a property-accessor compile task.
func NewKotlinCompilePropsTask(name string, compileClasspath FileCollection, source *TaskSource) *KotlinCompilePropsTask {
	return &KotlinCompilePropsTask{
		TaskName:         name,
		compileClasspath: compileClasspath,
		source:           source,
	}
}

// CompileClasspath returns the compiler-specific classpath property.
func (t *KotlinCompilePropsTask) CompileClasspath() FileCollection {
	return t.compileClasspath
}

// Source returns the task's source container, nil when unavailable.
func (t *KotlinCompilePropsTask) Source() *TaskSource {
	return t.source
}

// KotlinCompileLegacyTask is the oldest supported generation, exposing the
// classpath only through its own class.
type KotlinCompileLegacyTask struct {
	TaskName  string
	classpath FileCollection
	source    *TaskSource
}

// NewKotlinCompileLegacyTask creates a legacy compile task.
func NewKotlinCompileLegacyTask(name string, classpath FileCollection, source *TaskSource) *KotlinCompileLegacyTask {
	return &KotlinCompileLegacyTask{
		TaskName:  name,
		classpath: classpath,
		source:    source,
	}
}

// Classpath returns the classpath via the task's own class.
func (t *KotlinCompileLegacyTask) Classpath() FileCollection {
	return t.classpath
}

// Source returns the task's source container, nil when unavailable.
func (t *KotlinCompileLegacyTask) Source() *TaskSource {
	return t.source
}
