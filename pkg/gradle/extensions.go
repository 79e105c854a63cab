package gradle

// KotlinSingleTargetExtension is the extension shape of single-target Kotlin
// plugins (JVM, JS, Android).
type KotlinSingleTargetExtension struct {
	Target *Target
}

// KotlinMultiplatformExtension is the extension shape of the multiplatform
// plugin. Targets keep the host's declaration order.
type KotlinMultiplatformExtension struct {
	Targets []*Target
}

// AndroidExtension is the mobile-style build extension. Depending on the
// applied Android plugin only some of the variant collections are populated.
type AndroidExtension struct {
	ApplicationVariants []*Variant
	LibraryVariants     []*Variant
	FeatureVariants     []*Variant
	TestVariants        []*Variant
	UnitTestVariants    []*Variant
}

// JavaPluginConvention is the convention object of the plain Java plugin.
type JavaPluginConvention struct {
	SourceSets map[string]*JavaSourceSet
}

// JavaSourceSet is a source set of the plain Java plugin.
type JavaSourceSet struct {
	SrcDirs []string
}
