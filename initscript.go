package main

// initScript is applied to the host Gradle build with --init-script. It
// serializes the configuration state dokgen needs into dokgen-project.json
// in each project directory, degrading to partial output when an extension
// or accessor is missing on the installed plugin version.
const initScript = `
import groovy.json.JsonOutput

def fileList = { files ->
    def out = []
    try {
        files.each { out << it.absolutePath }
    } catch (Exception ignored) {
        return null
    }
    return out
}

def dumpCompilation = { compilation ->
    def entry = [:]
    def dependencyFiles = [:]
    try {
        def cfg = compilation.compileDependencyFiles
        if (cfg.metaClass.respondsTo(cfg, 'getName')) {
            dependencyFiles.configuration = cfg.name
        }
        def files = fileList(cfg)
        if (files == null) {
            dependencyFiles.unresolvable = true
        } else {
            dependencyFiles.files = files
        }
    } catch (Exception ignored) {
        dependencyFiles.unresolvable = true
    }
    entry.dependencyFiles = dependencyFiles
    entry.sourceSets = compilation.allKotlinSourceSets.collect { set ->
        [name: set.name, sourceDirs: set.kotlin.srcDirs.collect { it.absolutePath }]
    }
    return entry
}

def dumpTarget = { target ->
    def compilations = [:]
    target.compilations.each { compilation ->
        compilations[compilation.name] = dumpCompilation(compilation)
    }
    return [name: target.name, platformType: target.platformType.name, compilations: compilations]
}

def variantNames = { container ->
    def names = []
    try {
        container.all { names << it.name }
    } catch (Exception ignored) {
    }
    return names
}

gradle.projectsEvaluated {
    gradle.rootProject.allprojects { project ->
        def dump = [name: project.name, path: project.path]

        def versions = [:]
        project.plugins.each { plugin ->
            try {
                def id = plugin.class.package?.name
                if (id?.startsWith('org.jetbrains.kotlin')) {
                    versions['org.jetbrains.kotlin'] =
                        project.getKotlinPluginVersion?.call() ?: versions['org.jetbrains.kotlin']
                }
            } catch (Exception ignored) {
            }
        }
        dump.pluginVersions = versions

        def extensions = [:]
        def kotlinExt = project.extensions.findByName('kotlin')
        if (kotlinExt != null) {
            try {
                if (kotlinExt.metaClass.respondsTo(kotlinExt, 'getTargets')) {
                    extensions.kotlin = [
                        kind: 'multiplatform',
                        targets: kotlinExt.targets.collect { dumpTarget(it) },
                    ]
                } else if (kotlinExt.metaClass.respondsTo(kotlinExt, 'getTarget')) {
                    extensions.kotlin = [
                        kind: 'singleTarget',
                        target: dumpTarget(kotlinExt.target),
                    ]
                }
            } catch (Exception ignored) {
            }
        }

        def androidExt = project.extensions.findByName('android')
        if (androidExt != null) {
            def android = [:]
            if (androidExt.hasProperty('applicationVariants')) {
                android.applicationVariants = variantNames(androidExt.applicationVariants)
            }
            if (androidExt.hasProperty('libraryVariants')) {
                android.libraryVariants = variantNames(androidExt.libraryVariants)
            }
            if (androidExt.hasProperty('featureVariants')) {
                android.featureVariants = variantNames(androidExt.featureVariants)
            }
            if (androidExt.hasProperty('testVariants')) {
                android.testVariants = variantNames(androidExt.testVariants)
            }
            if (androidExt.hasProperty('unitTestVariants')) {
                android.unitTestVariants = variantNames(androidExt.unitTestVariants)
            }
            extensions.android = android
        }

        def javaConvention = project.convention.findPlugin(org.gradle.api.plugins.JavaPluginConvention)
        if (javaConvention != null) {
            def sourceSets = [:]
            javaConvention.sourceSets.each { set ->
                sourceSets[set.name] = [srcDirs: set.allSource.srcDirs.collect { it.absolutePath }]
            }
            extensions.java = [sourceSets: sourceSets]
        }
        dump.extensions = extensions

        def tasks = []
        project.tasks.matching { it.class.name.contains('KotlinCompile') }.each { task ->
            def entry = [kind: 'kotlinCompile', name: task.name]
            try {
                entry.sourceRoots = task.sourceRootsContainer.sourceRoots.collect { it.absolutePath }
            } catch (Exception ignored) {
                // older plugins have no source roots container; dokgen treats
                // the absent key as a broken accessor chain
            }
            try {
                def cp = [files: fileList(task.classpath)]
                if (cp.files == null) {
                    cp = [unresolvable: true]
                }
                entry.classpath = cp
            } catch (Exception ignored) {
            }
            tasks << entry
        }
        dump.tasks = tasks

        new File(project.projectDir, 'dokgen-project.json').text =
            JsonOutput.prettyPrint(JsonOutput.toJson(dump))
    }
}
`
