package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"dokgen/pkg/config"
	"dokgen/pkg/detect"
	"dokgen/pkg/gradle"
	"dokgen/pkg/platform"
)

type CLI struct {
	Version    bool          `short:"v" help:"Show version information"`
	Platforms  PlatformsCmd  `cmd:"" help:"Resolve the documentable platforms of a Gradle project"`
	Detect     DetectCmd     `cmd:"" help:"Print the plugin-shape hints detected in a checkout"`
	InitScript InitScriptCmd `cmd:"" name:"init-script" help:"Print the Gradle init script that produces the project state dump"`
}

type PlatformsCmd struct {
	Directory string `arg:"" optional:"" help:"Project directory (defaults to current directory)"`
	Output    string `short:"o" help:"Output format: text or json"`
	DumpFile  string `help:"Project state dump file name"`
}

type DetectCmd struct {
	Directory string `arg:"" optional:"" help:"Project directory (defaults to current directory)"`
}

type InitScriptCmd struct{}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("dokgen"),
		kong.Description("Build-configuration discovery for Kotlin/Gradle documentation generation"))

	switch ctx.Command() {
	case "platforms <directory>", "platforms":
		err := runPlatforms(cli.Platforms)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "detect <directory>", "detect":
		err := runDetect(cli.Detect)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "init-script":
		fmt.Print(initScript)
	default:
		if cli.Version {
			fmt.Println("dokgen version 0.3.0")
			return
		}
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", ctx.Command())
		os.Exit(1)
	}
}

func runPlatforms(cmd PlatformsCmd) error {
	// Determine the project directory
	dir := cmd.Directory
	if dir == "" {
		var err error
		dir, err = os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to get current directory: %w", err)
		}
	}
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("failed to get absolute path: %w", err)
	}

	cfg, err := config.LoadConfiguration(absDir)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	dumpFile := cmd.DumpFile
	if dumpFile == "" {
		dumpFile = cfg.Platforms.DumpFile
	}
	output := cmd.Output
	if output == "" {
		output = cfg.Platforms.Output
	}

	dumpPath, err := findDump(absDir, dumpFile)
	if err != nil {
		return err
	}

	project, err := gradle.Load(dumpPath)
	if err != nil {
		return err
	}

	hints := detect.ProjectHints(absDir)
	resolver := platform.NewResolver(project, slog.Default())

	records, err := resolveRecords(resolver, project, detect.Order(hints))
	if err != nil {
		return err
	}
	if records == nil {
		return fmt.Errorf("no resolution strategy applies to %s", absDir)
	}

	switch output {
	case "json":
		encoded, err := json.MarshalIndent(records, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode records: %w", err)
		}
		fmt.Println(string(encoded))
	case "text":
		printRecords(records)
	default:
		return fmt.Errorf("unknown output format: %s", output)
	}
	return nil
}

// findDump locates the dump file in dir, falling back from the configured
// name to its YAML spellings.
func findDump(dir, name string) (string, error) {
	candidates := []string{name}
	if ext := filepath.Ext(name); ext == ".json" {
		base := strings.TrimSuffix(name, ext)
		candidates = append(candidates, base+".yaml", base+".yml")
	}

	for _, candidate := range candidates {
		path := filepath.Join(dir, candidate)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", fmt.Errorf("no project state dump found in %s (apply the dokgen init-script to the Gradle build first)", dir)
}

// resolveRecords tries each strategy in order and returns the first
// applicable result set.
func resolveRecords(resolver *platform.Resolver, project *gradle.Project, order []detect.Strategy) ([]platform.Data, error) {
	for _, strategy := range order {
		switch strategy {
		case detect.StrategyMultiPlatform:
			records, err := resolver.ExtractFromMultiPlatform()
			if err != nil {
				return nil, err
			}
			if records != nil {
				return records, nil
			}
		case detect.StrategySinglePlatform:
			record, err := resolver.ExtractFromSinglePlatform()
			if err != nil {
				return nil, err
			}
			if record != nil {
				return []platform.Data{*record}, nil
			}
		case detect.StrategyKotlinTasks:
			if len(project.Tasks) == 0 {
				continue
			}
			if record := resolver.ExtractFromKotlinTasks(project.Tasks); record != nil {
				return []platform.Data{*record}, nil
			}
		case detect.StrategyJavaPlugin:
			if record := resolver.ExtractFromJavaPlugin(); record != nil {
				return []platform.Data{*record}, nil
			}
		}
	}
	return nil, nil
}

func runDetect(cmd DetectCmd) error {
	dir := cmd.Directory
	if dir == "" {
		var err error
		dir, err = os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to get current directory: %w", err)
		}
	}

	hints := detect.ProjectHints(dir)

	fmt.Printf("android:       %v\n", hints.Android)
	fmt.Printf("multiplatform: %v\n", hints.Multiplatform)
	fmt.Printf("kotlin-jvm:    %v\n", hints.KotlinJVM)
	fmt.Printf("strategy order:")
	for _, strategy := range detect.Order(hints) {
		fmt.Printf(" %s", strategy)
	}
	fmt.Println()
	return nil
}

// printRecords renders the resolved platform records with ANSI colors.
func printRecords(records []platform.Data) {
	green := "\033[32m"
	blue := "\033[34m"
	yellow := "\033[33m"
	gray := "\033[90m"
	reset := "\033[0m"

	for _, record := range records {
		name := record.Name
		if name == "" {
			name = "(default)"
		}
		label := record.Platform
		if label == "" {
			label = "unspecified"
		}

		fmt.Printf("%s- %s%s %s[%s]%s %s(%d classpath entries, %d source roots)%s\n",
			green, name, reset,
			yellow, label, reset,
			gray, len(record.Classpath), len(record.SourceRoots), reset)

		for _, root := range record.SourceRoots {
			fmt.Printf("    %ssrc%s %s\n", blue, reset, root)
		}
	}
}
