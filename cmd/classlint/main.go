// (c) Copyright 2016 Hewlett Packard Enterprise Development LP
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/classlint/classlint"
	"github.com/classlint/classlint/autofix"
	"github.com/classlint/classlint/jvm"
	"github.com/classlint/classlint/report"
	"github.com/classlint/classlint/rules"
)

const usageText = `
classlint - JVM bytecode checker

classlint analyzes disassembled class files to look for common programming
mistakes in exception handling.

VERSION: %s
GIT TAG: %s
BUILD DATE: %s

USAGE:

	# Check a single class dump
	$ classlint Widget.json

	# Check all class dumps under a directory and save results in
	# json format.
	$ classlint -fmt=json -out=results.json ./build/dumps

	# Run a specific set of rules (by default all rules will be run):
	$ classlint -include=B101 ./build/dumps

	# Run all rules except the provided
	$ classlint -exclude=B102 ./build/dumps

`

var (
	// format output
	flagFormat = flag.String("fmt", "text", "Set output format. Valid options are: json, yaml, csv, sarif or text")

	// output file
	flagOutput = flag.String("out", "", "Set output file for results")

	// config file
	flagConfig = flag.String("conf", "", "Path to optional config file")

	// quiet
	flagQuiet = flag.Bool("quiet", false, "Only show output when issues are found")

	// rules to explicitly include
	flagRulesInclude = flag.String("include", "", "Comma separated list of rules IDs to include. (see rule list)")

	// rules to explicitly exclude
	flagRulesExclude = flag.String("exclude", "", "Comma separated list of rules IDs to exclude. (see rule list)")

	// classes to exclude from scanning, resolved classes stay available for lookups
	flagClassesExclude classlint.ClassFilter

	// log to file or stderr
	flagLogfile = flag.String("log", "", "Log messages to file rather than stderr")

	// sort the issues by severity
	flagSortIssues = flag.Bool("sort", true, "Sort issues by severity")

	// do not fail the build, even if issues were found
	flagNoFail = flag.Bool("no-fail", false, "Do not fail the scanning, even if issues were found")

	// print the version and quit
	flagVersion = flag.Bool("version", false, "Print version and quit with exit code 0")

	// colorize the text output
	flagColor = flag.Bool("color", false, "Colorize the text output")

	// AI provider to generate auto fixes
	flagAIAPIProvider = flag.String("ai-api-provider", "", "AI API provider to generate auto fixes to issues.\nValid options are: gemini")

	// key to implementing AI provider services
	flagAIAPIKey = flag.String("ai-api-key", "", "Key to access the AI API")

	// endpoint to the AI provider
	flagAIEndpoint = flag.String("ai-endpoint", "", "Endpoint AI API.\nThis is optional, the default API endpoint will be used when not provided.")

	logger *log.Logger
)

func usage() {
	usageText := fmt.Sprintf(usageText, Version, GitTag, BuildDate)
	fmt.Fprintln(os.Stderr, usageText)
	fmt.Fprint(os.Stderr, "OPTIONS:\n\n")
	flag.PrintDefaults()
	fmt.Fprint(os.Stderr, "\n\nRULES:\n\n")

	// sorted rule list for ease of reading
	rl := rules.Generate()
	keys := make([]string, 0, len(rl))
	for key := range rl {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, k := range keys {
		v := rl[k]
		fmt.Fprintf(os.Stderr, "\t%s: %s\n", k, v.Description)
	}
	fmt.Fprint(os.Stderr, "\n")
}

func loadConfig(configFile string) (classlint.Config, error) {
	config := classlint.NewConfig()
	if configFile != "" {
		file, err := os.Open(configFile)
		if err != nil {
			return nil, err
		}
		defer file.Close() //nolint:errcheck
		if _, err := config.ReadFrom(file); err != nil {
			return nil, err
		}
	}
	if *flagNoFail {
		config.SetGlobal(classlint.NoFail, "true")
	}
	if *flagAIAPIProvider != "" {
		config.SetGlobal(classlint.AIApiProvider, *flagAIAPIProvider)
	}
	if *flagAIAPIKey != "" {
		config.SetGlobal(classlint.AIApiKey, *flagAIAPIKey)
	}
	if *flagAIEndpoint != "" {
		config.SetGlobal(classlint.AIEndpoint, *flagAIEndpoint)
	}
	return config, nil
}

func loadRules(include, exclude string) rules.RuleList {
	var filters []rules.RuleFilter
	if include != "" {
		logger.Printf("including rules: %s", include)
		including := strings.Split(include, ",")
		filters = append(filters, rules.NewRuleFilter(false, including...))
	} else {
		logger.Println("including rules: default")
	}

	if exclude != "" {
		logger.Printf("excluding rules: %s", exclude)
		excluding := strings.Split(exclude, ",")
		filters = append(filters, rules.NewRuleFilter(true, excluding...))
	} else {
		logger.Println("excluding rules: default")
	}
	return rules.Generate(filters...)
}

// gatherClassDumps expands the command line arguments into the list of class
// dump files to load. Directories are walked recursively.
func gatherClassDumps(args []string) ([]string, error) {
	var files []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			files = append(files, arg)
			continue
		}
		err = filepath.WalkDir(arg, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() && strings.HasSuffix(path, ".json") {
				files = append(files, path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return files, nil
}

func loadClasses(files []string) ([]*jvm.Class, error) {
	classes := make([]*jvm.Class, 0, len(files))
	for _, name := range files {
		file, err := os.Open(name)
		if err != nil {
			return nil, err
		}
		cls, err := jvm.ParseClass(file)
		file.Close() //nolint:errcheck
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", name, err)
		}
		classes = append(classes, cls)
	}
	return classes, nil
}

func saveReport(filename, format string, color bool, reportInfo *classlint.ReportInfo) error {
	w := io.Writer(os.Stdout)
	if filename != "" {
		outfile, err := os.Create(filename)
		if err != nil {
			return err
		}
		defer outfile.Close() //nolint:errcheck
		w = outfile
	}
	return report.CreateReport(w, format, color, reportInfo)
}

func main() {
	// Setup usage description
	flag.Var(&flagClassesExclude, "exclude-classes", "Glob patterns of dotted class names to exclude from scanning")
	flag.Usage = usage

	// Parse command line arguments
	flag.Parse()

	if *flagVersion {
		fmt.Printf("Version: %s\nGit tag: %s\nBuild date: %s\n", Version, GitTag, BuildDate)
		os.Exit(0)
	}

	// Ensure at least one class dump was specified
	if flag.NArg() == 0 {
		fmt.Fprintf(os.Stderr, "\nError: FILE [FILE...] or DIR expected\n")
		flag.Usage()
		os.Exit(1)
	}

	// Setup logging
	logWriter := os.Stderr
	if *flagLogfile != "" {
		var e error
		logWriter, e = os.Create(*flagLogfile)
		if e != nil {
			flag.Usage()
			log.Fatal(e)
		}
	}

	if *flagQuiet {
		logger = log.New(io.Discard, "", 0)
	} else {
		logger = log.New(logWriter, "[classlint] ", log.LstdFlags)
	}

	// Load config
	config, err := loadConfig(*flagConfig)
	if err != nil {
		logger.Fatal(err)
	}

	// Load enabled rule definitions
	ruleDefinitions := loadRules(*flagRulesInclude, *flagRulesExclude)
	if len(ruleDefinitions) == 0 {
		logger.Fatal("cannot continue: no rules are configured.")
	}

	// Create the analyzer
	analyzer := classlint.NewAnalyzer(config, logger)
	analyzer.LoadRules(ruleDefinitions.Builders())

	dumps, err := gatherClassDumps(flag.Args())
	if err != nil {
		logger.Fatal(err)
	}
	classes, err := loadClasses(dumps)
	if err != nil {
		logger.Fatal(err)
	}

	// Every loaded class is resolvable; excluded classes are only removed
	// from the scan targets.
	repo := jvm.NewMemoryRepository()
	for _, cls := range classes {
		repo.Add(cls)
	}
	var targets []*jvm.Class
	for _, cls := range classes {
		if flagClassesExclude.Matches(cls.Name) {
			logger.Printf("excluding class: %s", cls.Name)
			continue
		}
		targets = append(targets, cls)
	}

	if err := analyzer.Process(repo, targets...); err != nil {
		logger.Fatal(err)
	}

	// Collect the results
	issues, metrics := analyzer.Report()
	errors := analyzer.Errors()

	issuesFound := len(issues) > 0
	// Exit quietly if nothing was found
	if !issuesFound && *flagQuiet {
		os.Exit(0)
	}

	// Sort the issue by severity
	if *flagSortIssues {
		sortIssues(issues)
	}

	if issuesFound {
		if provider, err := config.GetGlobal(classlint.AIApiProvider); err == nil && provider != "" {
			aiAPIKey, _ := config.GetGlobal(classlint.AIApiKey)
			endpoint, _ := config.GetGlobal(classlint.AIEndpoint)
			if err := autofix.GenerateSolution(provider, aiAPIKey, endpoint, issues); err != nil {
				logger.Print(err)
			}
		}
	}

	// Create output report
	reportInfo := classlint.NewReportInfo(issues, metrics, errors).WithVersion(Version)
	if err := saveReport(*flagOutput, *flagFormat, *flagColor, reportInfo); err != nil {
		logger.Fatal(err)
	}

	// Finalize logging
	logWriter.Close()

	// Do we have an issue? If so exit 1 unless NoFail is set
	if noFail, err := config.IsGlobalEnabled(classlint.NoFail); issuesFound && (err != nil || !noFail) {
		os.Exit(1)
	}
}
