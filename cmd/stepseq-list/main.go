package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vsariola/stepseq"
	"github.com/vsariola/stepseq/listing"
	"github.com/vsariola/stepseq/version"
)

func main() {
	help := flag.Bool("h", false, "Show help.")
	directory := flag.String("o", "", "Directory where to write the listings, one .txt file per pattern. The directory and its parents are created if needed. By default, listings are written to standard output.")
	hex := flag.Bool("hex", false, "Print step numbers, channels and velocities in hexadecimal.")
	templateFile := flag.String("t", "", "Render the listing with this text/template file instead of the built-in one. Sprig functions are available.")
	versionFlag := flag.Bool("v", false, "Print version.")
	flag.Usage = printUsage
	flag.Parse()
	if *versionFlag {
		fmt.Println(version.VersionOrHash)
		os.Exit(0)
	}
	if flag.NArg() == 0 || *help {
		flag.Usage()
		os.Exit(0)
	}
	var lister *listing.Lister
	var err error
	if *templateFile != "" {
		lister, err = listing.NewFromFile(*templateFile)
	} else {
		lister, err = listing.New()
	}
	if err != nil {
		log.Fatal(err)
	}
	lister.Hex = *hex
	os.Exit(listPaths(lister, flag.Args(), *directory, os.Stdout, os.Stderr))
}

// listPaths lists every pattern file named in paths, or found in a directory
// named in paths, to stdout or to .txt files in directory. A file that cannot
// be listed is reported on stderr and the rest are still processed; the
// return value is the exit code.
func listPaths(lister *listing.Lister, paths []string, directory string, stdout, stderr io.Writer) int {
	process := func(filename string) error {
		inputBytes, err := os.ReadFile(filename)
		if err != nil {
			return fmt.Errorf("could not read file %v: %v", filename, err)
		}
		// JSON documents are valid YAML, so one decoder covers both
		var pattern stepseq.Pattern
		if err := yaml.Unmarshal(inputBytes, &pattern); err != nil {
			return fmt.Errorf("the pattern could not be parsed: %v", err)
		}
		_, name := filepath.Split(filename)
		name = strings.TrimSuffix(name, filepath.Ext(name))
		if directory == "" {
			return lister.Write(stdout, name, pattern)
		}
		if err := os.MkdirAll(directory, os.ModePerm); err != nil {
			return fmt.Errorf("could not create output directory %v: %v", directory, err)
		}
		contents, err := lister.String(name, pattern)
		if err != nil {
			return err
		}
		f := filepath.Join(directory, name+".txt")
		if err := os.WriteFile(f, []byte(contents), 0644); err != nil {
			return fmt.Errorf("could not write file %v: %v", f, err)
		}
		return nil
	}
	retval := 0
	for _, param := range paths {
		if info, err := os.Stat(param); err == nil && info.IsDir() {
			var files []string
			for _, ext := range []string{"*.yml", "*.yaml", "*.json"} {
				matches, err := filepath.Glob(filepath.Join(param, ext))
				if err != nil {
					fmt.Fprintf(stderr, "could not glob the path %v for %v files: %v\n", param, ext, err)
					retval = 1
					continue
				}
				files = append(files, matches...)
			}
			for _, file := range files {
				if err := process(file); err != nil {
					fmt.Fprintf(stderr, "could not process file %v: %v\n", file, err)
					retval = 1
				}
			}
		} else {
			if err := process(param); err != nil {
				fmt.Fprintf(stderr, "could not process file %v: %v\n", param, err)
				retval = 1
			}
		}
	}
	return retval
}

func printUsage() {
	fmt.Fprintf(os.Stderr, "stepseq command line utility for listing .yml/.json pattern files.\nUsage: %s [flags] [path ...]\n", os.Args[0])
	flag.PrintDefaults()
}
