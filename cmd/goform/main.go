package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	goform "github.com/reoring/goform"
	"github.com/reoring/goform/formdef"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	sub := os.Args[1]
	switch sub {
	case "check":
		checkCmd(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "goform CLI\n\nUsage:\n  goform check [-form NAME] file.(hcl|yaml|yml|json)\n\nLoads a form definition, registers its fields and runs one touch-all\nvalidation pass over the initial values, printing the result as JSON.")
}

func checkCmd(args []string) {
	fs := flag.NewFlagSet("check", flag.ExitOnError)
	var formName string
	fs.StringVar(&formName, "form", "", "form name to check when a file defines several")
	_ = fs.Parse(args)
	if fs.NArg() != 1 {
		fs.Usage()
		os.Exit(2)
	}
	path := fs.Arg(0)

	def, err := loadDefinition(path, formName)
	if err != nil {
		fmt.Fprintln(os.Stderr, "goform:", err)
		os.Exit(1)
	}

	f := def.Build(goform.Config{})
	res := f.Validate(context.Background(), goform.ValidateOpt{Touch: true})
	out, err := goform.ResultJSON(res)
	if err != nil {
		fmt.Fprintln(os.Stderr, "goform:", err)
		os.Exit(1)
	}
	fmt.Println(string(out))
	if !res.Valid {
		os.Exit(1)
	}
}

func loadDefinition(path, formName string) (*formdef.Definition, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".hcl":
		defs, err := formdef.DecodeHCL(src, filepath.Base(path))
		if err != nil {
			return nil, err
		}
		if len(defs) == 0 {
			return nil, fmt.Errorf("%s: no form blocks", path)
		}
		if formName == "" {
			return defs[0], nil
		}
		for _, d := range defs {
			if d.Name == formName {
				return d, nil
			}
		}
		return nil, fmt.Errorf("%s: no form named %q", path, formName)
	case ".yaml", ".yml":
		return formdef.DecodeYAML(src)
	case ".json":
		return formdef.DecodeJSON(src)
	default:
		return nil, fmt.Errorf("%s: unsupported extension", path)
	}
}
