package main

import (
	"flag"
	"fmt"
	"os"

	exemplar "github.com/ragbag/exemplar"
	"github.com/ragbag/exemplar/i18n"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	switch os.Args[1] {
	case "validate":
		validateCmd(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "exemplar CLI\n\nUsage:\n  exemplar validate -schema schema.json [-yaml] [-lang en|ja] data.json [data2.json ...]\n\nNotes:\n  - The schema file is an example of valid data, not a grammar.\n  - With -yaml both the schema and the data files are decoded as YAML.")
}

func validateCmd(args []string) {
	fs := flag.NewFlagSet("validate", flag.ExitOnError)
	var schemaPath string
	var useYAML bool
	var lang string
	fs.StringVar(&schemaPath, "schema", "", "schema example file")
	fs.BoolVar(&useYAML, "yaml", false, "decode schema and data files as YAML")
	fs.StringVar(&lang, "lang", "en", "message language (en/ja)")
	_ = fs.Parse(args)
	if schemaPath == "" || fs.NArg() == 0 {
		fs.Usage()
		os.Exit(2)
	}

	schema, err := os.ReadFile(schemaPath)
	if err != nil {
		fatal(err)
	}
	opt := exemplar.WithTranslator(i18n.ForLanguage(lang))
	var v *exemplar.Validator
	if useYAML {
		v, err = exemplar.CompileYAML(schema, opt)
	} else {
		v, err = exemplar.CompileJSON(schema, opt)
	}
	if err != nil {
		fatal(err)
	}

	failed := false
	for _, name := range fs.Args() {
		data, err := os.ReadFile(name)
		if err != nil {
			fatal(err)
		}
		if useYAML {
			_, err = v.ValidateYAML(data)
		} else {
			_, err = v.ValidateJSON(data)
		}
		if err != nil {
			failed = true
			fmt.Fprintf(os.Stderr, "%s: %v\n", name, err)
			continue
		}
		fmt.Printf("%s: ok\n", name)
	}
	if failed {
		os.Exit(1)
	}
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
