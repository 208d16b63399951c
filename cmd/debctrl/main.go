// Command debctrl is a thin front-end over the debctrl library: it
// displays the parsed structure of a control file, decomposes version
// strings, and exports control file semantics as YAML or JSON.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/debctrl/control"
	"github.com/etnz/debctrl/version"
	"go.yaml.in/yaml/v3"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: debctrl <command> [flags]")
		fmt.Println("Commands: display, version, export")
		os.Exit(1)
	}

	switch os.Args[1] {
	case "display":
		display(os.Args[2:])
	case "version":
		versionInfo(os.Args[2:])
	case "export":
		export(os.Args[2:])
	default:
		fmt.Printf("Unknown command: %s\n", os.Args[1])
		os.Exit(1)
	}
}

// display parses a control file and prints its document structure.
func display(args []string) {
	fs := flag.NewFlagSet("display", flag.ExitOnError)
	path := fs.String("f", "debian/control", "Path to the control file")
	fs.Parse(args)

	p := control.NewParser()
	doc, err := p.ParseFile(*path)
	if err != nil {
		fmt.Printf("Fatal: could not parse %s: %v\n", *path, err)
		os.Exit(1)
	}
	doc.Dump(os.Stdout)
}

// versionInfo decomposes one version string, or compares two.
func versionInfo(args []string) {
	fs := flag.NewFlagSet("version", flag.ExitOnError)
	fs.Parse(args)

	if fs.NArg() == 0 {
		fmt.Println("Usage: debctrl version <version string> [<version string>]")
		os.Exit(1)
	}

	v, err := version.Parse(fs.Arg(0))
	if err != nil {
		fmt.Printf("Fatal: invalid version %q: %v\n", fs.Arg(0), err)
		os.Exit(1)
	}

	if fs.NArg() > 1 {
		w, err := version.Parse(fs.Arg(1))
		if err != nil {
			fmt.Printf("Fatal: invalid version %q: %v\n", fs.Arg(1), err)
			os.Exit(1)
		}
		switch version.Compare(v, w) {
		case -1:
			fmt.Printf("%s << %s\n", v, w)
		case 1:
			fmt.Printf("%s >> %s\n", v, w)
		default:
			fmt.Printf("%s == %s\n", v, w)
		}
		return
	}

	fmt.Printf("Epoch:            %d\n", v.Epoch)
	fmt.Printf("Upstream version: %s\n", v.Upstream)
	fmt.Printf("Debian revision:  %s\n", v.Revision)
}

// export parses a control file, extracts its semantics and marshals them.
func export(args []string) {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	path := fs.String("f", "debian/control", "Path to the control file")
	format := fs.String("format", "yaml", "Output format: yaml or json")
	fs.Parse(args)

	p := control.NewParser()
	doc, err := p.ParseFile(*path)
	if err != nil {
		fmt.Printf("Fatal: could not parse %s: %v\n", *path, err)
		os.Exit(1)
	}
	src := control.ExtractSource(doc, nil)

	var out []byte
	switch *format {
	case "yaml":
		out, err = yaml.Marshal(src)
	case "json":
		out, err = json.MarshalIndent(src, "", "  ")
	default:
		fmt.Printf("Fatal: unknown format %q\n", *format)
		os.Exit(1)
	}
	if err != nil {
		fmt.Printf("Fatal: could not marshal: %v\n", err)
		os.Exit(1)
	}
	os.Stdout.Write(out)
	if len(out) > 0 && out[len(out)-1] != '\n' {
		fmt.Println()
	}
}
