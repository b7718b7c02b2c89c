package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"runtime/pprof"

	"gopkg.in/yaml.v3"

	"github.com/rawbytedev/anyval"
	"github.com/rawbytedev/anyval/pkg/record"
)

func main() {
	format := flag.String("format", "json", "output format: json or yaml")
	memprofile := flag.String("memprofile", "", "write a heap profile to this file")
	flag.Parse()

	if *memprofile != "" {
		runtime.MemProfileRate = 1
	}

	rec := record.New()
	record.Put(rec, "integer", 10)
	record.Put(rec, "double", 12.3)
	record.Put(rec, "string", "This is string")
	record.Put(rec, "self", *rec)

	double, _ := rec.Get("double")
	fmt.Printf("double: %v\n", anyval.As[float64](double))

	switch *format {
	case "json":
		if err := record.Serialize(os.Stdout, rec); err != nil {
			log.Fatal(err)
		}
	case "yaml":
		out, err := yaml.Marshal(rec)
		if err != nil {
			log.Fatal(err)
		}
		if _, err := os.Stdout.Write(out); err != nil {
			log.Fatal(err)
		}
	default:
		log.Fatalf("unknown format %q", *format)
	}

	if *memprofile != "" {
		f, err := os.Create(*memprofile)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		if err := pprof.WriteHeapProfile(f); err != nil {
			log.Fatal(err)
		}
	}
}
