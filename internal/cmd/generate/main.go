package main

import (
	"flag"
	"log"

	"github.com/clockforge/datetime-go/internal/generate"
)

func main() {
	out := flag.String("out", "names_gen.go", "output file for the generated name tables")
	flag.Parse()

	log.Println("generating name tables...")
	if err := generate.GenerateNames().Save(*out); err != nil {
		log.Fatal(err)
	}
	log.Println("wrote", *out)
}
