package main

import (
	"log"

	"entgo.io/ent/entc"
	"entgo.io/ent/entc/gen"
)

func main() {
	err := entc.Generate(
		"./db/ent/schema",
		&gen.Config{
			Target:  "gen/ent",
			Package: "github.com/veridoc-ai/veridoc/gen/ent",
			Schema:  "github.com/veridoc-ai/veridoc/db/ent/schema",
		},
	)
	if err != nil {
		log.Fatal(err)
	}
}