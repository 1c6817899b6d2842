package automata_test

import (
	"context"
	"fmt"
	"log"

	"github.com/fsmlab/automata"
	"github.com/fsmlab/automata/pkg/definitions"
)

// ExampleConstruct demonstrates driving a built-in machine symbol by symbol
// and reading its verdict.
func ExampleConstruct() {
	machine, err := automata.Construct(definitions.KindDivisibleBy3)
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()
	if err := machine.Reset(ctx); err != nil {
		log.Fatal(err)
	}

	input := "42"
	valid := true
	for _, sym := range input {
		res, err := machine.Step(ctx, sym)
		if err != nil {
			log.Fatal(err)
		}
		if !res.Valid {
			valid = false
			break
		}
	}

	fmt.Println(machine.Outcome(valid))
	fmt.Println(machine.Conclusion(input, valid))
	// Output:
	// accepted
	// the digit sum of "42" is 6, which is divisible by 3, so the number is divisible by 3
}

// ExampleNew demonstrates constructing a machine from a hand-built
// definition instead of a registered kind.
func ExampleNew() {
	def, err := definitions.ForKind(definitions.KindEmail)
	if err != nil {
		log.Fatal(err)
	}

	machine, err := automata.New(def)
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()
	if err := machine.Reset(ctx); err != nil {
		log.Fatal(err)
	}
	fmt.Println(machine.Current().Label)
	// Output:
	// start
}
