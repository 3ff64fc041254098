// myseat prints the lowest, highest, and empty seat id found in a file of
// boarding pass seat codes, one code per line.
//
// Usage:
//
//	myseat seats.txt
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/keep94/boarding/seat"
	"github.com/keep94/boarding/seat/analyzer"
	"github.com/keep94/boarding/seat/reader"
)

func main() {
	flag.Parse()
	if err := run(os.Stdout, flag.Args()); err != nil {
		log.Fatal(err)
	}
}

func run(w io.Writer, args []string) error {
	if len(args) == 0 {
		return seat.NewError(seat.InputError, "filename argument required")
	}
	var seats []seat.Seat
	if err := reader.ReadFile(args[0], analyzer.Collect(&seats)); err != nil {
		return err
	}
	result, err := analyzer.Analyze(seats)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "The lowest seat id is %d\n", result.Lowest)
	fmt.Fprintf(w, "The highest seat id is %d\n", result.Highest)
	fmt.Fprintf(w, "My seat id is %d\n", result.Mine)
	return nil
}
