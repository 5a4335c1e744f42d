package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/osliusar/digitring"
)

// REPL holds the state of the interactive session
type REPL struct {
	ring   *digitring.Ring
	reader *bufio.Reader
}

func main() {
	fmt.Println("Digitring REPL - Circular Digit List Demo")
	fmt.Printf("Variant %d: circular doubly linked list, decimal/hex, modulo\n", digitring.Variant)
	fmt.Println("Type 'help' for available commands, 'quit' to exit")
	fmt.Println()

	repl := &REPL{
		ring:   digitring.New(),
		reader: bufio.NewReader(os.Stdin),
	}

	for {
		fmt.Print("digitring> ")
		input, err := repl.reader.ReadString('\n')
		if err != nil {
			fmt.Println("\nGoodbye!")
			break
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}

		if !repl.handleCommand(input) {
			break
		}
	}
}

func (r *REPL) handleCommand(input string) bool {
	parts := strings.Fields(input)
	if len(parts) == 0 {
		return true
	}

	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "help":
		r.printHelp()

	case "quit", "exit":
		fmt.Println("Goodbye!")
		return false

	case "parse":
		if len(args) != 1 {
			fmt.Println("Usage: parse <digits>")
			return true
		}
		r.ring = digitring.Parse(args[0])
		if r.ring.IsEmpty() {
			fmt.Println("Parsed empty ring (invalid or negative input?)")
		} else {
			r.printRing()
		}

	case "print":
		r.printRing()

	case "dec":
		fmt.Printf("Decimal: %s\n", r.ring.ToDecimalString())

	case "hex":
		r.ring = r.ring.ChangeScale()
		r.printRing()

	case "mod":
		if len(args) != 1 {
			fmt.Println("Usage: mod <decimal-digits>")
			return true
		}
		r.ring = r.ring.Mod(digitring.Parse(args[0]))
		r.printRing()

	case "sort":
		if len(args) != 1 || (args[0] != "asc" && args[0] != "desc") {
			fmt.Println("Usage: sort asc|desc")
			return true
		}
		if args[0] == "asc" {
			r.ring.SortAscending()
		} else {
			r.ring.SortDescending()
		}
		r.printRing()

	case "shift":
		if len(args) != 1 || (args[0] != "l" && args[0] != "r") {
			fmt.Println("Usage: shift l|r")
			return true
		}
		if args[0] == "l" {
			r.ring.ShiftLeft()
		} else {
			r.ring.ShiftRight()
		}
		r.printRing()

	case "swap":
		i, j, ok := r.twoInts(args, "swap <i> <j>")
		if !ok {
			return true
		}
		if !r.ring.Swap(i, j) {
			fmt.Println("Swap failed: index out of range")
			return true
		}
		r.printRing()

	case "insert":
		i, v, ok := r.twoInts(args, "insert <index> <value 0-15>")
		if !ok {
			return true
		}
		if v < 0 || v > 15 {
			fmt.Println("Value must be 0-15")
			return true
		}
		if err := r.ring.InsertAt(i, byte(v)); err != nil {
			fmt.Printf("Insert failed: %v\n", err)
			return true
		}
		r.printRing()

	case "remove":
		if len(args) != 1 {
			fmt.Println("Usage: remove <index>")
			return true
		}
		i, err := strconv.Atoi(args[0])
		if err != nil {
			fmt.Println("Index must be an integer")
			return true
		}
		v, err := r.ring.RemoveAt(i)
		if err != nil {
			fmt.Printf("Remove failed: %v\n", err)
			return true
		}
		fmt.Printf("Removed %X\n", v)
		r.printRing()

	case "load":
		if len(args) != 1 {
			fmt.Println("Usage: load <path>")
			return true
		}
		r.ring = digitring.LoadFile(args[0])
		if r.ring.IsEmpty() {
			fmt.Println("Loaded empty ring (missing file or invalid content?)")
		} else {
			r.printRing()
		}

	case "save":
		if len(args) != 1 {
			fmt.Println("Usage: save <path>")
			return true
		}
		if err := digitring.SaveFile(args[0], r.ring); err != nil {
			fmt.Printf("Save failed: %v\n", err)
			return true
		}
		fmt.Printf("Saved decimal form to %s\n", args[0])

	default:
		fmt.Printf("Unknown command: %s (type 'help')\n", cmd)
	}

	return true
}

func (r *REPL) twoInts(args []string, usage string) (int, int, bool) {
	if len(args) != 2 {
		fmt.Printf("Usage: %s\n", usage)
		return 0, 0, false
	}
	a, err1 := strconv.Atoi(args[0])
	b, err2 := strconv.Atoi(args[1])
	if err1 != nil || err2 != nil {
		fmt.Println("Arguments must be integers")
		return 0, 0, false
	}
	return a, b, true
}

func (r *REPL) printRing() {
	if r.ring.IsEmpty() {
		fmt.Println("(empty ring)")
		return
	}
	fmt.Printf("Digits: %s  (len %d, radix %d)\n", r.ring, r.ring.Len(), r.ring.Radix())
}

func (r *REPL) printHelp() {
	fmt.Println("Commands:")
	fmt.Println("  parse <digits>        - build a ring from a hex digit string")
	fmt.Println("  print                 - show the current ring")
	fmt.Println("  dec                   - show the decimal rendering")
	fmt.Println("  hex                   - convert the ring to base 16")
	fmt.Println("  mod <decimal-digits>  - replace the ring with ring mod argument")
	fmt.Println("  sort asc|desc         - bubble-sort the digit values")
	fmt.Println("  shift l|r             - rotate the head left or right")
	fmt.Println("  swap <i> <j>          - swap the values at two indices")
	fmt.Println("  insert <i> <v>        - insert value v (0-15) before index i")
	fmt.Println("  remove <i>            - remove the digit at index i")
	fmt.Println("  load <path>           - load the first line of a file")
	fmt.Println("  save <path>           - save the decimal rendering to a file")
	fmt.Println("  quit                  - exit")
}
