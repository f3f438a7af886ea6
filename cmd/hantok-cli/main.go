// Command hantok-cli pipes stdin (or a file) through hantok.Tokenize and
// prints the pretty-printed JSON result.
//
// Usage:
//
//	echo "아버지가 방에 들어가신다" | hantok-cli
//	hantok-cli -f text.txt
//	hantok-cli -render
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/MyounghoonKim/hantok/hantok"
	"github.com/MyounghoonKim/hantok/internal/util"
)

func main() {
	file := flag.String("f", "", "file to read instead of stdin")
	render := flag.Bool("render", false, "print the text/POS rendering instead of JSON")
	flag.Parse()

	var r io.Reader = os.Stdin
	if *file != "" {
		f, err := os.Open(*file)
		must(err)
		defer f.Close()
		r = f
	}

	data, err := io.ReadAll(r)
	must(err)

	toks := hantok.Tokenize(string(data))

	if *render {
		fmt.Println(hantok.Render(toks))
		return
	}

	out, err := util.MarshalNoEscape(toks, true)
	must(err)
	fmt.Println(string(out))
}

func must(err error) {
	if err != nil {
		fmt.Fprintln(os.Stderr, "hantok-cli:", err)
		os.Exit(1)
	}
}
