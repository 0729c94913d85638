// Command transcode is the byte-level CLI of spec.md §6.4 and
// original_source/charset/ucw-cs2cs.c: it reads stdin in fixed blocks,
// converts between two named charsets, and writes the result to stdout,
// with no options and no environment variables.
package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/ucwgo/charconv"
)

const blockSize = 4096

func main() {
	root := &cobra.Command{
		Use:   "transcode <from-charset> <to-charset>",
		Short: "Convert a byte stream between character sets",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args[0], args[1], os.Stdin, os.Stdout)
		},
		SilenceUsage: true,
	}
	if err := root.Execute(); err != nil {
		log.Fatal(err)
	}
}

func run(fromName, toName string, in io.Reader, out io.Writer) error {
	from := charconv.LookupCharset(fromName)
	if from == charconv.Unknown {
		return fmt.Errorf("transcode: unknown source charset %q", fromName)
	}
	to := charconv.LookupCharset(toName)
	if to == charconv.Unknown {
		return fmt.Errorf("transcode: unknown destination charset %q", toName)
	}

	var c charconv.Converter
	if err := c.Init(from, to); err != nil {
		return err
	}

	w := bufio.NewWriter(out)
	defer w.Flush()

	src := make([]byte, blockSize)
	dst := make([]byte, blockSize)
	c.SetDest(dst)

	for {
		n, readErr := in.Read(src)
		if n > 0 {
			c.SetSource(src[:n])
			for {
				result := c.Run()
				if c.DestPos() > 0 {
					if _, err := w.Write(dst[:c.DestPos()]); err != nil {
						return fmt.Errorf("transcode: writing output: %w", err)
					}
					c.SetDest(dst)
				}
				if result != charconv.DestEnd {
					break
				}
			}
		}
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			return fmt.Errorf("transcode: reading input: %w", readErr)
		}
	}
	return nil
}
