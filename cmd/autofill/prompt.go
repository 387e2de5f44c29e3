package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// promptForMissingPaths asks, in turn, for each required path that was not
// given as a flag.
func promptForMissingPaths(cfg *config, in *bufio.Reader, out io.Writer) error {
	questions := []struct {
		dest     *string
		flagName string
		question string
	}{
		{&cfg.LayoutPath, "layout", "Path to the plate layout you wish to process: "},
		{&cfg.ReferencePath, "reference", "Path to your index sequence database: "},
		{&cfg.OutputPath, "output", "Path to save the sample sheet CSV: "},
	}

	for _, q := range questions {
		if *q.dest != "" {
			continue
		}

		fmt.Fprint(out, q.question)
		answer, err := in.ReadString('\n')
		answer = strings.TrimSpace(answer)
		if answer == "" {
			if err != nil && err != io.EOF {
				return err
			}
			return fmt.Errorf("No path was given for --%s", q.flagName)
		}

		*q.dest = answer
	}

	return nil
}
