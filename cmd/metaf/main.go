// Command metaf decodes or validates aviation weather reports read
// from stdin, one report per line.
//
// Decode mode emits one JSON document per report; validate mode emits
// one verdict line per report and exits nonzero when any report fails.
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ahrav/go-metaf/sdk/metaf"
)

func main() {
	var (
		mode   = flag.String("mode", "decode", "decode or validate")
		year   = flag.Int("year", time.Now().UTC().Year(), "reference year for the time group")
		month  = flag.Int("month", int(time.Now().UTC().Month()), "reference month for the time group")
		strict = flag.Bool("strict", false, "validate: reject reports carrying a RMK section")
	)
	flag.Parse()

	eng, err := metaf.New(*year, *month,
		metaf.WithValidateConfig(metaf.ValidateConfig{StrictMode: *strict}))
	if err != nil {
		log.Fatal("engine setup error:", err)
	}

	ctx := context.Background()
	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	failed := false
	sc := bufio.NewScanner(os.Stdin)
	for sc.Scan() {
		line := sc.Text()
		if len(line) == 0 {
			continue
		}

		switch *mode {
		case "decode":
			rep, err := eng.Decode(ctx, line)
			if err != nil {
				failed = true
				fmt.Fprintf(os.Stderr, "decode error: %v\n", err)
				continue
			}
			enc, err := json.Marshal(rep)
			if err != nil {
				log.Fatal("encode error:", err)
			}
			fmt.Fprintln(out, string(enc))

		case "validate":
			res := eng.Validate(ctx, line)
			if res.Valid {
				fmt.Fprintln(out, "valid")
				continue
			}
			failed = true
			fmt.Fprintf(out, "invalid\t%s\t%s\n", res.RuleID, *res.Error)

		default:
			log.Fatalf("unknown mode %q", *mode)
		}
	}
	if err := sc.Err(); err != nil {
		log.Fatal("read error:", err)
	}

	out.Flush()
	if failed {
		os.Exit(1)
	}
}
