// Command interview-preview walks a session snapshot's screen in the
// terminal, prompting for each control and printing the collected answers as
// a response payload.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/goliatone/go-interview/pkg/definition"
	"github.com/goliatone/go-interview/pkg/preview"
	"github.com/goliatone/go-interview/pkg/session"
	"github.com/goliatone/go-interview/pkg/wire"
)

func main() {
	source := flag.String("source", "", "session snapshot path or URL")
	output := flag.String("output", "", "output file (stdout if empty)")
	strict := flag.Bool("strict", true, "fail on session invariant violations before prompting")
	flag.Parse()

	if *source == "" {
		flag.Usage()
		os.Exit(2)
	}

	ctx := context.Background()

	raw, err := read(ctx, *source)
	if err != nil {
		log.Fatalf("read %s: %v", *source, err)
	}

	s, err := wire.DecodeSession(raw)
	if err != nil {
		log.Fatalf("decode session: %v", err)
	}
	if *strict {
		if err := session.Valid(s); err != nil {
			log.Fatalf("invalid session: %v", err)
		}
	}

	answers, err := preview.New().Run(ctx, s.Screen)
	if err != nil {
		log.Fatalf("preview: %v", err)
	}

	payload, err := json.MarshalIndent(answers, "", "  ")
	if err != nil {
		log.Fatalf("encode answers: %v", err)
	}

	if *output != "" {
		if err := os.WriteFile(*output, payload, 0o644); err != nil {
			log.Fatalf("write output: %v", err)
		}
		fmt.Printf("Answers written to %s\n", *output)
	} else {
		fmt.Println(string(payload))
	}
}

func read(ctx context.Context, source string) ([]byte, error) {
	path := strings.TrimSpace(source)
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		loader := definition.NewLoader(definition.WithHTTPClient(&http.Client{Timeout: 30 * time.Second}))
		doc, err := loader.LoadURL(ctx, path)
		if err != nil {
			return nil, err
		}
		return doc.Raw(), nil
	}
	return os.ReadFile(path)
}
